package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/config"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

func TestRunWithSQLite(t *testing.T) {
	cfg := &config.Config{
		LogLevel:     "error",
		StoreBackend: config.StoreSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "budget.db"),
		StoreTimeout: time.Second,
		Location:     time.UTC,
	}

	bs, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer bs.Close()

	if bs.SQLite == nil || bs.Expenses == nil || bs.Profiles == nil {
		t.Fatal("expected sqlite-backed stores")
	}
	if bs.Firestore != nil {
		t.Fatal("firestore should not be opened for the sqlite backend")
	}

	p, err := bs.Profiles.GetProfile(context.Background(), "nobody")
	if err != nil || p != nil {
		t.Fatalf("GetProfile = %v, %v", p, err)
	}
}

func TestInitEmailJSDisabledWithoutServiceID(t *testing.T) {
	log := slog.New(logger.NewTestHandler(slog.LevelError))

	mailer, err := InitEmailJS(context.Background(), &config.Config{}, log)
	if err != nil {
		t.Fatalf("InitEmailJS: %v", err)
	}

	err = mailer.Send(context.Background(), dto.EmailReportParams{ToEmail: "ada@example.com"})
	var ext *errs.ExternalServiceError
	if !errors.As(err, &ext) || ext.Transient {
		t.Fatalf("expected permanent ExternalServiceError, got %v", err)
	}
}

func TestInitEmailJSBuildsAdapter(t *testing.T) {
	log := slog.New(logger.NewTestHandler(slog.LevelError))
	cfg := &config.Config{
		EmailJSURL:        "http://localhost:1",
		EmailJSServiceID:  "svc",
		EmailJSTemplateID: "tpl",
		EmailJSPublicKey:  "pub",
	}

	mailer, err := InitEmailJS(context.Background(), cfg, log)
	if err != nil {
		t.Fatalf("InitEmailJS: %v", err)
	}
	if _, ok := mailer.(disabledMailer); ok {
		t.Fatal("expected a real adapter")
	}
}
