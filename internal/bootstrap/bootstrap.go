package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"

	"github.com/GregMSThompson/budget-backend/internal/config"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/internal/store"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type ExpenseStore interface {
	Append(ctx context.Context, uid string, e models.Expense) (string, error)
	QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
	PutProfile(ctx context.Context, uid string, fields map[string]any, merge bool) error
}

type Mailer interface {
	Send(ctx context.Context, params dto.EmailReportParams) error
}

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	SQLite    *store.SQLiteStore
	Expenses  ExpenseStore
	Profiles  ProfileStore
	Auth      *auth.Client
	Messaging *messaging.Client
	Mailer    Mailer
}

// Run builds the record store only. Commands that serve traffic or send mail
// follow up with InitServices.
func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	switch cfg.StoreBackend {
	case config.StoreSQLite:
		bs.SQLite, err = store.NewSQLiteStore(cfg.SQLitePath, cfg.StoreTimeout)
		if err != nil {
			return bs, err
		}
		bs.Expenses, bs.Profiles = bs.SQLite, bs.SQLite
	default:
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
		bs.Expenses = store.NewExpenseStore(bs.Firestore, cfg.StoreTimeout)
		bs.Profiles = store.NewProfileStore(bs.Firestore, cfg.StoreTimeout)
	}
	bs.Log.Info("record store ready", "backend", cfg.StoreBackend)

	return bs, nil
}

// InitServices connects Firebase (auth and messaging) and the mail sender.
func (bs *Bootstrap) InitServices(cfg *config.Config) error {
	var err error
	applicationCtx := context.Background()

	bs.Auth, bs.Messaging, err = InitFirebase(applicationCtx, cfg.ProjectID)
	if err != nil {
		return err
	}
	return bs.InitMailer(cfg)
}

func (bs *Bootstrap) InitMailer(cfg *config.Config) error {
	var err error
	bs.Mailer, err = InitEmailJS(context.Background(), cfg, bs.Log)
	return err
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore", "error", err)
		}
	}
	if bs.SQLite != nil {
		if err := bs.SQLite.Close(); err != nil {
			bs.Log.Warn("failed to close sqlite", "error", err)
		}
	}
}
