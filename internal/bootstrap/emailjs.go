package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"

	emailjsclient "github.com/GregMSThompson/budget-backend/internal/client/emailjs"
	"github.com/GregMSThompson/budget-backend/internal/config"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/store"
)

var errMailerNotConfigured = errors.New("EMAILJSSERVICEID is not set")

// disabledMailer stands in when no EmailJS service is configured so the rest
// of the API keeps working.
type disabledMailer struct{}

func (disabledMailer) Send(context.Context, dto.EmailReportParams) error {
	return errs.NewExternalServiceError("emailjs", "email delivery is not configured", false, errMailerNotConfigured)
}

// InitEmailJS builds the mail sender. The optional private key is read from
// Secret Manager.
func InitEmailJS(ctx context.Context, cfg *config.Config, log *slog.Logger) (Mailer, error) {
	if cfg.EmailJSServiceID == "" {
		log.Warn("emailjs not configured, report emails are disabled")
		return disabledMailer{}, nil
	}

	ecfg := emailjsclient.Config{
		BaseURL:    cfg.EmailJSURL,
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		PublicKey:  cfg.EmailJSPublicKey,
	}

	if cfg.EmailJSPrivateKeySecret != "" {
		client, err := secretmanager.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("secret manager client: %w", err)
		}
		defer client.Close()

		ecfg.PrivateKey, err = store.NewSecretStore(client, cfg.ProjectID).GetSecret(ctx, cfg.EmailJSPrivateKeySecret)
		if err != nil {
			return nil, err
		}
	}

	return emailjsclient.NewAdapter(ecfg, nil)
}
