package emailjsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
)

const (
	DefaultBaseURL = "https://api.emailjs.com"
	sendPath       = "/api/v1.0/email/send"
	serviceName    = "emailjs"
)

type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

type Adapter struct {
	cfg    Config
	client *http.Client
}

func NewAdapter(cfg Config, client *http.Client) (*Adapter, error) {
	if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.PublicKey == "" {
		return nil, fmt.Errorf("emailjs service id, template id and public key are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Adapter{cfg: cfg, client: client}, nil
}

// Send posts one templated email. Rate limiting and 5xx answers are reported
// as transient.
func (a *Adapter) Send(ctx context.Context, params dto.EmailReportParams) error {
	body, err := json.Marshal(dto.EmailJSSendRequest{
		ServiceID:      a.cfg.ServiceID,
		TemplateID:     a.cfg.TemplateID,
		UserID:         a.cfg.PublicKey,
		AccessToken:    a.cfg.PrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return errs.NewExternalServiceError(serviceName, "failed to reach EmailJS", true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	transient := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
	return errs.NewExternalServiceError(serviceName, "EmailJS rejected the email", transient,
		fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
}
