package services

import (
	"context"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"

	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type notificationService struct {
	client messagingClient
}

func NewNotificationService(client messagingClient) *notificationService {
	return &notificationService{client: client}
}

func (s *notificationService) Send(ctx context.Context, req dto.NotificationRequest) (dto.NotificationResult, error) {
	log := logger.FromContext(ctx)

	if req.Token == "" || req.Title == "" || req.Body == "" {
		return dto.NotificationResult{}, errs.NewValidationError("Missing token, title, or body")
	}

	id, err := s.client.Send(ctx, &messaging.Message{
		Token: req.Token,
		Notification: &messaging.Notification{
			Title: req.Title,
			Body:  req.Body,
		},
	})
	if err != nil {
		transient := errorutils.IsUnavailable(err) || errorutils.IsInternal(err)
		log.Error("failed to send notification", "error", err, "transient", transient)
		return dto.NotificationResult{}, errs.NewExternalServiceError("fcm", "Failed to send notification", transient, err)
	}

	log.Info("notification sent", "message_id", id)
	return dto.NotificationResult{MessageID: id}, nil
}
