package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/notification"
)

// NotificationService records operator alerts.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Create records one notification.
func (s *NotificationService) Create(ctx context.Context, kind, subject, body string) (*ent.Notification, error) {
	if subject == "" {
		return nil, NewValidationError("subject", "required")
	}

	created, err := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetKind(notification.Kind(kind)).
		SetSubject(subject).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return created, nil
}

// Notify adapts Create to the scrape driver's notifier interface:
// severity maps onto the notification kind.
func (s *NotificationService) Notify(ctx context.Context, severity, title, body string) error {
	kind := "provider_failure"
	if severity == "critical" {
		kind = "scraper_auth"
	}
	_, err := s.Create(ctx, kind, title, body)
	return err
}

// Unacknowledged lists open notifications, newest first.
func (s *NotificationService) Unacknowledged(ctx context.Context, limit int) ([]*ent.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.Notification.Query().
		Where(notification.Acknowledged(false)).
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Acknowledge closes a notification.
func (s *NotificationService) Acknowledge(ctx context.Context, id string) error {
	err := s.client.Notification.UpdateOneID(id).
		SetAcknowledged(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to acknowledge notification: %w", err)
	}
	return nil
}
