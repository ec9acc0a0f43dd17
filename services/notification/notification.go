// Package notification sends FCM pushes when the resolved business
// status transitions between open, closed and unavailable.
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	NotifyStatusChange(ctx context.Context, previous, current models.ResolvedStatus) error
}

// DefaultNotificationService is the production implementation. It
// publishes to a topic, so subscribers manage their own opt-in.
type DefaultNotificationService struct {
	Client *messaging.Client
}

func NewDefaultNotificationService(client *messaging.Client) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: messaging client is nil")
	}
	return &DefaultNotificationService{Client: client}, nil
}

// NotifyStatusChange pushes a topic message describing the transition.
func (s *DefaultNotificationService) NotifyStatusChange(ctx context.Context, previous, current models.ResolvedStatus) error {
	title, body := transitionCopy(current)
	msg := &messaging.Message{
		Topic: utils.StatusTopic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"previous": string(previous.Status),
			"current":  string(current.Status),
			"reason":   current.Reason,
		},
	}
	if _, err := s.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("NotifyStatusChange: failed to send push: %w", err)
	}
	return nil
}

func transitionCopy(current models.ResolvedStatus) (string, string) {
	switch current.Status {
	case models.StatusOpen:
		return "We're now open", current.Reason
	case models.StatusUnavailable:
		return "Temporarily unavailable", current.Reason
	default:
		return "We're now closed", current.Reason
	}
}
