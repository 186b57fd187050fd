package services

import (
	"context"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotificationService defines the in-app notification operations
type NotificationService interface {
	// Notify stores and pushes a notification. Failures are logged only.
	Notify(ctx context.Context, n *models.Notification)
	ListNotifications(ctx context.Context, actor models.Identity) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id string, actor models.Identity) (*models.Notification, error)
	MarkAllRead(ctx context.Context, actor models.Identity) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	realtime         RealtimePublisher
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository, realtime RealtimePublisher, logger zerolog.Logger) NotificationService {
	if realtime == nil {
		realtime = NewNoopRealtime()
	}
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		realtime:         realtime,
		logger:           logger,
	}
}

func (s *notificationServiceImpl) Notify(ctx context.Context, n *models.Notification) {
	n.ID = uuid.NewString()
	n.IsRead = false

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("userID", n.UserID).Str("type", n.Type).Msg("Failed to create notification")
		return
	}
	s.realtime.PushToUser(n.UserID, websocket.EventNotification, n)
}

func (s *notificationServiceImpl) ListNotifications(ctx context.Context, actor models.Identity) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, actor.ID)
}

// MarkRead marks one of the caller's notifications as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id string, actor models.Identity) (*models.Notification, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != actor.ID {
		return nil, apperrors.NewForbiddenError("You do not own this notification")
	}
	if n.IsRead {
		return n, nil
	}
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, actor models.Identity) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, actor.ID)
}
