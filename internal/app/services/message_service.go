package services

import (
	"context"
	"strings"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/findjobsyria/api/internal/pkg/helpers"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MessageService defines the direct messaging operations
type MessageService interface {
	ListConversations(ctx context.Context, actor models.Identity) ([]models.Conversation, error)
	GetHistory(ctx context.Context, partnerID string, actor models.Identity) ([]*models.Message, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest, actor models.Identity) (*models.Message, error)
	MarkRead(ctx context.Context, id string, actor models.Identity) (*models.Message, error)
}

type messageServiceImpl struct {
	messageRepo   repositories.MessageRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	realtime      RealtimePublisher
	events        events.Publisher
	logger        zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	realtime RealtimePublisher,
	publisher events.Publisher,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		notifications: notifications,
		realtime:      realtime,
		events:        publisher,
		logger:        logger,
	}
}

type messageEvent struct {
	MessageID     string  `json:"messageId"`
	SenderID      string  `json:"senderId"`
	ReceiverID    string  `json:"receiverId"`
	OpportunityID *string `json:"opportunityId,omitempty"`
}

// ListConversations returns one entry per partner with the newest message
func (s *messageServiceImpl) ListConversations(ctx context.Context, actor models.Identity) ([]models.Conversation, error) {
	return s.messageRepo.ListConversations(ctx, actor.ID)
}

// GetHistory returns the messages exchanged with partnerID, oldest first
func (s *messageServiceImpl) GetHistory(ctx context.Context, partnerID string, actor models.Identity) ([]*models.Message, error) {
	return s.messageRepo.ListBetween(ctx, actor.ID, partnerID)
}

// SendMessage stores a message from the caller and pushes it to the receiver
func (s *messageServiceImpl) SendMessage(ctx context.Context, req *dto.SendMessageRequest, actor models.Identity) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("Message content cannot be empty")
	}

	if _, err := s.userRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}
	if req.ReceiverID == actor.ID {
		return nil, apperrors.NewBadRequestError("You cannot send a message to yourself")
	}

	msg := &models.Message{
		ID:            uuid.NewString(),
		SenderID:      actor.ID,
		ReceiverID:    req.ReceiverID,
		OpportunityID: helpers.NormalizeOptional(req.OpportunityID),
		Content:       content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.realtime.PushToUser(msg.ReceiverID, websocket.EventMessage, msg)

	link := "/messages/" + actor.ID
	s.notifications.Notify(ctx, &models.Notification{
		UserID:  msg.ReceiverID,
		Title:   "New message",
		Content: "You have a new message from " + actor.FullName,
		Type:    models.NotificationTypeMessage,
		Link:    &link,
	})

	publishEvent(ctx, s.events, s.logger, events.SubjectMessageCreated, messageEvent{
		MessageID:     msg.ID,
		SenderID:      msg.SenderID,
		ReceiverID:    msg.ReceiverID,
		OpportunityID: msg.OpportunityID,
	})
	return msg, nil
}

// MarkRead marks a received message as read
func (s *messageServiceImpl) MarkRead(ctx context.Context, id string, actor models.Identity) (*models.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != actor.ID {
		return nil, apperrors.NewForbiddenError("Only the receiver can mark a message as read")
	}
	if msg.IsRead {
		return msg, nil
	}
	return s.messageRepo.MarkRead(ctx, id)
}
