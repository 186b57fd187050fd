package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/dberrors"
	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var messageColumns = []string{"id", "sender_id", "receiver_id", "opportunity_id", "content", "is_read", "created_at"}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.OpportunityID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// GroupConversations keeps the first message seen per counterpart of userID.
// msgs must be ordered newest first; the result keeps that order.
func GroupConversations(userID string, msgs []*models.Message) []models.Conversation {
	seen := make(map[string]struct{}, len(msgs))
	conversations := make([]models.Conversation, 0)

	for _, m := range msgs {
		partner := m.Counterpart(userID)
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}
		conversations = append(conversations, models.Conversation{PartnerID: partner, LastMessage: m})
	}
	return conversations
}

// messageRepository handles database operations for direct messages
type messageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a message
func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	sql, args, err := psql.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "opportunity_id", "content", "is_read").
		Values(msg.ID, msg.SenderID, msg.ReceiverID, msg.OpportunityID, msg.Content, msg.IsRead).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return buildErr("create message", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&msg.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("receiver or opportunity not found")
		}
		logger.Error().Err(err).Str("senderID", msg.SenderID).Msg("Error executing create message query")
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID
func (r *messageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	sql, args, err := psql.Select(messageColumns...).From("messages").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get message", err)
	}

	msg, err := scanMessage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "message")
	}
	return msg, nil
}

func buildMessagesBetweenQuery(userID, partnerID string) squirrel.SelectBuilder {
	return psql.Select(messageColumns...).
		From("messages").
		Where(squirrel.Or{
			squirrel.Eq{"sender_id": userID, "receiver_id": partnerID},
			squirrel.Eq{"sender_id": partnerID, "receiver_id": userID},
		}).
		OrderBy("created_at ASC")
}

// ListBetween returns the history between two users, oldest first
func (r *messageRepository) ListBetween(ctx context.Context, userID, partnerID string) ([]*models.Message, error) {
	sql, args, err := buildMessagesBetweenQuery(userID, partnerID).ToSql()
	if err != nil {
		return nil, buildErr("list messages", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list messages query")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return collectRows(rows, scanMessage)
}

// ListConversations returns one entry per partner holding the newest message exchanged
func (r *messageRepository) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	sql, args, err := psql.Select(messageColumns...).
		From("messages").
		Where(squirrel.Or{squirrel.Eq{"sender_id": userID}, squirrel.Eq{"receiver_id": userID}}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list conversations", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list conversations query")
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	msgs, err := collectRows(rows, scanMessage)
	if err != nil {
		return nil, err
	}
	return GroupConversations(userID, msgs), nil
}

// MarkRead flags a message as read
func (r *messageRepository) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	sql, args, err := psql.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(messageColumns)).
		ToSql()
	if err != nil {
		return nil, buildErr("mark message read", err)
	}

	msg, err := scanMessage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "message")
	}
	return msg, nil
}
