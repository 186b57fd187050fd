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

var notificationColumns = []string{"id", "user_id", "title", "content", "type", "link", "is_read", "created_at"}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// notificationRepository handles database operations for notifications
type notificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a notification
func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	sql, args, err := psql.Insert("notifications").
		Columns("id", "user_id", "title", "content", "type", "link", "is_read").
		Values(n.ID, n.UserID, n.Title, n.Content, n.Type, n.Link, n.IsRead).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return buildErr("create notification", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("user not found")
		}
		logger.Error().Err(err).Str("userID", n.UserID).Msg("Error executing create notification query")
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	sql, args, err := psql.Select(notificationColumns...).From("notifications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get notification", err)
	}

	n, err := scanNotification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "notification")
	}
	return n, nil
}

// ListByUser returns the user's notifications, newest first
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	sql, args, err := psql.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list notifications", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	return collectRows(rows, scanNotification)
}

// MarkRead flags one notification as read
func (r *notificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	sql, args, err := psql.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, buildErr("mark notification read", err)
	}

	n, err := scanNotification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "notification")
	}
	return n, nil
}

// MarkAllRead flags every unread notification of the user and returns how many changed
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	sql, args, err := psql.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, buildErr("mark all notifications read", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing mark all read query")
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
