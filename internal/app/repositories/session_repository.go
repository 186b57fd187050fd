package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/dberrors"
	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sessionRepository stores login sessions in 'user_sessions'
type sessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) SessionRepository {
	return &sessionRepository{db: db}
}

// Create stores a new session row
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := psql.Insert("user_sessions").
		Columns("id", "user_id", "user_agent", "ip_address", "expires_at").
		Values(session.ID, session.UserID, session.UserAgent, session.IPAddress, session.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create session SQL")
		return buildErr("create session", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&session.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("user not found")
		}
		logger.Error().Err(err).Str("userID", session.UserID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetActive returns the session if it exists and has not expired
func (r *sessionRepository) GetActive(ctx context.Context, id string) (*models.Session, error) {
	sql, args, err := psql.Select("id", "user_id", "user_agent", "ip_address", "expires_at", "created_at").
		From("user_sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, buildErr("get session", err)
	}

	var s models.Session
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.UserID, &s.UserAgent, &s.IPAddress, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	if s.IsExpired(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}

	return &s, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := psql.Delete("user_sessions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return buildErr("delete session", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes every session whose expiry is at or before now
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := psql.Delete("user_sessions").Where(squirrel.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, buildErr("cleanup sessions", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing cleanup sessions query")
		return 0, fmt.Errorf("error cleaning up sessions: %w", err)
	}

	deleted := cmdTag.RowsAffected()
	if deleted > 0 {
		logger.Debug().Int64("deletedCount", deleted).Msg("Cleaned up expired sessions")
	}
	return deleted, nil
}
