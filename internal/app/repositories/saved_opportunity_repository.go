package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/dberrors"
	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var savedOpportunityColumns = []string{"id", "user_id", "opportunity_id", "created_at"}

func scanSavedOpportunity(row pgx.Row) (*models.SavedOpportunity, error) {
	var s models.SavedOpportunity
	if err := row.Scan(&s.ID, &s.UserID, &s.OpportunityID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// savedOpportunityRepository handles bookmark rows
type savedOpportunityRepository struct {
	db *pgxpool.Pool
}

// NewSavedOpportunityRepository creates a new SavedOpportunityRepository
func NewSavedOpportunityRepository(db *pgxpool.Pool) SavedOpportunityRepository {
	return &savedOpportunityRepository{db: db}
}

// Save bookmarks an opportunity. Saving an already saved opportunity returns the existing row.
func (r *savedOpportunityRepository) Save(ctx context.Context, userID, opportunityID string) (*models.SavedOpportunity, error) {
	sql, args, err := psql.Insert("saved_opportunities").
		Columns("id", "user_id", "opportunity_id").
		Values(uuid.NewString(), userID, opportunityID).
		Suffix("ON CONFLICT ON CONSTRAINT saved_opportunities_user_opportunity_key DO NOTHING").
		ToSql()
	if err != nil {
		return nil, buildErr("save opportunity", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return nil, apperrors.NewResourceNotFoundError("opportunity not found")
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing save opportunity query")
		return nil, fmt.Errorf("error saving opportunity: %w", err)
	}

	sql, args, err = psql.Select(savedOpportunityColumns...).
		From("saved_opportunities").
		Where(squirrel.Eq{"user_id": userID, "opportunity_id": opportunityID}).
		ToSql()
	if err != nil {
		return nil, buildErr("get saved opportunity", err)
	}

	saved, err := scanSavedOpportunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "saved opportunity")
	}
	return saved, nil
}

// Delete removes a bookmark. Removing a missing bookmark is not an error.
func (r *savedOpportunityRepository) Delete(ctx context.Context, userID, opportunityID string) error {
	sql, args, err := psql.Delete("saved_opportunities").
		Where(squirrel.Eq{"user_id": userID, "opportunity_id": opportunityID}).
		ToSql()
	if err != nil {
		return buildErr("unsave opportunity", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing unsave opportunity query")
		return fmt.Errorf("error removing saved opportunity: %w", err)
	}
	return nil
}

// Exists reports whether the user bookmarked the opportunity
func (r *savedOpportunityRepository) Exists(ctx context.Context, userID, opportunityID string) (bool, error) {
	sql, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("saved_opportunities").
		Where(squirrel.Eq{"user_id": userID, "opportunity_id": opportunityID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, buildErr("is saved", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking saved opportunity: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's bookmarks, newest first
func (r *savedOpportunityRepository) ListByUser(ctx context.Context, userID string) ([]*models.SavedOpportunity, error) {
	sql, args, err := psql.Select(savedOpportunityColumns...).
		From("saved_opportunities").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list saved opportunities", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list saved opportunities query")
		return nil, fmt.Errorf("error listing saved opportunities: %w", err)
	}
	return collectRows(rows, scanSavedOpportunity)
}
