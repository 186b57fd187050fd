package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/db"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/dberrors"
	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var applicationColumns = []string{
	"id", "opportunity_id", "user_id", "cv_id", "cover_letter", "status", "ai_score", "ai_analysis", "created_at",
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.OpportunityID, &a.UserID, &a.CvID, &a.CoverLetter, &a.Status, &a.AIScore, &a.AIAnalysis, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// applicationRepository handles database operations for applications
type applicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the application and increments the opportunity's
// application_count inside one transaction
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}

	insertSQL, insertArgs, err := psql.Insert("applications").
		Columns("id", "opportunity_id", "user_id", "cv_id", "cover_letter", "status").
		Values(app.ID, app.OpportunityID, app.UserID, app.CvID, app.CoverLetter, app.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return buildErr("create application", err)
	}

	counterSQL, counterArgs, err := psql.Update("opportunities").
		Set("application_count", squirrel.Expr("application_count + 1")).
		Where(squirrel.Eq{"id": app.OpportunityID}).
		ToSql()
	if err != nil {
		return buildErr("increment application count", err)
	}

	return db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&app.CreatedAt); err != nil {
			if dberrors.IsForeignKeyViolation(err, "") {
				return apperrors.NewResourceNotFoundError("opportunity not found")
			}
			logger.Error().Err(err).Str("opportunityID", app.OpportunityID).Msg("Error executing create application query")
			return fmt.Errorf("error creating application: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, counterSQL, counterArgs...)
		if err != nil {
			return fmt.Errorf("error incrementing application count: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("opportunity not found")
		}
		return nil
	})
}

// GetByID retrieves an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	sql, args, err := psql.Select(applicationColumns...).From("applications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get application", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "application")
	}
	return app, nil
}

// ListByUser returns the applicant's applications, newest first
func (r *applicationRepository) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByOpportunity returns the applications to one opportunity, newest first
func (r *applicationRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]*models.Application, error) {
	return r.list(ctx, squirrel.Eq{"opportunity_id": opportunityID})
}

func (r *applicationRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Application, error) {
	sql, args, err := psql.Select(applicationColumns...).
		From("applications").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list applications", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	return collectRows(rows, scanApplication)
}

// UpdateStatus moves an application to status
func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	sql, args, err := psql.Update("applications").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, buildErr("update application", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "application")
	}
	return app, nil
}
