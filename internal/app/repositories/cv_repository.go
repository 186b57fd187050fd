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

// "references" is a reserved word in PostgreSQL
var cvColumns = []string{
	"id", "user_id", "title", "personal_info", "summary", "experience", "education", "skills",
	"languages", "certifications", `"references"`, "is_ats_optimized", "ats_score", "created_at", "updated_at",
}

func scanCv(row pgx.Row) (*models.Cv, error) {
	var cv models.Cv
	err := row.Scan(
		&cv.ID, &cv.UserID, &cv.Title, &cv.PersonalInfo, &cv.Summary, &cv.Experience, &cv.Education, &cv.Skills,
		&cv.Languages, &cv.Certifications, &cv.References, &cv.IsATSOptimized, &cv.ATSScore, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

// cvRepository handles database operations for CVs
type cvRepository struct {
	db *pgxpool.Pool
}

// NewCvRepository creates a new CvRepository
func NewCvRepository(db *pgxpool.Pool) CvRepository {
	return &cvRepository{db: db}
}

// Create inserts a CV
func (r *cvRepository) Create(ctx context.Context, cv *models.Cv) error {
	sql, args, err := psql.Insert("cvs").
		Columns("id", "user_id", "title", "personal_info", "summary", "experience", "education", "skills",
			"languages", "certifications", `"references"`, "is_ats_optimized", "ats_score").
		Values(cv.ID, cv.UserID, cv.Title, cv.PersonalInfo, cv.Summary, cv.Experience, cv.Education, cv.Skills,
			cv.Languages, cv.Certifications, cv.References, cv.IsATSOptimized, cv.ATSScore).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return buildErr("create cv", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cv.CreatedAt, &cv.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("user not found")
		}
		logger.Error().Err(err).Str("userID", cv.UserID).Msg("Error executing create cv query")
		return fmt.Errorf("error creating cv: %w", err)
	}
	return nil
}

// GetByID retrieves a CV by ID
func (r *cvRepository) GetByID(ctx context.Context, id string) (*models.Cv, error) {
	sql, args, err := psql.Select(cvColumns...).From("cvs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get cv", err)
	}

	cv, err := scanCv(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "cv")
	}
	return cv, nil
}

// ListByUser returns the user's CVs, newest first
func (r *cvRepository) ListByUser(ctx context.Context, userID string) ([]*models.Cv, error) {
	sql, args, err := psql.Select(cvColumns...).
		From("cvs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list cvs", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list cvs query")
		return nil, fmt.Errorf("error listing cvs: %w", err)
	}
	return collectRows(rows, scanCv)
}

// Update applies a partial update, bumps updated_at and returns the stored CV
func (r *cvRepository) Update(ctx context.Context, id string, upd models.CvUpdate) (*models.Cv, error) {
	p := newPatch("cvs")
	setIf(p, "title", upd.Title)
	setIf(p, "personal_info", upd.PersonalInfo)
	setIf(p, "summary", upd.Summary)
	setIf(p, "experience", upd.Experience)
	setIf(p, "education", upd.Education)
	setIf(p, "skills", upd.Skills)
	setIf(p, "languages", upd.Languages)
	setIf(p, "certifications", upd.Certifications)
	setIf(p, `"references"`, upd.References)
	setIf(p, "is_ats_optimized", upd.IsATSOptimized)
	setIf(p, "ats_score", upd.ATSScore)
	if !p.changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := p.b.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(cvColumns)).
		ToSql()
	if err != nil {
		return nil, buildErr("update cv", err)
	}

	cv, err := scanCv(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "cv")
	}
	return cv, nil
}

// Delete removes a CV. Applications referencing it keep existing with a NULL cv_id.
func (r *cvRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := psql.Delete("cvs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return buildErr("delete cv", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("cvID", id).Msg("Error executing delete cv query")
		return fmt.Errorf("error deleting cv: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("cv not found")
	}
	return nil
}
