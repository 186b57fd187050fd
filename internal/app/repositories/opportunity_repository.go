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

var opportunityColumns = []string{
	"id", "company_id", "title", "title_en", "description", "description_en", "type", "province",
	"category", "requirements", "benefits", "salary_min", "salary_max", "currency", "experience_level",
	"education_level", "employment_type", "deadline", "status", "ai_match_score", "view_count",
	"application_count", "created_at",
}

func scanOpportunity(row pgx.Row) (*models.Opportunity, error) {
	var o models.Opportunity
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Title, &o.TitleEn, &o.Description, &o.DescriptionEn, &o.Type, &o.Province,
		&o.Category, &o.Requirements, &o.Benefits, &o.SalaryMin, &o.SalaryMax, &o.Currency, &o.ExperienceLevel,
		&o.EducationLevel, &o.EmploymentType, &o.Deadline, &o.Status, &o.AIMatchScore, &o.ViewCount,
		&o.ApplicationCount, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// opportunityRepository handles database operations for opportunities
type opportunityRepository struct {
	db *pgxpool.Pool
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *pgxpool.Pool) OpportunityRepository {
	return &opportunityRepository{db: db}
}

// Create inserts an opportunity. Counters always start at zero.
func (r *opportunityRepository) Create(ctx context.Context, opp *models.Opportunity) error {
	opp.ViewCount = 0
	opp.ApplicationCount = 0
	if opp.Status == "" {
		opp.Status = models.OpportunityStatusPending
	}
	if opp.Currency == "" {
		opp.Currency = "USD"
	}

	sql, args, err := psql.Insert("opportunities").
		Columns("id", "company_id", "title", "title_en", "description", "description_en", "type", "province",
			"category", "requirements", "benefits", "salary_min", "salary_max", "currency", "experience_level",
			"education_level", "employment_type", "deadline", "status", "ai_match_score").
		Values(opp.ID, opp.CompanyID, opp.Title, opp.TitleEn, opp.Description, opp.DescriptionEn, opp.Type, opp.Province,
			opp.Category, opp.Requirements, opp.Benefits, opp.SalaryMin, opp.SalaryMax, opp.Currency, opp.ExperienceLevel,
			opp.EducationLevel, opp.EmploymentType, opp.Deadline, opp.Status, opp.AIMatchScore).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return buildErr("create opportunity", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&opp.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("company not found")
		}
		logger.Error().Err(err).Str("companyID", opp.CompanyID).Msg("Error executing create opportunity query")
		return fmt.Errorf("error creating opportunity: %w", err)
	}
	return nil
}

// GetByID retrieves an opportunity by ID
func (r *opportunityRepository) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	sql, args, err := psql.Select(opportunityColumns...).From("opportunities").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get opportunity", err)
	}

	opp, err := scanOpportunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "opportunity")
	}
	return opp, nil
}

// buildOpportunityListQuery applies every set filter field conjunctively
func buildOpportunityListQuery(filter models.OpportunityFilter) squirrel.SelectBuilder {
	q := psql.Select(opportunityColumns...).From("opportunities")

	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Province != nil {
		q = q.Where(squirrel.Eq{"province": *filter.Province})
	}
	if filter.Category != nil {
		q = q.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.CompanyID != nil {
		q = q.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	return q.OrderBy("created_at DESC")
}

// List returns every opportunity matching filter, newest first
func (r *opportunityRepository) List(ctx context.Context, filter models.OpportunityFilter) ([]*models.Opportunity, error) {
	sql, args, err := buildOpportunityListQuery(filter).ToSql()
	if err != nil {
		return nil, buildErr("list opportunities", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list opportunities query")
		return nil, fmt.Errorf("error listing opportunities: %w", err)
	}
	return collectRows(rows, scanOpportunity)
}

// Update applies a partial update and returns the stored opportunity
func (r *opportunityRepository) Update(ctx context.Context, id string, upd models.OpportunityUpdate) (*models.Opportunity, error) {
	p := newPatch("opportunities")
	setIf(p, "title", upd.Title)
	setIf(p, "title_en", upd.TitleEn)
	setIf(p, "description", upd.Description)
	setIf(p, "description_en", upd.DescriptionEn)
	setIf(p, "type", upd.Type)
	setIf(p, "province", upd.Province)
	setIf(p, "category", upd.Category)
	setIf(p, "requirements", upd.Requirements)
	setIf(p, "benefits", upd.Benefits)
	setIf(p, "salary_min", upd.SalaryMin)
	setIf(p, "salary_max", upd.SalaryMax)
	setIf(p, "currency", upd.Currency)
	setIf(p, "experience_level", upd.ExperienceLevel)
	setIf(p, "education_level", upd.EducationLevel)
	setIf(p, "employment_type", upd.EmploymentType)
	setIf(p, "deadline", upd.Deadline)
	setIf(p, "status", upd.Status)
	if !p.changed {
		return r.GetByID(ctx, id)
	}

	return r.returningUpdate(ctx, p.b.Where(squirrel.Eq{"id": id}))
}

// UpdateStatus sets the moderation status
func (r *opportunityRepository) UpdateStatus(ctx context.Context, id string, status models.OpportunityStatus) (*models.Opportunity, error) {
	return r.returningUpdate(ctx, psql.Update("opportunities").Set("status", status).Where(squirrel.Eq{"id": id}))
}

func (r *opportunityRepository) returningUpdate(ctx context.Context, b squirrel.UpdateBuilder) (*models.Opportunity, error) {
	sql, args, err := b.Suffix("RETURNING " + joinColumns(opportunityColumns)).ToSql()
	if err != nil {
		return nil, buildErr("update opportunity", err)
	}

	opp, err := scanOpportunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "opportunity")
	}
	return opp, nil
}

// IncrementViewCount adds one to the view counter
func (r *opportunityRepository) IncrementViewCount(ctx context.Context, id string) error {
	sql, args, err := psql.Update("opportunities").
		Set("view_count", squirrel.Expr("view_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return buildErr("increment view count", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error incrementing view count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("opportunity not found")
	}
	return nil
}

// CountApprovedByType counts approved opportunities grouped by type
func (r *opportunityRepository) CountApprovedByType(ctx context.Context) (map[models.OpportunityType]int64, error) {
	sql, args, err := psql.Select("type", "COUNT(*)").
		From("opportunities").
		Where(squirrel.Eq{"status": models.OpportunityStatusApproved}).
		GroupBy("type").
		ToSql()
	if err != nil {
		return nil, buildErr("count by type", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting opportunities by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.OpportunityType]int64)
	for rows.Next() {
		var t models.OpportunityType
		var n int64
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// CountApprovedByProvince counts approved opportunities grouped by province
func (r *opportunityRepository) CountApprovedByProvince(ctx context.Context) (map[models.Province]int64, error) {
	sql, args, err := psql.Select("province", "COUNT(*)").
		From("opportunities").
		Where(squirrel.Eq{"status": models.OpportunityStatusApproved}).
		GroupBy("province").
		ToSql()
	if err != nil {
		return nil, buildErr("count by province", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting opportunities by province: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Province]int64)
	for rows.Next() {
		var p models.Province
		var n int64
		if err := rows.Scan(&p, &n); err != nil {
			return nil, err
		}
		counts[p] = n
	}
	return counts, rows.Err()
}
