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

var companyColumns = []string{
	"id", "user_id", "name", "name_en", "logo", "cover_image", "description", "description_en", "website",
	"industry", "employee_count", "province", "address", "founded_year", "is_verified", "created_at",
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.NameEn, &c.Logo, &c.CoverImage, &c.Description, &c.DescriptionEn, &c.Website,
		&c.Industry, &c.EmployeeCount, &c.Province, &c.Address, &c.FoundedYear, &c.IsVerified, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// companyRepository handles database operations for companies
type companyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) CompanyRepository {
	return &companyRepository{db: db}
}

// Create inserts a company
func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := psql.Insert("companies").
		Columns("id", "user_id", "name", "name_en", "logo", "cover_image", "description", "description_en",
			"website", "industry", "employee_count", "province", "address", "founded_year", "is_verified").
		Values(company.ID, company.UserID, company.Name, company.NameEn, company.Logo, company.CoverImage,
			company.Description, company.DescriptionEn, company.Website, company.Industry, company.EmployeeCount,
			company.Province, company.Address, company.FoundedYear, company.IsVerified).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return buildErr("create company", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&company.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.NewResourceNotFoundError("user not found")
		}
		logger.Error().Err(err).Str("userID", company.UserID).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}
	return nil
}

// GetByID retrieves a company by ID
func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	sql, args, err := psql.Select(companyColumns...).From("companies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, buildErr("get company", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "company")
	}
	return company, nil
}

// ListByUser returns every company owned by userID, newest first
func (r *companyRepository) ListByUser(ctx context.Context, userID string) ([]*models.Company, error) {
	sql, args, err := psql.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, buildErr("list companies", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing list companies query")
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	return collectRows(rows, scanCompany)
}

// Update applies a partial update and returns the stored company
func (r *companyRepository) Update(ctx context.Context, id string, upd models.CompanyUpdate) (*models.Company, error) {
	p := newPatch("companies")
	setIf(p, "name", upd.Name)
	setIf(p, "name_en", upd.NameEn)
	setIf(p, "logo", upd.Logo)
	setIf(p, "cover_image", upd.CoverImage)
	setIf(p, "description", upd.Description)
	setIf(p, "description_en", upd.DescriptionEn)
	setIf(p, "website", upd.Website)
	setIf(p, "industry", upd.Industry)
	setIf(p, "employee_count", upd.EmployeeCount)
	setIf(p, "province", upd.Province)
	setIf(p, "address", upd.Address)
	setIf(p, "founded_year", upd.FoundedYear)
	if !p.changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := p.b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + joinColumns(companyColumns)).ToSql()
	if err != nil {
		return nil, buildErr("update company", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "company")
	}
	return company, nil
}
