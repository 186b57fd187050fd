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

var userColumns = []string{
	"id", "email", "password", "username", "full_name", "user_type", "avatar", "phone",
	"province", "bio", "is_verified", "google_id", "preferred_language", "created_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.FullName, &u.UserType, &u.Avatar, &u.Phone,
		&u.Province, &u.Bio, &u.IsVerified, &u.GoogleID, &u.PreferredLanguage, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// userRepository handles user database operations
type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

// mapUserConstraintError turns unique violations into the matching account error
func mapUserConstraintError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
		return apperrors.ErrUsernameAlreadyExists
	}
	return nil
}

// Create inserts a new user and fills in the database defaults
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "ar"
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeIndividual
	}

	sql, args, err := psql.Insert("users").
		Columns("id", "email", "password", "username", "full_name", "user_type", "avatar", "phone",
			"province", "bio", "is_verified", "google_id", "preferred_language").
		Values(user.ID, user.Email, user.PasswordHash, user.Username, user.FullName, user.UserType, user.Avatar, user.Phone,
			user.Province, user.Bio, user.IsVerified, user.GoogleID, user.PreferredLanguage).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return buildErr("create user", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.CreatedAt); err != nil {
		if mapped := mapUserConstraintError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (r *userRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, buildErr("get user", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// Update applies a partial profile update and returns the stored user
func (r *userRepository) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	p := newPatch("users")
	setIf(p, "full_name", upd.FullName)
	setIf(p, "avatar", upd.Avatar)
	setIf(p, "phone", upd.Phone)
	setIf(p, "province", upd.Province)
	setIf(p, "bio", upd.Bio)
	setIf(p, "preferred_language", upd.PreferredLanguage)
	if !p.changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := p.b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + joinColumns(userColumns)).ToSql()
	if err != nil {
		return nil, buildErr("update user", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}
