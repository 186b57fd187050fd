package repositories

import (
	"context"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository persists user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

// CompanyRepository persists employer profiles
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Company, error)
	Update(ctx context.Context, id string, upd models.CompanyUpdate) (*models.Company, error)
}

// OpportunityRepository persists listings and their counters
type OpportunityRepository interface {
	Create(ctx context.Context, opp *models.Opportunity) error
	GetByID(ctx context.Context, id string) (*models.Opportunity, error)
	List(ctx context.Context, filter models.OpportunityFilter) ([]*models.Opportunity, error)
	Update(ctx context.Context, id string, upd models.OpportunityUpdate) (*models.Opportunity, error)
	UpdateStatus(ctx context.Context, id string, status models.OpportunityStatus) (*models.Opportunity, error)
	IncrementViewCount(ctx context.Context, id string) error
	CountApprovedByType(ctx context.Context) (map[models.OpportunityType]int64, error)
	CountApprovedByProvince(ctx context.Context) (map[models.Province]int64, error)
}

// ApplicationRepository persists applications. Create also bumps the
// opportunity's application counter in the same transaction.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Application, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

// CvRepository persists resumes
type CvRepository interface {
	Create(ctx context.Context, cv *models.Cv) error
	GetByID(ctx context.Context, id string) (*models.Cv, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Cv, error)
	Update(ctx context.Context, id string, upd models.CvUpdate) (*models.Cv, error)
	Delete(ctx context.Context, id string) error
}

// MessageRepository persists direct messages
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListBetween(ctx context.Context, userID, partnerID string) ([]*models.Message, error)
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	MarkRead(ctx context.Context, id string) (*models.Message, error)
}

// NotificationRepository persists in-app notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// SavedOpportunityRepository persists bookmarks. Save is idempotent per (user, opportunity).
type SavedOpportunityRepository interface {
	Save(ctx context.Context, userID, opportunityID string) (*models.SavedOpportunity, error)
	Delete(ctx context.Context, userID, opportunityID string) error
	Exists(ctx context.Context, userID, opportunityID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.SavedOpportunity, error)
}

// SessionRepository persists login sessions
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetActive(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Users              UserRepository
	Companies          CompanyRepository
	Opportunities      OpportunityRepository
	Applications       ApplicationRepository
	Cvs                CvRepository
	Messages           MessageRepository
	Notifications      NotificationRepository
	SavedOpportunities SavedOpportunityRepository
	Sessions           SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:              NewUserRepository(db),
		Companies:          NewCompanyRepository(db),
		Opportunities:      NewOpportunityRepository(db),
		Applications:       NewApplicationRepository(db),
		Cvs:                NewCvRepository(db),
		Messages:           NewMessageRepository(db),
		Notifications:      NewNotificationRepository(db),
		SavedOpportunities: NewSavedOpportunityRepository(db),
		Sessions:           NewSessionRepository(db),
	}
}
