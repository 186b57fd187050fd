package services

import (
	"context"
	"time"

	appauth "github.com/findjobsyria/api/internal/app/auth"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/pkg/cache"
	"github.com/findjobsyria/api/internal/pkg/events"
	"github.com/rs/zerolog"
)

// RealtimePublisher pushes an event to the open connections of one user
type RealtimePublisher interface {
	PushToUser(userID, eventType string, payload interface{})
}

type noopRealtime struct{}

func (noopRealtime) PushToUser(string, string, interface{}) {}

// NewNoopRealtime returns a publisher that drops every event
func NewNoopRealtime() RealtimePublisher {
	return noopRealtime{}
}

// Dependencies is everything the services need from the outside
type Dependencies struct {
	Repos      *repositories.Repositories
	Tokens     *auth.SessionTokenService
	Cache      cache.Cache
	Events     events.Publisher
	Realtime   RealtimePublisher
	SessionTTL time.Duration
	StatsTTL   time.Duration
	BcryptCost int
	Logger     zerolog.Logger
}

// Services groups every business service
type Services struct {
	Authorization *appauth.AuthorizationService
	Auth          AuthService
	User          UserService
	Company       CompanyService
	Opportunity   OpportunityService
	Application   ApplicationService
	Cv            CvService
	Message       MessageService
	Notification  NotificationService
	Saved         SavedOpportunityService
	Stats         StatsService
}

// NewServices wires the services together. Nil optional dependencies fall back to no-ops.
func NewServices(deps Dependencies) *Services {
	if deps.Cache == nil {
		deps.Cache = cache.NewNoop()
	}
	if deps.Events == nil {
		deps.Events = events.NewNoopPublisher()
	}
	if deps.Realtime == nil {
		deps.Realtime = NewNoopRealtime()
	}
	if deps.BcryptCost == 0 {
		deps.BcryptCost = auth.BcryptCost
	}

	authz := appauth.NewAuthorizationService(deps.Repos)
	stats := NewStatsService(deps.Repos.Opportunities, deps.Cache, deps.StatsTTL, deps.Logger)
	notifications := NewNotificationService(deps.Repos.Notifications, deps.Realtime, deps.Logger)

	return &Services{
		Authorization: authz,
		Auth:          NewAuthService(deps.Repos.Users, deps.Repos.Sessions, deps.Tokens, deps.SessionTTL, deps.BcryptCost, deps.Logger),
		User:          NewUserService(deps.Repos.Users, authz, deps.Logger),
		Company:       NewCompanyService(deps.Repos.Companies, authz, deps.Logger),
		Opportunity:   NewOpportunityService(deps.Repos.Opportunities, deps.Repos.Companies, authz, stats, notifications, deps.Events, deps.Logger),
		Application:   NewApplicationService(deps.Repos, authz, notifications, deps.Events, deps.Logger),
		Cv:            NewCvService(deps.Repos.Cvs, authz, deps.Logger),
		Message:       NewMessageService(deps.Repos.Messages, deps.Repos.Users, notifications, deps.Realtime, deps.Events, deps.Logger),
		Notification:  notifications,
		Saved:         NewSavedOpportunityService(deps.Repos.SavedOpportunities, deps.Logger),
		Stats:         stats,
	}
}

// publishEvent emits a domain event; delivery failures never fail the request
func publishEvent(ctx context.Context, pub events.Publisher, logger zerolog.Logger, subject string, payload interface{}) {
	if err := pub.Publish(ctx, subject, payload); err != nil {
		logger.Warn().Err(err).Str("subject", subject).Msg("Failed to publish domain event")
	}
}
