package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/pkg/auth"
	"github.com/findjobsyria/api/internal/pkg/cache"
	"github.com/findjobsyria/api/internal/testutil"
	"github.com/rs/zerolog"
)

type pushed struct {
	userID    string
	eventType string
	payload   interface{}
}

type recordingRealtime struct {
	mu     sync.Mutex
	events []pushed
}

func (r *recordingRealtime) PushToUser(userID, eventType string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, pushed{userID: userID, eventType: eventType, payload: payload})
}

func (r *recordingRealtime) For(userID string) []pushed {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []pushed
	for _, e := range r.events {
		if e.userID == userID {
			out = append(out, e)
		}
	}
	return out
}

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

// mapCache keeps JSON values in memory
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return cache.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) Close() error { return nil }

type env struct {
	store    *testutil.MemoryStore
	svc      *services.Services
	tokens   *auth.SessionTokenService
	realtime *recordingRealtime
	events   *recordingPublisher
	cache    *mapCache

	employer *models.User
	seeker   *models.User
	stranger *models.User
	admin    *models.User
	company  *models.Company
	listing  *models.Opportunity
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := testutil.NewMemoryStore()
	e := &env{
		store:    store,
		tokens:   auth.NewSessionTokenService(auth.SessionTokenConfig{SecretKey: "test-secret", Issuer: "findjobsyria"}),
		realtime: &recordingRealtime{},
		events:   &recordingPublisher{},
		cache:    newMapCache(),
	}
	e.svc = services.NewServices(services.Dependencies{
		Repos:      store.Repositories(),
		Tokens:     e.tokens,
		Cache:      e.cache,
		Events:     e.events,
		Realtime:   e.realtime,
		SessionTTL: time.Hour,
		StatsTTL:   time.Minute,
		BcryptCost: 4,
		Logger:     zerolog.Nop(),
	})

	e.employer = store.SeedUser(t, "employer", models.UserTypeEmployer)
	e.seeker = store.SeedUser(t, "seeker", models.UserTypeIndividual)
	e.stranger = store.SeedUser(t, "stranger", models.UserTypeEmployer)
	e.admin = store.SeedUser(t, "admin", models.UserTypeAdmin)
	e.company = store.SeedCompany(t, e.employer.ID, "Qasioun Tech")
	e.listing = store.SeedOpportunity(t, e.company.ID, models.OpportunityTypeJob, models.ProvinceDamascus, models.OpportunityStatusApproved)
	return e
}

func (e *env) notificationsOf(t *testing.T, user *models.User) []*models.Notification {
	t.Helper()
	list, err := e.svc.Notification.ListNotifications(context.Background(), user.Identity())
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	return list
}
