// Package testutil provides in-memory repository implementations for tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/google/uuid"
)

// MemoryStore keeps every entity in maps guarded by one mutex. Each write
// advances a fake clock by one millisecond so creation order is stable.
type MemoryStore struct {
	mu    sync.Mutex
	clock time.Time

	users         map[string]models.User
	companies     map[string]models.Company
	opportunities map[string]models.Opportunity
	applications  map[string]models.Application
	cvs           map[string]models.Cv
	messages      map[string]models.Message
	notifications map[string]models.Notification
	saved         map[string]models.SavedOpportunity
	sessions      map[string]models.Session
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:         map[string]models.User{},
		companies:     map[string]models.Company{},
		opportunities: map[string]models.Opportunity{},
		applications:  map[string]models.Application{},
		cvs:           map[string]models.Cv{},
		messages:      map[string]models.Message{},
		notifications: map[string]models.Notification{},
		saved:         map[string]models.SavedOpportunity{},
		sessions:      map[string]models.Session{},
	}
}

// Repositories exposes the store through the repository interfaces
func (s *MemoryStore) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Users:              &memUsers{s},
		Companies:          &memCompanies{s},
		Opportunities:      &memOpportunities{s},
		Applications:       &memApplications{s},
		Cvs:                &memCvs{s},
		Messages:           &memMessages{s},
		Notifications:      &memNotifications{s},
		SavedOpportunities: &memSaved{s},
		Sessions:           &memSessions{s},
	}
}

func (s *MemoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func notFound(resource string) error {
	return apperrors.NewResourceNotFoundError(resource + " not found")
}

func newestFirst[T any](items []*T, createdAt func(*T) time.Time) []*T {
	sort.SliceStable(items, func(i, j int) bool { return createdAt(items[i]).After(createdAt(items[j])) })
	return items
}

// CountUsers returns the number of stored users
func (s *MemoryStore) CountUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// CountSessions returns the number of stored sessions
func (s *MemoryStore) CountSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ExpireSession moves a session's expiry into the past
func (s *MemoryStore) ExpireSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.ExpiresAt = time.Now().Add(-time.Minute)
		s.sessions[id] = sess
	}
}

// --- users

type memUsers struct{ s *MemoryStore }

func (r *memUsers) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeIndividual
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "ar"
	}
	user.CreatedAt = r.s.tick()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUsers) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, notFound("user")
}

func (r *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *memUsers) Update(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Avatar != nil {
		u.Avatar = upd.Avatar
	}
	if upd.Phone != nil {
		u.Phone = upd.Phone
	}
	if upd.Province != nil {
		u.Province = upd.Province
	}
	if upd.Bio != nil {
		u.Bio = upd.Bio
	}
	if upd.PreferredLanguage != nil {
		u.PreferredLanguage = *upd.PreferredLanguage
	}
	r.s.users[id] = u
	return &u, nil
}

// --- companies

type memCompanies struct{ s *MemoryStore }

func (r *memCompanies) Create(_ context.Context, c *models.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[c.UserID]; !ok {
		return notFound("user")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = r.s.tick()
	r.s.companies[c.ID] = *c
	return nil
}

func (r *memCompanies) GetByID(_ context.Context, id string) (*models.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, notFound("company")
	}
	return &c, nil
}

func (r *memCompanies) ListByUser(_ context.Context, userID string) ([]*models.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Company, 0)
	for _, c := range r.s.companies {
		if c.UserID == userID {
			c := c
			out = append(out, &c)
		}
	}
	return newestFirst(out, func(c *models.Company) time.Time { return c.CreatedAt }), nil
}

func (r *memCompanies) Update(_ context.Context, id string, upd models.CompanyUpdate) (*models.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.companies[id]
	if !ok {
		return nil, notFound("company")
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.NameEn != nil {
		c.NameEn = upd.NameEn
	}
	if upd.Logo != nil {
		c.Logo = upd.Logo
	}
	if upd.CoverImage != nil {
		c.CoverImage = upd.CoverImage
	}
	if upd.Description != nil {
		c.Description = upd.Description
	}
	if upd.DescriptionEn != nil {
		c.DescriptionEn = upd.DescriptionEn
	}
	if upd.Website != nil {
		c.Website = upd.Website
	}
	if upd.Industry != nil {
		c.Industry = upd.Industry
	}
	if upd.EmployeeCount != nil {
		c.EmployeeCount = upd.EmployeeCount
	}
	if upd.Province != nil {
		c.Province = upd.Province
	}
	if upd.Address != nil {
		c.Address = upd.Address
	}
	if upd.FoundedYear != nil {
		c.FoundedYear = upd.FoundedYear
	}
	r.s.companies[id] = c
	return &c, nil
}

// --- opportunities

type memOpportunities struct{ s *MemoryStore }

func (r *memOpportunities) Create(_ context.Context, o *models.Opportunity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[o.CompanyID]; !ok {
		return notFound("company")
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = models.OpportunityStatusPending
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	o.ViewCount = 0
	o.ApplicationCount = 0
	o.CreatedAt = r.s.tick()
	r.s.opportunities[o.ID] = *o
	return nil
}

func (r *memOpportunities) GetByID(_ context.Context, id string) (*models.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.opportunities[id]
	if !ok {
		return nil, notFound("opportunity")
	}
	return &o, nil
}

func containsFold(field *string, term string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), term)
}

func matchesFilter(o models.Opportunity, f models.OpportunityFilter) bool {
	if f.Type != nil && o.Type != *f.Type {
		return false
	}
	if f.Province != nil && o.Province != *f.Province {
		return false
	}
	if f.Category != nil && (o.Category == nil || *o.Category != *f.Category) {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.CompanyID != nil && o.CompanyID != *f.CompanyID {
		return false
	}
	if f.Search != nil && *f.Search != "" {
		term := strings.ToLower(*f.Search)
		if !containsFold(&o.Title, term) && !containsFold(&o.Description, term) {
			return false
		}
	}
	return true
}

func (r *memOpportunities) List(_ context.Context, filter models.OpportunityFilter) ([]*models.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Opportunity, 0)
	for _, o := range r.s.opportunities {
		if matchesFilter(o, filter) {
			o := o
			out = append(out, &o)
		}
	}
	return newestFirst(out, func(o *models.Opportunity) time.Time { return o.CreatedAt }), nil
}

func (r *memOpportunities) Update(_ context.Context, id string, upd models.OpportunityUpdate) (*models.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.opportunities[id]
	if !ok {
		return nil, notFound("opportunity")
	}
	if upd.Title != nil {
		o.Title = *upd.Title
	}
	if upd.TitleEn != nil {
		o.TitleEn = upd.TitleEn
	}
	if upd.Description != nil {
		o.Description = *upd.Description
	}
	if upd.DescriptionEn != nil {
		o.DescriptionEn = upd.DescriptionEn
	}
	if upd.Type != nil {
		o.Type = *upd.Type
	}
	if upd.Province != nil {
		o.Province = *upd.Province
	}
	if upd.Category != nil {
		o.Category = upd.Category
	}
	if upd.Requirements != nil {
		o.Requirements = upd.Requirements
	}
	if upd.Benefits != nil {
		o.Benefits = upd.Benefits
	}
	if upd.SalaryMin != nil {
		o.SalaryMin = upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		o.SalaryMax = upd.SalaryMax
	}
	if upd.Currency != nil {
		o.Currency = *upd.Currency
	}
	if upd.ExperienceLevel != nil {
		o.ExperienceLevel = upd.ExperienceLevel
	}
	if upd.EducationLevel != nil {
		o.EducationLevel = upd.EducationLevel
	}
	if upd.EmploymentType != nil {
		o.EmploymentType = upd.EmploymentType
	}
	if upd.Deadline != nil {
		o.Deadline = upd.Deadline
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	r.s.opportunities[id] = o
	return &o, nil
}

func (r *memOpportunities) UpdateStatus(_ context.Context, id string, status models.OpportunityStatus) (*models.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.opportunities[id]
	if !ok {
		return nil, notFound("opportunity")
	}
	o.Status = status
	r.s.opportunities[id] = o
	return &o, nil
}

func (r *memOpportunities) IncrementViewCount(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.opportunities[id]
	if !ok {
		return notFound("opportunity")
	}
	o.ViewCount++
	r.s.opportunities[id] = o
	return nil
}

func (r *memOpportunities) CountApprovedByType(_ context.Context) (map[models.OpportunityType]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[models.OpportunityType]int64{}
	for _, o := range r.s.opportunities {
		if o.Status == models.OpportunityStatusApproved {
			counts[o.Type]++
		}
	}
	return counts, nil
}

func (r *memOpportunities) CountApprovedByProvince(_ context.Context) (map[models.Province]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[models.Province]int64{}
	for _, o := range r.s.opportunities {
		if o.Status == models.OpportunityStatusApproved {
			counts[o.Province]++
		}
	}
	return counts, nil
}

// --- applications

type memApplications struct{ s *MemoryStore }

func (r *memApplications) Create(_ context.Context, a *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	opp, ok := r.s.opportunities[a.OpportunityID]
	if !ok {
		return notFound("opportunity")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.ApplicationStatusPending
	}
	a.CreatedAt = r.s.tick()
	r.s.applications[a.ID] = *a

	opp.ApplicationCount++
	r.s.opportunities[opp.ID] = opp
	return nil
}

func (r *memApplications) GetByID(_ context.Context, id string) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, notFound("application")
	}
	return &a, nil
}

func (r *memApplications) list(match func(models.Application) bool) []*models.Application {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Application, 0)
	for _, a := range r.s.applications {
		if match(a) {
			a := a
			out = append(out, &a)
		}
	}
	return newestFirst(out, func(a *models.Application) time.Time { return a.CreatedAt })
}

func (r *memApplications) ListByUser(_ context.Context, userID string) ([]*models.Application, error) {
	return r.list(func(a models.Application) bool { return a.UserID == userID }), nil
}

func (r *memApplications) ListByOpportunity(_ context.Context, opportunityID string) ([]*models.Application, error) {
	return r.list(func(a models.Application) bool { return a.OpportunityID == opportunityID }), nil
}

func (r *memApplications) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, notFound("application")
	}
	a.Status = status
	r.s.applications[id] = a
	return &a, nil
}

// --- cvs

type memCvs struct{ s *MemoryStore }

func (r *memCvs) Create(_ context.Context, cv *models.Cv) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cv.ID == "" {
		cv.ID = uuid.NewString()
	}
	cv.CreatedAt = r.s.tick()
	cv.UpdatedAt = cv.CreatedAt
	r.s.cvs[cv.ID] = *cv
	return nil
}

func (r *memCvs) GetByID(_ context.Context, id string) (*models.Cv, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cv, ok := r.s.cvs[id]
	if !ok {
		return nil, notFound("cv")
	}
	return &cv, nil
}

func (r *memCvs) ListByUser(_ context.Context, userID string) ([]*models.Cv, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Cv, 0)
	for _, cv := range r.s.cvs {
		if cv.UserID == userID {
			cv := cv
			out = append(out, &cv)
		}
	}
	return newestFirst(out, func(cv *models.Cv) time.Time { return cv.CreatedAt }), nil
}

func (r *memCvs) Update(_ context.Context, id string, upd models.CvUpdate) (*models.Cv, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cv, ok := r.s.cvs[id]
	if !ok {
		return nil, notFound("cv")
	}
	if upd.Title != nil {
		cv.Title = *upd.Title
	}
	if upd.PersonalInfo != nil {
		cv.PersonalInfo = upd.PersonalInfo
	}
	if upd.Summary != nil {
		cv.Summary = upd.Summary
	}
	if upd.Experience != nil {
		cv.Experience = upd.Experience
	}
	if upd.Education != nil {
		cv.Education = upd.Education
	}
	if upd.Skills != nil {
		cv.Skills = upd.Skills
	}
	if upd.Languages != nil {
		cv.Languages = upd.Languages
	}
	if upd.Certifications != nil {
		cv.Certifications = upd.Certifications
	}
	if upd.References != nil {
		cv.References = upd.References
	}
	if upd.IsATSOptimized != nil {
		cv.IsATSOptimized = *upd.IsATSOptimized
	}
	if upd.ATSScore != nil {
		cv.ATSScore = upd.ATSScore
	}
	cv.UpdatedAt = r.s.tick()
	r.s.cvs[id] = cv
	return &cv, nil
}

func (r *memCvs) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cvs[id]; !ok {
		return notFound("cv")
	}
	delete(r.s.cvs, id)
	for appID, a := range r.s.applications {
		if a.CvID != nil && *a.CvID == id {
			a.CvID = nil
			r.s.applications[appID] = a
		}
	}
	return nil
}

// --- messages

type memMessages struct{ s *MemoryStore }

func (r *memMessages) Create(_ context.Context, m *models.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[m.ReceiverID]; !ok {
		return notFound("receiver or opportunity")
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = r.s.tick()
	r.s.messages[m.ID] = *m
	return nil
}

func (r *memMessages) GetByID(_ context.Context, id string) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, notFound("message")
	}
	return &m, nil
}

func (r *memMessages) ListBetween(_ context.Context, userID, partnerID string) ([]*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Message, 0)
	for _, m := range r.s.messages {
		if (m.SenderID == userID && m.ReceiverID == partnerID) || (m.SenderID == partnerID && m.ReceiverID == userID) {
			m := m
			out = append(out, &m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memMessages) ListConversations(_ context.Context, userID string) ([]models.Conversation, error) {
	r.s.mu.Lock()
	out := make([]*models.Message, 0)
	for _, m := range r.s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			m := m
			out = append(out, &m)
		}
	}
	r.s.mu.Unlock()

	out = newestFirst(out, func(m *models.Message) time.Time { return m.CreatedAt })
	return repositories.GroupConversations(userID, out), nil
}

func (r *memMessages) MarkRead(_ context.Context, id string) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, notFound("message")
	}
	m.IsRead = true
	r.s.messages[id] = m
	return &m, nil
}

// --- notifications

type memNotifications struct{ s *MemoryStore }

func (r *memNotifications) Create(_ context.Context, n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[n.UserID]; !ok {
		return notFound("user")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = r.s.tick()
	r.s.notifications[n.ID] = *n
	return nil
}

func (r *memNotifications) GetByID(_ context.Context, id string) (*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, notFound("notification")
	}
	return &n, nil
}

func (r *memNotifications) ListByUser(_ context.Context, userID string) ([]*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Notification, 0)
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			n := n
			out = append(out, &n)
		}
	}
	return newestFirst(out, func(n *models.Notification) time.Time { return n.CreatedAt }), nil
}

func (r *memNotifications) MarkRead(_ context.Context, id string) (*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, notFound("notification")
	}
	n.IsRead = true
	r.s.notifications[id] = n
	return &n, nil
}

func (r *memNotifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var changed int64
	for id, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			r.s.notifications[id] = n
			changed++
		}
	}
	return changed, nil
}

// --- saved opportunities

type memSaved struct{ s *MemoryStore }

func savedKey(userID, opportunityID string) string {
	return userID + "|" + opportunityID
}

func (r *memSaved) Save(_ context.Context, userID, opportunityID string) (*models.SavedOpportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.opportunities[opportunityID]; !ok {
		return nil, notFound("opportunity")
	}
	key := savedKey(userID, opportunityID)
	if existing, ok := r.s.saved[key]; ok {
		return &existing, nil
	}
	saved := models.SavedOpportunity{ID: uuid.NewString(), UserID: userID, OpportunityID: opportunityID, CreatedAt: r.s.tick()}
	r.s.saved[key] = saved
	return &saved, nil
}

func (r *memSaved) Delete(_ context.Context, userID, opportunityID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.saved, savedKey(userID, opportunityID))
	return nil
}

func (r *memSaved) Exists(_ context.Context, userID, opportunityID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.saved[savedKey(userID, opportunityID)]
	return ok, nil
}

func (r *memSaved) ListByUser(_ context.Context, userID string) ([]*models.SavedOpportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.SavedOpportunity, 0)
	for _, s := range r.s.saved {
		if s.UserID == userID {
			s := s
			out = append(out, &s)
		}
	}
	return newestFirst(out, func(s *models.SavedOpportunity) time.Time { return s.CreatedAt }), nil
}

// --- sessions

type memSessions struct{ s *MemoryStore }

func (r *memSessions) Create(_ context.Context, session *models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[session.UserID]; !ok {
		return notFound("user")
	}
	session.CreatedAt = time.Now()
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *memSessions) GetActive(_ context.Context, id string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if sess.IsExpired(time.Now()) {
		return nil, apperrors.ErrSessionExpired
	}
	return &sess, nil
}

func (r *memSessions) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, id)
	return nil
}

func (r *memSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, sess := range r.s.sessions {
		if sess.IsExpired(now) {
			delete(r.s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}
