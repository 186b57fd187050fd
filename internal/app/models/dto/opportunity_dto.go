package dto

import (
	"strings"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
)

// CreateOpportunityRequest is the listing creation body. Status and counters are server controlled.
type CreateOpportunityRequest struct {
	CompanyID       string                 `json:"companyId" binding:"required" example:"5b6f1c9e-2f0c-4a55-9d2c-1a5f3e2b7c11"`
	Title           string                 `json:"title" binding:"required,max=200" example:"مطور واجهات"`
	TitleEn         *string                `json:"titleEn" binding:"omitempty,max=200" example:"Frontend developer"`
	Description     string                 `json:"description" binding:"required"`
	DescriptionEn   *string                `json:"descriptionEn"`
	Type            models.OpportunityType `json:"type" binding:"required,oneof=job training volunteer" example:"job"`
	Province        models.Province        `json:"province" binding:"required,province" example:"damascus"`
	Category        *string                `json:"category" binding:"omitempty,max=100"`
	Requirements    *string                `json:"requirements"`
	Benefits        *string                `json:"benefits"`
	SalaryMin       *int                   `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax       *int                   `json:"salaryMax" binding:"omitempty,min=0"`
	Currency        string                 `json:"currency" binding:"omitempty,len=3" example:"USD"`
	ExperienceLevel *string                `json:"experienceLevel" binding:"omitempty,max=50"`
	EducationLevel  *string                `json:"educationLevel" binding:"omitempty,max=50"`
	EmploymentType  *string                `json:"employmentType" binding:"omitempty,max=50"`
	Deadline        *time.Time             `json:"deadline"`
}

// ToModel builds a pending opportunity
func (r *CreateOpportunityRequest) ToModel() *models.Opportunity {
	currency := strings.ToUpper(r.Currency)
	if currency == "" {
		currency = "USD"
	}
	return &models.Opportunity{
		CompanyID:       r.CompanyID,
		Title:           r.Title,
		TitleEn:         r.TitleEn,
		Description:     r.Description,
		DescriptionEn:   r.DescriptionEn,
		Type:            r.Type,
		Province:        r.Province,
		Category:        r.Category,
		Requirements:    r.Requirements,
		Benefits:        r.Benefits,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		Currency:        currency,
		ExperienceLevel: r.ExperienceLevel,
		EducationLevel:  r.EducationLevel,
		EmploymentType:  r.EmploymentType,
		Deadline:        r.Deadline,
		Status:          models.OpportunityStatusPending,
	}
}

// UpdateOpportunityRequest is the owner patch body. Status only accepts closing an approved listing.
type UpdateOpportunityRequest struct {
	Title           *string                   `json:"title" binding:"omitempty,min=1,max=200"`
	TitleEn         *string                   `json:"titleEn" binding:"omitempty,max=200"`
	Description     *string                   `json:"description" binding:"omitempty,min=1"`
	DescriptionEn   *string                   `json:"descriptionEn"`
	Type            *models.OpportunityType   `json:"type" binding:"omitempty,oneof=job training volunteer"`
	Province        *models.Province          `json:"province" binding:"omitempty,province"`
	Category        *string                   `json:"category" binding:"omitempty,max=100"`
	Requirements    *string                   `json:"requirements"`
	Benefits        *string                   `json:"benefits"`
	SalaryMin       *int                      `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax       *int                      `json:"salaryMax" binding:"omitempty,min=0"`
	Currency        *string                   `json:"currency" binding:"omitempty,len=3"`
	ExperienceLevel *string                   `json:"experienceLevel" binding:"omitempty,max=50"`
	EducationLevel  *string                   `json:"educationLevel" binding:"omitempty,max=50"`
	EmploymentType  *string                   `json:"employmentType" binding:"omitempty,max=50"`
	Deadline        *time.Time                `json:"deadline"`
	Status          *models.OpportunityStatus `json:"status" binding:"omitempty,oneof=pending approved rejected expired"`
}

func (r *UpdateOpportunityRequest) ToModel() models.OpportunityUpdate {
	upd := models.OpportunityUpdate{
		Title:           r.Title,
		TitleEn:         r.TitleEn,
		Description:     r.Description,
		DescriptionEn:   r.DescriptionEn,
		Type:            r.Type,
		Province:        r.Province,
		Category:        r.Category,
		Requirements:    r.Requirements,
		Benefits:        r.Benefits,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		ExperienceLevel: r.ExperienceLevel,
		EducationLevel:  r.EducationLevel,
		EmploymentType:  r.EmploymentType,
		Deadline:        r.Deadline,
		Status:          r.Status,
	}
	if r.Currency != nil {
		currency := strings.ToUpper(*r.Currency)
		upd.Currency = &currency
	}
	return upd
}

// ModerateOpportunityRequest is the admin status change body
type ModerateOpportunityRequest struct {
	Status models.OpportunityStatus `json:"status" binding:"required,oneof=pending approved rejected expired" example:"approved"`
}

// OpportunityListQuery holds the listing filters from the query string
type OpportunityListQuery struct {
	Type      string `form:"type" binding:"omitempty,oneof=job training volunteer"`
	Province  string `form:"province" binding:"omitempty,province"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	Status    string `form:"status" binding:"omitempty,oneof=pending approved rejected expired"`
	CompanyID string `form:"companyId"`
}

// ToFilter maps non-empty query values onto a repository filter
func (q *OpportunityListQuery) ToFilter() models.OpportunityFilter {
	var f models.OpportunityFilter
	if q.Type != "" {
		t := models.OpportunityType(q.Type)
		f.Type = &t
	}
	if q.Province != "" {
		p := models.Province(q.Province)
		f.Province = &p
	}
	if q.Category != "" {
		c := q.Category
		f.Category = &c
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		f.Search = &s
	}
	if q.Status != "" {
		st := models.OpportunityStatus(q.Status)
		f.Status = &st
	}
	if q.CompanyID != "" {
		id := q.CompanyID
		f.CompanyID = &id
	}
	return f
}
