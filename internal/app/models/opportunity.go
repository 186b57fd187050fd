package models

import "time"

// Opportunity is a job, training or volunteering listing posted by a company
type Opportunity struct {
	ID               string            `json:"id" db:"id"`
	CompanyID        string            `json:"companyId" db:"company_id"`
	Title            string            `json:"title" db:"title"`
	TitleEn          *string           `json:"titleEn,omitempty" db:"title_en"`
	Description      string            `json:"description" db:"description"`
	DescriptionEn    *string           `json:"descriptionEn,omitempty" db:"description_en"`
	Type             OpportunityType   `json:"type" db:"type"`
	Province         Province          `json:"province" db:"province"`
	Category         *string           `json:"category,omitempty" db:"category"`
	Requirements     *string           `json:"requirements,omitempty" db:"requirements"`
	Benefits         *string           `json:"benefits,omitempty" db:"benefits"`
	SalaryMin        *int              `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax        *int              `json:"salaryMax,omitempty" db:"salary_max"`
	Currency         string            `json:"currency" db:"currency"`
	ExperienceLevel  *string           `json:"experienceLevel,omitempty" db:"experience_level"`
	EducationLevel   *string           `json:"educationLevel,omitempty" db:"education_level"`
	EmploymentType   *string           `json:"employmentType,omitempty" db:"employment_type"`
	Deadline         *time.Time        `json:"deadline,omitempty" db:"deadline"`
	Status           OpportunityStatus `json:"status" db:"status"`
	AIMatchScore     *int              `json:"aiMatchScore,omitempty" db:"ai_match_score"`
	ViewCount        int               `json:"viewCount" db:"view_count"`
	ApplicationCount int               `json:"applicationCount" db:"application_count"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`
}

// OpportunityFilter narrows a listing query. Every set field must match.
type OpportunityFilter struct {
	Type      *OpportunityType
	Province  *Province
	Category  *string
	Status    *OpportunityStatus
	CompanyID *string
	// Search is a case-insensitive substring matched against title or description
	Search *string
}

// OpportunityUpdate lists the fields an owning employer may change
type OpportunityUpdate struct {
	Title           *string
	TitleEn         *string
	Description     *string
	DescriptionEn   *string
	Type            *OpportunityType
	Province        *Province
	Category        *string
	Requirements    *string
	Benefits        *string
	SalaryMin       *int
	SalaryMax       *int
	Currency        *string
	ExperienceLevel *string
	EducationLevel  *string
	EmploymentType  *string
	Deadline        *time.Time
	Status          *OpportunityStatus
}
