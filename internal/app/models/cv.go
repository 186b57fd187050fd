package models

import "time"

// Cv is a structured resume owned by a job seeker
type Cv struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"userId" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	PersonalInfo   *string   `json:"personalInfo,omitempty" db:"personal_info"`
	Summary        *string   `json:"summary,omitempty" db:"summary"`
	Experience     *string   `json:"experience,omitempty" db:"experience"`
	Education      *string   `json:"education,omitempty" db:"education"`
	Skills         *string   `json:"skills,omitempty" db:"skills"`
	Languages      *string   `json:"languages,omitempty" db:"languages"`
	Certifications *string   `json:"certifications,omitempty" db:"certifications"`
	References     *string   `json:"references,omitempty" db:"references"`
	IsATSOptimized bool      `json:"isAtsOptimized" db:"is_ats_optimized"`
	ATSScore       *int      `json:"atsScore,omitempty" db:"ats_score"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CvUpdate lists the mutable CV sections
type CvUpdate struct {
	Title          *string
	PersonalInfo   *string
	Summary        *string
	Experience     *string
	Education      *string
	Skills         *string
	Languages      *string
	Certifications *string
	References     *string
	IsATSOptimized *bool
	ATSScore       *int
}
