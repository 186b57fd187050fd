package models

import "time"

// Application links an applicant to an opportunity, optionally with a CV
type Application struct {
	ID            string            `json:"id" db:"id"`
	OpportunityID string            `json:"opportunityId" db:"opportunity_id"`
	UserID        string            `json:"userId" db:"user_id"`
	CvID          *string           `json:"cvId,omitempty" db:"cv_id"`
	CoverLetter   *string           `json:"coverLetter,omitempty" db:"cover_letter"`
	Status        ApplicationStatus `json:"status" db:"status"`
	AIScore       *int              `json:"aiScore,omitempty" db:"ai_score"`
	AIAnalysis    *string           `json:"aiAnalysis,omitempty" db:"ai_analysis"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
}
