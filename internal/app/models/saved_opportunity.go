package models

import "time"

// SavedOpportunity is a user's bookmark of an opportunity
type SavedOpportunity struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	OpportunityID string    `json:"opportunityId" db:"opportunity_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
