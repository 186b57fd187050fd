package dto

// SaveOpportunityRequest is the bookmark body
type SaveOpportunityRequest struct {
	OpportunityID string `json:"opportunityId" binding:"required"`
}

// SavedStatusResponse answers whether the caller bookmarked an opportunity
type SavedStatusResponse struct {
	IsSaved bool `json:"isSaved" example:"true"`
}
