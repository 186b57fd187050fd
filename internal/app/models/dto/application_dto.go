package dto

import "github.com/findjobsyria/api/internal/app/models"

// CreateApplicationRequest is the apply body. The applicant is always the caller.
type CreateApplicationRequest struct {
	OpportunityID string  `json:"opportunityId" binding:"required"`
	CvID          *string `json:"cvId"`
	CoverLetter   *string `json:"coverLetter" binding:"omitempty,max=10000"`
}

// UpdateApplicationStatusRequest is the employer review body
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending reviewed shortlisted rejected accepted" example:"shortlisted"`
}

// ApplicationListQuery selects whose applications to list; exactly one is expected.
type ApplicationListQuery struct {
	UserID        string `form:"userId"`
	OpportunityID string `form:"opportunityId"`
}
