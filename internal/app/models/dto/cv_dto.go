package dto

import "github.com/findjobsyria/api/internal/app/models"

// CreateCvRequest is the CV creation body
type CreateCvRequest struct {
	Title          string  `json:"title" binding:"required,max=200" example:"Backend developer CV"`
	PersonalInfo   *string `json:"personalInfo"`
	Summary        *string `json:"summary"`
	Experience     *string `json:"experience"`
	Education      *string `json:"education"`
	Skills         *string `json:"skills"`
	Languages      *string `json:"languages"`
	Certifications *string `json:"certifications"`
	References     *string `json:"references"`
	IsATSOptimized bool    `json:"isAtsOptimized"`
	ATSScore       *int    `json:"atsScore" binding:"omitempty,min=0,max=100"`
}

func (r *CreateCvRequest) ToModel(userID string) *models.Cv {
	return &models.Cv{
		UserID:         userID,
		Title:          r.Title,
		PersonalInfo:   r.PersonalInfo,
		Summary:        r.Summary,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Languages:      r.Languages,
		Certifications: r.Certifications,
		References:     r.References,
		IsATSOptimized: r.IsATSOptimized,
		ATSScore:       r.ATSScore,
	}
}

// UpdateCvRequest is the CV patch body
type UpdateCvRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=200"`
	PersonalInfo   *string `json:"personalInfo"`
	Summary        *string `json:"summary"`
	Experience     *string `json:"experience"`
	Education      *string `json:"education"`
	Skills         *string `json:"skills"`
	Languages      *string `json:"languages"`
	Certifications *string `json:"certifications"`
	References     *string `json:"references"`
	IsATSOptimized *bool   `json:"isAtsOptimized"`
	ATSScore       *int    `json:"atsScore" binding:"omitempty,min=0,max=100"`
}

func (r *UpdateCvRequest) ToModel() models.CvUpdate {
	return models.CvUpdate{
		Title:          r.Title,
		PersonalInfo:   r.PersonalInfo,
		Summary:        r.Summary,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Languages:      r.Languages,
		Certifications: r.Certifications,
		References:     r.References,
		IsATSOptimized: r.IsATSOptimized,
		ATSScore:       r.ATSScore,
	}
}
