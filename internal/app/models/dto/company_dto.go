package dto

import "github.com/findjobsyria/api/internal/app/models"

// CreateCompanyRequest is the company creation body. The owner is always the caller.
type CreateCompanyRequest struct {
	Name          string           `json:"name" binding:"required,max=200" example:"Qasioun Tech"`
	NameEn        *string          `json:"nameEn" binding:"omitempty,max=200"`
	Logo          *string          `json:"logo" binding:"omitempty,max=2048"`
	CoverImage    *string          `json:"coverImage" binding:"omitempty,max=2048"`
	Description   *string          `json:"description"`
	DescriptionEn *string          `json:"descriptionEn"`
	Website       *string          `json:"website" binding:"omitempty,url"`
	Industry      *string          `json:"industry" binding:"omitempty,max=100"`
	EmployeeCount *string          `json:"employeeCount" binding:"omitempty,max=32" example:"11-50"`
	Province      *models.Province `json:"province" binding:"omitempty,province"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	FoundedYear   *int             `json:"foundedYear" binding:"omitempty,min=1800,max=2100"`
}

// ToModel builds a company owned by userID
func (r *CreateCompanyRequest) ToModel(userID string) *models.Company {
	return &models.Company{
		UserID:        userID,
		Name:          r.Name,
		NameEn:        r.NameEn,
		Logo:          r.Logo,
		CoverImage:    r.CoverImage,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Website:       r.Website,
		Industry:      r.Industry,
		EmployeeCount: r.EmployeeCount,
		Province:      r.Province,
		Address:       r.Address,
		FoundedYear:   r.FoundedYear,
	}
}

// UpdateCompanyRequest is the company patch body
type UpdateCompanyRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	NameEn        *string          `json:"nameEn" binding:"omitempty,max=200"`
	Logo          *string          `json:"logo" binding:"omitempty,max=2048"`
	CoverImage    *string          `json:"coverImage" binding:"omitempty,max=2048"`
	Description   *string          `json:"description"`
	DescriptionEn *string          `json:"descriptionEn"`
	Website       *string          `json:"website" binding:"omitempty,url"`
	Industry      *string          `json:"industry" binding:"omitempty,max=100"`
	EmployeeCount *string          `json:"employeeCount" binding:"omitempty,max=32"`
	Province      *models.Province `json:"province" binding:"omitempty,province"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	FoundedYear   *int             `json:"foundedYear" binding:"omitempty,min=1800,max=2100"`
}

func (r *UpdateCompanyRequest) ToModel() models.CompanyUpdate {
	return models.CompanyUpdate{
		Name:          r.Name,
		NameEn:        r.NameEn,
		Logo:          r.Logo,
		CoverImage:    r.CoverImage,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Website:       r.Website,
		Industry:      r.Industry,
		EmployeeCount: r.EmployeeCount,
		Province:      r.Province,
		Address:       r.Address,
		FoundedYear:   r.FoundedYear,
	}
}

// CompanyListQuery filters GET /companies
type CompanyListQuery struct {
	UserID string `form:"userId"`
}
