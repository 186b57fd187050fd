package models

import "time"

// Company is an employer profile owned by one user
type Company struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	NameEn        *string   `json:"nameEn,omitempty" db:"name_en"`
	Logo          *string   `json:"logo,omitempty" db:"logo"`
	CoverImage    *string   `json:"coverImage,omitempty" db:"cover_image"`
	Description   *string   `json:"description,omitempty" db:"description"`
	DescriptionEn *string   `json:"descriptionEn,omitempty" db:"description_en"`
	Website       *string   `json:"website,omitempty" db:"website"`
	Industry      *string   `json:"industry,omitempty" db:"industry"`
	EmployeeCount *string   `json:"employeeCount,omitempty" db:"employee_count"`
	Province      *Province `json:"province,omitempty" db:"province"`
	Address       *string   `json:"address,omitempty" db:"address"`
	FoundedYear   *int      `json:"foundedYear,omitempty" db:"founded_year"`
	IsVerified    bool      `json:"isVerified" db:"is_verified"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// CompanyUpdate lists the mutable company fields
type CompanyUpdate struct {
	Name          *string
	NameEn        *string
	Logo          *string
	CoverImage    *string
	Description   *string
	DescriptionEn *string
	Website       *string
	Industry      *string
	EmployeeCount *string
	Province      *Province
	Address       *string
	FoundedYear   *int
}
