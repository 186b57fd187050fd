package dto

import "github.com/findjobsyria/api/internal/app/models"

// StatsResponse counts approved opportunities by type
type StatsResponse struct {
	Jobs      int64 `json:"jobs" example:"120"`
	Training  int64 `json:"training" example:"30"`
	Volunteer int64 `json:"volunteer" example:"12"`
	Total     int64 `json:"total" example:"162"`
}

// ProvinceStat counts approved opportunities in one province
type ProvinceStat struct {
	Province models.Province `json:"province" example:"aleppo"`
	Count    int64           `json:"count" example:"17"`
}
