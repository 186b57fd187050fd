package dto

// MarkAllReadResponse reports how many notifications were updated
type MarkAllReadResponse struct {
	Success bool  `json:"success" example:"true"`
	Updated int64 `json:"updated" example:"3"`
}
