package dto

// UploadResponse returns the public URL of a stored image
type UploadResponse struct {
	URL  string `json:"url" example:"http://localhost:8080/uploads/avatars/8d3c.png"`
	Kind string `json:"kind" example:"avatar"`
}
