package dto

// UploadResponse mirrors the response of the file server the form used to call
type UploadResponse struct {
	Success bool   `json:"success" example:"true"`
	URL     string `json:"url" example:"/uploads/2b1f0c8e.png"`
	Width   int    `json:"width,omitempty" example:"350"`
	Height  int    `json:"height,omitempty" example:"350"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
