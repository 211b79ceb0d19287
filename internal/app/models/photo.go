package models

// Photo is an uploaded alumno photograph, served from URL
type Photo struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}
