package dto

import "time"

// ExportParams defines query parameters for the full-data export. An empty
// Tables list means export everything.
type ExportParams struct {
	Tables []string `form:"tables"`
}

// ExportResponse is the full-data dump returned to administrators.
type ExportResponse struct {
	GeneratedAt time.Time                   `json:"generatedAt"`
	Tables      map[string][]map[string]any `json:"tables"`
}
