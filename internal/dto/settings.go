package dto

import (
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// UpdateSettingsRequest defines the mutable organization settings.
type UpdateSettingsRequest struct {
	OrganizationName *string `json:"organizationName"`
	CurrencyCode     *string `json:"currencyCode" binding:"omitempty,len=3"`
}

// SettingsResponse defines the data returned for organization settings.
type SettingsResponse struct {
	OrganizationName string    `json:"organizationName"`
	CurrencyCode     string    `json:"currencyCode"`
	CurrencySymbol   string    `json:"currencySymbol"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy    string    `json:"lastUpdatedBy"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO.
// The currency symbol is resolved from the code for display convenience.
func ToSettingsResponse(s *domain.Settings, symbol string) SettingsResponse {
	return SettingsResponse{
		OrganizationName: s.OrganizationName,
		CurrencyCode:     s.CurrencyCode,
		CurrencySymbol:   symbol,
		LastUpdatedAt:    s.LastUpdatedAt,
		LastUpdatedBy:    s.LastUpdatedBy,
	}
}
