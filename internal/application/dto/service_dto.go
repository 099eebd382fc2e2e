package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest body para POST /api/services.
type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
}

// UpdateServiceRequest body para PUT /api/services/:id (parcial).
type UpdateServiceRequest struct {
	Name            *string          `json:"name"`
	Category        *string          `json:"category"`
	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `json:"price"`
	Description     *string          `json:"description"`
	IsActive        *bool            `json:"is_active"`
}
