package entity

import "github.com/shopspring/decimal"

// Service representa un tratamiento del catálogo (masaje, facial, paquete...).
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"durationMinutes"` // > 0, validado al registrar
	Price           decimal.Decimal `json:"price"`           // IDR, sin decimales
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
}
