package entity

import "github.com/shopspring/decimal"

// Therapist representa un terapeuta; HourlyIncentive es el incentivo por cada 60 minutos atendidos.
type Therapist struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	HourlyIncentive decimal.Decimal `json:"hourlyIncentive"`
}
