package entity

import "github.com/shopspring/decimal"

// Branch representa una sucursal del spa operando dentro de un hotel socio.
// ProfitSharingPercent es la porción (0–100) de la utilidad neta que retiene el spa;
// el hotel recibe el resto.
type Branch struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	HotelPartner         string          `json:"hotelPartner"`
	Location             string          `json:"location"`
	ProfitSharingPercent decimal.Decimal `json:"profitSharingPercent"`
	IsActive             bool            `json:"isActive"`
}
