package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PeriodDTO rango de fechas del reporte (YYYY-MM-DD, ambos inclusive).
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CategoryGroup ítems de una misma categoría, en el orden en que aparecieron.
type CategoryGroup[T any] struct {
	Category string `json:"category"`
	Items    []T    `json:"items"`
}
