package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/Spacity-api/internal/application/dto"
	"github.com/jhoicas/Spacity-api/internal/domain"
	"github.com/jhoicas/Spacity-api/pkg/format"
)

// Clock fuente de la hora actual; los casos de uso la reciben para poder fijarla en tests.
type Clock func() time.Time

// lastNDays [hoy-(n-1), hoy].
func lastNDays(now time.Time, n int) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: format.ISODate(now.AddDate(0, 0, -(n - 1))),
		EndDate:   format.ISODate(now),
	}
}

// monthToDate [primer día del mes, hoy].
func monthToDate(now time.Time) dto.PeriodDTO {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return dto.PeriodDTO{StartDate: format.ISODate(first), EndDate: format.ISODate(now)}
}

// resolvePeriod completa con def los extremos vacíos y valida formato y orden.
func resolvePeriod(startStr, endStr string, def dto.PeriodDTO) (dto.PeriodDTO, error) {
	p := def
	if startStr != "" {
		p.StartDate = startStr
	}
	if endStr != "" {
		p.EndDate = endStr
	}
	if _, err := format.ParseISODate(p.StartDate); err != nil {
		return dto.PeriodDTO{}, fmt.Errorf("start_date inválido %q: %w", p.StartDate, domain.ErrInvalidInput)
	}
	if _, err := format.ParseISODate(p.EndDate); err != nil {
		return dto.PeriodDTO{}, fmt.Errorf("end_date inválido %q: %w", p.EndDate, domain.ErrInvalidInput)
	}
	if p.StartDate > p.EndDate {
		return dto.PeriodDTO{}, fmt.Errorf("start_date no puede ser posterior a end_date: %w", domain.ErrInvalidInput)
	}
	return p, nil
}
