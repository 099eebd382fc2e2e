package format

import "fmt"

// DaysInRange genera cada día calendario de [start, end] inclusive, en orden.
// Si start es posterior a end devuelve una lista vacía.
func DaysInRange(start, end string) ([]string, error) {
	from, err := ParseISODate(start)
	if err != nil {
		return nil, fmt.Errorf("fecha inicial inválida: %w", err)
	}
	to, err := ParseISODate(end)
	if err != nil {
		return nil, fmt.Errorf("fecha final inválida: %w", err)
	}
	days := []string{}
	// AddDate sobre el día calendario evita saltos por cambios de horario.
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, ISODate(d))
	}
	return days, nil
}

// InRange comparación lexicográfica sobre YYYY-MM-DD, equivalente al orden de fechas.
func InRange(date, start, end string) bool {
	return start <= date && date <= end
}
