// Package format convierte montos, fechas y duraciones en textos para mostrar (locale id-ID).
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ISOLayout formato de fecha de las reservas (YYYY-MM-DD).
const ISOLayout = "2006-01-02"

var idPrinter = message.NewPrinter(language.Indonesian)

var (
	monthNames = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
	dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
)

// DateStyle variante de Date.
type DateStyle int

const (
	DateShort  DateStyle = iota // 15/10/2026
	DateMedium                  // 15 Oktober 2026
	DateLong                    // Kamis, 15 Oktober 2026
)

// Currency formatea un monto en rupias sin decimales: "Rp 350.000", "-Rp 300.000".
func Currency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -n)
	}
	return "Rp " + idPrinter.Sprintf("%d", n)
}

// Number abrevia con sufijos K/M y un decimal: 1500000 → "1.5M".
func Number(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ParseISODate interpreta YYYY-MM-DD como fecha local.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, s, time.Local)
}

// ISODate fecha calendario de t (YYYY-MM-DD).
func ISODate(t time.Time) string { return t.Format(ISOLayout) }

// Today fecha de hoy según el reloj recibido.
func Today(now time.Time) string { return ISODate(now) }

// IsToday compara como texto contra la fecha de now.
func IsToday(date string, now time.Time) bool { return date == ISODate(now) }

// Date formatea una fecha ISO. Si no se puede interpretar se devuelve tal cual.
func Date(iso string, style DateStyle) string {
	t, err := ParseISODate(iso)
	if err != nil {
		return iso
	}
	return DateTime(t, style)
}

// DateTime igual que Date pero a partir de un time.Time.
func DateTime(t time.Time, style DateStyle) string {
	switch style {
	case DateShort:
		return t.Format("02/01/2006")
	case DateLong:
		return fmt.Sprintf("%s, %d %s %d", dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
	}
}

// DayName nombre del día en indonesio; vacío si la fecha es inválida.
func DayName(iso string) string {
	t, err := ParseISODate(iso)
	if err != nil {
		return ""
	}
	return dayNames[t.Weekday()]
}

// Time añade la zona horaria mostrada en recibos: "09:30" → "09:30 WIB".
func Time(hhmm string) string { return hhmm + " WIB" }

// Duration "45 menit", "1 jam", "1 jam 30 menit".
func Duration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d menit", m)
	case m == 0:
		return fmt.Sprintf("%d jam", h)
	default:
		return fmt.Sprintf("%d jam %d menit", h, m)
	}
}

// RelativeTime "Baru saja", "5 menit lalu", "Kemarin"... y fecha corta a partir de una semana.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case mins < 1:
		return "Baru saja"
	case mins < 60:
		return fmt.Sprintf("%d menit lalu", mins)
	case hours < 24:
		return fmt.Sprintf("%d jam lalu", hours)
	case days == 1:
		return "Kemarin"
	case days < 7:
		return fmt.Sprintf("%d hari lalu", days)
	}
	return DateTime(t, DateShort)
}
