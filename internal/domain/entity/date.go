package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato ISO de calendario usado en la API y en la base de datos.
const DateLayout = "2006-01-02"

// Date fecha de calendario sin hora ni zona horaria.
// El valor cero representa "sin fecha" (el artículo no vence).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate construye una fecha normalizada (31 de febrero pasa a marzo, igual que time.Date).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf toma el día de calendario de t en su propia zona; la hora se descarta.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate acepta "2006-01-02" o un timestamp RFC 3339; en el segundo caso se conserva
// solo el día de calendario, de modo que la hora almacenada nunca afecta la clasificación.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("fecha %q: formato esperado %s", s, DateLayout)
}

// IsZero indica si la fecha no fue informada.
func (d Date) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// Midnight devuelve la medianoche UTC del día; sirve para restar fechas sin efectos de horario de verano.
func (d Date) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays suma n días de calendario.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Midnight().AddDate(0, 0, n))
}

// String formato ISO; vacío si no hay fecha.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Midnight().Format(DateLayout)
}

// MarshalJSON serializa como "2006-01-02" (o "" si no hay fecha).
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta string ISO, timestamp RFC 3339, "" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: se esperaba string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
