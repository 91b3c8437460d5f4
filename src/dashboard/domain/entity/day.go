package entity

import (
	"fmt"
	"time"
)

// DayLayout formato de fecha calendario (YYYY-MM-DD)
const DayLayout = "2006-01-02"

// Day representa un día calendario sin componente horario
// HITO A - Tipo explícito de fecha calendario: los límites del día
// (00:00:00 a 23:59:59, hora local) se calculan siempre desde este tipo,
// nunca concatenando strings
type Day struct {
	t time.Time
}

// NewDay crea un Day a partir de un timestamp, descartando el horario
func NewDay(t time.Time) Day {
	year, month, day := t.Date()
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDay parsea un día calendario en formato YYYY-MM-DD
func ParseDay(value string) (Day, error) {
	parsed, err := time.ParseInLocation(DayLayout, value, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}
	return NewDay(parsed), nil
}

// Start retorna el inicio del día (00:00:00 hora local)
func (d Day) Start() time.Time {
	return d.t
}

// End retorna el fin del día (23:59:59 hora local, inclusivo)
func (d Day) End() time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 23, 59, 59, 0, time.Local)
}

// Next retorna el día calendario siguiente
func (d Day) Next() Day {
	return NewDay(d.t.AddDate(0, 0, 1))
}

// AddDays retorna el día desplazado n días (n puede ser negativo)
func (d Day) AddDays(n int) Day {
	return NewDay(d.t.AddDate(0, 0, n))
}

// Before indica si d es anterior a other
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// After indica si d es posterior a other
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// Equal indica si ambos valores representan el mismo día calendario
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// IsZero indica si el día no fue inicializado
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// String retorna el día en formato YYYY-MM-DD
func (d Day) String() string {
	return d.t.Format(DayLayout)
}

// MarshalJSON serializa el día como "YYYY-MM-DD"
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parsea el día desde "YYYY-MM-DD"
func (d *Day) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("invalid day value: %s", raw)
	}
	parsed, err := ParseDay(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
