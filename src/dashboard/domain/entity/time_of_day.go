package entity

import "strings"

// TimeOfDay representa una franja horaria del día para filtrado
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "MORNING"   // 6am a 12pm
	TimeOfDayAfternoon TimeOfDay = "AFTERNOON" // 12pm a 6pm
	TimeOfDayEvening   TimeOfDay = "EVENING"   // 6pm a 6am (cruza medianoche)
)

// ParseTimeOfDay parsea una franja horaria (case-insensitive)
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	switch TimeOfDay(strings.ToUpper(strings.TrimSpace(value))) {
	case TimeOfDayMorning:
		return TimeOfDayMorning, nil
	case TimeOfDayAfternoon:
		return TimeOfDayAfternoon, nil
	case TimeOfDayEvening:
		return TimeOfDayEvening, nil
	default:
		return "", ErrInvalidTimeOfDay
	}
}

// Matches indica si la hora local (0-23) cae dentro de la franja
func (t TimeOfDay) Matches(hour int) bool {
	switch t {
	case TimeOfDayMorning:
		return hour >= 6 && hour < 12
	case TimeOfDayAfternoon:
		return hour >= 12 && hour < 18
	case TimeOfDayEvening:
		// La franja nocturna cruza medianoche: [18, 24) ∪ [0, 6)
		return hour >= 18 || hour < 6
	default:
		return false
	}
}

// AnyTimeOfDayMatches indica si la hora cae en alguna de las franjas
// seleccionadas (OR lógico). Una selección vacía no filtra nada.
func AnyTimeOfDayMatches(selected []TimeOfDay, hour int) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tod := range selected {
		if tod.Matches(hour) {
			return true
		}
	}
	return false
}
