package timestamp

import (
	"strings"
	"time"
)

// WeekdayTable holds the seven short weekday labels of a locale, ordered by
// ISO weekday: index 0 is Monday and index 6 is Sunday. The table only
// decides how a date is labelled; it never drives arithmetic.
type WeekdayTable [7]string

var (
	// Russian is the default table, matching the labels written by org-style
	// clock entries under a ru_RU locale.
	Russian = WeekdayTable{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
	// English labels dates with three letter abbreviations.
	English = WeekdayTable{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// LookupWeekdays returns the table registered for a locale name such as "ru"
// or "en_US".
func LookupWeekdays(locale string) (WeekdayTable, bool) {
	name := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(name, "_-."); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "ru":
		return Russian, true
	case "en":
		return English, true
	default:
		return WeekdayTable{}, false
	}
}

// Label returns the label for the date part of dt under the proleptic
// Gregorian calendar.
func (w WeekdayTable) Label(dt DateTime) string {
	return w[isoWeekday(dt.time().Weekday())-1]
}

func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
