package timestamp

import "time"

// Step moves dt by one unit of field in direction dir.
//
// Day and Weekday move by one calendar day. Hour and Minute carry into the
// date. Year and Month keep the day of month, clamped to the length of the
// resulting month (2024-02-29 plus one year is 2025-02-28).
//
// ok is false when the result leaves the four digit year range.
func Step(dt DateTime, field Field, dir Direction) (DateTime, bool) {
	delta := int(dir)

	var next DateTime
	switch field {
	case FieldYear:
		next = dt
		next.Year += delta
		next.Day = clampDay(next.Year, next.Month, next.Day)
	case FieldMonth:
		next = dt
		next.Month += delta
		for next.Month < 1 {
			next.Month += 12
			next.Year--
		}
		for next.Month > 12 {
			next.Month -= 12
			next.Year++
		}
		next.Day = clampDay(next.Year, next.Month, next.Day)
	case FieldDay, FieldWeekday:
		next = fromTime(dt.time().AddDate(0, 0, delta))
	case FieldHour:
		next = fromTime(dt.time().Add(time.Duration(delta) * time.Hour))
	case FieldMinute:
		next = fromTime(dt.time().Add(time.Duration(delta) * time.Minute))
	default:
		return dt, false
	}

	if next.Year < 0 || next.Year > 9999 {
		return dt, false
	}
	return next, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(year, month, day int) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	return day
}
