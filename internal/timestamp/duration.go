package timestamp

import (
	"strconv"
	"strings"
)

// Elapsed returns the signed number of minutes from start to end.
func Elapsed(start, end DateTime) int {
	return totalMinutes(end) - totalMinutes(start)
}

func totalMinutes(dt DateTime) int {
	return ordinalDay(dt)*1440 + dt.Hour*60 + dt.Minute
}

// ordinalDay counts days since the Unix epoch; only differences matter.
func ordinalDay(dt DateTime) int {
	midnight := DateTime{Year: dt.Year, Month: dt.Month, Day: dt.Day}
	return int(midnight.time().Unix() / 86400)
}

// FormatDuration renders elapsed minutes the way clock lines store them:
// one space, then the hours right-aligned in two columns: "  3:30",
// " 22:30", " -1:-30", " 100:00".
//
// NOTE: hours use floor division while minutes use Go's truncating
// remainder, so -30 renders as "-1:-30" and -29 as "-1:-29". Clock lines
// already written by other tools carry this exact text. Change both halves
// together if this is ever corrected.
func FormatDuration(elapsed int) string {
	hours := floorDiv(elapsed, 60)
	minutes := elapsed % 60

	var b strings.Builder
	b.WriteByte(' ')
	h := strconv.Itoa(hours)
	if len(h) < 2 {
		b.WriteByte(' ')
	}
	b.WriteString(h)
	b.WriteByte(':')
	if minutes < 0 {
		b.WriteByte('-')
		minutes = -minutes
	}
	if minutes < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(minutes))
	return b.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
