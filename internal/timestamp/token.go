package timestamp

import "time"

// Span is a half-open range of character (rune) offsets within a line.
type Span struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Field names one addressable component of a timestamp token.
type Field uint8

const (
	// FieldYear is the four digit year.
	FieldYear Field = iota
	// FieldMonth is the two digit month.
	FieldMonth
	// FieldDay is the two digit day of month.
	FieldDay
	// FieldWeekday is the weekday label. Editing it moves the date by one day.
	FieldWeekday
	// FieldHour is the two digit hour.
	FieldHour
	// FieldMinute is the two digit minute.
	FieldMinute

	numFields
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldWeekday:
		return "weekday"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	default:
		return "unknown"
	}
}

// BracketStyle is the delimiter pair around a token.
type BracketStyle uint8

const (
	// Square marks inactive timestamps: [2025-12-09 Вт 17:00].
	Square BracketStyle = iota
	// Angle marks active timestamps: <2025-12-09 Вт 17:00>.
	Angle
)

// Open returns the opening delimiter.
func (b BracketStyle) Open() rune {
	if b == Angle {
		return '<'
	}
	return '['
}

// Close returns the closing delimiter.
func (b BracketStyle) Close() rune {
	if b == Angle {
		return '>'
	}
	return ']'
}

func styleFor(r rune) (BracketStyle, bool) {
	switch r {
	case '[':
		return Square, true
	case '<':
		return Angle, true
	default:
		return 0, false
	}
}

// Direction selects whether a field is increased or decreased.
type Direction int8

const (
	// Down decreases the addressed field by one unit.
	Down Direction = -1
	// Up increases the addressed field by one unit.
	Up Direction = 1
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// DateTime is the calendar value carried by a token. The weekday is never
// stored; it is derived from the date when a token is rendered.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

func (dt DateTime) time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC)
}

func fromTime(t time.Time) DateTime {
	return DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

func (dt DateTime) sameDate(other DateTime) bool {
	return dt.Year == other.Year && dt.Month == other.Month && dt.Day == other.Day
}

// Token is one bracketed timestamp located in a line. It only lives for the
// duration of a single parse.
type Token struct {
	Style    BracketStyle
	DateTime DateTime
	// Label is the weekday text exactly as it appeared in the line.
	Label string
	// Span covers the token from its opening to its closing bracket.
	Span Span

	fields [numFields]Span
}

// FieldSpan returns the span of the characters holding the field's value.
func (t Token) FieldSpan(f Field) Span {
	return t.fields[f]
}

// owned extends the value span by the delimiter that trails it: the dash,
// space or colon after a field, or the closing bracket after the minute.
func (t Token) owned(f Field) Span {
	s := t.fields[f]
	s.End++
	return s
}
