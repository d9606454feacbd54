package timestamp

import (
	"fmt"
	"sort"
	"strings"
)

// Result describes the outcome of a single edit request.
type Result struct {
	Line string
	// Changed is false when the cursor addressed no field or the step was
	// refused; Line is then the input unchanged.
	Changed bool
	Field   Field
	Before  DateTime
	After   DateTime
	// Paired is true when the edited token belongs to a clock pair whose
	// duration was recomputed.
	Paired   bool
	Duration string
}

// Editor applies cursor driven field edits to lines of text.
type Editor struct {
	weekdays WeekdayTable
}

// NewEditor returns an editor that labels dates with weekdays.
func NewEditor(weekdays WeekdayTable) *Editor {
	return &Editor{weekdays: weekdays}
}

var defaultEditor = NewEditor(Russian)

// Edit is Editor.Edit on an editor using the Russian weekday table.
func Edit(line string, offset int, dir Direction) string {
	return defaultEditor.Edit(line, offset, dir)
}

// Edit returns line with the field under offset moved one step in dir.
// offset counts characters, not bytes.
func (e *Editor) Edit(line string, offset int, dir Direction) string {
	return e.Apply(line, offset, dir).Line
}

// Apply is Edit with details about what was changed.
func (e *Editor) Apply(line string, offset int, dir Direction) Result {
	unchanged := Result{Line: line}

	r := []rune(line)
	tokens := locate(r)
	index, field, ok := resolveField(tokens, offset)
	if !ok {
		return unchanged
	}

	tok := tokens[index]
	next, ok := Step(tok.DateTime, field, dir)
	if !ok {
		return unchanged
	}

	edits := e.tokenEdits(r, tok, next)
	result := Result{
		Changed: true,
		Field:   field,
		Before:  tok.DateTime,
		After:   next,
	}

	if pair, ok := pairFor(resolvePairs(r, tokens), index); ok {
		start, end := pair.Start.DateTime, pair.End.DateTime
		if index == pair.startIndex {
			start = next
		} else {
			end = next
		}
		result.Paired = true
		result.Duration = FormatDuration(Elapsed(start, end))
		edits = append(edits, splice{span: pair.Duration, text: result.Duration})
	}

	result.Line = rewrite(r, edits)
	return result
}

type splice struct {
	span Span
	text string
}

// tokenEdits re-renders each field of tok whose text differs for next. The
// weekday label is derived again only when the date itself moved.
func (e *Editor) tokenEdits(r []rune, tok Token, next DateTime) []splice {
	rendered := [numFields]string{
		FieldYear:    fmt.Sprintf("%04d", next.Year),
		FieldMonth:   fmt.Sprintf("%02d", next.Month),
		FieldDay:     fmt.Sprintf("%02d", next.Day),
		FieldWeekday: tok.Label,
		FieldHour:    fmt.Sprintf("%02d", next.Hour),
		FieldMinute:  fmt.Sprintf("%02d", next.Minute),
	}
	if !next.sameDate(tok.DateTime) {
		rendered[FieldWeekday] = e.weekdays.Label(next)
	}

	var edits []splice
	for f := FieldYear; f < numFields; f++ {
		span := tok.FieldSpan(f)
		if string(r[span.Start:span.End]) != rendered[f] {
			edits = append(edits, splice{span: span, text: rendered[f]})
		}
	}
	return edits
}

// rewrite copies r, replacing each non-overlapping span with its text.
func rewrite(r []rune, edits []splice) string {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].span.Start < edits[j].span.Start
	})

	var b strings.Builder
	b.Grow(len(r) + 16)
	pos := 0
	for _, ed := range edits {
		b.WriteString(string(r[pos:ed.span.Start]))
		b.WriteString(ed.text)
		pos = ed.span.End
	}
	b.WriteString(string(r[pos:]))
	return b.String()
}
