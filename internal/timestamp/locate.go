package timestamp

import "unicode"

// Locate returns every well-formed timestamp token in line, left to right.
// Text that does not match `YYYY-MM-DD <label> HH:MM` inside matching
// brackets is skipped.
func Locate(line string) []Token {
	return locate([]rune(line))
}

func locate(r []rune) []Token {
	var tokens []Token
	for i := 0; i < len(r); {
		if tok, ok := scanToken(r, i); ok {
			tokens = append(tokens, tok)
			i = tok.Span.End
			continue
		}
		i++
	}
	return tokens
}

// scanToken tries to read a complete token whose opening bracket sits at at.
func scanToken(r []rune, at int) (Token, bool) {
	style, ok := styleFor(r[at])
	if !ok {
		return Token{}, false
	}

	tok := Token{Style: style}
	p := at + 1

	var dt DateTime
	if dt.Year, p, ok = number(r, p, 4, &tok.fields[FieldYear]); !ok || !expect(r, p, '-') {
		return Token{}, false
	}
	if dt.Month, p, ok = number(r, p+1, 2, &tok.fields[FieldMonth]); !ok || !expect(r, p, '-') {
		return Token{}, false
	}
	if dt.Day, p, ok = number(r, p+1, 2, &tok.fields[FieldDay]); !ok || !expect(r, p, ' ') {
		return Token{}, false
	}

	p++
	labelStart := p
	for p < len(r) && !unicode.IsSpace(r[p]) && r[p] != style.Close() {
		p++
	}
	if p == labelStart || !expect(r, p, ' ') {
		return Token{}, false
	}
	tok.fields[FieldWeekday] = Span{Start: labelStart, End: p}
	tok.Label = string(r[labelStart:p])

	if dt.Hour, p, ok = number(r, p+1, 2, &tok.fields[FieldHour]); !ok || !expect(r, p, ':') {
		return Token{}, false
	}
	if dt.Minute, p, ok = number(r, p+1, 2, &tok.fields[FieldMinute]); !ok || !expect(r, p, style.Close()) {
		return Token{}, false
	}

	if !valid(dt) {
		return Token{}, false
	}

	tok.DateTime = dt
	tok.Span = Span{Start: at, End: p + 1}
	return tok, true
}

// number reads exactly width ASCII digits starting at p and records their span.
func number(r []rune, p, width int, span *Span) (int, int, bool) {
	if p+width > len(r) {
		return 0, p, false
	}
	value := 0
	for i := p; i < p+width; i++ {
		if r[i] < '0' || r[i] > '9' {
			return 0, p, false
		}
		value = value*10 + int(r[i]-'0')
	}
	*span = Span{Start: p, End: p + width}
	return value, p + width, true
}

func expect(r []rune, p int, want rune) bool {
	return p < len(r) && r[p] == want
}

func valid(dt DateTime) bool {
	if dt.Year < 0 || dt.Year > 9999 {
		return false
	}
	if dt.Month < 1 || dt.Month > 12 {
		return false
	}
	if dt.Day < 1 || dt.Day > daysIn(dt.Year, dt.Month) {
		return false
	}
	return dt.Hour >= 0 && dt.Hour <= 23 && dt.Minute >= 0 && dt.Minute <= 59
}
