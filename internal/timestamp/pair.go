package timestamp

// ClockPair is a start/end interval written as `<start>--<end> => H:MM`.
type ClockPair struct {
	Start Token
	End   Token
	// Duration covers the rewritable text after the `=>` marker, leading
	// padding included and trailing spaces excluded.
	Duration    Span
	RawDuration string

	startIndex int
	endIndex   int
}

// Pairs locates the tokens of line and groups them into clock pairs.
func Pairs(line string) []ClockPair {
	r := []rune(line)
	return resolvePairs(r, locate(r))
}

// resolvePairs joins adjacent same-style tokens separated by exactly "--"
// whose end token is followed by a `=>` duration marker. Tokens that do not
// qualify stay standalone.
func resolvePairs(r []rune, tokens []Token) []ClockPair {
	var pairs []ClockPair
	for i := 0; i+1 < len(tokens); i++ {
		start, end := tokens[i], tokens[i+1]
		if start.Style != end.Style {
			continue
		}
		gap := start.Span.End
		if end.Span.Start != gap+2 || r[gap] != '-' || r[gap+1] != '-' {
			continue
		}
		duration, ok := durationSpan(r, end.Span.End)
		if !ok {
			continue
		}
		pairs = append(pairs, ClockPair{
			Start:       start,
			End:         end,
			Duration:    duration,
			RawDuration: string(r[duration.Start:duration.End]),
			startIndex:  i,
			endIndex:    i + 1,
		})
		i++
	}
	return pairs
}

// durationSpan finds `=>` after optional blanks at p. The span starts right
// after the marker and ends at the last minute digit of a `-?H:-?MM` value,
// so text following the duration is left alone. A marker with no readable
// value yields an empty span where the duration gets inserted.
func durationSpan(r []rune, p int) (Span, bool) {
	for p < len(r) && isBlank(r[p]) {
		p++
	}
	if p+1 >= len(r) || r[p] != '=' || r[p+1] != '>' {
		return Span{}, false
	}
	start := p + 2
	q := start
	for q < len(r) && isBlank(r[q]) {
		q++
	}
	if end, ok := durationValue(r, q); ok {
		return Span{Start: start, End: end}, true
	}
	return Span{Start: start, End: start}, true
}

// durationValue matches `-?\d+:-?\d+` at p and returns the index past it.
func durationValue(r []rune, p int) (int, bool) {
	p, ok := signedDigits(r, p)
	if !ok || !expect(r, p, ':') {
		return 0, false
	}
	return signedDigits(r, p+1)
}

func signedDigits(r []rune, p int) (int, bool) {
	if expect(r, p, '-') {
		p++
	}
	start := p
	for p < len(r) && isDigit(r[p]) {
		p++
	}
	return p, p > start
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func pairFor(pairs []ClockPair, tokenIndex int) (ClockPair, bool) {
	for _, p := range pairs {
		if p.startIndex == tokenIndex || p.endIndex == tokenIndex {
			return p, true
		}
	}
	return ClockPair{}, false
}
