package timestamp

// FieldAt reports which field of which token owns the character offset.
// The returned index refers to Locate(line).
func FieldAt(line string, offset int) (int, Field, bool) {
	return resolveField(Locate(line), offset)
}

// resolveField picks the token containing offset, then the field that owns
// it. Each field owns its value plus the delimiter right after it, so the
// colon between hour and minute belongs to the hour and the closing bracket
// belongs to the minute. The opening bracket belongs to no field.
func resolveField(tokens []Token, offset int) (int, Field, bool) {
	for i, tok := range tokens {
		if !tok.Span.Contains(offset) {
			continue
		}
		for f := FieldYear; f < numFields; f++ {
			if tok.owned(f).Contains(offset) {
				return i, f, true
			}
		}
		return i, 0, false
	}
	return -1, 0, false
}
