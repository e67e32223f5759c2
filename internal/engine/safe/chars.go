package safe

// Chars is a read-only random-access character sequence.
type Chars interface {
	Len() int
	CharAt(index int) rune
}

// Runes adapts a rune slice to Chars.
type Runes []rune

// Len returns the number of runes.
func (r Runes) Len() int { return len(r) }

// CharAt returns the rune at index.
func (r Runes) CharAt(index int) rune { return r[index] }

// String adapts a string to Chars. Offsets are rune offsets.
func String(s string) Chars {
	return Runes([]rune(s))
}

// AppendChars appends chars[start:end] to dst.
func AppendChars(dst []rune, chars Chars, start, end int) []rune {
	if rs, ok := chars.(Runes); ok {
		return append(dst, rs[start:end]...)
	}
	for i := start; i < end; i++ {
		dst = append(dst, chars.CharAt(i))
	}
	return dst
}

// IsBlankChar reports whether c is one of the blank characters
// space, tab or newline.
func IsBlankChar(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
