package width

import "sort"

// lineIndex maps between rune offsets and line numbers of a text.
// Line ends exclude the terminating newline.
type lineIndex struct {
	text   []rune
	starts []int
}

func newLineIndex(text []rune) lineIndex {
	starts := []int{0}
	for i, c := range text {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{text: text, starts: starts}
}

func (li lineIndex) lineCount() int { return len(li.starts) }

func (li lineIndex) start(line int) (int, bool) {
	if line < 0 || line >= len(li.starts) {
		return 0, false
	}
	return li.starts[line], true
}

func (li lineIndex) end(line int) (int, bool) {
	if line < 0 || line >= len(li.starts) {
		return 0, false
	}
	if line+1 < len(li.starts) {
		return li.starts[line+1] - 1, true
	}
	return len(li.text), true
}

func (li lineIndex) lineOf(offset int) (int, bool) {
	if offset < 0 || offset > len(li.text) {
		return 0, false
	}
	return sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1, true
}
