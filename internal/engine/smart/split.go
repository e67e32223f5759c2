package smart

import (
	"regexp"
	"unicode/utf8"
)

// SplitParts splits n at every delim. With includeDelim each part keeps
// its trailing delimiter. Text after the last delimiter forms a final
// part; a trailing delimiter does not produce an empty one.
func (n *Node) SplitParts(delim rune, includeDelim bool) []*Node {
	chars := n.CachedProxy().chars
	var parts []*Node
	last := 0
	for i, c := range chars {
		if c != delim {
			continue
		}
		end := i
		if includeDelim {
			end = i + 1
		}
		parts = append(parts, n.sub(last, end))
		last = i + 1
	}
	if last < len(chars) {
		parts = append(parts, n.sub(last, len(chars)))
	}
	return parts
}

// SplitPartsSegmented is SplitParts with the parts as the children of one
// composite.
func (n *Node) SplitPartsSegmented(delim rune, includeDelim bool) *Node {
	return Segmented(n.SplitParts(delim, includeDelim)...)
}

// WrapParts splits n like SplitParts and surrounds every part with prefix
// and suffix. Nil or empty prefix and suffix are skipped.
func (n *Node) WrapParts(delim rune, includeDelim bool, prefix, suffix *Node) *Node {
	parts := n.SplitParts(delim, includeDelim)
	out := make([]*Node, 0, len(parts)*3)
	for _, p := range parts {
		out = append(out, prefix, p, suffix)
	}
	return concat(out)
}

// ExtractGroups matches pattern against the whole of n and returns the
// whole match followed by every capture group, in group order, as
// sub-sequences of n. Groups that did not participate or matched empty
// are Empty. It returns false when pattern does not compile or does not
// match all of n.
func (n *Node) ExtractGroups(pattern string) ([]*Node, bool) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, false
	}
	return n.ExtractGroupsRegexp(re)
}

// ExtractGroupsRegexp is ExtractGroups with a compiled expression. The
// match must span all of n; anchor re to get whole-text semantics.
func (n *Node) ExtractGroupsRegexp(re *regexp.Regexp) ([]*Node, bool) {
	chars := n.CachedProxy().chars
	text := string(chars)
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil || loc[0] != 0 || loc[1] != len(text) {
		return nil, false
	}

	// byte offset -> rune offset
	runeAt := make([]int, len(text)+1)
	ri := 0
	for bi := 0; bi < len(text); {
		_, size := utf8.DecodeRuneInString(text[bi:])
		for k := 0; k < size; k++ {
			runeAt[bi+k] = ri
		}
		bi += size
		ri++
	}
	runeAt[len(text)] = ri

	groups := make([]*Node, 0, len(loc)/2)
	for g := 0; g < len(loc); g += 2 {
		start, end := loc[g], loc[g+1]
		if start < 0 || start >= end {
			groups = append(groups, emptyNode)
			continue
		}
		groups = append(groups, n.sub(runeAt[start], runeAt[end]))
	}
	return groups, true
}

// ExtractGroupsSegmented is ExtractGroups with the groups as the children
// of one composite.
func (n *Node) ExtractGroupsSegmented(pattern string) (*Node, bool) {
	groups, ok := n.ExtractGroups(pattern)
	if !ok {
		return nil, false
	}
	return Segmented(groups...), true
}
