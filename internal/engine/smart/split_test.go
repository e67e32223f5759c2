package smart

import (
	"regexp"
	"testing"

	"github.com/dshills/smartseq/internal/engine/tracking"
)

func partStrings(parts []*Node) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitParts(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		includeDelim bool
		want         []string
	}{
		{"simple", "a|b|c", false, []string{"a", "b", "c"}},
		{"empty cell", "a|b||c", false, []string{"a", "b", "", "c"}},
		{"with delimiters", "a|b||c", true, []string{"a|", "b|", "|", "c"}},
		{"trailing delimiter", "a|b|", false, []string{"a", "b"}},
		{"leading delimiter", "|a", false, []string{"", "a"}},
		{"no delimiter", "abc", false, []string{"abc"}},
		{"empty", "", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partStrings(Literal(tt.text).SplitParts('|', tt.includeDelim))
			if !equalStrings(got, tt.want) {
				t.Errorf("SplitParts() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPartsTracking(t *testing.T) {
	src := tracking.NewSource("row")
	parts := FromString("a|b||cd", src).SplitParts('|', false)

	last := parts[len(parts)-1]
	loc := last.TrackedSourceLocation(1)
	if loc.Source != src || loc.Offset != 6 {
		t.Errorf("last part index 1 -> %v, want offset 6", loc)
	}
}

func TestSplitPartsSegmented(t *testing.T) {
	n := Literal("a|b||c").SplitPartsSegmented('|', false)

	if n.String() != "abc" {
		t.Errorf("String() = %q, want %q", n.String(), "abc")
	}
	if got := len(n.Children()); got != 4 {
		t.Errorf("children = %d, want 4", got)
	}
}

func TestWrapParts(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		includeDelim   bool
		prefix, suffix *Node
		want           string
	}{
		{"both", "a|b", false, Literal("<"), Literal(">"), "<a><b>"},
		{"keep delimiter", "a|b", true, Literal("["), Literal("]"), "[a|][b]"},
		{"prefix only", "x|y", false, Literal("- "), nil, "- x- y"},
		{"nothing", "x|y", false, nil, Empty(), "xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Literal(tt.text).WrapParts('|', tt.includeDelim, tt.prefix, tt.suffix)
			if got.String() != tt.want {
				t.Errorf("WrapParts() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestExtractGroups(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []string
		ok      bool
	}{
		{"all groups", "key=12", `(\w+)=(\d+)?`, []string{"key=12", "key", "12"}, true},
		{"optional missing", "key=", `(\w+)=(\d+)?`, []string{"key=", "key", ""}, true},
		{"partial match", "key=12 rest", `(\w+)=(\d+)`, nil, false},
		{"no match", "k-1", `(\w+)=(\d+)`, nil, false},
		{"bad pattern", "abc", `(`, nil, false},
		{"unicode", "日本=5", `(\S+)=(\d)`, []string{"日本=5", "日本", "5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, ok := Literal(tt.text).ExtractGroups(tt.pattern)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := partStrings(groups); !equalStrings(got, tt.want) {
				t.Errorf("groups = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractGroupsTracking(t *testing.T) {
	src := tracking.NewSource("doc")
	groups, ok := FromString("日本=5", src).ExtractGroups(`(\S+)=(\d)`)
	if !ok {
		t.Fatal("expected a match")
	}

	loc := groups[2].TrackedSourceLocation(0)
	if loc.Source != src || loc.Offset != 3 {
		t.Errorf("group 2 -> %v, want offset 3", loc)
	}
	if groups[1].Origin() != 0 || groups[1].Len() != 2 {
		t.Errorf("group 1 origin %d len %d, want 0 and 2", groups[1].Origin(), groups[1].Len())
	}
}

func TestExtractGroupsRegexpUnanchored(t *testing.T) {
	re := regexp.MustCompile(`(\d+)`)
	if _, ok := Literal("a12").ExtractGroupsRegexp(re); ok {
		t.Error("a match not covering the whole text should fail")
	}
	groups, ok := Literal("12").ExtractGroupsRegexp(re)
	if !ok || groups[1].String() != "12" {
		t.Errorf("ExtractGroupsRegexp() = %v, %v", partStrings(groups), ok)
	}
}

func TestExtractGroupsSegmented(t *testing.T) {
	n, ok := Literal("a-b").ExtractGroupsSegmented(`(a)-(x)?`)
	if ok {
		t.Fatalf("unexpected match: %q", n.String())
	}

	n, ok = Literal("a-b").ExtractGroupsSegmented(`(a)-(b)`)
	if !ok {
		t.Fatal("expected a match")
	}
	if got := len(n.Children()); got != 3 {
		t.Errorf("children = %d, want 3", got)
	}
	if n.String() != "a-bab" {
		t.Errorf("String() = %q, want %q", n.String(), "a-bab")
	}
}
