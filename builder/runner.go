package builder

import (
	"github.com/dlclark/regexp2"

	"github.com/navicore/regexgen/pattern"
)

// MatchSpan is one match, rune positions, end exclusive.
type MatchSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TestPattern compiles the stored pattern at the given list position and
// runs it against text.
//
// ok = false means "no result": the position is out of range or the
// compiled form was rejected by the engine. That is distinct from a valid
// pattern with zero matches, which returns an empty non-nil slice and
// ok = true.
func (b *Builder) TestPattern(index int, text string) (spans []MatchSpan, ok bool) {
	if index < 0 || index >= len(b.patterns) {
		return nil, false
	}
	return Run(b.patterns[index], text)
}

// Run compiles a pattern and returns all matches found scanning left to
// right, non-overlapping, leftmost-first. The compiled form can use
// lookarounds (the And/Not composites do), so execution goes through
// regexp2 rather than the RE2 standard library engine.
//
// Engine rejection of the compiled form (e.g. an ill-formed bounded-gap
// quantifier) yields ok = false rather than an error: a structurally
// valid but unusable pattern is only discovered here, never at build
// time.
func Run(p pattern.Pattern, text string) (spans []MatchSpan, ok bool) {
	re, err := regexp2.Compile(pattern.Compile(p), regexp2.None)
	if err != nil {
		return nil, false
	}

	spans = []MatchSpan{}

	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		spans = append(spans, MatchSpan{Start: m.Index, End: m.Index + m.Length})
		m, err = re.FindNextMatch(m)
	}

	return spans, true
}
