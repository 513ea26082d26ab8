package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile translates a pattern into a regex string.
//
// Compile is pure and deterministic: the same pattern always yields the
// same string. It never fails; an unusable pattern (e.g. a gap with
// inverted bounds) surfaces as a compile error in the execution engine,
// not here.
func Compile(p Pattern) string {
	switch v := p.(type) {
	case Sequence:
		// Elements are concatenated with no separator. Spacing is
		// carried entirely by literal phrase text or explicit gaps.
		var b strings.Builder
		for _, element := range v.Elements {
			b.WriteString(compileElement(element))
		}
		return b.String()

	case Composite:
		return compileComposite(v)
	}

	return ""
}

func compileElement(e Element) string {
	switch v := e.(type) {
	case Word:
		// Phrases are escaped as one literal unit; the boundary
		// anchors sit only at the outer edges.
		return `\b` + regexp.QuoteMeta(v.Text) + `\b`

	case Gap:
		if v.MinWords == 0 && v.MaxWords == nil {
			// open-ended gap: lazily match anything in between
			return `.*?`
		}
		// bounded gap: m..n repetitions of "a run of non-word
		// characters followed by one word"
		if v.MaxWords != nil {
			return fmt.Sprintf(`(?:\W+\w+){%d,%d}`, v.MinWords, *v.MaxWords)
		}
		return fmt.Sprintf(`(?:\W+\w+){%d,}`, v.MinWords)

	case Reference:
		// Cross-pattern resolution is not implemented; a reference
		// matches unconstrained text at its position.
		return `.*`

	case OneOf:
		escaped := make([]string, len(v.Options))
		for i, option := range v.Options {
			escaped[i] = regexp.QuoteMeta(option)
		}
		return `\b(?:` + strings.Join(escaped, "|") + `)\b`
	}

	return ""
}

func compileComposite(c Composite) string {
	switch c.Operator {
	case OpOr:
		parts := make([]string, len(c.Patterns))
		for i, sub := range c.Patterns {
			parts[i] = "(" + Compile(sub) + ")"
		}
		return strings.Join(parts, "|")

	case OpAnd:
		// Each sub-pattern becomes an independent positive lookahead,
		// so all of them must appear somewhere, order unconstrained.
		// The match always spans from position 0 to the end of the
		// scanned text: And is an existence test, not a span extractor.
		var b strings.Builder
		for _, sub := range c.Patterns {
			b.WriteString("(?=.*")
			b.WriteString(Compile(sub))
			b.WriteString(".*)")
		}
		b.WriteString(".*")
		return b.String()

	case OpNot:
		// Only the first sub-pattern is honored. With no sub-patterns
		// the result is an empty string, which matches everything;
		// callers must guard against that themselves.
		if len(c.Patterns) == 0 {
			return ""
		}
		return "(?!.*" + Compile(c.Patterns[0]) + ")"
	}

	return ""
}
