package pattern

// Element is one unit inside a Sequence pattern: a literal word or phrase,
// an inter-word gap, a closed alternative set, or a reference to another
// stored pattern.
//
// Element is a closed variant: the only implementations are Word, Gap,
// Reference and OneOf in this package. The unexported marker method keeps
// the set closed so the compiler and the codec can switch exhaustively.
type Element interface {
	isElement()
}

// Word is a literal word, or a literal multi-word phrase when Text
// contains spaces. Phrases are matched as one unit.
type Word struct {
	Text string
}

// Gap is a variable-length span between two matched elements.
//
// MinWords 0 with a nil MaxWords is the open-ended "anything in between"
// gap the segmenter inserts between non-adjacent phrases. Any other
// combination is a bounded word-count gap.
//
// MaxWords < MinWords is not validated here: stored patterns from older
// clients may carry such bounds, and they must keep compiling to the same
// (engine-rejected) form they always did.
type Gap struct {
	MinWords uint32
	MaxWords *uint32
}

// Reference points at another stored pattern by id.
// Resolution is not implemented: a Reference compiles to an unconstrained
// wildcard. TODO: inline the referenced pattern's compiled form, with
// cycle detection.
type Reference struct {
	PatternID string
}

// OneOf matches exactly one of a closed set of literal options.
type OneOf struct {
	Options []string
}

func (Word) isElement()      {}
func (Gap) isElement()       {}
func (Reference) isElement() {}
func (OneOf) isElement()     {}
