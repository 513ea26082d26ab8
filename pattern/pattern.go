package pattern

// Operator is the boolean connective of a Composite pattern.
// The string values are part of the stored format.
type Operator string

const (
	OpAnd Operator = "And"
	OpOr  Operator = "Or"
	OpNot Operator = "Not"
)

// Pattern is a named, identifiable rule recognizing a class of text.
//
// Pattern is a closed variant: the only implementations are Sequence and
// Composite. Ids are opaque unique strings assigned at creation time and
// never reassigned; names are user-supplied and not unique.
type Pattern interface {
	isPattern()

	// GetID returns the pattern's opaque unique id.
	GetID() string

	// GetName returns the user-supplied display name.
	GetName() string
}

// Sequence is an ordered run of elements compiled by concatenation.
type Sequence struct {
	ID       string
	Name     string
	Elements []Element
}

// Composite combines sub-patterns with a boolean operator.
// Not is designed for exactly one sub-pattern; extras are ignored at
// compile time.
type Composite struct {
	ID       string
	Name     string
	Operator Operator
	Patterns []Pattern
}

func (Sequence) isPattern()  {}
func (Composite) isPattern() {}

func (s Sequence) GetID() string   { return s.ID }
func (s Sequence) GetName() string { return s.Name }

func (c Composite) GetID() string   { return c.ID }
func (c Composite) GetName() string { return c.Name }
