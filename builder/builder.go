package builder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/navicore/regexgen/pattern"
	"github.com/navicore/regexgen/store"
)

// IDGenerator returns a string unique within the store's practical
// lifetime. Only uniqueness is required, not ordering or format.
type IDGenerator func() string

// Builder owns the selection buffer and the in-memory pattern list.
//
// It is single-threaded by contract: every operation runs to completion
// on the invoking goroutine and there are no internal locks. A concurrent
// host must serialize access itself. The pattern list's position doubles
// as the external handle for delete and test.
type Builder struct {
	store      store.Store
	generateID IDGenerator
	patterns   []pattern.Pattern
	selections []SelectionSpan
}

// New creates a Builder seeded from the store. A load failure degrades
// gracefully to an empty pattern list rather than aborting.
func New(ctx context.Context, s store.Store, generateID IDGenerator) *Builder {
	if generateID == nil {
		generateID = uuid.NewString
	}

	patterns, err := s.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cannot load stored patterns, starting with an empty list")
		patterns = nil
	}

	return &Builder{
		store:      s,
		generateID: generateID,
		patterns:   patterns,
	}
}

// AddSelection appends a selection to the buffer.
func (b *Builder) AddSelection(text string, start, end, wordIndex int) {
	b.selections = append(b.selections, SelectionSpan{
		Text:      text,
		Start:     start,
		End:       end,
		WordIndex: wordIndex,
	})
}

// RemoveSelection drops the selection at the given buffer position.
// An out-of-range position is a silent no-op.
func (b *Builder) RemoveSelection(index int) {
	if index < 0 || index >= len(b.selections) {
		return
	}
	b.selections = append(b.selections[:index], b.selections[index+1:]...)
}

// ClearSelections resets the buffer.
func (b *Builder) ClearSelections() {
	b.selections = nil
}

// Selections returns a copy of the current buffer.
func (b *Builder) Selections() []SelectionSpan {
	out := make([]SelectionSpan, len(b.selections))
	copy(out, b.selections)
	return out
}

// Preview renders the buffered selection as display descriptors without
// mutating anything. Returns nil when the buffer is empty.
func (b *Builder) Preview() []PreviewElement {
	return Preview(b.selections)
}

// BuildSequence commits the selection buffer as a new Sequence pattern:
// segments the buffer, assigns a fresh id, appends the pattern to the
// list and saves the list. On success the buffer is cleared and the
// compiled regex is returned alongside the pattern.
//
// ErrEmptySelection is returned, with no persistence write, when the
// buffer is empty. A save failure is surfaced to the caller; the pattern
// stays in the in-memory list and the buffer is kept so the user action
// can be re-issued.
func (b *Builder) BuildSequence(ctx context.Context, name string) (pattern.Sequence, string, error) {
	elements, err := Segment(b.selections)
	if err != nil {
		return pattern.Sequence{}, "", err
	}

	seq := pattern.Sequence{
		ID:       b.generateID(),
		Name:     name,
		Elements: elements,
	}
	regex := pattern.Compile(seq)

	b.patterns = append(b.patterns, seq)

	if err := b.store.Save(ctx, b.patterns); err != nil {
		return pattern.Sequence{}, "", fmt.Errorf("failed to save patterns: %w", err)
	}

	b.ClearSelections()

	return seq, regex, nil
}

// Patterns returns a copy of the ordered pattern list.
func (b *Builder) Patterns() []pattern.Pattern {
	out := make([]pattern.Pattern, len(b.patterns))
	copy(out, b.patterns)
	return out
}

// DeletePattern removes the pattern at the given list position and saves
// the list. An out-of-range position is a silent no-op with no
// persistence write.
func (b *Builder) DeletePattern(ctx context.Context, index int) error {
	if index < 0 || index >= len(b.patterns) {
		return nil
	}

	b.patterns = append(b.patterns[:index], b.patterns[index+1:]...)

	if err := b.store.Save(ctx, b.patterns); err != nil {
		return fmt.Errorf("failed to save patterns: %w", err)
	}

	return nil
}
