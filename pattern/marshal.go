package pattern

import (
	"encoding/json"
	"fmt"
)

// Stored format: tagged records with a "type" discriminator.
//
// The field names and tag values below are the persisted wire format the
// original client wrote; changing any of them orphans stored pattern
// lists. max_words is an optional integer, null meaning unbounded.
const (
	typeSequence  = "Sequence"
	typeComposite = "Composite"
	typeWord      = "Word"
	typeGap       = "Gap"
	typeReference = "Reference"
	typeOneOf     = "OneOf"
)

func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{typeWord, w.Text})
}

func (g Gap) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string  `json:"type"`
		MinWords uint32  `json:"min_words"`
		MaxWords *uint32 `json:"max_words"`
	}{typeGap, g.MinWords, g.MaxWords})
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		PatternID string `json:"pattern_id"`
	}{typeReference, r.PatternID})
}

func (o OneOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string   `json:"type"`
		Options []string `json:"options"`
	}{typeOneOf, o.Options})
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string    `json:"type"`
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Elements []Element `json:"elements"`
	}{typeSequence, s.ID, s.Name, s.Elements})
}

func (c Composite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string    `json:"type"`
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Operator Operator  `json:"operator"`
		Patterns []Pattern `json:"patterns"`
	}{typeComposite, c.ID, c.Name, c.Operator, c.Patterns})
}

// UnmarshalElement decodes one tagged element record.
func UnmarshalElement(data []byte) (Element, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to read element type tag: %w", err)
	}

	switch probe.Type {
	case typeWord:
		var v struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse Word element: %w", err)
		}
		return Word{Text: v.Text}, nil

	case typeGap:
		var v struct {
			MinWords uint32  `json:"min_words"`
			MaxWords *uint32 `json:"max_words"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse Gap element: %w", err)
		}
		return Gap{MinWords: v.MinWords, MaxWords: v.MaxWords}, nil

	case typeReference:
		var v struct {
			PatternID string `json:"pattern_id"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse Reference element: %w", err)
		}
		return Reference{PatternID: v.PatternID}, nil

	case typeOneOf:
		var v struct {
			Options []string `json:"options"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse OneOf element: %w", err)
		}
		return OneOf{Options: v.Options}, nil
	}

	return nil, fmt.Errorf("unknown element type %q", probe.Type)
}

// Unmarshal decodes one tagged pattern record, recursing into composite
// sub-patterns.
func Unmarshal(data []byte) (Pattern, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to read pattern type tag: %w", err)
	}

	switch probe.Type {
	case typeSequence:
		var v struct {
			ID       string            `json:"id"`
			Name     string            `json:"name"`
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse Sequence pattern: %w", err)
		}

		elements := make([]Element, 0, len(v.Elements))
		for _, raw := range v.Elements {
			element, err := UnmarshalElement(raw)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		return Sequence{ID: v.ID, Name: v.Name, Elements: elements}, nil

	case typeComposite:
		var v struct {
			ID       string            `json:"id"`
			Name     string            `json:"name"`
			Operator Operator          `json:"operator"`
			Patterns []json.RawMessage `json:"patterns"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse Composite pattern: %w", err)
		}

		switch v.Operator {
		case OpAnd, OpOr, OpNot:
		default:
			return nil, fmt.Errorf("unknown composite operator %q", v.Operator)
		}

		patterns := make([]Pattern, 0, len(v.Patterns))
		for _, raw := range v.Patterns {
			sub, err := Unmarshal(raw)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, sub)
		}
		return Composite{ID: v.ID, Name: v.Name, Operator: v.Operator, Patterns: patterns}, nil
	}

	return nil, fmt.Errorf("unknown pattern type %q", probe.Type)
}

// MarshalList encodes an ordered pattern list the way it is persisted:
// one JSON array of tagged records.
func MarshalList(patterns []Pattern) ([]byte, error) {
	if patterns == nil {
		patterns = []Pattern{}
	}
	return json.Marshal(patterns)
}

// UnmarshalList decodes a persisted pattern list.
func UnmarshalList(data []byte) ([]Pattern, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to parse pattern list: %w", err)
	}

	patterns := make([]Pattern, 0, len(raws))
	for _, raw := range raws {
		p, err := Unmarshal(raw)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
