package model

import "fmt"

type ElementKind int

const (
	KindScalar ElementKind = iota
	KindLabel
	KindGroup
)

// Element is the closed shape of raw jianpu input: a numeric scalar, a
// textual label, or a group whose nesting depth halves note durations.
// Decoded song files are converted into this union once at the boundary
// so the parser never inspects runtime types.
type Element struct {
	Kind   ElementKind
	Number float64
	Text   string
	Items  []Element
}

func Scalar(v float64) Element {
	return Element{Kind: KindScalar, Number: v}
}

func Label(s string) Element {
	return Element{Kind: KindLabel, Text: s}
}

func Group(items ...Element) Element {
	return Element{Kind: KindGroup, Items: items}
}

// ElementFromValue converts a decoded YAML/JSON value into the Element
// union. Sequences may nest arbitrarily.
func ElementFromValue(v any) (Element, error) {
	switch t := v.(type) {
	case int:
		return Scalar(float64(t)), nil
	case int64:
		return Scalar(float64(t)), nil
	case float32:
		return Scalar(float64(t)), nil
	case float64:
		return Scalar(t), nil
	case string:
		return Label(t), nil
	case []any:
		items := make([]Element, 0, len(t))
		for _, raw := range t {
			el, err := ElementFromValue(raw)
			if err != nil {
				return Element{}, err
			}
			items = append(items, el)
		}
		return Group(items...), nil
	default:
		return Element{}, fmt.Errorf("unsupported jianpu value of type %T", v)
	}
}

// ElementsFromValues converts a whole jianpu (one value per bar).
func ElementsFromValues(vs []any) ([]Element, error) {
	res := make([]Element, 0, len(vs))
	for _, raw := range vs {
		el, err := ElementFromValue(raw)
		if err != nil {
			return nil, err
		}
		res = append(res, el)
	}
	return res, nil
}
