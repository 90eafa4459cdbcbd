package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ADAning/animal-well-flute-sub000/model"
)

// TokenizeBar splits a bar string on spaces while keeping parenthesized
// groups intact: "0 0 (0 3) (3 4)" -> ["0", "0", "(0 3)", "(3 4)"].
func TokenizeBar(barStr string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0

	flush := func() {
		tok := strings.TrimSpace(current.String())
		if tok != "" {
			tokens = append(tokens, tok)
		}
		current.Reset()
	}

	for _, r := range barStr {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// ParseToken parses one token into the Element union. Parenthesized
// tokens become groups, commas and spaces both separate group members.
func ParseToken(token string) (model.Element, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Element{}, fmt.Errorf("empty note token")
	}

	if strings.HasPrefix(token, "(") && strings.HasSuffix(token, ")") {
		if !balancedParens(token) {
			return model.Element{}, fmt.Errorf("unbalanced parentheses in %q", token)
		}
		inner := strings.TrimSpace(token[1 : len(token)-1])
		if inner == "" {
			return model.Group(), nil
		}
		var items []model.Element
		for _, part := range splitTopLevel(inner) {
			el, err := ParseToken(part)
			if err != nil {
				return model.Element{}, err
			}
			items = append(items, el)
		}
		return model.Group(items...), nil
	}

	// numbers become scalars, everything else stays a label
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return model.Scalar(v), nil
	}
	return model.Label(token), nil
}

// ParseBarString parses a whole bar string into a Group element, or a
// bare Scalar when the bar is a single numeric token (a key offset).
func ParseBarString(barStr string) (model.Element, error) {
	tokens := TokenizeBar(barStr)
	if len(tokens) == 0 {
		return model.Element{}, fmt.Errorf("empty bar")
	}

	if len(tokens) == 1 {
		el, err := ParseToken(tokens[0])
		if err != nil {
			return model.Element{}, err
		}
		if el.Kind == model.KindScalar {
			return el, nil
		}
	}

	items := make([]model.Element, 0, len(tokens))
	for _, tok := range tokens {
		el, err := ParseToken(tok)
		if err != nil {
			return model.Element{}, err
		}
		items = append(items, el)
	}
	return model.Group(items...), nil
}

// splitTopLevel splits on spaces or commas outside parentheses.
func splitTopLevel(text string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	flush := func() {
		part := strings.TrimSpace(current.String())
		if part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for _, r := range text {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case (r == ' ' || r == ',') && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return parts
}

func balancedParens(token string) bool {
	count := 0
	for _, r := range token {
		switch r {
		case '(':
			count++
		case ')':
			count--
			if count < 0 {
				return false
			}
		}
	}
	return count == 0
}
