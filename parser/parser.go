// Package parser turns nested jianpu bar structures into flat, timed
// sequences of relative notes. Nesting depth encodes rhythmic
// subdivision: every extra level halves the duration of its leaves.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ADAning/animal-well-flute-sub000/analysis"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/notation"
	"github.com/sirupsen/logrus"
)

// BarDuration is the base duration of one bar, in beats.
const BarDuration = 2.0

// ParseError is fatal to the whole parse call. Bar is 1-based and 0 when
// the error is not tied to a particular bar.
type ParseError struct {
	Bar int
	Err error
}

func (e *ParseError) Error() string {
	if e.Bar > 0 {
		return fmt.Sprintf("bar %d: %v", e.Bar, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Parser struct {
	table *notation.Table
}

// New returns a parser over the given notation table. A nil table gets a
// freshly seeded one.
func New(table *notation.Table) *Parser {
	if table == nil {
		table = notation.NewTable()
	}
	return &Parser{table: table}
}

func (p *Parser) Table() *notation.Table {
	return p.table
}

// Parse walks the bar list. Bar-level numeric scalars (or numeric
// strings) set the running key offset added to every later pitch; they
// must be multiples of 0.5 or the whole parse fails. Other bars are
// parsed recursively starting at BarDuration.
func (p *Parser) Parse(jianpu []model.Element) ([][]model.RelativeNote, error) {
	var parsed [][]model.RelativeNote
	majorOffset := 0.0
	barCount := 0

	for _, bar := range jianpu {
		offset, isOffset, err := barOffset(bar)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		if isOffset {
			majorOffset = offset
			logrus.Debugf("major offset changed to %v", offset)
			continue
		}

		var notes []model.RelativeNote
		if err := p.parseRecursively(bar, &notes, BarDuration, majorOffset); err != nil {
			return nil, &ParseError{Bar: barCount + 1, Err: err}
		}

		// grow the notation table when a bar reaches above what it knows
		min, max, pitched := barBounds(notes)
		if pitched && max-min > 0 {
			p.table.ExtendRange(max)
		}

		parsed = append(parsed, notes)
		barCount++
	}

	logrus.Debugf("parsed %d bars", barCount)
	return parsed, nil
}

// GetRangeInfo aggregates range statistics over every bar.
func (p *Parser) GetRangeInfo(parsed [][]model.RelativeNote) model.RangeInfo {
	var all []model.RelativeNote
	for _, bar := range parsed {
		all = append(all, bar...)
	}
	return analysis.AnalyzeRelative(all)
}

// barOffset reports whether a bar-level element is a running key offset.
// A bare label that is not numeric is fatal: bars are always groups, so
// a stray string here can only be a malformed offset.
func barOffset(bar model.Element) (float64, bool, error) {
	switch bar.Kind {
	case model.KindScalar:
		if !isHalfStep(bar.Number) {
			return 0, false, fmt.Errorf("invalid major offset: %v", bar.Number)
		}
		return bar.Number, true, nil
	case model.KindLabel:
		v, err := strconv.ParseFloat(strings.TrimSpace(bar.Text), 64)
		if err != nil {
			return 0, false, fmt.Errorf("invalid major offset: %q", bar.Text)
		}
		if !isHalfStep(v) {
			return 0, false, fmt.Errorf("invalid major offset: %v", v)
		}
		return v, true, nil
	default:
		return 0, false, nil
	}
}

func (p *Parser) parseRecursively(elem model.Element, result *[]model.RelativeNote, timeFactor, majorOffset float64) error {
	switch elem.Kind {
	case model.KindGroup:
		for _, item := range elem.Items {
			if err := p.parseRecursively(item, result, timeFactor/2, majorOffset); err != nil {
				return err
			}
		}
		return nil
	case model.KindScalar:
		return p.appendScalar(elem.Number, result, timeFactor, majorOffset)
	case model.KindLabel:
		return p.appendLabel(elem.Text, result, timeFactor, majorOffset)
	default:
		return fmt.Errorf("unsupported element kind %d", elem.Kind)
	}
}

func (p *Parser) appendScalar(v float64, result *[]model.RelativeNote, timeFactor, majorOffset float64) error {
	if !isHalfStep(v) {
		return fmt.Errorf("invalid note value: %v", v)
	}
	return p.appendNote(formatNumber(v), result, timeFactor, majorOffset)
}

func (p *Parser) appendLabel(s string, result *[]model.RelativeNote, timeFactor, majorOffset float64) error {
	s = strings.TrimSpace(s)

	// trailing dot marker: half again as long
	if strings.HasSuffix(s, "d") {
		timeFactor *= 1.5
	}

	if len(s) == 1 {
		if !strings.ContainsRune("12345670-", rune(s[0])) {
			return fmt.Errorf("invalid note character: %q", s)
		}
		if s == "-" {
			if len(*result) == 0 {
				return fmt.Errorf("extension with no preceding note")
			}
			(*result)[len(*result)-1].TimeFactor += timeFactor
			return nil
		}
		return p.appendNote(s, result, timeFactor, majorOffset)
	}

	return p.appendNote(strings.ReplaceAll(s, "d", ""), result, timeFactor, majorOffset)
}

func (p *Parser) appendNote(noteStr string, result *[]model.RelativeNote, timeFactor, majorOffset float64) error {
	var height *float64
	if noteStr != "0" {
		base, ok := p.table.GetRelativeHeight(noteStr)
		if !ok {
			return fmt.Errorf("unknown note: %q", noteStr)
		}
		height = model.Height(base + majorOffset)
	}

	note, err := model.NewRelativeNote(noteStr, height, timeFactor)
	if err != nil {
		return err
	}
	*result = append(*result, note)
	return nil
}

func barBounds(notes []model.RelativeNote) (min, max float64, pitched bool) {
	for _, n := range notes {
		if n.RelativeHeight == nil {
			continue
		}
		h := *n.RelativeHeight
		if !pitched || h < min {
			min = h
		}
		if !pitched || h > max {
			max = h
		}
		pitched = true
	}
	return min, max, pitched
}

func isHalfStep(v float64) bool {
	return math.Mod(v, 0.5) == 0
}

// formatNumber renders scalars the way they appear as labels: integral
// values without a decimal part ("3", not "3.0").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
