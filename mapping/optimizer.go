package mapping

import (
	"errors"
	"math"

	"github.com/ADAning/animal-well-flute-sub000/analysis"
	"github.com/ADAning/animal-well-flute-sub000/instrument"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/sirupsen/logrus"
)

var autoStrategies = []model.Strategy{model.StrategyOptimal, model.StrategyHigh, model.StrategyLow}

var errNoFeasibleMapping = errors.New("no feasible mapping strategy found")

// mapFunc runs a single strategy attempt. Swappable in tests.
type mapFunc func(notes []model.RelativeNote, strategy model.Strategy, manualOffset *float64) ([]model.PhysicalNote, error)

// Optimizer runs the mapper under multiple strategies and picks the
// best result by score, or the first that satisfies a preference.
type Optimizer struct {
	mapper *Mapper
	mapFn  mapFunc
}

func NewOptimizer() *Optimizer {
	m := NewMapper()
	return &Optimizer{mapper: m, mapFn: m.MapSong}
}

// FindBestMapping tries every automatic strategy and keeps the highest
// scoring one. Fails only when all of them fail.
func (o *Optimizer) FindBestMapping(notes []model.RelativeNote) ([]model.PhysicalNote, model.Strategy, error) {
	var best []model.PhysicalNote
	var bestStrategy model.Strategy
	bestScore := math.Inf(-1)

	for _, s := range autoStrategies {
		mapped, err := o.mapFn(notes, s, nil)
		if err != nil {
			logrus.Debugf("strategy %s infeasible: %v", s, err)
			continue
		}
		if score := evaluateMapping(mapped); score > bestScore {
			bestScore = score
			best = mapped
			bestStrategy = s
		}
	}

	if best == nil {
		return nil, "", errNoFeasibleMapping
	}
	return best, bestStrategy, nil
}

// FindBestMappingWithPreference tries the preferred strategy first,
// then falls back through the others in table order (not by score). An
// unrecognized preference degrades to FindBestMapping.
func (o *Optimizer) FindBestMappingWithPreference(notes []model.RelativeNote, preference string) ([]model.PhysicalNote, model.Strategy, error) {
	preferred := model.Strategy(preference)
	known := false
	for _, s := range autoStrategies {
		if s == preferred {
			known = true
			break
		}
	}
	if !known {
		return o.FindBestMapping(notes)
	}

	candidates := []model.Strategy{preferred}
	for _, s := range autoStrategies {
		if s != preferred {
			candidates = append(candidates, s)
		}
	}

	for _, s := range candidates {
		mapped, err := o.mapFn(notes, s, nil)
		if err != nil {
			logrus.Debugf("strategy %s infeasible: %v", s, err)
			continue
		}
		return mapped, s, nil
	}
	return nil, "", errNoFeasibleMapping
}

// evaluateMapping scores a successful mapping: window utilization,
// centering and distance to the window edges.
func evaluateMapping(notes []model.PhysicalNote) float64 {
	info := analysis.AnalyzePhysical(notes)

	utilization := info.Span / instrument.PhysicalRange

	center := (info.MinHeight + info.MaxHeight) / 2
	fluteCenter := (instrument.MinPhysicalHeight + instrument.MaxPhysicalHeight) / 2
	centering := 1.0 - math.Abs(center-fluteCenter)/(instrument.PhysicalRange/2)

	minMargin := (info.MinHeight - instrument.MinPhysicalHeight) / instrument.PhysicalRange
	maxMargin := (instrument.MaxPhysicalHeight - info.MaxHeight) / instrument.PhysicalRange
	safety := math.Min(minMargin, maxMargin)

	return utilization*0.3 + centering*0.4 + safety*0.3
}
