// Package factors holds the risk factor table: the closed set of valid
// attribute values for each dimension and the effect multipliers applied
// to the base risks. The table is immutable after construction and safe
// for concurrent reads.
package factors

import (
	"github.com/nikogura/career-risk/pkg/config"
	"github.com/pkg/errors"
)

// Dimension identifies one of the four categorical attribute dimensions.
type Dimension string

// The four attribute dimensions. Skill and Education are ordinal (level
// order matters), Industry and JobRole are nominal.
const (
	Skill     Dimension = "skill"
	Education Dimension = "education"
	Industry  Dimension = "industry"
	JobRole   Dimension = "job_role"
)

// ErrUnknownAttribute is returned when an attribute value is not in the
// configured set for its dimension.
var ErrUnknownAttribute = errors.New("unknown attribute value")

// ErrUnknownDimension is returned for a dimension the table was not
// configured with.
var ErrUnknownDimension = errors.New("unknown dimension")

// Effect holds the pair of multipliers a single attribute value applies
// to the base risks.
type Effect struct {
	Systematic    float64
	Idiosyncratic float64
}

// Table maps attribute values to their effect multipliers and carries the
// base risk constants, clamp bounds, and default transition horizon.
type Table struct {
	effects           map[Dimension]map[string]Effect
	levels            map[Dimension][]string
	baseSystematic    float64
	baseIdiosyncratic float64
	minRisk           float64
	maxRisk           float64
	defaultHorizon    int
}

// NewTable builds a Table from configuration. The configuration is
// validated first, so a constructed Table always has full effect coverage
// for every level of every dimension.
func NewTable(cfg config.Config) (table *Table, err error) {
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid factor table configuration")
		return table, err
	}

	table = &Table{
		effects:           make(map[Dimension]map[string]Effect, 4),
		levels:            make(map[Dimension][]string, 4),
		baseSystematic:    cfg.BaseSystematic,
		baseIdiosyncratic: cfg.BaseIdiosyncratic,
		minRisk:           cfg.MinRisk,
		maxRisk:           cfg.MaxRisk,
		defaultHorizon:    cfg.DefaultHorizon,
	}

	dimensions := map[Dimension]config.DimensionConfig{
		Skill:     cfg.Skill,
		Education: cfg.Education,
		Industry:  cfg.Industry,
		JobRole:   cfg.JobRole,
	}

	for dim, dimCfg := range dimensions {
		effects := make(map[string]Effect, len(dimCfg.Levels))
		levels := make([]string, len(dimCfg.Levels))

		for i, level := range dimCfg.Levels {
			levels[i] = level
			effects[level] = Effect{
				Systematic:    dimCfg.Systematic[level],
				Idiosyncratic: dimCfg.Idiosyncratic[level],
			}
		}

		table.effects[dim] = effects
		table.levels[dim] = levels
	}

	return table, err
}

// Lookup returns the effect multipliers for a value of a dimension. A
// value outside the configured set fails with ErrUnknownAttribute; there
// is no default multiplier.
func (t *Table) Lookup(dim Dimension, value string) (effect Effect, err error) {
	effects, ok := t.effects[dim]
	if !ok {
		err = errors.Wrapf(ErrUnknownDimension, "%q", dim)
		return effect, err
	}

	effect, ok = effects[value]
	if !ok {
		err = errors.Wrapf(ErrUnknownAttribute, "%q is not a configured %s level", value, dim)
		return effect, err
	}

	return effect, err
}

// Levels returns the configured levels of a dimension in configuration
// order. For ordinal dimensions the index is the level's ordinal code.
func (t *Table) Levels(dim Dimension) (levels []string) {
	configured := t.levels[dim]
	levels = make([]string, len(configured))
	copy(levels, configured)
	return levels
}

// LevelByCode resolves an ordinal code to its level label.
func (t *Table) LevelByCode(dim Dimension, code int) (level string, err error) {
	levels, ok := t.levels[dim]
	if !ok {
		err = errors.Wrapf(ErrUnknownDimension, "%q", dim)
		return level, err
	}

	if code < 0 || code >= len(levels) {
		err = errors.Wrapf(ErrUnknownAttribute, "code %d is out of range for %s (0-%d)", code, dim, len(levels)-1)
		return level, err
	}

	level = levels[code]
	return level, err
}

// BaseSystematic returns the base systematic risk constant.
func (t *Table) BaseSystematic() (base float64) {
	base = t.baseSystematic
	return base
}

// BaseIdiosyncratic returns the base idiosyncratic risk constant.
func (t *Table) BaseIdiosyncratic() (base float64) {
	base = t.baseIdiosyncratic
	return base
}

// MinRisk returns the lower clamp bound.
func (t *Table) MinRisk() (min float64) {
	min = t.minRisk
	return min
}

// MaxRisk returns the upper clamp bound.
func (t *Table) MaxRisk() (max float64) {
	max = t.maxRisk
	return max
}

// DefaultHorizon returns the default transition horizon in time steps.
func (t *Table) DefaultHorizon() (horizon int) {
	horizon = t.defaultHorizon
	return horizon
}
