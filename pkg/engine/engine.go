// Package engine computes AI job-displacement risk scores from categorical
// attributes. Risk is split into a systematic component H (market-wide
// exposure) and an idiosyncratic component V (individual/role-specific
// exposure), each a multiplicative factor model clamped to the configured
// bounds. All functions are pure and deterministic.
package engine

import (
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/pkg/errors"
)

// Attributes holds one value per attribute dimension, as configured level
// labels.
type Attributes struct {
	Skill     string `json:"skill"`
	Education string `json:"education"`
	Industry  string `json:"industry"`
	JobRole   string `json:"job_role"`
}

// RiskProfile is the pair of risk components for one set of attributes.
// Systematic and Idiosyncratic are clamped independently; no joint
// constraint relates them.
type RiskProfile struct {
	Systematic    float64 `json:"systematic"`
	Idiosyncratic float64 `json:"idiosyncratic"`
}

// Engine computes risk scores against a factor table.
type Engine struct {
	table *factors.Table
}

// New creates an engine backed by a factor table.
func New(table *factors.Table) (engine *Engine) {
	engine = &Engine{table: table}
	return engine
}

// lookupEffects validates all four attributes against the factor table.
// The first unknown value fails the whole computation; no partial result
// is produced.
func (e *Engine) lookupEffects(attrs Attributes) (effects [4]factors.Effect, err error) {
	lookups := [4]struct {
		dim   factors.Dimension
		value string
	}{
		{factors.Skill, attrs.Skill},
		{factors.Education, attrs.Education},
		{factors.Industry, attrs.Industry},
		{factors.JobRole, attrs.JobRole},
	}

	for i, lookup := range lookups {
		effects[i], err = e.table.Lookup(lookup.dim, lookup.value)
		if err != nil {
			return effects, err
		}
	}

	return effects, err
}

// SystematicRisk computes H: the base systematic risk multiplied by the
// systematic effect of each attribute, clamped to the configured bounds.
// Clamping is the only guard against runaway products.
func (e *Engine) SystematicRisk(attrs Attributes) (h float64, err error) {
	var effects [4]factors.Effect
	effects, err = e.lookupEffects(attrs)
	if err != nil {
		err = errors.Wrap(err, "systematic risk")
		return h, err
	}

	h = e.table.BaseSystematic()
	for _, effect := range effects {
		h *= effect.Systematic
	}
	h = e.clamp(h)

	return h, err
}

// IdiosyncraticRisk computes V: the base idiosyncratic risk multiplied by
// the idiosyncratic effect of each attribute, clamped to the configured
// bounds. The clamp is applied independently of H.
func (e *Engine) IdiosyncraticRisk(attrs Attributes) (v float64, err error) {
	var effects [4]factors.Effect
	effects, err = e.lookupEffects(attrs)
	if err != nil {
		err = errors.Wrap(err, "idiosyncratic risk")
		return v, err
	}

	v = e.table.BaseIdiosyncratic()
	for _, effect := range effects {
		v *= effect.Idiosyncratic
	}
	v = e.clamp(v)

	return v, err
}

// Assess computes both risk components with a single validation pass.
func (e *Engine) Assess(attrs Attributes) (profile RiskProfile, err error) {
	var effects [4]factors.Effect
	effects, err = e.lookupEffects(attrs)
	if err != nil {
		err = errors.Wrap(err, "risk assessment")
		return profile, err
	}

	h := e.table.BaseSystematic()
	v := e.table.BaseIdiosyncratic()
	for _, effect := range effects {
		h *= effect.Systematic
		v *= effect.Idiosyncratic
	}

	profile = RiskProfile{
		Systematic:    e.clamp(h),
		Idiosyncratic: e.clamp(v),
	}

	return profile, err
}

// clamp constrains a value to [MinRisk, MaxRisk], replacing out-of-range
// values with the nearest bound. Not an error path.
func (e *Engine) clamp(value float64) (clamped float64) {
	clamped = value

	if clamped < e.table.MinRisk() {
		clamped = e.table.MinRisk()
	}
	if clamped > e.table.MaxRisk() {
		clamped = e.table.MaxRisk()
	}

	return clamped
}
