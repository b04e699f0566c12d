package cmd

import (
	"strconv"
	"strings"

	"github.com/nikogura/career-risk/pkg/engine"
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// resolveAttributes turns raw flag input into validated attribute labels.
// Each value can be a level label (case-insensitive) or, for any
// dimension, the ordinal code printed by 'career-risk levels'.
func resolveAttributes(table *factors.Table, skill, education, industry, jobRole string) (attrs engine.Attributes, err error) {
	attrs.Skill, err = resolveAttribute(table, factors.Skill, skill)
	if err != nil {
		return attrs, err
	}

	attrs.Education, err = resolveAttribute(table, factors.Education, education)
	if err != nil {
		return attrs, err
	}

	attrs.Industry, err = resolveAttribute(table, factors.Industry, industry)
	if err != nil {
		return attrs, err
	}

	attrs.JobRole, err = resolveAttribute(table, factors.JobRole, jobRole)
	if err != nil {
		return attrs, err
	}

	return attrs, err
}

func resolveAttribute(table *factors.Table, dim factors.Dimension, raw string) (level string, err error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		err = errors.Errorf("no %s provided (valid: %s)", dim, strings.Join(table.Levels(dim), ", "))
		return level, err
	}

	// Numeric input is an ordinal code into the configured level order.
	if code, convErr := strconv.Atoi(value); convErr == nil {
		level, err = table.LevelByCode(dim, code)
		if err != nil {
			return level, err
		}
		return level, err
	}

	// Canonicalize the label so "service provider" matches the configured
	// "Service Provider". Unknown labels still fail at lookup.
	titleCaser := cases.Title(language.English)
	level = titleCaser.String(value)

	_, err = table.Lookup(dim, level)
	if err != nil {
		err = errors.Wrapf(err, "valid %s levels: %s", dim, strings.Join(table.Levels(dim), ", "))
		return level, err
	}

	return level, err
}

// resolveHorizon picks the transition horizon from the --horizon flag,
// falling back to the configured default only when the flag was not
// given. Non-positive horizons are rejected here, before any steps are
// built from them.
func resolveHorizon(cmd *cobra.Command, table *factors.Table, flagValue int) (horizon int, err error) {
	horizon = flagValue
	if !cmd.Flags().Changed("horizon") {
		horizon = table.DefaultHorizon()
	}

	if horizon <= 0 {
		err = errors.Wrapf(engine.ErrInvalidHorizon, "got %d", horizon)
		return horizon, err
	}

	return horizon, err
}

// transitionSteps enumerates the time steps 0..horizon inclusive.
func transitionSteps(horizon int) (steps []int) {
	steps = make([]int, horizon+1)
	for i := range steps {
		steps[i] = i
	}
	return steps
}

// riskBar renders a value as a proportional text bar against the upper
// clamp bound.
func riskBar(value, max float64, width int) (bar string) {
	filled := int(value / max * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	bar = strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return bar
}
