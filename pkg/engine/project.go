package engine

import (
	"github.com/pkg/errors"
)

// TargetReduction is the fraction of current systematic risk assumed
// reachable at the end of a diversification plan.
const TargetReduction = 0.6

// ErrInvalidHorizon is returned when a transition horizon is not a
// positive number of time steps.
var ErrInvalidHorizon = errors.New("transition horizon must be positive")

// TrajectoryPoint is the projected systematic risk at one time step of a
// diversification plan.
type TrajectoryPoint struct {
	Step int     `json:"step"`
	Risk float64 `json:"risk"`
}

// DiversificationTarget returns the systematic risk level reachable at
// the end of a diversification plan: 60% of the current level, clamped to
// the configured bounds.
func (e *Engine) DiversificationTarget(hCurrent float64) (target float64) {
	target = e.clamp(TargetReduction * hCurrent)
	return target
}

// ProjectDiversification computes the systematic risk trajectory of a
// diversification plan by linear interpolation from hCurrent at step 0 to
// the diversification target at step horizon. One point is produced per
// element of steps, in the same order.
//
// Points are not clamped: steps outside [0, horizon] extrapolate linearly
// and can land outside the configured risk bounds, so callers should keep
// steps within the horizon.
func (e *Engine) ProjectDiversification(hCurrent float64, horizon int, steps []int) (trajectory []TrajectoryPoint, err error) {
	if horizon <= 0 {
		err = errors.Wrapf(ErrInvalidHorizon, "got %d", horizon)
		return trajectory, err
	}

	target := e.DiversificationTarget(hCurrent)

	trajectory = make([]TrajectoryPoint, len(steps))
	for i, step := range steps {
		fraction := float64(step) / float64(horizon)
		trajectory[i] = TrajectoryPoint{
			Step: step,
			Risk: (1-fraction)*hCurrent + fraction*target,
		}
	}

	return trajectory, err
}
