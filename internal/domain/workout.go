// Package domain defines workout calculations for the fitness tracker.
package domain

import "math"

// Kind names a workout variant as it appears in rendered summaries.
type Kind string

const (
	KindRunning  Kind = "Running"
	KindWalking  Kind = "SportsWalking"
	KindSwimming Kind = "Swimming"
)

const (
	mInKm     = 1000
	minInH    = 60
	stepLen   = 0.65
	strokeLen = 1.38
)

// Running calorie coefficients.
const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Walking calorie coefficients.
const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// Swimming calorie coefficients.
const (
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Workout is a single exercise session able to report its own metrics.
type Workout interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	Summarize() Summary
}

// training holds the sensor readings shared by every variant.
// It has no SpentCalories method, so it never satisfies Workout by itself.
type training struct {
	actionCount   int
	durationHours float64
	weightKg      float64
	stepLength    float64
}

// Duration returns the session length in hours.
func (t training) Duration() float64 {
	return t.durationHours
}

// Distance returns the covered distance in kilometres.
func (t training) Distance() float64 {
	return float64(t.actionCount) * t.stepLength / mInKm
}

// MeanSpeed returns the average speed in km/h.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.durationHours
}

func summarize(w Workout) Summary {
	return Summary{
		Kind:     w.Kind(),
		Duration: w.Duration(),
		Distance: w.Distance(),
		Speed:    w.MeanSpeed(),
		Calories: w.SpentCalories(),
	}
}

// Running is a run measured in steps.
type Running struct {
	training
}

// NewRunning builds a Running workout. Use Dispatch for validated construction from raw readings.
func NewRunning(actionCount int, durationHours, weightKg float64) Running {
	return Running{training: training{
		actionCount:   actionCount,
		durationHours: durationHours,
		weightKg:      weightKg,
		stepLength:    stepLen,
	}}
}

// Kind reports KindRunning.
func (Running) Kind() Kind { return KindRunning }

// SpentCalories returns kilocalories burned during the run.
func (r Running) SpentCalories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() - runningSpeedShift) *
		r.weightKg / mInKm * r.durationHours * minInH
}

// Summarize captures the run's metrics.
func (r Running) Summarize() Summary { return summarize(r) }

// SportsWalking is a race-walking session; height feeds the calorie formula.
type SportsWalking struct {
	training
	heightCm float64
}

// NewSportsWalking builds a SportsWalking workout.
func NewSportsWalking(actionCount int, durationHours, weightKg, heightCm float64) SportsWalking {
	return SportsWalking{
		training: training{
			actionCount:   actionCount,
			durationHours: durationHours,
			weightKg:      weightKg,
			stepLength:    stepLen,
		},
		heightCm: heightCm,
	}
}

// Kind reports KindWalking.
func (SportsWalking) Kind() Kind { return KindWalking }

// SpentCalories returns kilocalories burned while walking.
// The squared speed is floor-divided by height before the coefficient applies.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingWeightMultiplier*w.weightKg +
		math.Floor(speed*speed/w.heightCm)*walkingSpeedMultiplier*w.weightKg) *
		w.durationHours * minInH
}

// Summarize captures the walk's metrics.
func (w SportsWalking) Summarize() Summary { return summarize(w) }

// Swimming is a pool session measured in strokes.
type Swimming struct {
	training
	poolLengthM  float64
	poolLapCount int
}

// NewSwimming builds a Swimming workout.
func NewSwimming(actionCount int, durationHours, weightKg, poolLengthM float64, poolLapCount int) Swimming {
	return Swimming{
		training: training{
			actionCount:   actionCount,
			durationHours: durationHours,
			weightKg:      weightKg,
			stepLength:    strokeLen,
		},
		poolLengthM:  poolLengthM,
		poolLapCount: poolLapCount,
	}
}

// Kind reports KindSwimming.
func (Swimming) Kind() Kind { return KindSwimming }

// MeanSpeed is derived from pool geometry rather than stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.poolLengthM * float64(s.poolLapCount) / mInKm / s.durationHours
}

// SpentCalories returns kilocalories burned while swimming.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.weightKg
}

// Summarize captures the swim's metrics.
func (s Swimming) Summarize() Summary { return summarize(s) }
