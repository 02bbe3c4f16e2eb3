package domain

import (
	"math"
	"sort"
)

// Workout type codes as reported by the tracker sensors.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

type constructor func(params []float64) (Workout, error)

// Variant describes one entry of the dispatch table.
type Variant struct {
	Code       string
	Kind       Kind
	Parameters []string
	build      constructor
}

// Arity is the number of parameters the variant is built from.
func (v Variant) Arity() int {
	return len(v.Parameters)
}

var variants = map[string]Variant{
	CodeRunning: {
		Code:       CodeRunning,
		Kind:       KindRunning,
		Parameters: []string{"action", "duration", "weight"},
		build:      buildRunning,
	},
	CodeWalking: {
		Code:       CodeWalking,
		Kind:       KindWalking,
		Parameters: []string{"action", "duration", "weight", "height"},
		build:      buildWalking,
	},
	CodeSwimming: {
		Code:       CodeSwimming,
		Kind:       KindSwimming,
		Parameters: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build:      buildSwimming,
	},
}

// Variants lists the dispatch table ordered by code.
func Variants() []Variant {
	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Dispatch validates raw sensor parameters and builds the workout for the given type code.
// Parameters are assigned positionally: action, duration, weight, then the variant-specific fields.
func Dispatch(code string, params []float64) (Workout, error) {
	v, ok := variants[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(params) != v.Arity() {
		return nil, &ArityMismatchError{Kind: v.Kind, Expected: v.Arity(), Actual: len(params)}
	}
	for i, p := range params {
		if !isFinite(p) {
			return nil, &InvalidParameterError{Kind: v.Kind, Field: v.Parameters[i], Value: p, Reason: "must be finite"}
		}
	}

	w, err := v.build(params)
	if err != nil {
		return nil, err
	}
	if field, value, ok := nonFiniteMetric(w.Summarize()); ok {
		return nil, &InvalidParameterError{Kind: v.Kind, Field: field, Value: value, Reason: "overflows"}
	}
	return w, nil
}

// maxExactCount is the largest integer a float64 holds without rounding.
const maxExactCount = 1 << 53

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nonFiniteMetric reports the first computed metric that left the float64 range.
func nonFiniteMetric(s Summary) (string, float64, bool) {
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"distance", s.Distance},
		{"speed", s.Speed},
		{"calories", s.Calories},
	} {
		if !isFinite(m.value) {
			return m.name, m.value, true
		}
	}
	return "", 0, false
}

func buildRunning(p []float64) (Workout, error) {
	action, err := baseReadings(KindRunning, p)
	if err != nil {
		return nil, err
	}
	return NewRunning(action, p[1], p[2]), nil
}

func buildWalking(p []float64) (Workout, error) {
	action, err := baseReadings(KindWalking, p)
	if err != nil {
		return nil, err
	}
	if p[3] == 0 {
		return nil, &DivisionFaultError{Kind: KindWalking, Field: "height"}
	}
	return NewSportsWalking(action, p[1], p[2], p[3]), nil
}

func buildSwimming(p []float64) (Workout, error) {
	action, err := baseReadings(KindSwimming, p)
	if err != nil {
		return nil, err
	}
	laps, err := wholeNumber(KindSwimming, "count_pool", p[4])
	if err != nil {
		return nil, err
	}
	return NewSwimming(action, p[1], p[2], p[3], laps), nil
}

// baseReadings checks the fields every variant shares and returns the action count.
func baseReadings(kind Kind, p []float64) (int, error) {
	action, err := wholeNumber(kind, "action", p[0])
	if err != nil {
		return 0, err
	}
	if p[1] == 0 {
		return 0, &DivisionFaultError{Kind: kind, Field: "duration"}
	}
	return action, nil
}

func wholeNumber(kind Kind, field string, value float64) (int, error) {
	switch {
	case value != math.Trunc(value):
		return 0, &InvalidParameterError{Kind: kind, Field: field, Value: value, Reason: "must be a whole number"}
	case value < 0:
		return 0, &InvalidParameterError{Kind: kind, Field: field, Value: value, Reason: "must not be negative"}
	case value > maxExactCount || value > math.MaxInt:
		return 0, &InvalidParameterError{Kind: kind, Field: field, Value: value, Reason: "is too large"}
	}
	return int(value), nil
}
