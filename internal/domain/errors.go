package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType indicates the dispatcher received a code outside the dispatch table.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch indicates the parameter count differs from the variant's field count.
	ErrArityMismatch = errors.New("parameter count mismatch")
	// ErrDivisionFault is returned when a parameter used as a divisor is zero.
	ErrDivisionFault = errors.New("division by zero")
	// ErrInvalidParameter is returned when a reading is out of range or yields a non-finite result.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// UnknownWorkoutTypeError carries the offending workout type code.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWorkoutType, e.Code)
}

func (e *UnknownWorkoutTypeError) Unwrap() error { return ErrUnknownWorkoutType }

// ArityMismatchError reports how many parameters a variant expected and how many it got.
type ArityMismatchError struct {
	Kind     Kind
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expects %d parameters, got %d", ErrArityMismatch, e.Kind, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// DivisionFaultError names the zero-valued divisor field.
type DivisionFaultError struct {
	Kind  Kind
	Field string
}

func (e *DivisionFaultError) Error() string {
	return fmt.Sprintf("%s: %s.%s must not be zero", ErrDivisionFault, e.Kind, e.Field)
}

func (e *DivisionFaultError) Unwrap() error { return ErrDivisionFault }

// InvalidParameterError describes a reading that could not be assigned to its field.
type InvalidParameterError struct {
	Kind   Kind
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s.%s %s, got %v", ErrInvalidParameter, e.Kind, e.Field, e.Reason, e.Value)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }
