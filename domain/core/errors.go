package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invalid input: the caller handed us something outside the domain of
	// the requested computation. Checked before any formula runs so a bad
	// input never surfaces as a silent NaN.
	ErrInvalidInput = errors.New("invalid input")

	ErrZeroVisitors      = fmt.Errorf("%w: visitor count must be positive", ErrInvalidInput)
	ErrNegativeCount     = fmt.Errorf("%w: conversion count cannot be negative", ErrInvalidInput)
	ErrConversionsExceed = fmt.Errorf("%w: conversions cannot exceed visitors", ErrInvalidInput)
	ErrSampleTooSmall    = fmt.Errorf("%w: continuous sample needs at least 2 observations", ErrInvalidInput)
	ErrAlphaOutOfRange   = fmt.Errorf("%w: alpha must be in (0,1)", ErrInvalidInput)
	ErrPowerOutOfRange   = fmt.Errorf("%w: power must be in (0,1)", ErrInvalidInput)
	ErrRateOutOfRange    = fmt.Errorf("%w: rate must be in (0,1)", ErrInvalidInput)
	ErrZeroEffect        = fmt.Errorf("%w: minimum detectable effect must be non-zero", ErrInvalidInput)

	// Numeric degeneracy: the input passes validation but the statistic is
	// mathematically undefined for it. Callers can tell this apart from
	// ErrInvalidInput via the helpers below.
	ErrDegenerate = errors.New("statistic undefined")

	ErrZeroPooledVariance = fmt.Errorf("%w: zero pooled variance", ErrDegenerate)
)

// Error constructors with context
func NewInvalidInputError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

func NewDegeneracyError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerate, reason)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerate)
}
