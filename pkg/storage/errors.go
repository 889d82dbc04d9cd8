package storage

import "errors"

// ErrInsufficientFunds is returned when a ledger mutation would drive a
// balance negative. It indicates a prior bug or race and is never absorbed
// silently.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNotFound is returned when a realtor, withdrawal, or booking does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a concurrent claim holds the withdrawal, or a
// transition is attempted out of a terminal state.
var ErrConflict = errors.New("withdrawal claimed by another process or in a terminal state")

// ErrValidation is returned when a required field is missing or invalid,
// e.g. an absent cancellation reason.
var ErrValidation = errors.New("validation failed")

// ErrRetriesExhausted is returned when a FAILED withdrawal has reached its
// retry limit and requires manual intervention.
var ErrRetriesExhausted = errors.New("retry limit reached, manual intervention required")
