package wer

import (
	"errors"
	"fmt"
)

var (
	// ErrInput is the root of every error caused by the reference or
	// prediction collections.
	ErrInput = errors.New("wer: invalid input")

	ErrEmptyReference  = fmt.Errorf("%w: reference is empty", ErrInput)
	ErrEmptyPrediction = fmt.Errorf("%w: prediction is empty", ErrInput)
	ErrNoCommonIDs     = fmt.Errorf("%w: no common ids", ErrInput)
	ErrLengthMismatch  = fmt.Errorf("%w: reference and prediction lengths differ", ErrInput)
	ErrMissingFile     = fmt.Errorf("%w: missing file", ErrInput)
	ErrDuplicateID     = fmt.Errorf("%w: duplicate id with different text", ErrInput)
	ErrMalformedLine   = fmt.Errorf("%w: malformed line", ErrInput)
)
