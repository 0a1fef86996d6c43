package textnorm

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of option and language errors.
	ErrConfiguration = errors.New("textnorm: configuration error")
	// ErrUnsupportedLanguage is returned for language codes with no profile.
	ErrUnsupportedLanguage = fmt.Errorf("%w: unsupported language", ErrConfiguration)

	// ErrNormalization matches every *NormalizationError.
	ErrNormalization = errors.New("textnorm: normalization failed")
	// ErrResidualDigits reports digits left after numeral transduction.
	ErrResidualDigits = errors.New("failed to convert all digits to words")

	// errDrop signals that a stage rejected the whole entry.
	errDrop = errors.New("entry dropped")
)

// NormalizationError carries the offending input and the partial output of
// the stage that failed.
type NormalizationError struct {
	Stage  string
	Input  string
	Output string
	Err    error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalizing %q at stage %s: %v (output: %q)", e.Input, e.Stage, e.Err, e.Output)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

func (e *NormalizationError) Is(target error) bool { return target == ErrNormalization }
