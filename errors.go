package sigil

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sigil package.
var (
	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("sigil: invalid input")

	// ErrDecode is wrapped by every *DecodeError.
	ErrDecode = errors.New("sigil: cannot decode token")

	// ErrNoGlyphProvider is returned when a letterform pipeline runs without
	// a glyph provider.
	ErrNoGlyphProvider = errors.New("sigil: no glyph provider")
)

// Pipeline stages reported by ValidationError.
const (
	StageIdentifier = "identifier"
	StageLetters    = "letters"
	StageQuad       = "quad"
	StageProcedural = "procedural"
	StageConfig     = "config"
)

// ValidationError reports input rejected before any drawing is produced.
type ValidationError struct {
	Stage      string // pipeline stage that rejected the input
	Constraint string // human-readable rule that was violated
	Input      string
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("sigil: %s: %s", e.Stage, e.Constraint)
	}
	return fmt.Sprintf("sigil: %s: %s (input %q)", e.Stage, e.Constraint, e.Input)
}

// Unwrap makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(stage, constraint, input string) error {
	return &ValidationError{Stage: stage, Constraint: constraint, Input: input}
}

// DecodeError reports a token that is not a valid base-32 encoding of UTF-8
// text.
type DecodeError struct {
	Token  string
	Reason string
	Err    error // underlying decoder error, may be nil
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sigil: decode %q: %s: %v", e.Token, e.Reason, e.Err)
	}
	return fmt.Sprintf("sigil: decode %q: %s", e.Token, e.Reason)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error { return e.Err }
