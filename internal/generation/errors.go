package generation

import "fmt"

// GenerationError represents a failed model call during portfolio generation.
// Unlike analysis, generation has no degraded mode: without markup there is
// nothing to persist.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("portfolio generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("portfolio generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
