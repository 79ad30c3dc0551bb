package analysis

import "fmt"

// AnalysisError represents a failed model call during CV analysis. Parse
// failures are not analysis errors; they degrade into a raw-analysis record.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cv analysis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cv analysis failed: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
