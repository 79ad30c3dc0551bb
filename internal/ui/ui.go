// Package ui provides the user-interaction boundary: file selection and
// outcome notifications. The pipeline treats these as opaque synchronous
// calls.
package ui

// Service is the user-interaction contract. SelectFile returns an empty path
// (and no error) when the user declines to choose a file; callers treat that
// as an abort, not a failure.
type Service interface {
	SelectFile(title string, patterns []string) (string, error)
	ShowSuccess(title, message string)
	ShowError(title, message string)
	ShowInfo(title, message string)
}
