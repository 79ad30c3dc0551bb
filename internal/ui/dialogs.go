package ui

import (
	"errors"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
)

// Dialogs implements Service with native desktop dialogs.
type Dialogs struct{}

// NewDialogs creates the native dialog service.
func NewDialogs() *Dialogs {
	return &Dialogs{}
}

// SelectFile opens a native file picker. A cancelled dialog returns an empty
// path with no error.
func (d *Dialogs) SelectFile(title string, patterns []string) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.FileFilters{
			{Name: "PDF files", Patterns: patterns, CaseFold: true},
			{Name: "All files", Patterns: []string{"*"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

// ShowSuccess displays a success notification dialog.
func (d *Dialogs) ShowSuccess(title, message string) {
	if err := zenity.Info(message, zenity.Title(title)); err != nil {
		log.Warn().Err(err).Msg("failed to show success dialog")
	}
}

// ShowError displays an error notification dialog.
func (d *Dialogs) ShowError(title, message string) {
	if err := zenity.Error(message, zenity.Title(title)); err != nil {
		log.Warn().Err(err).Msg("failed to show error dialog")
	}
}

// ShowInfo displays an informational dialog.
func (d *Dialogs) ShowInfo(title, message string) {
	if err := zenity.Info(message, zenity.Title(title)); err != nil {
		log.Warn().Err(err).Msg("failed to show info dialog")
	}
}
