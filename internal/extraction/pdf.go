// Package extraction provides document text extraction for the pipeline.
package extraction

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NotFoundError indicates the source document does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.Path)
}

// UnsupportedFormatError indicates the source document has an extension this
// extractor cannot handle.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", filepath.Ext(e.Path))
}

// PDFExtractor extracts plain text from PDF documents.
type PDFExtractor struct {
	log zerolog.Logger
}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		log: log.With().Str("component", "pdf").Logger(),
	}
}

// Supports reports whether the file at path has a supported extension.
func (e *PDFExtractor) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// Extract returns the full plain-text content of the PDF at path.
func (e *PDFExtractor) Extract(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", &NotFoundError{Path: path}
	}
	if !e.Supports(path) {
		return "", &UnsupportedFormatError{Path: path}
	}

	e.log.Info().Str("file", filepath.Base(path)).Msg("extracting text")

	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text from %s: %w", path, err)
	}

	text := string(raw)
	e.log.Info().Int("chars", len(text)).Int("pages", reader.NumPage()).Msg("extraction complete")

	return text, nil
}
