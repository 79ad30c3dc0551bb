// Package pipeline orchestrates the CV to portfolio flow: select, extract,
// analyze, generate, persist.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cv-portfolio-agent/internal/artifacts"
	"cv-portfolio-agent/internal/generation"
	"cv-portfolio-agent/internal/observability"
	"cv-portfolio-agent/internal/types"
	"cv-portfolio-agent/internal/ui"
)

// DocumentExtractor pulls plain text out of a CV document.
type DocumentExtractor interface {
	Supports(path string) bool
	Extract(path string) (string, error)
}

// Analyzer turns raw CV text into a structured record.
type Analyzer interface {
	Analyze(ctx context.Context, cvText string) (*types.CVData, error)
}

// Generator renders portfolio markup from a CV record.
type Generator interface {
	Generate(ctx context.Context, data *types.CVData, sourceText string) (string, error)
}

// Pipeline runs the stages in order. Each stage owns its model lifecycle;
// the pipeline owns artifact persistence and user notification.
type Pipeline struct {
	extractor DocumentExtractor
	analyzer  Analyzer
	generator Generator
	store     *artifacts.Store
	ui        ui.Service
	printer   *observability.Printer
	cvPath    string
	log       zerolog.Logger
}

// Options configures a pipeline run.
type Options struct {
	// CVPath bypasses the file picker when set.
	CVPath string
	// Printer enables verbose stage summaries when non-nil.
	Printer *observability.Printer
}

// New assembles a pipeline from its stages.
func New(extractor DocumentExtractor, analyzer Analyzer, generator Generator, store *artifacts.Store, uiSvc ui.Service, opts Options) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		analyzer:  analyzer,
		generator: generator,
		store:     store,
		ui:        uiSvc,
		printer:   opts.Printer,
		cvPath:    opts.CVPath,
		log:       log.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes the full pipeline and returns the path of the generated page.
// A declined file selection is not an error: Run returns ("", nil) and writes
// nothing. Any stage failure is reported through the UI service and returned.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	path, err := p.run(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("pipeline failed")
		p.ui.ShowError("Pipeline Error", fmt.Sprintf("An error occurred:\n\n%v", err))
		return "", err
	}
	return path, nil
}

func (p *Pipeline) run(ctx context.Context) (string, error) {
	cvPath, err := p.selectInput()
	if err != nil {
		return "", err
	}
	if cvPath == "" {
		p.log.Warn().Msg("no file selected, exiting")
		return "", nil
	}

	cvText, err := p.extractText(cvPath)
	if err != nil {
		return "", err
	}

	data, err := p.analyze(ctx, cvText)
	if err != nil {
		return "", err
	}

	html, err := p.generate(ctx, data, cvText)
	if err != nil {
		return "", err
	}

	outputPath, err := p.persist(html, cvPath)
	if err != nil {
		return "", err
	}

	if err := p.store.WriteManifest(); err != nil {
		p.log.Warn().Err(err).Msg("could not write run manifest")
	}

	indexPath := filepath.Join(p.store.Dir(), "index.html")
	p.log.Info().Str("path", outputPath).Msg("portfolio saved")
	p.ui.ShowSuccess("Success!", fmt.Sprintf(
		"Your portfolio has been generated!\n\nMain file:\n%s\n\nQuick access:\n%s",
		outputPath, indexPath))

	return outputPath, nil
}

// selectInput resolves the CV path, either from configuration or by asking
// the user. An empty path with no error means the user declined.
func (p *Pipeline) selectInput() (string, error) {
	if p.cvPath != "" {
		p.log.Info().Str("path", p.cvPath).Msg("using configured cv path")
		return p.cvPath, nil
	}

	p.log.Info().Msg("opening file selector")
	path, err := p.ui.SelectFile("Select Your CV (PDF)", []string{"*.pdf"})
	if err != nil {
		return "", fmt.Errorf("file selection failed: %w", err)
	}
	if path != "" {
		p.log.Info().Str("file", filepath.Base(path)).Msg("selected")
	}
	return path, nil
}

func (p *Pipeline) extractText(cvPath string) (string, error) {
	if !p.extractor.Supports(cvPath) {
		return "", fmt.Errorf("unsupported document type: %s", cvPath)
	}

	cvText, err := p.extractor.Extract(cvPath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cvText) == "" {
		return "", fmt.Errorf("no text could be extracted from %s", cvPath)
	}

	if _, err := p.store.Save(cvText, "cv_raw_text", "txt"); err != nil {
		return "", err
	}

	return cvText, nil
}

func (p *Pipeline) analyze(ctx context.Context, cvText string) (*types.CVData, error) {
	data, err := p.analyzer.Analyze(ctx, cvText)
	if err != nil {
		return nil, err
	}

	dump, err := data.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("could not encode extracted data: %w", err)
	}
	if _, err := p.store.Save(dump, "cv_extracted_data", "json"); err != nil {
		return nil, err
	}

	if p.printer != nil {
		p.printer.PrintCVData(data)
	}

	return data, nil
}

func (p *Pipeline) generate(ctx context.Context, data *types.CVData, cvText string) (string, error) {
	html, err := p.generator.Generate(ctx, data, cvText)
	if err != nil {
		return "", err
	}

	report := generation.InspectPage(html, p.log)
	if p.printer != nil {
		p.printer.PrintPageReport(report)
	}

	return html, nil
}

// persist writes the page under a timestamped name derived from the input
// file, plus a stable index.html copy.
func (p *Pipeline) persist(html, cvPath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(cvPath), filepath.Ext(cvPath))
	name := fmt.Sprintf("%s_portfolio_%s", stem, artifacts.Timestamp(time.Now()))

	outputPath, err := p.store.Save(html, name, "html")
	if err != nil {
		return "", err
	}

	if _, err := p.store.Save(html, "index", "html"); err != nil {
		return "", err
	}

	if p.printer != nil {
		paths := make([]string, 0, len(p.store.Manifest()))
		for _, a := range p.store.Manifest() {
			paths = append(paths, a.Path)
		}
		p.printer.PrintArtifacts(paths)
	}

	return outputPath, nil
}
