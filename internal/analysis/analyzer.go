// Package analysis extracts a structured CV record from raw document text
// using the reasoning model.
package analysis

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cv-portfolio-agent/internal/llm"
	"cv-portfolio-agent/internal/prompts"
	"cv-portfolio-agent/internal/schemas"
	"cv-portfolio-agent/internal/types"
)

// Analyzer runs the CV extraction stage against the brain model.
type Analyzer struct {
	gateway llm.Gateway
	model   string
	opts    llm.Options
	delims  llm.DelimiterPair
	log     zerolog.Logger
}

// New creates an Analyzer bound to a gateway and model.
func New(gateway llm.Gateway, model string, opts llm.Options, delims llm.DelimiterPair) *Analyzer {
	return &Analyzer{
		gateway: gateway,
		model:   model,
		opts:    opts,
		delims:  delims,
		log:     log.With().Str("component", "analyzer").Logger(),
	}
}

// Model returns the model identifier this analyzer uses.
func (a *Analyzer) Model() string {
	return a.model
}

// Analyze sends the CV text through the extraction prompt and parses the
// response into a structured record. The brain model is evicted exactly once
// on every exit path.
//
// A gateway failure returns an *AnalysisError. A parse failure does not: the
// returned record carries the unparsed model output in RawAnalysis, which
// downstream stages treat as a degraded but usable input.
func (a *Analyzer) Analyze(ctx context.Context, cvText string) (*types.CVData, error) {
	a.log.Info().Str("model", a.model).Msg("analyzing cv")

	prompt := buildPrompt(cvText)

	content, err := a.gateway.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, a.model, a.opts)
	if err != nil {
		// Resource release must happen on failure too
		a.gateway.Unload(ctx, a.model)
		return nil, &AnalysisError{Message: "model request failed", Cause: err}
	}

	data := a.parseResponse(content, cvText)

	a.gateway.Unload(ctx, a.model)
	a.log.Info().Bool("structured", data.IsStructured()).Msg("analysis complete")

	return data, nil
}

func (a *Analyzer) parseResponse(content, cvText string) *types.CVData {
	obj, ok := llm.ExtractJSONWithDelimiters(content, a.delims)
	if !ok {
		a.log.Warn().Msg("could not parse structured JSON, keeping raw analysis")
		return &types.CVData{RawAnalysis: content, OriginalText: cvText}
	}

	a.checkSchema(obj)

	data, err := types.FromMap(obj, cvText)
	if err != nil {
		a.log.Warn().Err(err).Msg("structured object did not map onto the record, keeping raw analysis")
		return &types.CVData{RawAnalysis: content, OriginalText: cvText}
	}

	return data
}

// checkSchema validates the parsed object against the CV schema. Violations
// are warnings only; extraction output is best-effort by nature.
func (a *Analyzer) checkSchema(obj map[string]any) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return
	}
	if err := schemas.ValidateCVData(string(raw)); err != nil {
		a.log.Warn().Err(err).Msg("extracted data does not conform to the cv schema")
	}
}

func buildPrompt(cvText string) string {
	template := prompts.MustGet("analysis.json", "extract-cv-data")
	return prompts.Format(template, map[string]string{
		"CVText": cvText,
	})
}
