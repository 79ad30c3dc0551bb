// Package generation renders a portfolio page from a CV record using the
// coder model.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cv-portfolio-agent/internal/llm"
	"cv-portfolio-agent/internal/prompts"
	"cv-portfolio-agent/internal/types"
)

// sourcePrefixLimit caps how much of the original CV text is embedded in the
// generation prompt for cross-checking.
const sourcePrefixLimit = 2000

// Generator runs the portfolio rendering stage against the coder model.
type Generator struct {
	gateway llm.Gateway
	model   string
	opts    llm.Options
	log     zerolog.Logger
}

// New creates a Generator bound to a gateway and model.
func New(gateway llm.Gateway, model string, opts llm.Options) *Generator {
	return &Generator{
		gateway: gateway,
		model:   model,
		opts:    opts,
		log:     log.With().Str("component", "generator").Logger(),
	}
}

// Model returns the model identifier this generator uses.
func (g *Generator) Model() string {
	return g.model
}

// Generate renders a complete HTML page from the CV record. The coder model
// is evicted exactly once on every exit path. A gateway failure returns a
// *GenerationError; there is no degraded mode here.
//
// The returned markup always carries the animation compatibility patches:
// if the model did not include them, ApplyFixes injects them.
func (g *Generator) Generate(ctx context.Context, data *types.CVData, sourceText string) (string, error) {
	g.log.Info().Str("model", g.model).Bool("structured", data.IsStructured()).Msg("generating portfolio")

	if sourceText == "" {
		sourceText = data.OriginalText
	}

	prompt := g.buildPrompt(data, sourceText)

	content, err := g.gateway.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, g.model, g.opts)
	if err != nil {
		g.gateway.Unload(ctx, g.model)
		return "", &GenerationError{Message: "model request failed", Cause: err}
	}

	html := llm.ExtractHTML(content)

	if !strings.Contains(strings.ToLower(html), "aos-animate") {
		g.log.Warn().Msg("animation patches missing from output, injecting")
		html = ApplyFixes(html)
	}

	if !strings.HasPrefix(strings.ToLower(html), "<!doctype") {
		g.log.Warn().Msg("output may not be a complete HTML document")
	}

	g.gateway.Unload(ctx, g.model)
	g.log.Info().Int("bytes", len(html)).Msg("portfolio generated")

	return html, nil
}

func (g *Generator) buildPrompt(data *types.CVData, sourceText string) string {
	template := prompts.MustGet("generation.json", "generate-portfolio")

	prefix := sourceText
	if len(prefix) > sourcePrefixLimit {
		prefix = prefix[:sourcePrefixLimit]
	}

	return prompts.Format(template, map[string]string{
		"DataSection": dataSection(data),
		"SourceText":  prefix,
	})
}

// dataSection embeds either the raw analysis text (degraded mode) or the
// pretty-printed structured record.
func dataSection(data *types.CVData) string {
	if !data.IsStructured() {
		return fmt.Sprintf("## ANALYZED CV DATA:\n%s", data.RawAnalysis)
	}

	dump, err := data.ToJSON()
	if err != nil {
		// Should not happen for a record built from parsed JSON
		return fmt.Sprintf("## ANALYZED CV DATA:\n%s", data.RawAnalysis)
	}
	return fmt.Sprintf("## PORTFOLIO DATA (JSON):\n```json\n%s\n```", dump)
}
