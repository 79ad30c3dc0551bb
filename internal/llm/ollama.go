package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultSettleDelay is how long Unload waits after the eviction request so
// the runtime can fully release device memory before the next model loads.
const DefaultSettleDelay = 2 * time.Second

// OllamaGateway implements Gateway against a local Ollama server.
type OllamaGateway struct {
	client *api.Client
	settle time.Duration
	log    zerolog.Logger
}

// OllamaOption configures an OllamaGateway.
type OllamaOption func(*OllamaGateway)

// WithSettleDelay overrides the post-eviction settle delay. Tests pass 0.
func WithSettleDelay(d time.Duration) OllamaOption {
	return func(g *OllamaGateway) {
		g.settle = d
	}
}

// NewOllamaGateway creates a gateway talking to the Ollama server configured
// by the environment (OLLAMA_HOST, defaulting to localhost).
func NewOllamaGateway(opts ...OllamaOption) (*OllamaGateway, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	g := &OllamaGateway{
		client: client,
		settle: DefaultSettleDelay,
		log:    log.With().Str("component", "ollama").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func runtimeOptions(opts Options) map[string]any {
	return map[string]any{
		"temperature": opts.Temperature,
		"num_ctx":     opts.ContextWindow,
		"num_predict": opts.MaxTokens,
	}
}

// Generate sends a single prompt via the generate endpoint.
func (g *OllamaGateway) Generate(ctx context.Context, prompt, model string, opts Options) (string, error) {
	stream := false
	var sb strings.Builder

	req := &api.GenerateRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: runtimeOptions(opts),
	}

	err := g.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		g.log.Error().Err(err).Str("model", model).Msg("generate request failed")
		return "", fmt.Errorf("model %s generate failed: %w", model, err)
	}

	return sb.String(), nil
}

// Chat sends an ordered transcript via the chat endpoint.
func (g *OllamaGateway) Chat(ctx context.Context, messages []Message, model string, opts Options) (string, error) {
	stream := false
	var sb strings.Builder

	apiMessages := make([]api.Message, 0, len(messages))
	for _, m := range messages {
		apiMessages = append(apiMessages, api.Message{Role: m.Role, Content: m.Content})
	}

	req := &api.ChatRequest{
		Model:    model,
		Messages: apiMessages,
		Stream:   &stream,
		Options:  runtimeOptions(opts),
	}

	err := g.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		g.log.Error().Err(err).Str("model", model).Msg("chat request failed")
		return "", fmt.Errorf("model %s chat failed: %w", model, err)
	}

	return sb.String(), nil
}

// Unload requests immediate eviction of the model by issuing a generate call
// with zero keep-alive, then waits for the settle delay so the runtime can
// reclaim device memory before the next model is loaded.
func (g *OllamaGateway) Unload(ctx context.Context, model string) bool {
	stream := false
	keepAlive := &api.Duration{Duration: 0}

	req := &api.GenerateRequest{
		Model:     model,
		Prompt:    "",
		Stream:    &stream,
		KeepAlive: keepAlive,
	}

	err := g.client.Generate(ctx, req, func(api.GenerateResponse) error { return nil })
	if err != nil {
		g.log.Warn().Err(err).Str("model", model).Msg("model unload failed (may not be loaded)")
		return false
	}

	if g.settle > 0 {
		time.Sleep(g.settle)
	}

	g.log.Info().Str("model", model).Msg("model evicted, device memory released")
	return true
}

// Available reports whether the Ollama server answers a listing call.
func (g *OllamaGateway) Available(ctx context.Context) bool {
	_, err := g.client.List(ctx)
	return err == nil
}

// Models returns the names of the models installed on the runtime.
func (g *OllamaGateway) Models(ctx context.Context) ([]string, error) {
	resp, err := g.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}
