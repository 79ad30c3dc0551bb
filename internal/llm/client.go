// Package llm provides the gateway to the local model runtime and utilities
// for recovering structured payloads from free-form model output.
package llm

import "context"

// Options holds the generation parameters for a single model call.
type Options struct {
	Temperature   float64
	ContextWindow int
	MaxTokens     int
}

// DefaultOptions returns the baseline generation parameters.
func DefaultOptions() Options {
	return Options{
		Temperature:   0.3,
		ContextWindow: 8192,
		MaxTokens:     4096,
	}
}

// Message is a single role-tagged turn in a chat transcript.
type Message struct {
	Role    string
	Content string
}

// RoleUser is the role tag for user-authored chat turns.
const RoleUser = "user"

// Gateway is the boundary to the local model runtime. Exactly one model is
// resident at a time: callers load a model implicitly by using it and must
// call Unload before a different model is needed.
type Gateway interface {
	// Generate sends a single prompt to the named model and returns the
	// generated text. Runtime failures come back as error values with a
	// human-readable message; Generate never panics.
	Generate(ctx context.Context, prompt, model string, opts Options) (string, error)

	// Chat sends an ordered chat transcript to the named model.
	Chat(ctx context.Context, messages []Message, model string, opts Options) (string, error)

	// Unload evicts the named model from device memory immediately and waits
	// for the runtime to settle. Failure (e.g. the model was never loaded) is
	// non-fatal and reported as false.
	Unload(ctx context.Context, model string) bool

	// Available reports whether the runtime answers a lightweight listing
	// call. Any failure means unavailable.
	Available(ctx context.Context) bool
}
