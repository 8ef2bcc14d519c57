package leadscout

import "context"

// Inferencer is the capability interface for language-model inference.
// A single synchronous request/response call with no session state, so any
// backend (local or remote model) can be substituted without touching
// pipeline logic.
type Inferencer interface {
	// Infer sends the prompt to the model and returns its reply text.
	// The reply is free-form; callers are responsible for locating any
	// structured content within it.
	Infer(ctx context.Context, prompt string) (string, error)
}
