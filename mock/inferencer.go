// Package mock provides function-field mock implementations of the
// leadscout interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.Inferencer = (*Inferencer)(nil)

// Inferencer is a mock implementation of leadscout.Inferencer.
type Inferencer struct {
	InferFn func(ctx context.Context, prompt string) (string, error)
}

func (i *Inferencer) Infer(ctx context.Context, prompt string) (string, error) {
	return i.InferFn(ctx, prompt)
}
