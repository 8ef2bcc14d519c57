package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.RunService = (*RunService)(nil)

// RunService is a mock implementation of leadscout.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *leadscout.Run) error
	FinishRunFn   func(ctx context.Context, run *leadscout.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*leadscout.Run, error)
	FindRunsFn    func(ctx context.Context) ([]*leadscout.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *leadscout.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, run *leadscout.Run) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*leadscout.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*leadscout.Run, error) {
	return s.FindRunsFn(ctx)
}
