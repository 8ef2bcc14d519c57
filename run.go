package leadscout

import (
	"context"
	"time"
)

// Run represents one pipeline execution over a zip code's candidate URLs.
// Qualified businesses are persisted incrementally against their run so an
// interrupted run keeps everything accepted so far.
type Run struct {
	ID         string    `json:"id"`
	ZipCode    string    `json:"zipCode"`
	Candidates int       `json:"candidates"`
	Accepted   int       `json:"accepted"`
	Rejected   int       `json:"rejected"`
	Skipped    int       `json:"skipped"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.ZipCode == "" {
		return Errorf(EINVALID, "run zip code required")
	}
	return nil
}

// RunService represents a service for managing pipeline runs.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun records the final counts and finish time for a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves all runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)
}
