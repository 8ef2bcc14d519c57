package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/leadscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leadscout.RunService = (*RunService)(nil)

// RunService implements leadscout.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *leadscout.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, zip_code, candidates, accepted, rejected, skipped, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, '')
	`, run.ID, run.ZipCode, run.Candidates, run.Accepted, run.Rejected, run.Skipped,
		run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun records the final counts and finish time for a run.
func (s *RunService) FinishRun(ctx context.Context, run *leadscout.Run) error {
	run.FinishedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET candidates = ?, accepted = ?, rejected = ?, skipped = ?, finished_at = ?
		WHERE id = ?
	`, run.Candidates, run.Accepted, run.Rejected, run.Skipped,
		run.FinishedAt.Format(time.RFC3339), run.ID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return leadscout.Errorf(leadscout.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*leadscout.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, zip_code, candidates, accepted, rejected, skipped, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, leadscout.Errorf(leadscout.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves all runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*leadscout.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, zip_code, candidates, accepted, rejected, skipped, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*leadscout.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// scanRun reads one row's columns into a Run.
func scanRun(scan func(dest ...any) error) (*leadscout.Run, error) {
	var run leadscout.Run
	var startedAt, finishedAt string

	if err := scan(&run.ID, &run.ZipCode, &run.Candidates, &run.Accepted,
		&run.Rejected, &run.Skipped, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}
	if finishedAt != "" {
		run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
		if err != nil {
			return nil, err
		}
	}

	return &run, nil
}
