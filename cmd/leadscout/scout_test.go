package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/leadscout"
	main "github.com/fwojciec/leadscout/cmd/leadscout"
	"github.com/fwojciec/leadscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoutDeps wires a full set of mocks that discover one URL, extract one
// named record, and accept it.
func scoutDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Runs: &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *leadscout.Run) error {
				run.ID = "run-1"
				return nil
			},
			FinishRunFn: func(ctx context.Context, run *leadscout.Run) error {
				return nil
			},
		},
		Businesses: &mock.BusinessService{
			CreateBusinessFn: func(ctx context.Context, b *leadscout.Business) error {
				return nil
			},
		},
		Searcher: &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, limit int) ([]string, error) {
				if query == "plumbers near 62704" {
					return []string{"https://aceplumbing.com"}, nil
				}
				return nil, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body>Ace Plumbing</body></html>", nil
			},
		},
		Extractor: &mock.BusinessExtractor{
			ExtractBusinessFn: func(ctx context.Context, html, url string) (*leadscout.Business, error) {
				return &leadscout.Business{BusinessName: "Ace Plumbing", SourceURL: url}, nil
			},
		},
		Qualifier: &mock.Qualifier{
			QualifyFn: func(ctx context.Context, b *leadscout.Business) (bool, *leadscout.Verdict, error) {
				return true, &leadscout.Verdict{IsSmallIndependent: true, IsServiceBased: true}, nil
			},
		},
		Exporter: &mock.Exporter{
			ExportFn: func(ctx context.Context, zipCode string, businesses []*leadscout.Business) ([]string, error) {
				return []string{"businesses_62704.json"}, nil
			},
		},
	}
}

func TestCmdScout(t *testing.T) {
	t.Parallel()

	t.Run("runs discovery through export", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scoutDeps(stdout, stderr)

		cmd := &main.ScoutCmd{Zip: "62704", Max: 20, Out: t.TempDir()}
		err := cmd.Run(deps)
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "Found 1 candidate sites")
		assert.Contains(t, out, "Ace Plumbing")
		assert.Contains(t, out, "Qualified 1 of 1 candidates")
		assert.Contains(t, out, "wrote businesses_62704.json")
	})

	t.Run("stamps the run ID on persisted records", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scoutDeps(stdout, stderr)

		var savedRunID string
		deps.Businesses = &mock.BusinessService{
			CreateBusinessFn: func(ctx context.Context, b *leadscout.Business) error {
				savedRunID = b.RunID
				return nil
			},
		}

		cmd := &main.ScoutCmd{Zip: "62704", Max: 20, Out: t.TempDir()}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "run-1", savedRunID)
	})

	t.Run("records final counts on the run", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scoutDeps(stdout, stderr)

		var finished *leadscout.Run
		deps.Runs = &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *leadscout.Run) error {
				run.ID = "run-1"
				return nil
			},
			FinishRunFn: func(ctx context.Context, run *leadscout.Run) error {
				finished = run
				return nil
			},
		}

		cmd := &main.ScoutCmd{Zip: "62704", Max: 20, Out: t.TempDir()}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, finished)
		assert.Equal(t, 1, finished.Candidates)
		assert.Equal(t, 1, finished.Accepted)
	})

	t.Run("rejects malformed zip codes", func(t *testing.T) {
		t.Parallel()

		for _, zip := range []string{"1234", "123456", "abcde", "62 04", ""} {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			deps := scoutDeps(stdout, stderr)

			cmd := &main.ScoutCmd{Zip: zip, Max: 20}
			err := cmd.Run(deps)

			require.Error(t, err, "zip %q should be rejected", zip)
			assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
		}
	})

	t.Run("reports skipped URLs without aborting", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scoutDeps(stdout, stderr)

		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		cmd := &main.ScoutCmd{Zip: "62704", Max: 20, Out: t.TempDir()}
		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "skip https://aceplumbing.com")
		assert.Contains(t, stdout.String(), "Qualified 0 of 1 candidates")
	})

	t.Run("returns error when run cannot be created", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := scoutDeps(stdout, stderr)

		deps.Runs = &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *leadscout.Run) error {
				return errors.New("disk full")
			},
		}

		cmd := &main.ScoutCmd{Zip: "62704", Max: 20}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.NotEmpty(t, stderr.String())
	})
}
