package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/leadscout"
	main "github.com/fwojciec/leadscout/cmd/leadscout"
	"github.com/fwojciec/leadscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdExport(t *testing.T) {
	t.Parallel()

	t.Run("exports stored businesses for a run", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		var exportedZip string
		var exportedCount int
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunByIDFn: func(ctx context.Context, id string) (*leadscout.Run, error) {
					return &leadscout.Run{ID: id, ZipCode: "62704"}, nil
				},
			},
			Businesses: &mock.BusinessService{
				FindBusinessesFn: func(ctx context.Context, filter leadscout.BusinessFilter) ([]*leadscout.Business, error) {
					require.NotNil(t, filter.RunID)
					return []*leadscout.Business{
						{BusinessName: "Ace Plumbing", SourceURL: "https://aceplumbing.com"},
					}, nil
				},
			},
			Exporter: &mock.Exporter{
				ExportFn: func(ctx context.Context, zipCode string, businesses []*leadscout.Business) ([]string, error) {
					exportedZip = zipCode
					exportedCount = len(businesses)
					return []string{"businesses_62704.json", "businesses_62704.csv"}, nil
				},
			},
		}

		err := (&main.ExportCmd{RunID: "run-1"}).Run(deps)
		require.NoError(t, err)

		assert.Equal(t, "62704", exportedZip)
		assert.Equal(t, 1, exportedCount)
		assert.Contains(t, stdout.String(), "Exported 1 businesses from run run-1")
		assert.Contains(t, stdout.String(), "wrote businesses_62704.csv")
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunByIDFn: func(ctx context.Context, id string) (*leadscout.Run, error) {
					return nil, leadscout.Errorf(leadscout.ENOTFOUND, "run not found")
				},
			},
		}

		err := (&main.ExportCmd{RunID: "no-such-run"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, leadscout.ENOTFOUND, leadscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "run not found")
	})
}
