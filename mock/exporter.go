package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of leadscout.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, zipCode string, businesses []*leadscout.Business) ([]string, error)
}

func (e *Exporter) Export(ctx context.Context, zipCode string, businesses []*leadscout.Business) ([]string, error) {
	return e.ExportFn(ctx, zipCode, businesses)
}
