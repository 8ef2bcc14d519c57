package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.BusinessExtractor = (*BusinessExtractor)(nil)

// BusinessExtractor is a mock implementation of leadscout.BusinessExtractor.
type BusinessExtractor struct {
	ExtractBusinessFn func(ctx context.Context, html, url string) (*leadscout.Business, error)
}

func (e *BusinessExtractor) ExtractBusiness(ctx context.Context, html, url string) (*leadscout.Business, error) {
	return e.ExtractBusinessFn(ctx, html, url)
}
