package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.BusinessService = (*BusinessService)(nil)

// BusinessService is a mock implementation of leadscout.BusinessService.
type BusinessService struct {
	CreateBusinessFn   func(ctx context.Context, b *leadscout.Business) error
	FindBusinessByIDFn func(ctx context.Context, id string) (*leadscout.Business, error)
	FindBusinessesFn   func(ctx context.Context, filter leadscout.BusinessFilter) ([]*leadscout.Business, error)
	CountBusinessesFn  func(ctx context.Context, filter leadscout.BusinessFilter) (int, error)
	DeleteBusinessFn   func(ctx context.Context, id string) error
}

func (s *BusinessService) CreateBusiness(ctx context.Context, b *leadscout.Business) error {
	return s.CreateBusinessFn(ctx, b)
}

func (s *BusinessService) FindBusinessByID(ctx context.Context, id string) (*leadscout.Business, error) {
	return s.FindBusinessByIDFn(ctx, id)
}

func (s *BusinessService) FindBusinesses(ctx context.Context, filter leadscout.BusinessFilter) ([]*leadscout.Business, error) {
	return s.FindBusinessesFn(ctx, filter)
}

func (s *BusinessService) CountBusinesses(ctx context.Context, filter leadscout.BusinessFilter) (int, error) {
	return s.CountBusinessesFn(ctx, filter)
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, id string) error {
	return s.DeleteBusinessFn(ctx, id)
}
