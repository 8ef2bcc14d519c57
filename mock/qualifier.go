package mock

import (
	"context"

	"github.com/fwojciec/leadscout"
)

var _ leadscout.Qualifier = (*Qualifier)(nil)

// Qualifier is a mock implementation of leadscout.Qualifier.
type Qualifier struct {
	QualifyFn func(ctx context.Context, b *leadscout.Business) (bool, *leadscout.Verdict, error)
}

func (q *Qualifier) Qualify(ctx context.Context, b *leadscout.Business) (bool, *leadscout.Verdict, error) {
	return q.QualifyFn(ctx, b)
}
