package leadscout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/leadscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := leadscout.Errorf(leadscout.EINVALID, "bad input")
		assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
	})

	t.Run("returns code for wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("qualify: %w", leadscout.Errorf(leadscout.EUNAVAILABLE, "model down"))
		assert.Equal(t, leadscout.EUNAVAILABLE, leadscout.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, leadscout.EINTERNAL, leadscout.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", leadscout.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := leadscout.Errorf(leadscout.ENOTFOUND, "business %q not found", "abc")
	assert.Equal(t, `business "abc" not found`, leadscout.ErrorMessage(err))
	assert.Equal(t, "Internal error.", leadscout.ErrorMessage(errors.New("boom")))
}

func TestBusiness_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires business name", func(t *testing.T) {
		t.Parallel()
		b := &leadscout.Business{SourceURL: "https://example.com"}
		err := b.Validate()
		require.Error(t, err)
		assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()
		b := &leadscout.Business{BusinessName: "Ace Plumbing"}
		err := b.Validate()
		require.Error(t, err)
		assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
	})

	t.Run("accepts named business with source", func(t *testing.T) {
		t.Parallel()
		b := &leadscout.Business{BusinessName: "Ace Plumbing", SourceURL: "https://aceplumbing.com"}
		require.NoError(t, b.Validate())
	})
}

func TestVerdict_Qualified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verdict leadscout.Verdict
		want    bool
	}{
		{"all criteria met", leadscout.Verdict{IsSmallIndependent: true, IsServiceBased: true}, true},
		{"chain disqualifies", leadscout.Verdict{IsSmallIndependent: true, IsServiceBased: true, IsChainOrFranchise: true}, false},
		{"not service based", leadscout.Verdict{IsSmallIndependent: true}, false},
		{"not independent", leadscout.Verdict{IsServiceBased: true}, false},
		{"zero value rejects", leadscout.Verdict{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.verdict.Qualified())
		})
	}
}

func TestContactSignals_Accessors(t *testing.T) {
	t.Parallel()

	s := &leadscout.ContactSignals{
		OwnerEmails:    []string{"jane@acme.com", "joe@acme.com"},
		BusinessEmails: []string{"info@acme.com"},
	}
	assert.Equal(t, "jane@acme.com", s.FirstOwnerEmail())
	assert.Equal(t, "info@acme.com", s.FirstBusinessEmail())

	empty := &leadscout.ContactSignals{}
	assert.Equal(t, "", empty.FirstOwnerEmail())
	assert.Equal(t, "", empty.FirstBusinessEmail())
	assert.True(t, empty.Empty())
	assert.False(t, (&leadscout.ContactSignals{Phones: []string{"(555) 123-4567"}}).Empty())
}
