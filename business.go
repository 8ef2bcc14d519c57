package leadscout

import (
	"context"
	"time"
)

// Business represents a structured contact record for one scraped website.
//
// The JSON tags double as the wire format expected from the extraction
// model's reply, so a located JSON object decodes directly into this struct.
// String fields left empty mean the value could not be determined.
type Business struct {
	ID            string   `json:"id,omitempty"`
	BusinessName  string   `json:"business_name"`
	OwnerName     string   `json:"owner_name"`
	OwnerEmail    string   `json:"owner_email"`
	BusinessEmail string   `json:"business_email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Website       string   `json:"website"`
	Description   string   `json:"description"`
	BusinessType  string   `json:"business_type"`
	Services      []string `json:"services"`

	// SourceURL is always the URL the record was extracted from,
	// regardless of what the model returned.
	SourceURL string `json:"source_url"`

	// ContentHash fingerprints the fetched page the record came from.
	ContentHash string `json:"content_hash,omitempty"`

	RunID     string    `json:"run_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Validate returns an error if the business contains invalid fields.
func (b *Business) Validate() error {
	if b.BusinessName == "" {
		return Errorf(EINVALID, "business name required")
	}
	if b.SourceURL == "" {
		return Errorf(EINVALID, "business source URL required")
	}
	return nil
}

// Verdict is the qualification decision for a business. Its zero value
// rejects: a reply that omits any criterion must not admit a business.
type Verdict struct {
	IsSmallIndependent bool   `json:"is_small_independent"`
	IsServiceBased     bool   `json:"is_service_based"`
	IsChainOrFranchise bool   `json:"is_chain_or_franchise"`
	BusinessType       string `json:"business_type"`
	Reasoning          string `json:"reasoning"`
}

// Qualified reports whether the verdict accepts the business.
func (v *Verdict) Qualified() bool {
	return v.IsSmallIndependent && v.IsServiceBased && !v.IsChainOrFranchise
}

// BusinessExtractor turns a fetched page into a structured business record.
type BusinessExtractor interface {
	// ExtractBusiness never returns a nil record: on model or parse
	// failure the record degrades to deterministic contact signals only,
	// and the returned error describes the degradation. The caller decides
	// whether a record without a business name is worth keeping.
	ExtractBusiness(ctx context.Context, html, url string) (*Business, error)
}

// Qualifier decides whether a business passes the qualification criteria.
type Qualifier interface {
	// Qualify fails closed: on model or parse failure it returns false
	// along with the underlying error. The verdict is returned for
	// diagnostics and may be nil when no reply could be decoded.
	Qualify(ctx context.Context, b *Business) (bool, *Verdict, error)
}

// BusinessService represents a service for managing stored business records.
type BusinessService interface {
	// CreateBusiness persists a new business record.
	CreateBusiness(ctx context.Context, b *Business) error

	// FindBusinessByID retrieves a business by ID.
	// Returns ENOTFOUND if the business does not exist.
	FindBusinessByID(ctx context.Context, id string) (*Business, error)

	// FindBusinesses retrieves businesses matching the filter.
	FindBusinesses(ctx context.Context, filter BusinessFilter) ([]*Business, error)

	// CountBusinesses returns the number of businesses matching the filter,
	// ignoring pagination.
	CountBusinesses(ctx context.Context, filter BusinessFilter) (int, error)

	// DeleteBusiness permanently removes a business record.
	// Returns ENOTFOUND if the business does not exist.
	DeleteBusiness(ctx context.Context, id string) error
}

// BusinessFilter represents a filter for FindBusinesses.
type BusinessFilter struct {
	ID        *string `json:"id"`
	RunID     *string `json:"runId"`
	ZipCode   *string `json:"zipCode"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
