package leadscout

import "context"

// Exporter writes a batch of qualified businesses to durable output.
type Exporter interface {
	// Export writes the businesses found for a zip code and returns the
	// paths (or identifiers) of whatever it produced.
	Export(ctx context.Context, zipCode string, businesses []*Business) ([]string, error)
}
