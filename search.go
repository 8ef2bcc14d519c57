package leadscout

import "context"

// Searcher finds candidate URLs for a search query.
// Best-effort: implementations may return fewer than limit results, and
// results may include non-business URLs that callers filter out.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
