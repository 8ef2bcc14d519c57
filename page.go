package leadscout

import "context"

// PageContent is the parsed form of a fetched page.
type PageContent struct {
	URL  string
	HTML string

	// Text is the visible page text with script, style, and other
	// non-rendered markup removed, one non-blank line per text run.
	Text string

	// MetaDescription is the content of the page's description meta tag,
	// or empty.
	MetaDescription string
}

// Parser extracts visible text and metadata from raw HTML.
// Implementations must tolerate the broken markup found on real sites and
// return best-effort content rather than failing.
type Parser interface {
	Parse(html string) (*PageContent, error)
}

// Fetcher retrieves page content from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
