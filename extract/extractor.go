// Package extract turns fetched pages into structured business records and
// qualifies them, combining a deterministic contact-signal pass with two
// language-model passes. Deterministic data wins on contact fields, the
// model wins on semantic fields.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/signals"
)

// DefaultMaxTextLen is the character budget for page text embedded in the
// extraction prompt. Truncation is tail-drop, not summarization.
const DefaultMaxTextLen = 12000

// Ensure Extractor implements leadscout.BusinessExtractor at compile time.
var _ leadscout.BusinessExtractor = (*Extractor)(nil)

// Extractor implements leadscout.BusinessExtractor: a model pass over the
// page, primed with pre-extracted contact signals, merged so that signal
// data backfills any contact field the model left absent.
type Extractor struct {
	inferencer leadscout.Inferencer
	parser     leadscout.Parser
	maxTextLen int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxTextLen overrides the prompt text budget.
// Defaults to DefaultMaxTextLen.
func WithMaxTextLen(n int) Option {
	return func(e *Extractor) {
		e.maxTextLen = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(inferencer leadscout.Inferencer, parser leadscout.Parser, opts ...Option) *Extractor {
	e := &Extractor{
		inferencer: inferencer,
		parser:     parser,
		maxTextLen: DefaultMaxTextLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractBusiness extracts a structured record from a fetched page.
//
// It never returns a nil record. When the model call fails or its reply has
// no decodable JSON, the record degrades to signal-only contact data and the
// error reports why; the caller decides whether a record without a business
// name is worth keeping.
func (e *Extractor) ExtractBusiness(ctx context.Context, rawHTML, url string) (*leadscout.Business, error) {
	page, err := e.parser.Parse(rawHTML)
	if err != nil {
		// Unparseable markup still gets the signal pass over raw bytes.
		page = &leadscout.PageContent{HTML: rawHTML}
	}

	sig := signals.Extract(page.Text, rawHTML)

	var business leadscout.Business
	prompt := BuildExtractionPrompt(sig, url, page.MetaDescription, truncate(page.Text, e.maxTextLen))

	reply, inferErr := e.inferencer.Infer(ctx, prompt)
	if inferErr == nil {
		inferErr = DecodeReply(reply, &business)
	}
	if inferErr != nil {
		business = leadscout.Business{}
		inferErr = fmt.Errorf("extraction degraded to contact signals for %s: %w", url, inferErr)
	}

	mergeSignals(&business, sig)
	business.SourceURL = url

	return &business, inferErr
}

// mergeSignals backfills contact fields the model left absent. Model output,
// when present, always takes precedence over the deterministic signal.
func mergeSignals(b *leadscout.Business, sig *leadscout.ContactSignals) {
	if b.BusinessEmail == "" {
		b.BusinessEmail = sig.FirstBusinessEmail()
	}
	if b.OwnerEmail == "" {
		b.OwnerEmail = sig.FirstOwnerEmail()
	}
	if b.Phone == "" {
		b.Phone = sig.PrimaryPhone
	}
	if b.Address == "" {
		b.Address = sig.Address
	}
}

// truncate drops the tail of s beyond n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// BuildExtractionPrompt builds the extraction prompt: pre-computed contact
// signals as authoritative hints, the exact required output fields, and the
// page's meta description and truncated text.
func BuildExtractionPrompt(sig *leadscout.ContactSignals, url, metaDescription, text string) string {
	var sb strings.Builder

	sb.WriteString("Extract business information from this webpage. Return ONLY valid JSON.\n\n")

	sb.WriteString("PRE-EXTRACTED CONTACT INFO (USE THESE):\n")
	fmt.Fprintf(&sb, "- Emails: %s\n", joinOrNone(sig.Emails, 10))
	fmt.Fprintf(&sb, "- Owner emails: %s\n", joinOrNone(sig.OwnerEmails, 5))
	fmt.Fprintf(&sb, "- Business emails: %s\n", joinOrNone(sig.BusinessEmails, 5))
	fmt.Fprintf(&sb, "- Phones: %s\n", joinOrNone(sig.Phones, 3))
	fmt.Fprintf(&sb, "- Address: %s\n\n", valueOrNone(sig.Address))

	sb.WriteString("PRIORITY: Phone and email are MOST IMPORTANT. Check footer and header sections carefully.\n\n")

	sb.WriteString("Required fields (use null if not found):\n")
	sb.WriteString("- business_name: Company name\n")
	sb.WriteString("- owner_name: Full name of owner\n")
	sb.WriteString("- owner_email: Personal email with name (NOT info@/contact@)\n")
	sb.WriteString("- business_email: Generic business email (info@, contact@, etc.)\n")
	sb.WriteString("- address: Full street address\n")
	sb.WriteString("- city: City name\n")
	sb.WriteString("- state: 2-letter state code\n")
	sb.WriteString("- zip_code: ZIP code\n")
	sb.WriteString("- phone: Phone number (USE PRE-EXTRACTED IF AVAILABLE)\n")
	fmt.Fprintf(&sb, "- website: %s\n", url)
	sb.WriteString("- description: Brief description (2-3 sentences)\n")
	sb.WriteString("- services: Array of services\n\n")

	sb.WriteString("CRITICAL: If phones/emails are listed above, you MUST use them. Do NOT create fake contact info.\n\n")

	fmt.Fprintf(&sb, "Webpage URL: %s\n", url)
	fmt.Fprintf(&sb, "Meta: %s\n\n", metaDescription)
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)

	sb.WriteString("Return ONLY JSON, no other text.")

	return sb.String()
}

func joinOrNone(values []string, max int) string {
	if len(values) == 0 {
		return "None"
	}
	if len(values) > max {
		values = values[:max]
	}
	return strings.Join(values, ", ")
}

func valueOrNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}
