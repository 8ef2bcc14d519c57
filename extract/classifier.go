package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/leadscout"
)

// Ensure Classifier implements leadscout.Qualifier at compile time.
var _ leadscout.Qualifier = (*Classifier)(nil)

// Classifier implements leadscout.Qualifier with a single model pass over a
// structured record.
type Classifier struct {
	inferencer leadscout.Inferencer
}

// NewClassifier creates a new Classifier.
func NewClassifier(inferencer leadscout.Inferencer) *Classifier {
	return &Classifier{inferencer: inferencer}
}

// Qualify decides whether the business is a small, independent, service-based
// operation. The decision fails closed: an inference failure or an
// undecodable reply rejects, and a reply that omits a criterion keeps that
// criterion's rejecting default.
func (c *Classifier) Qualify(ctx context.Context, b *leadscout.Business) (bool, *leadscout.Verdict, error) {
	if b == nil {
		return false, nil, leadscout.Errorf(leadscout.EINVALID, "business required")
	}

	reply, err := c.inferencer.Infer(ctx, BuildQualificationPrompt(b))
	if err != nil {
		return false, nil, fmt.Errorf("qualify %s: %w", b.SourceURL, err)
	}

	// Seed rejecting defaults so keys absent from the reply cannot admit
	// the business.
	verdict := leadscout.Verdict{IsChainOrFranchise: true}
	if err := DecodeReply(reply, &verdict); err != nil {
		return false, nil, fmt.Errorf("qualify %s: %w", b.SourceURL, err)
	}

	return verdict.Qualified(), &verdict, nil
}

// BuildQualificationPrompt builds the qualification prompt with explicit
// positive and negative criteria and the record's identity fields.
func BuildQualificationPrompt(b *leadscout.Business) string {
	var sb strings.Builder

	sb.WriteString("Analyze this business and determine if it meets ALL these criteria:\n\n")

	sb.WriteString("MUST BE:\n")
	sb.WriteString("- Small, independent business (not a chain or franchise)\n")
	sb.WriteString("- Service-based (provides services, not just selling products)\n")
	sb.WriteString("- Local trades like: plumbing, HVAC, beauty salons, massage therapists, furniture stores, electricians, carpenters, landscaping, cleaning, pest control, locksmiths, roofing, painting, etc.\n\n")

	sb.WriteString("MUST NOT BE:\n")
	sb.WriteString("- Part of a large chain or national franchise\n")
	sb.WriteString("- Manufacturer or factory\n")
	sb.WriteString("- Retail store (unless it's a local furniture store with services)\n")
	sb.WriteString("- Restaurant or food service\n")
	sb.WriteString("- Medical/dental office\n")
	sb.WriteString("- Real estate agency\n")
	sb.WriteString("- Bank or financial institution\n")
	sb.WriteString("- Directory or listing site\n\n")

	sb.WriteString("Business Information:\n")
	fmt.Fprintf(&sb, "Name: %s\n", valueOr(b.BusinessName, "Unknown"))
	fmt.Fprintf(&sb, "Description: %s\n", valueOr(b.Description, "N/A"))
	fmt.Fprintf(&sb, "Website: %s\n\n", valueOr(b.Website, "N/A"))

	sb.WriteString("Respond with ONLY a JSON object:\n")
	sb.WriteString(`{
    "is_small_independent": true/false,
    "is_service_based": true/false,
    "is_chain_or_franchise": true/false,
    "business_type": "brief category like 'plumbing service' or 'beauty salon'",
    "reasoning": "brief explanation"
}`)

	return sb.String()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
