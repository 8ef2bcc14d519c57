// Package signals implements the deterministic contact-signal pass over
// fetched pages. It is pure pattern matching and validation: no I/O, no
// model calls, and identical input always yields identical output.
package signals

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/leadscout"
)

var (
	// mailto targets in raw markup are the most reliable email source.
	mailtoRE = regexp.MustCompile(`(?i)mailto:([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)

	// free-text email-shaped tokens in the rendered page text.
	emailRE = regexp.MustCompile(`\b[a-zA-Z0-9][a-zA-Z0-9._%+\-]*@[a-zA-Z0-9][a-zA-Z0-9.\-]*\.[a-zA-Z]{2,}\b`)

	// asset references (logo.png, style.css) and retina suffixes (@2x)
	// produce email-shaped false positives.
	fileExtRE = regexp.MustCompile(`\.(png|jpg|jpeg|gif|svg|webp|pdf|js|css|woff|ttf|ico)`)

	// Three overlapping phone templates. They over-generate on purpose;
	// the exactly-10-digits reduction below is what guarantees validity.
	phoneREs = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}-\d{4}`),
	}

	addressRE = regexp.MustCompile(`\d+\s+[A-Z][a-zA-Z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Way)\.?`)

	nonDigitRE = regexp.MustCompile(`\D`)
)

// validTLDs is the domain suffix allow-list for extracted emails.
var validTLDs = []string{"com", "net", "org", "edu", "gov", "co", "us", "io", "biz", "info"}

// rolePrefixes mark an email's local part as a generic business address
// rather than a personal one. Prefix matching misclassifies personal
// addresses that merely start with a generic-looking token (infoguy@...);
// that is a known limitation of the heuristic, kept as-is.
var rolePrefixes = []string{"info", "contact", "sales", "support", "hello", "admin", "service", "office"}

// Extract mines contact signals from a page. text is the rendered visible
// text; html is the raw markup. Extract never fails: fields that cannot be
// derived are left empty.
func Extract(text, html string) *leadscout.ContactSignals {
	var candidates []string
	for _, m := range mailtoRE.FindAllStringSubmatch(html, -1) {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, emailRE.FindAllString(text, -1)...)

	emails := filterEmails(candidates)
	owner, business := partitionEmails(emails)
	phones := extractPhones(html)

	signals := &leadscout.ContactSignals{
		Emails:         emails,
		OwnerEmails:    owner,
		BusinessEmails: business,
		Phones:         phones,
		Address:        addressRE.FindString(text),
	}
	if len(phones) > 0 {
		signals.PrimaryPhone = phones[0]
	}
	return signals
}

// filterEmails normalizes and validates email candidates, deduplicating
// while preserving first-seen order.
func filterEmails(candidates []string) []string {
	seen := make(map[string]bool)
	var emails []string

	for _, email := range candidates {
		email = strings.ToLower(strings.TrimSpace(email))
		if seen[email] || !validEmail(email) {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

// validEmail applies the validation rules to a normalized candidate.
func validEmail(email string) bool {
	if fileExtRE.MatchString(email) {
		return false
	}
	if strings.Contains(email, "@2x") || strings.Contains(email, "@3x") {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	domain := parts[1]
	if len(domain) < 4 || strings.ContainsAny(domain, `/\`) {
		return false
	}

	for _, tld := range validTLDs {
		if strings.HasSuffix(domain, "."+tld) {
			return true
		}
	}
	return false
}

// partitionEmails splits validated emails into owner (personal) and
// business (generic role-addressed) pools.
func partitionEmails(emails []string) (owner, business []string) {
	for _, email := range emails {
		local, _, _ := strings.Cut(email, "@")
		if isRoleAddress(local) {
			business = append(business, email)
		} else {
			owner = append(owner, email)
		}
	}
	return owner, business
}

func isRoleAddress(local string) bool {
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(local, prefix) {
			return true
		}
	}
	return false
}

// extractPhones scans the raw markup with all phone templates, keeps only
// matches reducing to exactly 10 digits, and formats them canonically.
// First-seen order is preserved; duplicates collapse on the formatted form.
func extractPhones(html string) []string {
	seen := make(map[string]bool)
	var phones []string

	for _, re := range phoneREs {
		for _, match := range re.FindAllString(html, -1) {
			digits := nonDigitRE.ReplaceAllString(match, "")
			if len(digits) != 10 {
				continue
			}
			formatted := fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
			if seen[formatted] {
				continue
			}
			seen[formatted] = true
			phones = append(phones, formatted)
		}
	}
	return phones
}
