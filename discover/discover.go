// Package discover finds candidate small-business websites for a ZIP code
// by running a fixed set of service-type searches and filtering out
// aggregator and social domains.
package discover

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/bloom"
	"github.com/fwojciec/leadscout/pipeline"
)

// DefaultServiceTypes lists the service-business categories queried per
// ZIP code, in query order.
var DefaultServiceTypes = []string{
	"plumbers", "plumbing services",
	"hvac companies", "heating and cooling",
	"beauty salons", "hair salons",
	"massage therapists", "spa services",
	"furniture stores",
	"electricians", "electrical services",
	"carpenters", "carpentry services",
	"landscaping companies", "lawn care",
	"house cleaning services", "maid services",
	"pest control services",
	"locksmiths",
	"roofing companies", "roofers",
	"painting contractors",
	"flooring companies",
	"appliance repair",
}

// excludedDomains are aggregator, directory, and social sites whose search
// results never point at a business's own website.
var excludedDomains = []string{
	"google.com", "facebook.com", "yelp.com", "yellowpages.com",
	"bbb.org", "angieslist.com", "thumbtack.com", "homeadvisor.com",
	"linkedin.com", "instagram.com", "twitter.com", "youtube.com",
	"wikipedia.org", "bing.com", "yahoo.com", "mapquest.com",
	"tripadvisor.com", "foursquare.com", "nextdoor.com",
}

// DefaultPerQuery caps how many results a single query may contribute.
const DefaultPerQuery = 10

// Discoverer turns a ZIP code into a deduplicated list of candidate
// business URLs by querying each service type in turn.
type Discoverer struct {
	Searcher leadscout.Searcher
	Pacer    *pipeline.Pacer

	// ServiceTypes overrides DefaultServiceTypes when non-nil.
	ServiceTypes []string

	// PerQuery caps results per query; zero means DefaultPerQuery.
	PerQuery int
}

// Progress reports each query as it runs.
type Progress struct {
	Query    string
	QueryNum int
	QueryEnd int
	Found    int
	Total    int
	Err      error
}

// ProgressFunc is a callback for reporting discovery progress.
type ProgressFunc func(p Progress)

// ByZip returns up to max candidate URLs near the ZIP code, in the order
// found. Search failures skip the query and continue; an empty result is a
// valid outcome.
func (d *Discoverer) ByZip(ctx context.Context, zipCode string, max int, progress ProgressFunc) ([]string, error) {
	if d.Searcher == nil {
		return nil, leadscout.Errorf(leadscout.EINVALID, "discovery requires a searcher")
	}
	if max <= 0 {
		return nil, nil
	}

	perQuery := d.PerQuery
	if perQuery <= 0 {
		perQuery = DefaultPerQuery
	}
	serviceTypes := d.ServiceTypes
	if serviceTypes == nil {
		serviceTypes = DefaultServiceTypes
	}

	seen := bloom.NewFilter(uint(len(serviceTypes)*perQuery), 0.01)
	var urls []string

	for i, serviceType := range serviceTypes {
		if len(urls) >= max || ctx.Err() != nil {
			break
		}

		query := fmt.Sprintf("%s near %s", serviceType, zipCode)
		results, err := d.Searcher.Search(ctx, query, perQuery)

		found := 0
		for _, u := range results {
			if len(urls) >= max {
				break
			}
			if !IsBusinessURL(u) {
				continue
			}
			if seen.TestOrAdd(u) {
				continue
			}
			urls = append(urls, u)
			found++
		}

		if progress != nil {
			progress(Progress{
				Query:    query,
				QueryNum: i + 1,
				QueryEnd: len(serviceTypes),
				Found:    found,
				Total:    len(urls),
				Err:      err,
			})
		}

		if err := d.Pacer.Wait(ctx); err != nil {
			break
		}
	}

	return urls, nil
}

// IsBusinessURL reports whether the URL plausibly points at a business's
// own website rather than an aggregator or social profile.
func IsBusinessURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	domain := strings.ToLower(parsed.Hostname())
	if !strings.Contains(domain, ".") {
		return false
	}

	for _, excluded := range excludedDomains {
		if strings.Contains(domain, excluded) {
			return false
		}
	}
	return true
}
