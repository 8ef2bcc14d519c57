// Package pipeline orchestrates the scrape of candidate business URLs:
// fetch, extract, qualify, collect. Processing is strictly sequential;
// each fetch, each of the two model calls, and the pacing delay block one
// URL at a time, which bounds load on target sites and the inference
// backend.
package pipeline

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/leadscout"
)

// Pipeline runs candidate URLs through the extraction and qualification
// passes. Fetcher, Extractor, and Qualifier are required; Businesses, when
// set, receives each accepted record as it is found so an interrupted run
// keeps its partial results; Pacer, when set, spaces URLs apart.
type Pipeline struct {
	Fetcher    leadscout.Fetcher
	Extractor  leadscout.BusinessExtractor
	Qualifier  leadscout.Qualifier
	Businesses leadscout.BusinessService
	Pacer      *Pacer

	// RunID is stamped on accepted records when persistence is enabled.
	RunID string
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Businesses []*leadscout.Business
	Accepted   int
	Rejected   int
	Skipped    int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types. Every URL ends in exactly one of Accepted,
// Rejected, or Skipped.
const (
	ProgressStarted ProgressType = iota
	ProgressAccepted
	ProgressRejected
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports per-URL progress as the run proceeds.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Business  *leadscout.Business
	Verdict   *leadscout.Verdict
	Error     error
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Run processes the URLs in order and returns the qualified businesses.
//
// No per-URL failure aborts the batch: fetch errors skip the URL, extraction
// degrades to signal-only records, and qualification fails closed. An empty
// result is a valid outcome. Context cancellation stops early and returns
// whatever was collected.
func (p *Pipeline) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if p.Fetcher == nil || p.Extractor == nil || p.Qualifier == nil {
		return nil, leadscout.Errorf(leadscout.EINVALID, "pipeline requires a fetcher, extractor, and qualifier")
	}

	emit := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	total := len(urls)
	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	result := &Result{}
	for i, url := range urls {
		if ctx.Err() != nil {
			break
		}

		p.processURL(ctx, url, result, func(event ProgressEvent) {
			event.Completed = i + 1
			event.Total = total
			emit(event)
		})

		// Pace after every URL regardless of outcome.
		if err := p.Pacer.Wait(ctx); err != nil {
			break
		}
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: len(result.Businesses), Total: total})
	return result, nil
}

// processURL walks one URL through fetch → extract → qualify.
func (p *Pipeline) processURL(ctx context.Context, url string, result *Result, emit ProgressFunc) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.Skipped++
		emit(ProgressEvent{Type: ProgressSkipped, URL: url, Error: err})
		return
	}

	// Extraction never fails outright; a non-nil error means the record
	// degraded to deterministic signals only.
	business, err := p.Extractor.ExtractBusiness(ctx, html, url)
	if business.BusinessName == "" {
		result.Skipped++
		emit(ProgressEvent{Type: ProgressSkipped, URL: url, Error: err})
		return
	}

	accepted, verdict, err := p.Qualifier.Qualify(ctx, business)
	if !accepted {
		result.Rejected++
		emit(ProgressEvent{Type: ProgressRejected, URL: url, Business: business, Verdict: verdict, Error: err})
		return
	}

	business.ContentHash = hashContent(html)
	business.RunID = p.RunID

	if p.Businesses != nil {
		if err := p.Businesses.CreateBusiness(ctx, business); err != nil {
			// Keep the record in memory; only durability suffered.
			emit(ProgressEvent{Type: ProgressAccepted, URL: url, Business: business, Verdict: verdict,
				Error: fmt.Errorf("persisting %s: %w", url, err)})
			result.Accepted++
			result.Businesses = append(result.Businesses, business)
			return
		}
	}

	result.Accepted++
	result.Businesses = append(result.Businesses, business)
	emit(ProgressEvent{Type: ProgressAccepted, URL: url, Business: business, Verdict: verdict})
}

// hashContent fingerprints the fetched page with xxhash.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
