// Package fs exports qualified business records to files on disk.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/leadscout"
)

// Ensure Exporter implements leadscout.Exporter at compile time.
var _ leadscout.Exporter = (*Exporter)(nil)

// Exporter writes qualified businesses to JSON and CSV files named
// businesses_<zip>_<timestamp>.{json,csv}.
type Exporter struct {
	baseDir string
	now     func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an Exporter that writes to the given base directory.
func NewExporter(baseDir string, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		baseDir: baseDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// envelope is the JSON export shape.
type envelope struct {
	ZipCode        string                `json:"zipcode"`
	TotalQualified int                   `json:"total_qualified"`
	ScrapedAt      string                `json:"scraped_at"`
	Businesses     []*leadscout.Business `json:"businesses"`
}

// csvColumns fixes the CSV column order.
var csvColumns = []string{
	"business_name", "owner_name", "owner_email", "business_email",
	"phone", "address", "city", "state", "zip_code", "website",
	"description", "services", "business_type", "source_url",
}

// Export writes the businesses as JSON and CSV and returns the paths of
// the files written. An empty business list still produces a JSON file so
// a run always leaves a record; the CSV is skipped.
func (e *Exporter) Export(ctx context.Context, zipCode string, businesses []*leadscout.Business) ([]string, error) {
	if zipCode == "" {
		return nil, leadscout.Errorf(leadscout.EINVALID, "export zip code required")
	}

	if err := os.MkdirAll(e.baseDir, 0o755); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	base := filepath.Join(e.baseDir, fmt.Sprintf("businesses_%s_%s", zipCode, now.Format("20060102_150405")))

	var paths []string

	jsonPath := base + ".json"
	if err := e.writeJSON(jsonPath, zipCode, now, businesses); err != nil {
		return nil, err
	}
	paths = append(paths, jsonPath)

	if len(businesses) > 0 {
		csvPath := base + ".csv"
		if err := e.writeCSV(csvPath, businesses); err != nil {
			return nil, err
		}
		paths = append(paths, csvPath)
	}

	return paths, nil
}

func (e *Exporter) writeJSON(path, zipCode string, now time.Time, businesses []*leadscout.Business) error {
	out := envelope{
		ZipCode:        zipCode,
		TotalQualified: len(businesses),
		ScrapedAt:      now.Format("2006-01-02 15:04:05"),
		Businesses:     businesses,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (e *Exporter) writeCSV(path string, businesses []*leadscout.Business) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return err
	}

	for _, b := range businesses {
		record := []string{
			b.BusinessName, b.OwnerName, b.OwnerEmail, b.BusinessEmail,
			b.Phone, b.Address, b.City, b.State, b.ZipCode, b.Website,
			b.Description, strings.Join(b.Services, ", "), b.BusinessType, b.SourceURL,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
