package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/leadscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leadscout.BusinessService = (*BusinessService)(nil)

// BusinessService implements leadscout.BusinessService using SQLite.
type BusinessService struct {
	db *DB
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(db *DB) *BusinessService {
	return &BusinessService{db: db}
}

const businessColumns = `id, run_id, business_name, owner_name, owner_email, business_email,
	phone, address, city, state, zip_code, website, description, business_type,
	services, source_url, content_hash, created_at`

// CreateBusiness persists a new business record.
func (s *BusinessService) CreateBusiness(ctx context.Context, b *leadscout.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()

	// An empty run ID is stored as NULL so the foreign key stays honest.
	var runID any
	if b.RunID != "" {
		runID = b.RunID
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO businesses (`+businessColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, runID, b.BusinessName, b.OwnerName, b.OwnerEmail, b.BusinessEmail,
		b.Phone, b.Address, b.City, b.State, b.ZipCode, b.Website, b.Description,
		b.BusinessType, joinServices(b.Services), b.SourceURL, b.ContentHash,
		b.CreatedAt.Format(time.RFC3339))

	return err
}

// FindBusinessByID retrieves a business by ID.
func (s *BusinessService) FindBusinessByID(ctx context.Context, id string) (*leadscout.Business, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+businessColumns+`
		FROM businesses
		WHERE id = ?
	`, id)

	b, err := scanBusiness(row.Scan)
	if err == sql.ErrNoRows {
		return nil, leadscout.Errorf(leadscout.ENOTFOUND, "business not found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBusinesses retrieves businesses matching the filter, most recent first.
func (s *BusinessService) FindBusinesses(ctx context.Context, filter leadscout.BusinessFilter) ([]*leadscout.Business, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + businessColumns + " FROM businesses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.ZipCode != nil {
		query.WriteString(" AND zip_code = ?")
		args = append(args, *filter.ZipCode)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*leadscout.Business
	for rows.Next() {
		b, err := scanBusiness(rows.Scan)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

// CountBusinesses returns the number of businesses matching the filter,
// ignoring pagination.
func (s *BusinessService) CountBusinesses(ctx context.Context, filter leadscout.BusinessFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT COUNT(*) FROM businesses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.ZipCode != nil {
		query.WriteString(" AND zip_code = ?")
		args = append(args, *filter.ZipCode)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query.String(), args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteBusiness permanently removes a business record.
func (s *BusinessService) DeleteBusiness(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM businesses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return leadscout.Errorf(leadscout.ENOTFOUND, "business not found")
	}

	return nil
}

// scanBusiness reads one row's columns into a Business.
func scanBusiness(scan func(dest ...any) error) (*leadscout.Business, error) {
	var b leadscout.Business
	var runID sql.NullString
	var services, createdAt string

	if err := scan(&b.ID, &runID, &b.BusinessName, &b.OwnerName, &b.OwnerEmail,
		&b.BusinessEmail, &b.Phone, &b.Address, &b.City, &b.State, &b.ZipCode,
		&b.Website, &b.Description, &b.BusinessType, &services, &b.SourceURL,
		&b.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	b.RunID = runID.String
	b.Services = splitServices(services)

	var err error
	b.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &b, nil
}
