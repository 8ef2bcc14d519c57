package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRun(t *testing.T, db *sqlite.DB) *leadscout.Run {
	t.Helper()
	svc := sqlite.NewRunService(db)
	run := &leadscout.Run{ZipCode: "62704"}
	require.NoError(t, svc.CreateRun(context.Background(), run))
	return run
}

func testBusiness(runID string) *leadscout.Business {
	return &leadscout.Business{
		BusinessName:  "Ace Plumbing",
		OwnerName:     "Jane Doe",
		OwnerEmail:    "jane@aceplumbing.com",
		BusinessEmail: "info@aceplumbing.com",
		Phone:         "(555) 123-4567",
		Address:       "123 Main Street",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62704",
		Website:       "https://aceplumbing.com",
		Description:   "Family-owned plumbing services.",
		BusinessType:  "plumbing service",
		Services:      []string{"drain cleaning", "water heaters"},
		SourceURL:     "https://aceplumbing.com",
		ContentHash:   "deadbeef",
		RunID:         runID,
	}
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	t.Parallel()

	t.Run("creates business with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)

		b := testBusiness(run.ID)
		err := svc.CreateBusiness(context.Background(), b)
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID, "ID should be generated")
		assert.False(t, b.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid business", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		b := &leadscout.Business{} // missing required fields
		err := svc.CreateBusiness(context.Background(), b)

		require.Error(t, err)
		assert.Equal(t, leadscout.EINVALID, leadscout.ErrorCode(err))
	})

	t.Run("allows records without a run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		b := testBusiness("")
		err := svc.CreateBusiness(context.Background(), b)
		require.NoError(t, err)

		found, err := svc.FindBusinessByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Empty(t, found.RunID)
	})
}

func TestBusinessService_FindBusinessByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)

		b := testBusiness(run.ID)
		require.NoError(t, svc.CreateBusiness(context.Background(), b))

		found, err := svc.FindBusinessByID(context.Background(), b.ID)
		require.NoError(t, err)

		assert.Equal(t, b.BusinessName, found.BusinessName)
		assert.Equal(t, b.OwnerEmail, found.OwnerEmail)
		assert.Equal(t, b.Phone, found.Phone)
		assert.Equal(t, b.Services, found.Services)
		assert.Equal(t, b.SourceURL, found.SourceURL)
		assert.Equal(t, b.ContentHash, found.ContentHash)
		assert.Equal(t, run.ID, found.RunID)
	})

	t.Run("returns ENOTFOUND for missing business", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		_, err := svc.FindBusinessByID(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, leadscout.ENOTFOUND, leadscout.ErrorCode(err))
	})
}

func TestBusinessService_FindBusinesses(t *testing.T) {
	t.Parallel()

	t.Run("filters by run ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		runA := createTestRun(t, db)
		runB := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBusiness(ctx, testBusiness(runA.ID)))
		require.NoError(t, svc.CreateBusiness(ctx, testBusiness(runA.ID)))
		require.NoError(t, svc.CreateBusiness(ctx, testBusiness(runB.ID)))

		found, err := svc.FindBusinesses(ctx, leadscout.BusinessFilter{RunID: &runA.ID})
		require.NoError(t, err)

		assert.Len(t, found, 2)
	})

	t.Run("filters by zip code", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)
		ctx := context.Background()

		b1 := testBusiness(run.ID)
		require.NoError(t, svc.CreateBusiness(ctx, b1))

		b2 := testBusiness(run.ID)
		b2.ZipCode = "10001"
		require.NoError(t, svc.CreateBusiness(ctx, b2))

		zip := "10001"
		found, err := svc.FindBusinesses(ctx, leadscout.BusinessFilter{ZipCode: &zip})
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, "10001", found[0].ZipCode)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)
		ctx := context.Background()

		for i := range 5 {
			b := testBusiness(run.ID)
			b.SourceURL = fmt.Sprintf("https://site%d.com", i)
			require.NoError(t, svc.CreateBusiness(ctx, b))
		}

		found, err := svc.FindBusinesses(ctx, leadscout.BusinessFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)

		assert.Len(t, found, 2)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		zip := "99999"
		found, err := svc.FindBusinesses(context.Background(), leadscout.BusinessFilter{ZipCode: &zip})
		require.NoError(t, err)

		assert.Empty(t, found)
	})
}

func TestBusinessService_CountBusinesses(t *testing.T) {
	t.Parallel()

	t.Run("counts ignore pagination", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)
		ctx := context.Background()

		for range 5 {
			require.NoError(t, svc.CreateBusiness(ctx, testBusiness(run.ID)))
		}

		count, err := svc.CountBusinesses(ctx, leadscout.BusinessFilter{RunID: &run.ID, Limit: 2})
		require.NoError(t, err)

		assert.Equal(t, 5, count)
	})

	t.Run("empty table counts zero", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		count, err := svc.CountBusinesses(context.Background(), leadscout.BusinessFilter{})
		require.NoError(t, err)

		assert.Zero(t, count)
	})
}

func TestBusinessService_DeleteBusiness(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing business", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		run := createTestRun(t, db)
		svc := sqlite.NewBusinessService(db)
		ctx := context.Background()

		b := testBusiness(run.ID)
		require.NoError(t, svc.CreateBusiness(ctx, b))

		require.NoError(t, svc.DeleteBusiness(ctx, b.ID))

		_, err := svc.FindBusinessByID(ctx, b.ID)
		assert.Equal(t, leadscout.ENOTFOUND, leadscout.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing business", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBusinessService(db)

		err := svc.DeleteBusiness(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, leadscout.ENOTFOUND, leadscout.ErrorCode(err))
	})
}
