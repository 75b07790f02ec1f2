package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/newshield/go-insurance-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:comparison_repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Comparison{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newComparison(ref string, created time.Time) *domain.Comparison {
	return &domain.Comparison{
		ID:               uuid.NewString(),
		SchemaVersion:    domain.SchemaVersion,
		ReferenceNumber:  ref,
		ProductLineID:    "par",
		ProductLineLabel: "PAR - Property All Risk Insurance",
		CustomerName:     "Acme Trading LLC",
		Quotes: domain.QuoteList{
			{ID: uuid.NewString(), Insurer: "RSA", Premium: 1000, Tax: 50, Total: 1050},
		},
		CreatedAt: created,
	}
}

func TestCreateAndGetComparison(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	c := newComparison("GI-20260301-0001", time.Now())
	if err := CreateComparison(ctx, db, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := GetComparison(ctx, db, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReferenceNumber != c.ReferenceNumber || got.CustomerName != c.CustomerName {
		t.Errorf("fetched mismatch: %+v", got)
	}
	if len(got.Quotes) != 1 || got.Quotes[0].Insurer != "RSA" {
		t.Errorf("quote list did not round trip: %+v", got.Quotes)
	}
}

func TestGetComparison_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetComparison(context.Background(), db, uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListComparisons_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	older := newComparison("GI-20260301-0001", base)
	newer := newComparison("GI-20260301-0002", base.Add(time.Minute))
	if err := CreateComparison(ctx, db, older); err != nil {
		t.Fatal(err)
	}
	if err := CreateComparison(ctx, db, newer); err != nil {
		t.Fatal(err)
	}

	got, err := ListComparisons(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("expected newest first, got %s then %s", got[0].ReferenceNumber, got[1].ReferenceNumber)
	}
}

func TestListComparisonsPage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 5; i++ {
		c := newComparison(fmt.Sprintf("GI-20260301-%04d", i), base.Add(time.Duration(i)*time.Minute))
		if err := CreateComparison(ctx, db, c); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, c.ID)
	}

	total, err := CountComparisons(ctx, db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}

	page, err := ListComparisonsPage(ctx, db, 2, 2)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}
	// Newest first: offset 2 skips ids[4], ids[3].
	if page[0].ID != ids[2] || page[1].ID != ids[1] {
		t.Errorf("unexpected page ordering")
	}
}

func TestDeleteComparison_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	c := newComparison("GI-20260301-0001", time.Now())
	if err := CreateComparison(ctx, db, c); err != nil {
		t.Fatal(err)
	}

	if err := DeleteComparison(ctx, db, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetComparison(ctx, db, c.ID); !errors.Is(err, ErrNotFound) {
		t.Error("row should be gone after delete")
	}

	// Absent id is a successful no-op.
	if err := DeleteComparison(ctx, db, c.ID); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
	if err := DeleteComparison(ctx, db, uuid.NewString()); err != nil {
		t.Errorf("delete of never-existing id: %v", err)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "missing", "db.sqlite"))
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestOpenSQLite_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparisons.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := CreateComparison(context.Background(), db, newComparison("GI-20260301-0001", time.Now())); err != nil {
		t.Fatalf("create on file-backed db: %v", err)
	}
}
