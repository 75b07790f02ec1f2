package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/newshield/go-insurance-backend/internal/catalog"
	"github.com/newshield/go-insurance-backend/internal/domain"
	"github.com/newshield/go-insurance-backend/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:comparison_svc_%s?mode=memory&cache=shared", uuid.NewString())
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

func storeCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	n, err := repo.CountComparisons(context.Background(), db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func validInput() SaveComparisonInput {
	return SaveComparisonInput{
		ProductLineID: "par",
		CustomerName:  "Acme Trading LLC",
		Quotes: []domain.Quote{
			{Insurer: " RSA ", Premium: 10000, PolicyFee: 250},
		},
	}
}

func TestSave_ValidationSentinels(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*SaveComparisonInput)
		wantErr error
	}{
		{"missing line", func(in *SaveComparisonInput) { in.ProductLineID = "" }, ErrMissingInsuranceLine},
		{"whitespace line", func(in *SaveComparisonInput) { in.ProductLineID = "   " }, ErrMissingInsuranceLine},
		{"missing customer", func(in *SaveComparisonInput) { in.CustomerName = "" }, ErrMissingCustomerName},
		{"whitespace customer", func(in *SaveComparisonInput) { in.CustomerName = " \t " }, ErrMissingCustomerName},
		{"no quotes", func(in *SaveComparisonInput) { in.Quotes = nil }, ErrNoQuotes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			before := storeCount(t, db)
			_, err := s.Save(ctx, in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if after := storeCount(t, db); after != before {
				t.Errorf("failed save changed store count: %d -> %d", before, after)
			}
		})
	}
}

func TestSave_StampsAndNormalizes(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }

	in := validInput()
	// Client-supplied derived values must be discarded.
	in.Quotes[0].Tax = 9999
	in.Quotes[0].Total = 9999
	in.CustomerName = "  Acme Trading LLC  "

	c, err := s.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if c.ID == "" {
		t.Error("expected a stamped id")
	}
	if c.SchemaVersion != domain.SchemaVersion {
		t.Errorf("schema version = %d", c.SchemaVersion)
	}
	if !c.CreatedAt.Equal(now) {
		t.Errorf("created at = %v, want %v", c.CreatedAt, now)
	}
	if got := c.ReferenceNumber[:11]; got != "GI-20260307" {
		t.Errorf("reference prefix = %q", got)
	}
	if c.CustomerName != "Acme Trading LLC" {
		t.Errorf("customer name not trimmed: %q", c.CustomerName)
	}
	if c.ProductLineLabel != "PAR - Property All Risk Insurance" {
		t.Errorf("label not resolved: %q", c.ProductLineLabel)
	}

	q := c.Quotes[0]
	if q.ID == "" {
		t.Error("blank quote id should be assigned")
	}
	if q.Insurer != "RSA" {
		t.Errorf("insurer not trimmed: %q", q.Insurer)
	}
	if q.Tax != 512.50 || q.Total != 10762.50 {
		t.Errorf("derived fields not recomputed: tax=%v total=%v", q.Tax, q.Total)
	}

	// Persisted row matches the returned aggregate.
	stored, err := s.Get(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ReferenceNumber != c.ReferenceNumber || stored.Quotes[0].Total != 10762.50 {
		t.Errorf("stored aggregate mismatch: %+v", stored)
	}
}

func TestSave_UnknownLineLabelFallsBack(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())

	in := validInput()
	in.ProductLineID = "bespoke-marine"

	c, err := s.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if c.ProductLineLabel != "bespoke-marine" {
		t.Errorf("label = %q, want raw id fallback", c.ProductLineLabel)
	}
}

func TestSave_ClampsNegativeMonetary(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())

	in := validInput()
	in.Quotes[0].Premium = -500
	in.Quotes[0].PolicyFee = -1

	c, err := s.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	q := c.Quotes[0]
	if q.Premium != 0 || q.PolicyFee != 0 || q.Tax != 0 || q.Total != 0 {
		t.Errorf("negative amounts should clamp to zero: %+v", q)
	}
}

func TestListPage_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())
	ctx := context.Background()

	base := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)
	var refs []string
	for i := 0; i < 3; i++ {
		stamp := base.Add(time.Duration(i) * time.Minute)
		s.Now = func() time.Time { return stamp }
		c, err := s.Save(ctx, validInput())
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, c.ReferenceNumber)
	}

	items, total, err := s.ListPage(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("total=%d len=%d", total, len(items))
	}
	if items[0].ReferenceNumber != refs[2] || items[2].ReferenceNumber != refs[0] {
		t.Error("expected newest-first ordering")
	}
}

func TestListPage_EmptyStore(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())

	items, total, err := s.ListPage(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d", total)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())

	_, err := s.Get(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrComparisonNotFound) {
		t.Errorf("err = %v, want ErrComparisonNotFound", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewComparisonService(db, catalog.New())
	ctx := context.Background()

	c, err := s.Save(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, c.ID); err != nil {
		t.Errorf("repeat delete should be a no-op: %v", err)
	}
	if _, err := s.Get(ctx, c.ID); !errors.Is(err, ErrComparisonNotFound) {
		t.Error("comparison should be gone")
	}
}
