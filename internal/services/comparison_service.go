// Package services – ComparisonService
//
// This file implements the ComparisonService, which builds comparison
// aggregates from raw save requests and coordinates repository operations
// for listing (with pagination), fetching, and deleting them. Validation
// happens up front: a request that fails any precondition is rejected with
// a sentinel error before anything touches the store, so a failed save
// never leaves a partial record behind.
//
// Service-level errors (e.g., ErrMissingCustomerName) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newshield/go-insurance-backend/internal/catalog"
	"github.com/newshield/go-insurance-backend/internal/domain"
	"github.com/newshield/go-insurance-backend/internal/repo"
)

// LineCatalog defines the catalog contract required by the services layer.
// The static registry satisfies it in production; tests may substitute a
// fake with a reduced line set.
type LineCatalog interface {
	// Lookup returns the seed defaults for a line id (soft-empty when unknown).
	Lookup(lineID string) catalog.LineDefaults

	// Insurers returns the panel of insurers quoting a line.
	Insurers(lineID string) []string

	// Label returns the display label for a line id, or the raw id itself
	// when the id is not in the registry.
	Label(lineID string) string
}

// ComparisonRepo defines the repository contract required by
// ComparisonService. Implementations are responsible for persistence of
// comparison aggregates.
type ComparisonRepo interface {
	// CreateComparison inserts a fully-stamped comparison row.
	CreateComparison(ctx context.Context, db *gorm.DB, c *domain.Comparison) error

	// ListComparisons returns all comparisons, newest first (non-paginated).
	ListComparisons(ctx context.Context, db *gorm.DB) ([]domain.Comparison, error)

	// CountComparisons returns the total number of comparisons for pagination.
	CountComparisons(ctx context.Context, db *gorm.DB) (int64, error)

	// ListComparisonsPage returns a page of comparisons, newest first.
	ListComparisonsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Comparison, error)

	// GetComparison fetches a comparison by id.
	GetComparison(ctx context.Context, db *gorm.DB, id string) (*domain.Comparison, error)

	// DeleteComparison removes a comparison permanently (idempotent).
	DeleteComparison(ctx context.Context, db *gorm.DB, id string) error
}

// gormComparisonRepo adapts the package-level repo functions to the
// ComparisonRepo interface.
type gormComparisonRepo struct{}

func (gormComparisonRepo) CreateComparison(ctx context.Context, db *gorm.DB, c *domain.Comparison) error {
	return repo.CreateComparison(ctx, db, c)
}

func (gormComparisonRepo) ListComparisons(ctx context.Context, db *gorm.DB) ([]domain.Comparison, error) {
	return repo.ListComparisons(ctx, db)
}

func (gormComparisonRepo) CountComparisons(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountComparisons(ctx, db)
}

func (gormComparisonRepo) ListComparisonsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Comparison, error) {
	return repo.ListComparisonsPage(ctx, db, offset, limit)
}

func (gormComparisonRepo) GetComparison(ctx context.Context, db *gorm.DB, id string) (*domain.Comparison, error) {
	return repo.GetComparison(ctx, db, id)
}

func (gormComparisonRepo) DeleteComparison(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteComparison(ctx, db, id)
}

// SaveComparisonInput is the raw material for a save. Quotes arrive already
// shaped as domain values (the handler binds JSON straight into them);
// normalization and derived-field recomputation happen here regardless of
// what the client sent.
type SaveComparisonInput struct {
	ProductLineID    string         `json:"product_line_id"`
	CustomerName     string         `json:"customer_name"`
	Address          string         `json:"address"`
	BusinessActivity string         `json:"business_activity"`
	Location         string         `json:"location"`
	PropertyLimit    string         `json:"property_limit"`
	Quotes           []domain.Quote `json:"quotes"`
	AdvisorComment   string         `json:"advisor_comment"`
}

// ComparisonService builds and persists comparison aggregates and serves
// the saved-history use-cases.
type ComparisonService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the comparison repository used by this service.
	Repo ComparisonRepo
	// Catalog resolves line labels at save time.
	Catalog LineCatalog
	// Now supplies the clock; overridable in tests.
	Now func() time.Time
}

// NewComparisonService constructs a ComparisonService backed by the GORM
// repository functions and the given catalog.
func NewComparisonService(db *gorm.DB, cat LineCatalog) *ComparisonService {
	return &ComparisonService{
		DB:      db,
		Repo:    gormComparisonRepo{},
		Catalog: cat,
		Now:     time.Now,
	}
}

// Save validates the input, normalizes every quote, stamps the aggregate
// identity, and persists exactly one row. Preconditions are checked before
// any store access:
//
//   - a product line must be named (ErrMissingInsuranceLine),
//   - the customer name must be non-blank after trimming (ErrMissingCustomerName),
//   - at least one quote must be present (ErrNoQuotes).
//
// Normalization recomputes tax and total on every quote, so derived values
// supplied by the client can never persist, and assigns a fresh id to any
// quote that arrives without one.
func (s *ComparisonService) Save(ctx context.Context, in SaveComparisonInput) (*domain.Comparison, error) {
	if strings.TrimSpace(in.ProductLineID) == "" {
		return nil, ErrMissingInsuranceLine
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, ErrMissingCustomerName
	}
	if len(in.Quotes) == 0 {
		return nil, ErrNoQuotes
	}

	now := s.Now()
	quotes := make(domain.QuoteList, len(in.Quotes))
	for i, q := range in.Quotes {
		if strings.TrimSpace(q.ID) == "" {
			q.ID = uuid.NewString()
		}
		q.Insurer = strings.TrimSpace(q.Insurer)
		if q.Premium < 0 {
			q.Premium = 0
		}
		if q.PolicyFee < 0 {
			q.PolicyFee = 0
		}
		q.Recalculate()
		quotes[i] = q
	}

	c := &domain.Comparison{
		ID:               uuid.NewString(),
		SchemaVersion:    domain.SchemaVersion,
		ReferenceNumber:  domain.NewReferenceNumber(now),
		ProductLineID:    in.ProductLineID,
		ProductLineLabel: s.Catalog.Label(in.ProductLineID),
		CustomerName:     strings.TrimSpace(in.CustomerName),
		Address:          strings.TrimSpace(in.Address),
		BusinessActivity: strings.TrimSpace(in.BusinessActivity),
		Location:         strings.TrimSpace(in.Location),
		PropertyLimit:    strings.TrimSpace(in.PropertyLimit),
		Quotes:           quotes,
		AdvisorComment:   strings.TrimSpace(in.AdvisorComment),
		CreatedAt:        now,
	}

	if err := s.Repo.CreateComparison(ctx, s.DB, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all saved comparisons, newest first (non-paginated).
// Prefer ListPage for scalability on large histories.
func (s *ComparisonService) List(ctx context.Context) ([]domain.Comparison, error) {
	return s.Repo.ListComparisons(ctx, s.DB)
}

// ListPage returns a page of saved comparisons, newest first (paginated).
// It applies defaults for invalid page/pageSize and returns total count.
func (s *ComparisonService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Comparison, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountComparisons(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Comparison{}, 0, nil
	}

	items, err := s.Repo.ListComparisonsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Get fetches a single saved comparison, returning ErrComparisonNotFound
// when the id does not exist.
func (s *ComparisonService) Get(ctx context.Context, id string) (*domain.Comparison, error) {
	c, err := s.Repo.GetComparison(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrComparisonNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a saved comparison permanently. Deleting an id that does
// not exist is a successful no-op.
func (s *ComparisonService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteComparison(ctx, s.DB, id)
}
