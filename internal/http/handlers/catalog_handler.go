// Catalog HTTP handlers.
//
// This file exposes REST endpoints for the product-line registry:
//   - GET /lines              (list lines with insurer panels)
//   - GET /lines/{id}         (full seed defaults for a line)
//   - GET /lines/{id}/quotes  (seeded draft quotes, optionally filtered)
//
// Handlers are transport-thin: they read input, call application services,
// and translate results into HTTP responses. Unknown line ids are not an
// error anywhere here; they resolve to soft-empty defaults.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/newshield/go-insurance-backend/internal/catalog"
	"github.com/newshield/go-insurance-backend/internal/domain"
	"github.com/newshield/go-insurance-backend/internal/render"
	"github.com/newshield/go-insurance-backend/internal/services"
)

//
// Service contracts
//

// CatalogService exposes the product-line registry to HTTP handlers.
type CatalogService interface {
	// Lines returns the ordered line registry.
	Lines() []catalog.Line
	// Lookup returns seed defaults for a line id (soft-empty when unknown).
	Lookup(lineID string) catalog.LineDefaults
	// Insurers returns the panel of insurers quoting a line.
	Insurers(lineID string) []string
	// Label returns the display label for a line id, or the raw id.
	Label(lineID string) string
}

// QuoteService seeds ephemeral draft quotes for a line.
type QuoteService interface {
	// Drafts returns one seeded quote per insurer (full panel when insurers
	// is empty). Drafts are never persisted.
	Drafts(lineID string, insurers []string) []domain.Quote
}

// ComparisonService defines comparison lifecycle operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ComparisonService interface {
	// Save validates and persists a comparison aggregate.
	Save(ctx context.Context, in services.SaveComparisonInput) (*domain.Comparison, error)
	// ListPage returns a page of saved comparisons and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Comparison, int64, error)
	// Get fetches a saved comparison by id.
	Get(ctx context.Context, id string) (*domain.Comparison, error)
	// Delete removes a saved comparison (idempotent).
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for the catalog, draft quotes, saved
// comparisons, and document downloads. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	catalog  CatalogService
	quoteSvc QuoteService
	cmpSvc   ComparisonService
	brand    render.Branding
}

// New constructs and returns a Handlers instance bound to the given services.
func New(cat CatalogService, quoteSvc QuoteService, cmpSvc ComparisonService, brand render.Branding) *Handlers {
	return &Handlers{catalog: cat, quoteSvc: quoteSvc, cmpSvc: cmpSvc, brand: brand}
}

//
// DTOs
//

// LineSummary is one catalog entry in the line listing.
type LineSummary struct {
	ID       string   `json:"id" example:"sme"`
	Label    string   `json:"label" example:"SME Insurance"`
	Insurers []string `json:"insurers"`
}

// LineDetail carries the full seed defaults for a line.
type LineDetail struct {
	ID                 string   `json:"id" example:"sme"`
	Label              string   `json:"label" example:"SME Insurance"`
	Insurers           []string `json:"insurers"`
	ScopeOfCover       string   `json:"scope_of_cover"`
	GeographicalLimits string   `json:"geographical_limits"`
	Conditions         []string `json:"conditions"`
	Exclusions         []string `json:"exclusions"`
	Deductible         string   `json:"deductible"`
}

// DraftQuotesResponse wraps seeded draft quotes for a line.
type DraftQuotesResponse struct {
	LineID string         `json:"line_id"`
	Quotes []domain.Quote `json:"quotes"`
}

//
// Handlers
//

// ListLines godoc
// @ID          listLines
// @Summary     List product lines
// @Description Returns the ordered product-line registry with insurer panels.
// @Tags        Catalog
// @Produce     json
//
// @Success     200  {array}  handlers.LineSummary
// @Router      /lines [get]
func (h *Handlers) ListLines(c *gin.Context) {
	lines := h.catalog.Lines()
	out := make([]LineSummary, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineSummary{
			ID:       l.ID,
			Label:    l.Label,
			Insurers: h.catalog.Insurers(l.ID),
		})
	}
	ok(c, http.StatusOK, out)
}

// GetLine godoc
// @ID          getLine
// @Summary     Get line defaults
// @Description Returns the full seed defaults for a line. Unknown ids yield soft-empty defaults rather than an error.
// @Tags        Catalog
// @Produce     json
//
// @Param       id  path  string  true  "Line ID"  example(sme)
//
// @Success     200  {object}  handlers.LineDetail
// @Router      /lines/{id} [get]
func (h *Handlers) GetLine(c *gin.Context) {
	id := c.Param("id")
	d := h.catalog.Lookup(id)
	ok(c, http.StatusOK, LineDetail{
		ID:                 id,
		Label:              h.catalog.Label(id),
		Insurers:           d.Insurers,
		ScopeOfCover:       d.ScopeOfCover,
		GeographicalLimits: d.GeographicalLimits,
		Conditions:         d.Conditions,
		Exclusions:         d.Exclusions,
		Deductible:         d.Deductible,
	})
}

// ListDraftQuotes godoc
// @ID          listDraftQuotes
// @Summary     Seed draft quotes
// @Description Seeds one editable draft quote per insurer from the line's catalog defaults. Drafts are ephemeral and never persisted.
// @Tags        Catalog
// @Produce     json
//
// @Param       id        path   string  true   "Line ID"  example(sme)
// @Param       insurers  query  string  false  "Comma-separated insurer filter; full panel when absent"  example(RSA,AXA)
//
// @Success     200  {object}  handlers.DraftQuotesResponse
// @Router      /lines/{id}/quotes [get]
func (h *Handlers) ListDraftQuotes(c *gin.Context) {
	id := c.Param("id")
	quotes := h.quoteSvc.Drafts(id, splitInsurers(c.Query("insurers")))
	ok(c, http.StatusOK, DraftQuotesResponse{LineID: id, Quotes: quotes})
}

// splitInsurers parses the comma-separated insurer filter, trimming blanks.
func splitInsurers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
