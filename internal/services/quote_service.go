// Package services – QuoteService
//
// This file implements the QuoteService, which seeds draft quotes from the
// product catalog. Drafts are ephemeral: they exist to give a client an
// editable starting point per insurer and are never persisted on their own.
// A draft only reaches the store once it is submitted inside a comparison
// save request.
package services

import "github.com/newshield/go-insurance-backend/internal/domain"

// QuoteService seeds editable draft quotes from catalog defaults.
type QuoteService struct {
	// Catalog supplies line defaults and insurer panels.
	Catalog LineCatalog
}

// NewQuoteService constructs a QuoteService over the given catalog.
func NewQuoteService(cat LineCatalog) *QuoteService {
	return &QuoteService{Catalog: cat}
}

// Drafts seeds one quote per requested insurer for a line. When insurers is
// empty the line's full catalog panel is used. Each draft carries its own
// copies of the clause slices, so edits to one draft never leak into a
// sibling or back into the registry. Unknown line ids seed from soft-empty
// defaults rather than failing.
func (s *QuoteService) Drafts(lineID string, insurers []string) []domain.Quote {
	if len(insurers) == 0 {
		insurers = s.Catalog.Insurers(lineID)
	}
	defaults := s.Catalog.Lookup(lineID)
	out := make([]domain.Quote, 0, len(insurers))
	for _, ins := range insurers {
		out = append(out, domain.NewQuote(defaults, ins))
	}
	return out
}
