package services

import (
	"testing"

	"github.com/newshield/go-insurance-backend/internal/catalog"
)

func TestDrafts_FullPanel(t *testing.T) {
	s := NewQuoteService(catalog.New())

	panel := catalog.New().Insurers("par")
	drafts := s.Drafts("par", nil)

	if len(drafts) != len(panel) {
		t.Fatalf("expected %d drafts, got %d", len(panel), len(drafts))
	}
	for i, d := range drafts {
		if d.Insurer != panel[i] {
			t.Errorf("draft %d insurer = %q, want %q", i, d.Insurer, panel[i])
		}
		if d.ID == "" {
			t.Errorf("draft %d missing id", i)
		}
		if d.Premium != 0 || d.Total != 0 {
			t.Errorf("draft %d should start unpriced", i)
		}
	}
}

func TestDrafts_InsurerFilter(t *testing.T) {
	s := NewQuoteService(catalog.New())

	drafts := s.Drafts("par", []string{"RSA", "Some Other Co"})
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].Insurer != "RSA" || drafts[1].Insurer != "Some Other Co" {
		t.Errorf("filter order not preserved: %q, %q", drafts[0].Insurer, drafts[1].Insurer)
	}
}

func TestDrafts_Isolation(t *testing.T) {
	s := NewQuoteService(catalog.New())

	a := s.Drafts("sme", nil)
	b := s.Drafts("sme", nil)
	if len(a) == 0 || len(a[0].Conditions) == 0 {
		t.Fatal("expected seeded conditions")
	}

	a[0].Conditions[0] = "edited"
	if b[0].Conditions[0] == "edited" {
		t.Error("editing one draft batch leaked into another")
	}
	if catalog.New().Lookup("sme").Conditions[0] == "edited" {
		t.Error("editing a draft mutated the catalog")
	}
}

func TestDrafts_UnknownLine(t *testing.T) {
	s := NewQuoteService(catalog.New())

	if drafts := s.Drafts("unknown", nil); len(drafts) != 0 {
		t.Errorf("unknown line with no filter should yield no drafts, got %d", len(drafts))
	}

	drafts := s.Drafts("unknown", []string{"AnyCo"})
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].GeographicalLimits != "United Arab Emirates" {
		t.Errorf("expected the standard limits fallback, got %q", drafts[0].GeographicalLimits)
	}
	if drafts[0].ScopeOfCover != "All assets of the Insured" {
		t.Errorf("expected the scope fallback, got %q", drafts[0].ScopeOfCover)
	}
}
