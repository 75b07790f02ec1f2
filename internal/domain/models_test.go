package domain

import (
	"regexp"
	"testing"
	"time"
)

func TestQuoteList_ValueAndScan(t *testing.T) {
	ql := QuoteList{
		{ID: "q1", Insurer: "RSA", Premium: 100, Conditions: []string{"a"}},
		{ID: "q2", Insurer: "AXA", IsRecommended: true},
	}

	v, err := ql.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var back QuoteList
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(back) != 2 || back[0].Insurer != "RSA" || !back[1].IsRecommended {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestQuoteList_NilStoresEmptyArray(t *testing.T) {
	var ql QuoteList
	v, err := ql.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil list should store as \"[]\", got %v", v)
	}
}

func TestQuoteList_ScanBytes(t *testing.T) {
	var ql QuoteList
	if err := ql.Scan([]byte(`[{"insurer":"IH"}]`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if len(ql) != 1 || ql[0].Insurer != "IH" {
		t.Errorf("scan result: %+v", ql)
	}
}

func TestQuoteList_ScanUnsupported(t *testing.T) {
	var ql QuoteList
	if err := ql.Scan(42); err == nil {
		t.Error("expected error for unsupported scan type")
	}
}

func TestRecommendedQuote_FirstMarkedWins(t *testing.T) {
	c := Comparison{Quotes: QuoteList{
		{ID: "a"},
		{ID: "b", IsRecommended: true},
		{ID: "c", IsRecommended: true},
	}}
	rq := c.RecommendedQuote()
	if rq == nil || rq.ID != "b" {
		t.Errorf("expected first marked quote b, got %+v", rq)
	}
}

func TestRecommendedQuote_NoneMarked(t *testing.T) {
	c := Comparison{Quotes: QuoteList{{ID: "a"}, {ID: "b"}}}
	if rq := c.RecommendedQuote(); rq != nil {
		t.Errorf("expected nil, got %+v", rq)
	}
}

func TestNewReferenceNumber_Shape(t *testing.T) {
	now := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	pattern := regexp.MustCompile(`^GI-\d{8}-\d{4}$`)

	for i := 0; i < 50; i++ {
		ref := NewReferenceNumber(now)
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match GI-YYYYMMDD-NNNN", ref)
		}
		if ref[3:11] != "20260307" {
			t.Fatalf("date segment %q, want 20260307", ref[3:11])
		}
	}
}
