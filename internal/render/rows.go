// Package render turns a saved comparison into customer-facing documents:
// a printable HTML report and an xlsx workbook. Both renderers consume the
// same row grid built here, so field coverage, labels, ordering, and the
// recommended-quote decision stay identical across output formats by
// construction rather than by convention.
package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/newshield/go-insurance-backend/internal/domain"
)

// RowKind distinguishes how a row's cells should be presented.
type RowKind int

const (
	// RowText cells hold a single free-text value.
	RowText RowKind = iota
	// RowList cells hold an ordered clause list rendered as bullets.
	RowList
	// RowMoney cells hold a monetary amount formatted to two decimals
	// with thousands grouping.
	RowMoney
)

// Cell is one quote's value within a row. Exactly one of Text, Items, or
// Amount is meaningful depending on the row kind. Recommended is set only
// on the Total cell of the comparison's recommended quote.
type Cell struct {
	Text        string
	Items       []string
	Amount      float64
	Recommended bool
}

// Row is one labelled line of the comparison table, with one cell per
// quote in aggregate order.
type Row struct {
	Label string
	Kind  RowKind
	Cells []Cell
}

// money formats amounts with thousands grouping and two decimals.
var money = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount as e.g. "10,762.50".
func FormatAmount(v float64) string {
	return money.Sprintf("%.2f", v)
}

// Rows builds the ten-row comparison grid for c. Row order and labels are
// fixed; every row carries one cell per quote in the order the quotes were
// saved. The recommended highlight is resolved once, via
// Comparison.RecommendedQuote, and applied to that quote's Total cell only.
func Rows(c *domain.Comparison) []Row {
	recommendedIdx := -1
	if rq := c.RecommendedQuote(); rq != nil {
		for i := range c.Quotes {
			if c.Quotes[i].ID == rq.ID {
				recommendedIdx = i
				break
			}
		}
	}

	n := len(c.Quotes)
	text := func(get func(q *domain.Quote) string) []Cell {
		cells := make([]Cell, n)
		for i := range c.Quotes {
			cells[i] = Cell{Text: get(&c.Quotes[i])}
		}
		return cells
	}
	list := func(get func(q *domain.Quote) []string) []Cell {
		cells := make([]Cell, n)
		for i := range c.Quotes {
			cells[i] = Cell{Items: get(&c.Quotes[i])}
		}
		return cells
	}
	amount := func(get func(q *domain.Quote) float64, markRecommended bool) []Cell {
		cells := make([]Cell, n)
		for i := range c.Quotes {
			cells[i] = Cell{
				Amount:      get(&c.Quotes[i]),
				Recommended: markRecommended && i == recommendedIdx,
			}
		}
		return cells
	}

	return []Row{
		{Label: "Scope of Cover", Kind: RowText, Cells: text(func(q *domain.Quote) string { return q.ScopeOfCover })},
		{Label: "Geographical Limits", Kind: RowText, Cells: text(func(q *domain.Quote) string { return q.GeographicalLimits })},
		{Label: "Conditions/Extensions", Kind: RowList, Cells: list(func(q *domain.Quote) []string { return q.Conditions })},
		{Label: "Main Exclusions", Kind: RowList, Cells: list(func(q *domain.Quote) []string { return q.Exclusions })},
		{Label: "Deductible", Kind: RowText, Cells: text(func(q *domain.Quote) string { return q.Deductible })},
		{Label: "Premium Rate", Kind: RowText, Cells: text(func(q *domain.Quote) string { return q.PremiumRate })},
		{Label: "Premium (AED)", Kind: RowMoney, Cells: amount(func(q *domain.Quote) float64 { return q.Premium }, false)},
		{Label: "Policy Fee (AED)", Kind: RowMoney, Cells: amount(func(q *domain.Quote) float64 { return q.PolicyFee }, false)},
		{Label: "VAT (5%)", Kind: RowMoney, Cells: amount(func(q *domain.Quote) float64 { return q.Tax }, false)},
		{Label: "Total (AED)", Kind: RowMoney, Cells: amount(func(q *domain.Quote) float64 { return q.Total }, true)},
	}
}

// RecommendedInsurer resolves the summary line both documents print: the
// name of the first recommended insurer, or "None marked" when no quote
// carries the flag.
func RecommendedInsurer(c *domain.Comparison) string {
	if rq := c.RecommendedQuote(); rq != nil {
		return rq.Insurer
	}
	return "None marked"
}
