// Package domain defines the quote-comparison data model: the per-insurer
// Quote value object with its derivation rules, and the persisted
// Comparison aggregate. Quotes are ephemeral while a comparison is being
// composed; they are absorbed into a Comparison at save time and never
// edited again.
package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/newshield/go-insurance-backend/internal/catalog"
	"github.com/newshield/go-insurance-backend/internal/utils"
)

// vatRate is the UAE VAT rate applied to the premium subtotal.
var vatRate = decimal.NewFromInt(5).Div(decimal.NewFromInt(100))

// Fallback text applied when a line's catalog entry leaves a field blank.
const (
	fallbackScope     = "All assets of the Insured"
	fallbackGeoLimits = "United Arab Emirates"
)

// Quote is one insurer's priced, editable copy of a line's terms within a
// comparison.
//
// Field semantics:
//   - ID and Insurer are set at creation and immutable thereafter.
//   - Free-text fields and the clause slices are seeded from catalog
//     defaults and freely editable.
//   - Premium and PolicyFee are user inputs; Tax and Total are derived and
//     recomputed on every change to either input (never settable directly).
//   - IsRecommended is an advisor flag; uniqueness across a comparison is
//     deliberately not enforced (see Comparison.RecommendedQuote).
type Quote struct {
	ID                 string   `json:"id"`
	Insurer            string   `json:"insurer"`
	ScopeOfCover       string   `json:"scope_of_cover"`
	GeographicalLimits string   `json:"geographical_limits"`
	Conditions         []string `json:"conditions"`
	Exclusions         []string `json:"exclusions"`
	Deductible         string   `json:"deductible"`
	PremiumRate        string   `json:"premium_rate"`
	Premium            float64  `json:"premium"`
	PolicyFee          float64  `json:"policy_fee"`
	Tax                float64  `json:"tax"`
	Total              float64  `json:"total"`
	IsRecommended      bool     `json:"is_recommended"`
}

// NewQuote seeds a quote for insurer from a line's catalog defaults.
// Clause slices are deep-copied so later per-quote edits never touch the
// catalog or sibling quotes. Monetary fields start at zero and derived
// fields follow.
func NewQuote(d catalog.LineDefaults, insurer string) Quote {
	scope := d.ScopeOfCover
	if scope == "" {
		scope = fallbackScope
	}
	geo := d.GeographicalLimits
	if geo == "" {
		geo = fallbackGeoLimits
	}
	q := Quote{
		ID:                 uuid.NewString(),
		Insurer:            insurer,
		ScopeOfCover:       scope,
		GeographicalLimits: geo,
		Conditions:         append([]string(nil), d.Conditions...),
		Exclusions:         append([]string(nil), d.Exclusions...),
		Deductible:         d.Deductible,
	}
	q.Recalculate()
	return q
}

// Recalculate derives Tax and Total from Premium and PolicyFee:
//
//	subtotal = premium + policyFee
//	tax      = round2(subtotal * 0.05)
//	total    = round2(subtotal + tax)
//
// Rounding is standard half-away-from-zero to two decimal places, done in
// decimal arithmetic to avoid float drift.
func (q *Quote) Recalculate() {
	subtotal := decimal.NewFromFloat(q.Premium).Add(decimal.NewFromFloat(q.PolicyFee))
	tax := subtotal.Mul(vatRate).Round(2)
	q.Tax = tax.InexactFloat64()
	q.Total = subtotal.Add(tax).Round(2).InexactFloat64()
}

// ApplyField sets a named field from raw form input. The setter is
// deliberately permissive and never returns an error:
//
//   - "premium" and "policy_fee" coerce malformed or negative input to 0
//     and trigger recalculation of the derived fields;
//   - text fields are set verbatim;
//   - "is_recommended" accepts bool-ish strings (invalid input means false);
//   - "tax", "total", "id", "insurer", and unknown names are ignored.
func (q *Quote) ApplyField(name, value string) {
	switch name {
	case "premium":
		q.Premium = nonNegative(utils.FloatDefault(strings.TrimSpace(value), 0))
		q.Recalculate()
	case "policy_fee":
		q.PolicyFee = nonNegative(utils.FloatDefault(strings.TrimSpace(value), 0))
		q.Recalculate()
	case "scope_of_cover":
		q.ScopeOfCover = value
	case "geographical_limits":
		q.GeographicalLimits = value
	case "deductible":
		q.Deductible = value
	case "premium_rate":
		q.PremiumRate = value
	case "is_recommended":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		q.IsRecommended = err == nil && b
	}
}

// ToggleCondition removes the first occurrence of clause from the quote's
// conditions, or appends it at the tail when absent. Untouched entries keep
// their order; re-added clauses go to the end, not back to their catalog
// position.
func (q *Quote) ToggleCondition(clause string) {
	for i, c := range q.Conditions {
		if c == clause {
			q.Conditions = append(q.Conditions[:i], q.Conditions[i+1:]...)
			return
		}
	}
	q.Conditions = append(q.Conditions, clause)
}

// nonNegative clamps negative monetary input to zero, matching the
// permissive coercion policy for out-of-range values.
func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
