// Package catalog holds the static registry of general-insurance product
// lines: for each line, the insurers writing it and the standard legal and
// commercial text (scope of cover, geographical limits, conditions,
// exclusions, deductible) used to seed new quotes.
//
// The registry is process-wide constant data. Lookups never fail: an
// unrecognized line identifier yields an all-empty defaults value (with the
// standard geographical-limits fallback) so callers can proceed without
// error handling. The catalog is never mutated at runtime; callers that
// seed editable quotes must copy the clause slices before editing.
package catalog

// Line identifies a product line and its human-readable label.
type Line struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LineDefaults carries the standard text and insurer panel for one product
// line. Slice order is meaningful: insurers appear in default selection
// order, and clause order is preserved downstream into rendered documents.
type LineDefaults struct {
	Insurers           []string `json:"insurers"`
	ScopeOfCover       string   `json:"scope_of_cover"`
	GeographicalLimits string   `json:"geographical_limits"`
	Conditions         []string `json:"conditions"`
	Exclusions         []string `json:"exclusions"`
	Deductible         string   `json:"deductible"`
}

// lines is the ordered catalog of selectable product lines.
var lines = []Line{
	{ID: "sme", Label: "SME PACKAGE (PAR + TPL + WC EL)"},
	{ID: "par", Label: "PAR - Property All Risk Insurance"},
	{ID: "tpl", Label: "TPL - Third Party Liability Insurance"},
	{ID: "wcel", Label: "WC EL - Workmen's Compensation and Employer's Liability"},
	{ID: "car", Label: "CAR - Contractor's All Risk"},
	{ID: "cpm", Label: "CPM - Contractor's Plant and Machinery Insurance"},
	{ID: "glpa", Label: "GLPA - Group Life and Personal Accident Insurance"},
}

// defaults maps a line ID to its standard text, extracted from the broker's
// master comparison workbook.
var defaults = map[string]LineDefaults{
	"sme": {
		Insurers:           []string{"AIG", "RSA"},
		ScopeOfCover:       "All assets of the Insured or property in the care, custody and control of the Insured or for which they hold themselves responsible in accordance with the Specification attaching hereto. This policy will indemnify the Insured for accidental physical loss of or damage to the Property Insured whilst situate at, in or on any Location",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"Including Legal and defense Costs cover. Any other type of accidental loss in our premises",
			"Workmen's Compensation as per UAE Labor Law / Employer's Liability as per Common and/or Sharia Law",
			"72 Hours Clause",
			"Reinstatement Value Clause",
			"Debris Removal Clause - Limited to 10% of Claim amount",
			"Including loss due to Riot, Strike and Civil Commotion",
			"Including fire explosion lightning, earthquake",
			"Storm, Flood, Tempest, Sand Storm",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Coronavirus exclusion - Communicable disease exclusion",
			"Property being worked upon",
			"Pure Financial Loss/ Consequential Loss",
		},
		Deductible: "As per policy terms",
	},
	"par": {
		Insurers:           []string{"IH", "DNIRC", "RSA", "Orient UNB"},
		ScopeOfCover:       "All assets of the Insured or property in the care, custody and control of the Insured or for which they hold themselves responsible in accordance with the Specification attaching hereto. This policy will indemnify the Insured for accidental physical loss of or damage to the Property Insured whilst situate at, in or on any Location",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"72 Hours Clause",
			"Reinstatement Value Clause",
			"Debris Removal Clause - Limited to 10% of Claim amount",
			"Including loss due to Riot, Strike and Civil Commotion",
			"Including fire explosion lightning, earthquake",
			"Storm, Flood, Tempest, Sand Storm",
			"Riot, Strike, Civil Commotion and labour or political disturbances",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Coronavirus exclusion - Communicable disease exclusion",
			"Property being worked upon",
			"Principals existing & surrounding properties",
			"Any offshore works / works on ships etc.",
			"Pure Financial Loss/ Consequential Loss",
		},
		Deductible: "AED 2,500/- each and every loss\nFirst 3 days each and every loss in respect of loss of rent",
	},
	"tpl": {
		Insurers:           []string{"Sukoon", "IH", "AIG", "UNION"},
		ScopeOfCover:       "To indemnify the insured against all sums up to the limit of indemnity specified under the policy which the insured shall become legally liable to pay as damages in respect of accidental bodily injury to any third party or to any third party property damage happening during the period of insurance arising out of their normal course of business activity anywhere within UAE",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"Tennent's liability",
			"Cross Liability Clause",
			"Including liability arising from bodily injury",
			"Including liability arising from Fire and/or explosion",
			"Including pollution caused by accidental and sudden discharge",
			"Including Tenants Liability up to the policy limits",
			"Legal & Defense costs included within the Limits of Indemnity",
			"Waiver of subrogation against insured parties",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Coronavirus exclusion - Communicable disease exclusion",
			"Professional Liability",
			"Contractual Liability",
			"Product Liability (unless specified)",
		},
		Deductible: "AED 1,000/- each and every claim",
	},
	"wcel": {
		Insurers:           []string{"AWNIC", "Sukoon", "ORIENT", "AIG"},
		ScopeOfCover:       "Workmen's Compensation as per UAE Labor Law / Employer's Liability as per Common and/or Sharia Law : Occurrence Form",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"Repatriation Expenses - AED 35,000 per person including accompanying person",
			"Employer's Liability with a limit of AED 1,000,000/- AOO",
			"Defense costs within limits",
			"Including 24 hours non-work related accidents",
			"Including transportation of employees to and from work place",
			"Including work during overtime and public holidays",
			"Including Sunstroke and Hernia resulting from work related activities",
			"Employee to Employee Liability Clause",
			"Accidental Medical Expenses - AED 50,000/- per person",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Coronavirus exclusion - Communicable disease exclusion",
			"Any offshore works / works on ships etc.",
			"Pure Financial Loss/ Consequential Loss",
		},
		Deductible: "As per policy terms",
	},
	"car": {
		Insurers:           []string{"Sukoon", "AWNIC", "ORIENT", "UNION"},
		ScopeOfCover:       "Combined single limit for Death/Bodily injury and TPPD as per Munich Re Contractor's All Risks Policy wordings",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"Cover for Cross Liability - (Mre 002)",
			"Extended Maintenance Cover: 6 months (Mre 004)",
			"Cover for Extra Charges for Overtime, Night work, Express Freight: upto 5% (Mre 006)",
			"Special conditions concerning Underground Cables, Pipes & other facilities-Mre102",
			"Warranty Concerning Construction Material - (Mre 009)",
			"Safety Measures with respect to flood and inundation - (Mre 110)",
			"Cover for Vibration, Removal or Weakening of Support upto AED 500,000/-",
			"Fire Fighting Facilities & Fire Safety on Construction Sites",
			"Professional Fees Clause - Upto 5% of the Claim Amount",
			"Debris Removal Clause - Upto 10% of the Claim Amount",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Existing structures and surrounding properties",
			"Design errors and defects",
			"Pure Financial Loss/ Consequential Loss",
		},
		Deductible: "As per project specifications",
	},
	"cpm": {
		Insurers:           []string{"AWNIC", "IH", "DNIRC", "NGI"},
		ScopeOfCover:       "Contractors Plant & Equipment against any unforeseen and sudden physical loss or damage from any cause not specifically excluded under the Policy. As per Standard policy wording of Munich re.",
		GeographicalLimits: "United Arab Emirates",
		Conditions: []string{
			"Cover extended to include Tool of Trade Extension up to a limit of AED 1,000,000/-",
			"Debris Removal 10% of the claim Amount subject to maximum AED 100,000/-",
			"Extended to cover Riot & Strike, civil Commotion",
			"Inland Transit Clause - Including Loading and Unloading",
			"Cover of Any extra charges incurred overtime, night work, work on public holidays",
			"Coverage for loading / unloading / dismantling / Erection / commissioning & testing",
			"Including loss or damage due to Fire, Lightning, explosion, storm and tempest",
			"Temporary removal - Limit 10% of Sum Insured",
		},
		Exclusions: []string{
			"War Risks, Pollution Risk, Nuclear Risk",
			"Coronavirus exclusion - Communicable disease exclusion",
			"Mechanical or electrical breakdown (unless Breakdown cover included)",
			"Normal wear and tear",
		},
		Deductible: "As per policy terms",
	},
	"glpa": {
		Insurers:           []string{"ABNIC", "ALLIANCE", "ORIENT", "UNION"},
		ScopeOfCover:       "To indemnify the Assured in respect of Group Life and Personal Accident benefits arising from Death due to any cause and Disability due to accident & sickness occurring during the policy period",
		GeographicalLimits: "24 hours Worldwide Cover On and Off duty",
		Conditions: []string{
			"24 hours Worldwide Cover On and Off duty",
			"Death Benefit: 100% of the sum insured",
			"Permanent Total Disability: 100% of the sum insured",
			"Permanent Partial Disability: Based on continental scale of benefits",
			"Temporary Total Disability: 100% weekly basic salary upto 52 weeks",
			"Medical Expenses: Covered upto AED 20,000",
			"Repatriation of Mortal Remains: Covered upto AED 20,000",
			"Funeral Expenses: Covered",
		},
		Exclusions: []string{
			"Pre-existing conditions",
			"Self-inflicted injuries",
			"Nuclear weapons or devices or chemical or biological & mass destruction",
			"Active participation in war, civil war, terrorism & related political risk",
			"Offshore Risk",
		},
		Deductible: "NIL",
	},
}

// Catalog is the read-only capability the services layer depends on.
// The static registry satisfies it; tests may substitute a fake.
type Catalog interface {
	// Lookup returns the defaults for a line, or a soft-empty value for
	// unknown identifiers. It never fails.
	Lookup(lineID string) LineDefaults
	// Insurers returns the insurer panel for a line (nil for unknown ids).
	Insurers(lineID string) []string
	// Lines returns the ordered list of selectable lines.
	Lines() []Line
	// Label resolves the human-readable label for a line, falling back to
	// the raw identifier when the line is unrecognized.
	Label(lineID string) string
}

// Static is the built-in registry backed by the package-level tables.
type Static struct{}

// New returns the static catalog.
func New() Static { return Static{} }

// Lookup returns the defaults for lineID. Unknown identifiers yield an
// empty defaults value whose geographical limits carry the standard
// fallback, mirroring how unrecognized selections behave upstream.
func (Static) Lookup(lineID string) LineDefaults {
	if d, ok := defaults[lineID]; ok {
		return d
	}
	return LineDefaults{GeographicalLimits: "United Arab Emirates"}
}

// Insurers returns the insurer panel for lineID in default selection order.
func (s Static) Insurers(lineID string) []string {
	return s.Lookup(lineID).Insurers
}

// Lines returns the ordered list of product lines.
func (Static) Lines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Label returns the label for lineID, or lineID itself when unknown.
func (Static) Label(lineID string) string {
	for _, l := range lines {
		if l.ID == lineID {
			return l.Label
		}
	}
	return lineID
}
