// Package domain defines the quote-comparison data model. This file holds
// the persisted Comparison aggregate, mapped with GORM onto a single
// SQLite table with the quote list serialized as a human-diffable JSON
// text column.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion tags persisted comparisons so future shape changes can be
// migrated instead of silently breaking old rows.
const SchemaVersion = 1

// QuoteList is an ordered quote sequence stored as a JSON text column.
type QuoteList []Quote

// Value serializes the list for storage. A nil list stores as "[]" so the
// column is never NULL and round-trips as an empty slice.
func (ql QuoteList) Value() (driver.Value, error) {
	if ql == nil {
		return "[]", nil
	}
	b, err := json.Marshal(ql)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the stored JSON back into the list.
func (ql *QuoteList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ql = nil
		return nil
	case []byte:
		return json.Unmarshal(v, ql)
	case string:
		return json.Unmarshal([]byte(v), ql)
	default:
		return fmt.Errorf("quote list: unsupported scan type %T", src)
	}
}

// Comparison is a saved snapshot bundling a customer, a product line, and
// multiple quotes for side-by-side review. Once created it is immutable
// history: the store supports create, list, and hard delete only. There is
// no update-in-place and no soft delete.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - SchemaVersion: persisted record-shape tag (see SchemaVersion).
//   - ReferenceNumber: "GI-YYYYMMDD-NNNN"; uniqueness is probabilistic
//     (random 4-digit daily suffix), not guaranteed.
//   - ProductLineID / ProductLineLabel: chosen line and its resolved label
//     (raw identifier when unresolved).
//   - CustomerName: required; the only mandatory customer field.
//   - Address, BusinessActivity, Location, PropertyLimit: optional customer
//     details, only meaningful for certain lines.
//   - Quotes: ordered quote snapshots, one per selected insurer.
//   - AdvisorComment: optional advisor note rendered as a callout.
//   - CreatedAt: set once at save time, immutable.
type Comparison struct {
	ID               string    `json:"id"                gorm:"type:char(36);primaryKey"`
	SchemaVersion    int       `json:"schema_version"    gorm:"not null;default:1"`
	ReferenceNumber  string    `json:"reference_number"  gorm:"type:varchar(24);not null;index:idx_comparison_ref"`
	ProductLineID    string    `json:"product_line_id"   gorm:"type:varchar(16);not null"`
	ProductLineLabel string    `json:"product_line_label" gorm:"type:varchar(255);not null"`
	CustomerName     string    `json:"customer_name"     gorm:"type:varchar(255);not null"`
	Address          string    `json:"address,omitempty"`
	BusinessActivity string    `json:"business_activity,omitempty"`
	Location         string    `json:"location,omitempty"`
	PropertyLimit    string    `json:"property_limit,omitempty"`
	Quotes           QuoteList `json:"quotes"            gorm:"type:text;not null"`
	AdvisorComment   string    `json:"advisor_comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"        gorm:"index:idx_comparison_created"`
}

// TableName returns the database table name for Comparison.
func (Comparison) TableName() string { return "comparisons" }

// RecommendedQuote returns the first quote flagged as recommended, or nil
// when none is marked. The data model permits zero or several recommended
// quotes; this is the single resolution point both document renderers use,
// so "first marked wins" is applied consistently everywhere.
func (c *Comparison) RecommendedQuote() *Quote {
	for i := range c.Quotes {
		if c.Quotes[i].IsRecommended {
			return &c.Quotes[i]
		}
	}
	return nil
}
