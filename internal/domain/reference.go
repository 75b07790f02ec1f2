package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewReferenceNumber builds a comparison reference of the form
// GI-YYYYMMDD-NNNN, where the date segment is now's calendar date and NNNN
// is a random zero-padded 4-digit suffix. Uniqueness is probabilistic: two
// saves on the same day collide with probability 1/10000 per pair. That is
// accepted as a known limitation of the scheme rather than strengthened to
// a guaranteed-unique sequence.
func NewReferenceNumber(now time.Time) string {
	return fmt.Sprintf("GI-%s-%04d", now.Format("20060102"), rand.IntN(10000))
}
