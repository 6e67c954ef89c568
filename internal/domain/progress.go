package domain

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Progress and Outcome
var (
	ErrEmptyProgressUserID = errors.New("progress user ID cannot be empty")
	ErrNegativeScore       = errors.New("score must be greater than or equal to 0")
	ErrPercentageRange     = errors.New("percentage must be between 0 and 100")
)

// Outcome is a client-reported session result for one category: how many
// cards were answered correctly, how far through the deck the session got,
// and whether the session asserted completion. The claimed values are
// treated as authoritative input; they are merged, never re-derived.
type Outcome struct {
	Score      int     `json:"score"`
	Percentage float64 `json:"percentage"`
	Completed  bool    `json:"completed"`
}

// Clamped returns a copy of the outcome with the percentage forced into
// [0, 100]. The ledger boundary is the single authoritative clamp point;
// no other layer adjusts the claimed percentage.
func (o Outcome) Clamped() Outcome {
	if o.Percentage < 0 {
		o.Percentage = 0
	} else if o.Percentage > 100 {
		o.Percentage = 100
	}
	return o
}

// Validate checks if the Outcome has valid data.
// Returns an error if any field fails validation.
func (o Outcome) Validate() error {
	if o.Score < 0 {
		return ErrNegativeScore
	}
	return nil
}

// Progress is the persisted, per-user-per-category summary of best-ever
// performance. Score and Percentage are high-water marks: submissions can
// only raise them, and Completed never reverts to false once set. One
// record exists per (UserID, Category) pair; it is created lazily on the
// first submission and never deleted.
type Progress struct {
	UserID         uuid.UUID `json:"user_id"`
	Category       Category  `json:"category"`
	Score          int       `json:"score"`
	Percentage     float64   `json:"percentage"`
	CompletedCards int       `json:"completed_cards"`
	Completed      bool      `json:"completed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewProgress returns the well-defined empty record for a (user, category)
// pair that has no stored progress yet. "Never played" and "played and
// scored zero" are indistinguishable at this layer.
func NewProgress(userID uuid.UUID, category Category) *Progress {
	return &Progress{
		UserID:   userID,
		Category: category,
	}
}

// Validate checks if the Progress has valid data.
// Returns an error if any field fails validation.
func (p *Progress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}

	if !p.Category.Valid() {
		return ErrUnknownCategory
	}

	if p.Score < 0 {
		return ErrNegativeScore
	}

	if p.Percentage < 0 || p.Percentage > 100 {
		return ErrPercentageRange
	}

	return nil
}

// Merge folds a submitted outcome into the record under the monotonic
// rule: element-wise max for score and percentage, logical OR for the
// completion flag. CompletedCards is recomputed from the merged percentage
// and the category's current card count. Merging is commutative and
// idempotent, so repeated or out-of-order submissions converge to the
// same final state.
func (p *Progress) Merge(outcome Outcome, totalCards int, now time.Time) {
	outcome = outcome.Clamped()

	if outcome.Score > p.Score {
		p.Score = outcome.Score
	}
	if outcome.Percentage > p.Percentage {
		p.Percentage = outcome.Percentage
	}
	p.CompletedCards = CompletedCardCount(p.Percentage, totalCards)
	p.Completed = p.Completed || outcome.Completed
	p.UpdatedAt = now
}

// CompletedCardCount derives the number of completed cards from a
// completion percentage, rounding down. A category with zero cards always
// yields zero, guarding the degenerate empty-catalog case.
func CompletedCardCount(percentage float64, totalCards int) int {
	if totalCards <= 0 {
		return 0
	}
	return int(math.Floor(percentage / 100 * float64(totalCards)))
}
