package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewProgress(t *testing.T) {
	t.Parallel() // Enable parallel execution
	userID := uuid.New()

	p := NewProgress(userID, CategoryEmotions)

	if p.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, p.UserID)
	}

	if p.Category != CategoryEmotions {
		t.Errorf("Expected category %s, got %s", CategoryEmotions, p.Category)
	}

	if p.Score != 0 {
		t.Errorf("Expected zero score, got %d", p.Score)
	}

	if p.Percentage != 0 {
		t.Errorf("Expected zero percentage, got %f", p.Percentage)
	}

	if p.CompletedCards != 0 {
		t.Errorf("Expected zero completed cards, got %d", p.CompletedCards)
	}

	if p.Completed {
		t.Error("Expected completed to be false")
	}

	if !p.UpdatedAt.IsZero() {
		t.Error("Expected zero UpdatedAt for an empty record")
	}
}

func TestProgressValidate(t *testing.T) {
	t.Parallel()
	valid := Progress{
		UserID:     uuid.New(),
		Category:   CategoryConcepts,
		Score:      5,
		Percentage: 66.7,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test empty user ID
	invalid := valid
	invalid.UserID = uuid.Nil
	if err := invalid.Validate(); err != ErrEmptyProgressUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyProgressUserID, err)
	}

	// Test unknown category
	invalid = valid
	invalid.Category = Category("animales")
	if err := invalid.Validate(); err != ErrUnknownCategory {
		t.Errorf("Expected error %v, got %v", ErrUnknownCategory, err)
	}

	// Test negative score
	invalid = valid
	invalid.Score = -1
	if err := invalid.Validate(); err != ErrNegativeScore {
		t.Errorf("Expected error %v, got %v", ErrNegativeScore, err)
	}

	// Test percentage out of range
	invalid = valid
	invalid.Percentage = 100.5
	if err := invalid.Validate(); err != ErrPercentageRange {
		t.Errorf("Expected error %v, got %v", ErrPercentageRange, err)
	}

	invalid = valid
	invalid.Percentage = -0.1
	if err := invalid.Validate(); err != ErrPercentageRange {
		t.Errorf("Expected error %v, got %v", ErrPercentageRange, err)
	}
}

func TestOutcomeValidate(t *testing.T) {
	t.Parallel()
	if err := (Outcome{Score: 0, Percentage: 0}).Validate(); err != nil {
		t.Errorf("Expected no error for zero outcome, got %v", err)
	}

	if err := (Outcome{Score: -1}).Validate(); err != ErrNegativeScore {
		t.Errorf("Expected error %v, got %v", ErrNegativeScore, err)
	}

	// Out-of-range percentages are clamped later, never rejected.
	if err := (Outcome{Score: 3, Percentage: 150}).Validate(); err != nil {
		t.Errorf("Expected no error for over-100 percentage, got %v", err)
	}
}

func TestOutcomeClamped(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -20, 0},
		{"zero", 0, 0},
		{"in range", 66.7, 66.7},
		{"hundred", 100, 100},
		{"over", 150, 100},
	}

	for _, tc := range cases {
		got := Outcome{Percentage: tc.in}.Clamped()
		if got.Percentage != tc.want {
			t.Errorf("%s: expected %f, got %f", tc.name, tc.want, got.Percentage)
		}
	}

	// Score and completion pass through untouched.
	out := Outcome{Score: 3, Percentage: 120, Completed: true}.Clamped()
	if out.Score != 3 || !out.Completed {
		t.Errorf("Expected score and completion preserved, got %+v", out)
	}
}

func TestProgressMergeMonotonic(t *testing.T) {
	t.Parallel()
	now := time.Now()
	p := NewProgress(uuid.New(), CategoryEmotions)

	// First session: 2 correct, 66.7%, not completed.
	p.Merge(Outcome{Score: 2, Percentage: 66.7}, 3, now)

	if p.Score != 2 {
		t.Errorf("Expected score 2, got %d", p.Score)
	}
	if p.Percentage != 66.7 {
		t.Errorf("Expected percentage 66.7, got %f", p.Percentage)
	}
	if p.CompletedCards != 2 {
		t.Errorf("Expected 2 completed cards, got %d", p.CompletedCards)
	}
	if p.Completed {
		t.Error("Expected completed to remain false")
	}

	// A worse session must not lower anything.
	p.Merge(Outcome{Score: 1, Percentage: 33.3}, 3, now.Add(time.Hour))

	if p.Score != 2 {
		t.Errorf("Expected score to stay at 2, got %d", p.Score)
	}
	if p.Percentage != 66.7 {
		t.Errorf("Expected percentage to stay at 66.7, got %f", p.Percentage)
	}
	if p.CompletedCards != 2 {
		t.Errorf("Expected completed cards to stay at 2, got %d", p.CompletedCards)
	}

	// A better session raises the high-water marks.
	p.Merge(Outcome{Score: 3, Percentage: 100, Completed: true}, 3, now.Add(2*time.Hour))

	if p.Score != 3 {
		t.Errorf("Expected score 3, got %d", p.Score)
	}
	if p.Percentage != 100 {
		t.Errorf("Expected percentage 100, got %f", p.Percentage)
	}
	if p.CompletedCards != 3 {
		t.Errorf("Expected 3 completed cards, got %d", p.CompletedCards)
	}
	if !p.Completed {
		t.Error("Expected completed to be true")
	}
}

func TestProgressMergeCompletionNeverReverts(t *testing.T) {
	t.Parallel()
	now := time.Now()
	p := NewProgress(uuid.New(), CategoryConcepts)

	p.Merge(Outcome{Score: 3, Percentage: 100, Completed: true}, 3, now)
	if !p.Completed {
		t.Fatal("Expected completed to be true")
	}

	// Later submissions with completed=false must not clear the flag.
	p.Merge(Outcome{Score: 1, Percentage: 33.3, Completed: false}, 3, now.Add(time.Hour))
	if !p.Completed {
		t.Error("Expected completed to stay true after a non-completed session")
	}
}

func TestProgressMergeIdempotent(t *testing.T) {
	t.Parallel()
	now := time.Now()
	outcome := Outcome{Score: 2, Percentage: 66.7, Completed: false}

	p := NewProgress(uuid.New(), CategoryEnvironment)
	p.Merge(outcome, 3, now)
	first := *p

	// Re-delivering the same outcome must be a no-op on the merged state.
	p.Merge(outcome, 3, now)
	if *p != first {
		t.Errorf("Expected %+v after redelivery, got %+v", first, *p)
	}
}

func TestProgressMergeCommutative(t *testing.T) {
	t.Parallel()
	now := time.Now()
	outcomes := []Outcome{
		{Score: 1, Percentage: 33.3},
		{Score: 3, Percentage: 100, Completed: true},
		{Score: 2, Percentage: 66.7},
	}

	forward := NewProgress(uuid.New(), CategoryEmotions)
	for _, o := range outcomes {
		forward.Merge(o, 3, now)
	}

	backward := NewProgress(forward.UserID, CategoryEmotions)
	for i := len(outcomes) - 1; i >= 0; i-- {
		backward.Merge(outcomes[i], 3, now)
	}

	if *forward != *backward {
		t.Errorf("Expected order-independent merge, got %+v vs %+v", forward, backward)
	}
}

func TestProgressMergeClampsPercentage(t *testing.T) {
	t.Parallel()
	now := time.Now()
	p := NewProgress(uuid.New(), CategoryEmotions)

	p.Merge(Outcome{Score: 3, Percentage: 150}, 3, now)
	if p.Percentage != 100 {
		t.Errorf("Expected percentage clamped to 100, got %f", p.Percentage)
	}
	if p.CompletedCards != 3 {
		t.Errorf("Expected 3 completed cards, got %d", p.CompletedCards)
	}

	p2 := NewProgress(uuid.New(), CategoryEmotions)
	p2.Merge(Outcome{Score: 0, Percentage: -50}, 3, now)
	if p2.Percentage != 0 {
		t.Errorf("Expected percentage clamped to 0, got %f", p2.Percentage)
	}
}

func TestCompletedCardCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		percentage float64
		totalCards int
		want       int
	}{
		{"zero percent", 0, 3, 0},
		{"one third", 33.3, 3, 0},
		{"two thirds", 66.7, 3, 2},
		{"full deck", 100, 3, 3},
		{"partial rounds down", 50, 3, 1},
		{"empty category", 100, 0, 0},
		{"negative total", 100, -1, 0},
		{"larger deck", 75, 8, 6},
	}

	for _, tc := range cases {
		got := CompletedCardCount(tc.percentage, tc.totalCards)
		if got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
