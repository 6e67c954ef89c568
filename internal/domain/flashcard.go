package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty or nil.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardQuestionEmpty is returned when a flashcard's question is empty.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardTooFewOptions is returned when a flashcard has fewer than two options.
	ErrFlashcardTooFewOptions = errors.New("flashcard must have at least two options")

	// ErrFlashcardCorrectOptionOutOfRange is returned when the correct option index
	// does not point into the options list.
	ErrFlashcardCorrectOptionOutOfRange = errors.New("flashcard correct option index out of range")

	// ErrFlashcardPositionInvalid is returned when a flashcard's position
	// within its category is not a positive number.
	ErrFlashcardPositionInvalid = errors.New("flashcard position must be positive")
)

// Flashcard represents a single question card in the catalog.
// Cards are seeded once at startup and immutable thereafter; the option
// list is persisted as a JSON array and parsed back on read, never
// evaluated as code. Position is the card's 1-based place within its
// category and fixes the order cards are played in.
type Flashcard struct {
	ID            uuid.UUID `json:"id"`
	Category      Category  `json:"category"`
	Question      string    `json:"question"`
	ImageURL      string    `json:"image_url"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	Feedback      string    `json:"feedback"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewFlashcard creates a new Flashcard for the given category.
// It generates a new UUID for the card ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewFlashcard(
	category Category,
	question, imageURL string,
	options []string,
	correctOption int,
	feedback string,
	position int,
) (*Flashcard, error) {
	card := &Flashcard{
		ID:            uuid.New(),
		Category:      category,
		Question:      question,
		ImageURL:      imageURL,
		Options:       options,
		CorrectOption: correctOption,
		Feedback:      feedback,
		Position:      position,
		CreatedAt:     time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (f *Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if !f.Category.Valid() {
		return ErrUnknownCategory
	}

	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}

	if len(f.Options) < 2 {
		return ErrFlashcardTooFewOptions
	}

	if f.CorrectOption < 0 || f.CorrectOption >= len(f.Options) {
		return ErrFlashcardCorrectOptionOutOfRange
	}

	if f.Position < 1 {
		return ErrFlashcardPositionInvalid
	}

	return nil
}
