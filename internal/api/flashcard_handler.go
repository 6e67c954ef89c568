package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aprendia/aprendia-api/internal/api/shared"
	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/redact"
	"github.com/aprendia/aprendia-api/internal/service/progress"
)

// FlashcardHandler serves the read-only flashcard catalog.
type FlashcardHandler struct {
	catalog progress.Catalog
	logger  *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler with the given dependencies.
func NewFlashcardHandler(catalog progress.Catalog, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "flashcard_handler")),
	}
}

// ListByCategory handles GET /flashcards/{category} requests. Cards are
// returned in catalog order; a recognized category with no cards yields
// an empty list.
func (h *FlashcardHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := getPathCategory(r)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	cards, err := h.catalog.ListCards(r.Context(), category)
	if err != nil {
		if errors.Is(err, progress.ErrUnknownCategory) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Unknown category")
			return
		}
		h.logger.Error("failed to list flashcards",
			"error", redact.Error(err),
			"category", category)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve flashcards", err)
		return
	}

	resp := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, newFlashcardResponse(card))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func newFlashcardResponse(card domain.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:            card.ID,
		Category:      card.Category.String(),
		Question:      card.Question,
		ImageURL:      card.ImageURL,
		Options:       card.Options,
		CorrectOption: card.CorrectOption,
		Feedback:      card.Feedback,
	}
}
