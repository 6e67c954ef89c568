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

// ProgressHandler handles outcome submissions and progress reads for the
// authenticated user.
type ProgressHandler struct {
	ledger progress.Ledger
	logger *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler with the given dependencies.
func NewProgressHandler(ledger progress.Ledger, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressHandler{
		ledger: ledger,
		logger: logger.With(slog.String("component", "progress_handler")),
	}
}

// SubmitOutcome handles POST /progress requests. The submitted outcome is
// merged into the stored record; the response is the record as persisted,
// which may exceed the submission if a better one was already recorded.
func (h *ProgressHandler) SubmitOutcome(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req SubmitProgressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	category := domain.Category(req.Category)
	outcome := domain.Outcome{
		Score:      req.Score,
		Percentage: req.Percentage,
		Completed:  req.Completed,
	}

	record, err := h.ledger.SubmitOutcome(r.Context(), userID, category, outcome)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrUnknownCategory):
			shared.RespondWithError(w, r, http.StatusNotFound, "Unknown category")
		case errors.Is(err, progress.ErrInvalidOutcome):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid outcome")
		default:
			h.logger.Error("failed to submit outcome",
				"error", redact.Error(err),
				"user_id", userID,
				"category", category)
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to record progress", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProgressResponse(record))
}

// GetOutcome handles GET /progress/{category} requests. A category the
// user has never played returns the empty record, not an error.
func (h *ProgressHandler) GetOutcome(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	category, err := getPathCategory(r)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	record, err := h.ledger.GetOutcome(r.Context(), userID, category)
	if err != nil {
		if errors.Is(err, progress.ErrUnknownCategory) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Unknown category")
			return
		}
		h.logger.Error("failed to get progress",
			"error", redact.Error(err),
			"user_id", userID,
			"category", category)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve progress", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProgressResponse(record))
}

// GetAllOutcomes handles GET /progress requests, returning a record per
// recognized category with the empty record standing in where the user
// has not played.
func (h *ProgressHandler) GetAllOutcomes(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.ledger.GetAllOutcomes(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get progress records",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve progress", err)
		return
	}

	resp := make([]ProgressResponse, 0, len(records))
	for _, category := range domain.Categories() {
		if record, ok := records[category]; ok {
			resp = append(resp, newProgressResponse(record))
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetSummary handles GET /progress/{category}/summary requests.
func (h *ProgressHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	category, err := getPathCategory(r)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	summary, err := h.ledger.Summarize(r.Context(), userID, category)
	if err != nil {
		if errors.Is(err, progress.ErrUnknownCategory) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Unknown category")
			return
		}
		h.logger.Error("failed to summarize progress",
			"error", redact.Error(err),
			"user_id", userID,
			"category", category)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve summary", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		Category:       summary.Category.String(),
		Name:           summary.Info.Name,
		Icon:           summary.Info.Icon,
		Color:          summary.Info.Color,
		CompletedCards: summary.CompletedCards,
		TotalCards:     summary.TotalCards,
		BestScore:      summary.BestScore,
		LastActivity:   summary.LastActivity,
		Progress:       summary.Progress,
	})
}

// newProgressResponse converts a merged record to its API shape. The
// update timestamp is omitted for records that have never been written.
func newProgressResponse(record *domain.Progress) ProgressResponse {
	resp := ProgressResponse{
		Category:       record.Category.String(),
		Score:          record.Score,
		Percentage:     record.Percentage,
		CompletedCards: record.CompletedCards,
		Completed:      record.Completed,
	}
	if !record.UpdatedAt.IsZero() {
		updatedAt := record.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
