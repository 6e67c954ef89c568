package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/mocks"
)

func newFlashcardTestRouter(catalog *mocks.MockCatalog) http.Handler {
	handler := NewFlashcardHandler(catalog, nil)

	r := chi.NewRouter()
	r.Get("/flashcards/{category}", handler.ListByCategory)
	return r
}

func TestListByCategory(t *testing.T) {
	t.Parallel()
	router := newFlashcardTestRouter(mocks.NewMockCatalog(domain.DefaultFlashcards()))

	req := httptest.NewRequest("GET", "/flashcards/emociones", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []FlashcardResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp, 3)

	for _, card := range resp {
		assert.Equal(t, "emociones", card.Category)
		assert.NotEmpty(t, card.Question)
		assert.GreaterOrEqual(t, len(card.Options), 2)
		assert.GreaterOrEqual(t, card.CorrectOption, 0)
		assert.Less(t, card.CorrectOption, len(card.Options))
	}
}

func TestListByCategoryUnknown(t *testing.T) {
	t.Parallel()
	router := newFlashcardTestRouter(mocks.NewMockCatalog(nil))

	req := httptest.NewRequest("GET", "/flashcards/animales", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListByCategoryEmpty(t *testing.T) {
	t.Parallel()
	router := newFlashcardTestRouter(mocks.NewMockCatalog(nil))

	req := httptest.NewRequest("GET", "/flashcards/entorno", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []FlashcardResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Empty(t, resp)
}
