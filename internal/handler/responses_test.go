package handler

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondJSON(w, http.StatusCreated, map[string]int{"n": 1})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, ContentTypeJSON, w.Header().Get(HeaderContentType))
		assert.JSONEq(t, `{"n": 1}`, w.Body.String())
	})

	t.Run("encode failure becomes a 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondJSON(w, http.StatusOK, math.NaN())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "`+ErrMsgGenericServerError+`"}`, w.Body.String())
	})
}

func TestHandleMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	HandleMethodNotAllowed()(w, httptest.NewRequest(http.MethodPost, "/api/status", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get(HeaderAllow))
	assert.Equal(t, ContentTypeJSON, w.Header().Get(HeaderContentType))
	assert.JSONEq(t, `{"error": "`+ErrMsgMethodNotAllowed+`"}`, w.Body.String())
}
