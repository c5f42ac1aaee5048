package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorError(t *testing.T) {
	err := New(http.StatusNotFound, "NOT_FOUND", "missing")
	assert.Equal(t, "missing", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.ErrorCode)
}

func TestAPIErrorRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/panels/nope", nil)

	require.NoError(t, render.Render(w, r, ErrPanelNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PANEL_NOT_FOUND")
}

func TestErrInvalidDate(t *testing.T) {
	err := ErrInvalidDate("start", "not-a-date")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "start", details["param"])
}
