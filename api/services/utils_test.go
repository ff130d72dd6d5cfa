package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexoteam/directorio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEsFalsy(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		falsy bool
	}{
		{"absent", nil, true},
		{"empty string", "", true},
		{"zero number", float64(0), true},
		{"false", false, true},
		{"non-empty string", "Ana", false},
		{"non-zero number", float64(30), false},
		{"true", true, false},
		{"list", []interface{}{}, false},
		{"object", map[string]interface{}{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.falsy, esFalsy(tc.value))
		})
	}
}

func TestWriteResponse_SetsHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponse(w, http.StatusOK, models.Response{Mensaje: "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=0", w.Header().Get("Cache-Control"))
}

func TestWriteResponse_NilBodyWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponse(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleErrResponse_OmitsEmptyDetalle(t *testing.T) {
	w := httptest.NewRecorder()

	HandleErrResponse(w, http.StatusBadRequest, "campo obligatorio", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "campo obligatorio")
	assert.NotContains(t, w.Body.String(), "detalle")
}

func TestHandleErrResponse_IncludesDetalle(t *testing.T) {
	w := httptest.NewRecorder()

	HandleErrResponse(w, http.StatusInternalServerError, "error de almacenamiento",
		errors.New("connection reset"))

	assert.Contains(t, w.Body.String(), "connection reset")
}

func TestSalud_OK(t *testing.T) {
	store := &MockStore{}
	store.On("Ping", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/salud", nil)
	w := httptest.NewRecorder()

	SaludService(newTestService(store), w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"ok"`)
}

func TestSalud_DatabaseDown(t *testing.T) {
	store := &MockStore{}
	store.On("Ping", mock.Anything).Return(errors.New("no reachable servers"))

	req := httptest.NewRequest(http.MethodGet, "/salud", nil)
	w := httptest.NewRecorder()

	SaludService(newTestService(store), w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
