package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogger_AddsLoggerToContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		// A disabled logger means nothing was bound to the context.
		assert.NotEqual(t, zerolog.Disabled, logger.GetLevel())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	w := httptest.NewRecorder()

	mw := WithLogger(next)
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithLogger_PassesRequestThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/grupos", r.URL.Path)
	})

	req := httptest.NewRequest(http.MethodGet, "/grupos", nil)
	w := httptest.NewRecorder()

	WithLogger(next).ServeHTTP(w, req)

	assert.True(t, called)
}
