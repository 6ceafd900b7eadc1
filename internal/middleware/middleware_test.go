package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoBody(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	_, _ = w.Write(b)
}

func TestJSONBody(t *testing.T) {
	h := JSONBody(16)(http.HandlerFunc(echoBody))

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "no body passes", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "json body passes", method: http.MethodPost, body: `{"name":"x"}`, contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "form body rejected", method: http.MethodPost, body: "name=x", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing content type rejected", method: http.MethodPatch, body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "oversized body cut", method: http.MethodPost, body: `{"name":"a very long name"}`, contentType: "application/json", wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, "/animal", body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestJSONBody_UnsupportedTypeBody(t *testing.T) {
	h := JSONBody(DefaultBodyLimit)(http.HandlerFunc(echoBody))

	req := httptest.NewRequest(http.MethodPost, "/animal", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"content type must be application/json","kind":"validation"}`, w.Body.String())
}

func TestJSONBody_HandlerGetsOriginalWriter(t *testing.T) {
	h := JSONBody(DefaultBodyLimit)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, wrapped := w.(unsupportedTypeWriter)
		assert.False(t, wrapped)
		w.WriteHeader(http.StatusUnsupportedMediaType)
	}))

	req := httptest.NewRequest(http.MethodPost, "/animal", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/animal/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/animal/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/animal/123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusTeapot, w.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/animal/{id}", "418"))
	assert.Equal(t, before+1, after)
}
