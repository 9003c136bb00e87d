package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginValidationMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	var testCases = []struct {
		description string
		allowed     []string
		origin      string
		expect      int
	}{
		{description: "no origin", expect: http.StatusOK},
		{description: "loopback origin", origin: "http://localhost:3000", expect: http.StatusOK},
		{description: "loopback ip origin", origin: "http://127.0.0.1:8080", expect: http.StatusOK},
		{description: "remote origin", origin: "https://evil.example.com", expect: http.StatusForbidden},
		{description: "allowed origin", allowed: []string{"https://app.example.com"}, origin: "https://app.example.com", expect: http.StatusOK},
		{description: "loopback with allowlist", allowed: []string{"https://app.example.com"}, origin: "http://localhost:3000", expect: http.StatusForbidden},
		{description: "wildcard", allowed: []string{"*"}, origin: "https://evil.example.com", expect: http.StatusOK},
	}
	for _, testCase := range testCases {
		handler := originValidationMiddleware(testCase.allowed)(ok)
		request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if testCase.origin != "" {
			request.Header.Set("Origin", testCase.origin)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expect, recorder.Code, testCase.description)
	}
}

func TestProtocolVersionMiddleware(t *testing.T) {
	handler := protocolVersionMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	for version, expect := range map[string]int{
		"":           http.StatusOK,
		"2025-03-26": http.StatusOK,
		"1999-01-01": http.StatusBadRequest,
	} {
		request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if version != "" {
			request.Header.Set(protocolVersionHeader, version)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, expect, recorder.Code, version)
	}
}

func TestServer_HTTP(t *testing.T) {
	srv, err := New(WithToolbox(&testToolbox{}))
	assert.NoError(t, err)
	httpServer := srv.HTTP(context.Background(), "")
	assert.Equal(t, DefaultHTTPAddr, httpServer.Addr)

	recorder := httptest.NewRecorder()
	httpServer.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, DefaultStreamableURI, nil)
	request.Header.Set("Origin", "https://evil.example.com")
	httpServer.Handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
