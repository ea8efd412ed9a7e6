// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/constants"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
	"github.com/taibuivan/tutorbook/internal/platform/middleware"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

type devConfig bool

func (c devConfig) IsDevelopment() bool { return bool(c) }

/*
TestRequestID checks that well-formed client ids are kept and anything else is replaced.
*/
func TestRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"client_id", "cli-42.a_b", true},
		{"missing", "", false},
		{"spaces", "bad id", false},
		{"newline", "id\nforged", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
				seen = ctxutil.GetRequestID(request.Context())
			}))

			request := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderXRequestID, tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.Len(t, seen, 36)
			}
		})
	}
}

func TestStructuredLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := middleware.RequestID()(middleware.StructuredLogger(logger)(http.HandlerFunc(
		func(writer http.ResponseWriter, request *http.Request) {
			ctxutil.GetLogger(request.Context()).Info("inside")
			writer.WriteHeader(http.StatusNotFound)
		})))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/persons/x", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), request)

	output := buffer.String()
	assert.Contains(t, output, `"msg":"inside"`)
	assert.Contains(t, output, `"msg":"http_request_finished"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"status":404`)
	assert.Contains(t, output, `"request_id":"req-1"`)

	// Probes drop below the configured level.
	buffer.Reset()
	probe := middleware.StructuredLogger(logger)(okHandler)
	probe.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buffer.String())
}

/*
TestRateLimit checks the bucket is per client address and answers with the error envelope.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	handler := middleware.RateLimit(ctx, 1, 2)(okHandler)
	send := func(remote string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.RemoteAddr = remote
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusOK, send("127.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, send("127.0.0.1:5001").Code)

	limited := send("127.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(limited.Body.Bytes(), &body))
	assert.Equal(t, apperr.CodeRateLimited, body["code"])

	assert.Equal(t, http.StatusOK, send("127.0.0.2:5000").Code)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/commands", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
	assert.NotContains(t, recorder.Body.String(), "boom")
}

/*
TestCORS covers origin checks per environment and pre-flight handling.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		method  string
		origin  string
		allowed bool
		status  int
	}{
		{"dev_any_origin", true, http.MethodGet, "https://example.com", true, http.StatusOK},
		{"prod_remote_origin", false, http.MethodGet, "https://example.com", false, http.StatusOK},
		{"prod_localhost", false, http.MethodGet, "http://localhost:5173", true, http.StatusOK},
		{"prod_ipv6_loopback", false, http.MethodGet, "http://[::1]:3000", true, http.StatusOK},
		{"preflight", false, http.MethodOptions, "http://127.0.0.1:5173", true, http.StatusNoContent},
		{"no_origin", false, http.MethodGet, "", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/api/v1/persons", nil)
			if tt.origin != "" {
				request.Header.Set(constants.HeaderOrigin, tt.origin)
			}
			recorder := httptest.NewRecorder()
			middleware.CORS(devConfig(tt.dev))(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestIsLoopbackOrigin(t *testing.T) {
	assert.True(t, middleware.IsLoopbackOrigin("http://127.0.0.9"))
	assert.False(t, middleware.IsLoopbackOrigin("http://localhost.evil.com"))
	assert.False(t, middleware.IsLoopbackOrigin("::not a url"))
}
