package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confcompanion/internal/domain"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestWriteServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantError     string
		wantCode      any
		wantRetryable any
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: bad slug", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid input: bad slug",
			wantCode:   ErrCodeBadRequest,
		},
		{
			name:       "not found",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Session not found",
			wantCode:   ErrCodeNotFound,
		},
		{
			name:          "connection failure",
			err:           fmt.Errorf("list sessions: %w", domain.NewStorageError("list sessions", "database temporarily unavailable during list sessions", errors.New("refused"), true)),
			wantStatus:    http.StatusServiceUnavailable,
			wantError:     "Service temporarily unavailable, please try again",
			wantCode:      ErrCodeServiceUnavailable,
			wantRetryable: true,
		},
		{
			name:       "hard storage failure",
			err:        domain.NewStorageError("list sessions", "database error during list sessions", errors.New("syntax"), false),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch sessions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
			WriteServiceError(rr, req, logger, tt.err, "Session not found", "Failed to fetch sessions")

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			body := decodeBody(t, rr)
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantRetryable, body["retryable"])
		})
	}
}

type namedRequest struct {
	Name string `json:"name"`
}

func (r *namedRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		allowEmpty bool
		wantOK     bool
	}{
		{"valid", `{"name":"x"}`, false, true},
		{"unknown field", `{"name":"x","extra":1}`, false, false},
		{"validation failure", `{"name":" "}`, false, false},
		{"malformed", `{`, false, false},
		{"empty body rejected", ``, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest namedRequest
			ok := DecodeAndValidate(rr, req, &dest, tt.allowEmpty)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, ErrCodeBadRequest, decodeBody(t, rr)["code"])
			}
		})
	}

	t.Run("empty body allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var dest struct {
			Conference string `json:"conference"`
		}
		assert.True(t, DecodeAndValidate(rr, req, &dest, true))
	})
}
