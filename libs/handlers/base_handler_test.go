package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newBaseHandler() *BaseHandler {
	return &BaseHandler{Logger: zap.NewNop()}
}

func TestBaseHandler_RespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	newBaseHandler().RespondJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestBaseHandler_RespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	newBaseHandler().RespondError(rec, http.StatusNotFound, "course not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"course not found"}`, rec.Body.String())
}

func TestBaseHandler_RespondHTML(t *testing.T) {
	rec := httptest.NewRecorder()

	newBaseHandler().RespondHTML(rec, http.StatusOK, func(w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestBaseHandler_RespondHTMLWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	newBaseHandler().RespondHTML(rec, http.StatusOK, func(w io.Writer) error {
		return errors.New("template failure")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBaseHandler_DecodeJSON(t *testing.T) {
	type payload struct {
		Option *int `json:"option"`
	}

	tests := []struct {
		name          string
		body          string
		allowEmpty    bool
		expectedError bool
		expectedValue *int
	}{
		{name: "valid body", body: `{"option":2}`, expectedValue: intPtr(2)},
		{name: "empty body allowed", body: "", allowEmpty: true},
		{name: "empty body rejected", body: "", expectedError: true},
		{name: "unknown field", body: `{"choice":2}`, expectedError: true},
		{name: "malformed", body: `{"option":`, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload

			err := newBaseHandler().DecodeJSON(req, &dst, tt.allowEmpty)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid request body")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedValue, dst.Option)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
