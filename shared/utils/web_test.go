package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learnhouse-dev/learnhouse/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	type TestStruct struct {
		Field1 string `json:"field1"`
		Field2 int    `json:"field2"`
	}

	tests := []struct {
		name        string
		requestBody string
		expectedErr *errors.ErrorWithStatusCode
	}{
		{
			name:        "Valid JSON",
			requestBody: `{"field1": "value", "field2": 123}`,
		},
		{
			name:        "Invalid JSON",
			requestBody: `{"field1": "value", "field2": 123`, // Missing closing brace
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
		{
			name:        "Empty body",
			requestBody: ``,
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target TestStruct
			err := Decode(io.NopCloser(strings.NewReader(tt.requestBody)), &target)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, TestStruct{"value", 123}, target)
				return
			}
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"status error", &errors.ErrorWithStatusCode{Message: "Collection not found", StatusCode: http.StatusNotFound}, http.StatusNotFound, "Collection not found\n"},
		{"wrapped status error", fmt.Errorf("get: %w", &errors.ErrorWithStatusCode{Message: "nope", StatusCode: http.StatusForbidden}), http.StatusForbidden, "get: nope\n"},
		{"plain error", fmt.Errorf("backend unavailable"), http.StatusInternalServerError, "backend unavailable\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteErrorAndStatusCode(rr, tt.err)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, map[string]string{"name": "Go"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Go"}`, rr.Body.String())
}
