package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	internal_errors "github.com/learnhouse-dev/learnhouse/shared/errors"
)

// ResponseHandler maps a raw backend response to a decoded value or an error.
type ResponseHandler interface {
	Handle(resp *http.Response, out any) error
}

// Handler is the default ResponseHandler. It closes the response body.
type Handler struct {
	policy *bluemonday.Policy
}

func NewHandler() *Handler {
	return &Handler{policy: bluemonday.StrictPolicy()}
}

func (h *Handler) Handle(resp *http.Response, out any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    h.errorMessage(resp, bodyBytes),
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage prefers the FastAPI "detail" field, then the raw body, then
// the status line.
func (h *Handler) errorMessage(resp *http.Response, body []byte) string {
	msg := ""
	var detail struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != nil {
		if s, ok := detail.Detail.(string); ok {
			msg = s
		} else if raw, err := json.Marshal(detail.Detail); err == nil {
			// validation errors come back as a list of objects
			msg = string(raw)
		}
	} else {
		msg = string(body)
	}

	// strip markup, keep the text readable
	msg = strings.TrimSpace(html.UnescapeString(h.sanitizer().Sanitize(msg)))
	if msg == "" {
		msg = resp.Status
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
	}
	return msg
}

func (h *Handler) sanitizer() *bluemonday.Policy {
	if h.policy == nil {
		return bluemonday.StrictPolicy()
	}
	return h.policy
}
