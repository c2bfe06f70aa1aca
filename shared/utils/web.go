package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/learnhouse-dev/learnhouse/shared/errors"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	// default error is 500
	http.Error(w, err.Error(), errors.StatusCodeOf(err))
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "error", err)
	}
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("decoding request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}
