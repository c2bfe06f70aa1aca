// Package request builds outgoing backend requests and turns backend
// responses into values or errors.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Doer is the part of *http.Client the api client needs.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// RequestBuilder turns a descriptor into a ready to send request.
type RequestBuilder interface {
	Build(ctx context.Context, d Descriptor, url string) (*http.Request, error)
}

// Option is applied to the outgoing request when passed as Descriptor.Extra.
type Option interface {
	Apply(req *http.Request)
}

// Descriptor is everything needed to build one backend request.
type Descriptor struct {
	Method string
	Body   any // JSON encoded when non-nil
	Extra  any // applied when it implements Option, ignored otherwise
	Token  string
}

func (d Descriptor) Validate() error {
	switch d.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return nil
	default:
		return fmt.Errorf("unsupported method %q", d.Method)
	}
}

// Header is an Option that sets request headers.
type Header map[string]string

func (h Header) Apply(req *http.Request) {
	for k, v := range h {
		req.Header.Set(k, v)
	}
}

// Builder is the default RequestBuilder: JSON body plus bearer auth header.
type Builder struct{}

func (Builder) Build(ctx context.Context, d Descriptor, url string) (*http.Request, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var body io.Reader
	if d.Body != nil {
		raw, err := json.Marshal(d.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.Token)
	}
	if opt, ok := d.Extra.(Option); ok {
		opt.Apply(req)
	}
	return req, nil
}
