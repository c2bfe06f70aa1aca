package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/notify"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/request"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
)

// URLBuilder yields the backend API prefix, including the trailing slash.
type URLBuilder interface {
	APIURL() string
}

// BaseURL is a fixed URLBuilder.
type BaseURL string

func (u BaseURL) APIURL() string { return string(u) }

// APIClient handles all communication with the LearnHouse backend API.
// Every collaborator is replaceable; New wires the defaults.
type APIClient struct {
	URL        URLBuilder
	HttpClient request.Doer
	Builder    request.RequestBuilder
	Handler    request.ResponseHandler
	Notifier   notify.Notifier
}

// New creates a client for the backend at baseURL. Notifications are
// discarded until a notifier is attached with WithNotifier.
func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		URL:        BaseURL(baseURL),
		HttpClient: &http.Client{Timeout: timeout},
		Builder:    request.Builder{},
		Handler:    request.NewHandler(),
		Notifier:   notify.Discard,
	}
}

// WithNotifier returns a copy of the client that reports to n.
func (c *APIClient) WithNotifier(n notify.Notifier) *APIClient {
	cp := *c
	cp.Notifier = n
	return &cp
}

func (c *APIClient) notifier() notify.Notifier {
	if c.Notifier == nil {
		return notify.Discard
	}
	return c.Notifier
}

// feedback is the fixed text shown around a mutating call.
type feedback struct {
	loading string
	success string
	failure string
}

// call sends exactly one request and decodes the answer. Errors are returned
// as produced by the collaborators.
func call[T any](ctx context.Context, c *APIClient, op, path string, d request.Descriptor) (T, error) {
	var out T
	start := time.Now()

	req, err := c.Builder.Build(ctx, d, c.URL.APIURL()+path)
	if err != nil {
		observe(op, start, err)
		return out, err
	}

	logger.Log.Debug("sending api request", "operation", op, "method", d.Method, "path", path)
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		observe(op, start, err)
		return out, err
	}

	err = c.Handler.Handle(resp, &out)
	observe(op, start, err)
	return out, err
}

// mutate wraps a call in a loading notification that is replaced by the
// success or failure text. Failures are reported only through the
// notification: the result is nil and the error is dropped.
func mutate[T any](ctx context.Context, c *APIClient, op, path string, d request.Descriptor, fb feedback) *T {
	n := c.notifier()
	id := n.Loading(ctx, fb.loading)

	out, err := call[T](ctx, c, op, path, d)
	if err != nil {
		logger.Log.Warn("api request failed", "operation", op, "method", d.Method, "path", path, "error", err)
		n.Error(ctx, id, fb.failure)
		return nil
	}

	n.Success(ctx, id, fb.success)
	return &out
}

// read performs a call without notifications or recovery.
func read[T any](ctx context.Context, c *APIClient, op, path string, d request.Descriptor) (T, error) {
	return call[T](ctx, c, op, path, d)
}
