package request

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorValidate(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		assert.NoError(t, Descriptor{Method: method}.Validate(), method)
	}
	for _, method := range []string{"", "PATCH", "get", http.MethodHead} {
		assert.Error(t, Descriptor{Method: method}.Validate(), method)
	}
}

func TestBuilderBuild(t *testing.T) {
	ctx := context.Background()
	url := "http://api.test/api/v1/collections/"

	t.Run("body and token", func(t *testing.T) {
		req, err := Builder{}.Build(ctx, Descriptor{
			Method: http.MethodPost,
			Body:   map[string]string{"name": "Go"},
			Token:  "tok",
		}, url)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, url, req.URL.String())
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Go"}`, string(body))
	})

	t.Run("no body no token", func(t *testing.T) {
		req, err := Builder{}.Build(ctx, Descriptor{Method: http.MethodDelete}, url)
		require.NoError(t, err)

		assert.Nil(t, req.Body)
		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Empty(t, req.Cookies())
	})

	t.Run("extra option applied", func(t *testing.T) {
		req, err := Builder{}.Build(ctx, Descriptor{
			Method: http.MethodGet,
			Extra:  Header{"X-Revalidate": "60"},
		}, url)
		require.NoError(t, err)
		assert.Equal(t, "60", req.Header.Get("X-Revalidate"))
	})

	t.Run("extra non-option ignored", func(t *testing.T) {
		req, err := Builder{}.Build(ctx, Descriptor{
			Method: http.MethodGet,
			Extra:  map[string]int{"revalidate": 60},
		}, url)
		require.NoError(t, err)
		assert.Empty(t, req.Header.Get("revalidate"))
	})

	t.Run("unsupported method", func(t *testing.T) {
		_, err := Builder{}.Build(ctx, Descriptor{Method: "PATCH"}, url)
		assert.Error(t, err)
	})

	t.Run("unmarshalable body", func(t *testing.T) {
		_, err := Builder{}.Build(ctx, Descriptor{Method: http.MethodPost, Body: make(chan int)}, url)
		assert.ErrorContains(t, err, "marshal")
	})
}
