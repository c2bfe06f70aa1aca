package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/request"
	"github.com/learnhouse-dev/learnhouse/shared/api"
)

// Identifiers are put into paths as given, without escaping. Responses are
// returned as the backend sent them.

// DeleteCollection deletes a collection. It returns nil when the backend call
// failed; the user has been shown an error notification.
func (c *APIClient) DeleteCollection(ctx context.Context, collectionUUID, token string) json.RawMessage {
	return payload(mutate[json.RawMessage](ctx, c, "delete_collection",
		fmt.Sprintf("collections/%s", collectionUUID),
		request.Descriptor{Method: http.MethodDelete, Token: token},
		feedback{
			loading: "Deleting collection...",
			success: "Deleted colletion",
			failure: "Couldn't delete collection",
		}))
}

// CreateCollection creates a new collection. Failures return nil, see
// DeleteCollection.
func (c *APIClient) CreateCollection(ctx context.Context, collection api.CreateCollectionRequest, token string) json.RawMessage {
	return payload(mutate[json.RawMessage](ctx, c, "create_collection",
		"collections/",
		request.Descriptor{Method: http.MethodPost, Body: collection, Token: token},
		feedback{
			loading: "Creating...",
			success: "New collection created",
			failure: "Couldn't create collection",
		}))
}

// GetCollectionByID returns one collection. Errors are returned unchanged and
// no notification is shown.
func (c *APIClient) GetCollectionByID(ctx context.Context, collectionUUID, token string, extra any) (json.RawMessage, error) {
	raw, err := read[json.RawMessage](ctx, c, "get_collection",
		fmt.Sprintf("collections/collection_%s", collectionUUID),
		request.Descriptor{Method: http.MethodGet, Extra: extra, Token: token})
	if err != nil {
		return nil, err
	}
	return payload(&raw), nil
}

// GetOrgCollections returns the first page (10 items) of an organization's
// collections. token may be empty for public collections. Errors are
// returned unchanged and no notification is shown.
func (c *APIClient) GetOrgCollections(ctx context.Context, orgID, token string, extra any) (json.RawMessage, error) {
	raw, err := read[json.RawMessage](ctx, c, "get_org_collections",
		fmt.Sprintf("collections/org/%s/page/1/limit/10", orgID),
		request.Descriptor{Method: http.MethodGet, Extra: extra, Token: token})
	if err != nil {
		return nil, err
	}
	return payload(&raw), nil
}

// payload unwraps a decoded response. nil stays nil (failed call); an empty
// success body becomes a JSON null so it is not mistaken for a failure.
func payload(raw *json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	if len(*raw) == 0 {
		return json.RawMessage("null")
	}
	return *raw
}
