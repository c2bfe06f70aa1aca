package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/request"
	"github.com/learnhouse-dev/learnhouse/shared/api"
)

// UpdatePassword changes a user's password and returns the backend's answer
// as sent. It returns nil when the backend call failed; the user has been
// shown an error notification.
func (c *APIClient) UpdatePassword(ctx context.Context, userID string, data api.UpdatePasswordRequest, token string) json.RawMessage {
	return payload(mutate[json.RawMessage](ctx, c, "update_password",
		"users/change_password/"+userID,
		request.Descriptor{Method: http.MethodPut, Body: data, Token: token},
		feedback{
			loading: "Changing...",
			success: "Password changed",
			failure: "Couldn't change password",
		}))
}
