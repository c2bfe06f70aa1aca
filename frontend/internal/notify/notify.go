// Package notify holds transient user notifications: a loading message that
// is later replaced, under the same ID, by a success or error message.
package notify

import (
	"context"
	"time"
)

type ID string

type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID        ID        `json:"id"`
	Owner     string    `json:"-"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notifier is the display surface used by the api client.
type Notifier interface {
	Loading(ctx context.Context, msg string) ID
	Success(ctx context.Context, id ID, msg string)
	Error(ctx context.Context, id ID, msg string)
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Loading(context.Context, string) ID  { return "" }
func (discard) Success(context.Context, ID, string) {}
func (discard) Error(context.Context, ID, string)   {}
