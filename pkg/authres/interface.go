package authres

import (
	"context"
	"net/http"
)

// ErrorContextManager persists error snapshots for the error display
// surface. Retention and expiry of the records are the store's concern.
type ErrorContextManager interface {
	// Save persists ec and returns the correlation id assigned to it.
	// Failures to persist are wrapped with ErrStoreUnavailable.
	Save(ctx context.Context, ec ErrorContext) (string, error)
	ErrorContextByID(ctx context.Context, id string) (ErrorContext, error)
	Delete(ctx context.Context, id string) error
}

// UserSessionManager coordinates the end user session with the clients that
// were handed authorization responses.
type UserSessionManager interface {
	// NotifyClientAuthorized records that clientID received a successful
	// authorization response, which enables coordinated sign out later.
	NotifyClientAuthorized(ctx context.Context, clientID string) error
}

// RenderErrorFunc renders the error display page for the error context
// loaded from the store. ec is the zero value when the record could not be
// found, e.g. because it already expired.
type RenderErrorFunc func(w http.ResponseWriter, r *http.Request, ec ErrorContext) error

// NotifyErrorFunc is called with errors that abort a dispatch, e.g. to log
// them.
type NotifyErrorFunc func(r *http.Request, err error)
