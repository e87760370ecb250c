package respond

import (
	"time"

	"github.com/luikyv/go-authres/pkg/authres"
)

type Configuration struct {
	ErrorContextManager authres.ErrorContextManager
	// UserSessionManager, when informed, is notified of every client that
	// received a successful authorization response.
	UserSessionManager authres.UserSessionManager

	// ErrorURL is the URL of the error display surface users are redirected
	// to when an error cannot be returned to the client.
	ErrorURL string
	// ErrorURLParam is the query parameter added to ErrorURL carrying the id
	// of the persisted error context.
	ErrorURLParam string
	// Augmenters add parameters to outgoing responses. They run sequentially
	// in the order they appear here.
	Augmenters []authres.Augmenter

	// NowFunc returns the current time.
	NowFunc func() time.Time

	RenderErrorFunc authres.RenderErrorFunc
	NotifyErrorFunc authres.NotifyErrorFunc
}
