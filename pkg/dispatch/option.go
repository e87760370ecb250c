package dispatch

import (
	"time"

	"github.com/luikyv/go-authres/pkg/authres"
)

type DispatcherOption func(d *Dispatcher) error

// WithErrorContextStorage replaces the default error context storage which
// keeps the records stored in memory.
func WithErrorContextStorage(
	storage authres.ErrorContextManager,
) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.ErrorContextManager = storage
		return nil
	}
}

// WithUserSessionManager informs the dispatcher of the user session layer so
// that it records which clients were handed authorization responses.
func WithUserSessionManager(
	manager authres.UserSessionManager,
) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.UserSessionManager = manager
		return nil
	}
}

// WithErrorURLParam overrides the name of the query parameter carrying the
// error context id which is [defaultErrorURLParam].
func WithErrorURLParam(param string) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.ErrorURLParam = param
		return nil
	}
}

// WithAugmenters registers augmenters that add parameters to outgoing
// responses. They run in the order informed.
func WithAugmenters(augmenters ...authres.Augmenter) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.Augmenters = append(d.config.Augmenters, augmenters...)
		return nil
	}
}

// WithIssuerResponseParameter adds the iss parameter to authorization
// responses so clients can validate which authorization server issued them.
func WithIssuerResponseParameter(issuer string) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.Augmenters = append(d.config.Augmenters, authres.NewIssuerAugmenter(issuer))
		return nil
	}
}

// WithNowFunc replaces the time source used to stamp error contexts.
func WithNowFunc(nowFunc func() time.Time) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.NowFunc = nowFunc
		return nil
	}
}

// WithRenderErrorFunc replaces the default error display page with a custom
// renderer.
func WithRenderErrorFunc(render authres.RenderErrorFunc) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.RenderErrorFunc = render
		return nil
	}
}

// WithNotifyErrorFunc defines a handler to be executed when a response
// cannot be written, e.g. to log the failure.
func WithNotifyErrorFunc(notify authres.NotifyErrorFunc) DispatcherOption {
	return func(d *Dispatcher) error {
		d.config.NotifyErrorFunc = notify
		return nil
	}
}
