package respond

import (
	"fmt"

	"github.com/luikyv/go-authres/pkg/authres"
)

// Dispatch delivers the authorization result to the client. Successful
// results and errors the client is allowed to see go straight back through
// the negotiated response mode. Any other error is persisted and the user
// agent is redirected to the error display surface instead.
//
// When Dispatch returns nil exactly one response has been written. On
// failure nothing has been written and the caller decides how to surface
// the error.
func Dispatch(ctx Context, r authres.Result) error {
	if r.IsError() && !returnsToClient(r) {
		return routeError(ctx, r)
	}

	return deliver(ctx, r)
}

func deliver(ctx Context, r authres.Result) error {
	// The session collaborator is notified before any part of the response
	// is built.
	if !r.IsError() {
		if err := ctx.NotifyClientAuthorized(r.ClientID); err != nil {
			return fmt.Errorf("could not notify the client authorization: %w", err)
		}
	}

	params, err := augmentedParams(ctx, r)
	if err != nil {
		return err
	}

	switch r.ResponseMode {
	case authres.ResponseModeQuery, authres.ResponseModeFragment:
		u, err := redirectURL(r, params)
		if err != nil {
			return err
		}
		ctx.Redirect(u)
		return nil
	case authres.ResponseModeFormPost:
		return writeFormPost(ctx, r, params)
	default:
		return authres.UnsupportedResponseModeError{Mode: r.ResponseMode}
	}
}

// deliveryParams assembles the parameter set sent to the client before
// augmentation. Error results carry the error parameters plus the state
// echo. Successful results carry the issued artifacts, with the state echo
// added when the caller did not place it there already.
func deliveryParams(r authres.Result) authres.Params {
	if r.IsError() {
		var params authres.Params
		params.Set("error", string(r.Error.Code))
		if r.Error.Description != "" {
			params.Set("error_description", r.Error.Description)
		}
		if r.State != "" {
			params.Set("state", r.State)
		}
		return params
	}

	params := r.Params.Clone()
	if r.State != "" && params.Get("state") == "" {
		params.Set("state", r.State)
	}
	return params
}

func augmentedParams(ctx Context, r authres.Result) (authres.Params, error) {
	params := deliveryParams(r)
	for _, augmenter := range ctx.Augmenters {
		if err := augmenter.Augment(ctx, r, &params); err != nil {
			return authres.Params{}, authres.NewAugmentationError(augmenter.ID(), err)
		}
	}

	return params, nil
}
