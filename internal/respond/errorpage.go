package respond

import (
	"errors"
	"fmt"

	"github.com/luikyv/go-authres/internal/timeutil"
	"github.com/luikyv/go-authres/pkg/authres"
)

// routeError persists the error context and redirects the user agent to the
// error display surface with the record's id appended to the error URL.
func routeError(ctx Context, r authres.Result) error {
	ec := authres.ErrorContext{
		ErrorCode:          r.Error.Code,
		ErrorDescription:   r.Error.Description,
		UILocales:          r.UILocales,
		Display:            r.Display,
		ClientID:           r.ClientID,
		CreatedAtTimestamp: timeutil.Timestamp(ctx.Now()),
	}

	// The record keeps the fully built redirect when the result still
	// carries a target the user could be sent to from the error page. That
	// redirect is not issued here.
	if r.RedirectURI != "" && r.ResponseMode.IsRedirection() {
		params, err := augmentedParams(ctx, r)
		if err != nil {
			return err
		}

		u, err := redirectURL(r, params)
		if err != nil {
			return err
		}

		ec.RedirectURI = u
		ec.ResponseMode = r.ResponseMode
	}

	id, err := ctx.SaveErrorContext(ec)
	if err != nil {
		return fmt.Errorf("could not save the error context: %w", err)
	}

	ctx.Redirect(urlWithParam(ctx.ErrorURL, ctx.ErrorURLParam, id))
	return nil
}

// HandleErrorPage serves the error display surface. The error context
// referenced by the request is consumed by the read and the page is
// rendered with it.
func HandleErrorPage(ctx Context) {
	id := ctx.Request.URL.Query().Get(ctx.ErrorURLParam)

	var ec authres.ErrorContext
	if id != "" {
		loaded, err := ctx.ErrorContextByID(id)
		if err != nil && errors.Is(err, authres.ErrStoreUnavailable) {
			ctx.WriteError(err)
			return
		}
		if err == nil {
			ec = loaded
			// A failed cleanup does not prevent rendering.
			_ = ctx.DeleteErrorContext(id)
		}
	}

	if err := ctx.RenderErrorPage(ec); err != nil {
		ctx.WriteError(err)
	}
}

const errorPageTemplate = `<html><head><title>Authorization error</title></head><body>` +
	`<h1>Authorization error</h1>` +
	`{{if .ErrorCode}}<p>{{.ErrorCode}}{{if .ErrorDescription}}: {{.ErrorDescription}}{{end}}</p>` +
	`{{else}}<p>The error details are no longer available.</p>{{end}}` +
	`{{if .RedirectURI}}<p><a href='{{.RedirectURI}}'>Return to the application</a></p>{{end}}` +
	`</body></html>`
