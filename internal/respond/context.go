package respond

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/luikyv/go-authres/internal/timeutil"
	"github.com/luikyv/go-authres/pkg/authres"
)

type Context struct {
	Response http.ResponseWriter
	Request  *http.Request
	*Configuration
}

func NewContext(
	w http.ResponseWriter,
	r *http.Request,
	config *Configuration,
) Context {
	return Context{
		Configuration: config,
		Response:      w,
		Request:       r,
	}
}

func Handler(
	config *Configuration,
	exec func(ctx Context),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exec(NewContext(w, r, config))
	}
}

//---------------------------------------- Collaborators ----------------------------------------//

func (ctx Context) NotifyClientAuthorized(clientID string) error {
	if ctx.UserSessionManager == nil {
		return nil
	}

	return ctx.UserSessionManager.NotifyClientAuthorized(ctx.Context(), clientID)
}

func (ctx Context) SaveErrorContext(ec authres.ErrorContext) (string, error) {
	return ctx.ErrorContextManager.Save(ctx.Context(), ec)
}

func (ctx Context) ErrorContextByID(id string) (authres.ErrorContext, error) {
	return ctx.ErrorContextManager.ErrorContextByID(ctx.Context(), id)
}

func (ctx Context) DeleteErrorContext(id string) error {
	return ctx.ErrorContextManager.Delete(ctx.Context(), id)
}

func (ctx Context) Now() time.Time {
	if ctx.NowFunc == nil {
		return timeutil.Now()
	}

	return ctx.NowFunc()
}

func (ctx Context) NotifyError(err error) {
	if ctx.NotifyErrorFunc == nil {
		return
	}

	ctx.NotifyErrorFunc(ctx.Request, err)
}

func (ctx Context) RenderErrorPage(ec authres.ErrorContext) error {
	if ctx.RenderErrorFunc == nil {
		return ctx.RenderHTML(errorPageTemplate, ec)
	}

	return ctx.RenderErrorFunc(ctx.Response, ctx.Request, ec)
}

//---------------------------------------- HTTP Utils ----------------------------------------//

// Redirect sends the user agent to redirectURL with caching disabled.
func (ctx Context) Redirect(redirectURL string) {
	ctx.Response.Header().Set("Cache-Control", "no-cache, no-store")
	ctx.Response.Header().Set("Pragma", "no-cache")
	http.Redirect(ctx.Response, ctx.Request, redirectURL, http.StatusSeeOther)
}

// Write responds the current request writing obj as JSON.
func (ctx Context) Write(obj any, status int) error {
	// Check if the request was terminated before writing anything.
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(obj); err != nil {
		return err
	}

	return nil
}

func (ctx Context) WriteError(err error) {

	ctx.NotifyError(err)

	var wireErr *authres.Error
	if !errors.As(err, &wireErr) {
		if err := ctx.Write(map[string]any{
			"error":             authres.ErrorCodeServerError,
			"error_description": "internal error",
		}, http.StatusInternalServerError); err != nil {
			ctx.Response.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if err := ctx.Write(wireErr, wireErr.Code.StatusCode()); err != nil {
		ctx.Response.WriteHeader(http.StatusInternalServerError)
	}
}

func (ctx Context) RenderHTML(
	html string,
	params any,
) error {
	// Check if the request was terminated before writing anything.
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	ctx.Response.Header().Set("Content-Type", "text/html")
	ctx.Response.WriteHeader(http.StatusOK)
	tmpl, _ := template.New("default").Parse(html)
	return tmpl.Execute(ctx.Response, params)
}

//---------------------------------------- context.Context ----------------------------------------//

func (ctx Context) Context() context.Context {
	return ctx.Request.Context()
}

func (ctx Context) Deadline() (deadline time.Time, ok bool) {
	return ctx.Context().Deadline()
}

func (ctx Context) Done() <-chan struct{} {
	return ctx.Context().Done()
}

func (ctx Context) Err() error {
	return ctx.Context().Err()
}

func (ctx Context) Value(key any) any {
	return ctx.Context().Value(key)
}
