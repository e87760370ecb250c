package respond

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/luikyv/go-authres/pkg/authres"
)

// formPostScript auto submits the form once the document loads. Its hash is
// the only script execution the response's CSP allows, so the template must
// embed exactly this text.
const formPostScript = `window.addEventListener('load', function(){document.forms[0].submit();});`

const formPostTemplate = `<html><head><base target='_self'/></head><body>` +
	`<form method='post' action='{{.RedirectURI}}'>` +
	`{{range .Params}}<input type='hidden' name='{{.Name}}' value='{{.Value}}'/>{{end}}` +
	`<noscript><button>Click to continue</button></noscript>` +
	`</form>` +
	`<script>` + formPostScript + `</script>` +
	`</body></html>`

var formPostCSP = "default-src 'none'; script-src 'sha256-" + sha256Hash(formPostScript) + "'"

func sha256Hash(s string) string {
	hash := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// writeFormPost responds with the self submitting HTML form carrying the
// response parameters as hidden fields.
func writeFormPost(ctx Context, r authres.Result, params authres.Params) error {
	ctx.Response.Header().Set("Content-Security-Policy", formPostCSP)
	if ctx.Response.Header().Get("Referrer-Policy") == "" {
		ctx.Response.Header().Set("Referrer-Policy", "no-referrer")
	}
	ctx.Response.Header().Set("Cache-Control", "no-cache, no-store")
	ctx.Response.Header().Set("Pragma", "no-cache")

	return ctx.RenderHTML(formPostTemplate, struct {
		RedirectURI string
		Params      []authres.Param
	}{
		RedirectURI: r.RedirectURI,
		Params:      params.Pairs(),
	})
}
