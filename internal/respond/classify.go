package respond

import (
	"slices"

	"github.com/luikyv/go-authres/pkg/authres"
)

var promptNoneErrorCodes = []authres.ErrorCode{
	authres.ErrorCodeAccountSelectionRequired,
	authres.ErrorCodeLoginRequired,
	authres.ErrorCodeConsentRequired,
	authres.ErrorCodeInteractionRequired,
}

// returnsToClient reports whether the error result can be sent back to the
// client instead of being displayed to the end user. access_denied carries
// no sensitive detail and always goes back. The interaction required family
// of errors goes back only when the client requested a silent authorization
// with prompt none, since it then expects a machine readable answer rather
// than a page.
func returnsToClient(r authres.Result) bool {
	if r.Error.Code == authres.ErrorCodeAccessDenied {
		return true
	}

	return slices.Contains(promptNoneErrorCodes, r.Error.Code) &&
		r.Prompt == authres.PromptTypeNone
}
