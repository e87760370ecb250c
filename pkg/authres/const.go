// Package authres defines the types and contracts used to deliver
// authorization responses back to client applications.
package authres

// ResponseMode defines how authorization response parameters are sent back
// to the client application.
type ResponseMode string

const (
	ResponseModeQuery    ResponseMode = "query"
	ResponseModeFragment ResponseMode = "fragment"
	ResponseModeFormPost ResponseMode = "form_post"
)

// IsRedirection returns whether response parameters are delivered by
// redirecting the user agent, either in the query or in the fragment.
func (rm ResponseMode) IsRedirection() bool {
	return rm == ResponseModeQuery || rm == ResponseModeFragment
}

// PromptType defines the type of user interaction the client requested
// during authorization.
type PromptType string

const (
	PromptTypeNone          PromptType = "none"
	PromptTypeLogin         PromptType = "login"
	PromptTypeConsent       PromptType = "consent"
	PromptTypeSelectAccount PromptType = "select_account"
)

// DisplayValue defines how the authorization server displays authentication
// and consent user interfaces to the end user.
type DisplayValue string

const (
	DisplayValuePage  DisplayValue = "page"
	DisplayValuePopup DisplayValue = "popup"
	DisplayValueTouch DisplayValue = "touch"
	DisplayValueWAP   DisplayValue = "wap"
)
