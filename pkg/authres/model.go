package authres

import (
	"net/url"
	"slices"
	"strings"
)

// Result is the outcome of processing an authorization request. Either the
// success fields or Error is populated, never both. A result is owned by
// the dispatch of a single request and is not mutated by it.
type Result struct {
	// ClientID identifies the client the response is addressed to.
	ClientID string
	// RedirectURI is the base redirect target negotiated when the request
	// was accepted. It is trusted as is at this layer.
	RedirectURI string
	// ResponseMode determines how the response parameters are delivered.
	ResponseMode ResponseMode
	// State echoes the state parameter of the original request.
	State string
	// Params holds the issued response artifacts, e.g. the authorization
	// code, tokens and session state.
	Params Params
	// Error is non nil when the authorization failed.
	Error *Error
	// Prompt echoes the prompt parameter of the original request.
	Prompt PromptType
	// Display echoes the display parameter of the original request. It is
	// forwarded to the error display surface.
	Display DisplayValue
	// UILocales echoes the ui_locales parameter of the original request. It
	// is forwarded to the error display surface.
	UILocales string
}

func (r Result) IsError() bool {
	return r.Error != nil
}

// Param is a single response parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered collection of response parameters. The zero value is
// ready to use. Unlike url.Values, serialization preserves the order in
// which parameters were first set.
type Params struct {
	pairs []Param
}

// Set adds the parameter or, if the name is already present, replaces its
// value keeping the original position.
func (p *Params) Set(name, value string) {
	for i, pair := range p.pairs {
		if pair.Name == name {
			p.pairs[i].Value = value
			return
		}
	}

	p.pairs = append(p.pairs, Param{Name: name, Value: value})
}

// Get returns the value set for name or an empty string.
func (p Params) Get(name string) string {
	for _, pair := range p.pairs {
		if pair.Name == name {
			return pair.Value
		}
	}

	return ""
}

func (p Params) Len() int {
	return len(p.pairs)
}

// Pairs returns the parameters in insertion order.
func (p Params) Pairs() []Param {
	return slices.Clone(p.pairs)
}

func (p Params) Clone() Params {
	return Params{pairs: slices.Clone(p.pairs)}
}

// Encode serializes the parameters as a URL encoded query string in
// insertion order.
func (p Params) Encode() string {
	var encoded strings.Builder
	for i, pair := range p.pairs {
		if i > 0 {
			encoded.WriteByte('&')
		}
		encoded.WriteString(url.QueryEscape(pair.Name))
		encoded.WriteByte('=')
		encoded.WriteString(url.QueryEscape(pair.Value))
	}

	return encoded.String()
}

// ErrorContext is the snapshot persisted when an error must be shown to the
// end user instead of being returned to the client. The error display
// surface loads it by id to render the page. RedirectURI and ResponseMode
// are only filled when the result still carried a redirect target the user
// could be sent to afterwards.
type ErrorContext struct {
	// ID is the correlation id assigned by the store when the record is
	// saved.
	ID                 string       `json:"id" bson:"_id"`
	ErrorCode          ErrorCode    `json:"error" bson:"error"`
	ErrorDescription   string       `json:"error_description,omitempty" bson:"error_description,omitempty"`
	UILocales          string       `json:"ui_locales,omitempty" bson:"ui_locales,omitempty"`
	Display            DisplayValue `json:"display,omitempty" bson:"display,omitempty"`
	ClientID           string       `json:"client_id,omitempty" bson:"client_id,omitempty"`
	RedirectURI        string       `json:"redirect_uri,omitempty" bson:"redirect_uri,omitempty"`
	ResponseMode       ResponseMode `json:"response_mode,omitempty" bson:"response_mode,omitempty"`
	CreatedAtTimestamp int          `json:"created_at" bson:"created_at"`
}
