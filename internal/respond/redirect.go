package respond

import (
	"net/url"
	"strings"

	"github.com/luikyv/go-authres/pkg/authres"
)

// redirectURL builds the URL the user agent is sent to for results
// delivered as a redirect. Error responses delivered without a fragment get
// the suffix "#_=_" so that a leftover fragment from a previous navigation
// can never be interpreted as part of the response.
func redirectURL(r authres.Result, params authres.Params) (string, error) {
	var u string
	switch r.ResponseMode {
	case authres.ResponseModeQuery:
		u = urlWithQueryParams(r.RedirectURI, params)
	case authres.ResponseModeFragment:
		u = urlWithFragmentParams(r.RedirectURI, params)
	default:
		return "", authres.UnsupportedResponseModeError{Mode: r.ResponseMode}
	}

	if r.IsError() && !strings.Contains(u, "#") {
		u += "#_=_"
	}

	return u, nil
}

// urlWithQueryParams appends params to the query of redirectURI keeping any
// query the URI already has.
func urlWithQueryParams(redirectURI string, params authres.Params) string {
	if params.Len() == 0 {
		return redirectURI
	}

	separator := "?"
	if strings.Contains(redirectURI, "?") {
		separator = "&"
	}
	return redirectURI + separator + params.Encode()
}

func urlWithFragmentParams(redirectURI string, params authres.Params) string {
	if params.Len() == 0 {
		return redirectURI
	}

	return redirectURI + "#" + params.Encode()
}

// urlWithParam sets a single query parameter on u, replacing it if present.
func urlWithParam(u, param, value string) string {
	parsedURL, err := url.Parse(u)
	if err != nil {
		return u
	}

	query := parsedURL.Query()
	query.Set(param, value)
	parsedURL.RawQuery = query.Encode()
	return parsedURL.String()
}
