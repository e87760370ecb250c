package respond_test

import (
	"fmt"
	"testing"

	"github.com/luikyv/go-authres/internal/respond"
	"github.com/luikyv/go-authres/pkg/authres"
)

func TestURLWithQueryParams(t *testing.T) {
	// Given.
	testCases := []struct {
		url      string
		params   []authres.Param
		expected string
	}{
		{"http://example", []authres.Param{{Name: "param1", Value: "value1"}}, "http://example?param1=value1"},
		{"http://example?param=value", []authres.Param{{Name: "param1", Value: "value1"}}, "http://example?param=value&param1=value1"},
		{"http://example", []authres.Param{{Name: "param1", Value: "value1"}, {Name: "param2", Value: "value2"}}, "http://example?param1=value1&param2=value2"},
		{"http://example", nil, "http://example"},
	}

	for i, testCase := range testCases {
		t.Run(
			fmt.Sprintf("case %v", i),
			func(t *testing.T) {
				// When.
				got := respond.URLWithQueryParams(testCase.url, paramsOf(testCase.params...))

				// Then.
				if got != testCase.expected {
					t.Errorf("URLWithQueryParams() = %s, want %s", got, testCase.expected)
				}
			},
		)
	}

}

func TestURLWithFragmentParams(t *testing.T) {
	// Given.
	testCases := []struct {
		url      string
		params   []authres.Param
		expected string
	}{
		{"http://example", []authres.Param{{Name: "param1", Value: "value1"}}, "http://example#param1=value1"},
		{"http://example", []authres.Param{{Name: "param1", Value: "https://localhost"}}, "http://example#param1=https%3A%2F%2Flocalhost"},
		{"http://example?param=value", []authres.Param{{Name: "param1", Value: "value1"}}, "http://example?param=value#param1=value1"},
		{"http://example", []authres.Param{{Name: "param1", Value: "value1"}, {Name: "param2", Value: "value2"}}, "http://example#param1=value1&param2=value2"},
		{"http://example", nil, "http://example"},
	}

	for i, testCase := range testCases {
		t.Run(
			fmt.Sprintf("case %v", i),
			func(t *testing.T) {
				// When.
				got := respond.URLWithFragmentParams(testCase.url, paramsOf(testCase.params...))

				// Then.
				if got != testCase.expected {
					t.Errorf("URLWithFragmentParams() = %s, want %s", got, testCase.expected)
				}
			},
		)
	}

}

func TestRedirectURL(t *testing.T) {
	// Given.
	testCases := []struct {
		result   authres.Result
		params   []authres.Param
		expected string
	}{
		{
			authres.Result{RedirectURI: "http://example", ResponseMode: authres.ResponseModeQuery},
			[]authres.Param{{Name: "code", Value: "random_code"}, {Name: "state", Value: "random_state"}},
			"http://example?code=random_code&state=random_state",
		},
		{
			authres.Result{RedirectURI: "http://example", ResponseMode: authres.ResponseModeFragment},
			[]authres.Param{{Name: "code", Value: "random_code"}},
			"http://example#code=random_code",
		},
		{
			authres.Result{
				RedirectURI:  "http://example",
				ResponseMode: authres.ResponseModeQuery,
				Error:        authres.NewError(authres.ErrorCodeAccessDenied, ""),
			},
			[]authres.Param{{Name: "error", Value: "access_denied"}},
			"http://example?error=access_denied#_=_",
		},
		{
			authres.Result{
				RedirectURI:  "http://example",
				ResponseMode: authres.ResponseModeFragment,
				Error:        authres.NewError(authres.ErrorCodeAccessDenied, ""),
			},
			[]authres.Param{{Name: "error", Value: "access_denied"}},
			"http://example#error=access_denied",
		},
	}

	for i, testCase := range testCases {
		t.Run(
			fmt.Sprintf("case %v", i),
			func(t *testing.T) {
				// When.
				got, err := respond.RedirectURL(testCase.result, paramsOf(testCase.params...))

				// Then.
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if got != testCase.expected {
					t.Errorf("RedirectURL() = %s, want %s", got, testCase.expected)
				}
			},
		)
	}

}

func TestRedirectURL_UnsupportedResponseMode(t *testing.T) {
	// Given.
	result := authres.Result{
		RedirectURI:  "http://example",
		ResponseMode: authres.ResponseModeFormPost,
	}

	// When.
	_, err := respond.RedirectURL(result, authres.Params{})

	// Then.
	if err == nil {
		t.Fatal("an error was expected for a response mode that is not a redirection")
	}
}

func TestURLWithParam(t *testing.T) {
	// Given.
	testCases := []struct {
		url      string
		param    string
		value    string
		expected string
	}{
		{"http://example/error", "id", "random_id", "http://example/error?id=random_id"},
		{"http://example/error?tenant=main", "id", "random_id", "http://example/error?id=random_id&tenant=main"},
		{"http://example/error?id=old_id", "id", "new_id", "http://example/error?id=new_id"},
	}

	for i, testCase := range testCases {
		t.Run(
			fmt.Sprintf("case %v", i),
			func(t *testing.T) {
				// When.
				got := respond.URLWithParam(testCase.url, testCase.param, testCase.value)

				// Then.
				if got != testCase.expected {
					t.Errorf("URLWithParam() = %s, want %s", got, testCase.expected)
				}
			},
		)
	}

}

func paramsOf(pairs ...authres.Param) authres.Params {
	var params authres.Params
	for _, pair := range pairs {
		params.Set(pair.Name, pair.Value)
	}

	return params
}
