package dispatch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/luikyv/go-authres/internal/respond"
	"github.com/luikyv/go-authres/pkg/authres"
)

func TestNew(t *testing.T) {
	// Given.
	errorURL := "https://op.example.com/error"

	// When.
	d, err := New(errorURL)

	// Then.
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(
		*d.config,
		respond.Configuration{
			ErrorURL:      errorURL,
			ErrorURLParam: defaultErrorURLParam,
		},
		cmpopts.IgnoreFields(
			respond.Configuration{},
			"ErrorContextManager",
			"NowFunc",
		),
	); diff != "" {
		t.Error(diff)
	}

	if d.config.ErrorContextManager == nil {
		t.Error("the default error context storage was not set")
	}

	if d.config.NowFunc == nil {
		t.Error("the default time source was not set")
	}
}

func TestNew_ErrorURLPath(t *testing.T) {
	// When.
	_, err := New("/error")

	// Then.
	if err != nil {
		t.Errorf("an absolute path should be accepted, got %v", err)
	}
}

func TestNew_InvalidErrorURL(t *testing.T) {
	// Given.
	testCases := []string{
		"",
		"error",
		"op.example.com/error",
	}

	for i, testCase := range testCases {
		t.Run(
			fmt.Sprintf("case %v", i),
			func(t *testing.T) {
				// When.
				_, err := New(testCase)

				// Then.
				if err == nil {
					t.Errorf("an error was expected for the error url %q", testCase)
				}
			},
		)
	}

}

func TestNew_InvalidAugmenter(t *testing.T) {
	// When.
	_, err := New("https://op.example.com/error", WithAugmenters(nil))

	// Then.
	if err == nil {
		t.Error("an error was expected for a nil augmenter")
	}
}

func TestDispatch(t *testing.T) {
	// Given.
	d, err := New("https://op.example.com/error")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/authorize", nil)

	var params authres.Params
	params.Set("code", "random_code")
	result := authres.Result{
		ClientID:     "random_client_id",
		RedirectURI:  "https://client.example.com/callback",
		ResponseMode: authres.ResponseModeQuery,
		State:        "random_state",
		Params:       params,
	}

	// When.
	err = d.Dispatch(w, r, result)

	// Then.
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusSeeOther {
		t.Errorf("Code = %d, want %d", w.Code, http.StatusSeeOther)
	}

	location := w.Header().Get("Location")
	want := "https://client.example.com/callback?code=random_code&state=random_state"
	if location != want {
		t.Errorf("Location = %s, want %s", location, want)
	}
}

func TestDispatch_ErrorRoutedToErrorPage(t *testing.T) {
	// Given.
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	d, err := New(
		"https://op.example.com/error",
		WithNowFunc(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/authorize", nil)
	result := authres.Result{
		ClientID: "random_client_id",
		Error:    authres.NewError(authres.ErrorCodeInvalidScope, "scope not allowed"),
	}

	// When.
	err = d.Dispatch(w, r, result)

	// Then.
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	location := w.Header().Get("Location")
	prefix := "https://op.example.com/error?id="
	if !strings.HasPrefix(location, prefix) {
		t.Fatalf("Location = %s, want prefix %s", location, prefix)
	}

	// The error page loads the record referenced by the redirect.
	id := strings.TrimPrefix(location, prefix)
	pageResp := httptest.NewRecorder()
	pageReq := httptest.NewRequest(http.MethodGet, "/error?id="+id, nil)
	d.ErrorPageHandler().ServeHTTP(pageResp, pageReq)

	if pageResp.Code != http.StatusOK {
		t.Errorf("Code = %d, want %d", pageResp.Code, http.StatusOK)
	}

	body := pageResp.Body.String()
	if !strings.Contains(body, "invalid_scope") {
		t.Errorf("the error page should describe the error, got %s", body)
	}
}

func TestWriteError(t *testing.T) {
	// Given.
	d, err := New("https://op.example.com/error")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/authorize", nil)

	// When.
	d.WriteError(w, r, authres.NewError(authres.ErrorCodeInvalidRequest, "the request is not valid"))

	// Then.
	if w.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", w.Code, http.StatusBadRequest)
	}

	if !strings.Contains(w.Body.String(), "invalid_request") {
		t.Errorf("the response should carry the error code, got %s", w.Body.String())
	}
}

func TestWriteError_Internal(t *testing.T) {
	// Given.
	d, err := New("https://op.example.com/error")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/authorize", nil)

	// When.
	d.WriteError(w, r, authres.UnsupportedResponseModeError{Mode: "web_message"})

	// Then.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	if !strings.Contains(w.Body.String(), "server_error") {
		t.Errorf("the response should carry a generic error, got %s", w.Body.String())
	}
}
