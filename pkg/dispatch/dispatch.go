package dispatch

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/luikyv/go-authres/internal/respond"
	"github.com/luikyv/go-authres/internal/storage"
	"github.com/luikyv/go-authres/internal/timeutil"
	"github.com/luikyv/go-authres/pkg/authres"
)

type Dispatcher struct {
	config *respond.Configuration
}

// New creates a new response dispatcher.
// errorURL is where user agents are sent when an authorization error cannot
// be returned to the client application. By default, error contexts are
// stored in memory and the record's id is added to the error URL as the
// query parameter "id".
func New(
	errorURL string,
	opts ...DispatcherOption,
) (
	Dispatcher,
	error,
) {

	d := Dispatcher{
		config: &respond.Configuration{
			ErrorURL: errorURL,
		},
	}

	for _, opt := range opts {
		if err := opt(&d); err != nil {
			return Dispatcher{}, err
		}
	}

	d.setDefaults()

	if err := d.validate(); err != nil {
		return Dispatcher{}, err
	}

	return d, nil
}

// Dispatch delivers result to the client application that initiated the
// authorization. When the returned error is nil exactly one response was
// written to w. Otherwise nothing was written and the caller decides how to
// answer the request, e.g. with [Dispatcher.WriteError].
func (d Dispatcher) Dispatch(
	w http.ResponseWriter,
	r *http.Request,
	result authres.Result,
) error {
	ctx := respond.NewContext(w, r, d.config)
	return respond.Dispatch(ctx, result)
}

// WriteError answers the request with err when a result could not be
// delivered.
func (d Dispatcher) WriteError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	ctx := respond.NewContext(w, r, d.config)
	ctx.WriteError(err)
}

// ErrorPageHandler returns the HTTP handler that renders the error display
// page.
// This may be used to mount the page on an HTTP server.
//
//	server := http.NewServeMux()
//	server.Handle("/error", d.ErrorPageHandler())
func (d Dispatcher) ErrorPageHandler() http.HandlerFunc {
	return respond.Handler(d.config, respond.HandleErrorPage)
}

func (d Dispatcher) setDefaults() {
	d.config.ErrorURLParam = nonEmptyOrDefault(
		d.config.ErrorURLParam,
		defaultErrorURLParam,
	)
	d.config.ErrorContextManager = nonNilOrDefault(
		d.config.ErrorContextManager,
		authres.ErrorContextManager(storage.NewErrorContextManager(defaultErrorContextMaxSize)),
	)
	d.config.NowFunc = nonNilOrDefault(
		d.config.NowFunc,
		timeutil.Now,
	)
}

func (d Dispatcher) validate() error {
	return runValidations(
		d.config,
		validateErrorURL,
		validateAugmenters,
	)
}

func runValidations(
	config *respond.Configuration,
	validations ...func(*respond.Configuration) error,
) error {
	for _, validation := range validations {
		if err := validation(config); err != nil {
			return err
		}
	}

	return nil
}

func validateErrorURL(config *respond.Configuration) error {
	if config.ErrorURL == "" {
		return errors.New("an error url must be informed")
	}

	parsedURL, err := url.Parse(config.ErrorURL)
	if err != nil || (!parsedURL.IsAbs() && !strings.HasPrefix(config.ErrorURL, "/")) {
		return errors.New("the error url must be absolute or an absolute path")
	}

	return nil
}

func validateAugmenters(config *respond.Configuration) error {
	for _, augmenter := range config.Augmenters {
		if augmenter == nil || augmenter.ID() == "" {
			return errors.New("augmenters must be informed with an id")
		}
	}

	return nil
}

func nonEmptyOrDefault[T any](s1 T, s2 T) T {
	if reflect.ValueOf(s1).String() == "" {
		return s2
	}

	return s1
}

func nonNilOrDefault[T any](s1 T, s2 T) T {
	v := reflect.ValueOf(s1)
	if !v.IsValid() || v.IsNil() {
		return s2
	}

	return s1
}
