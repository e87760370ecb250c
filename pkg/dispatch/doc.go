// Package dispatch implements the delivery of authorization responses to
// client applications.
//
// A new dispatcher can be configured with [DispatcherOption]s and
// instantiated using [New]. By default error contexts are stored in memory.
//
// It is highly recommended to change the default storage with a custom
// implementation of [authres.ErrorContextManager]. For more info, see
// [WithErrorContextStorage].
package dispatch

import (
	"github.com/luikyv/go-authres/pkg/authres"
)

var _ authres.ErrorContextManager
