// Package respond implements the delivery of authorization responses.
//
// Given a computed [authres.Result] it decides whether the outcome goes back
// to the client directly, as a redirect or an auto submitting form, or, for
// errors that must not reach the client, routes the user agent to the error
// display surface with a reference to the persisted error context.
package respond
