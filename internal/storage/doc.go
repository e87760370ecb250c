// Package storage provides the default implementation of the storage
// interface [authres.ErrorContextManager].
//
// The implementation stores entities in memory so when the server restarts all
// of them are lost.
package storage
