// Package http implements the REST API of the notes server.
//
// Routes are registered on a chi router in routes.go. Every authenticated
// route runs behind the bearer-token middleware which stores the owner id in
// the request context; handlers never trust an owner id from the body.
//
// Errors from the service layer are translated by [statusFromError] and
// answered with a plain-text body from package app, which the client maps
// back to the same sentinel errors.
package http
