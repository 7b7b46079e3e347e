// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and the request authorization
// pipeline. Every inbound request passes the same ordered middleware chain —
// forgery check, injection filter, token staleness check, login-state gate —
// before it is delegated to the service layer, and every response is wrapped
// in the uniform {success, status, result, data} envelope.
package http
