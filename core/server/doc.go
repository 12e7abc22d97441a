// Package server holds configuration for the HTTP gateway.
//
// The gateway itself is assembled in cmd/serve.go; this package only carries
// the listen port and the optional API key that protects the endpoints.
package server
