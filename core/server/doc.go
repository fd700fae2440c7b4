// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// settings it needs: the listen port, the CORS origin of the marketing front end,
// the API prefix every feature is mounted under, and the request body ceiling.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start.go when building the Fiber application.
package server
