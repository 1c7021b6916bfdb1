// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from these settings. An
// empty ApiKey leaves the API open, which is only meant for local use.
package server
