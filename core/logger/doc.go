// Package logger builds the Zap logger shared by the server and the CLI.
//
// The "debug" level selects Zap's development config. Any other level uses
// the production config at that level. Format picks json or console encoding.
//
// WithRayID attaches the request's ray id to a logger so every line written
// while serving a request can be correlated with the X-Ray-ID header.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.Error(err))
package logger
