// Package middleware groups the Fiber middleware shared by every feature.
//
// # Components
//
//   - auth: Rejects requests without the configured X-API-Key. An empty key
//     disables the check, and listed paths (the metrics endpoint) skip it.
//   - rayid: Assigns each request a ray id, reusing a short enough incoming
//     X-Ray-ID. The id is stored in the locals, echoed in the response and
//     carried in the user context so storage operations can journal it.
//
// cmd/start.go registers rayid first so every later log line carries the id.
package middleware
