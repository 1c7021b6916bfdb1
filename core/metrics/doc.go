// Package metrics exposes Prometheus collectors for storage operations.
//
// Every facade call is observed once with its operation name and a result
// label ("ok" or the error kind), and its duration is recorded in a
// histogram. The collectors live on a dedicated registry served by Handler.
package metrics
