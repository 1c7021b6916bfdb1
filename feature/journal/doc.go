// Package journal records every successful mutation of the object store.
//
// Uploads, fetches, copies, moves, renames and deletes issued through the
// objects feature are appended to the storage_journal table when a database
// is configured. Journal failures never fail the storage operation itself.
//
// # HTTP Endpoints
//
//   - GET /journal?limit=50 : Lists the most recent entries, newest first.
package journal
