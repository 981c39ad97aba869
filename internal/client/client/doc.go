// Package client talks to the banking backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface: authentication, account, card, transaction,
//     statement and transfer calls plus a liveness Ping.
//  2. HTTPClient, a JSON-over-HTTP implementation. Every request passes
//     through an authorizing transport that attaches the session's bearer
//     credential at send time and invalidates the session when the backend
//     answers 401. The 401 response itself is still returned to the caller.
//  3. Local database bootstrap (InitDatabase, RunMigrations) for the CLI,
//     an SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses become *APIError. APIError unwraps to ErrUnauthorized,
// ErrForbidden, ErrNotFound or ErrUnavailable depending on the status, and
// transport failures wrap ErrUnavailable, so callers can match with
// errors.Is. UserMessage turns any of them into text for the terminal.
package client
