// Package cli provides the interactive bank command-line client.
//
// The REPL reads one command per line and prints results to stdout; logs go
// to stderr. Commands that show account data consult the session store and
// answer "Please log in first." without a session. A background watcher
// pings the backend every OnlineCheckInterval and shows online/offline in
// the prompt; it never inspects the credential, so an expired session is
// noticed at the next request that the backend rejects.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - Dashboard: accounts, primary card, recent transactions
//   - History and Cards
//   - Transfer from the primary account
//   - Statement of the primary account
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
