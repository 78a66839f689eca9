// Package cli provides the interactive expense tracker command-line client.
//
// It wires configuration, the local session database, the HTTP API client
// and the three pages (login, registration, dashboard) behind a small REPL
// that acts as the client-side router. Typical flow: restore a saved session
// straight into the dashboard, or fall back to the login page and prompt for
// credentials.
//
// Key features:
//   - Login / Register / Logout
//   - Dashboard with the monthly income, savings and expense targets
//   - Updating the targets
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, router and runREPL for details.
package cli
