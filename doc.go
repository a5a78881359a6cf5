// Package stockdesk implements a terminal admin console for a stock and
// portfolio backend.
//
// The backend owns all state; this module is a pure client. The root
// package holds the value records exchanged with the backend (Stock,
// StockPrice, Order, Holding) together with the wire timestamp format,
// field validation and display helpers. Subpackages:
//
//   - api: the HTTP client for the backend REST endpoints.
//   - console: the interactive terminal UI.
//   - renderer: markdown reports for the non-interactive commands.
//   - cmd: the CLI subcommands.
//   - docs: embedded documentation topics.
package stockdesk
