// Package cli provides the interactive imob command-line client.
//
// It wires the Store, the filter engine and the description generator into
// a line-oriented REPL. Typical flow: seed the store on first start, restore
// the saved session, then execute user commands until exit.
//
// Key features:
//   - Login / Logout / Whoami (mock login by email)
//   - Browse: list with criteria, show details, mine
//   - Manage own listings: add, edit, import from JSON, delete
//   - Draft descriptions with a generation model
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
