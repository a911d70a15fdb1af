// Package repl provides the interactive shell for moneytracker-cli.
//
// One shell keeps a single session and a single set of data sources alive
// across lines, so mock-mode edits and the signed-in user persist until
// exit:
//
//   - repl.go: read loop, builtins (exit, quit, history, complete), Split
//   - completer.go: prefix completion over command paths
//   - history.go: bounded line history persisted to a file
package repl
