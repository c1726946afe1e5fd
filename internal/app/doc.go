// Package app is the composition root for the combo demo.
//
// # Overview
//
// Run wires configuration, preferences and logging into the UI and blocks
// until the program exits:
//
//  1. Open the debug log when a path is given (tea.LogToFile); otherwise
//     discard log output, since the terminal belongs to the TUI
//  2. Load the form definition (config.Load), falling back to the demo form
//  3. Load preferences (prefs.Load); a --theme flag overrides the saved theme
//  4. Start the UI (ui.Run) with the caller's context
//
// # Error Handling
//
// Config and log failures abort startup with a wrapped error. Preference
// problems never do: prefs.Load degrades to defaults. Cancelling the context
// ends the program cleanly.
package app
