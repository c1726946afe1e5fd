// Package config loads the form definition for the combo demo.
//
// # Overview
//
// The demo host renders a vertical form of comboboxes. Which fields appear,
// what they offer and what each one starts out bound to all come from a TOML
// file, so the same binary can exercise short lists, long scrolling lists,
// duplicate values and empty lists without recompiling.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/combo/config.toml (default)
//  3. If the config file doesn't exist, fall back to the demo form
//  4. If the file exists but declares no fields, use the demo fields
//
// # File Format
//
//	max_visible = 6        # rows shown before a panel scrolls
//	smooth_scroll = true   # animate keyboard auto-scroll
//
//	[[field]]
//	id = "fruit"
//	label = "Fruit"
//	value = "banana"
//	options = [
//	  { label = "Apple", value = "apple" },
//	  { label = "Banana", value = "banana" },
//	]
//
// Option values must be strings or numbers; anything else fails with
// ErrInvalidValue. Values need not be unique. The field's value binds to the
// first option carrying an equal value, and an unmatched value leaves the
// field empty. Numbers compare by value, so value = 2.0 binds an option
// declared as 2; a string never equals a number. Field ids must be unique; a missing id becomes field-<n>.
//
// # Error Handling
//
// A missing file is not an error. Open, read and parse failures are wrapped
// with context ("open config: ...", "parse config: ...") and returned to the
// caller, which aborts startup.
package config
