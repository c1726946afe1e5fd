// Package ui provides the demo host for the combobox: a form of labeled
// comboboxes on a scrolling page, built with Bubble Tea.
//
// # Architecture Overview
//
// Model owns a document.Document, the page viewport and one combobox.Model
// per configured field. Every field is mounted on the document when the
// model is built and unmounted by Close, so key listeners and scroll locks
// never outlive the program.
//
// # Package Structure
//
//   - app.go: Model, Update routing, focus movement, page sync and Run
//   - render.go: Header, footer and the accessibility inspector line
//   - keys.go: Host key bindings; the field bindings come from combobox
//   - help.go, modal.go: The help overlay, drawn as a Modal
//   - theme.go: Color themes and their mapping onto combobox styles
//   - style_helpers.go: Background-safe rendering for the header and footer bars
//   - layout.go: Geometry constants
//
// # Input Routing
//
// Keys go to the host bindings first (quit, help, theme, inspector, Tab and
// paging). Anything else is dispatched through the document with the focused
// field's id as the target, so only that field reacts.
//
// Pointer events go to the topmost field under the pointer: an open panel
// wins over the page beneath it. A click blurs every other field, and a
// click on empty page blurs them all. The wheel scrolls an open panel when
// over it and the page otherwise.
//
// # Page Scrolling
//
// PgUp, PgDn and the wheel scroll the page unless the document's scroll lock
// is held, which happens while a panel opened from the keyboard is open.
// After every update the page content is rebuilt and each field learns its
// new screen origin, so hit testing and panel placement follow the scroll.
//
// # Overlays
//
// Open panels are not part of the page. View composites each one over the
// finished screen at the position its field reports, so a panel flipped
// above its control can cover the header.
//
// # Themes
//
// T cycles Nightfox, Kanagawa and Slate. The choice is written to the prefs
// file; committed values are not persisted.
package ui
