// Package combobox implements an accessible single-choice dropdown for
// Bubble Tea programs.
//
// A Model shows the bound option in a collapsed control. Opening it reveals a
// panel listing every option; the user picks one with the arrow keys and
// Enter/Space, or by clicking a row. The component never changes the bound
// value itself: it calls Props.OnChange and emits a ChangeMsg, and the host
// answers with SetValue.
//
// # Input
//
// Keys are interpreted only when addressed to the control's own id, either
// through document.KeyEvent (when mounted on a document) or as a plain
// tea.KeyMsg while the control is focused. Pointer input arrives as
// tea.MouseMsg in screen coordinates; the host reports where the control is
// drawn with SetOrigin.
//
// # Placement
//
// After each open the control measures itself once, one message round trip
// later, and places the panel above itself when the rows left below are not
// enough. The decision is not revisited while the panel stays open.
//
// # Identity
//
// Options are compared by pointer. Two options with equal Value fields are
// still distinct, and only the exact pointer passed as the value is shown as
// selected. Committing the bound pointer again is silently ignored.
package combobox
