// Package state holds the interaction state of a single combobox instance.
//
// # Overview
//
// A Store tracks four things: whether the option panel is open, which row is
// highlighted, where the panel is placed, and whether the panel still owes a
// scroll-to-top after opening. Every mutation goes through a transition
// method; fields are never written directly by callers.
//
// # Transitions
//
//	Closed --Open/Toggle--> Open     highlight=0, scroll reset requested
//	Open   --Close/Toggle-> Closed
//	Open   --Move(±1)-----> Open     clamps to [0, n-1], never wraps
//	Open   --Highlight(i)-> Open     pointer hover
//
// Each transition returns Effects so the owner can schedule follow-up work:
//
//	eff := store.Open()
//	if eff.Opened {
//		// schedule placement measurement, reset panel scroll
//	}
//	if eff.HighlightChanged {
//		// scroll the highlighted row into view
//	}
//
// Transitions that do not apply are silent no-ops: moving while closed,
// moving with an empty option list, opening an open store.
//
// # Concurrency
//
// The Store has no lock. It is owned by one component and mutated only from
// that component's Bubble Tea Update, which handles one message at a time.
//
// # Placement
//
// Placement is stored here but decided elsewhere (the combobox position
// resolver). The store only remembers the last decision; it is not reset on
// close, so a placement survives until the next open re-measures it.
package state
