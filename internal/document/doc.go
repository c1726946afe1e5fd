// Package document owns the screen-wide resources shared by widgets: key
// listeners and the page scroll lock.
//
// A widget acquires what it needs when it mounts and must give it back when
// it unmounts. Every acquisition returns a Release; releases are idempotent
// and a Scope gathers them so teardown is one call:
//
//	var scope document.Scope
//	release, err := doc.Listen(id, handler)
//	if err != nil {
//		scope.Close()
//		return err
//	}
//	scope.Add(release)
//	...
//	scope.Close() // on unmount
//
// The scroll lock is held per owner. The page is locked while at least one
// owner holds it, so two widgets cannot unlock each other's hold.
//
// Key events are dispatched to every listener with the id of the focused
// element as Target. Filtering by target is the listener's job.
package document
