package document

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrDuplicateOwner is returned when an owner registers a second key listener.
var ErrDuplicateOwner = errors.New("listener already registered")

// KeyEvent is a key press addressed to the element that currently holds
// focus. Target is that element's id; listeners decide whether it is theirs.
type KeyEvent struct {
	Target string
	Key    tea.KeyMsg
}

// KeyHandler reacts to a dispatched key event.
type KeyHandler func(KeyEvent) tea.Cmd

// Release gives back a resource acquired from a Document. Calling it more
// than once is harmless.
type Release func()

// Document holds the resources that span every widget on screen: the key
// listeners and the page scroll lock.
type Document struct {
	mu        sync.Mutex
	listeners map[string]KeyHandler
	locks     map[string]struct{}
}

// New returns an empty document.
func New() *Document {
	return &Document{
		listeners: make(map[string]KeyHandler),
		locks:     make(map[string]struct{}),
	}
}

// Listen registers handler under owner. An owner may hold one listener.
func (d *Document) Listen(owner string, handler KeyHandler) (Release, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.listeners[owner]; ok {
		return nil, fmt.Errorf("listen %q: %w", owner, ErrDuplicateOwner)
	}
	d.listeners[owner] = handler
	return once(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, owner)
	}), nil
}

// Listeners returns the number of registered key listeners.
func (d *Document) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// DispatchKey delivers ev to every listener in owner order and batches the
// commands they return.
func (d *Document) DispatchKey(ev KeyEvent) tea.Cmd {
	d.mu.Lock()
	owners := make([]string, 0, len(d.listeners))
	for owner := range d.listeners {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	handlers := make([]KeyHandler, 0, len(owners))
	for _, owner := range owners {
		handlers = append(handlers, d.listeners[owner])
	}
	d.mu.Unlock()

	// Handlers run unlocked; they may release or acquire resources.
	var cmds []tea.Cmd
	for _, h := range handlers {
		if cmd := h(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// LockScroll engages the page scroll lock on behalf of owner. The page stays
// locked while any owner holds the lock. Locking twice under the same owner
// is a single hold.
func (d *Document) LockScroll(owner string) Release {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.locks[owner] = struct{}{}
	return once(func() { d.UnlockScroll(owner) })
}

// UnlockScroll drops owner's hold on the scroll lock.
func (d *Document) UnlockScroll(owner string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.locks, owner)
}

// ScrollLocked reports whether any owner holds the page scroll lock.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.locks) > 0
}

func once(fn func()) Release {
	var o sync.Once
	return func() { o.Do(fn) }
}
