package document

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestListen_RejectsDuplicateOwner(t *testing.T) {
	d := New()

	release, err := d.Listen("a", func(KeyEvent) tea.Cmd { return nil })
	if err != nil {
		t.Fatalf("Listen returned error: %v", err)
	}
	if _, err := d.Listen("a", func(KeyEvent) tea.Cmd { return nil }); !errors.Is(err, ErrDuplicateOwner) {
		t.Fatalf("second Listen err = %v, want ErrDuplicateOwner", err)
	}

	release()
	release()
	if n := d.Listeners(); n != 0 {
		t.Fatalf("Listeners = %d after release, want 0", n)
	}
	if _, err := d.Listen("a", func(KeyEvent) tea.Cmd { return nil }); err != nil {
		t.Fatalf("Listen after release returned error: %v", err)
	}
}

func TestDispatchKey_ReachesEveryListener(t *testing.T) {
	d := New()
	var got []string
	for _, owner := range []string{"b", "a"} {
		owner := owner
		if _, err := d.Listen(owner, func(ev KeyEvent) tea.Cmd {
			got = append(got, owner+":"+ev.Target)
			return nil
		}); err != nil {
			t.Fatalf("Listen(%s): %v", owner, err)
		}
	}

	d.DispatchKey(KeyEvent{Target: "a", Key: tea.KeyMsg{Type: tea.KeyEnter}})

	if len(got) != 2 || got[0] != "a:a" || got[1] != "b:a" {
		t.Fatalf("dispatch order = %v, want [a:a b:a]", got)
	}
}

func TestDispatchKey_HandlerMayReleaseItself(t *testing.T) {
	d := New()
	var release Release
	release, err := d.Listen("a", func(KeyEvent) tea.Cmd {
		release()
		return nil
	})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	d.DispatchKey(KeyEvent{Target: "a"})
	if n := d.Listeners(); n != 0 {
		t.Fatalf("Listeners = %d, want 0", n)
	}
}

func TestScrollLock_HeldWhileAnyOwnerHolds(t *testing.T) {
	d := New()

	ra := d.LockScroll("a")
	rb := d.LockScroll("b")
	d.LockScroll("a")

	ra()
	if !d.ScrollLocked() {
		t.Fatal("ScrollLocked = false while b still holds")
	}
	rb()
	if d.ScrollLocked() {
		t.Fatal("ScrollLocked = true after all owners released")
	}
}

func TestScope_ReleasesInReverseOnce(t *testing.T) {
	var s Scope
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		s.Add(func() { order = append(order, i) })
	}
	s.Add(nil)

	s.Close()
	s.Close()

	if len(order) != 3 || order[0] != 3 || order[2] != 1 {
		t.Fatalf("release order = %v, want [3 2 1]", order)
	}
	if !s.Closed() {
		t.Fatal("Closed = false after Close")
	}

	late := false
	s.Add(func() { late = true })
	if !late {
		t.Fatal("Add on closed scope should release immediately")
	}
}
