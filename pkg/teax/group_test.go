package teax

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func tabKey() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func shiftTabKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }

func TestGroupTabCycling(t *testing.T) {
	a, b, c := NewButton("a"), NewButton("b"), NewButton("c")
	g := NewGroup(a, b, c)
	g.FocusFirst()

	if g.Active() != a {
		t.Fatal("FocusFirst did not focus the first button")
	}

	if !g.HandleKey(tabKey()) {
		t.Error("tab from first element not consumed")
	}
	if g.Active() != b {
		t.Error("tab did not move focus to the next element")
	}

	if !g.HandleKey(shiftTabKey()) {
		t.Error("shift+tab not consumed")
	}
	if g.Active() != a {
		t.Error("shift+tab did not move focus back")
	}
}

func TestGroupNoWrapByDefault(t *testing.T) {
	a, b := NewButton("a"), NewButton("b")
	g := NewGroup(a, b)
	g.FocusFirst()

	g.HandleKey(tabKey()) // a -> b
	if g.HandleKey(tabKey()) {
		t.Error("tab at the end of a non-wrapping group was consumed")
	}
	if g.Active() != b {
		t.Error("focus moved past the end of a non-wrapping group")
	}

	g.FocusFirst()
	if g.HandleKey(shiftTabKey()) {
		t.Error("shift+tab at the start of a non-wrapping group was consumed")
	}
	if g.Active() != a {
		t.Error("focus moved before the start of a non-wrapping group")
	}
}

func TestGroupWrap(t *testing.T) {
	a, b := NewButton("a"), NewButton("b")
	g := NewGroup(a, b)
	g.SetWrap(true)
	g.FocusFirst()

	g.HandleKey(tabKey()) // a -> b
	if !g.HandleKey(tabKey()) {
		t.Error("tab at the end of a wrapping group not consumed")
	}
	if g.Active() != a {
		t.Error("wrapping group did not wrap to the first element")
	}
}

func TestGroupSkipsNonFocusable(t *testing.T) {
	a := NewButton("a")
	label := NewText("static")
	off := NewButton("off")
	off.SetDisabled(true)
	b := NewButton("b")

	g := NewGroup(a, label, off, b)
	g.FocusFirst()

	g.HandleKey(tabKey())
	if g.Active() != b {
		t.Errorf("tab landed on %v, want the next focusable button", g.Active())
	}
}

func TestGroupTabWithNothingFocused(t *testing.T) {
	a, b := NewButton("a"), NewButton("b")
	g := NewGroup(a, b)

	if !g.HandleKey(tabKey()) {
		t.Error("tab with nothing focused not consumed")
	}
	if g.Active() != a {
		t.Error("tab with nothing focused should land on the first focusable")
	}

	g.Blur()
	if !g.HandleKey(shiftTabKey()) {
		t.Error("shift+tab with nothing focused not consumed")
	}
	if g.Active() != b {
		t.Error("shift+tab with nothing focused should land on the last focusable")
	}
}

func TestGroupListenersRunFirst(t *testing.T) {
	a, b := NewButton("a"), NewButton("b")
	g := NewGroup(a, b)
	g.FocusFirst()

	remove := g.AddKeyListener(func(tea.KeyMsg) bool { return true })

	g.HandleKey(tabKey())
	if g.Active() != a {
		t.Error("consuming listener did not stop the group's tab handling")
	}

	remove()
	remove() // second removal is a no-op

	g.HandleKey(tabKey())
	if g.Active() != b {
		t.Error("tab handling not restored after listener removal")
	}
}

func TestGroupEmpty(t *testing.T) {
	g := NewGroup()
	g.FocusFirst() // must not panic
	if g.HandleKey(tabKey()) {
		t.Error("empty group consumed a tab")
	}
	if g.Active() != nil {
		t.Error("empty group has an active element")
	}
}
