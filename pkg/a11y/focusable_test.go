package a11y

import "testing"

func TestIsFocusable(t *testing.T) {
	tabStop := func(idx int, set bool, kind Kind, disabled bool) Element {
		s := &stubTabStop{}
		s.tabIndex = idx
		s.tabSet = set
		s.kind = kind
		s.disabled = disabled
		return s
	}
	plain := func(kind Kind) Element {
		return &stubElement{kind: kind}
	}
	disabled := func(kind Kind) Element {
		s := &stubDisableable{}
		s.kind = kind
		s.disabled = true
		return s
	}

	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{"nil element", nil, false},
		{"button", plain(KindButton), true},
		{"input", plain(KindInput), true},
		{"select", plain(KindSelect), true},
		{"textarea", plain(KindTextArea), true},
		{"link", plain(KindLink), true},
		{"generic", plain(KindGeneric), false},
		{"disabled button", disabled(KindButton), false},
		{"disabled input", disabled(KindInput), false},
		{"generic with positive tab index", tabStop(2, true, KindGeneric, false), true},
		{"generic with explicit zero tab index", tabStop(0, true, KindGeneric, false), true},
		{"generic with unset zero tab index", tabStop(0, false, KindGeneric, false), false},
		{"generic with negative tab index", tabStop(-1, true, KindGeneric, false), false},
		{"negative tab index on button still focusable by kind", tabStop(-1, true, KindButton, false), true},
		{"disabled button with explicit tab index", tabStop(1, true, KindButton, true), true},
		{"disabled generic with explicit zero tab index", tabStop(0, true, KindGeneric, true), true},
		{"disabled button with negative tab index", tabStop(-1, true, KindButton, true), false},
	}

	for _, tt := range tests {
		if got := IsFocusable(tt.el); got != tt.want {
			t.Errorf("IsFocusable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCollectFocusablesPreservesOrder(t *testing.T) {
	a := button("a")
	text := &stubElement{name: "text", kind: KindGeneric}
	b := button("b")
	off := &stubDisableable{}
	off.kind = KindButton
	off.disabled = true
	c := button("c")

	got := CollectFocusables(&stubContainer{elements: []Element{a, text, b, off, c}})
	if len(got) != 3 {
		t.Fatalf("CollectFocusables returned %d elements, want 3", len(got))
	}
	for i, want := range []*stubElement{a, b, c} {
		if got[i] != want {
			t.Errorf("focusable[%d] = %v, want %s", i, got[i], want.name)
		}
	}
}

func TestCollectFocusablesNilContainer(t *testing.T) {
	if got := CollectFocusables(nil); got != nil {
		t.Errorf("CollectFocusables(nil) = %v, want nil", got)
	}
}
