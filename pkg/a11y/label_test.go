package a11y

import (
	"strings"
	"testing"

	"github.com/annika/fokus/pkg/locale"
)

func TestNextIDMonotonic(t *testing.T) {
	a := NextID("live")
	b := NextID("live")
	if a == b {
		t.Errorf("NextID returned duplicate ID %q", a)
	}
	if !strings.HasPrefix(a, "live-") {
		t.Errorf("NextID = %q, want live- prefix", a)
	}
	if !strings.HasPrefix(NextID(""), "fokus-") {
		t.Error("NextID with empty prefix should default to fokus-")
	}
}

func TestLabelsEnglish(t *testing.T) {
	reg := locale.NewRegistry()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"dialog", DialogLabel(reg, "Settings"), "Settings, Dialog"},
		{"dialog untitled", DialogLabel(reg, ""), "Dialog"},
		{"progress", ProgressLabel(reg, 3, 7), "3 of 7"},
		{"page", PageLabel(reg, 2, 9), "Page 2 of 9"},
		{"checkbox checked", CheckboxLabel(reg, "Wrap lines", true), "Wrap lines, Checked"},
		{"checkbox unchecked", CheckboxLabel(reg, "Wrap lines", false), "Wrap lines, Unchecked"},
		{"toggle on", ToggleLabel(reg, "Reduce motion", true), "Reduce motion, On"},
		{"sort ascending", SortLabel(reg, "Name", true), "Name, Sorted ascending"},
		{"results", ResultsLabel(reg, 4), "4 results found"},
		{"one result", ResultsLabel(reg, 1), "1 result found"},
		{"no results", ResultsLabel(reg, 0), "No results found"},
		{"loading", LoadingLabel(reg, "results"), "Loading results"},
		{"loading bare", LoadingLabel(reg, ""), "Loading"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLabelsFollowLocale(t *testing.T) {
	reg := locale.NewRegistry()
	reg.SetLocale("sv")

	if got := ProgressLabel(reg, 3, 7); got != "3 av 7" {
		t.Errorf("Swedish progress label = %q, want %q", got, "3 av 7")
	}
	if got := ResultsLabel(reg, 0); got != "Inga resultat hittades" {
		t.Errorf("Swedish no-results label = %q", got)
	}
	if got := ResultsLabel(reg, 1); got != "1 resultat hittades" {
		t.Errorf("Swedish singular results label = %q", got)
	}
}

func TestLabelsNilRegistryUsesDefault(t *testing.T) {
	if got := ProgressLabel(nil, 1, 2); got == "" {
		t.Error("nil registry produced empty label")
	}
}
