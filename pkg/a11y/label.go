package a11y

import (
	"fmt"
	"sync/atomic"

	"github.com/annika/fokus/pkg/locale"
)

var idCounter atomic.Uint64

// NextID returns a process-unique element ID of the form "prefix-N".
// An empty prefix defaults to "fokus".
func NextID(prefix string) string {
	if prefix == "" {
		prefix = "fokus"
	}
	return fmt.Sprintf("%s-%d", prefix, idCounter.Add(1))
}

// The label builders below compose announcement and widget-label strings
// from the active locale table. They are pure string computations; reg may
// be nil, in which case the process-wide default registry is used.

func messages(reg *locale.Registry) *locale.Registry {
	if reg == nil {
		return locale.Default
	}
	return reg
}

// DialogLabel labels a dialog: "Settings, dialog".
func DialogLabel(reg *locale.Registry, title string) string {
	r := messages(reg)
	if title == "" {
		return r.T(locale.KeyDialog)
	}
	return fmt.Sprintf("%s, %s", title, r.T(locale.KeyDialog))
}

// ProgressLabel describes a position in a sequence: "3 of 7".
func ProgressLabel(reg *locale.Registry, current, total int) string {
	return fmt.Sprintf("%d %s %d", current, messages(reg).T(locale.KeyOf), total)
}

// PageLabel describes pagination state: "Page 2 of 9".
func PageLabel(reg *locale.Registry, page, pages int) string {
	r := messages(reg)
	return fmt.Sprintf("%s %d %s %d", r.T(locale.KeyPage), page, r.T(locale.KeyOf), pages)
}

// CheckboxLabel labels a checkbox with its state: "Wrap lines, checked".
func CheckboxLabel(reg *locale.Registry, name string, checked bool) string {
	r := messages(reg)
	state := locale.KeyUnchecked
	if checked {
		state = locale.KeyChecked
	}
	return fmt.Sprintf("%s, %s", name, r.T(state))
}

// ToggleLabel labels an on/off switch: "Reduce motion, on".
func ToggleLabel(reg *locale.Registry, name string, on bool) string {
	r := messages(reg)
	state := locale.KeyOff
	if on {
		state = locale.KeyOn
	}
	return fmt.Sprintf("%s, %s", name, r.T(state))
}

// SortLabel announces a column's sort direction: "Name, sorted ascending".
func SortLabel(reg *locale.Registry, column string, ascending bool) string {
	r := messages(reg)
	dir := locale.KeySortedDescending
	if ascending {
		dir = locale.KeySortedAscending
	}
	return fmt.Sprintf("%s, %s", column, r.T(dir))
}

// ResultsLabel announces a search outcome: "4 results found", with a
// singular form for one result and the no-results message for zero.
func ResultsLabel(reg *locale.Registry, n int) string {
	r := messages(reg)
	switch n {
	case 0:
		return r.T(locale.KeyNoResults)
	case 1:
		return fmt.Sprintf("1 %s", r.T(locale.KeyResultFound))
	}
	return fmt.Sprintf("%d %s", n, r.T(locale.KeyResultsFound))
}

// LoadingLabel announces a pending load: "Loading results".
func LoadingLabel(reg *locale.Registry, what string) string {
	r := messages(reg)
	if what == "" {
		return r.T(locale.KeyLoading)
	}
	return fmt.Sprintf("%s %s", r.T(locale.KeyLoading), what)
}
