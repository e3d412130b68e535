package teax

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/annika/fokus/pkg/a11y"
)

// expireTickMsg asks the host program to re-render so expired
// announcements disappear from the view.
type expireTickMsg struct{}

// LiveRegion renders active announcements, the terminal analogue of a
// visually hidden role=status element. It implements a11y.Region so an
// a11y.Announcer can post to it; entries carry their own deadline and are
// pruned on read, so even a missed Expire call cannot leave stale text.
//
// Append and Expire are safe to call from the announcer's timer goroutine.
type LiveRegion struct {
	mu      sync.Mutex
	entries []liveEntry
	width   int

	// now is replaced in tests.
	now func() time.Time
}

type liveEntry struct {
	ann      a11y.Announcement
	deadline time.Time
}

// NewLiveRegion creates an empty live region.
func NewLiveRegion() *LiveRegion {
	return &LiveRegion{now: time.Now}
}

// Append adds an announcement with a deadline of now plus the fixed TTL.
func (l *LiveRegion) Append(ann a11y.Announcement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, liveEntry{
		ann:      ann,
		deadline: l.now().Add(a11y.AnnouncementTTL),
	})
}

// Expire removes the announcement with the given ID, if still present.
func (l *LiveRegion) Expire(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.ann.ID != id {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Announcements returns the currently active announcements, pruning any
// whose deadline has passed.
func (l *LiveRegion) Announcements() []a11y.Announcement {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune()
	out := make([]a11y.Announcement, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.ann
	}
	return out
}

// prune drops expired entries. Caller holds l.mu.
func (l *LiveRegion) prune() {
	now := l.now()
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.deadline.After(now) {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Role returns the ARIA role the region represents.
func (l *LiveRegion) Role() string { return a11y.RoleStatus }

// Live returns the region's effective aria-live value: "assertive" while
// any assertive announcement is active, "polite" otherwise.
func (l *LiveRegion) Live() string {
	for _, ann := range l.Announcements() {
		if ann.Priority == a11y.Assertive {
			return a11y.Assertive.String()
		}
	}
	return a11y.Polite.String()
}

// SetWidth sets the rendering width announcements are truncated to.
// Zero disables truncation.
func (l *LiveRegion) SetWidth(w int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.width = w
}

// Update handles the region's tick messages. Hosts forward all messages;
// anything unrecognized is ignored.
func (l *LiveRegion) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(expireTickMsg); ok {
		// Pruning happens on read; the tick only forces a re-render.
		return nil
	}
	return nil
}

// View renders the active announcements, one per line, styled by
// priority.
func (l *LiveRegion) View() string {
	anns := l.Announcements()
	if len(anns) == 0 {
		return ""
	}

	l.mu.Lock()
	width := l.width
	l.mu.Unlock()

	var lines []string
	for _, ann := range anns {
		style := PoliteStyle
		if ann.Priority == a11y.Assertive {
			style = AssertiveStyle
		}
		line := style.Render(ann.Text)
		if width > 0 && ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// AnnounceCmd posts an announcement through an and schedules a re-render
// tick just after the announcement's TTL so the region empties on screen.
func AnnounceCmd(an *a11y.Announcer, text string, p a11y.Priority) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			an.Announce(text, p)
			return nil
		},
		tea.Tick(a11y.AnnouncementTTL+50*time.Millisecond, func(time.Time) tea.Msg {
			return expireTickMsg{}
		}),
	)
}
