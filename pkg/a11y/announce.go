package a11y

import (
	"log/slog"
	"strings"
	"time"
)

// Priority is an announcement's live-region politeness level.
type Priority int

const (
	// Polite announcements wait for the assistive technology to pause.
	Polite Priority = iota
	// Assertive announcements interrupt whatever is being read.
	Assertive
)

// String returns the aria-live token for the priority.
func (p Priority) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// RoleStatus is the role every announcement carries.
const RoleStatus = "status"

// AnnouncementTTL is how long an announcement lives before its region
// entry is expired. The TTL is not configurable and the scheduled expiry
// is not cancellable.
const AnnouncementTTL = time.Second

// Announcement is one transient live-region entry.
type Announcement struct {
	ID       string
	Text     string
	Priority Priority
}

// Role returns the ARIA role of the announcement's region entry.
func (Announcement) Role() string { return RoleStatus }

// Region receives announcements and later expires them. teax.LiveRegion is
// the standard implementation; tests supply their own.
type Region interface {
	Append(Announcement)
	Expire(id string)
}

// Announcer posts transient announcements to a live region. Each call is
// independent: overlapping announcements coexist, each with its own
// expiry, and the host assistive layer is responsible for interleaving.
type Announcer struct {
	region Region

	// after schedules the expiry callback; replaced in tests.
	after func(time.Duration, func())
}

// NewAnnouncer creates an Announcer bound to region. A nil region is
// allowed; announcements then degrade to logged no-ops.
func NewAnnouncer(region Region) *Announcer {
	return &Announcer{
		region: region,
		after:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// Announce appends one role=status entry with the given priority and
// schedules its removal after AnnouncementTTL. An empty message or a
// missing region logs a diagnostic and performs no mutation; Announce
// never fails into the caller.
func (a *Announcer) Announce(text string, p Priority) {
	if a == nil || a.region == nil {
		slog.Warn("a11y: announce without a live region", "text", text)
		return
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("a11y: announce called with empty message")
		return
	}
	ann := Announcement{ID: NextID("live"), Text: text, Priority: p}
	a.region.Append(ann)
	a.after(AnnouncementTTL, func() { a.region.Expire(ann.ID) })
}
