package teax

import (
	"strings"
	"testing"
	"time"

	"github.com/annika/fokus/pkg/a11y"
)

func TestLiveRegionAppendAndExpire(t *testing.T) {
	region := NewLiveRegion()
	region.Append(a11y.Announcement{ID: "x1", Text: "saved", Priority: a11y.Polite})

	anns := region.Announcements()
	if len(anns) != 1 {
		t.Fatalf("Announcements() returned %d, want 1", len(anns))
	}
	if anns[0].Role() != "status" {
		t.Errorf("announcement role = %q, want status", anns[0].Role())
	}

	region.Expire("x1")
	if got := region.Announcements(); len(got) != 0 {
		t.Errorf("Announcements() after expire = %d entries, want 0", len(got))
	}
}

func TestLiveRegionDeadlinePruning(t *testing.T) {
	now := time.Now()
	region := NewLiveRegion()
	region.now = func() time.Time { return now }

	region.Append(a11y.Announcement{ID: "x1", Text: "saved"})

	// Still active just before the TTL elapses.
	now = now.Add(a11y.AnnouncementTTL - time.Millisecond)
	if len(region.Announcements()) != 1 {
		t.Error("announcement pruned before its TTL elapsed")
	}

	// Gone once the deadline passes, even without an Expire call.
	now = now.Add(2 * time.Millisecond)
	if len(region.Announcements()) != 0 {
		t.Error("announcement survived past its deadline")
	}
	if region.View() != "" {
		t.Error("View() renders expired announcements")
	}
}

func TestLiveRegionLiveValue(t *testing.T) {
	region := NewLiveRegion()
	if region.Live() != "polite" {
		t.Errorf("empty region Live() = %q, want polite", region.Live())
	}

	region.Append(a11y.Announcement{ID: "p", Text: "ok", Priority: a11y.Polite})
	if region.Live() != "polite" {
		t.Errorf("Live() = %q, want polite", region.Live())
	}

	region.Append(a11y.Announcement{ID: "a", Text: "error", Priority: a11y.Assertive})
	if region.Live() != "assertive" {
		t.Errorf("Live() with assertive entry = %q, want assertive", region.Live())
	}
}

func TestLiveRegionView(t *testing.T) {
	region := NewLiveRegion()
	region.Append(a11y.Announcement{ID: "1", Text: "first", Priority: a11y.Polite})
	region.Append(a11y.Announcement{ID: "2", Text: "second", Priority: a11y.Assertive})

	view := region.View()
	if !strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Errorf("View() = %q, want both announcements rendered", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) != 2 {
		t.Errorf("View() rendered %d lines, want 2", len(lines))
	}
}

func TestAnnouncerIntoLiveRegion(t *testing.T) {
	region := NewLiveRegion()
	an := a11y.NewAnnouncer(region)

	an.Announce("loaded", a11y.Polite)

	anns := region.Announcements()
	if len(anns) != 1 {
		t.Fatalf("announce created %d region entries, want 1", len(anns))
	}
	if anns[0].Text != "loaded" {
		t.Errorf("entry text = %q, want loaded", anns[0].Text)
	}
}
