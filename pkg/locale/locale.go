// Package locale holds localized message tables for accessible labels and
// announcements. English and Swedish ship built in; callers may register
// additional tables at runtime or load them asynchronously through a
// Loader.
//
// State lives in an explicit Registry owned by the caller rather than in
// hidden package globals; Default exists for programs that genuinely want
// one process-wide setting.
package locale

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

//go:embed data/*.json
var builtinFS embed.FS

// DefaultLocale is the known-good fallback for unknown locale codes.
const DefaultLocale = "en"

// Table maps message keys to localized strings. Tables are treated as
// immutable once registered; callers must not mutate them.
type Table map[Key]string

// ErrSuperseded is reported by an asynchronous locale switch that resolved
// after a newer switch had already started.
var ErrSuperseded = errors.New("locale: switch superseded by a newer request")

// Loader resolves a locale code to a message table. The built-in loader
// reads the embedded JSON tables; applications can supply their own to
// fetch tables from disk or elsewhere.
type Loader interface {
	Load(ctx context.Context, code string) (Table, error)
}

// FSLoader loads "<code>.json" tables from a file system.
type FSLoader struct {
	FS  fs.FS
	Dir string
}

// Load reads and validates the table for code.
func (l FSLoader) Load(_ context.Context, code string) (Table, error) {
	name := code + ".json"
	if l.Dir != "" {
		name = l.Dir + "/" + name
	}
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("read locale %q: %w", code, err)
	}
	return ParseTable(data)
}

// ParseTable decodes a JSON message table and validates it.
func ParseTable(data []byte) (Table, error) {
	t, err := ParseTableLenient(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTableLenient decodes a JSON message table without validating key
// coverage, for tooling that reports problems instead of rejecting.
func ParseTableLenient(data []byte) (Table, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse locale table: %w", err)
	}
	t := make(Table, len(raw))
	for k, v := range raw {
		t[Key(k)] = v
	}
	return t, nil
}

// Validate checks that t defines a non-empty string for every required
// key. The error names each missing key.
func Validate(t Table) error {
	if t == nil {
		return errors.New("locale: table is nil")
	}
	missing := MissingKeys(t)
	if len(missing) > 0 {
		return fmt.Errorf("locale: table missing %d required keys: %v", len(missing), missing)
	}
	return nil
}

// MissingKeys returns the required keys t does not define (or defines
// empty), sorted for stable diagnostics.
func MissingKeys(t Table) []Key {
	var missing []Key
	for _, k := range RequiredKeys {
		if t[k] == "" {
			missing = append(missing, k)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// Registry holds registered tables and the current-locale pointer.
// Reads and writes are guarded; a Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	tables  map[string]Table
	current string
	active  Table

	loader Loader
	flight singleflight.Group

	// seq orders locale switches so a stale asynchronous load cannot
	// overwrite a newer one. Guarded by mu.
	seq uint64
}

// NewRegistry returns a registry with the built-in English and Swedish
// tables, current locale "en", and the embedded-FS loader.
func NewRegistry() *Registry {
	r := &Registry{
		tables: make(map[string]Table),
		loader: FSLoader{FS: builtinFS, Dir: "data"},
	}
	for _, code := range []string{"en", "sv"} {
		t, err := FSLoader{FS: builtinFS, Dir: "data"}.Load(context.Background(), code)
		if err != nil {
			// Embedded tables are covered by tests; reaching this means a
			// corrupted build.
			panic(fmt.Sprintf("locale: built-in table %q: %v", code, err))
		}
		r.tables[code] = t
	}
	r.current = DefaultLocale
	r.active = r.tables[DefaultLocale]
	return r
}

// Default is the process-wide registry, for programs that want a single
// shared locale setting.
var Default = NewRegistry()

// SetLoader replaces the registry's table loader used by SetLocaleAsync.
// A nil loader restores the embedded-FS default.
func (r *Registry) SetLoader(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l == nil {
		l = FSLoader{FS: builtinFS, Dir: "data"}
	}
	r.loader = l
}

// SetLocale switches to a registered locale. An unknown code logs a
// warning and falls back to English, leaving the current-locale pointer at
// "en". It never fails into the caller.
func (r *Registry) SetLocale(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t, ok := r.tables[code]
	if !ok {
		slog.Warn("locale: unknown locale, falling back to English", "code", code)
		r.current = DefaultLocale
		r.active = r.tables[DefaultLocale]
		return
	}
	r.current = code
	r.active = t
}

// SetLocaleAsync loads the table for code through the registry's loader
// and then switches to it. Concurrent loads of the same code are
// deduplicated. Each call is tagged with a monotonically increasing
// sequence; a load that resolves after a newer switch has started is
// discarded and reports ErrSuperseded, so the last-requested locale always
// wins regardless of resolution order.
//
// The returned channel receives exactly one value: nil on success, an
// error otherwise. Load failures leave the registry unchanged.
func (r *Registry) SetLocaleAsync(ctx context.Context, code string) <-chan error {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	loader := r.loader
	if t, ok := r.tables[code]; ok {
		// Already registered: switch synchronously under the same guard.
		r.current = code
		r.active = t
		r.mu.Unlock()
		done := make(chan error, 1)
		done <- nil
		return done
	}
	r.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		v, err, _ := r.flight.Do(code, func() (any, error) {
			return loader.Load(ctx, code)
		})
		if err != nil {
			slog.Warn("locale: async load failed", "code", code, "error", err)
			done <- err
			return
		}
		t := v.(Table)

		r.mu.Lock()
		defer r.mu.Unlock()
		if seq < r.seq {
			done <- ErrSuperseded
			return
		}
		r.tables[code] = t
		r.current = code
		r.active = t
		done <- nil
	}()
	return done
}

// Register adds a table under code after validating it. An incomplete or
// nil table is logged and rejected, leaving the registry unchanged; the
// error is also returned for callers that want it.
func (r *Registry) Register(code string, t Table) error {
	if code == "" {
		err := errors.New("locale: register called with empty code")
		slog.Error("locale: rejecting table", "error", err)
		return err
	}
	if err := Validate(t); err != nil {
		slog.Error("locale: rejecting table", "code", code, "error", err)
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[code] = t
	return nil
}

// Messages returns the active table. Treat it as read-only.
func (r *Registry) Messages() Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Current returns the active locale code.
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Locales returns the registered locale codes, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.tables))
	for code := range r.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// T returns the active-table message for k, falling back to the English
// string and finally to the key itself so labels are never blank.
func (r *Registry) T(k Key) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s := r.active[k]; s != "" {
		return s
	}
	if s := r.tables[DefaultLocale][k]; s != "" {
		return s
	}
	return string(k)
}
