package widget

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/field"
	"github.com/dmitrymomot/formkit/pkg/broadcast"
	"github.com/dmitrymomot/formkit/pkg/locations"
	"github.com/dmitrymomot/formkit/pkg/nameindex"
)

// Entry is one row added to the widget's table.
type Entry struct {
	ID       uuid.UUID
	Name     string
	Location string
}

// Snapshot is the complete widget state handed to views. Each published
// snapshot fully describes the UI, so views never need to diff.
type Snapshot struct {
	Name      field.State
	Location  string
	Locations []locations.Location
	Entries   []Entry
	CanAdd    bool
}

// Form is one user's widget instance: a name field with asynchronous
// uniqueness validation, a location selection, and the entries added so far.
// State changes are published to subscribers as full snapshots.
//
// All methods are safe for concurrent use.
type Form struct {
	index  nameindex.Index
	name   *field.Validator
	hub    *broadcast.Hub[Snapshot]
	logger *slog.Logger

	check field.CheckFunc

	mu       sync.Mutex
	coll     *collate.Collator
	options  []locations.Location
	location string
	entries  []Entry
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithLogger supplies a logger for validation failures.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithCollation sets the language used to sort entries by name.
func WithCollation(tag language.Tag) FormOption {
	return func(f *Form) { f.coll = collate.New(tag) }
}

// WithCheck replaces the name check. The default checks uniqueness against
// the form's index; replacing it does not change how Add claims names.
func WithCheck(check field.CheckFunc) FormOption {
	return func(f *Form) {
		if check != nil {
			f.check = check
		}
	}
}

// NewForm creates a widget instance. The index backs the name uniqueness
// check; options populate the location dropdown.
func NewForm(index nameindex.Index, options []locations.Location, opts ...FormOption) *Form {
	f := &Form{
		index:   index,
		hub:     broadcast.NewHub[Snapshot](8),
		logger:  slog.New(slog.DiscardHandler),
		coll:    collate.New(language.English),
		options: slices.Clone(options),
	}
	f.check = nameindex.Checker(index)
	for _, opt := range opts {
		opt(f)
	}
	f.name = field.New(
		f.check,
		field.WithLogger(f.logger),
		field.WithObserver(f.publish),
	)
	return f
}

// SetName records a user edit of the name field. The uniqueness check runs in
// the background; subscribers see the pending state immediately and the
// outcome once the newest check settles.
func (f *Form) SetName(v string) {
	f.name.SetValue(v)
}

// SelectLocation sets the chosen location by code. An empty code clears the
// selection; unknown codes are rejected.
func (f *Form) SelectLocation(code string) error {
	f.mu.Lock()
	if code != "" && f.locationNameLocked(code) == "" {
		f.mu.Unlock()
		return ErrUnknownLocation
	}
	f.location = code
	f.mu.Unlock()

	f.publish(f.name.State())
	return nil
}

// Add appends an entry for the current name and location. It requires a
// settled, valid, non-empty name and a chosen location. On success the name
// is claimed in the index and the field is cleared for the next entry.
func (f *Form) Add(ctx context.Context) (Entry, error) {
	st := f.name.State()
	name := strings.TrimSpace(st.Value)

	f.mu.Lock()
	locName := f.locationNameLocked(f.location)
	f.mu.Unlock()

	switch {
	case st.Pending:
		return Entry{}, ErrCheckPending
	case name == "":
		return Entry{}, ErrNameRequired
	case !st.Valid:
		return Entry{}, ErrNameInvalid
	case locName == "":
		return Entry{}, ErrLocationRequired
	}

	// The claim is atomic in the index, so a name validated moments ago can
	// still lose the race to another session. Re-running the check turns
	// that into the regular "already taken" feedback.
	if err := f.index.Add(ctx, name); err != nil {
		if errors.Is(err, nameindex.ErrNameTaken) {
			f.name.SetValue(st.Value)
		}
		return Entry{}, err
	}

	entry := Entry{ID: uuid.New(), Name: name, Location: locName}

	f.mu.Lock()
	f.entries = append(f.entries, entry)
	f.sortEntriesLocked()
	f.mu.Unlock()

	f.name.Reset("")
	return entry, nil
}

// Clear resets the name field and the location selection. Added entries are
// kept.
func (f *Form) Clear() {
	f.mu.Lock()
	f.location = ""
	f.mu.Unlock()

	f.name.Reset("")
}

// Entries returns the added entries, sorted by name.
func (f *Form) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.entries)
}

// State returns the current widget snapshot.
func (f *Form) State() Snapshot {
	st := f.name.State()
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked(st)
}

// Subscribe returns a subscription delivering a snapshot after every state
// change. It ends when ctx is cancelled or the form closes.
func (f *Form) Subscribe(ctx context.Context) *broadcast.Subscription[Snapshot] {
	return f.hub.Subscribe(ctx)
}

// Close tears the widget down. In-flight validation results are discarded and
// all subscriptions end. Idempotent.
func (f *Form) Close() {
	f.name.Close()
	f.hub.Close()
}

// publish doubles as the field observer, so every validation state change
// reaches subscribers without the form polling.
func (f *Form) publish(st field.State) {
	f.mu.Lock()
	snap := f.snapshotLocked(st)
	f.mu.Unlock()
	f.hub.Publish(snap)
}

func (f *Form) snapshotLocked(st field.State) Snapshot {
	name := strings.TrimSpace(st.Value)
	return Snapshot{
		Name:      st,
		Location:  f.location,
		Locations: slices.Clone(f.options),
		Entries:   slices.Clone(f.entries),
		CanAdd:    !st.Pending && st.Valid && name != "" && f.location != "",
	}
}

func (f *Form) locationNameLocked(code string) string {
	for _, loc := range f.options {
		if loc.Code == code {
			return loc.Name
		}
	}
	return ""
}

func (f *Form) sortEntriesLocked() {
	slices.SortStableFunc(f.entries, func(a, b Entry) int {
		return f.coll.CompareString(a.Name, b.Name)
	})
}
