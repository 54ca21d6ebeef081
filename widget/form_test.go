package widget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/field"
	"github.com/dmitrymomot/formkit/pkg/locations"
	"github.com/dmitrymomot/formkit/pkg/nameindex"
	"github.com/dmitrymomot/formkit/widget"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var testLocations = []locations.Location{
	{Code: "at", Name: "Austria"},
	{Code: "de", Name: "Germany"},
}

func settledName(f *widget.Form) func() bool {
	return func() bool { return !f.State().Name.Pending }
}

// setEntry drives the form through the full add flow for name and location.
func setEntry(t *testing.T, f *widget.Form, name, code string) widget.Entry {
	t.Helper()

	f.SetName(name)
	require.Eventually(t, settledName(f), waitFor, tick)
	require.NoError(t, f.SelectLocation(code))

	entry, err := f.Add(context.Background())
	require.NoError(t, err)
	return entry
}

func TestAddHappyPath(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	defer f.Close()

	f.SetName("alice")
	require.Eventually(t, settledName(f), waitFor, tick)

	snap := f.State()
	assert.True(t, snap.Name.Valid)
	assert.False(t, snap.CanAdd, "add requires a location")

	require.NoError(t, f.SelectLocation("de"))
	assert.True(t, f.State().CanAdd)

	entry, err := f.Add(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", entry.Name)
	assert.Equal(t, "Germany", entry.Location)

	// The name field is cleared for the next entry; the table keeps the row.
	require.Eventually(t, func() bool { return f.State().Name.Value == "" }, waitFor, tick)
	assert.Len(t, f.Entries(), 1)
}

func TestAddRejectsWhileCheckPending(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := widget.NewForm(nameindex.NewMemory(), testLocations,
		widget.WithCheck(func(ctx context.Context, value string) (field.Result, error) {
			<-release
			return field.Result{Valid: true}, nil
		}),
	)
	defer f.Close()

	require.NoError(t, f.SelectLocation("de"))
	f.SetName("alice")

	_, err := f.Add(context.Background())
	assert.ErrorIs(t, err, widget.ErrCheckPending)
}

func TestAddPreconditions(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory("taken"), testLocations)
	defer f.Close()

	// Empty name.
	_, err := f.Add(context.Background())
	assert.ErrorIs(t, err, widget.ErrNameRequired)

	// Invalid name.
	f.SetName("taken")
	require.Eventually(t, settledName(f), waitFor, tick)
	_, err = f.Add(context.Background())
	assert.ErrorIs(t, err, widget.ErrNameInvalid)

	// Valid name but no location.
	f.SetName("free")
	require.Eventually(t, settledName(f), waitFor, tick)
	_, err = f.Add(context.Background())
	assert.ErrorIs(t, err, widget.ErrLocationRequired)
}

func TestAddLosesClaimRace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	idx := nameindex.NewMemory()
	f := widget.NewForm(idx, testLocations)
	defer f.Close()

	f.SetName("alice")
	require.Eventually(t, settledName(f), waitFor, tick)
	require.True(t, f.State().Name.Valid)
	require.NoError(t, f.SelectLocation("de"))

	// Another session claims the name between validation and Add.
	require.NoError(t, idx.Add(ctx, "alice"))

	_, err := f.Add(ctx)
	assert.ErrorIs(t, err, nameindex.ErrNameTaken)

	// The lost race re-runs validation, surfacing the regular message.
	require.Eventually(t, func() bool {
		st := f.State().Name
		return !st.Pending && !st.Valid
	}, waitFor, tick)
	assert.Equal(t, nameindex.DefaultTakenMessage, f.State().Name.Message)
	assert.Empty(t, f.Entries())
}

func TestEntriesSortedByName(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	defer f.Close()

	setEntry(t, f, "carol", "de")
	setEntry(t, f, "alice", "at")
	setEntry(t, f, "bob", "de")

	entries := f.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Name)
	assert.Equal(t, "bob", entries[1].Name)
	assert.Equal(t, "carol", entries[2].Name)
}

func TestSelectLocationValidatesCode(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	defer f.Close()

	assert.ErrorIs(t, f.SelectLocation("xx"), widget.ErrUnknownLocation)
	assert.NoError(t, f.SelectLocation("de"))
	assert.NoError(t, f.SelectLocation(""), "empty code clears the selection")
	assert.Empty(t, f.State().Location)
}

func TestClearResetsInputsKeepsEntries(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	defer f.Close()

	setEntry(t, f, "alice", "de")

	f.SetName("bob")
	require.Eventually(t, settledName(f), waitFor, tick)
	require.NoError(t, f.SelectLocation("at"))

	f.Clear()
	require.Eventually(t, settledName(f), waitFor, tick)

	snap := f.State()
	assert.Empty(t, snap.Name.Value)
	assert.Empty(t, snap.Location)
	assert.Len(t, snap.Entries, 1, "clear keeps added entries")
}

func TestSubscribeStreamsSnapshots(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	defer f.Close()

	sub := f.Subscribe(context.Background())
	defer sub.Close()

	f.SetName("alice")

	// First snapshot shows the pending check, a later one the settled state.
	snap := <-sub.C()
	assert.Equal(t, "alice", snap.Name.Value)
	assert.True(t, snap.Name.Pending)

	require.Eventually(t, func() bool {
		select {
		case snap = <-sub.C():
			return !snap.Name.Pending
		default:
			return false
		}
	}, waitFor, tick)
	assert.True(t, snap.Name.Valid)
}

func TestCloseEndsSubscriptions(t *testing.T) {
	t.Parallel()

	f := widget.NewForm(nameindex.NewMemory(), testLocations)
	sub := f.Subscribe(context.Background())

	f.Close()

	_, ok := <-sub.C()
	assert.False(t, ok)
}
