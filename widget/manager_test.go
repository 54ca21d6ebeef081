package widget_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/nameindex"
	"github.com/dmitrymomot/formkit/widget"
)

func newTestManager(opts ...widget.ManagerOption) *widget.Manager {
	return widget.NewManager(func() *widget.Form {
		return widget.NewForm(nameindex.NewMemory(), testLocations)
	}, opts...)
}

func TestManagerCreateAndGet(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	defer m.Close()

	id, form := m.Create()
	require.NotNil(t, form)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Same(t, form, got)
	assert.Equal(t, 1, m.Len())
}

func TestManagerGetUnknownSession(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	defer m.Close()

	_, ok := m.Get(uuid.New())
	assert.False(t, ok)
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	m := newTestManager(widget.WithSessionTTL(50 * time.Millisecond))
	defer m.Close()

	id, form := m.Create()
	sub := form.Subscribe(t.Context())

	// Get refreshes the idle timer, so watch Len instead of polling Get.
	require.Eventually(t, func() bool { return m.Len() == 0 }, 5*time.Second, 20*time.Millisecond)

	_, ok := m.Get(id)
	assert.False(t, ok)

	// The expired form was closed, ending its subscriptions.
	_, ok = <-sub.C()
	assert.False(t, ok)
}

func TestManagerCloseClosesForms(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	_, form := m.Create()
	sub := form.Subscribe(t.Context())

	m.Close()
	m.Close() // idempotent

	assert.Equal(t, 0, m.Len())
	_, ok := <-sub.C()
	assert.False(t, ok)
}
