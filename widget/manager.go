package widget

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager keeps one Form per browser session and closes forms that have been
// idle longer than the session TTL, so abandoned widgets release their
// in-flight validation state.
type Manager struct {
	factory func() *Form
	ttl     time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	done     chan struct{}
	once     sync.Once
}

type session struct {
	form     *Form
	lastSeen time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithSessionTTL sets how long an untouched session survives.
func WithSessionTTL(d time.Duration) ManagerOption {
	if d <= 0 {
		panic("WithSessionTTL: duration must be > 0")
	}
	return func(m *Manager) { m.ttl = d }
}

// NewManager creates a session registry around the given Form factory and
// starts its expiry loop.
func NewManager(factory func() *Form, opts ...ManagerOption) *Manager {
	m := &Manager{
		factory:  factory,
		ttl:      30 * time.Minute,
		sessions: make(map[uuid.UUID]*session),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.expireLoop()
	return m
}

// Create registers a fresh session and returns its id and Form.
func (m *Manager) Create() (uuid.UUID, *Form) {
	id := uuid.New()
	form := m.factory()

	m.mu.Lock()
	m.sessions[id] = &session{form: form, lastSeen: time.Now()}
	m.mu.Unlock()

	return id, form
}

// Get returns the Form for a session, refreshing its idle timer.
func (m *Manager) Get(id uuid.UUID) (*Form, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.form, true
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the expiry loop and closes all live forms. Idempotent.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.form.Close()
		delete(m.sessions, id)
	}
}

func (m *Manager) expireLoop() {
	interval := max(m.ttl/4, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.expire(now)
		}
	}
}

func (m *Manager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			s.form.Close()
			delete(m.sessions, id)
		}
	}
}
