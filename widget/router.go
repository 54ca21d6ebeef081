package widget

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/nameindex"
	"github.com/dmitrymomot/formkit/pkg/sse"
)

// sessionCookie carries the widget session id between requests.
const sessionCookie = "formkit_session"

// signals mirrors the DataStar signals bound by the widget markup.
type signals struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Router serves the widget: the page itself, the edit endpoints driven by
// DataStar signals, and the SSE stream that pushes state changes back to the
// browser. The router assumes it is mounted at the server root, since the
// markup posts to absolute paths.
func Router(m *Manager, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &routes{manager: m, log: log}

	r := chi.NewRouter()
	r.Get("/", h.page)
	r.Post("/name", h.name)
	r.Post("/location", h.location)
	r.Post("/add", h.add)
	r.Post("/clear", h.clear)
	r.Get("/updates", h.updates)
	return r
}

type routes struct {
	manager *Manager
	log     *slog.Logger
}

// sessionForm resolves the request's Form, creating a fresh session (and
// cookie) when none exists.
func (h *routes) sessionForm(w http.ResponseWriter, r *http.Request) *Form {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if form, ok := h.manager.Get(id); ok {
				return form
			}
		}
	}

	id, form := h.manager.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return form
}

func (h *routes) page(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(form.State()).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render widget page", slog.String("error", err.Error()))
	}
}

func (h *routes) name(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)

	var sig signals
	if err := sse.ReadSignals(r, &sig); err != nil {
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}
	form.SetName(sig.Name)
	w.WriteHeader(http.StatusNoContent)
}

func (h *routes) location(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)

	var sig signals
	if err := sse.ReadSignals(r, &sig); err != nil {
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}
	if err := form.SelectLocation(sig.Location); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *routes) add(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)

	entry, err := form.Add(r.Context())
	if err != nil {
		// Precondition failures are normal UI states, already reflected by
		// the update stream. Only store failures are logged.
		switch {
		case errors.Is(err, nameindex.ErrNameTaken),
			errors.Is(err, ErrCheckPending),
			errors.Is(err, ErrNameRequired),
			errors.Is(err, ErrNameInvalid),
			errors.Is(err, ErrLocationRequired):
			w.WriteHeader(http.StatusNoContent)
		default:
			h.log.Error("failed to add entry", slog.String("error", err.Error()))
			http.Error(w, "failed to add entry", http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("entry added",
		slog.String("entry_id", entry.ID.String()),
		slog.String("location", entry.Location),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *routes) clear(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)
	form.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// updates streams widget snapshots to the browser for the lifetime of the
// connection. Every snapshot patches the status line, the add button, the
// dropdown and the entries table; the input itself is never patched so typing
// is not disturbed.
func (h *routes) updates(w http.ResponseWriter, r *http.Request) {
	form := h.sessionForm(w, r)

	stream, err := sse.NewStream(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub := form.Subscribe(stream.Context())
	defer sub.Close()

	// Initial paint, so a reconnecting client catches up immediately.
	if err := h.sendSnapshot(stream, form.State()); err != nil {
		return
	}

	for {
		select {
		case <-stream.Done():
			return
		case snap, ok := <-sub.C():
			if !ok {
				return
			}
			if err := h.sendSnapshot(stream, snap); err != nil {
				return
			}
		}
	}
}

func (h *routes) sendSnapshot(stream *sse.Stream, snap Snapshot) error {
	if err := stream.SendComponent(NameStatus(snap.Name), sse.WithTarget("#name-status")); err != nil {
		return err
	}
	if err := stream.SendComponent(AddButton(snap.CanAdd), sse.WithTarget("#add-button")); err != nil {
		return err
	}
	if err := stream.SendComponent(LocationSelect(snap.Locations, snap.Location), sse.WithTarget("#location-select")); err != nil {
		return err
	}
	if err := stream.SendComponent(EntriesTable(snap.Entries), sse.WithTarget("#entries")); err != nil {
		return err
	}
	return stream.SendSignal("pending", snap.Name.Pending)
}
