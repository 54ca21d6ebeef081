package widget

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/dmitrymomot/formkit/field"
	"github.com/dmitrymomot/formkit/pkg/locations"
	"github.com/dmitrymomot/formkit/pkg/sse"
)

// Views are hand-built components in the templ.Component shape. Dynamic text
// is escaped; attribute values are fixed strings.

// Page renders the full widget page. The body opens the SSE update stream on
// load, after which all state changes arrive as element patches.
func Page(snap Snapshot) sse.Component {
	return sse.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Registration</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
.status { margin-left: .5rem; }
.status.pending { color: #888; }
.status.invalid { color: #b00020; }
.status.available { color: #1b5e20; }
table { border-collapse: collapse; margin-top: 1rem; }
td, th { border: 1px solid #ccc; padding: .25rem .75rem; text-align: left; }
</style>
</head>
<body data-on-load="@get('/updates')">
`); err != nil {
			return err
		}
		if err := Widget(snap).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, "\n</body>\n</html>\n")
		return err
	})
}

// Widget renders the complete widget: name field, location dropdown, buttons
// and the entries table.
func Widget(snap Snapshot) sse.Component {
	return sse.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="widget">
<p>
<label>Name
<input id="name-input" type="text" value=%q data-bind-name data-on-input__debounce.300ms="@post('/name')">
</label>`, html.EscapeString(snap.Name.Value)); err != nil {
			return err
		}
		if err := NameStatus(snap.Name).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\n</p>\n<p>\n<label>Location\n"); err != nil {
			return err
		}
		if err := LocationSelect(snap.Locations, snap.Location).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\n</label>\n"); err != nil {
			return err
		}
		if err := AddButton(snap.CanAdd).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, `
<button id="clear-button" data-on-click="@post('/clear')">Clear</button>
</p>
`); err != nil {
			return err
		}
		if err := EntriesTable(snap.Entries).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, "\n</div>")
		return err
	})
}

// NameStatus renders the feedback next to the name input: a progress note
// while the check is pending, the validation message when invalid, or an
// availability note for a settled non-empty name.
func NameStatus(st field.State) sse.Component {
	return sse.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class, text := "status", ""
		switch {
		case st.Pending:
			class, text = "status pending", "Checking…"
		case !st.Valid:
			class, text = "status invalid", st.Message
		case st.Value != "":
			class, text = "status available", "Available"
		}
		_, err := fmt.Fprintf(w, `<span id="name-status" class=%q>%s</span>`,
			class, html.EscapeString(text))
		return err
	})
}

// LocationSelect renders the dropdown with the current selection.
func LocationSelect(locs []locations.Location, selected string) sse.Component {
	return sse.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<select id="location-select" data-bind-location data-on-change="@post('/location')">`); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, `<option value="">Choose a location…</option>`); err != nil {
			return err
		}
		for _, loc := range locs {
			sel := ""
			if loc.Code == selected {
				sel = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value=%q%s>%s</option>`,
				html.EscapeString(loc.Code), sel, html.EscapeString(loc.Name)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</select>`)
		return err
	})
}

// AddButton renders the add button, disabled until an entry can be added.
func AddButton(enabled bool) sse.Component {
	return sse.ComponentFunc(func(_ context.Context, w io.Writer) error {
		disabled := " disabled"
		if enabled {
			disabled = ""
		}
		_, err := fmt.Fprintf(w, `<button id="add-button" data-on-click="@post('/add')"%s>Add</button>`, disabled)
		return err
	})
}

// EntriesTable renders the added entries, already sorted by the form.
func EntriesTable(entries []Entry) sse.Component {
	return sse.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(entries) == 0 {
			_, err := fmt.Fprint(w, `<div id="entries"><p>No entries yet.</p></div>`)
			return err
		}
		if _, err := fmt.Fprint(w, `<div id="entries"><table><thead><tr><th>Name</th><th>Location</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, `<tr id="entry-%s"><td>%s</td><td>%s</td></tr>`,
				e.ID, html.EscapeString(e.Name), html.EscapeString(e.Location)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</tbody></table></div>`)
		return err
	})
}
