package sse

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// acceptHeader marks requests expecting a Server-Sent Events stream.
	acceptHeader = "text/event-stream"
	// queryParam is the query parameter DataStar attaches for signals.
	queryParam = "datastar"
)

// Patch mode aliases for callers that don't import datastar directly.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchRemove  = datastar.ElementPatchModeRemove
)

// PatchOption configures how a component is merged into the DOM.
type PatchOption = datastar.PatchElementOption

// WithTarget sets the CSS selector of the element to patch.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets the merge strategy for the patch.
func WithPatchMode(mode datastar.ElementPatchMode) PatchOption {
	return datastar.WithMode(mode)
}

// ReadSignals unmarshals the DataStar signals carried by the request into v,
// from the query parameter for GET requests and from the body otherwise.
func ReadSignals(r *http.Request, v any) error {
	return datastar.ReadSignals(r, v)
}

// IsDataStar reports whether the request originates from a DataStar frontend,
// either expecting an SSE stream or carrying DataStar signals.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), acceptHeader) {
		return true
	}
	if r.URL.Query().Has(queryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
