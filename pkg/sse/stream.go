package sse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Component is anything renderable into a stream patch. templ components
// satisfy it directly; hand-built components use templ.ComponentFunc.
type Component = templ.Component

// ComponentFunc adapts a render function into a Component.
func ComponentFunc(fn func(ctx context.Context, w io.Writer) error) Component {
	return templ.ComponentFunc(fn)
}

// Stream is an open Server-Sent Events connection to a DataStar frontend.
// It is bound to the request's lifetime: once the client disconnects, Done is
// closed and further sends fail with the context error.
type Stream struct {
	gen *datastar.ServerSentEventGenerator
	ctx context.Context
}

// NewStream upgrades the request to an SSE stream. It fails with
// ErrNotDataStar when the request does not come from a DataStar frontend.
func NewStream(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	if !IsDataStar(r) {
		return nil, ErrNotDataStar
	}
	return &Stream{
		gen: datastar.NewSSE(w, r),
		ctx: r.Context(),
	}, nil
}

// Context returns the request context bound to the stream.
func (s *Stream) Context() context.Context {
	return s.ctx
}

// Done is closed when the client disconnects or the request is cancelled.
func (s *Stream) Done() <-chan struct{} {
	return s.ctx.Done()
}

// SendComponent patches a rendered component into the client DOM.
func (s *Stream) SendComponent(c Component, opts ...PatchOption) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	return s.gen.PatchElementTempl(c, opts...)
}

// SendSignal updates a single frontend signal value.
func (s *Stream) SendSignal(name string, value any) error {
	return s.SendSignals(map[string]any{name: value})
}

// SendSignals updates multiple frontend signal values at once.
func (s *Stream) SendSignals(signals map[string]any) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.gen.PatchSignals(data)
}
