package sse_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sse"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	t.Run("accept header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/updates", nil)
		r.Header.Set("Accept", "text/event-stream")
		assert.True(t, sse.IsDataStar(r))
	})

	t.Run("query parameter", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/updates?datastar=%7B%7D", nil)
		assert.True(t, sse.IsDataStar(r))
	})

	t.Run("content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("POST", "/name", nil)
		r.Header.Set("Content-Type", "application/x-datastar")
		assert.True(t, sse.IsDataStar(r))
	})

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Accept", "text/html")
		assert.False(t, sse.IsDataStar(r))
	})
}

func TestNewStreamRejectsPlainRequests(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	stream, err := sse.NewStream(w, r)
	assert.Nil(t, stream)
	assert.ErrorIs(t, err, sse.ErrNotDataStar)
}

func TestNewStreamUpgradesDataStarRequests(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/updates", nil)
	r.Header.Set("Accept", "text/event-stream")

	stream, err := sse.NewStream(w, r)
	assert.NoError(t, err)
	assert.NotNil(t, stream)
	assert.NotNil(t, stream.Context())
}
