package services

import (
	"context"
	"errors"
	"sync"
)

// ErrRenderInFlight is returned when a PDF render is requested for a
// document that is already being rendered.
var ErrRenderInFlight = errors.New("a render for this document is already in progress")

// RenderGuard serializes PDF generation per document. Renders of different
// documents run concurrently; a second request for the same document while
// one is in flight is rejected so the caller can show a busy state instead
// of queueing duplicate work.
type RenderGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewRenderGuard returns an empty guard.
func NewRenderGuard() *RenderGuard {
	return &RenderGuard{inFlight: map[string]struct{}{}}
}

// Do runs render for the document identified by id, holding the per-document
// slot for the duration. Returns ErrRenderInFlight when the slot is taken
// and the context error when ctx is already cancelled.
func (g *RenderGuard) Do(ctx context.Context, id string, render func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	if _, busy := g.inFlight[id]; busy {
		g.mu.Unlock()
		return nil, ErrRenderInFlight
	}
	g.inFlight[id] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inFlight, id)
		g.mu.Unlock()
	}()

	out, err := render()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Cancelled mid-render: discard the artifact so no partial or
		// unwanted file surfaces to the user.
		return nil, err
	}
	return out, nil
}
