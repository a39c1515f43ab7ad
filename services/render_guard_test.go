package services

import (
	"context"
	"errors"
	"testing"
)

func TestRenderGuardRejectsConcurrentSameDocument(t *testing.T) {
	guard := NewRenderGuard()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := guard.Do(context.Background(), "doc1", func() ([]byte, error) {
			close(started)
			<-release
			return []byte("pdf"), nil
		})
		done <- err
	}()

	<-started

	if _, err := guard.Do(context.Background(), "doc1", func() ([]byte, error) {
		return nil, nil
	}); !errors.Is(err, ErrRenderInFlight) {
		t.Errorf("second render of the same document: err = %v, want ErrRenderInFlight", err)
	}

	// A different document is not blocked.
	if _, err := guard.Do(context.Background(), "doc2", func() ([]byte, error) {
		return []byte("other"), nil
	}); err != nil {
		t.Errorf("render of a different document failed: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Errorf("first render failed: %v", err)
	}

	// Slot is free again once the render completes.
	if _, err := guard.Do(context.Background(), "doc1", func() ([]byte, error) {
		return []byte("pdf"), nil
	}); err != nil {
		t.Errorf("render after release failed: %v", err)
	}
}

func TestRenderGuardCancelledContext(t *testing.T) {
	guard := NewRenderGuard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := guard.Do(ctx, "doc1", func() ([]byte, error) {
		called = true
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if called {
		t.Error("render should not run under an already-cancelled context")
	}
}

func TestRenderGuardDiscardsOutputOnMidRenderCancel(t *testing.T) {
	guard := NewRenderGuard()
	ctx, cancel := context.WithCancel(context.Background())

	out, err := guard.Do(ctx, "doc1", func() ([]byte, error) {
		cancel()
		return []byte("partial"), nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if out != nil {
		t.Errorf("out = %q, want nil after cancellation", out)
	}
}

func TestRenderGuardPropagatesRenderError(t *testing.T) {
	guard := NewRenderGuard()
	wantErr := errors.New("render exploded")

	_, err := guard.Do(context.Background(), "doc1", func() ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
