package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "player:p1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errors.New("unexpected cached value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("GetOrLoad failed: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("unexpected loader calls: got=%d want=1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 42)
	if v, ok := store.Get(context.Background(), "k"); !ok || v != 42 {
		t.Fatalf("unexpected fresh entry: v=%d ok=%v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_LoaderErrorNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	wantErr := errors.New("db down")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 9, nil })
	if err != nil || v != 9 {
		t.Fatalf("expected reload after error: v=%d err=%v", v, err)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	ctx := context.Background()
	store.Set(ctx, "player:l1:p1", "a")
	store.Set(ctx, "player:l1:p2", "b")
	store.Set(ctx, "player:l2:p1", "c")

	store.DeletePrefix(ctx, "player:l1:")

	if _, ok := store.Get(ctx, "player:l1:p1"); ok {
		t.Fatalf("expected prefix entry removed")
	}
	if _, ok := store.Get(ctx, "player:l2:p1"); !ok {
		t.Fatalf("expected other league entry kept")
	}
}
