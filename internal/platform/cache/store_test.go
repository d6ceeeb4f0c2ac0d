package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "board", nil
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
			v, err := store.GetOrLoad(context.Background(), "goalie:board", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "board" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "season:current", 7)
	if v, ok := store.Get(context.Background(), "season:current"); !ok || v.(int) != 7 {
		t.Fatalf("expected cached value, got %v %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "season:current"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "season:list", 1)
	store.Set(ctx, "season:current", 2)
	store.Set(ctx, "division:list", 3)

	store.DeletePrefix(ctx, "season:")

	if _, ok := store.Get(ctx, "season:list"); ok {
		t.Fatalf("expected season:list removed")
	}
	if _, ok := store.Get(ctx, "division:list"); !ok {
		t.Fatalf("expected division:list kept")
	}
}

func TestLoad_TypedValueAndErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	got, err := Load(ctx, store, "divisions", func(context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	if err != nil || len(got) != 3 {
		t.Fatalf("unexpected result %v err=%v", got, err)
	}

	loadErr := errors.New("db down")
	_, err = Load(ctx, store, "seasons", func(context.Context) ([]int, error) {
		return nil, loadErr
	})
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "seasons"); ok {
		t.Fatalf("failed load must not be cached")
	}

	store.Set(ctx, "mismatch", "text")
	if _, err := Load(ctx, store, "mismatch", func(context.Context) (int, error) { return 1, nil }); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
