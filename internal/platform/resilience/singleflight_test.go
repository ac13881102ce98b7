package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var sharedCount int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, shared := g.Do("league-1:gw-3", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if val != "ok" {
				t.Errorf("unexpected value: %q", val)
			}
			if shared {
				atomic.AddInt32(&sharedCount, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&sharedCount); got != workers-1 {
		t.Fatalf("unexpected shared callers: got=%d want=%d", got, workers-1)
	}
}

func TestSingleFlight_PanicBecomesError(t *testing.T) {
	var g SingleFlight[int]

	_, err, _ := g.Do("k", func() (int, error) {
		panic("boom")
	})
	if err == nil {
		t.Fatalf("expected panic to surface as error")
	}

	val, err, _ := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil || val != 7 {
		t.Fatalf("key must be reusable after panic: val=%d err=%v", val, err)
	}
}

func TestSingleFlight_ErrorReturned(t *testing.T) {
	var g SingleFlight[int]
	want := errors.New("storage down")

	_, err, _ := g.Do("k", func() (int, error) { return 0, want })
	if !errors.Is(err, want) {
		t.Fatalf("unexpected error: got=%v want=%v", err, want)
	}
}
