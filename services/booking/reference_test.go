package booking

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNextFormatAndSequence(t *testing.T) {
	g := NewReferenceGenerator(nil)
	g.now = fixedClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	g.resetDate.Store(g.today())

	first := g.Next()
	if first != "HBK-2026-00001" {
		t.Errorf("first reference = %q, want HBK-2026-00001", first)
	}
	second := g.Next()
	if second != "HBK-2026-00002" {
		t.Errorf("second reference = %q, want HBK-2026-00002", second)
	}
}

func TestNextResetsOnNewDay(t *testing.T) {
	current := time.Date(2026, 3, 15, 23, 50, 0, 0, time.UTC)
	var mu sync.Mutex
	g := NewReferenceGenerator(nil)
	g.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	g.resetDate.Store(g.today())

	for i := 0; i < 3; i++ {
		g.Next()
	}

	mu.Lock()
	current = time.Date(2026, 3, 16, 0, 5, 0, 0, time.UTC)
	mu.Unlock()

	got := g.Next()
	if got != "HBK-2026-00001" {
		t.Errorf("first reference after rollover = %q, want HBK-2026-00001", got)
	}
}

func TestNextConcurrentUniqueness(t *testing.T) {
	g := NewReferenceGenerator(nil)

	const n = 1000
	refs := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs <- g.Next()
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]bool, n)
	for ref := range refs {
		if seen[ref] {
			t.Fatalf("duplicate reference issued: %s", ref)
		}
		seen[ref] = true
	}
	if len(seen) != n {
		t.Errorf("issued %d distinct references, want %d", len(seen), n)
	}
}

func TestNewReferenceGeneratorSeedsFromRepository(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.countToday = 41

	g := NewReferenceGenerator(repo)
	want := fmt.Sprintf("HBK-%d-00042", time.Now().Year())
	if got := g.Next(); got != want {
		t.Errorf("reference = %q, want %q", got, want)
	}
}

func TestNewReferenceGeneratorCountErrorStartsAtZero(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.countErr = fmt.Errorf("connection refused")

	g := NewReferenceGenerator(repo)
	want := fmt.Sprintf("HBK-%d-00001", time.Now().Year())
	if got := g.Next(); got != want {
		t.Errorf("reference = %q, want %q", got, want)
	}
}
