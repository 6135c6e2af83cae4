package locale

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/text/language"
)

// countingFormatter records how often the underlying formatter runs.
type countingFormatter struct {
	calls atomic.Int64
	inner DateFormatter
}

func (c *countingFormatter) FormatDate(t time.Time, tag language.Tag, opts Options) string {
	c.calls.Add(1)
	return c.inner.FormatDate(t, tag, opts)
}

func newCounting() *countingFormatter {
	return &countingFormatter{inner: PatternFormatter{}}
}

func TestBindingFormatNormalizesSeparators(t *testing.T) {
	b := Bind("en-US", nil, nil)
	got := b.Format(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	if got != "03-05-2024" {
		t.Fatalf("Format = %q, want 03-05-2024", got)
	}
}

func TestBindingFormatIsCached(t *testing.T) {
	f := newCounting()
	b := Bind("en-US", f, NewDateCache())
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	first := b.Format(date)
	second := b.Format(date)

	if first != second {
		t.Fatalf("Format not idempotent: %q vs %q", first, second)
	}
	if n := f.calls.Load(); n != 1 {
		t.Fatalf("formatter calls = %d, want 1", n)
	}
}

func TestBindingsShareCacheWithoutLocaleLeakage(t *testing.T) {
	f := newCounting()
	cache := NewDateCache()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	us := Bind("en-US", f, cache).Format(date)
	de := Bind("de-DE", f, cache).Format(date)

	if us != "03-05-2024" {
		t.Errorf("en-US = %q", us)
	}
	if de != "05.03.2024" {
		t.Errorf("de-DE = %q, leaked en-US result?", de)
	}
	if n := f.calls.Load(); n != 2 {
		t.Errorf("formatter calls = %d, want 2", n)
	}
	if cache.Len() != 2 {
		t.Errorf("cache entries = %d, want 2", cache.Len())
	}

	// Switching back hits the en-US entry.
	if again := Bind("en-US", f, cache).Format(date); again != us {
		t.Errorf("en-US after switch = %q, want %q", again, us)
	}
	if n := f.calls.Load(); n != 2 {
		t.Errorf("formatter calls after switch back = %d, want 2", n)
	}
}

func TestBindingDistinguishesTimesOfDay(t *testing.T) {
	f := newCounting()
	b := Bind("en-US", f, nil)
	b.Format(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC))
	b.Format(time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC))
	if n := f.calls.Load(); n != 2 {
		t.Fatalf("formatter calls = %d, want 2", n)
	}
}

func TestBindingZeroTimePropagates(t *testing.T) {
	got := Bind("en-US", nil, nil).Format(time.Time{})
	if got != "01-01-1" {
		t.Fatalf("Format(zero) = %q, want 01-01-1", got)
	}
}

func TestDateCacheConcurrentAccess(t *testing.T) {
	f := newCounting()
	cache := NewDateCache()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Bind("en-US", f, cache).Format(date)
		}()
	}
	wg.Wait()

	if n := f.calls.Load(); n != 1 {
		t.Fatalf("formatter calls = %d, want 1", n)
	}
}

func TestCanonicalDateStripsMonotonic(t *testing.T) {
	now := time.Now()
	if CanonicalDate(now) != CanonicalDate(now.Round(0)) {
		t.Fatal("monotonic clock reading leaked into canonical date")
	}
}
