package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestLRU_GetOrCreate(t *testing.T) {
	c := New[int, string](2)
	var created int
	mk := func(s string) func() string {
		return func() string { created++; return s }
	}

	if got := c.GetOrCreate(1, mk("a")); got != "a" {
		t.Errorf("GetOrCreate(1) = %q, want a", got)
	}
	if got := c.GetOrCreate(1, mk("x")); got != "a" {
		t.Errorf("second GetOrCreate(1) = %q, want cached a", got)
	}
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 || st.Capacity != 2 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.GetOrCreate(1, func() int { return 10 })
	c.GetOrCreate(2, func() int { return 20 })

	// Touch 1 so 2 becomes the oldest.
	if v, ok := c.Get(1); !ok || v != 10 {
		t.Fatalf("Get(1) = %d, %v", v, ok)
	}
	c.GetOrCreate(3, func() int { return 30 })

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d missing", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRU_CapacityOne(t *testing.T) {
	for _, capacity := range []int{0, -3, 1} {
		c := New[string, int](capacity)
		c.GetOrCreate("a", func() int { return 1 })
		c.GetOrCreate("b", func() int { return 2 })
		if c.Len() != 1 {
			t.Errorf("New(%d): Len() = %d, want 1", capacity, c.Len())
		}
		if _, ok := c.Get("b"); !ok {
			t.Errorf("New(%d): newest entry missing", capacity)
		}
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := New[int, int](8)
	var created atomic.Int64

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCreate(i%4, func() int {
				created.Add(1)
				return i
			})
		}()
	}
	wg.Wait()

	if created.Load() != 4 {
		t.Errorf("created = %d, want 4", created.Load())
	}
}

func BenchmarkLRU_Hit(b *testing.B) {
	c := New[int, int](4)
	c.GetOrCreate(1, func() int { return 1 })
	for b.Loop() {
		c.Get(1)
	}
}
