package core

import "testing"

type shot struct{ x int }

func TestPoolAcquireExhaustion(t *testing.T) {
	p := NewPool[shot](2)

	h1, ok1 := p.Acquire()
	h2, ok2 := p.Acquire()
	_, ok3 := p.Acquire()

	if !ok1 || !ok2 {
		t.Fatal("Acquire() failed below capacity")
	}
	if ok3 {
		t.Error("Acquire() should fail when exhausted")
	}
	if h1 == h2 {
		t.Error("Acquire() returned the same handle twice")
	}
	if p.Len() != 2 || p.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d, expected 2/2", p.Len(), p.Cap())
	}
}

func TestPoolStaleHandle(t *testing.T) {
	p := NewPool[shot](1)

	h, _ := p.Acquire()
	item, _ := p.Get(h)
	item.x = 7

	if !p.Release(h) {
		t.Fatal("Release() of live handle failed")
	}
	if p.Release(h) {
		t.Error("double Release() should report false")
	}

	h2, ok := p.Acquire()
	if !ok {
		t.Fatal("Acquire() after release failed")
	}
	if _, ok := p.Get(h); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	item2, ok := p.Get(h2)
	if !ok || item2.x != 0 {
		t.Errorf("reacquired item = %+v, expected zeroed", item2)
	}
}

func TestPoolZeroHandle(t *testing.T) {
	p := NewPool[shot](3)
	var h Handle
	if h.Valid() {
		t.Error("zero handle reported valid")
	}
	if _, ok := p.Get(h); ok {
		t.Error("zero handle resolved")
	}
	if p.Release(h) {
		t.Error("zero handle released")
	}
}

func TestPoolEachRelease(t *testing.T) {
	p := NewPool[shot](4)
	for i := 0; i < 4; i++ {
		h, _ := p.Acquire()
		item, _ := p.Get(h)
		item.x = i
	}

	p.Each(func(h Handle, s *shot) {
		if s.x%2 == 0 {
			p.Release(h)
		}
	})

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", p.Len())
	}
	var xs []int
	p.Each(func(_ Handle, s *shot) { xs = append(xs, s.x) })
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 3 {
		t.Errorf("remaining = %v, expected [1 3]", xs)
	}

	p.Reset()
	if p.Len() != 0 || len(p.Handles()) != 0 {
		t.Error("Reset() left active items")
	}
}
