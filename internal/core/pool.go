package core

// Handle refers to a slot in a Pool. The zero Handle never resolves.
type Handle struct {
	index int
	gen   uint32
}

// Valid reports whether h was ever issued by a pool.
func (h Handle) Valid() bool {
	return h.gen != 0
}

// Pool is a fixed-capacity set of reusable items. Acquired slots are handed
// out as generation-stamped handles, so a handle kept after its slot was
// released and reused resolves to nothing.
type Pool[T any] struct {
	items  []T
	gens   []uint32
	active []bool
	free   []int
	count  int
}

// NewPool creates a pool holding at most capacity items.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		items:  make([]T, capacity),
		gens:   make([]uint32, capacity),
		active: make([]bool, capacity),
		free:   make([]int, 0, capacity),
	}
	p.Reset()
	return p
}

// Reset releases every slot.
func (p *Pool[T]) Reset() {
	p.free = p.free[:0]
	for i := len(p.items) - 1; i >= 0; i-- {
		if p.active[i] {
			p.gens[i]++
		}
		p.active[i] = false
		p.free = append(p.free, i)
	}
	p.count = 0
}

// Acquire takes a free slot, zeroes it and returns its handle. It returns
// false when the pool is exhausted.
func (p *Pool[T]) Acquire() (Handle, bool) {
	if len(p.free) == 0 {
		return Handle{}, false
	}
	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	var zero T
	p.items[i] = zero
	p.active[i] = true
	p.gens[i]++
	if p.gens[i] == 0 {
		p.gens[i] = 1
	}
	p.count++
	return Handle{index: i, gen: p.gens[i]}, true
}

func (p *Pool[T]) live(h Handle) bool {
	return h.gen != 0 && h.index >= 0 && h.index < len(p.items) &&
		p.active[h.index] && p.gens[h.index] == h.gen
}

// Release returns the slot to the pool. Releasing a stale handle is a no-op
// and reports false.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.live(h) {
		return false
	}
	p.active[h.index] = false
	p.free = append(p.free, h.index)
	p.count--
	return true
}

// Get resolves a handle to its item.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.live(h) {
		return nil, false
	}
	return &p.items[h.index], true
}

// Each calls fn for every active item in slot order. fn may release the
// item it is given.
func (p *Pool[T]) Each(fn func(h Handle, item *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(Handle{index: i, gen: p.gens[i]}, &p.items[i])
		}
	}
}

// Handles returns the handles of all active items in slot order.
func (p *Pool[T]) Handles() []Handle {
	out := make([]Handle, 0, p.count)
	for i := range p.items {
		if p.active[i] {
			out = append(out, Handle{index: i, gen: p.gens[i]})
		}
	}
	return out
}

// Len returns the number of active items.
func (p *Pool[T]) Len() int { return p.count }

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int { return len(p.items) }
