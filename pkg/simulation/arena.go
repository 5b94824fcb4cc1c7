package simulation

import "github.com/pjankiewicz/nbody/pkg/physics"

// --- Arena ---

// Handle is a stable reference to a live body. A handle is never reused
// while its body lives; removing the body bumps the slot generation, so a
// kept handle turns detectably stale instead of aliasing a newcomer.
type Handle struct {
	index      uint32
	generation uint32
}

// Valid reports whether h was ever issued by an arena (the zero Handle was not).
func (h Handle) Valid() bool { return h.generation != 0 }

type slot struct {
	body       physics.Body
	generation uint32
	live       bool
}

// Arena is the authoritative live-body collection: contiguous slots with
// generation-checked handles, O(1) insert/remove/lookup and deterministic
// slot-order iteration (the pair order the engine relies on).
type Arena struct {
	slots []slot
	free  []uint32
	count int
}

func NewArena() *Arena { return &Arena{} }

// Len returns the number of live bodies.
func (a *Arena) Len() int { return a.count }

// Insert adds a body and returns its handle.
func (a *Arena) Insert(b physics.Body) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{generation: 1})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.body = b
	s.live = true
	a.count++
	return Handle{index: idx, generation: s.generation}
}

// Remove destroys the body behind h. Stale and already-removed handles are
// ignored and report false.
func (a *Arena) Remove(h Handle) bool {
	if !a.owns(h) {
		return false
	}
	s := &a.slots[h.index]
	s.live = false
	s.generation++
	s.body = physics.Body{}
	a.free = append(a.free, h.index)
	a.count--
	return true
}

// Get returns the live body behind h.
func (a *Arena) Get(h Handle) (*physics.Body, bool) {
	if !a.owns(h) {
		return nil, false
	}
	return &a.slots[h.index].body, true
}

func (a *Arena) owns(h Handle) bool {
	return h.generation != 0 && int(h.index) < len(a.slots) &&
		a.slots[h.index].live && a.slots[h.index].generation == h.generation
}

// Clear removes every body at once. The free list is rebuilt so that the
// next insertions fill the arena front to back again.
func (a *Arena) Clear() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.live {
			s.live = false
			s.generation++
			s.body = physics.Body{}
		}
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}

// Each visits every live body in slot order.
func (a *Arena) Each(fn func(Handle, *physics.Body)) {
	for i := range a.slots {
		if a.slots[i].live {
			fn(Handle{index: uint32(i), generation: a.slots[i].generation}, &a.slots[i].body)
		}
	}
}

// Snapshot appends copies of the live bodies and their handles in slot
// order, reusing the given backing slices.
func (a *Arena) Snapshot(bodies []physics.Body, handles []Handle) ([]physics.Body, []Handle) {
	for i := range a.slots {
		if a.slots[i].live {
			bodies = append(bodies, a.slots[i].body)
			handles = append(handles, Handle{index: uint32(i), generation: a.slots[i].generation})
		}
	}
	return bodies, handles
}
