package engine

import (
	"time"

	"github.com/lixenwraith/templer/components"
)

// EntityID is a stable handle into the world arena, never reused within a run
type EntityID uint64

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// slot is one arena entry, removal only flags it until the arena compacts
type slot struct {
	id      EntityID
	entity  *components.Entity
	removed bool
}

// arena keeps enemies in spawn order with index-stable removal
type arena struct {
	slots  []slot
	nextID EntityID
}

func newArena() arena {
	return arena{nextID: 1}
}

// create appends an entity and returns its handle
func (a *arena) create(e *components.Entity) EntityID {
	id := a.nextID
	a.nextID++
	a.slots = append(a.slots, slot{id: id, entity: e})
	return id
}

// find returns the slot index for id, -1 when absent
func (a *arena) find(id EntityID) int {
	for i := range a.slots {
		if a.slots[i].id == id {
			return i
		}
	}
	return -1
}

// destroy flags an entity for removal at the next compaction
func (a *arena) destroy(id EntityID) bool {
	i := a.find(id)
	if i < 0 || a.slots[i].removed {
		return false
	}
	a.slots[i].removed = true
	return true
}

// compact drops flagged slots preserving the order of the rest
func (a *arena) compact() int {
	kept := a.slots[:0]
	for _, s := range a.slots {
		if !s.removed {
			kept = append(kept, s)
		}
	}
	removed := len(a.slots) - len(kept)
	// Release dropped pointers held past the new length
	for i := len(kept); i < len(a.slots); i++ {
		a.slots[i] = slot{}
	}
	a.slots = kept
	return removed
}

// clear drops every entity, handles keep increasing
func (a *arena) clear() {
	for i := range a.slots {
		a.slots[i] = slot{}
	}
	a.slots = a.slots[:0]
}
