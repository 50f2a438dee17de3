package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

// ParcelStackData is the player's ordered list of slot entities, bottom
// first.
type ParcelStackData struct {
	Slots    []donburi.Entity
	Owner    donburi.Entity
	Capacity int
}

var ParcelStack = donburi.NewComponentType[ParcelStackData]()

func (s *ParcelStackData) Len() int {
	return len(s.Slots)
}

func (s *ParcelStackData) Full() bool {
	return len(s.Slots) >= s.Capacity
}

// Top returns the most recently added slot.
func (s *ParcelStackData) Top() (donburi.Entity, bool) {
	if len(s.Slots) == 0 {
		var none donburi.Entity
		return none, false
	}
	return s.Slots[len(s.Slots)-1], true
}

// IndexOf returns the position of slot in the stack or -1.
func (s *ParcelStackData) IndexOf(slot donburi.Entity) int {
	return slices.Index(s.Slots, slot)
}

// Remove takes slot out of the order and reports whether it was present.
func (s *ParcelStackData) Remove(slot donburi.Entity) bool {
	i := s.IndexOf(slot)
	if i < 0 {
		return false
	}
	s.Slots = slices.Delete(s.Slots, i, i+1)
	return true
}

// StackSlotData ties one stack position to the parcel sitting in it. Parcel
// is empty between a forced pop and the slot's removal.
type StackSlotData struct {
	Parcel EntityRef
	Index  int
	Stack  donburi.Entity
}

var StackSlot = donburi.NewComponentType[StackSlotData]()
