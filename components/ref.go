package components

import "github.com/yohamta/donburi"

// EntityRef is an optional reference to another entity. Resolving it goes
// through the world, so a destroyed or recycled target is a miss.
type EntityRef struct {
	entity donburi.Entity
	valid  bool
}

func RefTo(e donburi.Entity) EntityRef {
	return EntityRef{entity: e, valid: true}
}

func (r EntityRef) Entity() (donburi.Entity, bool) {
	return r.entity, r.valid
}

func (r EntityRef) IsSet() bool {
	return r.valid
}

// Is reports whether r currently points at e.
func (r EntityRef) Is(e donburi.Entity) bool {
	return r.valid && r.entity == e
}

func (r *EntityRef) Set(e donburi.Entity) {
	r.entity = e
	r.valid = true
}

func (r *EntityRef) Clear() {
	*r = EntityRef{}
}

// Entry resolves the reference. ok is false when it is unset or the target
// no longer exists.
func (r EntityRef) Entry(w donburi.World) (entry *donburi.Entry, ok bool) {
	if !r.valid || !w.Valid(r.entity) {
		return nil, false
	}
	return w.Entry(r.entity), true
}
