package archecs

import "fmt"

// This file is the central algorithm of the package: archetype transitions
// on component add/remove (spec §4.5). Grounded on the teacher's
// AddComponent/SetComponent/RemoveComponent (api.go) and its Transition/
// CopyOp caching (referenced from operations.go), with one deliberate
// behavioural change from the teacher: per spec §9's Open Question
// resolution, adding a component the entity already has is in-place
// assignment with no migration at all, not an unconditional migrate-into-
// the-same-archetype round trip.

func mustAliveRecord(w *World, e Entity, op string) *entityRecord {
	rec, ok := w.record(e)
	if !ok {
		panic(fmt.Sprintf("archecs: %s called on a freed or unknown entity (id=%d version=%d)", op, e.Id(), e.Version()))
	}
	return rec
}

// transitionFor returns the cached (target archetype, column copy plan) for
// moving out of oldArch by adding/removing component k, creating both the
// target archetype and the cache entry on first observation of this edge.
func (w *World) transitionFor(cache map[*Archetype]map[ComponentID]*transition, oldArch *Archetype, k ComponentID, newMask componentMask, removing bool) *transition {
	byComp, ok := cache[oldArch]
	if !ok {
		byComp = make(map[ComponentID]*transition)
		cache[oldArch] = byComp
	}
	if t, ok := byComp[k]; ok {
		return t
	}
	newArch := w.getOrCreateArchetype(newMask)
	copies := make([]copyOp, 0, len(oldArch.componentIDs))
	for _, id := range oldArch.componentIDs {
		if removing && id == k {
			continue
		}
		toSlot := newArch.columnSlot[id]
		if toSlot == noSlot {
			continue
		}
		copies = append(copies, copyOp{fromSlot: int(oldArch.columnSlot[id]), toSlot: int(toSlot)})
	}
	t := &transition{target: newArch, copies: copies}
	byComp[k] = t
	return t
}

// migrate appends e to newArch, copies every overlapping column from
// oldArch's oldRow, swap-removes e from oldArch, and fixes up the record of
// whichever entity (if any) was swapped into the vacated row. It returns
// e's new row in newArch.
func (w *World) migrate(e Entity, rec *entityRecord, oldArch *Archetype, oldRow int, t *transition) int {
	newArch := t.target
	newRow := newArch.append(e)
	for _, c := range t.copies {
		newArch.columns[c.toSlot].copyFrom(oldArch.columns[c.fromSlot], oldRow, newRow)
	}
	moved := oldArch.removeRow(oldRow)
	if !moved.IsZero() {
		if movedRec, ok := w.record(moved); ok {
			movedRec.row = int32(oldRow)
		}
	}
	rec.archetypeIndex = int32(newArch.index)
	rec.row = int32(newRow)
	return newRow
}

// AddComponent sets e's T component to value, migrating e into the
// archetype for (current mask | T) if it doesn't already carry T. If e
// already carries T, this is in-place assignment: no migration, no
// archetype lookup beyond the presence check (§9 resolution #1). Returns a
// pointer to the stored value, valid only until the next operation that may
// migrate e or grow its column (§4.5 pointer-stability note).
//
// Calling AddComponent/RemoveComponent on a freed entity is undefined
// behaviour; this implementation asserts via panic rather than silently
// reattaching, per §4.5's edge case. GetComponent and HasComponent instead
// report absence (nil / false) for a freed entity.
func AddComponent[T any](w *World, e Entity, value T) *T {
	rec := mustAliveRecord(w, e, "AddComponent")
	k := GetComponentID[T](w)
	oldArch := w.archetypes[rec.archetypeIndex]

	if oldArch.mask.has(k) {
		col := oldArch.columnFor(k)
		ptr := (*T)(col.pointerTo(int(rec.row)))
		*ptr = value
		return ptr
	}

	oldRow := int(rec.row)
	t := w.transitionFor(w.addTransitions, oldArch, k, oldArch.mask.with(k), false)
	newRow := w.migrate(e, rec, oldArch, oldRow, t)

	col := t.target.columnFor(k)
	if col == nil {
		postconditionViolated("archetype %x missing freshly-added component %d", t.target.mask, k)
	}
	ptr := (*T)(col.pointerTo(newRow))
	*ptr = value
	return ptr
}

// AddComponentDefault is AddComponent with the zero value of T (spec §6:
// "add_component<T>(handle) -> pointer<T> (default value)").
func AddComponentDefault[T any](w *World, e Entity) *T {
	var zero T
	return AddComponent[T](w, e, zero)
}

// GetComponent returns a pointer to e's T component, or nil if e doesn't
// carry T or isn't alive (the absence sentinel of §7, not an error).
func GetComponent[T any](w *World, e Entity) *T {
	rec, ok := w.record(e)
	if !ok {
		return nil
	}
	k, known := TryComponentID[T](w)
	if !known {
		return nil
	}
	arch := w.archetypes[rec.archetypeIndex]
	col := arch.columnFor(k)
	if col == nil {
		return nil
	}
	return (*T)(col.pointerTo(int(rec.row)))
}

// HasComponent reports whether e is alive and carries a T component.
func HasComponent[T any](w *World, e Entity) bool {
	rec, ok := w.record(e)
	if !ok {
		return false
	}
	k, known := TryComponentID[T](w)
	if !known {
		return false
	}
	return w.archetypes[rec.archetypeIndex].mask.has(k)
}

// RemoveComponent removes e's T component if present, migrating e into the
// archetype for (current mask &^ T). Removing a component not present, or
// removing from the empty archetype, is a documented SilentNoOp (§4.5 edge
// case / §7).
func RemoveComponent[T any](w *World, e Entity) {
	rec := mustAliveRecord(w, e, "RemoveComponent")
	k, known := TryComponentID[T](w)
	if !known {
		return
	}
	oldArch := w.archetypes[rec.archetypeIndex]
	if !oldArch.mask.has(k) {
		return
	}

	oldRow := int(rec.row)
	t := w.transitionFor(w.removeTransitions, oldArch, k, oldArch.mask.without(k), true)
	w.migrate(e, rec, oldArch, oldRow, t)
}
