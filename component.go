package archecs

import (
	"fmt"
	"reflect"
)

// ComponentID is a dense identifier in [0,MaxComponentTypes) assigned to a
// component type on first observation within a World. Assignment is stable
// for the World's lifetime; a second World assigns its own ids
// independently, since the Non-goals of this package forbid type
// unregistration but say nothing about sharing a registry across worlds.
type ComponentID uint8

// TagID is the tag-space equivalent of ComponentID: an independent id
// space, so a component and a tag may carry the same numeric value without
// colliding.
type TagID uint8

const (
	// MaxComponentTypes is the fixed limit on distinct component types per World.
	MaxComponentTypes = 64
	// MaxTagTypes is the fixed limit on distinct tag types per World.
	MaxTagTypes = 64
)

// componentRegistry assigns dense ids to component types and remembers each
// type's byte size, grounded on the teacher's package-level
// typeToID/idToType/componentSizes (component.go), but scoped to a single
// World instead of process-global: reflect.Type is still the lookup key,
// which avoids the stringly-typed-name collision the teacher's design notes
// warn about, since two distinct Go types can never share a reflect.Type.
type componentRegistry struct {
	typeToID map[reflect.Type]ComponentID
	idToType [MaxComponentTypes]reflect.Type
	sizes    [MaxComponentTypes]uintptr
	next     ComponentID
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{typeToID: make(map[reflect.Type]ComponentID, 16)}
}

// idFor assigns (or returns the existing) id for reflect.Type t.
func (r *componentRegistry) idFor(t reflect.Type) ComponentID {
	if id, ok := r.typeToID[t]; ok {
		return id
	}
	if int(r.next) >= MaxComponentTypes {
		panic(&CapacityExceededError{Kind: "component", Limit: MaxComponentTypes, Type: t})
	}
	id := r.next
	r.typeToID[t] = id
	r.idToType[id] = t
	r.sizes[id] = t.Size()
	r.next++
	return id
}

func (r *componentRegistry) tryIDFor(t reflect.Type) (ComponentID, bool) {
	id, ok := r.typeToID[t]
	return id, ok
}

func (r *componentRegistry) sizeOf(id ComponentID) uintptr {
	return r.sizes[id]
}

func (r *componentRegistry) typeOf(id ComponentID) reflect.Type {
	return r.idToType[id]
}

// GetComponentID returns the id for T on w, assigning it on first use.
// Panics with a *CapacityExceededError once 64 component types have been
// registered on w.
func GetComponentID[T any](w *World) ComponentID {
	return w.components.idFor(reflect.TypeFor[T]())
}

// TryComponentID returns the id for T on w and whether T has been
// registered yet. It never assigns an id and never panics.
func TryComponentID[T any](w *World) (ComponentID, bool) {
	return w.components.tryIDFor(reflect.TypeFor[T]())
}

// GetTagID returns the id for T in w's tag id space, assigning it on first
// use. Panics with a *CapacityExceededError once 64 tag types have been
// registered on w.
func GetTagID[T any](w *World) TagID {
	return w.tags.idFor(reflect.TypeFor[T]())
}

// TryTagID returns the id for T in w's tag id space and whether T has been
// registered yet.
func TryTagID[T any](w *World) (TagID, bool) {
	return w.tags.tryIDFor(reflect.TypeFor[T]())
}

// tagRegistry mirrors componentRegistry in an independent id space; it
// carries no per-id storage beyond the assigned number, since tags live
// entirely in the entity's bitmask (§4.6).
type tagRegistry struct {
	typeToID map[reflect.Type]TagID
	next     TagID
}

func newTagRegistry() *tagRegistry {
	return &tagRegistry{typeToID: make(map[reflect.Type]TagID, 16)}
}

func (r *tagRegistry) idFor(t reflect.Type) TagID {
	if id, ok := r.typeToID[t]; ok {
		return id
	}
	if int(r.next) >= MaxTagTypes {
		panic(&CapacityExceededError{Kind: "tag", Limit: MaxTagTypes, Type: t})
	}
	id := r.next
	r.typeToID[t] = id
	r.next++
	return id
}

func (r *tagRegistry) tryIDFor(t reflect.Type) (TagID, bool) {
	id, ok := r.typeToID[t]
	return id, ok
}

// componentName is used only for diagnostics (panic messages, log fields);
// it is never used as a registry lookup key.
func componentName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", t.PkgPath(), t.Name())
}
