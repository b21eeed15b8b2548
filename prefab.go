package archecs

import "reflect"

// A Prefab is a name plus an ordered list of component initializers (§4.9).
// Grounded on the teacher's closure-capturing Builder[T] (builder.go) for
// the idea of a per-type adapter captured at registration time, but
// restated as a small type-erased interface per a later design note in the
// original source review ("prefer a small interface { invoke(...) }
// implemented by a per-type adapter") rather than a closure value, since Go
// forbids a generic method set on Prefab itself (no generic methods) — the
// interface is the natural way to hold a heterogeneous, ordered list of
// per-type initializers in one slice.
type Prefab struct {
	name         string
	initializers []prefabInitializer
}

type prefabInitializer interface {
	apply(w *World, e Entity, overrides map[ComponentID]any)
}

// componentInitializer is the per-type adapter: it remembers T's id and
// default value, and on apply either writes the default or, if the spawn
// call supplied an override of type T, writes that instead. Per the design
// note in §9 ("prefer keying by the registry's assigned component id"),
// overrides are looked up by ComponentID rather than by a stringified type
// name.
type componentInitializer[T any] struct {
	id  ComponentID
	def T
}

func (ci *componentInitializer[T]) apply(w *World, e Entity, overrides map[ComponentID]any) {
	value := ci.def
	if ov, ok := overrides[ci.id]; ok {
		value = ov.(T)
	}
	AddComponent[T](w, e, value)
}

// InitComponent builds a prefab initializer for component type T with
// default value def, for use in RegisterPrefab's initializer list.
func InitComponent[T any](w *World, def T) prefabInitializer {
	id := GetComponentID[T](w)
	return &componentInitializer[T]{id: id, def: def}
}

// RegisterPrefab names an ordered list of initializers for later use by
// Spawn. Re-registering an existing name replaces it.
func RegisterPrefab(w *World, name string, initializers ...prefabInitializer) {
	w.prefabs[name] = &Prefab{name: name, initializers: initializers}
}

// Spawn creates a new entity and applies name's prefab initializers in
// declaration order; an initializer uses the override of matching
// component type from overrides if one was passed, else its registered
// default (§4.9). Returns ErrUnknownPrefab if name was never registered.
func Spawn(w *World, name string, overrides ...any) (Entity, error) {
	prefab, ok := w.prefabs[name]
	if !ok {
		return 0, ErrUnknownPrefab
	}
	var overrideMap map[ComponentID]any
	if len(overrides) > 0 {
		overrideMap = make(map[ComponentID]any, len(overrides))
		for _, ov := range overrides {
			id, known := w.components.tryIDFor(reflect.TypeOf(ov))
			if !known {
				continue
			}
			overrideMap[id] = ov
		}
	}
	e := w.AddEntity()
	for _, init := range prefab.initializers {
		init.apply(w, e, overrideMap)
	}
	return e, nil
}
