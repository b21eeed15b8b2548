package archecs

import "reflect"

// Resources is a small generic key-value store for host-scoped singletons
// that aren't entity data — a shared RNG, a frame clock, a render target —
// grounded on the teacher's Resources (resources.go), which is kept almost
// verbatim since its design (slice + type map + free-id list, one instance
// of a type at a time) already fits this role precisely; it is deliberately
// keyed by reflect.Type rather than the component registry's id space,
// since resources never appear in an archetype mask.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

func newResources() *Resources {
	return &Resources{types: make(map[reflect.Type]int)}
}

// Add stores res and returns its slot id. Panics if a resource of the same
// concrete type is already present.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("archecs: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if _, ok := r.types[t]; ok {
		panic("archecs: resource of type " + t.String() + " already exists")
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// RemoveResource clears the resource of type T if present. Resources are
// always stored and looked up by their pointer type (*T), matching what
// Add actually receives: callers register a resource with Add(&value).
func RemoveResource[T any](r *Resources) {
	t := reflect.TypeOf((*T)(nil))
	id, ok := r.types[t]
	if !ok {
		return
	}
	r.items[id] = nil
	delete(r.types, t)
	r.freeIDs = append(r.freeIDs, id)
}

// HasResource reports whether a resource of type T is currently stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeOf((*T)(nil))]
	return ok
}

// GetResource returns the resource of type T, or nil if none is stored.
func GetResource[T any](r *Resources) *T {
	id, ok := r.types[reflect.TypeOf((*T)(nil))]
	if !ok {
		return nil
	}
	res, _ := r.items[id].(*T)
	return res
}

// Clear removes every stored resource.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}
