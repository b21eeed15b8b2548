package archecs

import "go.uber.org/zap"

// DefaultInitialCapacity and DefaultGrowStep are the §6 configuration
// defaults: 1000 entity slots pre-reserved, growing by 1000 more each time
// the high-water mark is reached.
const (
	DefaultInitialCapacity = 1000
	DefaultGrowStep        = 1000
)

// World aggregates the type registry, the archetype index, the entity
// table, the prefab registry and the event subsystem (§2 item 6), and
// exposes every public operation in §6. It is not safe for concurrent
// mutation from multiple goroutines (§5); shard worlds for parallelism.
type World struct {
	components *componentRegistry
	tags       *tagRegistry

	archetypes       []*Archetype
	archetypesByMask map[componentMask]*Archetype
	archetypeVersion uint64 // bumped whenever a new archetype is created

	entityRecords []entityRecord
	freeIDs       []uint32
	nextID        uint32
	growStep      int

	addTransitions    map[*Archetype]map[ComponentID]*transition
	removeTransitions map[*Archetype]map[ComponentID]*transition

	prefabs map[string]*Prefab
	events  *eventQueue

	resources *Resources

	log *zap.Logger
}

// WorldOption configures a World at construction time. The variadic-option
// pattern and the zap.Logger it installs are grounded on
// rdtc8822-debug-L1JGO-Whale's constructor style (e.g.
// internal/net/server.go's NewServer(..., log *zap.Logger)); this package
// folds the logger into a functional option instead of a positional
// parameter so that the overwhelming majority of callers who don't care
// about logging aren't forced to thread a nop logger through every
// NewWorld call.
type WorldOption func(*World)

// WithLogger installs a structured logger on the World. Without this
// option the World logs nothing (zap.NewNop()).
func WithLogger(log *zap.Logger) WorldOption {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// NewWorld constructs a World with the given initial entity capacity and
// grow step (§6). A value below 1 is raised to 1; callers wanting the documented
// defaults can pass DefaultInitialCapacity / DefaultGrowStep (or use
// config.Load to read them from a file, see the config subpackage).
func NewWorld(initialCapacity, growStep int, opts ...WorldOption) *World {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	if growStep < 1 {
		growStep = 1
	}
	w := &World{
		components:        newComponentRegistry(),
		tags:              newTagRegistry(),
		archetypesByMask:  make(map[componentMask]*Archetype),
		entityRecords:     make([]entityRecord, initialCapacity),
		nextID:            1, // id 0 is never issued
		growStep:          growStep,
		addTransitions:    make(map[*Archetype]map[ComponentID]*transition),
		removeTransitions: make(map[*Archetype]map[ComponentID]*transition),
		prefabs:           make(map[string]*Prefab),
		events:            newEventQueue(),
		resources:         newResources(),
		log:               zap.NewNop(),
	}
	for i := range w.entityRecords {
		w.entityRecords[i] = freeEntityRecord()
	}
	for _, opt := range opts {
		opt(w)
	}
	w.getOrCreateArchetype(0) // the empty archetype always exists at index 0
	return w
}

// Resources returns the world's generic resource slot (§4, "SUPPLEMENTED
// FEATURES"): a small typed key-value store for host-scoped singletons that
// aren't entity data (a shared clock, an RNG, a render target).
func (w *World) Resources() *Resources { return w.resources }

// Events returns the world's deferred event queue (§4.8).
func (w *World) Events() *Events { return (*Events)(w.events) }

func (w *World) growEntityTable() {
	oldCap := len(w.entityRecords)
	grown := make([]entityRecord, oldCap+w.growStep)
	copy(grown, w.entityRecords)
	for i := oldCap; i < len(grown); i++ {
		grown[i] = freeEntityRecord()
	}
	w.entityRecords = grown
	w.log.Debug("archecs: entity table grown", zap.Int("old_capacity", oldCap), zap.Int("new_capacity", len(grown)))
}

func (w *World) getOrCreateArchetype(mask componentMask) *Archetype {
	if a, ok := w.archetypesByMask[mask]; ok {
		return a
	}
	a := newArchetype(len(w.archetypes), mask, w.components)
	w.archetypes = append(w.archetypes, a)
	w.archetypesByMask[mask] = a
	w.archetypeVersion++
	w.log.Debug("archecs: archetype created", zap.Int("index", a.index), zap.Uint64("mask", uint64(mask)))
	return a
}

// AddEntity creates a new entity in the empty archetype. The entity table
// grows by growStep whenever the high-water mark is reached, never by
// doubling.
func (w *World) AddEntity() Entity {
	id := w.allocID()
	return w.placeNewEntity(id)
}

// AddEntities creates count entities in the empty archetype and returns
// them in creation order (teacher: builder.go NewEntities / world.go
// CreateEntities batch similarly). It calls AddEntity once per entity, so
// table capacity is checked, and the table grown, per entity; nothing is
// reserved up front for the whole batch.
func (w *World) AddEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	out := make([]Entity, count)
	for i := range out {
		out[i] = w.AddEntity()
	}
	return out
}

func (w *World) allocID() uint32 {
	if n := len(w.freeIDs); n > 0 {
		id := w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
		return id
	}
	id := w.nextID
	if int(id) >= len(w.entityRecords) {
		w.growEntityTable()
	}
	w.nextID++
	return id
}

func (w *World) placeNewEntity(id uint32) Entity {
	rec := &w.entityRecords[id]
	rec.version++
	rec.tags = 0
	empty := w.archetypesByMask[0]
	handle := packEntity(id, rec.version)
	row := empty.append(handle)
	rec.archetypeIndex = int32(empty.index)
	rec.row = int32(row)
	return handle
}

// record returns the entityRecord for e's id and whether e is currently
// live (version matches AND the slot is placed in an archetype — the
// stricter liveness rule, §9 open question resolution #2).
func (w *World) record(e Entity) (*entityRecord, bool) {
	id := e.Id()
	if id == 0 || int(id) >= len(w.entityRecords) {
		return nil, false
	}
	rec := &w.entityRecords[id]
	if rec.version != e.Version() || rec.archetypeIndex < 0 {
		return nil, false
	}
	return rec, true
}

// IsAlive reports whether e refers to a currently-placed entity: the
// slot's version matches e's version and the slot has not been freed.
func (w *World) IsAlive(e Entity) bool {
	_, ok := w.record(e)
	return ok
}

// FreeEntity releases e's row, clears its tags, and pushes its id onto the
// free stack. The version is not bumped here (§9 open question #2); the
// next AddEntity to reuse this slot performs the bump. Freeing an already-
// free or unknown entity is a documented SilentNoOp.
func (w *World) FreeEntity(e Entity) {
	rec, ok := w.record(e)
	if !ok {
		return
	}
	arch := w.archetypes[rec.archetypeIndex]
	moved := arch.removeRow(int(rec.row))
	if !moved.IsZero() {
		if movedRec, ok := w.record(moved); ok {
			movedRec.row = rec.row
		}
	}
	rec.archetypeIndex = -1
	rec.row = -1
	rec.tags = 0
	w.freeIDs = append(w.freeIDs, e.Id())
}

// FreeEntities frees every entity in the slice; unknown or already-free
// entities are silently skipped per entity, as FreeEntity documents.
func (w *World) FreeEntities(entities []Entity) {
	for _, e := range entities {
		w.FreeEntity(e)
	}
}

// Reset recycles every live entity and empties every archetype's rows
// without releasing archetypes or column backing arrays (teacher: world.go
// ClearEntities). Registered component/tag types, prefabs and event
// listeners are untouched.
func (w *World) Reset() {
	for id := range w.entityRecords {
		w.entityRecords[id] = freeEntityRecord()
	}
	w.freeIDs = w.freeIDs[:0]
	w.nextID = 1
	for _, a := range w.archetypes {
		a.entities = a.entities[:0]
		for _, c := range a.columns {
			c.count = 0
		}
	}
}
