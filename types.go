package archecs

// copyOp is one column-to-column copy step in a cached archetype
// transition: copy the entity's row from the source archetype's column at
// fromSlot to the destination archetype's column at toSlot (both columns
// share the component's element size). Grounded on the
// teacher's CopyOp/Transition pair referenced throughout api.go/
// operations.go's AddComponent/RemoveComponent, which precompute this list
// once per (source archetype, delta mask) and reuse it on every later
// transition along that edge instead of recomputing the column mapping
// every time.
type copyOp struct {
	fromSlot int
	toSlot   int
}

// transition is a cached edge in the archetype graph: moving an entity out
// of a given archetype via a given mask delta always lands in the same
// target archetype and always copies the same set of overlapping columns.
type transition struct {
	target *Archetype
	copies []copyOp
}
