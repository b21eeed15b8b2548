package archecs

// Archetype holds every entity sharing one exact component-type set, plus
// one column per component in that set. Grounded on the teacher's
// Archetype (archetype.go: mask, componentData, componentIDs, entities,
// slots) but restated over the column type (column.go) instead of raw [][]byte,
// and carrying an explicit columnSlot lookup array the way the teacher's
// getSlot does, for O(1) "does this archetype carry component k" checks
// without a map.
type Archetype struct {
	index        int
	mask         componentMask
	componentIDs []ComponentID // ascending order; canonical column order
	columns      []*column     // columns[i] holds componentIDs[i]'s data
	entities     []Entity      // insertion order; len == row count
	columnSlot   [MaxComponentTypes]int8
}

const noSlot int8 = -1

func newArchetype(index int, mask componentMask, reg *componentRegistry) *Archetype {
	a := &Archetype{index: index, mask: mask}
	for i := range a.columnSlot {
		a.columnSlot[i] = noSlot
	}
	ids := mask.componentIDs()
	a.componentIDs = ids
	a.columns = make([]*column, len(ids))
	for slot, id := range ids {
		a.columns[slot] = newColumn(int(reg.sizeOf(id)))
		a.columnSlot[id] = int8(slot)
	}
	return a
}

// Count returns the number of entities currently in this archetype.
func (a *Archetype) Count() int { return len(a.entities) }

// columnFor returns the column storing component id, or nil if id is not
// part of this archetype's mask.
func (a *Archetype) columnFor(id ComponentID) *column {
	slot := a.columnSlot[id]
	if slot == noSlot {
		return nil
	}
	return a.columns[slot]
}

// append pushes a new default-valued row for entity e and returns its row
// index.
func (a *Archetype) append(e Entity) int {
	row := len(a.entities)
	a.entities = append(a.entities, e)
	for _, c := range a.columns {
		newRow := c.pushDefault()
		if newRow != row {
			postconditionViolated("column row %d desynchronised from entity list row %d in archetype mask %x", newRow, row, a.mask)
		}
	}
	return row
}

// removeRow swap-removes row from every column and from the entity list.
// It returns the entity that was moved into row to fill the gap (the zero
// Entity if row was the last row, i.e. nothing needed to move).
func (a *Archetype) removeRow(row int) Entity {
	last := len(a.entities) - 1
	var moved Entity
	if row != last {
		moved = a.entities[last]
		a.entities[row] = moved
	}
	a.entities = a.entities[:last]
	for _, c := range a.columns {
		c.swapRemove(row)
	}
	if row == last {
		return 0
	}
	return moved
}
