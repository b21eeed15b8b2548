package archecs_test

import (
	"testing"

	"github.com/ashworth-labs/archecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6 of §8: prefab spawn with overrides.
func TestPrefabSpawnWithOverrides(t *testing.T) {
	w := archecs.NewWorld(4, 4)

	archecs.RegisterPrefab(w, "player",
		archecs.InitComponent(w, position{X: 100, Y: 100}),
		archecs.InitComponent(w, velocity{DX: 0, DY: 0}),
		archecs.InitComponent(w, health{Current: 100, Max: 100}),
	)

	p1, err := archecs.Spawn(w, "player")
	require.NoError(t, err)
	pos1 := archecs.GetComponent[position](w, p1)
	assert.Equal(t, position{X: 100, Y: 100}, *pos1)

	p2, err := archecs.Spawn(w, "player", position{X: 500, Y: 300})
	require.NoError(t, err)
	pos2 := archecs.GetComponent[position](w, p2)
	hp2 := archecs.GetComponent[health](w, p2)
	assert.Equal(t, position{X: 500, Y: 300}, *pos2)
	assert.Equal(t, health{Current: 100, Max: 100}, *hp2)
}

func TestSpawnUnknownPrefabReturnsError(t *testing.T) {
	w := archecs.NewWorld(4, 4)
	_, err := archecs.Spawn(w, "does-not-exist")
	assert.ErrorIs(t, err, archecs.ErrUnknownPrefab)
}

func TestReregisteringPrefabReplacesIt(t *testing.T) {
	w := archecs.NewWorld(4, 4)
	archecs.RegisterPrefab(w, "thing", archecs.InitComponent(w, position{X: 1}))
	archecs.RegisterPrefab(w, "thing", archecs.InitComponent(w, position{X: 2}))

	e, err := archecs.Spawn(w, "thing")
	require.NoError(t, err)
	assert.Equal(t, float64(2), archecs.GetComponent[position](w, e).X)
}
