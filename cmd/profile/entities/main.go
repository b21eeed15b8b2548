// Profiling:
//
//	go build ./cmd/profile/entities
//	go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof
package main

import (
	"github.com/ashworth-labs/archecs"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	rounds := 50
	iters := 10000
	numEntities := 1000

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, numEntities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := archecs.NewWorld(numEntities, numEntities)
		for range iters {
			entities := w.AddEntities(numEntities)
			for _, e := range entities {
				archecs.AddComponent(w, e, position{})
				archecs.AddComponent(w, e, velocity{DX: 1, DY: 1})
			}
			q := archecs.NewQuery2[position, velocity](w)
			for q.Next() {
				pos, vel := q.GetA(), q.GetB()
				pos.X += vel.DX
				pos.Y += vel.DY
			}
			w.FreeEntities(entities)
		}
	}
}
