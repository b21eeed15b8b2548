// Profiling:
//
//	go build ./cmd/profile/query
//	go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.prof
package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/ashworth-labs/archecs"
)

type c1 struct{ V, W int64 }
type c2 struct{ V, W int64 }
type c3 struct{ V, W int64 }
type c4 struct{ V, W int64 }

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 10000
	numEntities := 100000
	run(rounds, iters, numEntities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := archecs.NewWorld(numEntities, numEntities)
		entities := w.AddEntities(numEntities)
		for _, e := range entities {
			archecs.AddComponent(w, e, c1{})
			archecs.AddComponent(w, e, c2{V: 1, W: 1})
			archecs.AddComponent(w, e, c3{})
			archecs.AddComponent(w, e, c4{})
		}

		for range iters {
			q := archecs.NewQuery4[c1, c2, c3, c4](w)
			for q.Next() {
				a, b := q.GetA(), q.GetB()
				a.V += b.V
				a.W += b.W
			}
		}
	}
}
