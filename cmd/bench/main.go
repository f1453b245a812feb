// Command bench profiles zecs's spawn/query/despawn path under a
// memory-allocation profiler.
//
// Usage:
//
//	go build ./cmd/bench
//	./bench
//	go tool pprof -http=":8000" -nodefraction=0.001 ./bench mem.pprof
package main

import (
	"log"

	"github.com/pkg/profile"
	"github.com/tu7q/zecs"
)

type position struct {
	X, Y float32
}

type velocity struct {
	X, Y float32
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w, err := zecs.NewWorld(zecs.WorldOptions{})
		if err != nil {
			log.Fatal(err)
		}
		zecs.Register[position](w)
		zecs.Register[velocity](w)

		query := zecs.NewQuery2[position, velocity](w)

		for range iters {
			live := make([]zecs.Entity, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				e, err := zecs.SpawnWith2(w, position{}, velocity{X: 1, Y: 1})
				if err != nil {
					log.Fatal(err)
				}
				live = append(live, e)
			}

			query.Reset()
			for query.Next() {
				pos, vel := query.Get()
				pos.X += vel.X
				pos.Y += vel.Y
			}

			for _, e := range live {
				w.Despawn(e)
			}
		}
	}
}
