/*
Package zecs implements an archetype-based Entity Component System (ECS).

zecs groups entities by the exact set of component types they carry and
lays each group out as a struct-of-arrays table, so bulk iteration over a
tuple of component types walks contiguous memory instead of chasing
pointers. It is deliberately small: no logging, no CLI, no persistence,
no scheduler, and no multi-threading. Callers own sequencing; the core
owns storage.

Core Concepts:

  - Entity: a generational handle into the entity directory.
  - Component: a plain-data type registered once and attached to
    entities by value.
  - Archetype: the exact, sorted set of component ids an entity holds.
  - Table: the struct-of-arrays storage for all entities sharing one
    archetype.
  - Query: a typed iterator over tables whose archetype is a superset of
    a requested tuple of component types.

Basic Usage:

	w, _ := zecs.NewWorld(zecs.WorldOptions{})

	type Position struct{ X, Y float32 }
	type Velocity struct{ X, Y float32 }

	zecs.Register[Position](w)
	zecs.Register[Velocity](w)

	e, _ := zecs.SpawnWith2(w, Position{}, Velocity{X: 1, Y: 1})

	q := zecs.NewQuery2[Position, Velocity](w)
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}

zecs is single-threaded and non-reentrant: a *World must not be shared
across goroutines without external synchronization, and pointers
returned by Get or by a query's Get are only valid until the next
structural mutation (spawn, despawn, add, or del) on that world.
*/
package zecs
