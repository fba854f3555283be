// Package ecs wraps a donburi world with the operations the game relies on:
// liveness-checked handles, idempotent destroy and snapshot queries.
// The store is not safe for concurrent use: one goroutine drives ticks.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Entity identifies an entity. The zero value is never alive.
type Entity = donburi.Entity

// ComponentType identifies a component type in access declarations.
// Component types are declared once per package with donburi.NewComponentType.
type ComponentType = donburi.IComponentType

// World owns all entities and their components.
type World struct {
	w donburi.World
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{w: donburi.NewWorld()}
}

// Option attaches a component to a freshly created entity.
type Option struct {
	ct  ComponentType
	set func(entry *donburi.Entry)
}

// With pairs a component type with the value it starts with.
func With[T any](ct *donburi.ComponentType[T], v T) Option {
	return Option{
		ct:  ct,
		set: func(entry *donburi.Entry) { ct.SetValue(entry, v) },
	}
}

// Create allocates an entity and attaches the given components.
func (w *World) Create(components ...Option) Entity {
	types := make([]ComponentType, len(components))
	for i, opt := range components {
		types[i] = opt.ct
	}
	e := w.w.Create(types...)

	entry := w.w.Entry(e)
	for _, opt := range components {
		opt.set(entry)
	}
	return e
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return e != donburi.Null && w.w.Valid(e)
}

// Destroy removes e and all of its components.
// Destroying a dead or stale entity is a no-op and returns false.
func (w *World) Destroy(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	w.w.Remove(e)
	return true
}

// DestroyAll destroys every entity in list and returns how many were live.
func (w *World) DestroyAll(list []Entity) int {
	n := 0
	for _, e := range list {
		if w.Destroy(e) {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.w.Len()
}

// Count returns how many live entities hold a component of type ct.
func (w *World) Count(ct ComponentType) int {
	return donburi.NewQuery(filter.Contains(ct)).Count(w.w)
}

// Get returns a pointer to e's component of type ct.
// The pointer stays valid until the entity is destroyed.
func Get[T any](w *World, e Entity, ct *donburi.ComponentType[T]) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	entry := w.w.Entry(e)
	if !entry.HasComponent(ct) {
		return nil, false
	}
	return ct.Get(entry), true
}
