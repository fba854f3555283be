package ecs

import (
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Query2 iterates entities holding both an A and a B.
//
//	q := ecs.NewQuery2(w, components.TransformComponent, components.GravityComponent)
//	for q.Next() {
//		t, g := q.Get()
//	}
//
// The matching set is captured in entity order when the query is created
// or Reset, so destroying entities while iterating is safe: destroyed ones
// are skipped.
type Query2[A, B any] struct {
	w    *World
	q    *donburi.Query
	ca   *donburi.ComponentType[A]
	cb   *donburi.ComponentType[B]
	ents []Entity
	pos  int
	a    *A
	b    *B
}

// NewQuery2 creates a query over entities holding ca and cb.
func NewQuery2[A, B any](w *World, ca *donburi.ComponentType[A], cb *donburi.ComponentType[B]) *Query2[A, B] {
	q := &Query2[A, B]{
		w:  w,
		q:  donburi.NewQuery(filter.Contains(ca, cb)),
		ca: ca,
		cb: cb,
	}
	q.Reset()
	return q
}

// Reset recaptures the matching entities and rewinds the cursor.
func (q *Query2[A, B]) Reset() {
	q.ents = q.ents[:0]
	q.pos = -1
	q.q.Each(q.w.w, func(entry *donburi.Entry) {
		q.ents = append(q.ents, entry.Entity())
	})
	slices.Sort(q.ents)
}

// Next advances to the next matching entity that is still alive.
func (q *Query2[A, B]) Next() bool {
	for q.pos+1 < len(q.ents) {
		q.pos++
		e := q.ents[q.pos]
		if !q.w.Alive(e) {
			continue
		}
		entry := q.w.w.Entry(e)
		q.a, q.b = q.ca.Get(entry), q.cb.Get(entry)
		return true
	}
	return false
}

// Entity returns the current entity.
func (q *Query2[A, B]) Entity() Entity { return q.ents[q.pos] }

// Get returns the current entity's components.
func (q *Query2[A, B]) Get() (*A, *B) { return q.a, q.b }
