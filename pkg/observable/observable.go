// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package observable provides an insertion-ordered list that notifies subscribers
synchronously on every mutation, and a filtered projection over such a list.

Architecture:

  - List: the writable backing store owned by a single component.
  - View: the read-only face handed to everyone else (the REPL, the HTTP view).
  - Filtered: a View whose contents are the source items accepted by a predicate.

# Concurrency

Nothing here is safe for concurrent use. Listeners run on the goroutine that
performed the mutation, before the mutating call returns. Callers that share a
list across goroutines must serialise access themselves.
*/
package observable

import "slices"

// Listener receives a snapshot of the list after each change.
type Listener[T any] func(snapshot []T)

// View is the read-only, subscribable face of a list.
type View[T any] interface {
	// Subscribe registers listener and returns a function that removes it.
	Subscribe(listener Listener[T]) (unsubscribe func())
	// Snapshot returns a copy of the current items.
	Snapshot() []T
	// Len returns the number of items.
	Len() int
	// At returns the item at i, or false if i is out of range.
	At(i int) (T, bool)
}

// # Subscriptions

type subscription[T any] struct {
	id       int
	listener Listener[T]
}

type subscribers[T any] struct {
	nextID int
	subs   []subscription[T]
}

func (s *subscribers[T]) add(listener Listener[T]) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, listener: listener})

	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription[T]) bool {
			return sub.id == id
		})
	}
}

func (s *subscribers[T]) notify(items []T) {
	// Listeners may unsubscribe while being notified.
	for _, sub := range slices.Clone(s.subs) {
		sub.listener(slices.Clone(items))
	}
}

// # List

// List is a writable observable list.
type List[T any] struct {
	items []T
	subs  subscribers[T]
}

// NewList returns a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Replace swaps the whole contents for a copy of items and notifies once.
func (list *List[T]) Replace(items []T) {
	list.items = slices.Clone(items)
	list.subs.notify(list.items)
}

// Subscribe implements [View].
func (list *List[T]) Subscribe(listener Listener[T]) func() {
	return list.subs.add(listener)
}

// Snapshot implements [View].
func (list *List[T]) Snapshot() []T {
	return slices.Clone(list.items)
}

// Len implements [View].
func (list *List[T]) Len() int {
	return len(list.items)
}

// At implements [View].
func (list *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(list.items) {
		var zero T
		return zero, false
	}
	return list.items[i], true
}

// View returns a read-only handle that cannot be type-asserted back to a [*List].
func (list *List[T]) View() View[T] {
	return readOnly[T]{list: list}
}

type readOnly[T any] struct {
	list *List[T]
}

func (view readOnly[T]) Subscribe(listener Listener[T]) func() { return view.list.Subscribe(listener) }
func (view readOnly[T]) Snapshot() []T                         { return view.list.Snapshot() }
func (view readOnly[T]) Len() int                              { return view.list.Len() }
func (view readOnly[T]) At(i int) (T, bool)                    { return view.list.At(i) }
