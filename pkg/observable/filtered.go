// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package observable

import "github.com/taibuivan/tutorbook/pkg/slice"

// Predicate decides whether an item is visible in a [Filtered] view.
type Predicate[T any] func(T) bool

// All accepts every item.
func All[T any](T) bool { return true }

// Filtered is a projection of a source [View] through a predicate.
//
// It re-evaluates on every source change and on every predicate change, then
// notifies its own subscribers.
type Filtered[T any] struct {
	source    View[T]
	predicate Predicate[T]
	items     []T
	subs      subscribers[T]
	detach    func()
}

// NewFiltered returns a projection of source that initially shows every item.
func NewFiltered[T any](source View[T]) *Filtered[T] {
	filtered := &Filtered[T]{source: source, predicate: All[T]}
	filtered.items = filtered.apply(source.Snapshot())
	filtered.detach = source.Subscribe(func(snapshot []T) {
		filtered.items = filtered.apply(snapshot)
		filtered.subs.notify(filtered.items)
	})
	return filtered
}

// SetPredicate installs predicate (nil means show all) and notifies.
func (filtered *Filtered[T]) SetPredicate(predicate Predicate[T]) {
	if predicate == nil {
		predicate = All[T]
	}
	filtered.predicate = predicate
	filtered.items = filtered.apply(filtered.source.Snapshot())
	filtered.subs.notify(filtered.items)
}

// Close stops following the source.
func (filtered *Filtered[T]) Close() {
	if filtered.detach != nil {
		filtered.detach()
		filtered.detach = nil
	}
}

// Subscribe implements [View].
func (filtered *Filtered[T]) Subscribe(listener Listener[T]) func() {
	return filtered.subs.add(listener)
}

// Snapshot implements [View].
func (filtered *Filtered[T]) Snapshot() []T {
	return append([]T(nil), filtered.items...)
}

// Len implements [View].
func (filtered *Filtered[T]) Len() int {
	return len(filtered.items)
}

// At implements [View].
func (filtered *Filtered[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(filtered.items) {
		var zero T
		return zero, false
	}
	return filtered.items[i], true
}

func (filtered *Filtered[T]) apply(items []T) []T {
	return slice.Filter(items, filtered.predicate)
}
