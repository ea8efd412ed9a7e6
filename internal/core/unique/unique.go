// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package unique provides an insertion-ordered list that rejects duplicates.

Duplicates are decided by a caller-supplied "same" predicate rather than by full
equality, so two persons with different ids but the same name and phone are still
rejected. The person and tuition packages wrap [List] with their own predicates
and error messages.

Every successful mutation notifies the observable view exactly once; a failed
mutation leaves the list and its subscribers untouched.
*/
package unique

import (
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/observable"
)

// Errors produces the errors a [List] reports.
type Errors struct {
	// Duplicate is returned when an element is same-as an existing one.
	Duplicate func() error
	// NotFound is returned when the target of Set or Remove is absent.
	NotFound func() error
}

// List is a duplicate-rejecting, insertion-ordered, observable sequence.
type List[T any] struct {
	items  *observable.List[T]
	same   func(a, b T) bool
	errors Errors
}

// New returns an empty list deciding duplicates with same.
func New[T any](same func(a, b T) bool, errs Errors) *List[T] {
	if errs.Duplicate == nil {
		errs.Duplicate = func() error { return apperr.Conflict("Operation would result in duplicate entries") }
	}
	if errs.NotFound == nil {
		errs.NotFound = func() error { return apperr.NotFound("Entry") }
	}
	return &List[T]{
		items:  observable.NewList[T](),
		same:   same,
		errors: errs,
	}
}

// Contains reports whether an element same-as x is present.
func (list *List[T]) Contains(x T) bool {
	return list.indexOf(list.items.Snapshot(), x) >= 0
}

// Add appends x.
func (list *List[T]) Add(x T) error {
	current := list.items.Snapshot()
	if list.indexOf(current, x) >= 0 {
		return list.errors.Duplicate()
	}
	list.items.Replace(append(current, x))
	return nil
}

// Set replaces target with edited in place.
//
// edited may be same-as target (an edit that keeps the identity), but not same-as
// any other element.
func (list *List[T]) Set(target, edited T) error {
	current := list.items.Snapshot()
	position := list.indexOf(current, target)
	if position < 0 {
		return list.errors.NotFound()
	}
	for i, existing := range current {
		if i != position && list.same(existing, edited) {
			return list.errors.Duplicate()
		}
	}
	current[position] = edited
	list.items.Replace(current)
	return nil
}

// Remove deletes the element same-as x.
func (list *List[T]) Remove(x T) error {
	current := list.items.Snapshot()
	position := list.indexOf(current, x)
	if position < 0 {
		return list.errors.NotFound()
	}
	list.items.Replace(append(current[:position], current[position+1:]...))
	return nil
}

// SetAll replaces the whole contents with items.
func (list *List[T]) SetAll(items []T) error {
	if err := list.CheckUnique(items); err != nil {
		return err
	}
	list.items.Replace(items)
	return nil
}

// CheckUnique reports a duplicate error if items contains two same elements.
func (list *List[T]) CheckUnique(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if list.same(items[i], items[j]) {
				return list.errors.Duplicate()
			}
		}
	}
	return nil
}

// Items returns a copy of the current contents.
func (list *List[T]) Items() []T {
	return list.items.Snapshot()
}

// Len returns the number of elements.
func (list *List[T]) Len() int {
	return list.items.Len()
}

// View returns the unmodifiable observable view.
func (list *List[T]) View() observable.View[T] {
	return list.items.View()
}

func (list *List[T]) indexOf(items []T, x T) int {
	for i, existing := range items {
		if list.same(existing, x) {
			return i
		}
	}
	return -1
}
