// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer expresses "maybe present" values with plain pointers.

Edit descriptors use a nil pointer for "leave this field alone" and a non-nil
pointer for "overwrite with this value":

	descriptor.Phone = pointer.To(phone)
	edited.Phone     = pointer.Fallback(descriptor.Phone, current.Phone)
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Fallback dereferences p, or returns fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
