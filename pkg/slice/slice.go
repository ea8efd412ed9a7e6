// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the two generic
projections the address book leans on: converting records (Map) and narrowing
the displayed person list (Filter).

Both functions preserve nil: a nil input yields a nil output, so a JSON field
tagged omitempty stays omitted after conversion.
*/
package slice

// Map converts every element of input with transform, keeping order.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements accepted by predicate, keeping order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}
