// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm folds arbitrary Unicode text into a comparable form.
//
// # Usage
//
// Name search and name lookup compare folded strings, so "Zoë" is found by
// "zoe" and "JOHN" matches "John".
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts s into its case- and accent-insensitive form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Recomposes to NFC and lowercases.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(result)
}

// Words splits s on whitespace and folds every word.
func Words(s string) []string {
	fields := strings.Fields(s)
	for i, field := range fields {
		fields[i] = Fold(field)
	}
	return fields
}

// EqualFold reports whether a and b are equal after folding.
func EqualFold(a, b string) bool {
	return Fold(strings.TrimSpace(a)) == Fold(strings.TrimSpace(b))
}

// ContainsWord reports whether sentence contains word as a whole word, ignoring
// case and accents. word must be a single word.
func ContainsWord(sentence, word string) bool {
	target := Fold(strings.TrimSpace(word))
	if target == "" || strings.ContainsFunc(target, unicode.IsSpace) {
		return false
	}
	for _, candidate := range Words(sentence) {
		if candidate == target {
			return true
		}
	}
	return false
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
