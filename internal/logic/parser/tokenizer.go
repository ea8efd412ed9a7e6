// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"slices"
	"strings"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// Prefix marks the start of an argument, e.g. "n/" in "n/John Doe".
type Prefix string

const (
	PrefixCategory Prefix = "c/"
	PrefixName     Prefix = "n/"
	PrefixPhone    Prefix = "p/"
	PrefixEmail    Prefix = "e/"
	PrefixAddress  Prefix = "a/"
	PrefixTag      Prefix = "t/"
	PrefixID       Prefix = "id/"
	PrefixClassID  Prefix = "cid/"
	PrefixDay      Prefix = "d/"
	PrefixTime     Prefix = "tm/"
	PrefixRemark   Prefix = "r/"
)

func (p Prefix) String() string { return string(p) }

// ArgumentMultimap maps each prefix to the values that followed it, in order of
// appearance. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for prefix.
func (args ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	values := args.values[prefix]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// AllValues returns every value given for prefix.
func (args ArgumentMultimap) AllValues(prefix Prefix) []string {
	return slices.Clone(args.values[prefix])
}

// Has reports whether prefix appeared at least once.
func (args ArgumentMultimap) Has(prefix Prefix) bool {
	return len(args.values[prefix]) > 0
}

// HasAll reports whether every prefix appeared at least once.
func (args ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, prefix := range prefixes {
		if !args.Has(prefix) {
			return false
		}
	}
	return true
}

// Preamble returns the trimmed text before the first prefix.
func (args ArgumentMultimap) Preamble() string {
	return args.preamble
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes appeared more than once.
func (args ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var duplicated []string
	for _, prefix := range prefixes {
		if len(args.values[prefix]) > 1 {
			duplicated = append(duplicated, prefix.String())
		}
	}
	if len(duplicated) > 0 {
		return apperr.DuplicatePrefix(strings.Join(duplicated, " "))
	}
	return nil
}

type marker struct {
	prefix   Prefix
	position int
}

/*
Tokenize splits an argument string by the given prefixes.

A prefix only counts when it is preceded by whitespace, so "cid/" inside a value
or an email such as "a/b@x.com" is not mistaken for an argument. Prefixes not
listed are left as part of whatever value they appear in.

Example:

	Tokenize(" 1 n/John p/123", PrefixName, PrefixPhone)
	// preamble "1", n/ -> ["John"], p/ -> ["123"]
*/
func Tokenize(arguments string, prefixes ...Prefix) ArgumentMultimap {
	var markers []marker
	for _, prefix := range prefixes {
		markers = append(markers, findPrefixPositions(arguments, prefix)...)
	}
	slices.SortFunc(markers, func(a, b marker) int { return a.position - b.position })

	args := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(markers) == 0 {
		args.preamble = strings.TrimSpace(arguments)
		return args
	}

	args.preamble = strings.TrimSpace(arguments[:markers[0].position])
	for i, current := range markers {
		end := len(arguments)
		if i+1 < len(markers) {
			end = markers[i+1].position
		}
		value := strings.TrimSpace(arguments[current.position+len(current.prefix) : end])
		args.values[current.prefix] = append(args.values[current.prefix], value)
	}
	return args
}

func findPrefixPositions(arguments string, prefix Prefix) []marker {
	var markers []marker
	for from := 0; from < len(arguments); {
		offset := strings.Index(arguments[from:], prefix.String())
		if offset < 0 {
			break
		}
		position := from + offset
		if position > 0 && isSpace(arguments[position-1]) {
			markers = append(markers, marker{prefix: prefix, position: position})
		}
		from = position + len(prefix)
	}
	return markers
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
