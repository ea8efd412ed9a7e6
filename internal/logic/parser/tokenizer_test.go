// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/logic/parser"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

/*
TestTokenize covers preamble extraction, repeated prefixes and prefixes embedded
in values.
*/
func TestTokenize(t *testing.T) {
	t.Run("no_prefixes", func(t *testing.T) {
		args := parser.Tokenize("  some preamble  ", parser.PrefixName)
		assert.Equal(t, "some preamble", args.Preamble())
		assert.False(t, args.Has(parser.PrefixName))
	})

	t.Run("preamble_and_values", func(t *testing.T) {
		args := parser.Tokenize(" 1 n/John Doe p/ 123 ", parser.PrefixName, parser.PrefixPhone)
		assert.Equal(t, "1", args.Preamble())

		name, ok := args.Value(parser.PrefixName)
		require.True(t, ok)
		assert.Equal(t, "John Doe", name)

		phone, _ := args.Value(parser.PrefixPhone)
		assert.Equal(t, "123", phone)
	})

	t.Run("repeated_prefix", func(t *testing.T) {
		args := parser.Tokenize(" t/friends t/math t/", parser.PrefixTag)
		assert.Equal(t, []string{"friends", "math", ""}, args.AllValues(parser.PrefixTag))

		last, _ := args.Value(parser.PrefixTag)
		assert.Equal(t, "", last)
	})

	t.Run("prefix_inside_value", func(t *testing.T) {
		args := parser.Tokenize(" e/a/b@x.com a/Blk 5 n/o", parser.PrefixEmail, parser.PrefixAddress)
		email, _ := args.Value(parser.PrefixEmail)
		assert.Equal(t, "a/b@x.com", email)

		address, _ := args.Value(parser.PrefixAddress)
		assert.Equal(t, "Blk 5 n/o", address)
	})

	t.Run("unlisted_prefix", func(t *testing.T) {
		args := parser.Tokenize(" n/John p/123", parser.PrefixName)
		name, _ := args.Value(parser.PrefixName)
		assert.Equal(t, "John p/123", name)
	})

	t.Run("prefix_needs_leading_space", func(t *testing.T) {
		args := parser.Tokenize("n/John", parser.PrefixName)
		assert.Equal(t, "n/John", args.Preamble())
		assert.False(t, args.Has(parser.PrefixName))
	})
}

func TestArgumentMultimap_VerifyNoDuplicatePrefixesFor(t *testing.T) {
	args := parser.Tokenize(" n/A n/B p/1 p/2 e/x", parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail)

	assert.NoError(t, args.VerifyNoDuplicatePrefixesFor(parser.PrefixEmail))

	err := args.VerifyNoDuplicatePrefixesFor(parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicatePrefix))
	assert.Equal(t, "Multiple values specified for the following single-valued field(s): n/ p/", err.Error())

	assert.True(t, args.HasAll(parser.PrefixName, parser.PrefixEmail))
	assert.False(t, args.HasAll(parser.PrefixName, parser.PrefixTag))
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		valid    bool
	}{
		{"1", 1, true},
		{"  7  ", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1 2", 0, false},
		{"a", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			index, err := parser.ParseIndex(tt.input)
			if !tt.valid {
				assert.EqualError(t, err, parser.MessageInvalidIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}
