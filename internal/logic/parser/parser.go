// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package parser turns a line of user input into a [command.Command].

A line is a command word followed by arguments. Arguments are a preamble (for
example an index) and prefixed values such as "n/John Doe". Each command word
has its own sub-parser that tokenizes only the prefixes it understands.

Errors:

  - An empty line or malformed arguments give INVALID_COMMAND_FORMAT with usage.
  - An unrecognised word gives UNKNOWN_COMMAND.
  - A rejected value gives VALIDATION_ERROR carrying that value's constraint text.
*/
package parser

import (
	"regexp"
	"strings"

	"github.com/taibuivan/tutorbook/internal/logic/command"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

var commandFormat = regexp.MustCompile(`^(\S+)(.*)$`)

// subParser parses the arguments that follow a command word.
type subParser func(arguments string) (command.Command, error)

// AddressBookParser dispatches on the command word.
type AddressBookParser struct {
	parsers map[string]subParser
}

// New returns a parser that knows every command.
func New() *AddressBookParser {
	return &AddressBookParser{
		parsers: map[string]subParser{
			command.WordAdd:        parseAdd,
			command.WordEdit:       parseEdit,
			command.WordDelete:     parseDelete,
			command.WordFind:       parseFind,
			command.WordList:       parseList,
			command.WordClear:      func(string) (command.Command, error) { return command.Clear{}, nil },
			command.WordAddClass:   parseAddClass,
			command.WordAssign:     parseAssign,
			command.WordLinkParent: parseLinkParent,
			command.WordGetParent:  parseGetParent,
			command.WordRemark:     parseRemark,
			command.WordHelp:       func(string) (command.Command, error) { return command.Help{}, nil },
			command.WordExit:       func(string) (command.Command, error) { return command.Exit{}, nil },
		},
	}
}

// Parse parses one line of user input.
func (parser *AddressBookParser) Parse(line string) (command.Command, error) {
	match := commandFormat.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return nil, apperr.InvalidCommandFormat(command.HelpUsage)
	}

	word, arguments := match[1], match[2]
	parse, ok := parser.parsers[word]
	if !ok {
		return nil, apperr.UnknownCommand()
	}
	return parse(arguments)
}

// Words returns every known command word.
func (parser *AddressBookParser) Words() []string {
	words := make([]string, 0, len(parser.parsers))
	for word := range parser.parsers {
		words = append(words, word)
	}
	return words
}
