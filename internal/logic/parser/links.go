// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"github.com/taibuivan/tutorbook/internal/logic/command"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
)

// # addclass

func parseAddClass(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixDay, PrefixTime)
	if !args.HasAll(PrefixDay, PrefixTime) || args.Preamble() != "" {
		return nil, apperr.InvalidCommandFormat(command.AddClassUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixDay, PrefixTime); err != nil {
		return nil, err
	}

	dayText, _ := args.Value(PrefixDay)
	day, err := ParseDay(dayText)
	if err != nil {
		return nil, err
	}
	timeText, _ := args.Value(PrefixTime)
	start, err := ParseTime(timeText)
	if err != nil {
		return nil, err
	}
	return command.AddClass{Day: day, Time: start}, nil
}

// # assign

func parseAssign(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixClassID)
	index, err := ParseIndex(args.Preamble())
	if err != nil || !args.Has(PrefixClassID) {
		return nil, apperr.InvalidCommandFormat(command.AssignUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixClassID); err != nil {
		return nil, err
	}

	idText, _ := args.Value(PrefixClassID)
	classID, err := ParseClassID(idText)
	if err != nil {
		return nil, err
	}
	return command.Assign{Index: index, ClassID: classID}, nil
}

// # linkparent

// parseLinkParent expects exactly two n/ values: the student, then the parent.
func parseLinkParent(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixName)
	names := args.AllValues(PrefixName)
	if len(names) != 2 || args.Preamble() != "" {
		return nil, apperr.InvalidCommandFormat(command.LinkParentUsage)
	}

	student, err := ParseName(names[0])
	if err != nil {
		return nil, err
	}
	parent, err := ParseName(names[1])
	if err != nil {
		return nil, err
	}
	return command.LinkParent{StudentName: student, ParentName: parent}, nil
}

// # getparent

func parseGetParent(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixName)
	if !args.Has(PrefixName) || args.Preamble() != "" {
		return nil, apperr.InvalidCommandFormat(command.GetParentUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixName); err != nil {
		return nil, err
	}

	text, _ := args.Value(PrefixName)
	student, err := ParseName(text)
	if err != nil {
		return nil, err
	}
	return command.GetParent{StudentName: student}, nil
}
