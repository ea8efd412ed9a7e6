// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"strings"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/logic/command"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/pointer"
)

// # add

func parseAdd(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixCategory, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !args.HasAll(PrefixCategory, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || args.Preamble() != "" {
		return nil, apperr.InvalidCommandFormat(command.AddUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixCategory, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var (
		add command.Add
		err error
	)
	categoryText, _ := args.Value(PrefixCategory)
	if add.Category, err = ParseCategory(categoryText); err != nil {
		return nil, err
	}
	nameText, _ := args.Value(PrefixName)
	if add.Name, err = ParseName(nameText); err != nil {
		return nil, err
	}
	phoneText, _ := args.Value(PrefixPhone)
	if add.Phone, err = ParsePhone(phoneText); err != nil {
		return nil, err
	}
	emailText, _ := args.Value(PrefixEmail)
	if add.Email, err = ParseEmail(emailText); err != nil {
		return nil, err
	}
	addressText, _ := args.Value(PrefixAddress)
	if add.Address, err = ParseAddress(addressText); err != nil {
		return nil, err
	}
	if add.Tags, err = ParseTags(args.AllValues(PrefixTag)); err != nil {
		return nil, err
	}
	return add, nil
}

// # edit

func parseEdit(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, err := ParseIndex(args.Preamble())
	if err != nil {
		return nil, apperr.InvalidCommandFormat(command.EditUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	var descriptor command.EditDescriptor
	if text, ok := args.Value(PrefixName); ok {
		name, err := ParseName(text)
		if err != nil {
			return nil, err
		}
		descriptor.Name = pointer.To(name)
	}
	if text, ok := args.Value(PrefixPhone); ok {
		phone, err := ParsePhone(text)
		if err != nil {
			return nil, err
		}
		descriptor.Phone = pointer.To(phone)
	}
	if text, ok := args.Value(PrefixEmail); ok {
		email, err := ParseEmail(text)
		if err != nil {
			return nil, err
		}
		descriptor.Email = pointer.To(email)
	}
	if text, ok := args.Value(PrefixAddress); ok {
		address, err := ParseAddress(text)
		if err != nil {
			return nil, err
		}
		descriptor.Address = pointer.To(address)
	}
	if descriptor.Tags, err = parseTagsForEdit(args.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	if !descriptor.IsAnyFieldEdited() {
		return nil, apperr.ValidationError(command.MessageNotEdited)
	}
	return command.Edit{Index: index, Descriptor: descriptor}, nil
}

// parseTagsForEdit returns nil when no t/ was given and an empty set when the only
// t/ is blank, which clears every tag.
func parseTagsForEdit(values []string) (*[]person.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		return pointer.To([]person.Tag{}), nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

// # delete

func parseDelete(arguments string) (command.Command, error) {
	index, err := ParseIndex(arguments)
	if err != nil {
		return nil, apperr.InvalidCommandFormat(command.DeleteUsage)
	}
	return command.Delete{Index: index}, nil
}

// # find

func parseFind(arguments string) (command.Command, error) {
	keywords := strings.Fields(arguments)
	if len(keywords) == 0 {
		return nil, apperr.InvalidCommandFormat(command.FindUsage)
	}
	return command.Find{Keywords: keywords}, nil
}

// # list

func parseList(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixCategory)
	if args.Preamble() != "" {
		return nil, apperr.InvalidCommandFormat(command.ListUsage)
	}
	if !args.Has(PrefixCategory) {
		return command.List{}, nil
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixCategory); err != nil {
		return nil, err
	}

	text, _ := args.Value(PrefixCategory)
	if text == "" {
		return nil, apperr.InvalidInput(person.FieldCategory, command.MessageMissingCategory)
	}
	category, err := ParseCategory(text)
	if err != nil {
		return nil, err
	}
	return command.List{Category: &category}, nil
}

// # remark

func parseRemark(arguments string) (command.Command, error) {
	args := Tokenize(arguments, PrefixRemark)
	index, err := ParseIndex(args.Preamble())
	if err != nil || !args.Has(PrefixRemark) {
		return nil, apperr.InvalidCommandFormat(command.RemarkUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(PrefixRemark); err != nil {
		return nil, err
	}

	text, _ := args.Value(PrefixRemark)
	return command.Remark{Index: index, Remark: person.NewRemark(text)}, nil
}
