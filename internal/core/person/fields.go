// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"regexp"
	"slices"
	"strings"

	"github.com/taibuivan/tutorbook/internal/platform/validate"
)

// Field names used in validation errors.
const (
	FieldID       = "id"
	FieldCategory = "category"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldTag      = "tag"
	FieldRemark   = "remark"
)

// Constraint messages shown when a value is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tags names should be alphanumeric"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	addressRegex = regexp.MustCompile(`^\S`)
)

// # Name

// Name is a person's full name.
type Name struct{ value string }

// NewName validates s as a name.
func NewName(s string) (Name, error) {
	v := &validate.Validator{}
	v.Required(FieldName, s).Matches(FieldName, s, nameRegex, NameConstraints)
	if err := v.ErrAs(FieldName, NameConstraints); err != nil {
		return Name{}, err
	}
	return Name{value: s}, nil
}

// IsValidName reports whether s is accepted by [NewName].
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string { return n.value }

// # Phone

// Phone is a digits-only phone number.
type Phone struct{ value string }

// NewPhone validates s as a phone number.
func NewPhone(s string) (Phone, error) {
	v := &validate.Validator{}
	v.Digits(FieldPhone, s).MinLen(FieldPhone, s, 3)
	if err := v.ErrAs(FieldPhone, PhoneConstraints); err != nil {
		return Phone{}, err
	}
	return Phone{value: s}, nil
}

// IsValidPhone reports whether s is accepted by [NewPhone].
func IsValidPhone(s string) bool {
	_, err := NewPhone(s)
	return err == nil
}

func (p Phone) String() string { return p.value }

// # Email

// Email is a local@domain address.
type Email struct{ value string }

// NewEmail validates s as an email address.
func NewEmail(s string) (Email, error) {
	v := &validate.Validator{}
	v.Email(FieldEmail, s)
	if err := v.ErrAs(FieldEmail, EmailConstraints); err != nil {
		return Email{}, err
	}
	return Email{value: s}, nil
}

// IsValidEmail reports whether s is accepted by [NewEmail].
func IsValidEmail(s string) bool { return validate.IsEmail(s) }

func (e Email) String() string { return e.value }

// # Address

// Address is a free-form, non-blank postal address.
type Address struct{ value string }

// NewAddress validates s as an address.
func NewAddress(s string) (Address, error) {
	v := &validate.Validator{}
	v.Required(FieldAddress, s).Matches(FieldAddress, s, addressRegex, AddressConstraints)
	if err := v.ErrAs(FieldAddress, AddressConstraints); err != nil {
		return Address{}, err
	}
	return Address{value: s}, nil
}

// IsValidAddress reports whether s is accepted by [NewAddress].
func IsValidAddress(s string) bool { return addressRegex.MatchString(s) }

func (a Address) String() string { return a.value }

// # Tag

// Tag is a single alphanumeric label.
type Tag struct{ value string }

// NewTag validates s as a tag name.
func NewTag(s string) (Tag, error) {
	v := &validate.Validator{}
	v.Alnum(FieldTag, s)
	if err := v.ErrAs(FieldTag, TagConstraints); err != nil {
		return Tag{}, err
	}
	return Tag{value: s}, nil
}

// IsValidTag reports whether s is accepted by [NewTag].
func IsValidTag(s string) bool {
	_, err := NewTag(s)
	return err == nil
}

func (t Tag) String() string { return "[" + t.value + "]" }

// Name returns the bare tag text.
func (t Tag) Name() string { return t.value }

// TagSet sorts tags and drops repeats, giving the canonical set form.
func TagSet(tags ...Tag) []Tag {
	set := slices.Clone(tags)
	slices.SortFunc(set, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	return slices.Compact(set)
}

// # Remark

// Remark is an optional free-text note. The zero Remark means "no remark".
type Remark struct{ value string }

// NewRemark accepts any text; surrounding whitespace is dropped.
func NewRemark(s string) Remark {
	return Remark{value: strings.TrimSpace(s)}
}

// IsEmpty reports whether no remark is set.
func (r Remark) IsEmpty() bool { return r.value == "" }

func (r Remark) String() string { return r.value }
