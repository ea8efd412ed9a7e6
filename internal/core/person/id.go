// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/pkg/uuidv7"
)

// ID is the opaque, stable identity of a [Person]. The zero ID means "none".
type ID struct {
	value string
}

// NewID mints a fresh identifier.
func NewID() ID {
	return ID{value: uuidv7.New()}
}

// ParseID parses a previously minted identifier.
func ParseID(s string) (ID, error) {
	canonical, err := uuidv7.Canonical(s)
	if err != nil {
		return ID{}, apperr.InvalidInput(FieldID, "Person ID should be a UUID")
	}
	return ID{value: canonical}, nil
}

// IsZero reports whether id was never set.
func (id ID) IsZero() bool { return id.value == "" }

func (id ID) String() string { return id.value }
