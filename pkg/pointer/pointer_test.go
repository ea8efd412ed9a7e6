// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tutorbook/pkg/pointer"
)

func TestTo(t *testing.T) {
	value := "phone"
	p := pointer.To(value)
	value = "changed"

	assert.Equal(t, "phone", *p)
}

func TestFallback(t *testing.T) {
	assert.Equal(t, 7, pointer.Fallback(nil, 7))
	assert.Equal(t, 3, pointer.Fallback(pointer.To(3), 7))
}
