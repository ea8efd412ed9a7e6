// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repl_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/logic"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/repl"
	"github.com/taibuivan/tutorbook/internal/storage"
	"github.com/taibuivan/tutorbook/internal/testutil"
)

func newShell(t *testing.T, input string, persons ...person.Person) (*repl.Shell, *bytes.Buffer) {
	t.Helper()

	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	manager := logic.NewManager(model.NewManager(testutil.Book(t, persons), model.UserPrefs{}), store)

	var out bytes.Buffer
	return repl.New(manager, strings.NewReader(input), &out), &out
}

/*
TestShell_RunsUntilExit verifies that feedback and errors are printed and that
exit ends the loop before later lines are read.
*/
func TestShell_RunsUntilExit(t *testing.T) {
	input := strings.Join([]string{
		"add c/tutor n/Alex Yeoh p/87438807 e/alex@example.com a/1 St",
		"",
		"bogus",
		"exit",
		"clear",
	}, "\n")
	shell, out := newShell(t, input)

	require.NoError(t, shell.Run(context.Background()))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "(no persons to show)\n"+repl.Prompt))
	assert.Contains(t, output, "1. Alex Yeoh; Category: tutor")
	assert.Contains(t, output, "New person added: Alex Yeoh")
	assert.Contains(t, output, "Unknown command")
	assert.Contains(t, output, "Exiting tutorbook as requested ...")
	assert.NotContains(t, output, "Address book has been cleared!")
}

/*
TestShell_EndOfInput verifies that running out of input is a clean stop.
*/
func TestShell_EndOfInput(t *testing.T) {
	shell, out := newShell(t, "list c/tutor\n", testutil.Student(t, "John Doe", "98765432"))

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "1. John Doe")
	assert.Contains(t, out.String(), "Listed all tutors")
	assert.True(t, strings.HasSuffix(out.String(), repl.Prompt))
}

/*
TestShell_SkipsOverlongLine verifies that one oversized line is reported and the shell keeps reading.
*/
func TestShell_SkipsOverlongLine(t *testing.T) {
	input := "find " + strings.Repeat("x", repl.MaxLineBytes+10) + "\nlist c/tutor\n"
	shell, out := newShell(t, input, testutil.Tutor(t, "Alex Yeoh", "87438807"))

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), repl.MessageLineTooLong)
	assert.Contains(t, out.String(), "Listed all tutors")
}

func TestShell_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shell, out := newShell(t, "clear\n", testutil.Tutor(t, "Alex Yeoh", "87438807"))
	require.NoError(t, shell.Run(ctx))
	assert.NotContains(t, out.String(), "Address book has been cleared!")
}
