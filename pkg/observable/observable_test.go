// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/pkg/observable"
)

/*
TestList_ReplaceNotifiesOnce verifies that every subscriber sees exactly one
snapshot per replacement.
*/
func TestList_ReplaceNotifiesOnce(t *testing.T) {
	list := observable.NewList(1, 2)

	var seen [][]int
	list.Subscribe(func(snapshot []int) { seen = append(seen, snapshot) })

	list.Replace([]int{3, 4, 5})

	require.Len(t, seen, 1)
	assert.Equal(t, []int{3, 4, 5}, seen[0])
	assert.Equal(t, 3, list.Len())
}

/*
TestList_Unsubscribe verifies that a removed listener is not called again.
*/
func TestList_Unsubscribe(t *testing.T) {
	list := observable.NewList[string]()

	calls := 0
	unsubscribe := list.Subscribe(func([]string) { calls++ })

	list.Replace([]string{"a"})
	unsubscribe()
	list.Replace([]string{"b"})

	assert.Equal(t, 1, calls)
}

/*
TestList_SnapshotIsACopy verifies that callers cannot mutate the list through
a snapshot or through the slice given to the constructor.
*/
func TestList_SnapshotIsACopy(t *testing.T) {
	items := []int{1, 2, 3}
	list := observable.NewList(items...)
	items[0] = 99

	snapshot := list.Snapshot()
	snapshot[1] = 42

	first, ok := list.At(0)
	require.True(t, ok)
	assert.Equal(t, 1, first)

	second, _ := list.At(1)
	assert.Equal(t, 2, second)
}

/*
TestList_At checks bounds handling.
*/
func TestList_At(t *testing.T) {
	view := observable.NewList("x").View()

	_, ok := view.At(-1)
	assert.False(t, ok)

	_, ok = view.At(1)
	assert.False(t, ok)

	item, ok := view.At(0)
	assert.True(t, ok)
	assert.Equal(t, "x", item)
}

/*
TestFiltered_FollowsSourceAndPredicate verifies that a projection re-evaluates
on source changes and on predicate changes.
*/
func TestFiltered_FollowsSourceAndPredicate(t *testing.T) {
	list := observable.NewList(1, 2, 3, 4)
	filtered := observable.NewFiltered[int](list.View())
	assert.Equal(t, []int{1, 2, 3, 4}, filtered.Snapshot())

	var notified [][]int
	filtered.Subscribe(func(snapshot []int) { notified = append(notified, snapshot) })

	filtered.SetPredicate(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, filtered.Snapshot())

	list.Replace([]int{5, 6, 7, 8, 10})
	assert.Equal(t, []int{6, 8, 10}, filtered.Snapshot())
	assert.Equal(t, 3, filtered.Len())

	require.Len(t, notified, 2)
	assert.Equal(t, []int{2, 4}, notified[0])
	assert.Equal(t, []int{6, 8, 10}, notified[1])

	filtered.SetPredicate(nil)
	assert.Equal(t, 5, filtered.Len())
}

/*
TestFiltered_Close verifies that a closed projection stops following its source.
*/
func TestFiltered_Close(t *testing.T) {
	list := observable.NewList(1)
	filtered := observable.NewFiltered[int](list.View())

	filtered.Close()
	list.Replace([]int{1, 2, 3})

	assert.Equal(t, 1, filtered.Len())
}
