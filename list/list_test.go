package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloq/arenalist/arena"
)

func newList(t *testing.T, capacity int) *List[int] {
	t.Helper()
	a, err := arena.New[Node[int]](capacity)
	require.NoError(t, err)
	t.Cleanup(a.Release)
	return New(a)
}

func collect(l *List[int]) []int {
	return slices.Collect(l.Values())
}

func TestNewNilArena(t *testing.T) {
	assert.Panics(t, func() { New[int](nil) })
}

func TestEmpty(t *testing.T) {
	l := newList(t, 4)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, collect(l))
}

func TestAddPreservesOrder(t *testing.T) {
	l := newList(t, 8)
	for i := 1; i <= 8; i++ {
		require.NoError(t, l.Add(i*100))
	}
	assert.Equal(t, []int{100, 200, 300, 400, 500, 600, 700, 800}, collect(l))
	assert.Equal(t, 8, l.Len())
}

func TestAddBeyondCapacity(t *testing.T) {
	l := newList(t, 3)

	require.NoError(t, l.Add(10))
	require.NoError(t, l.Add(20))
	require.NoError(t, l.Add(30))

	err := l.Add(40)
	require.ErrorIs(t, err, arena.ErrOutOfCapacity)

	// The failed Add leaves the list intact.
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{10, 20, 30}, collect(l))
}

func TestZeroCapacity(t *testing.T) {
	l := newList(t, 0)
	require.ErrorIs(t, l.Add(1), arena.ErrOutOfCapacity)
	assert.Empty(t, collect(l))
}

func TestTraversalRestartable(t *testing.T) {
	l := newList(t, 4)
	require.NoError(t, l.AddAll(1, 2, 3))

	first := collect(l)
	second := collect(l)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3}, second)
}

func TestTraversalEarlyStop(t *testing.T) {
	l := newList(t, 8)
	require.NoError(t, l.AddAll(1, 2, 3, 4, 5))

	var got []int
	for v := range l.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	// Stopping one walk does not disturb the list or later walks.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(l))
}

func TestTraversalDoesNotConsumeCapacity(t *testing.T) {
	a, err := arena.New[Node[int]](2)
	require.NoError(t, err)
	defer a.Release()

	l := New(a)
	require.NoError(t, l.Add(7))
	for range l.Values() {
	}
	for range l.Values() {
	}
	assert.Equal(t, 1, a.Len())
	require.NoError(t, l.Add(8))
}

func TestAddAllAllOrNothing(t *testing.T) {
	l := newList(t, 4)
	require.NoError(t, l.Add(1))

	// 4 values into 3 remaining slots: nothing must be appended.
	err := l.AddAll(2, 3, 4, 5)
	require.ErrorIs(t, err, arena.ErrOutOfCapacity)
	assert.Equal(t, []int{1}, collect(l))

	require.NoError(t, l.AddAll(2, 3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(l))
}

func TestAddAfterRelease(t *testing.T) {
	a, err := arena.New[Node[int]](2)
	require.NoError(t, err)

	l := New(a)
	require.NoError(t, l.Add(1))

	a.Release()
	require.ErrorIs(t, l.Add(2), arena.ErrReleased)
	require.ErrorIs(t, l.AddAll(2, 3), arena.ErrReleased)
}

func TestStructPayload(t *testing.T) {
	type entry struct {
		Key string
		Val int
	}
	a, err := arena.New[Node[entry]](2)
	require.NoError(t, err)
	defer a.Release()

	l := New(a)
	require.NoError(t, l.Add(entry{Key: "a", Val: 1}))
	require.NoError(t, l.Add(entry{Key: "b", Val: 2}))

	got := slices.Collect(l.Values())
	assert.Equal(t, []entry{{"a", 1}, {"b", 2}}, got)
}
