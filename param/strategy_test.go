package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryStrategy_ReadWrite(t *testing.T) {
	qs := NewQueryStrategy("a=1&b=two")

	val, present := qs.Read("a")
	require.True(t, present)
	require.Equal(t, "1", val)

	val, present = qs.Read("b")
	require.True(t, present)
	require.Equal(t, "two", val)

	_, present = qs.Read("c")
	require.False(t, present)

	qs.Write("c", "3", true)
	val, present = qs.Read("c")
	require.True(t, present)
	require.Equal(t, "3", val)

	// present=false removes the key.
	qs.Write("a", "", false)
	_, present = qs.Read("a")
	require.False(t, present)

	require.Equal(t, "b=two&c=3", qs.String())
}

func TestQueryStrategy_MalformedInputDegrades(t *testing.T) {
	// ParseQuery keeps the pairs it could parse.
	qs := NewQueryStrategy("a=1&;;;=%zz&b=2")
	val, present := qs.Read("a")
	require.True(t, present)
	require.Equal(t, "1", val)

	require.NotPanics(t, func() { NewQueryStrategy("%%%") })
}

func TestQueryStrategy_Subscribe(t *testing.T) {
	qs := NewQueryStrategy("")

	calls := 0
	cancel := qs.Subscribe(func() { calls++ })

	qs.Write("a", "1", true)
	require.Equal(t, 1, calls)

	// Writing the same value again is a no-op and does not notify.
	qs.Write("a", "1", true)
	require.Equal(t, 1, calls)

	// Removing an absent key is also a no-op.
	qs.Write("b", "", false)
	require.Equal(t, 1, calls)

	qs.Write("a", "2", true)
	require.Equal(t, 2, calls)

	cancel()
	qs.Write("a", "3", true)
	require.Equal(t, 2, calls)
}

func TestQueryStrategy_Replace(t *testing.T) {
	qs := NewQueryStrategy("a=1")

	calls := 0
	qs.Subscribe(func() { calls++ })

	qs.Replace("x=9&y=8")
	require.Equal(t, 1, calls)

	_, present := qs.Read("a")
	require.False(t, present)
	val, present := qs.Read("x")
	require.True(t, present)
	require.Equal(t, "9", val)
}

func TestHashStrategy(t *testing.T) {
	hs := NewHashStrategy("zoom=5")

	val, present := hs.Read("zoom")
	require.True(t, present)
	require.Equal(t, "5", val)

	require.Equal(t, "#zoom=5", hs.String())

	hs.Write("zoom", "", false)
	require.Equal(t, "", hs.String())
}
