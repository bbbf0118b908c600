package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntParam(t *testing.T) {
	p := NewIntParam("n", 10)
	require.Equal(t, "n", p.Key())

	encoded, ok := p.Encode(42)
	require.True(t, ok)
	require.Equal(t, "42", encoded)

	_, ok = p.Encode(10)
	require.False(t, ok)

	require.Equal(t, 42, p.Decode("42", true))
	require.Equal(t, -7, p.Decode("-7", true))
	require.Equal(t, 10, p.Decode("", false))
	require.Equal(t, 10, p.Decode("", true))
	require.Equal(t, 10, p.Decode("abc", true))
	require.Equal(t, 10, p.Decode("4.2", true))
}

func TestStringParam(t *testing.T) {
	p := NewStringParam("q", "home")
	require.Equal(t, "q", p.Key())

	encoded, ok := p.Encode("search")
	require.True(t, ok)
	require.Equal(t, "search", encoded)

	_, ok = p.Encode("home")
	require.False(t, ok)

	require.Equal(t, "search", p.Decode("search", true))
	require.Equal(t, "home", p.Decode("", false))

	// A present-but-empty string is a real value, not the default.
	require.Equal(t, "", p.Decode("", true))
}
