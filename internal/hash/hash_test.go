package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_KnownValues(t *testing.T) {
	// Reference xxHash64 digests with seed 0.
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), ID("test"))
}

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("a=1&b=2"), ID("a=1&b=2"))
	require.NotEqual(t, ID("a=1&b=2"), ID("a=1&b=3"))
}
