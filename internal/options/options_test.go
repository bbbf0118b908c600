package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	a int
	b string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.a = 1 }),
		New(func(c *testConfig) error {
			c.b = "set"
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.a)
	require.Equal(t, "set", cfg.b)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.a = 1 }),
		New(func(*testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.a = 2 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.a)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
