package magic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// splitmix64 reproduces the generator Default was built with.
func splitmix64(seed uint64, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		out[i] = z ^ (z >> 31)
	}
	return out
}

func TestDefaultMatchesSeed(t *testing.T) {
	require.Equal(t, 1, Version)
	require.Equal(t, splitmix64(Seed, len(Default)), Default[:])
}

func TestUniform(t *testing.T) {
	tab := Uniform(1)
	for i, v := range tab {
		require.Equalf(t, uint64(1), v, "slot %d", i)
	}
}
