package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReelDrawsFromAlphabet(t *testing.T) {
	var src Source
	for i := 0; i < 200; i++ {
		reel := src.Reel()
		for _, s := range reel {
			require.Contains(t, Symbols, s)
		}
	}
}

func TestNumbersDistinctAndInRange(t *testing.T) {
	var src Source
	for i := 0; i < 200; i++ {
		drawn := src.Numbers(10, 40)
		require.Len(t, drawn, 10)
		seen := make(map[int]bool, len(drawn))
		for _, v := range drawn {
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 40)
			require.False(t, seen[v], "duplicate draw %d", v)
			seen[v] = true
		}
	}
}

func TestNumbersFullRange(t *testing.T) {
	var src Source
	drawn := src.Numbers(5, 5)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, drawn)
}

func TestCrashPointBounds(t *testing.T) {
	var src Source
	for i := 0; i < 200; i++ {
		p := src.CrashPoint()
		require.GreaterOrEqual(t, p, 1.0)
		require.Less(t, p, 6.0)
	}
}

func TestPercentileBounds(t *testing.T) {
	var src Source
	for i := 0; i < 200; i++ {
		v := src.Percentile()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 100)
	}
}
