package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestKenoToggle(t *testing.T) {
	deps, _, _ := testDeps(&stubDealer{}, 1000)
	k := NewKeno(deps)

	_, err := k.Toggle(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = k.Toggle(41)
	require.ErrorIs(t, err, ErrOutOfRange)

	on, err := k.Toggle(7)
	require.NoError(t, err)
	require.True(t, on)

	off, err := k.Toggle(7)
	require.NoError(t, err)
	require.False(t, off)

	for n := 1; n <= KenoMaxPicks; n++ {
		_, err := k.Toggle(n)
		require.NoError(t, err)
	}
	_, err = k.Toggle(15)
	require.ErrorIs(t, err, ErrTooManyPicks)
	require.Len(t, k.Selected(), KenoMaxPicks)
}

func TestKenoToggleLockedDuringRound(t *testing.T) {
	dealer := &stubDealer{numbers: []int{1, 2, 11, 12, 13, 14, 15, 16, 17, 18}}
	deps, _, _ := testDeps(dealer, 1000)
	k := NewKeno(deps)

	_, err := k.Toggle(1)
	require.NoError(t, err)
	require.NoError(t, k.Play(decimal.NewFromInt(100)))

	_, err = k.Toggle(2)
	require.ErrorIs(t, err, ErrSelectionLocked)
}

func TestKenoEmptySelectionIsNoop(t *testing.T) {
	deps, led, sink := testDeps(&stubDealer{}, 1000)
	k := NewKeno(deps)

	require.ErrorIs(t, k.Play(decimal.NewFromInt(100)), ErrNoSelection)
	require.Equal(t, PhaseIdle, k.Phase())
	require.True(t, led.Balance().Equal(decimal.NewFromInt(1000)))
	require.Empty(t, sink.recs)
}

func TestKenoHitsMeetThreshold(t *testing.T) {
	// 4 picks, exactly 2 hit: 2*2 >= 4, multiplier = hits = 2
	dealer := &stubDealer{numbers: []int{1, 2, 11, 12, 13, 14, 15, 16, 17, 18}}
	deps, led, sink := testDeps(dealer, 5000)
	k := NewKeno(deps)

	for _, n := range []int{1, 2, 3, 4} {
		_, err := k.Toggle(n)
		require.NoError(t, err)
	}
	require.NoError(t, k.Play(decimal.NewFromInt(1000)))
	require.True(t, led.Balance().Equal(decimal.NewFromInt(4000)))

	snap, ticks := stepUntilDone(k)
	require.Equal(t, KenoDrawSize, ticks)
	require.Equal(t, 2, snap.Hits)
	require.Equal(t, 2.0, snap.Result.Multiplier)
	require.True(t, snap.Result.Payout.Equal(decimal.NewFromInt(2000)))
	require.True(t, led.Balance().Equal(decimal.NewFromInt(6000)))

	require.Len(t, sink.recs, 1)
	require.Equal(t, KindKeno, sink.recs[0].Game)
	require.Equal(t, 2.0, sink.recs[0].Multiplier)
}

func TestKenoHitsBelowThreshold(t *testing.T) {
	// 5 picks, 2 hits: 2*2 < 5, multiplier = 0 (fractional threshold
	// rounds against the player)
	dealer := &stubDealer{numbers: []int{1, 2, 11, 12, 13, 14, 15, 16, 17, 18}}
	deps, led, _ := testDeps(dealer, 1000)
	k := NewKeno(deps)

	for _, n := range []int{1, 2, 3, 4, 5} {
		_, err := k.Toggle(n)
		require.NoError(t, err)
	}
	require.NoError(t, k.Play(decimal.NewFromInt(100)))

	snap, _ := stepUntilDone(k)
	require.Equal(t, 2, snap.Hits)
	require.Equal(t, 0.0, snap.Result.Multiplier)
	require.True(t, led.Balance().Equal(decimal.NewFromInt(900)))
}

func TestKenoRevealsFollowDrawOrder(t *testing.T) {
	drawn := []int{40, 1, 22, 3, 17, 9, 30, 5, 12, 8}
	dealer := &stubDealer{numbers: drawn}
	deps, _, _ := testDeps(dealer, 1000)
	k := NewKeno(deps)

	_, err := k.Toggle(22)
	require.NoError(t, err)
	require.NoError(t, k.Play(decimal.NewFromInt(100)))

	for i, want := range drawn {
		snap, done := k.Step()
		require.Equal(t, want, snap.Reveal)
		require.Equal(t, i, snap.RevealIdx)
		require.Equal(t, want == 22, snap.RevealHit)
		require.Equal(t, i == len(drawn)-1, done)
	}
}

func TestKenoResetKeepsSelection(t *testing.T) {
	dealer := &stubDealer{numbers: []int{1, 2, 11, 12, 13, 14, 15, 16, 17, 18}}
	deps, _, _ := testDeps(dealer, 1000)
	k := NewKeno(deps)

	_, err := k.Toggle(1)
	require.NoError(t, err)
	require.NoError(t, k.Play(decimal.NewFromInt(100)))
	stepUntilDone(k)

	k.Reset()
	require.Equal(t, PhaseIdle, k.Phase())
	require.Equal(t, []int{1}, k.Selected())
}
