package game

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCrashMultiplierClimbs(t *testing.T) {
	deps, _, _ := testDeps(&stubDealer{crashPoint: 100}, 1000)
	c := NewCrash(deps, 0.01)

	require.NoError(t, c.Bet(decimal.NewFromInt(100)))

	prev := 1.0
	for i := 0; i < 20; i++ {
		snap, done := c.Step()
		require.False(t, done)
		require.Greater(t, snap.Multiplier, prev)
		prev = snap.Multiplier
	}
}

func TestCrashBustLosesStake(t *testing.T) {
	// growth 0.01 from 1.0: tick one lands at 1.01, tick two at ~1.02005,
	// crossing a 1.02 crash point
	deps, led, sink := testDeps(&stubDealer{crashPoint: 1.02}, 5000)
	c := NewCrash(deps, 0.01)

	require.NoError(t, c.Bet(decimal.NewFromInt(1000)))
	require.True(t, led.Balance().Equal(decimal.NewFromInt(4000)))

	snap, ticks := stepUntilDone(c)
	require.Equal(t, 2, ticks)
	require.True(t, snap.Crashed)
	require.Equal(t, PhaseSettled, snap.Phase)
	require.Equal(t, 1.02, snap.Result.Multiplier)
	require.True(t, snap.Result.Payout.IsZero())
	require.True(t, led.Balance().Equal(decimal.NewFromInt(4000)))

	require.Len(t, sink.recs, 1)
	require.Equal(t, KindCrash, sink.recs[0].Game)
	require.Equal(t, 1.02, sink.recs[0].Multiplier)
	require.True(t, sink.recs[0].Payout.IsZero())

	_, err := c.CashOut()
	require.ErrorIs(t, err, ErrNotRunning)
	require.Equal(t, 2*time.Second, c.Cooldown())

	c.Reset()
	require.Equal(t, PhaseIdle, c.Phase())
	require.Zero(t, c.Cooldown())
}

func TestCrashCashOutPaysFlooredProduct(t *testing.T) {
	deps, led, sink := testDeps(&stubDealer{crashPoint: 100}, 5000)
	c := NewCrash(deps, 0.01)

	require.NoError(t, c.Bet(decimal.NewFromInt(1000)))
	c.Step() // m = 1.01

	out, err := c.CashOut()
	require.NoError(t, err)
	require.True(t, out.Win)
	require.Equal(t, 1.01, out.Multiplier)
	require.True(t, out.Payout.Equal(decimal.NewFromInt(1010)))
	require.True(t, led.Balance().Equal(decimal.NewFromInt(5010)))

	require.Len(t, sink.recs, 1)
	require.Equal(t, 1.01, sink.recs[0].Multiplier)

	// no cooldown after a cash-out, and the round is closed
	require.Zero(t, c.Cooldown())
	_, err = c.CashOut()
	require.ErrorIs(t, err, ErrNotRunning)
}

func TestCrashStepAfterCashOutIsInert(t *testing.T) {
	deps, led, sink := testDeps(&stubDealer{crashPoint: 100}, 5000)
	c := NewCrash(deps, 0.01)

	require.NoError(t, c.Bet(decimal.NewFromInt(1000)))
	c.Step()
	_, err := c.CashOut()
	require.NoError(t, err)

	snap, done := c.Step()
	require.True(t, done)
	require.Equal(t, PhaseSettled, snap.Phase)
	require.Nil(t, snap.Result)
	require.True(t, led.Balance().Equal(decimal.NewFromInt(5010)))
	require.Len(t, sink.recs, 1)
}

func TestCrashCashOutBeforeFirstTickRefundsStake(t *testing.T) {
	deps, led, sink := testDeps(&stubDealer{crashPoint: 100}, 1000)
	c := NewCrash(deps, 0.01)

	_, err := c.CashOut()
	require.ErrorIs(t, err, ErrNotRunning)

	// armed but not yet ticked: the multiplier is still 1.0, so a cash-out
	// pays the stake straight back
	require.NoError(t, c.Bet(decimal.NewFromInt(100)))
	out, err := c.CashOut()
	require.NoError(t, err)
	require.Equal(t, 1.0, out.Multiplier)
	require.True(t, out.Payout.Equal(decimal.NewFromInt(100)))
	require.True(t, led.Balance().Equal(decimal.NewFromInt(1000)))
	require.Len(t, sink.recs, 1)

	snap, done := c.Step()
	require.True(t, done)
	require.Equal(t, PhaseSettled, snap.Phase)
}
