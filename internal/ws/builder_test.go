package ws

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"CloutCasino/internal/game"
	"CloutCasino/internal/rng"
)

func TestEventsIdleEmitsReady(t *testing.T) {
	out := Events(game.Snapshot{Kind: game.KindSlots, Phase: game.PhaseIdle})
	require.Len(t, out, 1)
	require.Equal(t, ReadyMsg{Event: EventReady, Game: "Slots"}, out[0])
}

func TestEventsReelFrame(t *testing.T) {
	out := Events(game.Snapshot{
		Kind:  game.KindSlots,
		Phase: game.PhaseRunning,
		Reels: [3]rng.Symbol{"🍎", "💎", "🔔"},
	})
	require.Len(t, out, 1)
	frame, ok := out[0].(ReelFrameMsg)
	require.True(t, ok)
	require.Equal(t, [3]string{"🍎", "💎", "🔔"}, frame.Reels)
}

func TestEventsKenoSkipsEmptyReveal(t *testing.T) {
	out := Events(game.Snapshot{Kind: game.KindKeno, Phase: game.PhaseRunning})
	require.Empty(t, out)

	out = Events(game.Snapshot{
		Kind:      game.KindKeno,
		Phase:     game.PhaseRunning,
		Reveal:    22,
		RevealHit: true,
		RevealIdx: 3,
		Hits:      2,
	})
	require.Len(t, out, 1)
	reveal := out[0].(KenoRevealMsg)
	require.Equal(t, 22, reveal.Number)
	require.True(t, reveal.Hit)
	require.Equal(t, 3, reveal.Index)
	require.Equal(t, 2, reveal.Hits)
}

func TestEventsSettledFollowsFinalFrame(t *testing.T) {
	out := Events(game.Snapshot{
		Kind:       game.KindCrash,
		Phase:      game.PhaseSettled,
		Multiplier: 1.02,
		Crashed:    true,
		Result:     &game.Outcome{Multiplier: 1.02, Payout: decimal.Zero, Win: false},
	})
	require.Len(t, out, 2)

	tick := out[0].(CrashTickMsg)
	require.True(t, tick.Crashed)
	require.Equal(t, 1.02, tick.Multiplier)

	settled := out[1].(SettledMsg)
	require.Equal(t, "Crash", settled.Game)
	require.Equal(t, "0.00", settled.Payout)
	require.False(t, settled.Win)
}

func TestEventsDiceWin(t *testing.T) {
	out := Events(game.Snapshot{
		Kind:       game.KindDice,
		Phase:      game.PhaseSettled,
		PlayerRoll: 80,
		HouseRoll:  20,
		Result:     &game.Outcome{Multiplier: 2, Payout: decimal.NewFromInt(2000), Win: true},
	})
	require.Len(t, out, 2)
	require.Equal(t, DiceFrameMsg{Event: EventDiceFrame, Player: 80, House: 20}, out[0])

	settled := out[1].(SettledMsg)
	require.Equal(t, "Dice", settled.Game)
	require.Equal(t, "2000.00", settled.Payout)
	require.True(t, settled.Win)
}
