package game

import (
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CrashSession is the rising-multiplier game. The multiplier climbs by
// growth*sqrt(m) per tick until the pre-drawn crash point; the player may
// cash out any time before that.
type CrashSession struct {
	mu     sync.Mutex
	deps   Deps
	growth float64

	phase      Phase
	stake      decimal.Decimal
	current    float64
	crashPoint float64
	crashed    bool
}

func NewCrash(deps Deps, growth float64) *CrashSession {
	return &CrashSession{
		deps:    deps,
		growth:  growth,
		phase:   PhaseIdle,
		current: 1.0,
	}
}

func (c *CrashSession) Kind() Kind { return KindCrash }

func (c *CrashSession) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Bet commits the stake and draws the crash point for this round.
func (c *CrashSession) Bet(stake decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !armable(c.phase) {
		return ErrBusy
	}
	if stake.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStake
	}
	if err := c.deps.Wallet.Debit(stake); err != nil {
		return err
	}
	c.stake = stake
	c.current = 1.0
	c.crashPoint = c.deps.Dealer.CrashPoint()
	c.crashed = false
	c.phase = PhaseArmed
	return nil
}

func (c *CrashSession) Step() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseArmed:
		c.phase = PhaseRunning
	case PhaseRunning:
	default:
		// a cash-out settled the round between ticks; nothing left to do
		return c.snapshotLocked(), true
	}

	c.current += c.growth * math.Sqrt(c.current)
	if c.current < c.crashPoint {
		return c.snapshotLocked(), false
	}

	// crashed: the stake is gone, the record carries the crash multiplier
	mult := round2(c.current)
	c.crashed = true
	c.phase = PhaseSettled

	snap := c.snapshotLocked()
	snap.Result = &Outcome{Multiplier: mult, Payout: decimal.Zero, Win: false}
	c.deps.Recorder.Record(BetRecord{
		Game:       KindCrash,
		Stake:      c.stake,
		Multiplier: mult,
		Payout:     decimal.Zero,
		Actor:      c.deps.Actor,
	})
	return snap, true
}

// CashOut settles immediately at the multiplier the caller observed. It is
// accepted from the moment the stake commits; before the first tick the
// multiplier is still 1.0, so it amounts to a refund. Once it returns, no
// later tick can touch the round; a cash-out arriving after the crash tick is
// rejected.
func (c *CrashSession) CashOut() (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.phase {
	case PhaseArmed, PhaseRunning:
	default:
		return Outcome{}, ErrNotRunning
	}
	mult := c.current
	payout := c.stake.Mul(decimal.NewFromFloat(mult)).Floor()
	c.deps.Wallet.Credit(payout)
	c.phase = PhaseSettled

	out := Outcome{Multiplier: mult, Payout: payout, Win: true}
	c.deps.Recorder.Record(BetRecord{
		Game:       KindCrash,
		Stake:      c.stake,
		Multiplier: round2(mult),
		Payout:     payout,
		Actor:      c.deps.Actor,
	})
	return out, nil
}

func (c *CrashSession) Reset() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSettled {
		c.phase = PhaseIdle
		c.current = 1.0
		c.crashed = false
	}
	return c.snapshotLocked()
}

// Cooldown applies only after a crash, while the crash banner is shown; a
// cash-out frees the session at once.
func (c *CrashSession) Cooldown() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.crashed {
		return c.deps.Cooldown
	}
	return 0
}

func (c *CrashSession) snapshotLocked() Snapshot {
	return Snapshot{
		Kind:       KindCrash,
		Phase:      c.phase,
		Multiplier: c.current,
		Crashed:    c.crashed,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
