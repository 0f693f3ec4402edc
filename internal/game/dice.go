package game

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// diceWarmupTicks is how many ornamental re-roll frames run before the final
// draw. The frames never influence the outcome.
const diceWarmupTicks = 10

// DiceSession is the dice duel: player and house each roll a percentile;
// strictly greater pays 2x, anything else (ties included) loses.
type DiceSession struct {
	mu   sync.Mutex
	deps Deps

	phase      Phase
	stake      decimal.Decimal
	rolls      int
	playerRoll int
	houseRoll  int
}

func NewDice(deps Deps) *DiceSession {
	return &DiceSession{deps: deps, phase: PhaseIdle}
}

func (d *DiceSession) Kind() Kind { return KindDice }

func (d *DiceSession) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Roll commits the stake and starts the duel.
func (d *DiceSession) Roll(stake decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !armable(d.phase) {
		return ErrBusy
	}
	if stake.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStake
	}
	if err := d.deps.Wallet.Debit(stake); err != nil {
		return err
	}
	d.stake = stake
	d.rolls = 0
	d.phase = PhaseArmed
	return nil
}

func (d *DiceSession) Step() (Snapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.phase {
	case PhaseArmed:
		d.phase = PhaseRunning
	case PhaseRunning:
	default:
		return d.snapshotLocked(), true
	}

	d.rolls++
	d.playerRoll = d.deps.Dealer.Percentile()
	d.houseRoll = d.deps.Dealer.Percentile()
	if d.rolls <= diceWarmupTicks {
		return d.snapshotLocked(), false
	}

	// the final frame's rolls decide the duel
	mult := 0
	if d.playerRoll > d.houseRoll {
		mult = 2
	}
	payout := d.stake.Mul(decimal.NewFromInt(int64(mult)))
	d.deps.Wallet.Credit(payout)
	d.phase = PhaseSettled

	snap := d.snapshotLocked()
	snap.Result = &Outcome{Multiplier: float64(mult), Payout: payout, Win: mult > 0}
	d.deps.Recorder.Record(BetRecord{
		Game:       KindDice,
		Stake:      d.stake,
		Multiplier: float64(mult),
		Payout:     payout,
		Actor:      d.deps.Actor,
	})
	return snap, true
}

func (d *DiceSession) Reset() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.phase == PhaseSettled {
		d.phase = PhaseIdle
		d.rolls = 0
	}
	return d.snapshotLocked()
}

func (d *DiceSession) Cooldown() time.Duration { return 0 }

func (d *DiceSession) snapshotLocked() Snapshot {
	return Snapshot{
		Kind:       KindDice,
		Phase:      d.phase,
		PlayerRoll: d.playerRoll,
		HouseRoll:  d.houseRoll,
	}
}
