package game

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	KenoMaxNumber = 40
	KenoMaxPicks  = 10
	KenoDrawSize  = 10
)

// KenoSession draws ten distinct numbers from 1..40 against the player's
// picks. The house reveals the draw one number per tick, in draw order.
type KenoSession struct {
	mu   sync.Mutex
	deps Deps

	phase    Phase
	stake    decimal.Decimal
	selected map[int]bool
	drawn    []int
	revealed int
	hits     int
}

func NewKeno(deps Deps) *KenoSession {
	return &KenoSession{
		deps:     deps,
		phase:    PhaseIdle,
		selected: make(map[int]bool),
	}
}

func (k *KenoSession) Kind() Kind { return KindKeno }

func (k *KenoSession) Phase() Phase {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.phase
}

// Toggle flips membership of n in the selection and reports whether n is
// selected afterwards. Only legal between rounds.
func (k *KenoSession) Toggle(n int) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.phase != PhaseIdle {
		return k.selected[n], ErrSelectionLocked
	}
	if n < 1 || n > KenoMaxNumber {
		return false, ErrOutOfRange
	}
	if k.selected[n] {
		delete(k.selected, n)
		return false, nil
	}
	if len(k.selected) >= KenoMaxPicks {
		return false, ErrTooManyPicks
	}
	k.selected[n] = true
	return true, nil
}

func (k *KenoSession) Selected() []int {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]int, 0, len(k.selected))
	for n := 1; n <= KenoMaxNumber; n++ {
		if k.selected[n] {
			out = append(out, n)
		}
	}
	return out
}

// Play commits the stake and draws the house numbers. An empty selection is
// rejected before any money moves.
func (k *KenoSession) Play(stake decimal.Decimal) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !armable(k.phase) {
		return ErrBusy
	}
	if len(k.selected) == 0 {
		return ErrNoSelection
	}
	if stake.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStake
	}
	if err := k.deps.Wallet.Debit(stake); err != nil {
		return err
	}
	k.stake = stake
	k.drawn = k.deps.Dealer.Numbers(KenoDrawSize, KenoMaxNumber)
	k.revealed = 0
	k.hits = 0
	k.phase = PhaseArmed
	return nil
}

func (k *KenoSession) Step() (Snapshot, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch k.phase {
	case PhaseArmed:
		k.phase = PhaseRunning
	case PhaseRunning:
	default:
		return k.snapshotLocked(0, false), true
	}

	n := k.drawn[k.revealed]
	hit := k.selected[n]
	if hit {
		k.hits++
	}
	k.revealed++
	if k.revealed < KenoDrawSize {
		return k.snapshotLocked(n, hit), false
	}

	// tenth reveal settles the round
	mult := 0
	if 2*k.hits >= len(k.selected) {
		mult = k.hits
	}
	payout := k.stake.Mul(decimal.NewFromInt(int64(mult)))
	k.deps.Wallet.Credit(payout)
	k.phase = PhaseSettled

	snap := k.snapshotLocked(n, hit)
	snap.Result = &Outcome{Multiplier: float64(mult), Payout: payout, Win: mult > 0}
	k.deps.Recorder.Record(BetRecord{
		Game:       KindKeno,
		Stake:      k.stake,
		Multiplier: float64(mult),
		Payout:     payout,
		Actor:      k.deps.Actor,
	})
	return snap, true
}

// Reset clears the revealed marks but keeps the player's selection, so the
// same picks can be replayed.
func (k *KenoSession) Reset() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.phase == PhaseSettled {
		k.phase = PhaseIdle
		k.drawn = nil
		k.revealed = 0
		k.hits = 0
	}
	return k.snapshotLocked(0, false)
}

func (k *KenoSession) Cooldown() time.Duration { return k.deps.Cooldown }

func (k *KenoSession) snapshotLocked(reveal int, hit bool) Snapshot {
	return Snapshot{
		Kind:      KindKeno,
		Phase:     k.phase,
		Reveal:    reveal,
		RevealHit: hit,
		RevealIdx: k.revealed - 1,
		Hits:      k.hits,
	}
}
