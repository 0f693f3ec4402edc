package game

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"CloutCasino/internal/rng"
)

// slotsWarmupTicks is how many cosmetic reel frames run before the settling
// draw.
const slotsWarmupTicks = 15

// SlotsSession is the three-reel matcher: 10x on a triple, 2x on exactly one
// pair, nothing otherwise.
type SlotsSession struct {
	mu   sync.Mutex
	deps Deps

	phase Phase
	stake decimal.Decimal
	reels [3]rng.Symbol
	spins int
}

func NewSlots(deps Deps) *SlotsSession {
	return &SlotsSession{deps: deps, phase: PhaseIdle}
}

func (s *SlotsSession) Kind() Kind { return KindSlots }

func (s *SlotsSession) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Spin commits the stake. The debit happens here, before any tick runs.
func (s *SlotsSession) Spin(stake decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !armable(s.phase) {
		return ErrBusy
	}
	if stake.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStake
	}
	if err := s.deps.Wallet.Debit(stake); err != nil {
		return err
	}
	s.stake = stake
	s.spins = 0
	s.phase = PhaseArmed
	return nil
}

func (s *SlotsSession) Step() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseArmed:
		s.phase = PhaseRunning
	case PhaseRunning:
	default:
		return s.snapshotLocked(), true
	}

	s.spins++
	s.reels = s.deps.Dealer.Reel()
	if s.spins <= slotsWarmupTicks {
		return s.snapshotLocked(), false
	}

	// settling tick: this draw is the outcome
	mult := reelMultiplier(s.reels)
	payout := s.stake.Mul(decimal.NewFromInt(int64(mult)))
	s.deps.Wallet.Credit(payout)
	s.phase = PhaseSettled

	snap := s.snapshotLocked()
	snap.Result = &Outcome{Multiplier: float64(mult), Payout: payout, Win: mult > 0}
	s.deps.Recorder.Record(BetRecord{
		Game:       KindSlots,
		Stake:      s.stake,
		Multiplier: float64(mult),
		Payout:     payout,
		Actor:      s.deps.Actor,
	})
	return snap, true
}

func (s *SlotsSession) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseSettled {
		s.phase = PhaseIdle
		s.spins = 0
	}
	return s.snapshotLocked()
}

// Cooldown is zero: the reels keep their final frame and the session re-arms
// immediately.
func (s *SlotsSession) Cooldown() time.Duration { return 0 }

func (s *SlotsSession) snapshotLocked() Snapshot {
	return Snapshot{
		Kind:  KindSlots,
		Phase: s.phase,
		Reels: s.reels,
	}
}

func reelMultiplier(r [3]rng.Symbol) int {
	switch {
	case r[0] == r[1] && r[1] == r[2]:
		return 10
	case r[0] == r[1] || r[1] == r[2] || r[0] == r[2]:
		return 2
	default:
		return 0
	}
}
