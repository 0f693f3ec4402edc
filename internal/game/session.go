package game

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"CloutCasino/internal/rng"
)

type Kind string

// Kind values double as the game names in the shared bet log.
const (
	KindSlots Kind = "Slots"
	KindKeno  Kind = "Keno"
	KindCrash Kind = "Crash"
	KindDice  Kind = "Dice"
)

var (
	ErrBusy            = errors.New("round already in progress")
	ErrNotRunning      = errors.New("no round running")
	ErrInvalidStake    = errors.New("stake must be positive")
	ErrNoSelection     = errors.New("no numbers selected")
	ErrTooManyPicks    = errors.New("selection full")
	ErrOutOfRange      = errors.New("number out of range")
	ErrSelectionLocked = errors.New("selection locked during round")
)

// Dealer is the random outcome source the sessions consume. rng.Source
// satisfies it; tests substitute fixed draws.
type Dealer interface {
	Reel() [3]rng.Symbol
	Numbers(n, maxValue int) []int
	CrashPoint() float64
	Percentile() int
}

// Wallet is the slice of the balance ledger the sessions touch.
type Wallet interface {
	Debit(decimal.Decimal) error
	Credit(decimal.Decimal)
}

// BetRecord is built once per settled round and handed off one-way.
type BetRecord struct {
	Game       Kind
	Stake      decimal.Decimal
	Multiplier float64
	Payout     decimal.Decimal
	Actor      string
}

// Recorder receives settled bet records. Implementations must not call back
// into the emitting session.
type Recorder interface {
	Record(BetRecord)
}

// Deps is everything a session needs besides its own state.
type Deps struct {
	Dealer   Dealer
	Wallet   Wallet
	Recorder Recorder
	Actor    string
	// Cooldown is the cosmetic delay between settling and becoming
	// eligible to arm again, for the sessions that use one.
	Cooldown time.Duration
}

// Session is one per-game state machine. The scheduler owns the cadence;
// the session owns the data and the step rule.
type Session interface {
	Kind() Kind
	Phase() Phase
	// Step advances one animation tick and reports whether the round
	// settled on this tick. Once settled, further Steps are no-ops.
	Step() (Snapshot, bool)
	// Reset clears display-only state after the post-settle cooldown and
	// makes the session eligible to arm again.
	Reset() Snapshot
	Cooldown() time.Duration
}

// Outcome is the terminal result of a round.
type Outcome struct {
	Multiplier float64
	Payout     decimal.Decimal
	Win        bool
}

// Snapshot is one tick as seen from outside; the ws bridge turns it into
// display events. Fields beyond Kind and Phase are per-game.
type Snapshot struct {
	Kind  Kind
	Phase Phase

	// slots
	Reels [3]rng.Symbol

	// keno
	Reveal    int // number revealed this tick, 0 if none
	RevealHit bool
	RevealIdx int
	Hits      int

	// crash
	Multiplier float64
	Crashed    bool

	// dice
	PlayerRoll int
	HouseRoll  int

	// set on the settling tick only
	Result *Outcome
}

// armable reports whether a new stake may be committed.
func armable(p Phase) bool {
	return p == PhaseIdle
}
