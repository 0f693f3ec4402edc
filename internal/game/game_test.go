package game

import (
	"time"

	"CloutCasino/internal/ledger"
	"CloutCasino/internal/rng"

	"github.com/shopspring/decimal"
)

// stubDealer returns fixed draws so outcomes are forced.
type stubDealer struct {
	reel        [3]rng.Symbol
	numbers     []int
	crashPoint  float64
	percentiles []int
	pi          int
}

func (d *stubDealer) Reel() [3]rng.Symbol         { return d.reel }
func (d *stubDealer) Numbers(n, maxValue int) []int { return d.numbers }
func (d *stubDealer) CrashPoint() float64         { return d.crashPoint }

func (d *stubDealer) Percentile() int {
	v := d.percentiles[d.pi%len(d.percentiles)]
	d.pi++
	return v
}

// recordSink captures emitted bet records synchronously.
type recordSink struct {
	recs []BetRecord
}

func (r *recordSink) Record(rec BetRecord) {
	r.recs = append(r.recs, rec)
}

func testDeps(dealer Dealer, startBalance int64) (Deps, *ledger.Ledger, *recordSink) {
	led := ledger.New()
	led.Reconcile(decimal.NewFromInt(startBalance))
	sink := &recordSink{}
	return Deps{
		Dealer:   dealer,
		Wallet:   led,
		Recorder: sink,
		Actor:    "You",
		Cooldown: 2 * time.Second,
	}, led, sink
}

// stepUntilDone drives a session to settlement and returns the terminal
// snapshot plus the number of ticks it took.
func stepUntilDone(s Session) (Snapshot, int) {
	for i := 1; ; i++ {
		snap, done := s.Step()
		if done {
			return snap, i
		}
		if i > 1000 {
			panic("session never settled")
		}
	}
}
