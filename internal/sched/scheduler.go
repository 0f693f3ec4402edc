package sched

import (
	"time"

	"go.uber.org/zap"

	"CloutCasino/internal/game"
)

// Driver advances armed sessions at a fixed cadence. One goroutine per run;
// the session's own lock keeps its ticks strictly ordered, and ticks of
// different sessions interleave freely.
type Driver struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Driver {
	return &Driver{log: log}
}

// Drive steps s every interval until it settles, then waits the session's
// cooldown, resets it, and emits the reset snapshot. emit sees every
// snapshot in tick order. The caller must have armed s already.
func (d *Driver) Drive(s game.Session, interval time.Duration, emit func(game.Snapshot)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			snap, done := s.Step()
			emit(snap)
			if done {
				break
			}
		}
		if cd := s.Cooldown(); cd > 0 {
			time.Sleep(cd)
		}
		emit(s.Reset())
		d.log.Debug("round finished", zap.String("game", string(s.Kind())))
	}()
}
