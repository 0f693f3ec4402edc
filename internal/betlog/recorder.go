package betlog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"CloutCasino/internal/feed"
	"CloutCasino/internal/game"
	"CloutCasino/internal/ledger"
	"CloutCasino/internal/metrics"
	"CloutCasino/internal/remote"
)

const emitTimeout = 5 * time.Second

// Recorder is the settlement fan-out: push the record to the bet-log
// service, refresh the visible log, then pull a fresh account snapshot to
// correct optimistic drift. Everything past the metrics increment is
// asynchronous and best-effort; a dead network leaves local state as-is.
type Recorder struct {
	client *remote.Client
	ledger *ledger.Ledger
	feed   *feed.Sync
	log    *zap.Logger
}

func New(client *remote.Client, led *ledger.Ledger, fs *feed.Sync, log *zap.Logger) *Recorder {
	return &Recorder{client: client, ledger: led, feed: fs, log: log}
}

func (r *Recorder) Record(rec game.BetRecord) {
	metrics.BetsSettled.WithLabelValues(string(rec.Game)).Inc()
	metrics.StakeValue.WithLabelValues(string(rec.Game)).Add(rec.Stake.InexactFloat64())
	metrics.PayoutValue.WithLabelValues(string(rec.Game)).Add(rec.Payout.InexactFloat64())

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		if err := r.client.PostBet(ctx, rec); err != nil {
			r.log.Warn("bet log emit failed",
				zap.String("game", string(rec.Game)), zap.Error(err))
		}
		r.feed.RefreshBets(ctx)

		bal, err := r.client.Balance(ctx)
		if err != nil {
			r.log.Warn("post-settle balance sync failed", zap.Error(err))
			return
		}
		r.ledger.Reconcile(bal)
	}()
}
