// Package jobs runs the background reconciliation: the local ledger is
// periodically overwritten with the account service's balance so drift from
// server-side effects the client does not model gets corrected.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"CloutCasino/internal/ledger"
	"CloutCasino/internal/remote"
)

type Scheduler struct {
	cron   *cron.Cron
	client *remote.Client
	ledger *ledger.Ledger
	every  time.Duration
	log    *zap.Logger
}

func New(client *remote.Client, led *ledger.Ledger, every time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		client: client,
		ledger: led,
		every:  every,
		log:    log,
	}
}

// Start seeds the ledger with an initial snapshot, then syncs on the fixed
// period until Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.SyncOnce(ctx)
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.every), func() {
		s.SyncOnce(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("balance sync scheduled", zap.Duration("every", s.every))
	return nil
}

func (s *Scheduler) Stop() {
	done := s.cron.Stop()
	<-done.Done()
}

// SyncOnce fetches the account balance and reconciles the ledger. Failures
// are swallowed; the next period retries.
func (s *Scheduler) SyncOnce(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	bal, err := s.client.Balance(cctx)
	if err != nil {
		s.log.Warn("balance sync failed", zap.Error(err))
		return
	}
	s.ledger.Reconcile(bal)
}
