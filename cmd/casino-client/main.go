package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"CloutCasino/internal/betlog"
	"CloutCasino/internal/config"
	"CloutCasino/internal/feed"
	"CloutCasino/internal/game"
	"CloutCasino/internal/jobs"
	"CloutCasino/internal/ledger"
	"CloutCasino/internal/logger"
	"CloutCasino/internal/metrics"
	"CloutCasino/internal/remote"
	"CloutCasino/internal/rng"
	"CloutCasino/internal/sched"
	"CloutCasino/internal/ws"
)

// balanceSurfaces are the display surfaces refreshed on every ledger
// mutation, one per game plus the shared header.
var balanceSurfaces = []string{
	"slots-balance",
	"keno-balance",
	"crash-balance",
	"dice-balance",
	"global-balance",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New("casino-client", cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := remote.New(cfg.APIBaseURL)
	led := ledger.New()
	hub := ws.NewHub()

	for _, surface := range balanceSurfaces {
		led.RegisterSink(surface, func(b decimal.Decimal) {
			hub.BroadcastJSON(ws.BalanceMsg{
				Event:   ws.EventBalance,
				Surface: surface,
				Balance: b.StringFixed(2),
			})
		})
	}

	view := ws.FeedView{Hub: hub}
	fsync := feed.New(client, view, view, cfg.ChatPollInterval, cfg.BetsPollInterval, zl)
	recorder := betlog.New(client, led, fsync, zl)

	deps := game.Deps{
		Dealer:   rng.Source{},
		Wallet:   led,
		Recorder: recorder,
		Actor:    cfg.Actor,
		Cooldown: cfg.SettleCooldown,
	}
	slots := game.NewSlots(deps)
	keno := game.NewKeno(deps)
	crash := game.NewCrash(deps, cfg.CrashGrowth)
	dice := game.NewDice(deps)

	syncJob := jobs.New(client, led, cfg.BalanceSyncInterval, zl)
	if err := syncJob.Start(ctx); err != nil {
		zl.Fatal("balance sync job", zap.Error(err))
	}
	defer syncJob.Stop()

	fsync.Run(ctx)

	metricsSrv := metrics.StartServer(cfg.MetricsPort, func(hctx context.Context) error {
		_, err := client.Balance(hctx)
		return err
	})
	defer func() { _ = metricsSrv.Close() }()

	handler := &ws.Handler{
		Upgrader:   websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		Hub:        hub,
		Log:        zl,
		Slots:      slots,
		Keno:       keno,
		Crash:      crash,
		Dice:       dice,
		Ledger:     led,
		Feed:       fsync,
		Driver:     sched.New(zl),
		SlotsTick:  cfg.SlotsTick,
		KenoReveal: cfg.KenoReveal,
		CrashTick:  cfg.CrashTick,
		DiceTick:   cfg.DiceTick,
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	zl.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("serve", zap.Error(err))
	}
}
