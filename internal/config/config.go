// Package config maps the client's environment variables onto runtime
// settings. Every knob has a default matching the production cadences.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env         string `envconfig:"ENV" default:"local"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8080"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9091"`

	// Base URL of the remote account/chat/bets services.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8090"`

	// Directory the game page is served from.
	StaticDir string `envconfig:"STATIC_DIR" default:"./static"`

	ChatPollInterval    time.Duration `envconfig:"CHAT_POLL_INTERVAL" default:"2s"`
	BetsPollInterval    time.Duration `envconfig:"BETS_POLL_INTERVAL" default:"3s"`
	BalanceSyncInterval time.Duration `envconfig:"BALANCE_SYNC_INTERVAL" default:"30s"`

	// Animation cadences.
	SlotsTick  time.Duration `envconfig:"SLOTS_TICK" default:"60ms"`
	KenoReveal time.Duration `envconfig:"KENO_REVEAL" default:"150ms"`
	CrashTick  time.Duration `envconfig:"CRASH_TICK" default:"50ms"`
	DiceTick   time.Duration `envconfig:"DICE_TICK" default:"80ms"`

	// CrashGrowth is k in the per-tick rule m += k*sqrt(m).
	CrashGrowth    float64       `envconfig:"CRASH_GROWTH" default:"0.01"`
	SettleCooldown time.Duration `envconfig:"SETTLE_COOLDOWN" default:"2s"`

	// Actor is the name stamped on emitted bet records.
	Actor string `envconfig:"ACTOR_NAME" default:"You"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
