// lobby-sim is a development stand-in for the remote account, chat and
// bet-log services the client polls. State lives in redis; the HTTP surface
// matches what the client expects, nothing more.
package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"CloutCasino/internal/logger"
	"CloutCasino/internal/remote"
)

type simConfig struct {
	Env          string  `envconfig:"ENV" default:"local"`
	ListenAddr   string  `envconfig:"SIM_LISTEN_ADDR" default:":8090"`
	RedisAddr    string  `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	StartBalance float64 `envconfig:"SIM_START_BALANCE" default:"5000"`
	ChatUser     string  `envconfig:"SIM_CHAT_USER" default:"You"`
	ChatColor    string  `envconfig:"SIM_CHAT_COLOR" default:"text-blue-400"`
}

type server struct {
	store *store
	cfg   simConfig
	log   *zap.Logger
}

func main() {
	var cfg simConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New("lobby-sim", cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	st, err := newStore(cfg.RedisAddr, cfg.StartBalance)
	if err != nil {
		zl.Fatal("redis", zap.Error(err))
	}

	s := &server{store: st, cfg: cfg, log: zl}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/api/account/balance", s.handleBalance)
	r.Get("/api/live/chat", s.handleChat)
	r.Post("/api/live/chat", s.handleChatPost)
	r.Get("/api/live/bets", s.handleBets)
	r.Post("/api/games/bet", s.handleBetPost)

	zl.Info("lobby-sim listening", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		zl.Fatal("serve", zap.Error(err))
	}
}

func (s *server) handleBalance(w http.ResponseWriter, r *http.Request) {
	bal, err := s.store.Balance(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, map[string]float64{"balance": bal})
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.store.Chat(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if msgs == nil {
		msgs = []remote.ChatMessage{}
	}
	writeJSON(w, msgs)
}

func (s *server) handleChatPost(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Message == "" {
		http.Error(w, "bad message", http.StatusBadRequest)
		return
	}
	err := s.store.AppendChat(r.Context(), remote.ChatMessage{
		User:    s.cfg.ChatUser,
		Color:   s.cfg.ChatColor,
		Message: in.Message,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *server) handleBets(w http.ResponseWriter, r *http.Request) {
	bets, err := s.store.Bets(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if bets == nil {
		bets = []remote.LiveBet{}
	}
	writeJSON(w, bets)
}

func (s *server) handleBetPost(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Game       string  `json:"game"`
		Bet        float64 `json:"bet"`
		Multiplier float64 `json:"multiplier"`
		Payout     float64 `json:"payout"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Game == "" {
		http.Error(w, "bad bet", http.StatusBadRequest)
		return
	}
	err := s.store.AppendBet(r.Context(), remote.LiveBet{
		Game:       in.Game,
		User:       s.cfg.ChatUser,
		Bet:        in.Bet,
		Multiplier: in.Multiplier,
		Payout:     in.Payout,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *server) fail(w http.ResponseWriter, err error) {
	s.log.Warn("store error", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
