package feed

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"CloutCasino/internal/remote"
)

// ChatView renders a full chat snapshot, replacing whatever was shown.
type ChatView interface {
	RenderChat([]remote.ChatMessage)
}

// BetsView renders a full bet-log snapshot, replacing whatever was shown.
type BetsView interface {
	RenderBets([]remote.LiveBet)
}

// Sync keeps the two shared live feeds fresh on their own cadences. It is
// read-only with respect to game and ledger state; every network failure is
// logged and dropped, and the next tick retries by re-running.
type Sync struct {
	client    *remote.Client
	chatView  ChatView
	betsView  BetsView
	chatEvery time.Duration
	betsEvery time.Duration
	log       *zap.Logger
}

func New(client *remote.Client, chatView ChatView, betsView BetsView, chatEvery, betsEvery time.Duration, log *zap.Logger) *Sync {
	return &Sync{
		client:    client,
		chatView:  chatView,
		betsView:  betsView,
		chatEvery: chatEvery,
		betsEvery: betsEvery,
		log:       log,
	}
}

// Run starts both pollers. They stop when ctx is cancelled.
func (s *Sync) Run(ctx context.Context) {
	go s.poll(ctx, s.chatEvery, s.RefreshChat)
	go s.poll(ctx, s.betsEvery, s.RefreshBets)
}

func (s *Sync) poll(ctx context.Context, every time.Duration, fn func(context.Context)) {
	fn(ctx)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (s *Sync) RefreshChat(ctx context.Context) {
	msgs, err := s.client.Chat(ctx)
	if err != nil {
		s.log.Debug("chat fetch failed", zap.Error(err))
		return
	}
	s.chatView.RenderChat(msgs)
}

func (s *Sync) RefreshBets(ctx context.Context) {
	bets, err := s.client.LiveBets(ctx)
	if err != nil {
		s.log.Debug("bets fetch failed", zap.Error(err))
		return
	}
	s.betsView.RenderBets(bets)
}

// PostChat sends the message fire-and-forget, then refetches so the sender
// sees their own line immediately. Blank messages are dropped.
func (s *Sync) PostChat(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if err := s.client.PostChat(ctx, text); err != nil {
		s.log.Debug("chat post failed", zap.Error(err))
	}
	s.RefreshChat(ctx)
}
