package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"CloutCasino/internal/remote"
)

const (
	keyBalance = "lobby:balance"
	keyChat    = "lobby:chat"
	keyBets    = "lobby:bets"

	chatKeep = 50
	betsKeep = 20
)

// store keeps the simulated lobby state in redis so restarts and multiple
// sim instances share one lobby.
type store struct {
	rdb          *redis.Client
	startBalance float64
}

func newStore(addr string, startBalance float64) (*store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &store{rdb: rdb, startBalance: startBalance}, nil
}

func (s *store) Balance(ctx context.Context) (float64, error) {
	bal, err := s.rdb.Get(ctx, keyBalance).Float64()
	if errors.Is(err, redis.Nil) {
		if err := s.rdb.Set(ctx, keyBalance, s.startBalance, 0).Err(); err != nil {
			return 0, err
		}
		return s.startBalance, nil
	}
	if err != nil {
		return 0, err
	}
	return bal, nil
}

func (s *store) Chat(ctx context.Context) ([]remote.ChatMessage, error) {
	raw, err := s.rdb.LRange(ctx, keyChat, 0, chatKeep-1).Result()
	if err != nil {
		return nil, err
	}
	// stored newest-first, rendered oldest-first
	out := make([]remote.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var m remote.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *store) AppendChat(ctx context.Context, m remote.ChatMessage) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, keyChat, b)
	pipe.LTrim(ctx, keyChat, 0, chatKeep-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *store) Bets(ctx context.Context) ([]remote.LiveBet, error) {
	raw, err := s.rdb.LRange(ctx, keyBets, 0, betsKeep-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]remote.LiveBet, 0, len(raw))
	for _, r := range raw {
		var b remote.LiveBet
		if err := json.Unmarshal([]byte(r), &b); err != nil {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// AppendBet records the bet and applies its net effect to the stored
// balance, so the client's reconciliation reflects the wager.
func (s *store) AppendBet(ctx context.Context, b remote.LiveBet) error {
	// make sure the balance key exists before adjusting it
	if _, err := s.Balance(ctx); err != nil {
		return err
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, keyBets, raw)
	pipe.LTrim(ctx, keyBets, 0, betsKeep-1)
	pipe.IncrByFloat(ctx, keyBalance, b.Payout-b.Bet)
	_, err = pipe.Exec(ctx)
	return err
}
