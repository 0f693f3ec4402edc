package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"CloutCasino/internal/game"
)

// Client talks to the remote account, chat and bet-log services. It owns no
// state; callers decide what to do with failures.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

type ChatMessage struct {
	User    string `json:"user"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

type LiveBet struct {
	Game       string  `json:"game"`
	User       string  `json:"user"`
	Bet        float64 `json:"bet"`
	Multiplier float64 `json:"multiplier"`
	Payout     float64 `json:"payout"`
}

// Balance fetches the authoritative account balance.
func (c *Client) Balance(ctx context.Context) (decimal.Decimal, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/account/balance", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return decimal.Zero, fmt.Errorf("account balance http %d", res.StatusCode)
	}
	var out struct {
		Balance float64 `json:"balance"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(out.Balance), nil
}

func (c *Client) Chat(ctx context.Context) ([]ChatMessage, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/live/chat", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("chat fetch http %d", res.StatusCode)
	}
	var out []ChatMessage
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostChat sends one outbound message; the response body is not consumed.
func (c *Client) PostChat(ctx context.Context, message string) error {
	body, _ := json.Marshal(map[string]string{"message": message})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/live/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("chat post http %d", res.StatusCode)
	}
	return nil
}

func (c *Client) LiveBets(ctx context.Context) ([]LiveBet, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/live/bets", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("bets fetch http %d", res.StatusCode)
	}
	var out []LiveBet
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostBet emits one settled bet record. The ack carries no body the client
// needs; it only gates the follow-up balance sync.
func (c *Client) PostBet(ctx context.Context, rec game.BetRecord) error {
	payload := struct {
		Game       string  `json:"game"`
		Bet        float64 `json:"bet"`
		Multiplier float64 `json:"multiplier"`
		Payout     float64 `json:"payout"`
	}{
		Game:       string(rec.Game),
		Bet:        rec.Stake.InexactFloat64(),
		Multiplier: rec.Multiplier,
		Payout:     rec.Payout.InexactFloat64(),
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/games/bet", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("bet emit http %d", res.StatusCode)
	}
	return nil
}
