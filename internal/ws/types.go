package ws

import "CloutCasino/internal/remote"

type FirstUpdate struct {
	Event   Event             `json:"event"`
	Balance string            `json:"balance"`
	Phases  map[string]string `json:"phases"`
	Online  int               `json:"online"`
}

type BalanceMsg struct {
	Event   Event  `json:"event"`
	Surface string `json:"surface"`
	Balance string `json:"balance"`
}

type ReelFrameMsg struct {
	Event Event     `json:"event"`
	Reels [3]string `json:"reels"`
}

type KenoToggledMsg struct {
	Event    Event `json:"event"`
	Number   int   `json:"number"`
	Selected bool  `json:"selected"`
}

type KenoRevealMsg struct {
	Event  Event `json:"event"`
	Number int   `json:"number"`
	Hit    bool  `json:"hit"`
	Index  int   `json:"index"`
	Hits   int   `json:"hits"`
}

type CrashTickMsg struct {
	Event      Event   `json:"event"`
	Multiplier float64 `json:"multiplier"`
	Crashed    bool    `json:"crashed"`
}

type DiceFrameMsg struct {
	Event  Event `json:"event"`
	Player int   `json:"player"`
	House  int   `json:"house"`
}

type SettledMsg struct {
	Event      Event   `json:"event"`
	Game       string  `json:"game"`
	Multiplier float64 `json:"multiplier"`
	Payout     string  `json:"payout"`
	Win        bool    `json:"win"`
}

type ReadyMsg struct {
	Event Event  `json:"event"`
	Game  string `json:"game"`
}

type ChatMsg struct {
	Event    Event                `json:"event"`
	Messages []remote.ChatMessage `json:"messages"`
}

type BetLogMsg struct {
	Event Event            `json:"event"`
	Bets  []remote.LiveBet `json:"bets"`
}

type ErrorMsg struct {
	Event   Event  `json:"event"`
	Game    string `json:"game,omitempty"`
	Message string `json:"message"`
}

type StakeMsg struct {
	ClientEvent ClientEvent `json:"client_event"`
	Stake       float64     `json:"stake"`
}

type KenoToggleMsg struct {
	ClientEvent ClientEvent `json:"client_event"`
	Number      int         `json:"number"`
}

type ChatSendMsg struct {
	ClientEvent ClientEvent `json:"client_event"`
	Message     string      `json:"message"`
}
