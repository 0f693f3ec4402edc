package ws

import "CloutCasino/internal/remote"

// FeedView renders the shared feeds by broadcasting full snapshots; the page
// replaces its panels wholesale.
type FeedView struct {
	Hub *Hub
}

func (v FeedView) RenderChat(msgs []remote.ChatMessage) {
	v.Hub.BroadcastJSON(ChatMsg{Event: EventChat, Messages: msgs})
}

func (v FeedView) RenderBets(bets []remote.LiveBet) {
	v.Hub.BroadcastJSON(BetLogMsg{Event: EventBetLog, Bets: bets})
}
