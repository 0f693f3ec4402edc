package ws

type Event string

const (
	EventFirstUpdate Event = "firstUpdate"
	EventBalance     Event = "balance"
	EventReelFrame   Event = "reelFrame"
	EventKenoToggled Event = "kenoToggled"
	EventKenoReveal  Event = "kenoReveal"
	EventCrashTick   Event = "crashTick"
	EventDiceFrame   Event = "diceFrame"
	EventSettled     Event = "settled"
	EventReady       Event = "ready"
	EventChat        Event = "chat"
	EventBetLog      Event = "betLog"
	EventError       Event = "error"
)

type ClientEvent string

const (
	ClientEventSpin         ClientEvent = "spin"
	ClientEventKenoToggle   ClientEvent = "kenoToggle"
	ClientEventKenoPlay     ClientEvent = "kenoPlay"
	ClientEventCrashBet     ClientEvent = "crashBet"
	ClientEventCrashCashout ClientEvent = "crashCashout"
	ClientEventDiceRoll     ClientEvent = "diceRoll"
	ClientEventChatSend     ClientEvent = "chatSend"
)
