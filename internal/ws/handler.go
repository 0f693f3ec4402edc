package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"CloutCasino/internal/feed"
	"CloutCasino/internal/game"
	"CloutCasino/internal/ledger"
	"CloutCasino/internal/sched"
)

// Handler is the bridge between the UI page and the engine: it receives
// client_event messages and hands snapshots, balances and feeds back as
// broadcast events.
type Handler struct {
	Upgrader websocket.Upgrader
	Hub      *Hub
	Log      *zap.Logger

	Slots *game.SlotsSession
	Keno  *game.KenoSession
	Crash *game.CrashSession
	Dice  *game.DiceSession

	Ledger *ledger.Ledger
	Feed   *feed.Sync
	Driver *sched.Driver

	SlotsTick  time.Duration
	KenoReveal time.Duration
	CrashTick  time.Duration
	DiceTick   time.Duration
}

func (h *Handler) sendErr(conn *websocket.Conn, gameName, msg string) {
	_ = h.Hub.SendJSON(conn, ErrorMsg{
		Event:   EventError,
		Game:    gameName,
		Message: msg,
	})
}

// Emit broadcasts every display event a snapshot implies. The scheduler
// calls it once per tick.
func (h *Handler) Emit(snap game.Snapshot) {
	for _, ev := range Events(snap) {
		h.Hub.BroadcastJSON(ev)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip := r.RemoteAddr

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("ws upgrade failed", zap.String("ip", ip), zap.Error(err))
		return
	}
	defer func() {
		h.Log.Debug("ws disconnect", zap.String("ip", ip))
		_ = conn.Close()
	}()

	h.Hub.Register(conn)
	defer h.Hub.Unregister(conn)

	h.Log.Debug("ws connect", zap.String("ip", ip))

	_ = h.Hub.SendJSON(conn, FirstUpdate{
		Event:   EventFirstUpdate,
		Balance: h.Ledger.Balance().StringFixed(2),
		Phases: map[string]string{
			string(game.KindSlots): string(h.Slots.Phase()),
			string(game.KindKeno):  string(h.Keno.Phase()),
			string(game.KindCrash): string(h.Crash.Phase()),
			string(game.KindDice):  string(h.Dice.Phase()),
		},
		Online: h.Hub.Online(),
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var base struct {
			ClientEvent ClientEvent `json:"client_event"`
		}
		if err := json.Unmarshal(raw, &base); err != nil {
			h.sendErr(conn, "", "bad json")
			continue
		}

		switch base.ClientEvent {

		case ClientEventSpin:
			stake, ok := h.readStake(conn, raw, game.KindSlots)
			if !ok {
				continue
			}
			if err := h.Slots.Spin(stake); err != nil {
				h.sendErr(conn, string(game.KindSlots), err.Error())
				continue
			}
			h.Driver.Drive(h.Slots, h.SlotsTick, h.Emit)

		case ClientEventKenoToggle:
			var m KenoToggleMsg
			if err := json.Unmarshal(raw, &m); err != nil {
				h.sendErr(conn, string(game.KindKeno), "bad toggle json")
				continue
			}
			selected, err := h.Keno.Toggle(m.Number)
			if err != nil {
				h.sendErr(conn, string(game.KindKeno), err.Error())
				continue
			}
			h.Hub.BroadcastJSON(KenoToggledMsg{
				Event:    EventKenoToggled,
				Number:   m.Number,
				Selected: selected,
			})

		case ClientEventKenoPlay:
			stake, ok := h.readStake(conn, raw, game.KindKeno)
			if !ok {
				continue
			}
			if err := h.Keno.Play(stake); err != nil {
				h.sendErr(conn, string(game.KindKeno), err.Error())
				continue
			}
			h.Driver.Drive(h.Keno, h.KenoReveal, h.Emit)

		case ClientEventCrashBet:
			stake, ok := h.readStake(conn, raw, game.KindCrash)
			if !ok {
				continue
			}
			if err := h.Crash.Bet(stake); err != nil {
				h.sendErr(conn, string(game.KindCrash), err.Error())
				continue
			}
			h.Driver.Drive(h.Crash, h.CrashTick, h.Emit)

		case ClientEventCrashCashout:
			out, err := h.Crash.CashOut()
			if err != nil {
				h.sendErr(conn, string(game.KindCrash), err.Error())
				continue
			}
			// the broadcast multiplier is exactly the one that was paid
			h.Hub.BroadcastJSON(SettledMsg{
				Event:      EventSettled,
				Game:       string(game.KindCrash),
				Multiplier: out.Multiplier,
				Payout:     out.Payout.StringFixed(2),
				Win:        true,
			})

		case ClientEventDiceRoll:
			stake, ok := h.readStake(conn, raw, game.KindDice)
			if !ok {
				continue
			}
			if err := h.Dice.Roll(stake); err != nil {
				h.sendErr(conn, string(game.KindDice), err.Error())
				continue
			}
			h.Driver.Drive(h.Dice, h.DiceTick, h.Emit)

		case ClientEventChatSend:
			var m ChatSendMsg
			if err := json.Unmarshal(raw, &m); err != nil {
				h.sendErr(conn, "", "bad chat json")
				continue
			}
			h.Feed.PostChat(r.Context(), m.Message)

		default:
			h.sendErr(conn, "", "unknown client_event: "+string(base.ClientEvent))
		}
	}
}

func (h *Handler) readStake(conn *websocket.Conn, raw []byte, kind game.Kind) (decimal.Decimal, bool) {
	var m StakeMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		h.sendErr(conn, string(kind), "bad stake json")
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(m.Stake), true
}
