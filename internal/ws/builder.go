package ws

import "CloutCasino/internal/game"

// Events maps one session snapshot to the display events it implies: an
// animation frame while running, a settled banner on the terminal tick, and
// a ready notice once the session re-arms.
func Events(s game.Snapshot) []any {
	var out []any

	if s.Phase == game.PhaseIdle {
		out = append(out, ReadyMsg{Event: EventReady, Game: string(s.Kind)})
		return out
	}

	switch s.Kind {
	case game.KindSlots:
		var reels [3]string
		for i, sym := range s.Reels {
			reels[i] = string(sym)
		}
		out = append(out, ReelFrameMsg{Event: EventReelFrame, Reels: reels})

	case game.KindKeno:
		if s.Reveal != 0 {
			out = append(out, KenoRevealMsg{
				Event:  EventKenoReveal,
				Number: s.Reveal,
				Hit:    s.RevealHit,
				Index:  s.RevealIdx,
				Hits:   s.Hits,
			})
		}

	case game.KindCrash:
		out = append(out, CrashTickMsg{
			Event:      EventCrashTick,
			Multiplier: s.Multiplier,
			Crashed:    s.Crashed,
		})

	case game.KindDice:
		out = append(out, DiceFrameMsg{
			Event:  EventDiceFrame,
			Player: s.PlayerRoll,
			House:  s.HouseRoll,
		})
	}

	if s.Result != nil {
		out = append(out, SettledMsg{
			Event:      EventSettled,
			Game:       string(s.Kind),
			Multiplier: s.Result.Multiplier,
			Payout:     s.Result.Payout.StringFixed(2),
			Win:        s.Result.Win,
		})
	}
	return out
}
