package sim

import "github.com/aidenkroll/demonsim/internal/log"

// Simulate runs one trial's round loop to completion (§4.10): it
// alternates player and demon rounds until the hero dies, every set is
// exhausted, or maxRounds is reached, then applies the reference
// implementation's final round-- convention. Returns whether the trial
// passed through params.RoundX, for the "percent hit round X" stat.
func Simulate(st *State, params RunParams) (hitRoundX bool) {
	st.Round = 1
	for st.HeroHP > 0 && (st.Field.Len() > 0 || st.Deck.Len() > 0 || st.Hand.Len() > 0) && st.Round <= params.MaxRounds {
		if st.Round == params.RoundX {
			hitRoundX = true
		}
		st.trace(log.NewRoundStartEvent(st.Round))

		decreaseTimers(st)

		if st.Round%2 == 0 {
			playRound(st, params)
			if st.HeroHP <= 0 {
				st.Round++
				break
			}
		} else {
			SimDemon(st)
		}

		st.Round++
	}
	st.Round--
	return hitRoundX
}

func decreaseTimers(st *State) {
	for i := range st.Hand.Cards {
		if st.Hand.Cards[i].CurTiming > 0 {
			st.Hand.Cards[i].CurTiming--
		}
	}
}

// playRound runs one player round: draw, play timing-ready hand cards,
// then (if the hero survived Obstinacy) the rune engine and every field
// card's per-turn script.
func playRound(st *State, params RunParams) {
	drawCard(st)
	playCardsFromHand(st)
	if st.HeroHP <= 0 {
		return
	}
	SimPlayer(st, params)
}

// drawCard moves the deck's top card into hand, skipping (and leaving
// the card on the deck) if the hand is already full.
func drawCard(st *State) {
	if st.Hand.Len() >= 5 {
		return
	}
	c, ok := st.Deck.DrawTop()
	if !ok {
		return
	}
	st.trace(log.NewDrawEvent(st.Round, c.Name()))
	st.Hand.PushTop(c)
}

// playCardsFromHand moves every hand card whose timer has elapsed onto
// the field, firing its onPlay sequence.
func playCardsFromHand(st *State) {
	i := 0
	for i < st.Hand.Len() {
		if st.Hand.Cards[i].CurTiming > 0 {
			i++
			continue
		}
		c := st.Hand.RemoveAt(i)
		c.ID = st.NextCardID()
		if err := st.Field.PushTop(c); err != nil {
			continue
		}
		fieldIdx := st.Field.Len() - 1
		st.trace(log.NewCardPlayedEvent(st.Round, c.Name(), c.Atk, c.Hp, fieldIdx))
		CardPlayedToField(st, fieldIdx)
	}
}
