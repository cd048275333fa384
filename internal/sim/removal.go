package sim

import "github.com/aidenkroll/demonsim/internal/log"

// Remove implements §4.6's card-removal sequence: mark dead, withdraw
// outgoing buffs, optionally trigger Desperation abilities, reroute a
// fresh template-reset copy to grave/hand/deck (or exile to deck), and
// overwrite the field slot with the DeadCard sentinel so positional
// indices survive for the rest of the round.
func Remove(st *State, fieldIdx int, sendToGrave bool) {
	field := &st.Field
	c := &field.Cards[fieldIdx]
	name := c.Name()

	// 1. Mark dead.
	c.Hp = 0
	c.Add(Attribute{Kind: AttrDead})
	reason := "exiled"
	if sendToGrave {
		reason = "sent to grave"
	}
	st.trace(log.NewCardDiedEvent(st.Round, name, reason))

	// 2. Withdraw outgoing class-buffs granted to the rest of the field.
	WithdrawOutgoingBuffs(field, c)

	if sendToGrave {
		// 3. Desperation abilities.
		if level, ok := c.Has(AttrDPrayer); ok {
			HealHero(st, level)
		}
		if _, ok := c.Has(AttrDReanimate); ok {
			Reanimate(st)
		}
		if level, ok := c.Has(AttrDReincarnate); ok {
			Reincarnate(st, level)
		}
	}

	// 4. Build a fresh template-reset copy and route it.
	fresh := c.Template
	copyCard := NewCard(fresh)

	if sendToGrave {
		// Both rolls always happen when their attribute is present,
		// independent of each other's outcome — a card with both Dirt
		// and Resurrection still consumes two PRNG draws. Resurrection
		// is checked second, so it wins the destination if both hit.
		routed := false
		if level, ok := c.Has(AttrDirt); ok && st.Chance(level) {
			routed = true
		}
		if level, ok := c.Has(AttrResurrection); ok && st.Chance(level) {
			routed = true
		}
		if routed {
			routeToHandOrDeck(st, copyCard)
			st.trace(log.NewCardResurrectedEvent(st.Round, name))
		} else {
			st.Grave.PushTop(copyCard)
		}
	} else {
		st.Deck.InsertRandom(st, copyCard)
		st.trace(log.NewCardExiledEvent(st.Round, name))
	}

	// 5. Overwrite the on-field slot with the sentinel.
	field.Cards[fieldIdx] = DeadCard
}

// routeToHandOrDeck resurrects a card into hand, or to the deck tail if
// the hand is already full (§3 invariant: hand size ≤ 5).
func routeToHandOrDeck(st *State, c Card) bool {
	if st.Hand.Len() < 5 {
		st.Hand.PushTop(c)
	} else {
		st.Deck.PushTop(c)
	}
	return true
}
