package sim

import "github.com/aidenkroll/demonsim/internal/log"

// RunParams is the immutable configuration the round driver consults.
// Per the author's design note (spec.md §9), global run configuration
// belongs to the driver, never to the engine's mutable State — so this
// is threaded through as a plain value, not stored on State.
type RunParams struct {
	MaxRounds      int // safety cap; default 500
	RoundX         int // round threshold for the "percent hit round X" stat
	AvgConcentrate bool
}

// DefaultRunParams mirrors the reference implementation's defaults.
var DefaultRunParams = RunParams{MaxRounds: 500, RoundX: 50}

// State is the complete mutable state of one trial: the demon, the
// four card sets, the rune array, hero hp, round counter, cumulative
// damage, and this trial's PRNG seeds. One State belongs to exactly one
// worker for exactly one trial at a time.
type State struct {
	Demon Card

	Deck  CardSet
	Hand  CardSet
	Field CardSet
	Grave CardSet

	Runes [MaxRunes]RuneInstance

	HeroHP    int
	HeroMaxHP int

	Round   int
	DmgDone int

	SeedW uint32
	SeedZ uint32

	nextCardID int

	// Trace receives debug events as the trial runs. Nil in the
	// common high-iteration path; montecarlo.Run forces a
	// single-worker run when a trace sink is supplied.
	Trace log.EventLogger
}

// NextCardID returns a fresh identity for a card entering the field.
func (st *State) NextCardID() int {
	st.nextCardID++
	return st.nextCardID
}

// NewState builds a fresh default state: the demon card, a deck stamped
// out from the deck's card templates, the configured runes, and the
// hero's starting hp. It does not shuffle the deck or seed the PRNG —
// callers do that once per-worker (seed) and once per-trial (shuffle).
func NewState(demon *CardTemplate, deckCards []*CardTemplate, runes []*RuneTemplate, heroHP int) State {
	st := State{
		Demon:     NewCard(demon),
		Deck:      NewCardSet(),
		Hand:      NewCardSet(),
		Field:     NewCardSet(),
		Grave:     NewCardSet(),
		HeroHP:    heroHP,
		HeroMaxHP: heroHP,
	}
	for _, t := range deckCards {
		st.Deck.Cards = append(st.Deck.Cards, NewCard(t))
	}
	for i, rt := range runes {
		if i >= MaxRunes {
			break
		}
		st.Runes[i] = RuneInstance{Template: rt}
	}
	return st
}

// InitState resets a worker's State to the trial's default, preserving
// only the PRNG seeds across the reset (§2.9, "InitState copies a
// pre-built default state, preserving PRNG seeds").
func InitState(dst *State, def *State) {
	seedW, seedZ := dst.SeedW, dst.SeedZ
	trace := dst.Trace
	*dst = CloneState(def)
	dst.SeedW, dst.SeedZ = seedW, seedZ
	dst.Trace = trace
}

// CloneState makes a deep value copy of a State — every card slice is
// copied so that two States never alias each other's Attrs backing
// arrays.
func CloneState(src *State) State {
	dst := *src
	dst.Deck.Cards = append([]Card(nil), src.Deck.Cards...)
	dst.Hand.Cards = append([]Card(nil), src.Hand.Cards...)
	dst.Field.Cards = append([]Card(nil), src.Field.Cards...)
	dst.Grave.Cards = append([]Card(nil), src.Grave.Cards...)
	for i := range dst.Deck.Cards {
		dst.Deck.Cards[i].Attrs = append([]Attribute(nil), src.Deck.Cards[i].Attrs...)
	}
	for i := range dst.Hand.Cards {
		dst.Hand.Cards[i].Attrs = append([]Attribute(nil), src.Hand.Cards[i].Attrs...)
	}
	for i := range dst.Field.Cards {
		dst.Field.Cards[i].Attrs = append([]Attribute(nil), src.Field.Cards[i].Attrs...)
	}
	for i := range dst.Grave.Cards {
		dst.Grave.Cards[i].Attrs = append([]Attribute(nil), src.Grave.Cards[i].Attrs...)
	}
	dst.Demon.Attrs = append([]Attribute(nil), src.Demon.Attrs...)
	return dst
}

// trace logs an event if the state has a trace sink attached.
func (st *State) trace(ev log.GameEvent) {
	if st.Trace == nil {
		return
	}
	ev.Round = st.Round
	st.Trace.Log(ev)
}

// ShuffleDeck randomizes deck order using the trial's own PRNG — never
// math/rand, so that identical seeds reproduce identical trials.
func (st *State) ShuffleDeck() {
	d := st.Deck.Cards
	for i := len(d) - 1; i > 0; i-- {
		j := st.rnd(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	st.trace(log.NewShuffleEvent(st.Round))
}
