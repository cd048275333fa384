package sim

import "fmt"

// MaxSetSize is the capacity of any card set (deck, hand, field, grave).
const MaxSetSize = 20

// CardSet is a bounded, ordered sequence of cards. Order is semantic:
// for the deck it encodes draw order (top = highest index); for the
// field it encodes targeting priority (index 0 = front).
type CardSet struct {
	Cards []Card
}

// NewCardSet returns an empty set pre-allocated to capacity.
func NewCardSet() CardSet {
	return CardSet{Cards: make([]Card, 0, MaxSetSize)}
}

func (s *CardSet) Len() int { return len(s.Cards) }

// PushTop appends a card at the end of the set (the deck's "top").
func (s *CardSet) PushTop(c Card) error {
	if len(s.Cards) >= MaxSetSize {
		return fmt.Errorf("card set capacity (%d) exceeded", MaxSetSize)
	}
	s.Cards = append(s.Cards, c)
	return nil
}

// DrawTop removes and returns the last card in the set (deck draw
// order: deck[last] moves to hand). ok is false if the set is empty.
func (s *CardSet) DrawTop() (Card, bool) {
	if len(s.Cards) == 0 {
		return Card{}, false
	}
	last := len(s.Cards) - 1
	c := s.Cards[last]
	s.Cards = s.Cards[:last]
	return c, true
}

// RemoveAt removes the card at index i, shifting the tail left to
// preserve order.
func (s *CardSet) RemoveAt(i int) Card {
	c := s.Cards[i]
	s.Cards = append(s.Cards[:i], s.Cards[i+1:]...)
	return c
}

// InsertRandom inserts a card at a uniformly random position, used by
// Exile. Position ranges over [0, len] inclusive (len+1 slots).
func (s *CardSet) InsertRandom(st *State, c Card) error {
	if len(s.Cards) >= MaxSetSize {
		return fmt.Errorf("card set capacity (%d) exceeded", MaxSetSize)
	}
	idx := st.rnd(len(s.Cards) + 1)
	s.Cards = append(s.Cards, Card{})
	copy(s.Cards[idx+1:], s.Cards[idx:])
	s.Cards[idx] = c
	return nil
}

// RemoveDeadCards sweeps the field, compacting out any DEAD sentinel
// left behind mid-round by in-place replacement.
func (s *CardSet) RemoveDeadCards() {
	out := s.Cards[:0]
	for _, c := range s.Cards {
		if !c.IsDead() {
			out = append(out, c)
		}
	}
	s.Cards = out
}

// AliveIndices returns the indices of cards with hp > 0 in the set.
func (s *CardSet) AliveIndices() []int {
	var idx []int
	for i, c := range s.Cards {
		if c.Hp > 0 && !c.IsDead() {
			idx = append(idx, i)
		}
	}
	return idx
}

// CountWithAttr counts how many cards in the set carry the given
// attribute kind (used by rune activation gates, §4.9).
func (s *CardSet) CountWithAttr(kind AttrKind) int {
	n := 0
	for i := range s.Cards {
		if _, ok := s.Cards[i].Has(kind); ok {
			n++
		}
	}
	return n
}
