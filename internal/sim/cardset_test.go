package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushTopRejectsOverCapacity(t *testing.T) {
	s := NewCardSet()
	for i := 0; i < MaxSetSize; i++ {
		require.NoError(t, s.PushTop(Card{}))
	}
	require.Error(t, s.PushTop(Card{}))
	require.Equal(t, MaxSetSize, s.Len())
}

func TestDrawTopTakesFromTheEnd(t *testing.T) {
	s := NewCardSet()
	first := Card{Template: &CardTemplate{Name: "First"}}
	last := Card{Template: &CardTemplate{Name: "Last"}}
	require.NoError(t, s.PushTop(first))
	require.NoError(t, s.PushTop(last))

	drawn, ok := s.DrawTop()
	require.True(t, ok)
	require.Equal(t, "Last", drawn.Name())
	require.Equal(t, 1, s.Len())

	drawn, ok = s.DrawTop()
	require.True(t, ok)
	require.Equal(t, "First", drawn.Name())

	_, ok = s.DrawTop()
	require.False(t, ok)
}

func TestRemoveAtShiftsTailLeft(t *testing.T) {
	s := NewCardSet()
	for _, name := range []string{"A", "B", "C"} {
		s.PushTop(Card{Template: &CardTemplate{Name: name}})
	}
	removed := s.RemoveAt(0)
	require.Equal(t, "A", removed.Name())
	require.Equal(t, 2, s.Len())
	require.Equal(t, "B", s.Cards[0].Name())
	require.Equal(t, "C", s.Cards[1].Name())
}

func TestInsertRandomAlwaysLandsWithinBounds(t *testing.T) {
	st := &State{SeedW: 5, SeedZ: 11}
	s := NewCardSet()
	for i := 0; i < 5; i++ {
		s.PushTop(Card{Template: &CardTemplate{Name: "filler"}})
	}
	before := s.Len()
	require.NoError(t, s.InsertRandom(st, Card{Template: &CardTemplate{Name: "inserted"}}))
	require.Equal(t, before+1, s.Len())

	found := false
	for _, c := range s.Cards {
		if c.Name() == "inserted" {
			found = true
		}
	}
	require.True(t, found)
}

func TestInsertRandomRejectsOverCapacity(t *testing.T) {
	st := &State{SeedW: 1, SeedZ: 1}
	s := NewCardSet()
	for i := 0; i < MaxSetSize; i++ {
		s.PushTop(Card{})
	}
	require.Error(t, s.InsertRandom(st, Card{}))
}

func TestRemoveDeadCardsCompactsSentinelsOnly(t *testing.T) {
	s := NewCardSet()
	s.PushTop(Card{Template: &CardTemplate{Name: "Alive"}, Hp: 10})
	s.PushTop(DeadCard)
	s.PushTop(Card{Template: &CardTemplate{Name: "AlsoAlive"}, Hp: 5})

	s.RemoveDeadCards()

	require.Equal(t, 2, s.Len())
	require.Equal(t, "Alive", s.Cards[0].Name())
	require.Equal(t, "AlsoAlive", s.Cards[1].Name())
}

func TestCountWithAttrCountsAcrossSet(t *testing.T) {
	s := NewCardSet()
	s.PushTop(Card{Attrs: []Attribute{{Kind: AttrTundra}}})
	s.PushTop(Card{Attrs: []Attribute{{Kind: AttrForest}}})
	s.PushTop(Card{Attrs: []Attribute{{Kind: AttrTundra}}})

	require.Equal(t, 2, s.CountWithAttr(AttrTundra))
	require.Equal(t, 1, s.CountWithAttr(AttrForest))
	require.Equal(t, 0, s.CountWithAttr(AttrSwamp))
}

func TestAliveIndicesSkipsDeadAndZeroHp(t *testing.T) {
	s := NewCardSet()
	s.PushTop(Card{Template: &CardTemplate{Name: "A"}, Hp: 10})
	s.PushTop(DeadCard)
	s.PushTop(Card{Template: &CardTemplate{Name: "C"}, Hp: 0})

	require.Equal(t, []int{0}, s.AliveIndices())
}
