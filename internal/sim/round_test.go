package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Boundary scenario 5: round 51 deals exactly 80 unavoidable damage
// bypassing Guard; round 53 deals 140; round 55 deals 200.
func TestSimDemonUnavoidableScalingDamageByRound(t *testing.T) {
	cases := []struct {
		round    int
		expected int
	}{
		{51, 80},
		{53, 140},
		{55, 200},
	}
	for _, tc := range cases {
		st := &State{SeedW: 1, SeedZ: 1, Round: tc.round, HeroHP: 100000, HeroMaxHP: 100000, Field: NewCardSet(), Grave: NewCardSet()}
		st.Demon = Card{Template: &CardTemplate{Name: "Demon"}}
		before := st.HeroHP
		SimDemon(st)
		require.Equal(t, tc.expected, before-st.HeroHP, "round %d", tc.round)
	}
}

func TestSimDemonUnavoidableDamageBypassesGuard(t *testing.T) {
	st := &State{SeedW: 1, SeedZ: 1, Round: 51, HeroHP: 1000, HeroMaxHP: 1000, Field: NewCardSet(), Grave: NewCardSet()}
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}}
	st.Field.Cards = append(st.Field.Cards, Card{
		Template: &CardTemplate{Name: "Shieldbearer"}, Hp: 500, MaxHp: 500,
		Attrs: []Attribute{{Kind: AttrGuard, Level: 9999}},
	})

	SimDemon(st)

	require.Equal(t, 920, st.HeroHP, "the round-51 tax ignores Guard entirely")
	require.Equal(t, 500, st.Field.Cards[0].Hp, "Guard cards are untouched by the unavoidable tax")
}

func TestSimDemonNoopBeforeFirstDemonRound(t *testing.T) {
	st := &State{SeedW: 1, SeedZ: 1, Round: FirstDemonRound - 1, HeroHP: 100, HeroMaxHP: 100, Field: NewCardSet(), Grave: NewCardSet()}
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}, Attrs: []Attribute{{Kind: AttrCurse, Level: 50}}}

	SimDemon(st)
	require.Equal(t, 100, st.HeroHP)
}

func TestSimulateEndsWhenHeroDies(t *testing.T) {
	st := &State{
		SeedW: 1, SeedZ: 1,
		HeroHP: 10, HeroMaxHP: 10,
		Deck: NewCardSet(), Hand: NewCardSet(), Field: NewCardSet(), Grave: NewCardSet(),
	}
	// One card on the field keeps the round loop running until the
	// demon's first round, when Curse kills the hero.
	st.Field.Cards = append(st.Field.Cards, Card{Template: &CardTemplate{Name: "Bystander"}, Hp: 10, MaxHp: 10})
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}, Attrs: []Attribute{{Kind: AttrCurse, Level: 9999}}}

	Simulate(st, DefaultRunParams)

	require.LessOrEqual(t, st.HeroHP, 0)
	require.GreaterOrEqual(t, st.Round, FirstDemonRound)
}

func TestSimulateEndsWhenEveryCardSetIsExhausted(t *testing.T) {
	st := &State{
		SeedW: 1, SeedZ: 1,
		HeroHP: 1000, HeroMaxHP: 1000,
		Deck: NewCardSet(), Hand: NewCardSet(), Field: NewCardSet(), Grave: NewCardSet(),
	}
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}}

	Simulate(st, DefaultRunParams)

	require.Equal(t, 0, st.Deck.Len())
	require.Equal(t, 0, st.Hand.Len())
	require.Equal(t, 0, st.Field.Len())
	require.Greater(t, st.HeroHP, 0)
}

func TestSimulateRespectsMaxRoundsSafetyCap(t *testing.T) {
	st := &State{
		SeedW: 1, SeedZ: 1,
		HeroHP: 1000000, HeroMaxHP: 1000000,
		Deck: NewCardSet(), Hand: NewCardSet(), Grave: NewCardSet(), Field: NewCardSet(),
	}
	st.Field.Cards = append(st.Field.Cards, Card{
		Template: &CardTemplate{Name: "Immortal"}, Hp: 1000000, MaxHp: 1000000,
		Attrs: []Attribute{{Kind: AttrImmunity, Level: 100}},
	})
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}}

	params := RunParams{MaxRounds: 20}
	Simulate(st, params)

	require.LessOrEqual(t, st.Round, 20)
}

func TestSimulateReportsHitRoundX(t *testing.T) {
	st := &State{
		SeedW: 1, SeedZ: 1,
		HeroHP: 1000000, HeroMaxHP: 1000000,
		Deck: NewCardSet(), Hand: NewCardSet(), Grave: NewCardSet(), Field: NewCardSet(),
	}
	st.Field.Cards = append(st.Field.Cards, Card{
		Template: &CardTemplate{Name: "Immortal"}, Hp: 1000000, MaxHp: 1000000,
		Attrs: []Attribute{{Kind: AttrImmunity, Level: 100}},
	})
	st.Demon = Card{Template: &CardTemplate{Name: "Demon"}}

	hit := Simulate(st, RunParams{MaxRounds: 10, RoundX: 5})
	require.True(t, hit)

	st2 := &State{
		SeedW: 1, SeedZ: 1,
		HeroHP: 1000000, HeroMaxHP: 1000000,
		Deck: NewCardSet(), Hand: NewCardSet(), Grave: NewCardSet(), Field: NewCardSet(),
	}
	st2.Field.Cards = append(st2.Field.Cards, Card{
		Template: &CardTemplate{Name: "Immortal"}, Hp: 1000000, MaxHp: 1000000,
		Attrs: []Attribute{{Kind: AttrImmunity, Level: 100}},
	})
	st2.Demon = Card{Template: &CardTemplate{Name: "Demon"}}
	hit2 := Simulate(st2, RunParams{MaxRounds: 3, RoundX: 50})
	require.False(t, hit2)
}
