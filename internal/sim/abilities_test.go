package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealHeroClampsAtMaxHP(t *testing.T) {
	st := &State{HeroHP: 90, HeroMaxHP: 100}
	HealHero(st, 50)
	require.Equal(t, 100, st.HeroHP)
}

func TestHealOneCardRefusesLaceratedOrImmuneCards(t *testing.T) {
	laced := &Card{Hp: 10, MaxHp: 100, Attrs: []Attribute{{Kind: AttrLacerateBuff}}}
	HealOneCard(laced, 50)
	require.Equal(t, 10, laced.Hp)

	immune := &Card{Hp: 10, MaxHp: 100, Attrs: []Attribute{{Kind: AttrImmunity, Level: 100}}}
	HealOneCard(immune, 50)
	require.Equal(t, 10, immune.Hp)

	plain := &Card{Hp: 10, MaxHp: 100}
	HealOneCard(plain, 50)
	require.Equal(t, 60, plain.Hp)
}

func TestHealOneCardClampsAtMaxHp(t *testing.T) {
	c := &Card{Hp: 90, MaxHp: 100}
	HealOneCard(c, 50)
	require.Equal(t, 100, c.Hp)
}

func TestRegenerateFieldSkipsDeadCards(t *testing.T) {
	field := NewCardSet()
	field.Cards = append(field.Cards, Card{Hp: 10, MaxHp: 100}, DeadCard)
	RegenerateField(&field, 20)
	require.Equal(t, 30, field.Cards[0].Hp)
}

// FindLowestHpCard's documented asymmetric tiebreak: ties favor the
// rightmost card for "lowest hp" targeting (mostDamaged=false) but are
// broken uniformly at random for "most damaged" targeting
// (mostDamaged=true).
func TestFindLowestHpCardTieBreakAsymmetry(t *testing.T) {
	field := NewCardSet()
	field.Cards = append(field.Cards,
		Card{Hp: 50, MaxHp: 100},
		Card{Hp: 50, MaxHp: 100},
		Card{Hp: 50, MaxHp: 100},
	)
	st := &State{SeedW: 1, SeedZ: 1}

	idx, ok := FindLowestHpCard(st, &field, false)
	require.True(t, ok)
	require.Equal(t, 2, idx, "lowest-hp ties always resolve to the rightmost card")
}

func TestFindLowestHpCardIgnoresDeadAndZeroHp(t *testing.T) {
	field := NewCardSet()
	field.Cards = append(field.Cards, DeadCard, Card{Hp: 0, MaxHp: 10}, Card{Hp: 40, MaxHp: 100})
	st := &State{SeedW: 1, SeedZ: 1}

	idx, ok := FindLowestHpCard(st, &field, true)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestFindLowestHpCardReturnsFalseWhenFieldEmpty(t *testing.T) {
	field := NewCardSet()
	st := &State{SeedW: 1, SeedZ: 1}
	_, ok := FindLowestHpCard(st, &field, true)
	require.False(t, ok)
}

func TestAdvancedStrikeDecrementsHighestTiming(t *testing.T) {
	hand := NewCardSet()
	hand.Cards = append(hand.Cards,
		Card{CurTiming: 2},
		Card{CurTiming: 5},
		Card{CurTiming: 5},
	)
	AdvancedStrike(&hand)
	require.Equal(t, 2, hand.Cards[0].CurTiming)
	require.Equal(t, 4, hand.Cards[1].CurTiming, "ties favor whichever is found first")
	require.Equal(t, 5, hand.Cards[2].CurTiming)
}

func TestManiaTradesHpForAtk(t *testing.T) {
	c := &Card{Hp: 50, Atk: 100, CurBaseAtk: 100}
	Mania(c, 30)
	require.Equal(t, 20, c.Hp)
	require.Equal(t, 130, c.Atk)
	require.Equal(t, 130, c.CurBaseAtk)
}

func TestManiaClampsHpAtZero(t *testing.T) {
	c := &Card{Hp: 10, Atk: 100, CurBaseAtk: 100}
	Mania(c, 50)
	require.Equal(t, 0, c.Hp)
}
