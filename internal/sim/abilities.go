package sim

import "github.com/aidenkroll/demonsim/internal/log"

// HealHero heals the hero by amount, capped at HeroMaxHP.
func HealHero(st *State, amount int) {
	st.HeroHP += amount
	if st.HeroHP > st.HeroMaxHP {
		st.HeroHP = st.HeroMaxHP
	}
	st.trace(log.NewHealEvent(st.Round, "hero", amount))
}

// HealOneCard heals a single field card by amount, capped at its
// maxHp. Lacerated or immune cards cannot be healed.
func HealOneCard(c *Card, amount int) {
	if _, laced := c.Has(AttrLacerateBuff); laced {
		return
	}
	if _, immune := c.Has(AttrImmunity); immune {
		return
	}
	room := c.MaxHp - c.Hp
	if amount > room {
		amount = room
	}
	c.Hp += amount
}

// RegenerateField heals every field card by level (Regenerate/QS_Regenerate).
func RegenerateField(field *CardSet, level int) {
	for i := range field.Cards {
		if field.Cards[i].IsDead() {
			continue
		}
		HealOneCard(&field.Cards[i], level)
	}
}

// FindLowestHpCard scans the field for live cards and returns the index
// of the target, chosen per spec.md's documented asymmetric tiebreak:
// when mostDamaged is true (Healing's target selection), ties are
// broken uniformly at random; when false (Snipe's target selection),
// ties are always broken toward the rightmost (last) card. The author
// of the reference implementation flags this asymmetry as possibly
// unintentional but instructs it be preserved exactly.
func FindLowestHpCard(st *State, field *CardSet, mostDamaged bool) (int, bool) {
	best := -1
	bestHp := 0
	var tied []int
	for i := range field.Cards {
		c := &field.Cards[i]
		if c.IsDead() || c.Hp <= 0 {
			continue
		}
		if best == -1 || c.Hp < bestHp {
			best = i
			bestHp = c.Hp
			tied = tied[:0]
			tied = append(tied, i)
		} else if c.Hp == bestHp {
			tied = append(tied, i)
		}
	}
	if best == -1 {
		return -1, false
	}
	if len(tied) == 1 {
		return tied[0], true
	}
	if mostDamaged {
		return tied[st.rnd(len(tied))], true
	}
	return tied[len(tied)-1], true
}

// AdvancedStrike finds the hand card with the highest CurTiming and
// decrements it by one. Ties favor whichever card is found first
// (iteration uses strict '>', matching the reference implementation).
func AdvancedStrike(hand *CardSet) {
	best := -1
	bestTiming := 0
	for i := range hand.Cards {
		if hand.Cards[i].CurTiming > bestTiming {
			bestTiming = hand.Cards[i].CurTiming
			best = i
		}
	}
	if best >= 0 && hand.Cards[best].CurTiming > 0 {
		hand.Cards[best].CurTiming--
	}
}

// Reincarnate moves up to level cards from the front (oldest) of grave
// to the deck's tail, stopping early if grave empties. The reference
// implementation's empirical testing confirms grave order here is
// front-to-back, not random.
func Reincarnate(st *State, level int) {
	for i := 0; i < level; i++ {
		if st.Grave.Len() == 0 {
			return
		}
		c := st.Grave.RemoveAt(0)
		st.Deck.PushTop(c)
	}
}

// pickReanimatableCard returns the index of a uniformly random grave
// card that lacks Reanimate, D_Reanimate, and Immunity.
func pickReanimatableCard(st *State) (int, bool) {
	var candidates []int
	for i := range st.Grave.Cards {
		c := &st.Grave.Cards[i]
		if _, ok := c.Has(AttrReanimate); ok {
			continue
		}
		if _, ok := c.Has(AttrDReanimate); ok {
			continue
		}
		if _, ok := c.Has(AttrImmunity); ok {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return candidates[st.rnd(len(candidates))], true
}

// Reanimate picks an eligible grave card, moves it to the field with
// REANIM_SICKNESS attached, and fires its onPlay sequence with
// CurTiming reset to 0.
func Reanimate(st *State) {
	idx, ok := pickReanimatableCard(st)
	if !ok {
		return
	}
	c := st.Grave.RemoveAt(idx)
	c.CurTiming = 0
	c.ID = st.NextCardID()
	c.Add(Attribute{Kind: AttrReanimSickness})
	name := c.Name()
	st.Field.PushTop(c)
	st.trace(log.NewCardReanimatedEvent(st.Round, name))
	CardPlayedToField(st, st.Field.Len()-1)
}

// Mania: hp -= level; atk += level; curBaseAtk += level. May kill self;
// the caller is responsible for the resulting death check.
func Mania(c *Card, level int) {
	c.Hp -= level
	if c.Hp < 0 {
		c.Hp = 0
	}
	c.Atk += level
	c.CurBaseAtk += level
}
