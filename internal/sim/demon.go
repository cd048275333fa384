package sim

import "github.com/aidenkroll/demonsim/internal/log"

// pickAliveFieldCard returns the field index of a uniformly random live
// card, or false if none are alive.
func pickAliveFieldCard(st *State) (int, bool) {
	alive := st.Field.AliveIndices()
	if len(alive) == 0 {
		return -1, false
	}
	return alive[st.rnd(len(alive))], true
}

// SimDemonTrap picks level live field cards uniformly at random and
// rolls a 65% chance to attach TRAP_BUFF to each, unless the target has
// Immunity or Evasion (auto-resist).
func SimDemonTrap(st *State, level int) {
	alive := st.Field.AliveIndices()
	picked := pickNCards(st, alive, level)
	for _, idx := range picked {
		c := &st.Field.Cards[idx]
		if _, ok := c.Has(AttrImmunity); ok {
			continue
		}
		if _, ok := c.Has(AttrEvasion); ok {
			continue
		}
		if st.rnd(100) < 65 {
			c.Add(Attribute{Kind: AttrTrapBuff})
		}
	}
}

// pickNCards selects up to n distinct indices from candidates uniformly
// at random, returned in ascending order.
func pickNCards(st *State, candidates []int, n int) []int {
	if n > len(candidates) {
		n = len(candidates)
	}
	pool := append([]int(nil), candidates...)
	picked := make([]int, 0, n)
	for i := 0; i < n; i++ {
		j := st.rnd(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	// ascending order
	for i := 1; i < len(picked); i++ {
		for j := i; j > 0 && picked[j-1] > picked[j]; j-- {
			picked[j-1], picked[j] = picked[j], picked[j-1]
		}
	}
	return picked
}

// SimDemonLacerate idempotently attaches LACERATE_BUFF to c.
func SimDemonLacerate(c *Card) {
	if _, ok := c.Has(AttrLacerateBuff); !ok {
		c.Add(Attribute{Kind: AttrLacerateBuff})
	}
}

// SimDemonAttack resolves the demon's physical attack: hits field[0] if
// alive, otherwise the hero directly. Chain Attack then applies a
// fraction of the damage actually dealt to every other live card
// sharing the original target's template name.
func SimDemonAttack(st *State, dmg int) {
	if st.Field.Len() > 0 && !st.Field.Cards[0].IsDead() && st.Field.Cards[0].Hp > 0 {
		targetName := st.Field.Cards[0].Name()
		newDmg := DamageCard(st, 0, dmg)
		if newDmg > 0 {
			if level, ok := st.Demon.Has(AttrChainAttack); ok {
				chainDmg := newDmg * level / 100
				for i := 1; i < st.Field.Len(); i++ {
					c := &st.Field.Cards[i]
					if c.IsDead() || c.Hp <= 0 {
						continue
					}
					if c.Name() != targetName {
						continue
					}
					DamageCard(st, i, chainDmg)
				}
			}
		}
	} else {
		DamagePlayer(st, dmg)
	}
}

// SimDemon runs the demon's round script (§4.11). Before
// FirstDemonRound it is a no-op; from round 51 the hero additionally
// takes unavoidable scaling damage that bypasses Guard entirely.
func SimDemon(st *State) {
	if st.Round >= 51 {
		unavoidable := ((st.Round-51)/2)*60 + 80
		if unavoidable > st.HeroHP {
			unavoidable = st.HeroHP
		}
		st.HeroHP -= unavoidable
		if unavoidable > 0 {
			st.trace(log.NewDamageHeroEvent(st.Round, unavoidable, st.HeroHP, "unavoidable scaling damage"))
		}
	}

	if st.Round < FirstDemonRound {
		return
	}

	demonScript(st)

	if st.HeroHP > 0 {
		atk := st.Demon.Atk
		if level, ok := st.Demon.Has(AttrHotChase); ok {
			atk += level * st.Grave.Len()
		}
		SimDemonAttack(st, atk)
	}

	st.Field.RemoveDeadCards()
}

// demonScript runs each demon ability in attribute-list order, halting
// early if the hero dies.
func demonScript(st *State) {
	attrs := append([]Attribute(nil), st.Demon.Attrs...)
	for _, a := range attrs {
		if st.HeroHP <= 0 {
			return
		}
		switch a.Kind {
		case AttrCurse:
			DamagePlayer(st, a.Level)
		case AttrDamnation:
			DamagePlayer(st, a.Level*st.Field.Len())
		case AttrExile:
			if st.Field.Len() == 0 {
				continue
			}
			c := &st.Field.Cards[0]
			if c.IsDead() || c.Hp <= 0 {
				continue
			}
			if _, ok := c.Has(AttrResistance); ok {
				continue
			}
			if _, ok := c.Has(AttrImmunity); ok {
				continue
			}
			Remove(st, 0, false)
		case AttrSnipe:
			if idx, ok := FindLowestHpCard(st, &st.Field, false); ok {
				c := &st.Field.Cards[idx]
				dmg := a.Level
				if dmg > c.Hp {
					dmg = c.Hp
				}
				c.Hp -= dmg
				if c.Hp <= 0 {
					Remove(st, idx, true)
				}
			}
		case AttrManaCorrupt:
			if idx, ok := pickAliveFieldCard(st); ok {
				c := &st.Field.Cards[idx]
				dmg := a.Level
				_, reflect := c.Has(AttrReflection)
				_, immune := c.Has(AttrImmunity)
				if reflect || immune {
					dmg *= 3
				}
				if dmg > c.Hp {
					dmg = c.Hp
				}
				c.Hp -= dmg
				if c.Hp <= 0 {
					Remove(st, idx, true)
				}
			}
		case AttrDestroy:
			if idx, ok := pickAliveFieldCard(st); ok {
				c := &st.Field.Cards[idx]
				_, resist := c.Has(AttrResistance)
				_, immune := c.Has(AttrImmunity)
				if !resist && !immune {
					c.Hp = 0
					Remove(st, idx, true)
				}
			}
		case AttrFireGod:
			for i := range st.Field.Cards {
				c := &st.Field.Cards[i]
				if c.IsDead() || c.Hp <= 0 {
					continue
				}
				if _, ok := c.Has(AttrImmunity); ok {
					continue
				}
				if _, ok := c.Has(AttrFireGod); ok {
					continue
				}
				c.Add(Attribute{Kind: AttrFireGod, Level: a.Level})
			}
		case AttrToxicClouds:
			for i := range st.Field.Cards {
				c := &st.Field.Cards[i]
				if c.IsDead() || c.Hp <= 0 {
					continue
				}
				if _, ok := c.Has(AttrImmunity); ok {
					// Skip this card only; every other immunity check
					// in the reference implementation is a continue,
					// not a loop-abort (see DESIGN.md).
					continue
				}
				dmg := a.Level
				if dmg > c.Hp {
					dmg = c.Hp
				}
				c.Hp -= dmg
				if c.Hp <= 0 {
					Remove(st, i, true)
					continue
				}
				if _, already := c.Has(AttrToxicClouds); !already {
					c.Add(Attribute{Kind: AttrToxicClouds, Level: a.Level})
				}
			}
		case AttrTrap:
			SimDemonTrap(st, a.Level)
		}
	}
}
