package sim

// FirstDemonRound and FirstPlayerRound are the round-driver's
// first-action offsets (§4.10): the demon does nothing before round 5;
// the player's physical attack is withheld until round 6, though
// onPlay effects fire from round 1.
const (
	FirstDemonRound  = 5
	FirstPlayerRound = 6
)

// SimPlayerCard runs one field card's per-turn script (§4.8).
func SimPlayerCard(st *State, params RunParams, idx int) {
	field := &st.Field
	c := &field.Cards[idx]
	if c.IsDead() || c.Hp <= 0 {
		return
	}

	if _, ok := c.Has(AttrReanimSickness); ok {
		c.Remove(AttrReanimSickness, -1)
		return
	}

	trapped := false
	if _, ok := c.Has(AttrTrapBuff); ok {
		c.Remove(AttrTrapBuff, -1)
		trapped = true
	}

	if !trapped {
		runPerCardAbilities(st, params, idx)
		c = &field.Cards[idx]
		if c.IsDead() || c.Hp <= 0 {
			return
		}

		if idx == 0 && c.Hp > 0 {
			SimPlayerAttack(st, params)
			c = &field.Cards[idx]
			if c.IsDead() || c.Hp <= 0 {
				return
			}
		}
	}

	// Post-attack damaging statuses (self).
	c = &field.Cards[idx]
	for _, kind := range [2]AttrKind{AttrFireGod, AttrToxicClouds} {
		level, ok := c.Has(kind)
		if !ok {
			continue
		}
		if level > c.Hp {
			level = c.Hp
		}
		c.Hp -= level
		if kind == AttrToxicClouds {
			c.Remove(AttrToxicClouds, -1)
		}
		if c.Hp <= 0 {
			Remove(st, idx, true)
			return
		}
	}

	if trapped {
		return
	}
	c = &field.Cards[idx]
	if _, laced := c.Has(AttrLacerateBuff); laced {
		return
	}
	for _, kind := range [2]AttrKind{AttrRejuvenate, AttrBloodStoneAbility} {
		if level, ok := c.Has(kind); ok {
			HealOneCard(c, level)
		}
	}
}

// runPerCardAbilities dispatches the per-turn ability handlers in
// attribute-list order for one field card (§4.8's ability loop).
func runPerCardAbilities(st *State, params RunParams, idx int) {
	field := &st.Field
	// Snapshot the attribute list: handlers may mutate Attrs (e.g.
	// Reanimate appends a new field card with its own attrs), so
	// iterate over a stable copy.
	attrs := append([]Attribute(nil), field.Cards[idx].Attrs...)
	for _, a := range attrs {
		c := &field.Cards[idx]
		if c.IsDead() || c.Hp <= 0 {
			return
		}
		switch a.Kind {
		case AttrAdvancedStrike:
			AdvancedStrike(&st.Hand)
		case AttrReincarnate:
			Reincarnate(st, a.Level)
		case AttrReanimate:
			Reanimate(st)
		case AttrRegenerate:
			RegenerateField(field, a.Level)
		case AttrHealing:
			if targetIdx, ok := FindLowestHpCard(st, field, true); ok {
				HealOneCard(&field.Cards[targetIdx], a.Level)
			}
		case AttrPrayer:
			HealHero(st, a.Level)
		case AttrSnipe, AttrManaCorrupt, AttrFlyingStoneAbility:
			if st.Round < FirstPlayerRound {
				continue
			}
			level := a.Level
			if a.Kind == AttrManaCorrupt {
				level *= 3
			}
			st.DmgDone += level
			st.Demon.Hp -= level
		case AttrBite:
			// No-op: the demon is immune. Preserved as a documented
			// dead ability from the reference implementation.
		case AttrMania:
			Mania(c, a.Level)
			if c.Hp <= 0 {
				Remove(st, idx, true)
				return
			}
		}
	}
}

// SimPlayer runs the rune engine and then every field card's per-turn
// script, in position order, finishing with Backstab cleanup and a
// dead-card sweep (§4.8).
func SimPlayer(st *State, params RunParams) {
	HandleRunes(st)

	for i := 0; i < st.Field.Len(); i++ {
		SimPlayerCard(st, params, i)
	}

	for i := range st.Field.Cards {
		c := &st.Field.Cards[i]
		if c.IsDead() {
			continue
		}
		for {
			level, ok := c.Has(AttrBackstabBuff)
			if !ok {
				break
			}
			c.Remove(AttrBackstabBuff, level)
			c.Atk -= level
			if c.Atk < 0 {
				c.Atk = 0
			}
		}
	}

	st.Field.RemoveDeadCards()
}
