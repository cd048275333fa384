package sim

// CardPlayedToField fires the onPlay sequence for a card that has just
// been appended to the field, in the exact order of spec.md §4.5 —
// deviation from this order is observable. idx is the card's index in
// field.Cards.
func CardPlayedToField(st *State, idx int) {
	field := &st.Field
	c := &field.Cards[idx]

	// 1. Obstinacy: hero loses L hp.
	if level, ok := c.Has(AttrObstinacy); ok {
		st.HeroHP -= level
	}

	// 2. Backstab: +L atk, marker for later cleanup.
	if level, ok := c.Has(AttrBackstab); ok {
		c.Atk += level
		c.Add(Attribute{Kind: AttrBackstabBuff, Level: level})
	}

	// 3. QS_Prayer: heal hero by L, capped at maxHp.
	if level, ok := c.Has(AttrQSPrayer); ok {
		HealHero(st, level)
	}

	// 4. QS_Regenerate: heal every field card by L.
	if level, ok := c.Has(AttrQSRegenerate); ok {
		RegenerateField(field, level)
	}

	// 5. QS_Reincarnate: move up to L cards from grave to deck tail.
	if level, ok := c.Has(AttrQSReincarnate); ok {
		Reincarnate(st, level)
	}

	// 6. Sacrifice L: pick one other field card at random.
	cardID := c.ID
	if level, ok := c.Has(AttrSacrifice); ok {
		resolveSacrifice(st, idx, level)
	}

	// Re-fetch: the field slice may have been compacted by the
	// sacrifice's RemoveDeadCards call, moving c's index. Cards carry a
	// stable ID precisely so they can be re-located after a compaction.
	idx = indexOfCardID(field, cardID)
	if idx < 0 {
		return
	}
	c = &field.Cards[idx]

	// 7. Incoming class-buffs from matching residents.
	ApplyIncomingBuffs(field, c)

	// 8. Outgoing class-buffs applied to matching residents.
	ApplyOutgoingBuffs(field, c)
}

// indexOfCardID finds a card's current field index by stable identity.
func indexOfCardID(set *CardSet, id int) int {
	for i := range set.Cards {
		if set.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// resolveSacrifice implements §4.5 step 6: pick one of the other field
// cards uniformly at random; if it has Immunity, no effect; otherwise
// the source gains stat growth and the target is removed to grave.
// Per original_source/sim.c, the atk and hp growth reads are
// independent — both computed from the source's pre-mutation values,
// not chained (see DESIGN.md "Sacrifice's order of stat reads").
func resolveSacrifice(st *State, sourceIdx int, level int) {
	field := &st.Field
	others := make([]int, 0, field.Len()-1)
	for i := range field.Cards {
		if i != sourceIdx && !field.Cards[i].IsDead() {
			others = append(others, i)
		}
	}
	if len(others) == 0 {
		return
	}
	targetIdx := others[st.rnd(len(others))]
	target := &field.Cards[targetIdx]
	if _, immune := target.Has(AttrImmunity); immune {
		return
	}

	source := &field.Cards[sourceIdx]
	atkGrowth := source.Atk * level / 100
	hpGrowth := source.Hp * level / 100
	source.Atk += atkGrowth
	source.CurBaseAtk += atkGrowth
	source.Hp += hpGrowth
	source.MaxHp += hpGrowth

	Remove(st, targetIdx, true)
	field.RemoveDeadCards()
}
