package sim

// classBuffPair maps an outgoing class-buff ability to the distinct
// buff kind it grants, and whether it is an Atk or Hp buff — the
// "distinct-kind discipline" the author recommends uniformly (spec.md
// §9) rather than reusing the ability's own kind as the buff's kind.
type classBuffPair struct {
	class    AttrKind // the class tag a recipient must carry
	buffKind AttrKind // the buff attribute applied to recipients
	isHp     bool
}

var classBuffTable = map[AttrKind]classBuffPair{
	AttrTundraAtk:   {AttrTundra, AttrTundraAtkBuff, false},
	AttrTundraHp:    {AttrTundra, AttrTundraHpBuff, true},
	AttrForestAtk:   {AttrForest, AttrForestAtkBuff, false},
	AttrForestHp:    {AttrForest, AttrForestHpBuff, true},
	AttrMountainAtk: {AttrMountain, AttrMountainAtkBuff, false},
	AttrMountainHp:  {AttrMountain, AttrMountainHpBuff, true},
	AttrSwampAtk:    {AttrSwamp, AttrSwampAtkBuff, false},
	AttrSwampHp:     {AttrSwamp, AttrSwampHpBuff, true},
}

// AddBuffToCard attaches one buff attribute to target and applies its
// immediate stat effect.
func AddBuffToCard(target *Card, buffKind AttrKind, level int, isHp bool) {
	if isHp {
		target.Hp += level
		target.MaxHp += level
	} else {
		target.Atk += level
		target.CurBaseAtk += level
	}
	target.Add(Attribute{Kind: buffKind, Level: level})
}

// RemoveBuffFromCard withdraws exactly the (buffKind, level) pair
// granted earlier, clamping stats back within bounds.
func RemoveBuffFromCard(target *Card, buffKind AttrKind, level int, isHp bool) {
	target.Remove(buffKind, level)
	if isHp {
		target.MaxHp -= level
		if target.Hp > target.MaxHp {
			target.Hp = target.MaxHp
		}
	} else {
		target.Atk -= level
		target.CurBaseAtk -= level
		if target.Atk < 0 {
			target.Atk = 0
		}
		if target.CurBaseAtk < 0 {
			target.CurBaseAtk = 0
		}
	}
}

// AddBuffToField applies a class buff to every other live field card
// carrying the named class tag (or every card, if class == AttrNone).
func AddBuffToField(field *CardSet, source *Card, class AttrKind, buffKind AttrKind, level int, isHp bool) {
	for i := range field.Cards {
		target := &field.Cards[i]
		if target == source || target.IsDead() {
			continue
		}
		if class != AttrNone {
			if _, ok := target.Has(class); !ok {
				continue
			}
		}
		AddBuffToCard(target, buffKind, level, isHp)
	}
}

// RemoveBuffFromField withdraws a class buff from every field card that
// carries it — called when the granting card leaves the field.
func RemoveBuffFromField(field *CardSet, source *Card, buffKind AttrKind, level int, isHp bool) {
	for i := range field.Cards {
		target := &field.Cards[i]
		if target == source {
			continue
		}
		if _, ok := target.Has(buffKind); !ok {
			continue
		}
		RemoveBuffFromCard(target, buffKind, level, isHp)
	}
}

// ApplyOutgoingBuffs applies every class-buff ability the card carries
// to the rest of the field — the "outgoing" half of §4.5 step 8 and
// §4.4's on-play propagation.
func ApplyOutgoingBuffs(field *CardSet, source *Card) {
	for _, a := range source.Attrs {
		pair, ok := classBuffTable[a.Kind]
		if !ok {
			continue
		}
		AddBuffToField(field, source, pair.class, pair.buffKind, a.Level, pair.isHp)
	}
}

// ApplyIncomingBuffs gives a newly-played card the buffs it should
// receive from matching residents already on the field — §4.5 step 7.
func ApplyIncomingBuffs(field *CardSet, newCard *Card) {
	for i := range field.Cards {
		resident := &field.Cards[i]
		if resident == newCard || resident.IsDead() {
			continue
		}
		for _, a := range resident.Attrs {
			pair, ok := classBuffTable[a.Kind]
			if !ok {
				continue
			}
			if _, ok := newCard.Has(pair.class); !ok {
				continue
			}
			AddBuffToCard(newCard, pair.buffKind, a.Level, pair.isHp)
		}
	}
}

// WithdrawOutgoingBuffs removes every buff a departing card had granted
// to the rest of the field — called from Remove (§4.6 step 2).
func WithdrawOutgoingBuffs(field *CardSet, source *Card) {
	for _, a := range source.Attrs {
		pair, ok := classBuffTable[a.Kind]
		if !ok {
			continue
		}
		RemoveBuffFromField(field, source, pair.buffKind, a.Level, pair.isHp)
	}
}
