package sim

import "github.com/aidenkroll/demonsim/internal/log"

// addRuneBuffToField attaches a rune's (kind, level) attribute pair to
// every field card.
func addRuneBuffToField(field *CardSet, attr AttrKind, level int) {
	for i := range field.Cards {
		if field.Cards[i].IsDead() {
			continue
		}
		field.Cards[i].Add(Attribute{Kind: attr, Level: level})
	}
}

// removeRuneBuffFromField strips a rune's attribute from every field card.
func removeRuneBuffFromField(field *CardSet, attr AttrKind) {
	for i := range field.Cards {
		field.Cards[i].Remove(attr, -1)
	}
}

// HandleRunes runs the per-round rune deactivation then activation
// sweep (§4.9), reproducing the reference implementation's 16-rune
// table exactly, including Clear Spring's and Leaf's one-shot (no
// deactivation state) behavior and Spring Breeze's bespoke per-card
// hp/maxHp arithmetic on both activation and deactivation.
func HandleRunes(st *State) {
	field := &st.Field

	// Deactivation sweep.
	for i := range st.Runes {
		r := &st.Runes[i]
		if r.Template == nil || !r.ActiveThisRound {
			continue
		}
		r.ActiveThisRound = false
		st.trace(log.NewRuneDeactivatedEvent(st.Round, r.Template.Name))
		if r.Template.Attr == AttrSpringBreeze {
			for j := range field.Cards {
				c := &field.Cards[j]
				if _, ok := c.Has(AttrSpringBreeze); !ok {
					continue
				}
				c.Remove(AttrSpringBreeze, -1)
				c.MaxHp -= r.Template.Level
				if c.Hp > c.MaxHp {
					c.Hp = c.MaxHp
				}
			}
			continue
		}
		removeRuneBuffFromField(field, r.Template.Attr)
	}

	// Activation sweep.
	for i := range st.Runes {
		r := &st.Runes[i]
		if r.Template == nil || r.ChargesUsed >= r.Template.MaxCharges {
			continue
		}
		level := r.Template.Level
		activate := func() {
			addRuneBuffToField(field, r.Template.Attr, level)
			r.ChargesUsed++
			r.ActiveThisRound = true
			st.trace(log.NewRuneActivatedEvent(st.Round, r.Template.Name))
		}
		switch r.Template.Attr {
		case AttrArcticFreeze:
			if st.Grave.CountWithAttr(AttrTundra) > 2 {
				activate()
			}
		case AttrBloodStoneAbility:
			if field.CountWithAttr(AttrMountain) > 1 {
				activate()
			}
		case AttrClearSpring:
			if field.CountWithAttr(AttrTundra) > 1 && fieldHasDamagedCard(field) {
				RegenerateField(field, level)
				r.ChargesUsed++
				st.trace(log.NewRuneActivatedEvent(st.Round, r.Template.Name))
			}
		case AttrFrostBiteAbility:
			if st.Grave.CountWithAttr(AttrTundra) > 3 {
				activate()
			}
		case AttrRedValleyAbility:
			if field.CountWithAttr(AttrSwamp) > 1 {
				activate()
			}
		case AttrLore:
			if st.Grave.CountWithAttr(AttrMountain) > 2 {
				activate()
			}
		case AttrLeaf:
			if st.Round > 14 {
				st.DmgDone += level
				st.Demon.Hp -= level
				r.ChargesUsed++
				st.trace(log.NewRuneActivatedEvent(st.Round, r.Template.Name))
			}
		case AttrRevival:
			if st.Grave.CountWithAttr(AttrForest) > 1 {
				activate()
			}
		case AttrFireForge:
			if st.Grave.CountWithAttr(AttrMountain) > 1 {
				activate()
			}
		case AttrStonewall:
			if field.CountWithAttr(AttrSwamp) > 1 {
				activate()
			}
		case AttrThunderShield:
			if field.CountWithAttr(AttrForest) > 1 {
				activate()
			}
		case AttrNimbleSoul:
			if st.Grave.CountWithAttr(AttrForest) > 2 {
				activate()
			}
		case AttrDirt:
			if st.Grave.CountWithAttr(AttrSwamp) > 1 {
				activate()
			}
		case AttrFlyingStoneAbility:
			if st.Grave.CountWithAttr(AttrSwamp) > 2 {
				activate()
			}
		case AttrTsunami:
			if st.HeroHP < st.HeroMaxHP/2 {
				activate()
			}
		case AttrSpringBreeze:
			if st.Hand.CountWithAttr(AttrForest) > 1 && field.Len() > 0 {
				addRuneBuffToField(field, r.Template.Attr, level)
				for j := range field.Cards {
					c := &field.Cards[j]
					if c.IsDead() {
						continue
					}
					c.Hp += level
					c.MaxHp += level
				}
				r.ChargesUsed++
				r.ActiveThisRound = true
				st.trace(log.NewRuneActivatedEvent(st.Round, r.Template.Name))
			}
		}
	}
}

func fieldHasDamagedCard(field *CardSet) bool {
	for i := range field.Cards {
		c := &field.Cards[i]
		if c.IsDead() {
			continue
		}
		if c.Hp != 0 && c.Hp < c.MaxHp {
			return true
		}
	}
	return false
}
