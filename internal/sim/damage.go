package sim

import "github.com/aidenkroll/demonsim/internal/log"

// ReducePhysDmg applies a defender's physical mitigation abilities to
// an incoming damage amount: Parry and Stonewall subtract flat amounts
// (clamped at 0), then Ice Shield and Arctic Freeze each cap the
// remaining damage at their own level.
func ReducePhysDmg(c *Card, dmg int) int {
	if level, ok := c.Has(AttrParry); ok {
		dmg -= level
	}
	if level, ok := c.Has(AttrStonewall); ok {
		dmg -= level
	}
	if dmg < 0 {
		dmg = 0
	}
	if level, ok := c.Has(AttrIceShield); ok && dmg > level {
		dmg = level
	}
	if level, ok := c.Has(AttrArcticFreeze); ok && dmg > level {
		dmg = level
	}
	return dmg
}

// DamageCard applies damage to a player card: avoidance, mitigation,
// application, onDamage triggers, and death handling (§4.7). Returns
// the actual damage applied (0 if avoided), used by Chain Attack.
func DamageCard(st *State, fieldIdx int, dmg int) int {
	field := &st.Field
	c := &field.Cards[fieldIdx]

	if level, ok := c.Has(AttrNimbleSoul); ok && st.Chance(level) {
		return 0
	}
	if level, ok := c.Has(AttrDodge); ok && st.Chance(level) {
		return 0
	}

	dmg = ReducePhysDmg(c, dmg)
	if dmg <= 0 {
		return 0
	}

	c.Hp -= dmg
	if c.Hp < 0 {
		c.Hp = 0
	}
	st.trace(log.NewDamageCardEvent(st.Round, c.Name(), dmg, c.Hp))

	for _, a := range append([]Attribute(nil), c.Attrs...) {
		switch a.Kind {
		case AttrCraze, AttrTsunami:
			c.Atk += a.Level
			c.CurBaseAtk += a.Level
		case AttrCounterattack, AttrRetaliation, AttrThunderShield, AttrFireForge:
			st.DmgDone += a.Level
			st.Demon.Hp -= a.Level
		case AttrWickedLeech:
			steal := st.Demon.CurBaseAtk * a.Level / 100
			st.Demon.Atk -= steal
			st.Demon.CurBaseAtk -= steal
			c.Atk += steal
			c.CurBaseAtk += steal
			if st.Demon.Atk < 0 {
				st.Demon.Atk = 0
			}
			if st.Demon.CurBaseAtk < 0 {
				st.Demon.CurBaseAtk = 0
			}
		}
	}

	if c.Hp == 0 {
		Remove(st, fieldIdx, true)
		return dmg
	}

	if _, laceratesOnHit := st.Demon.Has(AttrLacerateBuff); laceratesOnHit {
		if _, already := c.Has(AttrLacerateBuff); !already {
			c.Add(Attribute{Kind: AttrLacerateBuff})
		}
	}
	return dmg
}

// DamagePlayer applies damage to the hero: Guard cards on the field
// absorb left-to-right before any remainder reaches hero.hp.
func DamagePlayer(st *State, dmg int) {
	field := &st.Field
	for i := range field.Cards {
		if dmg <= 0 {
			return
		}
		c := &field.Cards[i]
		if c.IsDead() {
			continue
		}
		if _, ok := c.Has(AttrGuard); !ok {
			continue
		}
		absorbed := dmg
		if absorbed > c.Hp {
			absorbed = c.Hp
		}
		c.Hp -= absorbed
		dmg -= absorbed
		if c.Hp == 0 {
			Remove(st, i, true)
		}
	}
	st.HeroHP -= dmg
	if dmg > 0 {
		st.trace(log.NewDamageHeroEvent(st.Round, dmg, st.HeroHP, "demon attack"))
	}
}

// SimPlayerAttack resolves field[0]'s physical attack against the
// demon (§4.7's "Physical attack by field[0] on demon"). No-op if the
// field is empty or the round is before FIRST_PLAYER_ROUND.
func SimPlayerAttack(st *State, params RunParams) {
	if st.Field.Len() == 0 || st.Round < FirstPlayerRound {
		return
	}
	c := &st.Field.Cards[0]
	if c.IsDead() || c.Hp <= 0 {
		return
	}

	dmg := c.Atk
	baseAtk := c.CurBaseAtk

	if level, ok := c.Has(AttrRevival); ok {
		dmg += level
		baseAtk += level
	}

	if level, ok := c.Has(AttrVendetta); ok {
		dmg += st.Grave.Len() * level
	}
	if level, ok := c.Has(AttrWarpath); ok {
		dmg += baseAtk * level / 100
	}
	if level, ok := c.Has(AttrLore); ok {
		dmg += baseAtk * level / 100
	}
	if level, ok := c.Has(AttrConcentrate); ok {
		dmg += averagedOrRolled(st, params, baseAtk, level)
	}
	if level, ok := c.Has(AttrFrostBiteAbility); ok {
		dmg += averagedOrRolled(st, params, baseAtk, level)
	}

	dmg = ReducePhysDmg(&st.Demon, dmg)
	st.DmgDone += dmg
	st.Demon.Hp -= dmg
	if dmg <= 0 {
		return
	}
	st.trace(log.NewDamageDemonEvent(st.Round, dmg, st.Demon.Hp))

	if level, ok := c.Has(AttrBloodsucker); ok {
		HealOneCard(c, dmg*level/100)
	}
	if level, ok := c.Has(AttrRedValleyAbility); ok {
		HealOneCard(c, dmg*level/100)
	}
	if level, ok := c.Has(AttrBloodthirsty); ok {
		c.Atk += level
		c.CurBaseAtk += level
	}

	demonCounterattack(st)
	if st.Field.Cards[0].Hp <= 0 || st.Field.Cards[0].IsDead() {
		return
	}

	if level, ok := st.Demon.Has(AttrWickedLeech); ok {
		attacker := &st.Field.Cards[0]
		loss := attacker.CurBaseAtk * level / 100
		attacker.Atk -= loss
		attacker.CurBaseAtk -= loss
		if attacker.Atk < 0 {
			attacker.Atk = 0
		}
		st.Demon.Atk += loss
		st.Demon.CurBaseAtk += loss
	}
}

// averagedOrRolled implements Concentrate/Frost Bite's dual behavior:
// normally a 50% chance of the bonus; under -avgconcentrate, a
// deterministic half-value bonus every time.
func averagedOrRolled(st *State, params RunParams, baseAtk, level int) int {
	if params.AvgConcentrate {
		return baseAtk * level / 200
	}
	if st.rnd(100) < 50 {
		return baseAtk * level / 100
	}
	return 0
}

// demonCounterattack implements the demon's Retaliation (hits first two
// field cards) or Counterattack (hits first one) response, each gated
// by a Dexterity dodge check on the target.
func demonCounterattack(st *State) {
	var hits, level int
	if l, ok := st.Demon.Has(AttrRetaliation); ok {
		hits, level = 2, l
	} else if l, ok := st.Demon.Has(AttrCounterattack); ok {
		hits, level = 1, l
	} else {
		return
	}
	for i := 0; i < hits && i < st.Field.Len(); i++ {
		if st.Field.Cards[i].IsDead() {
			continue
		}
		if dexLevel, ok := st.Field.Cards[i].Has(AttrDexterity); ok && st.Chance(dexLevel) {
			continue
		}
		dmg := level
		if dmg > st.Field.Cards[i].Hp {
			dmg = st.Field.Cards[i].Hp
		}
		st.Field.Cards[i].Hp -= dmg
		if st.Field.Cards[i].Hp <= 0 {
			Remove(st, i, true)
		}
	}
}
