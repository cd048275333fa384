package sim

import "fmt"

// MaxAttrs is the capacity of a card's mutable attribute list.
const MaxAttrs = 40

// CardTemplate is the immutable, shared-by-reference description of a
// card as it appears in the catalog. Every in-trial Card is stamped out
// of one of these.
type CardTemplate struct {
	Name    string
	Cost    int
	Timing  int
	BaseAtk int
	BaseHp  int
	Attrs   []Attribute
}

// Card is a mutable per-trial instance. It never holds a pointer into
// another Card; it shares a pointer to its read-only template, while its
// stats and attribute list are its own.
type Card struct {
	Template *CardTemplate

	// ID is assigned when a card is placed onto the field, so that a
	// card can be re-located by identity after the field slice has
	// been compacted out from under a held index (e.g. when a
	// Sacrifice resolution removes a lower-index neighbor).
	ID int

	CurTiming  int
	Atk        int
	CurBaseAtk int // base atk after permanent modification; distinct from Atk
	Hp         int
	MaxHp      int

	Attrs []Attribute
}

// NewCard stamps out a fresh Card from a template, at full health and
// with its template's base attribute list.
func NewCard(t *CardTemplate) Card {
	c := Card{
		Template:   t,
		CurTiming:  t.Timing,
		Atk:        t.BaseAtk,
		CurBaseAtk: t.BaseAtk,
		Hp:         t.BaseHp,
		MaxHp:      t.BaseHp,
		Attrs:      make([]Attribute, len(t.Attrs), MaxAttrs),
	}
	copy(c.Attrs, t.Attrs)
	return c
}

// ResetToTemplate restores a card to its template's pristine stats and
// attribute list — used when a dying card's fresh copy is routed back
// to grave/deck/hand (§4.6 of the template-reset reroute).
func (c *Card) ResetToTemplate() {
	*c = NewCard(c.Template)
}

// Name returns the card's display name, or "Dead Card" for the sentinel.
func (c *Card) Name() string {
	if c.Template == nil {
		return "Dead Card"
	}
	return c.Template.Name
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (hp %d/%d, atk %d)", c.Name(), c.Hp, c.MaxHp, c.Atk)
}

// IsDead reports whether the card has been marked dead via Remove.
func (c *Card) IsDead() bool {
	_, ok := c.Has(AttrDead)
	return ok
}

// DeadCard is the sentinel overwritten onto a field slot when a card
// dies mid-round, preserving the slot's positional index until the
// end-of-round RemoveDeadCards sweep.
var DeadCard = Card{Attrs: []Attribute{{Kind: AttrDead}}}

// --- Attribute container operations (§4.2) ---

// Has returns whether the card carries an attribute of the given kind,
// and the level of the first such occurrence.
func (c *Card) Has(kind AttrKind) (int, bool) {
	for _, a := range c.Attrs {
		if a.Kind == kind {
			return a.Level, true
		}
	}
	return 0, false
}

// CountAttr counts how many attributes of the given kind the card has.
func (c *Card) CountAttr(kind AttrKind) int {
	n := 0
	for _, a := range c.Attrs {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Add appends an attribute. Returns an error if the card is already at
// capacity — a misconfiguration the catalog build should have caught.
func (c *Card) Add(attr Attribute) error {
	if len(c.Attrs) >= MaxAttrs {
		return fmt.Errorf("card %q: attribute capacity (%d) exceeded adding %s", c.Name(), MaxAttrs, attr.Kind)
	}
	c.Attrs = append(c.Attrs, attr)
	return nil
}

// Remove deletes attributes of the given kind. If level == -1, every
// attribute of that kind is removed. Otherwise only the first
// (kind, level) pair is removed. This distinction is observable for
// stacked buffs of different magnitudes from different sources.
func (c *Card) Remove(kind AttrKind, level int) {
	if level == -1 {
		out := c.Attrs[:0]
		for _, a := range c.Attrs {
			if a.Kind != kind {
				out = append(out, a)
			}
		}
		c.Attrs = out
		return
	}
	for i, a := range c.Attrs {
		if a.Kind == kind && a.Level == level {
			c.Attrs = append(c.Attrs[:i], c.Attrs[i+1:]...)
			return
		}
	}
}
