package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aidenkroll/demonsim/internal/sim"
)

// CardsFile is the top-level YAML structure accepted by LoadCardsYAML,
// an additive convenience format alongside the plain-text cards.txt
// grammar (component 13).
type CardsFile struct {
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry is one card's YAML description.
type CardEntry struct {
	Name    string       `yaml:"name"`
	Cost    int          `yaml:"cost"`
	Timing  int          `yaml:"timing"`
	BaseAtk int          `yaml:"atk"`
	BaseHp  int          `yaml:"hp"`
	Attrs   []AttrEntry  `yaml:"attrs"`
}

// AttrEntry is one attribute entry within a card's YAML description.
type AttrEntry struct {
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level"`
}

// LoadCardsYAML parses a YAML catalog document, grounded in the
// teacher's internal/game/deck.go gopkg.in/yaml.v3 pattern.
func LoadCardsYAML(path string) (map[string]*sim.CardTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var cf CardsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("catalog: parse YAML %s: %w", path, err)
	}

	cards := make(map[string]*sim.CardTemplate, len(cf.Cards))
	for _, entry := range cf.Cards {
		t := &sim.CardTemplate{
			Name:    entry.Name,
			Cost:    entry.Cost,
			Timing:  entry.Timing,
			BaseAtk: entry.BaseAtk,
			BaseHp:  entry.BaseHp,
		}
		for _, a := range entry.Attrs {
			kind, ok := sim.LookupAttr(a.Kind)
			if !ok {
				return nil, fmt.Errorf("catalog: %s: bad attribute %q on card %q", path, a.Kind, entry.Name)
			}
			if len(t.Attrs) >= sim.MaxAttrs {
				return nil, fmt.Errorf("catalog: %s: too many attributes on card %q", path, entry.Name)
			}
			t.Attrs = append(t.Attrs, sim.Attribute{Kind: kind, Level: a.Level})
		}
		cards[t.Name] = t
	}
	return cards, nil
}

// DeckFile is the top-level YAML structure accepted by LoadDeckYAML.
type DeckFile struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
	Runes []string `yaml:"runes"`
}

// LoadDeckYAML parses a YAML deck document, resolving card names
// against the supplied catalog and rune names against the built-in
// rune catalog.
func LoadDeckYAML(path string, cards map[string]*sim.CardTemplate) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return Deck{}, fmt.Errorf("catalog: parse YAML %s: %w", path, err)
	}

	deck := Deck{Name: df.Name}
	for _, name := range df.Cards {
		c, ok := cards[name]
		if !ok {
			return Deck{}, fmt.Errorf("catalog: %s: unknown card %q", path, name)
		}
		if len(deck.Cards) >= MaxDeckCards {
			return Deck{}, fmt.Errorf("catalog: %s: too many cards in deck", path)
		}
		deck.Cards = append(deck.Cards, c)
	}
	for _, name := range df.Runes {
		r, ok := FindRune(name)
		if !ok {
			return Deck{}, fmt.Errorf("catalog: %s: unknown rune %q", path, name)
		}
		if len(deck.Runes) >= sim.MaxRunes {
			return Deck{}, fmt.Errorf("catalog: %s: too many runes", path)
		}
		deck.Runes = append(deck.Runes, r)
	}
	return deck, nil
}
