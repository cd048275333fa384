package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aidenkroll/demonsim/internal/sim"
)

// MaxDeckCards is the deck-size limit; together with sim.MaxRunes it
// lets a bad deck file be rejected at load time rather than silently
// truncated by sim.State.
const MaxDeckCards = 10

// Deck is a loaded deck: the card templates in deck order and the
// runes equipped alongside it.
type Deck struct {
	Name  string
	Cards []*sim.CardTemplate
	Runes []*sim.RuneTemplate
}

// LoadDeck parses a deck file: one card or rune name per line (matched
// against cards and the built-in rune catalog), blank lines and `#`
// comments ignored.
func LoadDeck(path string, cards map[string]*sim.CardTemplate) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	var deck Deck
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c, ok := cards[line]; ok {
			if len(deck.Cards) >= MaxDeckCards {
				return Deck{}, fmt.Errorf("catalog: %s line %d: too many cards in deck", path, lineNo)
			}
			deck.Cards = append(deck.Cards, c)
			continue
		}
		if r, ok := FindRune(line); ok {
			if len(deck.Runes) >= sim.MaxRunes {
				return Deck{}, fmt.Errorf("catalog: %s line %d: too many runes", path, lineNo)
			}
			deck.Runes = append(deck.Runes, r)
			continue
		}
		return Deck{}, fmt.Errorf("catalog: %s line %d: unknown card/rune %q", path, lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return deck, nil
}

// Cost sums the deck's card costs, used to derive the presentation
// cooldown value (component 14).
func (d Deck) Cost() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Cost
	}
	return total
}
