package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aidenkroll/demonsim/internal/sim"
)

// LoadCards parses a cards.txt-style catalog file: one card per line,
// comma-separated fields `name, cost, timing, baseAtk, baseHp[,
// attr[:level]]...`, blank lines and lines starting with `#` ignored.
func LoadCards(path string) (map[string]*sim.CardTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	cards := make(map[string]*sim.CardTemplate)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseCardLine(line)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s line %d: %w", path, lineNo, err)
		}
		cards[c.Name] = c
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return cards, nil
}

func parseCardLine(line string) (*sim.CardTemplate, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil, fmt.Errorf("bad card description: %s", line)
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return nil, fmt.Errorf("bad card description: %s", line)
	}

	cost, err := parsePositiveInt(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad cost: %w", err)
	}
	timing, err := parsePositiveInt(fields[2])
	if err != nil {
		return nil, fmt.Errorf("bad timing: %w", err)
	}
	atk, err := parsePositiveInt(fields[3])
	if err != nil {
		return nil, fmt.Errorf("bad attack: %w", err)
	}
	hp, err := parsePositiveInt(fields[4])
	if err != nil {
		return nil, fmt.Errorf("bad hp: %w", err)
	}

	c := &sim.CardTemplate{
		Name:    name,
		Cost:    cost,
		Timing:  timing,
		BaseAtk: atk,
		BaseHp:  hp,
	}

	for _, raw := range fields[5:] {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		attrName := tok
		level := 0
		if idx := strings.IndexByte(tok, ':'); idx >= 0 {
			attrName = strings.TrimSpace(tok[:idx])
			level, err = strconv.Atoi(strings.TrimSpace(tok[idx+1:]))
			if err != nil {
				return nil, fmt.Errorf("bad attribute level in %q: %w", tok, err)
			}
		}
		kind, ok := sim.LookupAttr(attrName)
		if !ok {
			return nil, fmt.Errorf("bad attribute: %s not found", attrName)
		}
		if len(c.Attrs) >= sim.MaxAttrs {
			return nil, fmt.Errorf("too many attributes on %s", name)
		}
		c.Attrs = append(c.Attrs, sim.Attribute{Kind: kind, Level: level})
	}
	return c, nil
}

func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("value must be a positive integer: %q", s)
	}
	return v, nil
}
