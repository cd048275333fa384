package catalog

import (
	"strings"

	"github.com/aidenkroll/demonsim/internal/sim"
)

// runeCatalog is the fixed set of 16 runes a deck may draw from,
// keyed by their canonical display name.
var runeCatalog = map[string]*sim.RuneTemplate{
	"Arctic Freeze":  {Name: "Arctic Freeze", Attr: sim.AttrArcticFreeze, Level: 100, MaxCharges: 3},
	"Blood Stone":    {Name: "Blood Stone", Attr: sim.AttrBloodStoneAbility, Level: 270, MaxCharges: 5},
	"Clear Spring":   {Name: "Clear Spring", Attr: sim.AttrClearSpring, Level: 225, MaxCharges: 4},
	"Frost Bite":     {Name: "Frost Bite", Attr: sim.AttrFrostBiteAbility, Level: 140, MaxCharges: 3},
	"Red Valley":     {Name: "Red Valley", Attr: sim.AttrRedValleyAbility, Level: 90, MaxCharges: 5},
	"Lore":           {Name: "Lore", Attr: sim.AttrLore, Level: 150, MaxCharges: 4},
	"Leaf":           {Name: "Leaf", Attr: sim.AttrLeaf, Level: 240, MaxCharges: 4},
	"Revival":        {Name: "Revival", Attr: sim.AttrRevival, Level: 120, MaxCharges: 4},
	"Fire Forge":     {Name: "Fire Forge", Attr: sim.AttrFireForge, Level: 210, MaxCharges: 4},
	"Stonewall":      {Name: "Stonewall", Attr: sim.AttrStonewall, Level: 180, MaxCharges: 4},
	"Spring Breeze":  {Name: "Spring Breeze", Attr: sim.AttrSpringBreeze, Level: 240, MaxCharges: 4},
	"Thunder Shield": {Name: "Thunder Shield", Attr: sim.AttrThunderShield, Level: 200, MaxCharges: 4},
	"Nimble Soul":    {Name: "Nimble Soul", Attr: sim.AttrNimbleSoul, Level: 65, MaxCharges: 3},
	"Dirt":           {Name: "Dirt", Attr: sim.AttrDirt, Level: 70, MaxCharges: 4},
	"Flying Stone":   {Name: "Flying Stone", Attr: sim.AttrFlyingStoneAbility, Level: 270, MaxCharges: 4},
	"Tsunami":        {Name: "Tsunami", Attr: sim.AttrTsunami, Level: 80, MaxCharges: 4},
}

// FindRune looks up a rune by name, case-insensitively.
func FindRune(name string) (*sim.RuneTemplate, bool) {
	for k, v := range runeCatalog {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Runes returns every rune in the built-in catalog.
func Runes() []*sim.RuneTemplate {
	out := make([]*sim.RuneTemplate, 0, len(runeCatalog))
	for _, r := range runeCatalog {
		out = append(out, r)
	}
	return out
}
