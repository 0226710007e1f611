package types

import "fmt"

// Multipliers maps a tier to the raw units consumed per refined unit at that tier
type Multipliers map[Tier]int

// TopTierMultiplier marks the top tier, whose raw material needs no batching:
// one raw unit refines into one refined unit. The top tier is still refined
// like any other, so each refined unit consumes one refined unit of the tier
// below, and descent from the top tier continues down the table.
const TopTierMultiplier = 1

// MaxMultiplier is the largest multiplier a recipe book may set
const MaxMultiplier = 1000

// MaxQuantity is the largest quantity an owned resource may have. Scaled by
// MaxMultiplier it stays far inside the int range, including when needs from
// many inputs are summed.
const MaxQuantity = 1_000_000_000_000

var defaultMultipliers = Multipliers{
	2: 2,
	3: 2,
	4: 2,
	5: 3,
	6: 4,
	7: 5,
	8: TopTierMultiplier,
}

// DefaultMultipliers returns a copy of the built-in multiplier table
func DefaultMultipliers() Multipliers {
	return defaultMultipliers.Clone()
}

// Clone returns an independent copy
func (m Multipliers) Clone() Multipliers {
	out := make(Multipliers, len(m))
	for t, v := range m {
		out[t] = v
	}
	return out
}

// Of returns the multiplier for a tier
func (m Multipliers) Of(t Tier) (int, bool) {
	v, ok := m[t]
	return v, ok
}

// With returns a copy with the given overrides applied
func (m Multipliers) With(overrides Multipliers) Multipliers {
	out := m.Clone()
	for t, v := range overrides {
		out[t] = v
	}
	return out
}

// Validate checks that every modelled tier has a positive multiplier
func (m Multipliers) Validate() error {
	for _, t := range Tiers() {
		v, ok := m[t]
		if !ok {
			return fmt.Errorf("no multiplier for tier %d", t)
		}
		if v < 1 || v > MaxMultiplier {
			return fmt.Errorf("multiplier for tier %d must be between 1 and %d, got %d", t, MaxMultiplier, v)
		}
	}
	for t := range m {
		if !t.IsValid() {
			return fmt.Errorf("multiplier given for unmodelled tier %d", t)
		}
	}
	return nil
}

// NameTable maps (tier, type) to the in-game material name
type NameTable map[Tier]map[ResourceType]string

// Names is the built-in name table. Every modelled (tier, type) pair has an entry.
var Names = NameTable{
	2: {
		TypeBar:        "copper bar",
		TypeOre:        "copper ore",
		TypeWood:       "birch log",
		TypePlank:      "birch plank",
		TypeRock:       "limestone",
		TypeStoneBlock: "limestone block",
		TypeCloth:      "simple cloth",
		TypeFiber:      "cotton",
		TypeHide:       "rugged hide",
		TypeLeather:    "stiff leather",
	},
	3: {
		TypeBar:        "bronze bar",
		TypeOre:        "tin ore",
		TypeWood:       "chestnut log",
		TypePlank:      "chestnut plank",
		TypeRock:       "sandstone",
		TypeStoneBlock: "sandstone block",
		TypeCloth:      "neat cloth",
		TypeFiber:      "flax",
		TypeHide:       "thin hide",
		TypeLeather:    "thick leather",
	},
	4: {
		TypeBar:        "steel bar",
		TypeOre:        "iron ore",
		TypeWood:       "pine log",
		TypePlank:      "pine plank",
		TypeRock:       "travertine",
		TypeStoneBlock: "travertine block",
		TypeCloth:      "fine cloth",
		TypeFiber:      "hemp",
		TypeHide:       "medium hide",
		TypeLeather:    "worked leather",
	},
	5: {
		TypeBar:        "titanium steel bar",
		TypeOre:        "titanium ore",
		TypeWood:       "cedar log",
		TypePlank:      "cedar plank",
		TypeRock:       "granite",
		TypeStoneBlock: "granite block",
		TypeCloth:      "ornate cloth",
		TypeFiber:      "skyflower",
		TypeHide:       "heavy hide",
		TypeLeather:    "cured leather",
	},
	6: {
		TypeBar:        "runite steel bar",
		TypeOre:        "runite ore",
		TypeWood:       "bloodoak log",
		TypePlank:      "bloodoak plank",
		TypeRock:       "slate",
		TypeStoneBlock: "slate block",
		TypeCloth:      "lavish cloth",
		TypeFiber:      "redleaf cotton",
		TypeHide:       "robust hide",
		TypeLeather:    "hardened leather",
	},
	7: {
		TypeBar:        "meteorite steel bar",
		TypeOre:        "meteorite ore",
		TypeWood:       "ashenbark log",
		TypePlank:      "ashenbark plank",
		TypeRock:       "basalt",
		TypeStoneBlock: "basalt block",
		TypeCloth:      "opulent cloth",
		TypeFiber:      "sunflax",
		TypeHide:       "thick hide",
		TypeLeather:    "reinforced leather",
	},
	8: {
		TypeBar:        "adamantium steel bar",
		TypeOre:        "adamantium ore",
		TypeWood:       "whitewood log",
		TypePlank:      "whitewood plank",
		TypeRock:       "marble",
		TypeStoneBlock: "marble block",
		TypeCloth:      "baroque cloth",
		TypeFiber:      "ghost hemp",
		TypeHide:       "resilient hide",
		TypeLeather:    "fortified leather",
	},
}

// Lookup returns the name for a (tier, type) pair
func (n NameTable) Lookup(t Tier, rt ResourceType) (string, bool) {
	byType, ok := n[t]
	if !ok {
		return "", false
	}
	name, ok := byType[rt]
	return name, ok
}

// Validate checks that every modelled (tier, type) pair is named
func (n NameTable) Validate() error {
	for _, t := range Tiers() {
		for _, rt := range ResourceTypes() {
			if _, ok := n.Lookup(t, rt); !ok {
				return fmt.Errorf("no name for %s %s", rt, t)
			}
		}
	}
	return nil
}
