package types

import (
	"sort"
	"strings"
)

// ResourceType is the base material kind
type ResourceType string

// Raw kinds
const (
	TypeOre   ResourceType = "ore"
	TypeRock  ResourceType = "rock"
	TypeWood  ResourceType = "wood"
	TypeFiber ResourceType = "fiber"
	TypeHide  ResourceType = "hide"
)

// Refined kinds
const (
	TypeBar        ResourceType = "bar"
	TypeStoneBlock ResourceType = "stone block"
	TypePlank      ResourceType = "plank"
	TypeCloth      ResourceType = "cloth"
	TypeLeather    ResourceType = "leather"
)

var rawToRefined = map[ResourceType]ResourceType{
	TypeOre:   TypeBar,
	TypeRock:  TypeStoneBlock,
	TypeWood:  TypePlank,
	TypeFiber: TypeCloth,
	TypeHide:  TypeLeather,
}

var refinedToRaw = map[ResourceType]ResourceType{
	TypeBar:        TypeOre,
	TypeStoneBlock: TypeRock,
	TypePlank:      TypeWood,
	TypeCloth:      TypeFiber,
	TypeLeather:    TypeHide,
}

// RawTypes returns the raw kinds in name order
func RawTypes() []ResourceType {
	return sortedKeys(rawToRefined)
}

// RefinedTypes returns the refined kinds in name order
func RefinedTypes() []ResourceType {
	return sortedKeys(refinedToRaw)
}

// ResourceTypes returns every kind in name order
func ResourceTypes() []ResourceType {
	all := append(RawTypes(), RefinedTypes()...)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// ParseResourceType resolves a type name. Matching ignores case, and
// '_' or '-' may stand in for the space in "stone block".
func ParseResourceType(s string) (ResourceType, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	if norm == "stoneblock" {
		norm = string(TypeStoneBlock)
	}
	t := ResourceType(norm)
	return t, t.IsValid()
}

// String returns the type name
func (t ResourceType) String() string {
	return string(t)
}

// IsValid checks if the type is a known kind
func (t ResourceType) IsValid() bool {
	return t.IsRaw() || t.IsRefined()
}

// IsRaw reports membership in the raw set
func (t ResourceType) IsRaw() bool {
	_, ok := rawToRefined[t]
	return ok
}

// IsRefined reports membership in the refined set
func (t ResourceType) IsRefined() bool {
	_, ok := refinedToRaw[t]
	return ok
}

// Refined returns the refined counterpart. Refined kinds map to themselves.
func (t ResourceType) Refined() ResourceType {
	if r, ok := rawToRefined[t]; ok {
		return r
	}
	return t
}

// Raw returns the raw counterpart. Raw kinds map to themselves.
func (t ResourceType) Raw() ResourceType {
	if r, ok := refinedToRaw[t]; ok {
		return r
	}
	return t
}

func sortedKeys(m map[ResourceType]ResourceType) []ResourceType {
	keys := make([]ResourceType, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
