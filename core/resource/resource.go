// Package resource implements the Resource value: an amount of one
// (enchantment, tier, type) combination together with its refining recipe.
package resource

import (
	"fmt"
	"strings"

	"refine-calc/core/types"
	"refine-calc/internal/errors"
)

// Recipe is the conversion ratio for producing one refined unit at a tier
type Recipe struct {
	// Raw is the number of raw units consumed per refined unit
	Raw int `json:"raw" yaml:"raw"`

	// Refined is the number of tier-below refined units consumed per refined unit
	Refined int `json:"refined" yaml:"refined"`
}

// RecipeFor derives the recipe of a tier from a multiplier table
func RecipeFor(m types.Multipliers, t types.Tier) Recipe {
	raw, _ := m.Of(t)
	r := Recipe{Raw: raw}
	if t > types.MinTier {
		r.Refined = 1
	}
	return r
}

var defaultMultipliers = types.DefaultMultipliers()

// Resource is a quantity of one identity. Identity is fixed at construction;
// only the quantity changes.
type Resource struct {
	enchantment types.Enchantment
	tier        types.Tier
	rtype       types.ResourceType
	quantity    int
	recipe      Recipe
}

// New creates a resource using the built-in multiplier table
func New(e types.Enchantment, t types.Tier, rt types.ResourceType, quantity int) *Resource {
	return NewWith(defaultMultipliers, e, t, rt, quantity)
}

// NewWith creates a resource whose recipe comes from the given multiplier table.
// The enchantment is forced to none at or below the enchantment threshold.
func NewWith(m types.Multipliers, e types.Enchantment, t types.Tier, rt types.ResourceType, quantity int) *Resource {
	if !t.AllowsEnchantment() {
		e = types.EnchantmentNone
	}
	return &Resource{
		enchantment: e,
		tier:        t,
		rtype:       rt,
		quantity:    quantity,
		recipe:      RecipeFor(m, t),
	}
}

// Enchantment returns the quality level, always none at tiers 2 and 3
func (r *Resource) Enchantment() types.Enchantment { return r.enchantment }

// Tier returns the refinement tier
func (r *Resource) Tier() types.Tier { return r.tier }

// Type returns the raw or refined kind
func (r *Resource) Type() types.ResourceType { return r.rtype }

// Quantity returns the amount held
func (r *Resource) Quantity() int { return r.quantity }

// Recipe returns the conversion ratio fixed at construction
func (r *Resource) Recipe() Recipe { return r.recipe }

// SetQuantity replaces the quantity
func (r *Resource) SetQuantity(q int) {
	r.quantity = q
}

// Identity returns the (enchantment, tier, type) key
func (r *Resource) Identity() types.Identity {
	return types.Identity{
		Enchantment: r.enchantment,
		Tier:        r.tier,
		Type:        r.rtype,
	}
}

// SameIdentity reports whether two resources share an identity
func (r *Resource) SameIdentity(other *Resource) bool {
	return r.Identity() == other.Identity()
}

// IsRefined reports whether the type belongs to the refined set
func (r *Resource) IsRefined() bool {
	return r.rtype.IsRefined()
}

// Clone returns an independent copy
func (r *Resource) Clone() *Resource {
	c := *r
	return &c
}

// Merge adds other's quantity into r. other is left unchanged.
func (r *Resource) Merge(other *Resource) error {
	if !r.SameIdentity(other) {
		return errors.IdentityMismatch(other.Identity(), r.Identity())
	}
	r.quantity += other.quantity
	return nil
}

// Name returns the material name for the tier and type. A pair missing from
// the name table is a configuration defect and panics.
func (r *Resource) Name() string {
	name, ok := types.Names.Lookup(r.tier, r.rtype)
	if !ok {
		panic(fmt.Sprintf("no name configured for %s %s", r.rtype, r.tier))
	}
	return name
}

// String renders "<quantity> [<enchantment> ]<name> (T<tier>[.<index>])"
func (r *Resource) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ", r.quantity)
	if r.enchantment != types.EnchantmentNone {
		b.WriteString(r.enchantment.String())
		b.WriteByte(' ')
	}
	b.WriteString(r.Name())
	fmt.Fprintf(&b, " (T%d", r.tier)
	if r.enchantment != types.EnchantmentNone {
		fmt.Fprintf(&b, ".%d", r.enchantment.Index())
	}
	b.WriteByte(')')
	return b.String()
}
