// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and the
// fixed lookup tables they are defined by.
package types

import (
	"fmt"
	"strconv"
)

// Enchantment is the quality level of a resource
type Enchantment int

const (
	EnchantmentNone Enchantment = iota
	EnchantmentUncommon
	EnchantmentRare
	EnchantmentExceptional
)

var enchantmentNames = [...]string{"none", "uncommon", "rare", "exceptional"}

// Enchantments returns every enchantment in rank order
func Enchantments() []Enchantment {
	return []Enchantment{EnchantmentNone, EnchantmentUncommon, EnchantmentRare, EnchantmentExceptional}
}

// EnchantmentFromIndex maps a token suffix digit (0-3) to an enchantment
func EnchantmentFromIndex(i int) (Enchantment, bool) {
	e := Enchantment(i)
	return e, e.IsValid()
}

// ParseEnchantment parses an enchantment name
func ParseEnchantment(s string) (Enchantment, error) {
	for i, name := range enchantmentNames {
		if name == s {
			return Enchantment(i), nil
		}
	}
	return EnchantmentNone, fmt.Errorf("unknown enchantment %q", s)
}

// String returns the enchantment name
func (e Enchantment) String() string {
	if !e.IsValid() {
		return "enchantment(" + strconv.Itoa(int(e)) + ")"
	}
	return enchantmentNames[e]
}

// Index returns the suffix digit used in tokens and display (T4.2)
func (e Enchantment) Index() int {
	return int(e)
}

// IsValid checks if the enchantment is a known level
func (e Enchantment) IsValid() bool {
	return e >= EnchantmentNone && e <= EnchantmentExceptional
}

// MarshalText encodes the enchantment as its name
func (e Enchantment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes an enchantment name
func (e *Enchantment) UnmarshalText(text []byte) error {
	parsed, err := ParseEnchantment(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Tier is the refinement rank of a material
type Tier int

const (
	// MinTier is the lowest modelled tier
	MinTier Tier = 2

	// MaxTier is the highest modelled tier
	MaxTier Tier = 8

	// EnchantmentThreshold is the highest tier that never carries an enchantment
	EnchantmentThreshold Tier = 3
)

// Tiers returns every modelled tier in ascending order
func Tiers() []Tier {
	tiers := make([]Tier, 0, MaxTier-MinTier+1)
	for t := MinTier; t <= MaxTier; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}

// IsValid checks if the tier is within the modelled range
func (t Tier) IsValid() bool {
	return t >= MinTier && t <= MaxTier
}

// Below returns the tier one rank lower. The second result is false at MinTier.
func (t Tier) Below() (Tier, bool) {
	below := t - 1
	return below, below.IsValid()
}

// AllowsEnchantment reports whether resources of this tier keep their enchantment
func (t Tier) AllowsEnchantment() bool {
	return t > EnchantmentThreshold
}

// String returns the display form (T4)
func (t Tier) String() string {
	return "T" + strconv.Itoa(int(t))
}

// Identity is the (enchantment, tier, type) key of a resource
type Identity struct {
	Enchantment Enchantment  `json:"enchantment" yaml:"enchantment"`
	Tier        Tier         `json:"tier" yaml:"tier"`
	Type        ResourceType `json:"type" yaml:"type"`
}

// String returns a compact form such as "ore T4.1"
func (id Identity) String() string {
	s := string(id.Type) + " " + id.Tier.String()
	if id.Enchantment != EnchantmentNone {
		s += "." + strconv.Itoa(id.Enchantment.Index())
	}
	return s
}
