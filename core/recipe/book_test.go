package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refine-calc/core/types"
	"refine-calc/internal/errors"
)

const sampleBook = `
multipliers = {
  "8" = 5
}

price "ore" {
  tier        = 4
  enchantment = 1
  each        = "12.5"
}

price "bar" {
  tier        = 3
  enchantment = 2
  each        = "40"
}
`

func TestDefaultBook(t *testing.T) {
	book := Default()
	assert.False(t, book.HasPrices())
	assert.Equal(t, types.DefaultMultipliers(), book.Multipliers)
}

func TestLoadBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleBook), 0644))

	book, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, book.Source)

	m, _ := book.Multipliers.Of(8)
	assert.Equal(t, 5, m)
	m, _ = book.Multipliers.Of(5)
	assert.Equal(t, 3, m, "untouched tiers keep defaults")

	p, ok := book.Price(types.Identity{Enchantment: types.EnchantmentUncommon, Tier: 4, Type: types.TypeOre})
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p))

	// tier 3 collapses the enchantment
	p, ok = book.Price(types.Identity{Enchantment: types.EnchantmentNone, Tier: 3, Type: types.TypeBar})
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(40).Equal(p))

	assert.Len(t, book.PricedIdentities(), 2)
}

func TestParseRejectsBadBooks(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `multipliers = {`},
		{"unknown attribute", `colour = "red"`},
		{"tier key", `multipliers = { "x" = 2 }`},
		{"unmodelled tier", `multipliers = { "9" = 2 }`},
		{"zero multiplier", `multipliers = { "4" = 0 }`},
		{"unknown type", `price "gold" {
  tier = 4
  each = "1"
}`},
		{"price tier", `price "ore" {
  tier = 1
  each = "1"
}`},
		{"price not numeric", `price "ore" {
  tier = 4
  each = "cheap"
}`},
		{"negative price", `price "ore" {
  tier = 4
  each = "-2"
}`},
		{"duplicate", `price "ore" {
  tier = 3
  each = "1"
}
price "ore" {
  tier = 3
  enchantment = 2
  each = "2"
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "book.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig), err.Error())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}
