package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refine-calc/core/types"
	"refine-calc/internal/errors"
)

func TestParseValidTokens(t *testing.T) {
	tests := []struct {
		token string
		want  types.Identity
		qty   int
	}{
		{"100ore4", types.Identity{Enchantment: types.EnchantmentNone, Tier: 4, Type: types.TypeOre}, 100},
		{"100ore4.1", types.Identity{Enchantment: types.EnchantmentUncommon, Tier: 4, Type: types.TypeOre}, 100},
		{"10bar4.2", types.Identity{Enchantment: types.EnchantmentRare, Tier: 4, Type: types.TypeBar}, 10},
		{"0hide8.3", types.Identity{Enchantment: types.EnchantmentExceptional, Tier: 8, Type: types.TypeHide}, 0},
		{"5stone_block6.0", types.Identity{Enchantment: types.EnchantmentNone, Tier: 6, Type: types.TypeStoneBlock}, 5},
		{"7wood3.2", types.Identity{Enchantment: types.EnchantmentNone, Tier: 3, Type: types.TypeWood}, 7},
		{"1000000000000bar6", types.Identity{Enchantment: types.EnchantmentNone, Tier: 6, Type: types.TypeBar}, types.MaxQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			r, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Identity())
			assert.Equal(t, tt.qty, r.Quantity())
		})
	}
}

func TestParseMalformedTokens(t *testing.T) {
	tests := []struct {
		token  string
		reason string
	}{
		{"ore4", "have, type, and tier must be provided"},
		{"100ore", "have, type, and tier must be provided"},
		{"100ore45", "have, type, and tier must be provided"},
		{"100ore4.", "have, type, and tier must be provided"},
		{"100gold4", "unknown type \"gold\""},
		{"100ore9", "tier 9 is outside 2-8"},
		{"100ore1", "tier 1 is outside 2-8"},
		{"100ore4.5", "enchantment 5 is outside 0-3"},
		{"99999999999999999999ore4", "out of range"},
		{"9223372036854775807ore4", "out of range"},
		{"1000000000001bar6", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeMalformedInput))
			assert.Contains(t, err.Error(), tt.reason)
			assert.Contains(t, err.Error(), "["+tt.token+"]")
		})
	}
}

func TestParseSuggestsCloseType(t *testing.T) {
	_, err := Parse("10plnk5")
	require.Error(t, err)

	e, ok := errors.As(err)
	require.True(t, ok)
	suggestion, ok := e.Get(errors.KeySuggestion)
	require.True(t, ok)
	assert.Equal(t, "plank", suggestion)
	assert.Contains(t, err.Error(), `did you mean "plank"?`)
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest("leathr")
	assert.True(t, ok)
	assert.Equal(t, "leather", got)

	_, ok = Suggest("xyzzy")
	assert.False(t, ok)
}

func TestParseAllCollectsEveryError(t *testing.T) {
	haves, err := ParseAll([]string{"100ore4", "bad", "10bar9", "3hide5.1"})
	require.Error(t, err)
	assert.Nil(t, haves, "no partial batch on error")

	errs := Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "[bad]")
	assert.Contains(t, errs[1].Error(), "[10bar9]")
}

func TestParseAllValidBatch(t *testing.T) {
	haves, err := ParseAll([]string{"100ore4", "3hide5.1"})
	require.NoError(t, err)
	require.Len(t, haves, 2)
	assert.Equal(t, types.TypeHide, haves[1].Type())
}
