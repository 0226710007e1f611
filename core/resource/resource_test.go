package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refine-calc/core/types"
	"refine-calc/internal/errors"
)

func TestNewForcesEnchantmentAtLowTiers(t *testing.T) {
	tests := []struct {
		tier types.Tier
		want types.Enchantment
	}{
		{2, types.EnchantmentNone},
		{3, types.EnchantmentNone},
		{4, types.EnchantmentRare},
		{8, types.EnchantmentRare},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			r := New(types.EnchantmentRare, tt.tier, types.TypeOre, 1)
			assert.Equal(t, tt.want, r.Enchantment())
			assert.Equal(t, tt.tier, r.Tier())
			assert.Equal(t, types.TypeOre, r.Type())
		})
	}
}

func TestRecipeDerivation(t *testing.T) {
	assert.Equal(t, Recipe{Raw: 2, Refined: 0}, New(0, 2, types.TypeOre, 0).Recipe())
	assert.Equal(t, Recipe{Raw: 2, Refined: 1}, New(0, 4, types.TypeOre, 0).Recipe())
	assert.Equal(t, Recipe{Raw: 3, Refined: 1}, New(0, 5, types.TypeBar, 0).Recipe())
	assert.Equal(t, Recipe{Raw: types.TopTierMultiplier, Refined: 1}, New(0, 8, types.TypeHide, 0).Recipe())

	custom := types.DefaultMultipliers().With(types.Multipliers{5: 7})
	assert.Equal(t, 7, NewWith(custom, 0, 5, types.TypeOre, 0).Recipe().Raw)
}

func TestDefaultQuantityIsZero(t *testing.T) {
	r := New(types.EnchantmentNone, 4, types.TypeOre, 0)
	assert.Equal(t, 0, r.Quantity())
}

func TestMergeSameIdentity(t *testing.T) {
	a := New(types.EnchantmentUncommon, 5, types.TypeBar, 7)
	b := New(types.EnchantmentUncommon, 5, types.TypeBar, 5)

	require.NoError(t, a.Merge(b))
	assert.Equal(t, 12, a.Quantity())
	assert.Equal(t, 5, b.Quantity(), "merge must not change the operand")
}

func TestMergeIdentityMismatch(t *testing.T) {
	base := New(types.EnchantmentUncommon, 5, types.TypeBar, 7)
	others := []*Resource{
		New(types.EnchantmentRare, 5, types.TypeBar, 1),
		New(types.EnchantmentUncommon, 6, types.TypeBar, 1),
		New(types.EnchantmentUncommon, 5, types.TypeOre, 1),
	}
	for _, other := range others {
		t.Run(other.Identity().String(), func(t *testing.T) {
			err := base.Merge(other)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeIdentityMismatch))
			assert.Equal(t, 7, base.Quantity(), "failed merge must leave quantity unchanged")
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		res  *Resource
		want string
	}{
		{New(types.EnchantmentNone, 4, types.TypeOre, 100), "100 iron ore (T4)"},
		{New(types.EnchantmentRare, 4, types.TypeBar, 10), "10 rare steel bar (T4.2)"},
		{New(types.EnchantmentExceptional, 3, types.TypeStoneBlock, 3), "3 sandstone block (T3)"},
		{New(types.EnchantmentUncommon, 7, types.TypeLeather, 1), "1 uncommon reinforced leather (T7.1)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.String())
		})
	}
}

func TestNameMissingPanics(t *testing.T) {
	r := New(types.EnchantmentNone, 9, types.TypeOre, 1)
	assert.Panics(t, func() { _ = r.Name() })
}

func TestEveryModelledPairHasAName(t *testing.T) {
	for _, tier := range types.Tiers() {
		for _, rt := range types.ResourceTypes() {
			r := New(types.EnchantmentNone, tier, rt, 0)
			assert.NotPanics(t, func() { _ = r.String() })
		}
	}
}

func TestClone(t *testing.T) {
	a := New(types.EnchantmentRare, 6, types.TypeCloth, 4)
	b := a.Clone()
	b.SetQuantity(9)

	assert.Equal(t, 4, a.Quantity())
	assert.True(t, a.SameIdentity(b))
}

func TestSortOrder(t *testing.T) {
	rs := []*Resource{
		New(types.EnchantmentNone, 4, types.TypeBar, 1),
		New(types.EnchantmentRare, 5, types.TypeOre, 1),
		New(types.EnchantmentUncommon, 5, types.TypeOre, 1),
		New(types.EnchantmentNone, 3, types.TypeOre, 1),
		New(types.EnchantmentNone, 2, types.TypeWood, 1),
		New(types.EnchantmentNone, 4, types.TypeStoneBlock, 1),
	}

	got := make([]string, 0, len(rs))
	for _, r := range Sorted(rs) {
		got = append(got, r.Identity().String())
	}

	assert.Equal(t, []string{
		"wood T2",
		"stone block T4",
		"ore T3",
		"ore T5.1",
		"ore T5.2",
		"bar T4",
	}, got)
}
