package resource

import "sort"

// Less orders resources for display: type descending, tier ascending,
// refined before raw, then enchantment rank ascending.
func Less(a, b *Resource) bool {
	if a.rtype != b.rtype {
		return a.rtype > b.rtype
	}
	if a.tier != b.tier {
		return a.tier < b.tier
	}
	if a.IsRefined() != b.IsRefined() {
		return a.IsRefined()
	}
	return a.enchantment < b.enchantment
}

// Sort orders resources in place using Less
func Sort(rs []*Resource) {
	sort.SliceStable(rs, func(i, j int) bool {
		return Less(rs[i], rs[j])
	})
}

// Sorted returns a sorted copy of the slice, sharing the elements
func Sorted(rs []*Resource) []*Resource {
	out := make([]*Resource, len(rs))
	copy(out, rs)
	Sort(out)
	return out
}
