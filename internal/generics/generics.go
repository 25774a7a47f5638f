// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// SliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func SliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// SortedKeys returns an iterator over the sorted keys of the given map.
//
// It extracts the keys, sort them and then iterate over, so it's convenient but not fast.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq[K] {
	sortedKeys := slices.Collect(maps.Keys(m))
	slices.Sort(sortedKeys)
	return slices.Values(sortedKeys)
}

// SliceOrdering returns the indices of values sorted by their values: ascending, or descending
// if reverse is set. The sort is stable: equal values keep their original relative order.
// values itself is not changed.
func SliceOrdering[T constraints.Ordered](values []T, reverse bool) []int {
	order := make([]int, len(values))
	for ii := range order {
		order[ii] = ii
	}
	if reverse {
		sort.SliceStable(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })
	} else {
		sort.SliceStable(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	}
	return order
}
