// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "sort"

// Item is one renderable entry produced during Extract: an object bound
// to a stage with the per-frame metadata the sort policies need. Items
// are value types; features keep them in per-stage slices that are
// truncated, not freed, between frames.
type Item struct {
	// Object is the scene object the item was extracted from.
	Object *Object

	// Distance is the camera distance snapshot taken during Extract.
	Distance float32

	// StateKey is the pipeline-state grouping key used by SortByState.
	StateKey uint64
}

// SortItems orders items in place according to the stage sort policy.
// Ties are broken by insertion order (the sort is stable).
func SortItems(items []Item, mode SortMode) {
	switch mode {
	case SortBackToFront:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Distance > items[j].Distance
		})
	case SortFrontToBack:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Distance < items[j].Distance
		})
	default: // SortByState
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].StateKey < items[j].StateKey
		})
	}
}
