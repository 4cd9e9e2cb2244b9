// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// SortMode is the sort policy a stage applies during Prepare.
type SortMode uint8

const (
	// SortByState groups items by pipeline-state similarity to minimize
	// redundant GPU state transitions.
	SortByState SortMode = iota

	// SortBackToFront orders items by descending camera distance,
	// required for correct alpha blending.
	SortBackToFront

	// SortFrontToBack orders items by ascending camera distance, an
	// early-rejection optimization for opaque and shadow passes.
	SortFrontToBack
)

// String returns the sort mode name.
func (m SortMode) String() string {
	switch m {
	case SortByState:
		return "state"
	case SortBackToFront:
		return "back-to-front"
	case SortFrontToBack:
		return "front-to-back"
	default:
		return "unknown"
	}
}

// Stage is a named, sorted bucket identifying a render pass, e.g. opaque,
// transparent, or shadow caster. Identity (name, group) is immutable after
// creation; the sort mode may be reconfigured explicitly via SetSortMode.
//
// Stages are owned by the System they are registered on and referenced
// (not owned) by features and stage selectors.
type Stage struct {
	name     string
	group    string
	sortMode SortMode
}

// NewStage creates a stage with the given identity and sort policy.
func NewStage(name, group string, mode SortMode) *Stage {
	return &Stage{name: name, group: group, sortMode: mode}
}

// Name returns the stage name.
func (s *Stage) Name() string { return s.name }

// Group returns the stage grouping key.
func (s *Stage) Group() string { return s.group }

// SortMode returns the stage's current sort policy.
func (s *Stage) SortMode() SortMode { return s.sortMode }

// SetSortMode reconfigures the stage's sort policy.
func (s *Stage) SetSortMode(mode SortMode) { s.sortMode = mode }

// ErrNilStage is returned when a nil stage is added to a list or view.
var ErrNilStage = errors.New("render: nil stage")

// StageList is the ordered, null-free registry of stages on a System.
// Stage order is significant: together with feature order it
// deterministically affects draw order.
type StageList struct {
	stages []*Stage
}

// Add appends stages in registration order. Nil stages are rejected and
// the list is left unchanged.
func (l *StageList) Add(stages ...*Stage) error {
	for _, s := range stages {
		if s == nil {
			return ErrNilStage
		}
	}
	l.stages = append(l.stages, stages...)
	return nil
}

// Items returns the stages in registration order. The returned slice must
// not be modified by the caller.
func (l *StageList) Items() []*Stage {
	return l.stages
}

// Len returns the number of registered stages.
func (l *StageList) Len() int { return len(l.stages) }
