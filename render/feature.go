// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Feature translates scene objects of a given kind into renderable items.
// Features are pluggable; multiple instances compose on one System and
// every phase fans out to them in registration order.
//
// Phase methods receive the per-frame Context. Any phase may fail; the
// compositor stops the remaining phases of the frame and propagates the
// error after the guaranteed cleanup has run.
type Feature interface {
	// Initialize prepares the feature. Called once from System.Initialize.
	Initialize(ctx *Context) error

	// Collect lets the feature perform its own collection pass after the
	// top-level renderer has enumerated views.
	Collect(ctx *Context) error

	// Extract snapshots per-frame render data (transforms, distances)
	// from live scene objects, decoupling later phases from scene
	// mutation.
	Extract(ctx *Context) error

	// Prepare finalizes GPU-ready per-item state, e.g. sorting items
	// within stages per the stage sort policy.
	Prepare(ctx *Context) error

	// Flush performs end-of-frame submission bookkeeping.
	Flush(ctx *Context) error

	// Reset clears per-frame state. Called unconditionally at the end of
	// every frame, including failed ones.
	Reset()

	// Dispose releases feature resources. Called from System.Dispose.
	Dispose()
}

// ErrNilFeature is returned when a nil feature is added to a list.
var ErrNilFeature = errors.New("render: nil feature")

// FeatureList is the ordered, null-free registry of features.
type FeatureList struct {
	features []Feature
}

// Add appends features in registration order. Nil features are rejected
// and the list is left unchanged.
func (l *FeatureList) Add(features ...Feature) error {
	for _, f := range features {
		if f == nil {
			return ErrNilFeature
		}
	}
	l.features = append(l.features, features...)
	return nil
}

// Items returns the features in registration order. The returned slice
// must not be modified by the caller.
func (l *FeatureList) Items() []Feature {
	return l.features
}

// Len returns the number of registered features.
func (l *FeatureList) Len() int { return len(l.features) }

// StageSelector decides which stage (if any) an object renders into.
// Returning nil excludes the object from the selecting feature.
type StageSelector interface {
	Select(obj *Object) *Stage
}

// StageSelectorFunc adapts a function to the StageSelector interface.
type StageSelectorFunc func(obj *Object) *Stage

// Select calls f.
func (f StageSelectorFunc) Select(obj *Object) *Stage { return f(obj) }

// ErrNilSelector is returned when a nil stage selector is added.
var ErrNilSelector = errors.New("render: nil stage selector")

// RootFeature is a reusable base for composite features: it holds nested
// sub-features and stage selectors and fans every phase out to the
// children in order. Concrete features embed it and override the phases
// they implement, calling the embedded method to keep the fan-out.
type RootFeature struct {
	children  FeatureList
	selectors []StageSelector
}

// AddFeature registers nested sub-features.
func (r *RootFeature) AddFeature(features ...Feature) error {
	return r.children.Add(features...)
}

// AddSelector registers stage selectors, consulted in order.
func (r *RootFeature) AddSelector(selectors ...StageSelector) error {
	for _, s := range selectors {
		if s == nil {
			return ErrNilSelector
		}
	}
	r.selectors = append(r.selectors, selectors...)
	return nil
}

// SelectStage returns the stage for the object from the first selector
// that yields one, or nil when no selector matches.
func (r *RootFeature) SelectStage(obj *Object) *Stage {
	for _, s := range r.selectors {
		if stage := s.Select(obj); stage != nil {
			return stage
		}
	}
	return nil
}

// Initialize fans out to the sub-features in order.
func (r *RootFeature) Initialize(ctx *Context) error {
	for _, f := range r.children.Items() {
		if err := f.Initialize(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Collect fans out to the sub-features in order.
func (r *RootFeature) Collect(ctx *Context) error {
	for _, f := range r.children.Items() {
		if err := f.Collect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Extract fans out to the sub-features in order.
func (r *RootFeature) Extract(ctx *Context) error {
	for _, f := range r.children.Items() {
		if err := f.Extract(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Prepare fans out to the sub-features in order.
func (r *RootFeature) Prepare(ctx *Context) error {
	for _, f := range r.children.Items() {
		if err := f.Prepare(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Flush fans out to the sub-features in order.
func (r *RootFeature) Flush(ctx *Context) error {
	for _, f := range r.children.Items() {
		if err := f.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset fans out to the sub-features in order.
func (r *RootFeature) Reset() {
	for _, f := range r.children.Items() {
		f.Reset()
	}
}

// Dispose fans out to the sub-features in order.
func (r *RootFeature) Dispose() {
	for _, f := range r.children.Items() {
		f.Dispose()
	}
}

// Ensure RootFeature satisfies Feature on its own.
var _ Feature = (*RootFeature)(nil)
