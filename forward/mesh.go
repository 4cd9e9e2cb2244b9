// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"context"
	"log/slog"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/cache"
	"github.com/gogpu/compositor/render"
)

// viewStage identifies one view's item list for one stage. Item lists
// are kept per (view, stage) pair: distances are measured from each
// view's own camera, so the lists of different views must never mix.
type viewStage struct {
	view  *render.View
	stage *render.Stage
}

// MeshFeature turns visible scene objects into sortable render items.
// Extract snapshots each visible object into a per-(view, stage) item
// list with its camera distance and pipeline-state key; Prepare sorts
// every list per the owning stage's sort policy; DrawStage submits the
// drawn view's items for the stage.
type MeshFeature struct {
	render.RootFeature

	items map[viewStage][]render.Item

	// groupHash memoizes each stage's group-string hash. The stage set
	// is small and stable, so a plain map suffices.
	groupHash map[*render.Stage]uint64

	// drawCalls counts items submitted since creation.
	drawCalls uint64
}

// NewMeshFeature creates a mesh feature with an empty selector set. Use
// AddSelector to route objects to stages; without selectors, objects
// fall into the first stage of each view.
func NewMeshFeature() *MeshFeature {
	return &MeshFeature{
		items:     make(map[viewStage][]render.Item),
		groupHash: make(map[*render.Stage]uint64),
	}
}

// Initialize fans out to nested sub-features.
func (f *MeshFeature) Initialize(ctx *render.Context) error {
	return f.RootFeature.Initialize(ctx)
}

// Extract snapshots this frame's visible objects into per-(view, stage)
// item lists. Distances are measured from each view's camera so
// transparent stages can sort back to front per view.
func (f *MeshFeature) Extract(ctx *render.Context) error {
	for _, view := range ctx.RenderSystem.Views {
		var camPos render.Vec3
		if view.Camera != nil {
			camPos = view.Camera.Position
		}
		for _, obj := range ctx.Visibility.Visible(view) {
			stage := f.stageFor(view, obj)
			if stage == nil {
				continue
			}
			key := viewStage{view: view, stage: stage}
			f.items[key] = append(f.items[key], render.Item{
				Object:   obj,
				Distance: obj.Position.DistanceTo(camPos),
				StateKey: f.pipelineStateKey(stage, obj),
			})
		}
	}
	return f.RootFeature.Extract(ctx)
}

// Prepare sorts every item list per its stage's sort mode.
func (f *MeshFeature) Prepare(ctx *render.Context) error {
	for key, items := range f.items {
		render.SortItems(items, key.stage.SortMode())
	}
	return f.RootFeature.Prepare(ctx)
}

// DrawStage submits the drawn view's sorted items for the stage.
func (f *MeshFeature) DrawStage(ctx *render.Context, view *render.View, stage *render.Stage) error {
	items := f.items[viewStage{view: view, stage: stage}]
	if len(items) == 0 {
		return nil
	}
	f.drawCalls += uint64(len(items))

	log := compositor.Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("mesh draw",
			slog.String("view", view.Name),
			slog.String("stage", stage.Name()),
			slog.Int("items", len(items)))
	}
	return nil
}

// Flush fans out to nested sub-features.
func (f *MeshFeature) Flush(ctx *render.Context) error {
	return f.RootFeature.Flush(ctx)
}

// Reset truncates the item lists, keeping their storage for the next
// frame, and resets nested sub-features. The group-hash memo survives
// across frames.
func (f *MeshFeature) Reset() {
	for key, items := range f.items {
		f.items[key] = items[:0]
	}
	f.RootFeature.Reset()
}

// Dispose drops per-frame storage and the group-hash memo.
func (f *MeshFeature) Dispose() {
	f.items = make(map[viewStage][]render.Item)
	f.groupHash = make(map[*render.Stage]uint64)
	f.RootFeature.Dispose()
}

// Items returns the current item list for one view and stage. The
// returned slice is only valid until the next Reset.
func (f *MeshFeature) Items(view *render.View, stage *render.Stage) []render.Item {
	return f.items[viewStage{view: view, stage: stage}]
}

// DrawCalls returns the total number of items submitted since creation.
func (f *MeshFeature) DrawCalls() uint64 { return f.drawCalls }

// stageFor routes an object to a stage of the view: the selector chain
// decides first, otherwise the view's first stage is used. Objects whose
// selected stage is not part of the view are skipped.
func (f *MeshFeature) stageFor(view *render.View, obj *render.Object) *render.Stage {
	stage := f.SelectStage(obj)
	if stage == nil {
		stages := view.Stages()
		if len(stages) == 0 {
			return nil
		}
		return stages[0]
	}
	if !view.HasStage(stage) {
		return nil
	}
	return stage
}

// pipelineStateKey derives the sort key combining the object's material
// state with the stage group.
func (f *MeshFeature) pipelineStateKey(stage *render.Stage, obj *render.Object) uint64 {
	h, ok := f.groupHash[stage]
	if !ok {
		h = cache.StringHasher(stage.Group())
		f.groupHash[stage] = h
	}
	return mix64(obj.StateKey ^ h)
}

// mix64 is the splitmix64 finalizer, spreading state bits so keys with
// adjacent material ids still sort into distinct buckets.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

var (
	_ render.Feature = (*MeshFeature)(nil)
	_ StageDrawer    = (*MeshFeature)(nil)
)
