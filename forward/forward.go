// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"fmt"

	"github.com/gogpu/compositor/render"
)

// StageDrawer is implemented by features that can submit draw work for
// one (view, stage) pair. Renderers walk the registered features during
// the Draw phase and invoke every StageDrawer in registration order.
type StageDrawer interface {
	DrawStage(ctx *render.Context, view *render.View, stage *render.Stage) error
}

// drawViews submits draw work for every (view, stage, feature)
// combination in order: views as collected, stages in view order,
// features in registration order.
func drawViews(ctx *render.Context, views []*render.View) error {
	for _, view := range views {
		for _, stage := range view.Stages() {
			for _, f := range ctx.RenderSystem.Features.Items() {
				d, ok := f.(StageDrawer)
				if !ok {
					continue
				}
				if err := d.DrawStage(ctx, view, stage); err != nil {
					return fmt.Errorf("forward: draw %s/%s: %w", view.Name, stage.Name(), err)
				}
			}
		}
	}
	return nil
}

// ForwardRenderer renders a single persistent view over a fixed set of
// stages. The view is reused across frames; its stage associations are
// re-registered every Collect because the compositor clears them at the
// start of each frame.
type ForwardRenderer struct {
	view   *render.View
	stages []*render.Stage
}

// NewForwardRenderer creates a single-view renderer named after the view
// it drives. Stage validity is checked at Collect time, so a nil stage
// in the list surfaces as a collect error rather than a panic.
func NewForwardRenderer(name string, stages ...*render.Stage) *ForwardRenderer {
	return &ForwardRenderer{
		view:   render.NewView(name),
		stages: stages,
	}
}

// View returns the renderer's persistent view, e.g. to bind a camera.
func (r *ForwardRenderer) View() *render.View { return r.view }

// SetCamera binds the camera used for culling and distance sorting.
func (r *ForwardRenderer) SetCamera(cam *render.Camera) {
	r.view.Camera = cam
}

// Collect registers the view and its stages on the current render system
// and populates the visibility group for the view.
func (r *ForwardRenderer) Collect(ctx *render.Context) error {
	for _, s := range r.stages {
		if err := r.view.AddStage(s); err != nil {
			return fmt.Errorf("forward: view %s: %w", r.view.Name, err)
		}
	}
	ctx.RenderSystem.AddView(r.view)
	ctx.Visibility.TryCollect(r.view)
	return nil
}

// Draw submits the view's prepared work through every StageDrawer
// feature.
func (r *ForwardRenderer) Draw(ctx *render.Context) error {
	return drawViews(ctx, []*render.View{r.view})
}

// Dispose releases nothing; the renderer holds no GPU resources.
func (r *ForwardRenderer) Dispose() {}

// CameraRenderer drives one view per filled camera slot. Views are
// created lazily per slot and reused across frames. Submission is
// delegated to a composed single-view renderer: the one given at
// construction, or else the compositor's SingleView slot carried on the
// frame context. Without either, the renderer submits through the
// StageDrawer features directly.
type CameraRenderer struct {
	stages []*render.Stage
	views  map[*render.CameraSlot]*render.View
	child  render.Renderer

	// collected holds this frame's views in slot order.
	collected []*render.View
}

// NewCameraRenderer creates a camera-slot driven renderer. child may be
// nil.
func NewCameraRenderer(child render.Renderer, stages ...*render.Stage) *CameraRenderer {
	return &CameraRenderer{
		stages: stages,
		views:  make(map[*render.CameraSlot]*render.View),
		child:  child,
	}
}

// Collect creates or reuses a view per filled camera slot, registers the
// stage set on each, and populates visibility. Slots without a camera are
// skipped.
func (r *CameraRenderer) Collect(ctx *render.Context) error {
	r.collected = r.collected[:0]
	if ctx.CameraSlots == nil {
		return nil
	}
	for _, slot := range ctx.CameraSlots.Items() {
		if slot.Camera == nil {
			continue
		}
		view, ok := r.views[slot]
		if !ok {
			view = render.NewView(slot.Name)
			r.views[slot] = view
		}
		view.Camera = slot.Camera
		for _, s := range r.stages {
			if err := view.AddStage(s); err != nil {
				return fmt.Errorf("forward: slot %s: %w", slot.Name, err)
			}
		}
		ctx.RenderSystem.AddView(view)
		ctx.Visibility.TryCollect(view)
		r.collected = append(r.collected, view)
	}
	return nil
}

// Draw submits work for every collected view, delegating to the composed
// renderer when one is configured, or to the frame context's single-view
// slot otherwise.
func (r *CameraRenderer) Draw(ctx *render.Context) error {
	if r.child != nil {
		return r.child.Draw(ctx)
	}
	if ctx.SingleView != nil {
		return ctx.SingleView.Draw(ctx)
	}
	return drawViews(ctx, r.collected)
}

// Dispose disposes the composed renderer, if any.
func (r *CameraRenderer) Dispose() {
	if r.child != nil {
		r.child.Dispose()
	}
}

// Ensure both renderers implement render.Renderer.
var (
	_ render.Renderer = (*ForwardRenderer)(nil)
	_ render.Renderer = (*CameraRenderer)(nil)
)
