// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/compositor/render"
)

// Lifecycle errors. Drawing before initialization or after destruction is
// caller misuse and fails fast instead of corrupting state silently.
var (
	// ErrNotInitialized is returned by Draw before Initialize succeeded.
	ErrNotInitialized = errors.New("compositor: not initialized")

	// ErrDestroyed is returned when operating on a destroyed compositor.
	ErrDestroyed = errors.New("compositor: destroyed")

	// ErrNoScene is returned when the frame context has no current scene.
	ErrNoScene = errors.New("compositor: no current scene in context")
)

// Compositor is the top-level frame orchestrator. It exclusively owns one
// [render.System] (created at construction, disposed with the compositor),
// owns the camera-slot collection, and exposes two pluggable renderer
// slots: TopLevel, the frame entry point the host invokes indirectly via
// Draw, and SingleView, an optional per-view entry point that composed
// renderers reuse.
//
// A Compositor runs one frame at a time; the host serializes Draw calls.
type Compositor struct {
	renderSystem *render.System
	cameraSlots  render.SlotList

	topLevel   render.Renderer
	singleView render.Renderer

	// scenes records every scene this compositor created a visibility
	// group in, so Destroy can remove them again.
	scenes []*render.Scene

	frame       uint64
	stats       FrameStats
	initialized bool
	destroyed   bool
}

// FrameStats summarizes the most recently completed frame.
type FrameStats struct {
	// Frame is the 1-based index of the frame the stats describe.
	Frame uint64

	// Views is the number of views registered during the frame.
	Views int

	// Visible is the total number of objects visible across all views.
	Visible int
}

// New creates a compositor with its own render system.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{
		renderSystem: render.NewSystem(),
		topLevel:     o.topLevel,
		singleView:   o.singleView,
	}
	for _, slot := range o.slots {
		// Slots built by options are never nil.
		_ = c.cameraSlots.Add(slot)
	}
	return c
}

// RenderSystem returns the compositor's exclusively owned render system,
// for stage and feature registration.
func (c *Compositor) RenderSystem() *render.System { return c.renderSystem }

// CameraSlots returns the compositor's ordered camera-slot collection.
func (c *Compositor) CameraSlots() *render.SlotList { return &c.cameraSlots }

// TopLevel returns the pluggable top-level renderer, or nil.
func (c *Compositor) TopLevel() render.Renderer { return c.topLevel }

// SetTopLevel installs the top-level renderer invoked once per frame.
// With no top-level renderer configured, Draw is a complete no-op.
func (c *Compositor) SetTopLevel(r render.Renderer) { c.topLevel = r }

// SingleView returns the optional single-view renderer, or nil.
func (c *Compositor) SingleView() render.Renderer { return c.singleView }

// SetSingleView installs the single-view renderer slot that composed
// renderers (e.g. a camera-slot driven chain) delegate to.
func (c *Compositor) SetSingleView(r render.Renderer) { c.singleView = r }

// Initialize initializes the owned render system with the given context.
// Must be called before the first Draw.
func (c *Compositor) Initialize(ctx *render.Context) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if err := c.renderSystem.Initialize(ctx); err != nil {
		return fmt.Errorf("compositor: initialize render system: %w", err)
	}
	c.initialized = true
	Logger().Info("compositor initialized",
		slog.Int("stages", c.renderSystem.Stages.Len()),
		slog.Int("features", c.renderSystem.Features.Len()))
	return nil
}

// Draw runs one frame. It resolves the scene's visibility group (creating
// it on first contact), installs the scoped context overrides, resets
// per-frame state, snapshots the output description, and executes the
// phase sequence Collect → Extract → Prepare → Draw → Flush.
//
// On every exit path — success, phase failure, or panic — the render
// system is reset exactly once and the context overrides are restored to
// their pre-call values.
func (c *Compositor) Draw(ctx *render.Context) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.topLevel == nil {
		// Nothing to render: no visibility group is created and the
		// context is left untouched.
		return nil
	}
	if !c.initialized {
		return ErrNotInitialized
	}

	scene := ctx.Scene
	if scene == nil {
		return ErrNoScene
	}

	vis := scene.VisibilityGroup(c.renderSystem)
	if vis == nil {
		vis = render.NewVisibilityGroup(scene, c.renderSystem)
		if err := scene.AddVisibilityGroup(vis); err != nil {
			return fmt.Errorf("compositor: bind visibility group: %w", err)
		}
		c.recordScene(scene)
	}

	restore := ctx.Override(vis, c.renderSystem, &c.cameraSlots)
	defer restore()

	prevSingle := ctx.SingleView
	ctx.SingleView = c.singleView
	defer func() { ctx.SingleView = prevSingle }()

	vis.Reset()
	c.renderSystem.ClearViews()
	ctx.SnapshotOutput()

	c.frame++
	err := c.drawPhases(ctx, vis)
	if err != nil {
		Logger().Warn("frame failed",
			slog.Uint64("frame", c.frame), slog.Any("error", err))
		return err
	}

	c.recordStats(vis)
	c.logFrame()
	return nil
}

// Stats returns statistics of the most recently completed frame. Zero
// before the first successful Draw.
func (c *Compositor) Stats() FrameStats { return c.stats }

// drawPhases runs the fixed phase sequence. The deferred Reset is the
// single fixed cleanup guarantee of the whole pipeline: it runs exactly
// once whether the phases succeed, fail, or panic.
func (c *Compositor) drawPhases(ctx *render.Context, vis *render.VisibilityGroup) error {
	defer c.renderSystem.Reset()

	if err := c.topLevel.Collect(ctx); err != nil {
		return fmt.Errorf("compositor: collect: %w", err)
	}
	if err := c.renderSystem.Collect(ctx); err != nil {
		return fmt.Errorf("compositor: collect features: %w", err)
	}
	// Catch-up pass: every view ends the collect phase with a populated
	// visible set, whether or not a renderer collected it explicitly.
	for _, v := range c.renderSystem.Views {
		vis.TryCollect(v)
	}
	if err := c.renderSystem.Extract(ctx); err != nil {
		return fmt.Errorf("compositor: extract: %w", err)
	}
	if err := c.renderSystem.Prepare(ctx); err != nil {
		return fmt.Errorf("compositor: prepare: %w", err)
	}
	if err := c.topLevel.Draw(ctx); err != nil {
		return fmt.Errorf("compositor: draw: %w", err)
	}
	if err := c.renderSystem.Flush(ctx); err != nil {
		return fmt.Errorf("compositor: flush: %w", err)
	}
	return nil
}

// recordScene remembers a scene for cleanup at Destroy. Each scene is
// recorded at most once per compositor lifetime.
func (c *Compositor) recordScene(scene *render.Scene) {
	for _, s := range c.scenes {
		if s == scene {
			return
		}
	}
	c.scenes = append(c.scenes, scene)
}

// recordStats snapshots the completed frame's statistics while the view
// list is still populated.
func (c *Compositor) recordStats(vis *render.VisibilityGroup) {
	visible := 0
	for _, v := range c.renderSystem.Views {
		visible += len(vis.Visible(v))
	}
	c.stats = FrameStats{
		Frame:   c.frame,
		Views:   len(c.renderSystem.Views),
		Visible: visible,
	}
}

// logFrame emits per-frame statistics at debug level.
func (c *Compositor) logFrame() {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("frame complete",
		slog.Uint64("frame", c.stats.Frame),
		slog.Int("views", c.stats.Views),
		slog.Int("visible", c.stats.Visible))
}

// Destroy disposes the renderer chain, removes this compositor's
// visibility group from every scene it previously touched, and disposes
// the owned render system. Safe with respect to partially initialized
// state and safe to call more than once.
func (c *Compositor) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.topLevel != nil {
		c.topLevel.Dispose()
	}
	if c.singleView != nil && c.singleView != c.topLevel {
		c.singleView.Dispose()
	}

	for _, scene := range c.scenes {
		scene.RemoveVisibilityGroup(c.renderSystem)
	}
	c.scenes = nil

	c.renderSystem.Dispose()
	Logger().Info("compositor destroyed", slog.Uint64("frames", c.frame))
}
