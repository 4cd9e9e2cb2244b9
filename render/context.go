// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Context is the per-frame value threaded through every phase call.
// It replaces ambient "current scene / current visibility group" lookups
// with explicit context threading: the compositor overrides the current
// fields for the duration of one draw and restores them on every exit
// path.
//
// Context is a mutable bag; it is not safe for concurrent use. The host
// serializes all Draw calls that share a context.
type Context struct {
	// Scene is the current scene instance, set by the host before Draw.
	Scene *Scene

	// RenderSystem is the render system of the compositor currently
	// drawing. Overridden per draw.
	RenderSystem *System

	// Visibility is the visibility group of the (scene, render system)
	// pair currently drawing. Overridden per draw.
	Visibility *VisibilityGroup

	// CameraSlots is the camera-slot collection of the compositor
	// currently drawing. Overridden per draw.
	CameraSlots *SlotList

	// SingleView is the single-view renderer slot of the compositor
	// currently drawing, or nil. Composed renderers that manage views
	// but not submission delegate their Draw to it. Overridden per draw.
	SingleView Renderer

	// Device provides GPU device access from the host, if any.
	Device DeviceHandle

	// Output is the command/device context the compositor snapshots
	// output state from at the start of every frame.
	Output OutputSource

	// OutputDesc is this frame's output-format snapshot, valid from the
	// start of Collect.
	OutputDesc OutputDescription

	// Viewport is this frame's viewport snapshot, valid from the start
	// of Collect.
	Viewport Viewport
}

// NewContext creates an empty frame context.
func NewContext() *Context {
	return &Context{}
}

// Override installs vis, sys and slots as the context's current values
// and returns a restore function that reinstates the previous values.
// Stack discipline: the caller must invoke restore on every exit path,
// normally via defer.
func (c *Context) Override(vis *VisibilityGroup, sys *System, slots *SlotList) (restore func()) {
	prevVis, prevSys, prevSlots := c.Visibility, c.RenderSystem, c.CameraSlots
	c.Visibility = vis
	c.RenderSystem = sys
	c.CameraSlots = slots
	return func() {
		c.Visibility = prevVis
		c.RenderSystem = prevSys
		c.CameraSlots = prevSlots
	}
}

// SnapshotOutput captures the current output description and viewport
// from the command context, so Collect-phase logic knows output formats
// before any GPU work is issued. A context without an Output source keeps
// its previous snapshot.
func (c *Context) SnapshotOutput() {
	if c.Output == nil {
		return
	}
	c.OutputDesc = c.Output.OutputDescription()
	c.Viewport = c.Output.Viewport()
}
