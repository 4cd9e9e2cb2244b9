// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import "github.com/gogpu/compositor/render"

// Option configures a Compositor during creation.
//
// Example:
//
//	comp := compositor.New(
//		compositor.WithTopLevel(forward.NewForwardRenderer("main", mainStage)),
//		compositor.WithCameraSlot("main", camera),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	topLevel   render.Renderer
	singleView render.Renderer
	slots      []*render.CameraSlot
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	// All renderer slots start empty; a compositor without a top-level
	// renderer draws nothing.
	return options{}
}

// WithTopLevel sets the top-level renderer invoked once per frame.
func WithTopLevel(r render.Renderer) Option {
	return func(o *options) {
		o.topLevel = r
	}
}

// WithSingleView sets the single-view renderer slot reused by composed
// renderers.
func WithSingleView(r render.Renderer) Option {
	return func(o *options) {
		o.singleView = r
	}
}

// WithCameraSlot appends a named camera slot. Slots keep the order the
// options were given in. The camera may be nil and bound later.
func WithCameraSlot(name string, cam *render.Camera) Option {
	return func(o *options) {
		o.slots = append(o.slots, &render.CameraSlot{Name: name, Camera: cam})
	}
}
