// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Renderer is a pluggable renderer chain link: the compositor's top-level
// frame entry point and the optional single-view entry point both hold
// one. Implementations compose — a multi-view renderer typically wraps a
// single-view one.
//
// Collect runs at the start of the frame: the renderer enumerates views,
// registers them (and their stages) on the current render system, and
// populates the visibility group. Draw runs after Prepare and submits the
// actual work.
type Renderer interface {
	// Collect enumerates this renderer's views for the frame.
	Collect(ctx *Context) error

	// Draw submits the renderer's draw work for the frame.
	Draw(ctx *Context) error

	// Dispose releases renderer resources.
	Dispose()
}
