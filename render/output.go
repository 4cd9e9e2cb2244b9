// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
)

// OutputDescription is a per-frame snapshot of the active render output.
// It is captured from the command context at the start of a frame so that
// Collect-phase logic knows the output formats before any GPU work is
// issued.
type OutputDescription struct {
	// Format is the color attachment pixel format.
	Format gputypes.TextureFormat

	// DepthFormat is the depth attachment pixel format, or
	// TextureFormatUndefined when the output has no depth attachment.
	DepthFormat gputypes.TextureFormat

	// SampleCount is the MSAA sample count (1 = no multisampling).
	SampleCount uint32
}

// Viewport is a per-frame snapshot of the active viewport rectangle.
type Viewport struct {
	X, Y, Width, Height float32
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// OutputSource supplies the current output description and viewport.
// Graphics backends implement it; the compositor snapshots it into the
// frame [Context] at the start of every draw.
type OutputSource interface {
	// OutputDescription returns the current render output formats.
	OutputDescription() OutputDescription

	// Viewport returns the current viewport rectangle.
	Viewport() Viewport
}
