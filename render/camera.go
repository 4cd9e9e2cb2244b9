// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/chewxy/math32"
)

// Vec3 is a float32 3-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// DistanceTo returns the distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float32 {
	return v.Sub(o).Length()
}

// Camera is a viewpoint used for culling and distance sorting.
// The orchestrator does not own projection math; the host sets Position
// and the combined column-major ViewProjection matrix.
type Camera struct {
	// Position is the camera position in world space.
	Position Vec3

	// ViewProjection is the combined View * Projection matrix in
	// column-major order. A zero matrix disables frustum culling for
	// views using this camera.
	ViewProjection [16]float32
}

// Frustum extracts the camera's view frustum from its view-projection
// matrix. Returns false when the matrix is zero (no culling possible).
func (c *Camera) Frustum() (Frustum, bool) {
	zero := true
	for _, m := range c.ViewProjection {
		if m != 0 {
			zero = false
			break
		}
	}
	if zero {
		return Frustum{}, false
	}
	return ExtractFrustum(c.ViewProjection), true
}

// CameraSlot associates a name with a camera. The compositor exposes an
// ordered, null-free collection of slots; camera-driven renderers create
// one view per filled slot each frame.
type CameraSlot struct {
	// Name identifies the slot (e.g. "main", "rear-view").
	Name string

	// Camera is the camera currently bound to the slot. A slot with a
	// nil camera is valid configuration; renderers skip it.
	Camera *Camera
}

// ErrNilSlot is returned when a nil camera slot is added to a SlotList.
var ErrNilSlot = errors.New("render: nil camera slot")

// SlotList is an ordered, null-free collection of camera slots.
type SlotList struct {
	slots []*CameraSlot
}

// Add appends slots in order. Nil slots are rejected and the list is left
// unchanged.
func (l *SlotList) Add(slots ...*CameraSlot) error {
	for _, s := range slots {
		if s == nil {
			return ErrNilSlot
		}
	}
	l.slots = append(l.slots, slots...)
	return nil
}

// Items returns the slots in insertion order. The returned slice must not
// be modified by the caller.
func (l *SlotList) Items() []*CameraSlot {
	return l.slots
}

// Len returns the number of slots.
func (l *SlotList) Len() int { return len(l.slots) }

// Clear removes all slots.
func (l *SlotList) Clear() { l.slots = l.slots[:0] }
