// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// VisibilityGroup caches which scene objects are visible to which views
// during the current frame. A group is bound at construction to exactly
// one (scene, render system) pair and lives inside the scene's collection
// until the owning compositor removes it.
//
// Backing storage is reused across frames: Reset truncates the per-view
// sets without releasing them, so steady-state frames allocate nothing.
//
// VisibilityGroup is not safe for concurrent use; it is mutated only
// during the Draw call of the compositor owning its render system.
type VisibilityGroup struct {
	scene  *Scene
	system *System

	visible   map[*View][]*Object
	collected map[*View]bool
}

// NewVisibilityGroup creates a visibility group bound to the given scene
// and render system.
func NewVisibilityGroup(scene *Scene, system *System) *VisibilityGroup {
	return &VisibilityGroup{
		scene:     scene,
		system:    system,
		visible:   make(map[*View][]*Object),
		collected: make(map[*View]bool),
	}
}

// Scene returns the scene the group is bound to.
func (g *VisibilityGroup) Scene() *Scene { return g.scene }

// System returns the render system the group is bound to.
func (g *VisibilityGroup) System() *System { return g.system }

// Reset clears all per-frame visibility data without releasing backing
// storage. Called by the compositor at the start of every frame.
func (g *VisibilityGroup) Reset() {
	for v := range g.visible {
		g.visible[v] = g.visible[v][:0]
	}
	for v := range g.collected {
		g.collected[v] = false
	}
}

// TryCollect computes visibility for the view if it has not been computed
// this frame. Calling it again within the same frame is a no-op, so every
// caller can use it as a completion guarantee rather than a query.
//
// Objects are culled against the view camera's frustum; a view without a
// camera (or with a zero view-projection matrix) sees every object.
func (g *VisibilityGroup) TryCollect(v *View) {
	if v == nil || g.collected[v] {
		return
	}
	g.collected[v] = true

	set := g.visible[v][:0]
	if v.Camera != nil {
		if frustum, ok := v.Camera.Frustum(); ok {
			for _, obj := range g.scene.Objects() {
				if frustum.ContainsSphere(obj.Position, obj.BoundingRadius) {
					set = append(set, obj)
				}
			}
			g.visible[v] = set
			return
		}
	}
	set = append(set, g.scene.Objects()...)
	g.visible[v] = set
}

// Collected reports whether visibility has been computed for the view
// this frame.
func (g *VisibilityGroup) Collected(v *View) bool {
	return g.collected[v]
}

// Visible returns the objects visible to the view this frame. The
// returned slice must not be modified by the caller and is only valid
// until the next Reset.
func (g *VisibilityGroup) Visible(v *View) []*Object {
	return g.visible[v]
}
