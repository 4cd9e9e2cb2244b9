// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Object is a renderable scene object as the orchestrator sees it: a
// bounding sphere for culling plus a pipeline-state key for state sorting.
// The actual geometry, materials and components live in the host's scene
// graph and are out of scope here.
type Object struct {
	// Name identifies the object for diagnostics.
	Name string

	// Position is the object's world-space position.
	Position Vec3

	// BoundingRadius is the radius of the object's bounding sphere.
	BoundingRadius float32

	// StateKey identifies the GPU pipeline state (material, shader,
	// blend mode) the object renders with. Objects sharing a key can be
	// drawn without state transitions between them.
	StateKey uint64
}

// Scene errors.
var (
	// ErrNilVisibilityGroup is returned when a nil group is added.
	ErrNilVisibilityGroup = errors.New("render: nil visibility group")

	// ErrDuplicateVisibilityGroup is returned when a scene already holds
	// a visibility group for the same render system.
	ErrDuplicateVisibilityGroup = errors.New("render: visibility group for render system already present")
)

// Scene is the orchestrator-facing projection of a scene instance. It owns
// the objects considered for rendering and the collection of visibility
// groups, one per distinct render system that has rendered the scene.
type Scene struct {
	objects []*Object
	groups  []*VisibilityGroup
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddObject adds objects to the scene. Nil objects are ignored.
func (sc *Scene) AddObject(objs ...*Object) {
	for _, o := range objs {
		if o != nil {
			sc.objects = append(sc.objects, o)
		}
	}
}

// RemoveObject removes the first occurrence of obj from the scene.
// Returns true if the object was found and removed.
func (sc *Scene) RemoveObject(obj *Object) bool {
	for i, o := range sc.objects {
		if o == obj {
			sc.objects = append(sc.objects[:i], sc.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Objects returns the scene objects in insertion order. The returned
// slice must not be modified by the caller.
func (sc *Scene) Objects() []*Object {
	return sc.objects
}

// VisibilityGroup returns the visibility group bound to the given render
// system, or nil if the scene has none. Lookup is a linear scan; scenes
// hold very few groups (one per render system that has drawn them).
func (sc *Scene) VisibilityGroup(sys *System) *VisibilityGroup {
	for _, g := range sc.groups {
		if g.System() == sys {
			return g
		}
	}
	return nil
}

// AddVisibilityGroup appends a group to the scene's collection. At most
// one group per render system may exist in a scene; duplicates are
// rejected.
func (sc *Scene) AddVisibilityGroup(g *VisibilityGroup) error {
	if g == nil {
		return ErrNilVisibilityGroup
	}
	if sc.VisibilityGroup(g.System()) != nil {
		return ErrDuplicateVisibilityGroup
	}
	sc.groups = append(sc.groups, g)
	return nil
}

// RemoveVisibilityGroup removes the group bound to the given render
// system. Returns true if a group was found and removed.
func (sc *Scene) RemoveVisibilityGroup(sys *System) bool {
	for i, g := range sc.groups {
		if g.System() == sys {
			sc.groups = append(sc.groups[:i], sc.groups[i+1:]...)
			return true
		}
	}
	return false
}

// VisibilityGroups returns the scene's visibility groups in insertion
// order. The returned slice must not be modified by the caller.
func (sc *Scene) VisibilityGroups() []*VisibilityGroup {
	return sc.groups
}
