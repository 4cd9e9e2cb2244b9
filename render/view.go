// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// View is one camera's association with a subset of stages for a single
// frame. Views are ephemeral per-frame data: stage associations never
// persist across frames — the compositor clears them at the start of
// every draw and the top-level renderer repopulates them during Collect.
type View struct {
	// Name identifies the view for diagnostics.
	Name string

	// Camera is the viewpoint used for culling and distance sorting.
	// A nil camera makes every scene object visible to the view.
	Camera *Camera

	stages []*Stage
}

// NewView creates a view with the given name.
func NewView(name string) *View {
	return &View{Name: name}
}

// AddStage appends a stage this view participates in. Nil stages are
// rejected; a stage already present is not added twice.
func (v *View) AddStage(s *Stage) error {
	if s == nil {
		return ErrNilStage
	}
	for _, existing := range v.stages {
		if existing == s {
			return nil
		}
	}
	v.stages = append(v.stages, s)
	return nil
}

// Stages returns the stages the view participates in, in insertion order.
// The returned slice must not be modified by the caller.
func (v *View) Stages() []*Stage {
	return v.stages
}

// HasStage reports whether the view participates in the given stage.
func (v *View) HasStage(s *Stage) bool {
	for _, existing := range v.stages {
		if existing == s {
			return true
		}
	}
	return false
}

// ClearStages removes all stage associations. Backing storage is kept for
// reuse by the next frame.
func (v *View) ClearStages() {
	v.stages = v.stages[:0]
}
