// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the data model of the frame orchestrator: render
// stages, render views, render features, the render system that registers
// them, and the per-scene visibility cache.
//
// # Stages and views
//
// A [Stage] is a named, sorted bucket identifying a pass (opaque,
// transparent, shadow caster). A [View] is one camera's participation in a
// subset of stages for a single frame; its stage associations are cleared
// at the start of every frame and repopulated during Collect.
//
// # Features
//
// A [Feature] translates scene objects of one kind into renderable items.
// Features are registered on a [System] in order, and every frame phase
// fans out to them in registration order.
//
// # Visibility
//
// A [VisibilityGroup] binds one [Scene] to one [System] and caches which
// objects are visible to which views this frame. Its backing storage is
// reused across frames; Reset clears content without releasing it.
//
// # Context
//
// A [Context] is the per-frame value threaded through every phase call.
// It carries the current scene, render system, visibility group, camera
// slots, and the output/viewport snapshot taken at the start of the frame.
package render
