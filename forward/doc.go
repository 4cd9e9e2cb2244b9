// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package forward provides concrete renderer-chain links and a reference
// mesh feature for the compositor.
//
// [ForwardRenderer] renders a single persistent view over a fixed stage
// set. [CameraRenderer] creates one view per filled camera slot and can
// delegate submission to a composed single-view renderer. [MeshFeature]
// exercises every frame phase: it extracts visible objects into
// per-(view, stage) item lists, sorts each list by the stage's sort
// policy against the view's own camera, and submits it during Draw.
package forward
