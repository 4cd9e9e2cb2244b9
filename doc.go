// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor drives the per-frame orchestration of a real-time
// 3D renderer.
//
// # Overview
//
// A [Compositor] owns one [render.System] (the registry of render stages
// and render features) and is invoked once per frame by the host engine.
// Each frame runs a fixed sequence of phases over the registered features:
//
//	Collect → Extract → Prepare → Draw → Flush
//
// Collect enumerates views and visible objects, Extract snapshots
// per-frame render data out of the live scene, Prepare sorts items within
// each stage according to the stage's sort mode, Draw submits the work
// through the pluggable top-level renderer, and Flush performs end-of-frame
// bookkeeping. Whatever happens inside the phases, the render system is
// reset before Draw returns, so a failing frame never corrupts the next one.
//
// # Quick Start
//
//	main := render.NewStage("Main", "Opaque", render.SortByState)
//
//	comp := compositor.New()
//	comp.RenderSystem().Stages.Add(main)
//	comp.RenderSystem().Features.Add(forward.NewMeshFeature())
//	comp.SetTopLevel(forward.NewForwardRenderer("main", main))
//
//	ctx := render.NewContext()
//	ctx.Scene = sc
//	ctx.Output = backendOutput
//
//	if err := comp.Initialize(ctx); err != nil {
//		log.Fatal(err)
//	}
//	for running {
//		if err := comp.Draw(ctx); err != nil {
//			log.Printf("frame failed: %v", err)
//		}
//	}
//	comp.Destroy()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Compositor, render.System, render.Stage, render.View
//   - Culling: render.Scene, render.VisibilityGroup, render.Frustum
//   - Renderers: forward (single-view and camera-slot driven chains)
//   - Backends: backend (registry), backend/headless, backend/wgpu
//
// # Logging
//
// By default the package produces no log output. Call [SetLogger] to
// enable structured logging via log/slog.
package compositor
