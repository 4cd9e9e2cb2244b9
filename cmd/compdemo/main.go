// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command compdemo runs the frame orchestrator against the headless
// backend: a small scene, a forward renderer with opaque and transparent
// stages, and the mesh feature, drawn for a handful of frames with debug
// logging enabled.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/backend"
	_ "github.com/gogpu/compositor/backend/headless"
	"github.com/gogpu/compositor/forward"
	"github.com/gogpu/compositor/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "compdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	compositor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	gb, err := backend.InitDefault()
	if err != nil {
		return err
	}
	defer gb.Close()

	opaque := render.NewStage("Opaque", "main", render.SortByState)
	transparent := render.NewStage("Transparent", "main", render.SortBackToFront)

	mesh := forward.NewMeshFeature()
	_ = mesh.AddSelector(render.StageSelectorFunc(func(obj *render.Object) *render.Stage {
		// Objects flagged transparent carry the low state bit.
		if obj.StateKey&1 != 0 {
			return transparent
		}
		return opaque
	}))

	fwd := forward.NewForwardRenderer("main", opaque, transparent)
	fwd.SetCamera(&render.Camera{Position: render.Vec3{Z: -10}})

	comp := compositor.New(compositor.WithTopLevel(fwd))
	defer comp.Destroy()

	if err := comp.RenderSystem().Stages.Add(opaque, transparent); err != nil {
		return err
	}
	if err := comp.RenderSystem().Features.Add(mesh); err != nil {
		return err
	}

	scene := render.NewScene()
	for i := 0; i < 8; i++ {
		scene.AddObject(&render.Object{
			Name:           fmt.Sprintf("cube-%d", i),
			Position:       render.Vec3{X: float32(i%4) * 2, Z: float32(i)},
			BoundingRadius: 1,
			StateKey:       uint64(i%3)<<1 | uint64(i&1),
		})
	}

	ctx := render.NewContext()
	ctx.Scene = scene
	ctx.Device = gb.Device()
	ctx.Output = gb.Output()

	if err := comp.Initialize(ctx); err != nil {
		return err
	}

	for frame := 0; frame < 4; frame++ {
		if err := comp.Draw(ctx); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}

	stats := comp.Stats()
	fmt.Printf("backend=%s output=%dx%d views=%d visible=%d draws=%d\n",
		gb.Name(), int(ctx.Viewport.Width), int(ctx.Viewport.Height),
		stats.Views, stats.Visible, mesh.DrawCalls())
	return nil
}
