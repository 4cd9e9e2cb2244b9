// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"errors"
	"testing"

	"github.com/gogpu/compositor/render"
)

// frameContext builds a context with a scene, system and visibility group
// wired the way the compositor does per frame.
func frameContext(objs ...*render.Object) *render.Context {
	scene := render.NewScene()
	scene.AddObject(objs...)
	sys := render.NewSystem()
	ctx := render.NewContext()
	ctx.Scene = scene
	ctx.RenderSystem = sys
	ctx.Visibility = render.NewVisibilityGroup(scene, sys)
	return ctx
}

func TestForwardRendererCollect(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	transparent := render.NewStage("Transparent", "main", render.SortBackToFront)
	r := NewForwardRenderer("main", opaque, transparent)

	ctx := frameContext(&render.Object{Name: "a"})
	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}

	if len(ctx.RenderSystem.Views) != 1 || ctx.RenderSystem.Views[0] != r.View() {
		t.Fatal("view not registered on the render system")
	}
	if got := r.View().Stages(); len(got) != 2 || got[0] != opaque || got[1] != transparent {
		t.Errorf("view stages = %v, want [Opaque Transparent]", got)
	}
	if !ctx.Visibility.Collected(r.View()) {
		t.Error("view visibility not collected")
	}
	if got := len(ctx.Visibility.Visible(r.View())); got != 1 {
		t.Errorf("visible = %d, want 1", got)
	}
}

func TestForwardRendererCollectRepopulatesAfterClear(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	r := NewForwardRenderer("main", opaque)
	ctx := frameContext()

	for frame := 0; frame < 3; frame++ {
		ctx.RenderSystem.ClearViews()
		ctx.Visibility.Reset()
		if err := r.Collect(ctx); err != nil {
			t.Fatal(err)
		}
		if got := len(r.View().Stages()); got != 1 {
			t.Fatalf("frame %d: view stages = %d, want 1", frame, got)
		}
	}
}

func TestForwardRendererNilStageFailsCollect(t *testing.T) {
	r := NewForwardRenderer("main", nil)
	err := r.Collect(frameContext())
	if !errors.Is(err, render.ErrNilStage) {
		t.Fatalf("Collect = %v, want ErrNilStage", err)
	}
}

func TestForwardRendererSetCamera(t *testing.T) {
	r := NewForwardRenderer("main")
	cam := &render.Camera{}
	r.SetCamera(cam)
	if r.View().Camera != cam {
		t.Error("camera not bound to the view")
	}
}

func TestCameraRendererCollectPerSlot(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	r := NewCameraRenderer(nil, opaque)

	ctx := frameContext(&render.Object{Name: "a"})
	slots := &render.SlotList{}
	if err := slots.Add(
		&render.CameraSlot{Name: "main", Camera: &render.Camera{}},
		&render.CameraSlot{Name: "empty"}, // nil camera: skipped
		&render.CameraSlot{Name: "rear", Camera: &render.Camera{}},
	); err != nil {
		t.Fatal(err)
	}
	ctx.CameraSlots = slots

	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if got := len(ctx.RenderSystem.Views); got != 2 {
		t.Fatalf("views = %d, want 2 (one per filled slot)", got)
	}
	if ctx.RenderSystem.Views[0].Name != "main" || ctx.RenderSystem.Views[1].Name != "rear" {
		t.Errorf("views = [%s %s], want slot order", ctx.RenderSystem.Views[0].Name, ctx.RenderSystem.Views[1].Name)
	}
	for _, v := range ctx.RenderSystem.Views {
		if !ctx.Visibility.Collected(v) {
			t.Errorf("view %s not collected", v.Name)
		}
	}
}

func TestCameraRendererReusesViews(t *testing.T) {
	r := NewCameraRenderer(nil)
	ctx := frameContext()
	slots := &render.SlotList{}
	if err := slots.Add(&render.CameraSlot{Name: "main", Camera: &render.Camera{}}); err != nil {
		t.Fatal(err)
	}
	ctx.CameraSlots = slots

	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	first := ctx.RenderSystem.Views[0]

	ctx.RenderSystem.ClearViews()
	ctx.Visibility.Reset()
	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.RenderSystem.Views[0] != first {
		t.Error("view not reused across frames")
	}
}

func TestCameraRendererNoSlots(t *testing.T) {
	r := NewCameraRenderer(nil)
	ctx := frameContext()
	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.RenderSystem.Views) != 0 {
		t.Error("views registered without camera slots")
	}
}

// delegateRenderer records Draw and Dispose calls.
type delegateRenderer struct {
	draws    int
	disposed int
}

func (d *delegateRenderer) Collect(*render.Context) error { return nil }
func (d *delegateRenderer) Draw(*render.Context) error    { d.draws++; return nil }
func (d *delegateRenderer) Dispose()                      { d.disposed++ }

func TestCameraRendererDelegatesDraw(t *testing.T) {
	child := &delegateRenderer{}
	r := NewCameraRenderer(child)

	if err := r.Draw(frameContext()); err != nil {
		t.Fatal(err)
	}
	if child.draws != 1 {
		t.Errorf("child draws = %d, want 1", child.draws)
	}
	r.Dispose()
	if child.disposed != 1 {
		t.Errorf("child disposes = %d, want 1", child.disposed)
	}
}

func TestCameraRendererUsesContextSingleView(t *testing.T) {
	slot := &delegateRenderer{}
	r := NewCameraRenderer(nil)

	ctx := frameContext()
	ctx.SingleView = slot
	if err := r.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	if slot.draws != 1 {
		t.Errorf("single-view slot draws = %d, want 1", slot.draws)
	}

	// An explicit child takes precedence over the context slot.
	child := &delegateRenderer{}
	withChild := NewCameraRenderer(child)
	if err := withChild.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	if child.draws != 1 || slot.draws != 1 {
		t.Errorf("draws = (child %d, slot %d), want (1, 1)", child.draws, slot.draws)
	}
}

func TestCameraRendererSubmitsPerView(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	mesh := NewMeshFeature()
	r := NewCameraRenderer(nil, opaque)

	ctx := frameContext(&render.Object{Name: "a"})
	if err := ctx.RenderSystem.Features.Add(mesh); err != nil {
		t.Fatal(err)
	}
	slots := &render.SlotList{}
	if err := slots.Add(
		&render.CameraSlot{Name: "front", Camera: &render.Camera{Position: render.Vec3{Z: -10}}},
		&render.CameraSlot{Name: "rear", Camera: &render.Camera{Position: render.Vec3{Z: 10}}},
	); err != nil {
		t.Fatal(err)
	}
	ctx.CameraSlots = slots

	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if err := mesh.Extract(ctx); err != nil {
		t.Fatal(err)
	}
	if err := mesh.Prepare(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(ctx); err != nil {
		t.Fatal(err)
	}

	// One object over two views: each view submits its own single item.
	if got := mesh.DrawCalls(); got != 2 {
		t.Errorf("DrawCalls = %d, want 2 (one per view)", got)
	}
	for _, v := range ctx.RenderSystem.Views {
		if got := len(mesh.Items(v, opaque)); got != 1 {
			t.Errorf("view %s items = %d, want 1", v.Name, got)
		}
	}
}

func TestDrawViewsOrder(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	transparent := render.NewStage("Transparent", "main", render.SortBackToFront)

	ctx := frameContext()
	var calls []string
	drawer := &traceDrawer{calls: &calls}
	if err := ctx.RenderSystem.Features.Add(drawer); err != nil {
		t.Fatal(err)
	}

	r := NewForwardRenderer("main", opaque, transparent)
	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{"main/Opaque", "main/Transparent"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("draw calls = %v, want %v", calls, want)
	}
}

func TestDrawViewsPropagatesError(t *testing.T) {
	opaque := render.NewStage("Opaque", "main", render.SortByState)
	ctx := frameContext()
	injected := errors.New("submit failed")
	drawer := &traceDrawer{err: injected}
	if err := ctx.RenderSystem.Features.Add(drawer); err != nil {
		t.Fatal(err)
	}

	r := NewForwardRenderer("main", opaque)
	if err := r.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(ctx); !errors.Is(err, injected) {
		t.Fatalf("Draw = %v, want wrapped %v", err, injected)
	}
}

// traceDrawer is a minimal feature implementing StageDrawer.
type traceDrawer struct {
	calls *[]string
	err   error
}

func (d *traceDrawer) Initialize(*render.Context) error { return nil }
func (d *traceDrawer) Collect(*render.Context) error    { return nil }
func (d *traceDrawer) Extract(*render.Context) error    { return nil }
func (d *traceDrawer) Prepare(*render.Context) error    { return nil }
func (d *traceDrawer) Flush(*render.Context) error      { return nil }
func (d *traceDrawer) Reset()                           {}
func (d *traceDrawer) Dispose()                         {}

func (d *traceDrawer) DrawStage(_ *render.Context, view *render.View, stage *render.Stage) error {
	if d.err != nil {
		return d.err
	}
	if d.calls != nil {
		*d.calls = append(*d.calls, view.Name+"/"+stage.Name())
	}
	return nil
}
