// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"
)

// recordFeature logs every phase call into a shared trace and can be
// told to fail in one specific phase.
type recordFeature struct {
	name   string
	trace  *[]string
	failOn string
	err    error
}

func (f *recordFeature) record(phase string) error {
	*f.trace = append(*f.trace, f.name+":"+phase)
	if f.failOn == phase {
		return f.err
	}
	return nil
}

func (f *recordFeature) Initialize(*Context) error { return f.record("initialize") }
func (f *recordFeature) Collect(*Context) error    { return f.record("collect") }
func (f *recordFeature) Extract(*Context) error    { return f.record("extract") }
func (f *recordFeature) Prepare(*Context) error    { return f.record("prepare") }
func (f *recordFeature) Flush(*Context) error      { return f.record("flush") }
func (f *recordFeature) Reset()                    { _ = f.record("reset") }
func (f *recordFeature) Dispose()                  { _ = f.record("dispose") }

func newRecordFeature(name string, trace *[]string) *recordFeature {
	return &recordFeature{name: name, trace: trace, err: errors.New(name + " failed")}
}

func TestStageListRejectsNil(t *testing.T) {
	var l StageList
	a := NewStage("A", "g", SortByState)

	if err := l.Add(a, nil); !errors.Is(err, ErrNilStage) {
		t.Fatalf("Add(a, nil) = %v, want ErrNilStage", err)
	}
	if l.Len() != 0 {
		t.Errorf("list modified by rejected Add: len = %d, want 0", l.Len())
	}
	if err := l.Add(a); err != nil {
		t.Fatalf("Add(a) = %v", err)
	}
	if l.Len() != 1 || l.Items()[0] != a {
		t.Errorf("list = %v, want [a]", l.Items())
	}
}

func TestFeatureListRejectsNil(t *testing.T) {
	var l FeatureList
	var trace []string
	f := newRecordFeature("f", &trace)

	if err := l.Add(f, nil); !errors.Is(err, ErrNilFeature) {
		t.Fatalf("Add(f, nil) = %v, want ErrNilFeature", err)
	}
	if l.Len() != 0 {
		t.Errorf("list modified by rejected Add: len = %d, want 0", l.Len())
	}
}

func TestSystemPhaseFanOutOrder(t *testing.T) {
	var trace []string
	sys := NewSystem()
	if err := sys.Features.Add(newRecordFeature("a", &trace), newRecordFeature("b", &trace)); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext()
	phases := []struct {
		name string
		run  func() error
	}{
		{"collect", func() error { return sys.Collect(ctx) }},
		{"extract", func() error { return sys.Extract(ctx) }},
		{"prepare", func() error { return sys.Prepare(ctx) }},
		{"flush", func() error { return sys.Flush(ctx) }},
	}
	for _, p := range phases {
		trace = trace[:0]
		if err := p.run(); err != nil {
			t.Fatalf("%s: %v", p.name, err)
		}
		want := []string{"a:" + p.name, "b:" + p.name}
		if len(trace) != 2 || trace[0] != want[0] || trace[1] != want[1] {
			t.Errorf("%s trace = %v, want %v", p.name, trace, want)
		}
	}
}

func TestSystemPhaseStopsAtFirstError(t *testing.T) {
	var trace []string
	a := newRecordFeature("a", &trace)
	a.failOn = "extract"
	b := newRecordFeature("b", &trace)

	sys := NewSystem()
	if err := sys.Features.Add(a, b); err != nil {
		t.Fatal(err)
	}
	if err := sys.Extract(NewContext()); !errors.Is(err, a.err) {
		t.Fatalf("Extract = %v, want %v", err, a.err)
	}
	for _, call := range trace {
		if call == "b:extract" {
			t.Error("feature after the failing one was still called")
		}
	}
}

func TestSystemZeroFeaturesNoOp(t *testing.T) {
	sys := NewSystem()
	ctx := NewContext()
	for _, err := range []error{
		sys.Initialize(ctx), sys.Collect(ctx), sys.Extract(ctx),
		sys.Prepare(ctx), sys.Flush(ctx),
	} {
		if err != nil {
			t.Fatalf("empty system phase returned %v", err)
		}
	}
	sys.Reset()
	if !sys.Initialized() {
		t.Error("Initialize did not mark the system initialized")
	}
}

func TestSystemAddViewDedupes(t *testing.T) {
	sys := NewSystem()
	v := NewView("main")

	sys.AddView(nil)
	sys.AddView(v)
	sys.AddView(v)
	if len(sys.Views) != 1 {
		t.Fatalf("Views len = %d, want 1", len(sys.Views))
	}
}

func TestSystemClearViewsClearsStages(t *testing.T) {
	sys := NewSystem()
	v := NewView("main")
	if err := v.AddStage(NewStage("Opaque", "g", SortByState)); err != nil {
		t.Fatal(err)
	}
	sys.AddView(v)

	sys.ClearViews()
	if len(sys.Views) != 0 {
		t.Errorf("Views len = %d, want 0", len(sys.Views))
	}
	if len(v.Stages()) != 0 {
		t.Errorf("view stages survived ClearViews: %v", v.Stages())
	}
}

func TestSystemDisposeIdempotent(t *testing.T) {
	var trace []string
	sys := NewSystem()
	if err := sys.Features.Add(newRecordFeature("f", &trace)); err != nil {
		t.Fatal(err)
	}

	sys.Dispose()
	sys.Dispose()
	disposes := 0
	for _, call := range trace {
		if call == "f:dispose" {
			disposes++
		}
	}
	if disposes != 1 {
		t.Errorf("feature disposed %d times, want 1", disposes)
	}
	if !sys.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
}

func TestSystemResetFansOut(t *testing.T) {
	var trace []string
	sys := NewSystem()
	if err := sys.Features.Add(newRecordFeature("a", &trace), newRecordFeature("b", &trace)); err != nil {
		t.Fatal(err)
	}
	sys.Reset()
	want := []string{"a:reset", "b:reset"}
	if len(trace) != 2 || trace[0] != want[0] || trace[1] != want[1] {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}
