// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"
)

func TestRootFeatureSelectStage(t *testing.T) {
	opaque := NewStage("Opaque", "g", SortByState)
	transparent := NewStage("Transparent", "g", SortBackToFront)

	var root RootFeature
	err := root.AddSelector(
		StageSelectorFunc(func(obj *Object) *Stage {
			if obj.StateKey&1 != 0 {
				return transparent
			}
			return nil
		}),
		StageSelectorFunc(func(*Object) *Stage { return opaque }),
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := root.SelectStage(&Object{StateKey: 1}); got != transparent {
		t.Errorf("odd key selected %v, want transparent", got)
	}
	if got := root.SelectStage(&Object{StateKey: 2}); got != opaque {
		t.Errorf("even key selected %v, want opaque (fallthrough)", got)
	}

	if err := root.AddSelector(nil); !errors.Is(err, ErrNilSelector) {
		t.Fatalf("AddSelector(nil) = %v, want ErrNilSelector", err)
	}
}

func TestRootFeatureNoSelectors(t *testing.T) {
	var root RootFeature
	if got := root.SelectStage(&Object{}); got != nil {
		t.Errorf("SelectStage with no selectors = %v, want nil", got)
	}
}

func TestRootFeatureFansOutToChildren(t *testing.T) {
	var trace []string
	var root RootFeature
	if err := root.AddFeature(newRecordFeature("a", &trace), newRecordFeature("b", &trace)); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext()
	if err := root.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if err := root.Collect(ctx); err != nil {
		t.Fatal(err)
	}
	root.Reset()
	root.Dispose()

	want := []string{
		"a:initialize", "b:initialize",
		"a:collect", "b:collect",
		"a:reset", "b:reset",
		"a:dispose", "b:dispose",
	}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace[%d] = %s, want %s", i, trace[i], want[i])
		}
	}
}

func TestRootFeatureChildErrorPropagates(t *testing.T) {
	var trace []string
	failing := newRecordFeature("bad", &trace)
	failing.failOn = "prepare"

	var root RootFeature
	if err := root.AddFeature(failing); err != nil {
		t.Fatal(err)
	}
	if err := root.Prepare(NewContext()); !errors.Is(err, failing.err) {
		t.Fatalf("Prepare = %v, want %v", err, failing.err)
	}
}
