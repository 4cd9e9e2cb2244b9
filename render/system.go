// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// System is the feature/stage registry and phase driver of the
// orchestrator. It holds the authoritative, insertion-ordered collections
// of stages and features — both exposed for external configuration, both
// order-significant — plus the mutable per-frame view list.
//
// Phase methods are pure fan-out calls to every registered feature in
// registration order and are safe to call with zero features.
//
// A System is exclusively owned by one compositor and mutated only during
// that compositor's Draw call.
type System struct {
	// Stages is the ordered, null-free stage registry.
	Stages StageList

	// Features is the ordered, null-free feature registry.
	Features FeatureList

	// Views is the mutable per-frame view list. It never carries state
	// over between frames: the compositor clears it at the start of
	// every draw, before the top-level renderer repopulates it.
	Views []*View

	initialized bool
	disposed    bool
}

// NewSystem creates an empty render system.
func NewSystem() *System {
	return &System{}
}

// Initialized reports whether Initialize has completed.
func (s *System) Initialized() bool { return s.initialized }

// Initialize initializes every registered feature with the given context.
// Must be called before the first frame.
func (s *System) Initialize(ctx *Context) error {
	for _, f := range s.Features.Items() {
		if err := f.Initialize(ctx); err != nil {
			return err
		}
	}
	s.initialized = true
	return nil
}

// Dispose releases all registered features. Idempotent; the system must
// not drive frames afterwards.
func (s *System) Dispose() {
	if s.disposed {
		return
	}
	for _, f := range s.Features.Items() {
		f.Dispose()
	}
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *System) Disposed() bool { return s.disposed }

// AddView appends a view to the per-frame view list. Nil views are
// ignored; a view already present this frame is not added twice.
func (s *System) AddView(v *View) {
	if v == nil {
		return
	}
	for _, existing := range s.Views {
		if existing == v {
			return
		}
	}
	s.Views = append(s.Views, v)
}

// ClearViews clears every view's stage associations, then empties the
// view list. Backing storage is kept for the next frame.
func (s *System) ClearViews() {
	for _, v := range s.Views {
		v.ClearStages()
	}
	s.Views = s.Views[:0]
}

// Collect runs the collect phase over all features.
func (s *System) Collect(ctx *Context) error {
	for _, f := range s.Features.Items() {
		if err := f.Collect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Extract runs the extract phase over all features.
func (s *System) Extract(ctx *Context) error {
	for _, f := range s.Features.Items() {
		if err := f.Extract(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Prepare runs the prepare phase over all features.
func (s *System) Prepare(ctx *Context) error {
	for _, f := range s.Features.Items() {
		if err := f.Prepare(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Flush runs the flush phase over all features.
func (s *System) Flush(ctx *Context) error {
	for _, f := range s.Features.Items() {
		if err := f.Flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears per-frame feature state. The compositor guarantees exactly
// one Reset per Draw, on every exit path, so a failed frame never leaks
// partial state into the next one.
func (s *System) Reset() {
	for _, f := range s.Features.Items() {
		f.Reset()
	}
}
