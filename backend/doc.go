// Package backend provides a pluggable graphics backend abstraction.
//
// A backend supplies the command/device context the compositor snapshots
// at the start of every frame: the current output formats and viewport,
// plus GPU device access for render features that submit real work.
//
// # Backend Registration
//
// Backends register via init() functions and are selected at runtime.
// The headless backend is always available:
//
//	import _ "github.com/gogpu/compositor/backend/headless"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request a
// specific backend by name:
//
//	b := backend.Default()
//	if err := b.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	ctx := render.NewContext()
//	ctx.Output = b.Output()
//	ctx.Device = b.Device()
//
// # Available Backends
//
//   - "headless": no GPU, fixed output description (always available)
//   - "wgpu": GPU via gogpu/wgpu
package backend
