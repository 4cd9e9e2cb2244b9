// Package headless provides a graphics backend with no GPU behind it.
// It reports a fixed output description and viewport, making the full
// frame pipeline runnable in tests and CI.
//
// The backend registers itself on import:
//
//	import _ "github.com/gogpu/compositor/backend/headless"
package headless

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor/backend"
	"github.com/gogpu/compositor/render"
)

func init() {
	backend.Register(backend.BackendHeadless, func() backend.GraphicsBackend {
		return New(defaultWidth, defaultHeight)
	})
}

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Backend is the headless graphics backend.
type Backend struct {
	width, height float32
	format        gputypes.TextureFormat
	initialized   bool
}

// New creates a headless backend with the given output size in pixels.
func New(width, height int) *Backend {
	return &Backend{
		width:  float32(width),
		height: float32(height),
		format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// Name returns "headless".
func (b *Backend) Name() string { return backend.BackendHeadless }

// Init marks the backend ready. It never fails.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases nothing; the headless backend holds no resources.
func (b *Backend) Close() {
	b.initialized = false
}

// Resize changes the reported viewport size.
func (b *Backend) Resize(width, height int) {
	b.width = float32(width)
	b.height = float32(height)
}

// Output returns the backend itself as the output source.
func (b *Backend) Output() render.OutputSource { return b }

// Device returns a null device handle; headless rendering has no GPU.
func (b *Backend) Device() render.DeviceHandle { return render.NullDeviceHandle{} }

// OutputDescription reports the fixed headless output formats.
func (b *Backend) OutputDescription() render.OutputDescription {
	return render.OutputDescription{
		Format:      b.format,
		DepthFormat: gputypes.TextureFormatDepth32Float,
		SampleCount: 1,
	}
}

// Viewport reports the full-output viewport.
func (b *Backend) Viewport() render.Viewport {
	return render.Viewport{Width: b.width, Height: b.height}
}

// Ensure Backend implements the backend and output interfaces.
var (
	_ backend.GraphicsBackend = (*Backend)(nil)
	_ render.OutputSource     = (*Backend)(nil)
)
