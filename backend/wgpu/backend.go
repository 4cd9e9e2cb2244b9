package wgpu

import (
	_ "embed"
	"errors"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/backend"
	"github.com/gogpu/compositor/render"
)

//go:embed shaders/depth.wgsl
var depthShaderWGSL string

// ErrNoDevice is returned by Init when no HAL device was configured.
var ErrNoDevice = errors.New("wgpu: device and queue are required")

// Config configures the wgpu backend.
type Config struct {
	// Device and Queue are the HAL handles supplied by the host.
	Device hal.Device
	Queue  hal.Queue

	// SurfaceFormat is the swapchain color format. Defaults to
	// BGRA8Unorm, the common surface preference.
	SurfaceFormat gputypes.TextureFormat

	// Width and Height are the surface size in pixels.
	Width, Height int

	// SampleCount is the MSAA sample count (0 or 1 = no MSAA).
	SampleCount uint32
}

// Backend is the GPU graphics backend built on gogpu/wgpu.
type Backend struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	format      gputypes.TextureFormat
	sampleCount uint32
	width       float32
	height      float32

	// depthModule is the compiled depth-prepass shader, created at Init
	// so features submitting depth-only passes can share it.
	depthModule hal.ShaderModule
	spirv       []uint32

	initialized bool
}

// New creates a wgpu backend from the given config.
func New(cfg Config) *Backend {
	format := cfg.SurfaceFormat
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	samples := cfg.SampleCount
	if samples == 0 {
		samples = 1
	}
	return &Backend{
		device:      cfg.Device,
		queue:       cfg.Queue,
		format:      format,
		sampleCount: samples,
		width:       float32(cfg.Width),
		height:      float32(cfg.Height),
	}
}

// Name returns "wgpu".
func (b *Backend) Name() string { return backend.BackendWGPU }

// Init compiles and uploads the shared depth-prepass shader module.
// Fails when no device was configured.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device == nil || b.queue == nil {
		return ErrNoDevice
	}
	if b.initialized {
		return nil
	}

	spirv, err := CompileWGSL(depthShaderWGSL)
	if err != nil {
		return err
	}
	b.spirv = spirv

	module, err := createShaderModule(b.device, "depth_prepass", spirv)
	if err != nil {
		return err
	}
	b.depthModule = module
	b.initialized = true

	compositor.Logger().Info("wgpu backend initialized",
		slog.Any("format", b.format),
		slog.Int("spirv_words", len(spirv)))
	return nil
}

// Close destroys the backend's GPU resources. The injected device and
// queue belong to the host and are left alone.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.depthModule != nil {
		b.device.DestroyShaderModule(b.depthModule)
		b.depthModule = nil
	}
	b.initialized = false
}

// Resize updates the reported viewport size.
func (b *Backend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = float32(width)
	b.height = float32(height)
}

// Output returns the backend itself as the output source.
func (b *Backend) Output() render.OutputSource { return b }

// Device returns a device handle reporting the surface format. Full
// gpucontext bridging (device, queue, adapter) is supplied by host
// applications that run on the gpucontext stack; the HAL handles stay
// internal to the backend.
func (b *Backend) Device() render.DeviceHandle {
	return surfaceHandle{format: b.format}
}

// HALDevice returns the injected HAL device for features that encode
// GPU passes directly.
func (b *Backend) HALDevice() hal.Device { return b.device }

// HALQueue returns the injected HAL queue.
func (b *Backend) HALQueue() hal.Queue { return b.queue }

// DepthShaderModule returns the shared depth-prepass shader module, or
// nil before Init.
func (b *Backend) DepthShaderModule() hal.ShaderModule { return b.depthModule }

// OutputDescription reports the configured surface formats.
func (b *Backend) OutputDescription() render.OutputDescription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return render.OutputDescription{
		Format:      b.format,
		DepthFormat: gputypes.TextureFormatDepth32Float,
		SampleCount: b.sampleCount,
	}
}

// Viewport reports the full-surface viewport.
func (b *Backend) Viewport() render.Viewport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return render.Viewport{Width: b.width, Height: b.height}
}

// surfaceHandle is a DeviceHandle that knows the surface format but
// leaves device access to the host's gpucontext integration.
type surfaceHandle struct {
	format gputypes.TextureFormat
}

func (surfaceHandle) Device() gpucontext.Device           { return nil }
func (surfaceHandle) Queue() gpucontext.Queue             { return nil }
func (surfaceHandle) Adapter() gpucontext.Adapter         { return nil }
func (surfaceHandle) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }
func (h surfaceHandle) SurfaceFormat() gputypes.TextureFormat {
	return h.format
}

// Ensure Backend implements the backend and output interfaces.
var (
	_ backend.GraphicsBackend = (*Backend)(nil)
	_ render.OutputSource     = (*Backend)(nil)
	_ render.DeviceHandle     = surfaceHandle{}
)
