package backend

import (
	"errors"

	"github.com/gogpu/compositor/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// GraphicsBackend is the interface for graphics backends. It abstracts
// where output formats, viewports and GPU devices come from, allowing the
// compositor to run against real GPU surfaces or fully headless.
//
// Backends must be registered via Register() and are selected via Get()
// or Default().
type GraphicsBackend interface {
	// Name returns the backend identifier (e.g. "headless", "wgpu").
	Name() string

	// Init initializes the backend. Must be called before Output or
	// Device are used.
	Init() error

	// Close releases all backend resources. The backend must not be
	// used after Close.
	Close()

	// Output returns the command/device context the compositor
	// snapshots output state from each frame.
	Output() render.OutputSource

	// Device returns GPU device access for render features, or a null
	// handle when the backend has no GPU.
	Device() render.DeviceHandle
}
