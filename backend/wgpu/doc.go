// Package wgpu provides a GPU graphics backend built on gogpu/wgpu.
//
// The backend follows the ecosystem ownership rule: it RECEIVES the HAL
// device and queue from the host application, it does not create its own.
// Hosts that want the backend to own the device can use AcquireDevice to
// obtain one from an adapter first.
//
// Because a working device is required, the wgpu backend does not
// register itself on import. Hosts register it explicitly once they have
// a device:
//
//	b := wgpu.New(wgpu.Config{Device: dev, Queue: queue})
//	backend.Register(backend.BackendWGPU, func() backend.GraphicsBackend {
//		return b
//	})
package wgpu
