package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/compositor/render"
)

// fakeBackend is a registry test double.
type fakeBackend struct {
	name    string
	initErr error
	inited  bool
	closed  bool
}

func (f *fakeBackend) Name() string { return f.name }
func (f *fakeBackend) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inited = true
	return nil
}
func (f *fakeBackend) Close()                      { f.closed = true }
func (f *fakeBackend) Output() render.OutputSource { return nil }
func (f *fakeBackend) Device() render.DeviceHandle { return render.NullDeviceHandle{} }

func TestRegistry(t *testing.T) {
	const name = "test-registry"
	defer Unregister(name)

	if IsRegistered(name) {
		t.Fatal("backend registered before Register")
	}
	Register(name, func() GraphicsBackend { return &fakeBackend{name: name} })

	if !IsRegistered(name) {
		t.Error("IsRegistered = false after Register")
	}
	b := Get(name)
	if b == nil || b.Name() != name {
		t.Fatalf("Get(%q) = %v", name, b)
	}

	found := false
	for _, n := range Available() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}

	Unregister(name)
	if Get(name) != nil {
		t.Error("Get returned a backend after Unregister")
	}
}

func TestDefaultPrefersWGPU(t *testing.T) {
	defer Unregister(BackendWGPU)
	defer Unregister(BackendHeadless)

	Register(BackendHeadless, func() GraphicsBackend { return &fakeBackend{name: BackendHeadless} })
	if b := Default(); b == nil || b.Name() != BackendHeadless {
		t.Fatalf("Default = %v, want headless", b)
	}

	Register(BackendWGPU, func() GraphicsBackend { return &fakeBackend{name: BackendWGPU} })
	if b := Default(); b == nil || b.Name() != BackendWGPU {
		t.Fatalf("Default = %v, want wgpu once registered", b)
	}
}

func TestInitDefault(t *testing.T) {
	defer Unregister(BackendWGPU)

	Register(BackendWGPU, func() GraphicsBackend { return &fakeBackend{name: BackendWGPU} })
	b, err := InitDefault()
	if err != nil {
		t.Fatal(err)
	}
	if !b.(*fakeBackend).inited {
		t.Error("InitDefault returned an uninitialized backend")
	}

	injected := errors.New("init failed")
	Register(BackendWGPU, func() GraphicsBackend { return &fakeBackend{name: BackendWGPU, initErr: injected} })
	if _, err := InitDefault(); !errors.Is(err, injected) {
		t.Errorf("InitDefault = %v, want %v", err, injected)
	}
}
