package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor/cache"
)

// spirvCache memoizes compiled shaders by source hash. naga compiles
// through the native toolchain, which is expensive; hosts that create a
// backend per surface would otherwise recompile identical source on
// every Init.
var spirvCache = cache.NewSharded[uint64, []uint32](32, cache.Uint64Hasher)

// CompileWGSL compiles WGSL source to a SPIR-V word slice. Results are
// cached per source, so repeated compilation of the same shader is a
// lookup. Callers must not modify the returned slice.
func CompileWGSL(source string) ([]uint32, error) {
	key := cache.StringHasher(source)
	if words, ok := spirvCache.Get(key); ok {
		return words, nil
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	spirvCache.Set(key, words)
	return words, nil
}

// createShaderModule creates a HAL shader module from SPIR-V words.
func createShaderModule(device hal.Device, label string, words []uint32) (hal.ShaderModule, error) {
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create shader module %q: %w", label, err)
	}
	return module, nil
}
