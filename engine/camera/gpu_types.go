package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULookUniformSource is the canonical WGSL definition of the LookUniform struct.
// Matches GPULookUniform layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/look_uniform.wgsl
var GPULookUniformSource string

// GPULookUniform is the GPU-aligned representation of the camera orientation.
// Matches the WGSL LookUniform struct layout exactly (see GPULookUniformSource).
// Size: 32 bytes (std430 / WGSL aligned).
type GPULookUniform struct {
	LookDirection [3]float32 // offset  0: normalized look direction (vec3<f32>)
	Yaw           float32    // offset 12: yaw in radians, packed into the vec3 tail (f32)
	UpDirection   [3]float32 // offset 16: world up direction (vec3<f32>)
	Pitch         float32    // offset 28: pitch in radians (f32)
}

// Size returns the size of the GPULookUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULookUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULookUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULookUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.LookDirection[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Yaw))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.UpDirection[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.Pitch))
	return buf
}
