package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGPULookUniformMarshal(t *testing.T) {
	c := NewCamera(WithLookAngles(0.5, -0.25))
	u := c.GPUUniform()
	require.Equal(t, 32, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 32)

	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	look := c.LookDirection()
	require.Equal(t, float32(look[0]), f(0))
	require.Equal(t, float32(look[1]), f(4))
	require.Equal(t, float32(look[2]), f(8))
	require.Equal(t, float32(0.5), f(12))
	require.Equal(t, []float32{0, 1, 0}, []float32{f(16), f(20), f(24)})
	require.Equal(t, float32(-0.25), f(28))
}

func TestGPULookUniformSource(t *testing.T) {
	require.Contains(t, GPULookUniformSource, "struct LookUniform")
	require.Contains(t, GPULookUniformSource, "look_direction: vec3<f32>")
}
