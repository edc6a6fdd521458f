package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual mgl64.Vec3) {
	t.Helper()
	require.InDeltaSlice(t, expected[:], actual[:], 1e-9, "expected %v, got %v", expected, actual)
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	require.Equal(t, 0.0, c.YawAngle())
	require.Equal(t, 0.0, c.PitchAngle())
	require.Equal(t, mgl64.Vec3{0, 0, 1}, c.LookDirection())
	require.Equal(t, mgl64.Vec3{0, 1, 0}, c.UpDirection())
}

func TestWithLookAngles(t *testing.T) {
	c := NewCamera(WithLookAngles(math.Pi/2, 3))
	require.Equal(t, math.Pi/2, c.YawAngle())
	require.Equal(t, MaxPitch, c.PitchAngle())
	requireVecInDelta(t, common.YawPitchToVector(math.Pi/2, MaxPitch).Normalize(), c.LookDirection())
}

func TestUpdateLookDirectionAccumulates(t *testing.T) {
	c := NewCamera()
	c.UpdateLookDirection(0.5, 0.25)
	c.UpdateLookDirection(0.5, -0.5)
	require.InDelta(t, 1.0, c.YawAngle(), 1e-12)
	require.InDelta(t, -0.25, c.PitchAngle(), 1e-12)
	requireVecInDelta(t, common.YawPitchToVector(1.0, -0.25), c.LookDirection())
}

func TestYawDoesNotWrap(t *testing.T) {
	c := NewCamera()
	for range 10 {
		c.UpdateLookDirection(math.Pi, 0)
	}
	require.InDelta(t, 10*math.Pi, c.YawAngle(), 1e-9)
	requireVecInDelta(t, mgl64.Vec3{0, 0, 1}, c.LookDirection())
}

func TestPitchClampConvergesToBound(t *testing.T) {
	c := NewCamera()
	c.UpdateLookDirection(0, 1e9)
	require.Equal(t, MaxPitch, c.PitchAngle())
	c.UpdateLookDirection(0, 1e9)
	c.UpdateLookDirection(0, 0.5)
	require.Equal(t, MaxPitch, c.PitchAngle())

	c.UpdateLookDirection(0, -1e9)
	require.Equal(t, MinPitch, c.PitchAngle())
	c.UpdateLookDirection(0, -1e-3)
	require.Equal(t, MinPitch, c.PitchAngle())

	require.InDelta(t, math.Pi/2-0.001, MaxPitch, 1e-15)
	require.InDelta(t, -math.Pi/2+0.001, MinPitch, 1e-15)
}

func TestRandomUpdatesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCamera()
	for i := 0; i < 5000; i++ {
		dYaw := (rng.Float64() - 0.5) * 4
		dPitch := (rng.Float64() - 0.5) * 4
		c.UpdateLookDirection(dYaw, dPitch)

		pitch := c.PitchAngle()
		require.GreaterOrEqual(t, pitch, MinPitch)
		require.LessOrEqual(t, pitch, MaxPitch)

		look := c.LookDirection()
		require.InDelta(t, 1.0, look.Len(), 1e-12)
		requireVecInDelta(t, common.YawPitchToVector(c.YawAngle(), pitch), look)
	}
}

func TestUpdateLookDirectionZeroIsIdempotent(t *testing.T) {
	c := NewCamera(WithLookAngles(0.7, -0.4))
	before := c.LookDirection()
	for range 100 {
		c.UpdateLookDirection(0, 0)
	}
	requireVecInDelta(t, before, c.LookDirection())
	require.Equal(t, 0.7, c.YawAngle())
	require.Equal(t, -0.4, c.PitchAngle())
}

func TestSetLookDirectionInRange(t *testing.T) {
	c := NewCamera()
	c.UpdateLookDirection(4, 0.2)
	c.SetLookDirection(-1.1, 0.9)
	require.Equal(t, -1.1, c.YawAngle())
	require.Equal(t, 0.9, c.PitchAngle())
	requireVecInDelta(t, common.YawPitchToVector(-1.1, 0.9), c.LookDirection())
}

func TestSetLookDirectionClampsBeforeConverting(t *testing.T) {
	c := NewCamera()
	c.SetLookDirection(0.3, math.Pi)
	require.Equal(t, MaxPitch, c.PitchAngle())
	requireVecInDelta(t, common.YawPitchToVector(0.3, MaxPitch), c.LookDirection())

	c.SetLookDirection(0.3, -math.Pi/2)
	require.Equal(t, MinPitch, c.PitchAngle())
	requireVecInDelta(t, common.YawPitchToVector(0.3, MinPitch), c.LookDirection())
}

func TestInputDirectionNoKeys(t *testing.T) {
	c := NewCamera()
	for _, angles := range [][2]float64{{0, 0}, {1.3, 0.8}, {-2, -1.5}, {0, math.Pi}} {
		c.SetLookDirection(angles[0], angles[1])
		require.Equal(t, mgl64.Vec3{}, c.InputSnapshotToInputDirection(false, false, false, false))
	}
}

func TestInputDirectionOpposingKeysCancel(t *testing.T) {
	c := NewCamera()
	for _, angles := range [][2]float64{{0, 0}, {2.2, -0.3}, {-5, 1.5}} {
		c.SetLookDirection(angles[0], angles[1])
		require.Equal(t, mgl64.Vec3{}, c.InputSnapshotToInputDirection(true, true, false, false))
		require.Equal(t, mgl64.Vec3{}, c.InputSnapshotToInputDirection(false, false, true, true))
		require.Equal(t, mgl64.Vec3{}, c.InputSnapshotToInputDirection(true, true, true, true))
	}
}

func TestInputDirectionDefaultFacing(t *testing.T) {
	c := NewCamera()

	require.Equal(t, mgl64.Vec3{0, 0, 1}, c.InputSnapshotToInputDirection(true, false, false, false))
	require.Equal(t, mgl64.Vec3{0, 0, -1}, c.InputSnapshotToInputDirection(false, true, false, false))

	right := c.InputSnapshotToInputDirection(false, false, true, false)
	expected := mgl64.Vec3{0, 0, 1}.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	require.Equal(t, mgl64.Vec3{-1, 0, 0}, expected)
	require.Equal(t, expected, right)
	require.Equal(t, 1.0, right.Len())

	require.Equal(t, mgl64.Vec3{1, 0, 0}, c.InputSnapshotToInputDirection(false, false, false, true))

	diagonal := c.InputSnapshotToInputDirection(true, false, true, false)
	requireVecInDelta(t, mgl64.Vec3{-math.Sqrt2 / 2, 0, math.Sqrt2 / 2}, diagonal)
}

func TestInputDirectionIgnoresPitch(t *testing.T) {
	c := NewCamera(WithLookAngles(0.7, 1.2))
	forward := c.InputSnapshotToInputDirection(true, false, false, false)
	require.Equal(t, 0.0, forward[1])
	require.InDelta(t, 1.0, forward.Len(), 1e-12)
	requireVecInDelta(t, mgl64.Vec3{math.Sin(0.7), 0, math.Cos(0.7)}, forward)

	c.SetLookDirection(0.7, -1.2)
	requireVecInDelta(t, forward, c.InputSnapshotToInputDirection(true, false, false, false))
}

func TestInputDirectionAtClampedPitch(t *testing.T) {
	c := NewCamera()
	c.UpdateLookDirection(math.Pi/2, 100)
	for _, s := range []InputSnapshot{
		{Forward: true},
		{Backward: true, Left: true},
		{Right: true},
	} {
		dir := c.InputDirection(s)
		require.False(t, math.IsNaN(dir[0]) || math.IsNaN(dir[1]) || math.IsNaN(dir[2]))
		require.InDelta(t, 1.0, dir.Len(), 1e-9)
		require.Equal(t, 0.0, dir[1])
	}
	requireVecInDelta(t, mgl64.Vec3{1, 0, 0}, c.InputDirection(InputSnapshot{Forward: true}))
	requireVecInDelta(t, mgl64.Vec3{0, 0, -1}, c.InputDirection(InputSnapshot{Left: true}))
}

func TestInputDirectionDoesNotMutate(t *testing.T) {
	c := NewCamera(WithLookAngles(0.3, 0.2))
	look := c.LookDirection()
	c.InputSnapshotToInputDirection(true, false, true, false)
	require.Equal(t, look, c.LookDirection())
	require.Equal(t, 0.3, c.YawAngle())
	require.Equal(t, 0.2, c.PitchAngle())
}

func TestInputSnapshotAxes(t *testing.T) {
	f, s := InputSnapshot{Forward: true, Left: true}.Axes()
	require.Equal(t, 1.0, f)
	require.Equal(t, -1.0, s)

	f, s = InputSnapshot{Forward: true, Backward: true, Right: true}.Axes()
	require.Equal(t, 0.0, f)
	require.Equal(t, 1.0, s)

	require.True(t, InputSnapshot{}.IsZero())
	require.False(t, InputSnapshot{Backward: true}.IsZero())
}

func TestViewMatrix(t *testing.T) {
	c := NewCamera()
	view := c.ViewMatrix(mgl64.Vec3{0, 0, 0})
	p := view.Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	require.InDeltaSlice(t, []float32{0, 0, -5, 1}, p[:], 1e-5)

	view = c.ViewMatrix(mgl64.Vec3{1, 2, 3})
	p = view.Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	require.InDeltaSlice(t, []float32{0, 0, 0, 1}, p[:], 1e-5)
}
