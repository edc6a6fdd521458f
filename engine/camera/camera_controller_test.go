package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestNewCameraControllerDefaults(t *testing.T) {
	cc := NewCameraController()
	require.NotNil(t, cc.Camera())
	require.Equal(t, mgl64.Vec3{}, cc.Position())
	require.True(t, cc.LookEnabled())
	require.Equal(t, DefaultKeyBindings(), cc.KeyBindings())
	require.Positive(t, cc.MouseSensitivity())
	require.Positive(t, cc.MoveSpeed())
	require.Positive(t, cc.VerticalSpeed())
}

func TestControllerSnapshotTracksBoundKeys(t *testing.T) {
	cc := NewCameraController()

	cc.KeyDown(common.KeyW)
	cc.KeyDown(common.KeyA)
	cc.KeyDown(common.KeyQ)
	require.Equal(t, InputSnapshot{Forward: true, Left: true}, cc.Snapshot())

	cc.KeyUp(common.KeyW)
	require.Equal(t, InputSnapshot{Left: true}, cc.Snapshot())

	cc.KeyUp(common.KeyA)
	require.True(t, cc.Snapshot().IsZero())
}

func TestControllerTickMovesForward(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(4), WithPosition(1, 2, 3))
	cc.KeyDown(common.KeyW)
	cc.Tick(0.5)
	requireVecInDelta(t, mgl64.Vec3{1, 2, 5}, cc.Position())

	// opposing keys cancel
	cc.KeyDown(common.KeyS)
	cc.Tick(0.5)
	requireVecInDelta(t, mgl64.Vec3{1, 2, 5}, cc.Position())

	cc.KeyUp(common.KeyW)
	cc.KeyUp(common.KeyS)
	cc.KeyDown(common.KeyD)
	cc.Tick(0.25)
	requireVecInDelta(t, mgl64.Vec3{0, 2, 5}, cc.Position())
}

func TestControllerVerticalMovement(t *testing.T) {
	cc := NewCameraController(WithVerticalSpeed(2))
	cc.KeyDown(common.KeySpace)
	cc.Tick(1)
	requireVecInDelta(t, mgl64.Vec3{0, 2, 0}, cc.Position())

	cc.KeyDown(common.KeyLeftShift)
	cc.Tick(1)
	requireVecInDelta(t, mgl64.Vec3{0, 2, 0}, cc.Position())

	cc.KeyUp(common.KeySpace)
	cc.Tick(0.5)
	requireVecInDelta(t, mgl64.Vec3{0, 1, 0}, cc.Position())
}

func TestControllerMouseLook(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(0.01))
	c := cc.Camera()

	// first sample only primes the cursor
	cc.MouseMove(100, 100)
	cc.Tick(0)
	require.Equal(t, 0.0, c.YawAngle())

	cc.MouseMove(110, 100)
	cc.MouseMove(120, 95)
	cc.Tick(0)
	require.InDelta(t, -0.2, c.YawAngle(), 1e-12)
	require.InDelta(t, 0.05, c.PitchAngle(), 1e-12)

	// deltas are consumed by Tick
	cc.Tick(0)
	require.InDelta(t, -0.2, c.YawAngle(), 1e-12)

	// turning right moves the forward direction toward the strafe-right direction
	right := NewCamera().InputSnapshotToInputDirection(false, false, true, false)
	forward := c.InputSnapshotToInputDirection(true, false, false, false)
	require.Positive(t, forward.Dot(right))
}

func TestControllerMouseLookClampsPitch(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(1))
	cc.MouseMove(0, 0)
	cc.MouseMove(0, -10000)
	cc.Tick(0.016)
	require.Equal(t, MaxPitch, cc.Camera().PitchAngle())
}

func TestControllerLookDisabled(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(0.01))
	cc.MouseMove(0, 0)
	cc.MouseMove(5, 5)
	cc.SetLookEnabled(false)
	require.False(t, cc.LookEnabled())

	cc.MouseMove(50, 50)
	cc.MouseMove(80, 90)
	cc.Tick(0)
	require.Equal(t, 0.0, cc.Camera().YawAngle())
	require.Equal(t, 0.0, cc.Camera().PitchAngle())

	// re-enabling re-primes so the jump is not applied
	cc.SetLookEnabled(true)
	cc.MouseMove(500, 500)
	cc.MouseMove(501, 500)
	cc.Tick(0)
	require.InDelta(t, -0.01, cc.Camera().YawAngle(), 1e-12)
}

func TestControllerCustomBindingsAndCamera(t *testing.T) {
	c := NewCamera(WithLookAngles(0, 0))
	cc := NewCameraController(
		WithCamera(c),
		WithKeyBindings(KeyBindings{
			Forward:  common.KeyUp,
			Backward: common.KeyDown,
			Right:    common.KeyRight,
			Left:     common.KeyLeft,
			Up:       common.KeyE,
			Down:     common.KeyQ,
		}),
	)
	require.Same(t, c, cc.Camera())

	cc.KeyDown(common.KeyW)
	require.True(t, cc.Snapshot().IsZero())

	cc.KeyDown(common.KeyUp)
	require.Equal(t, InputSnapshot{Forward: true}, cc.Snapshot())
}
