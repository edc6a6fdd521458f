package camera

import (
	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraController defines the per-tick input integration layer for a free-look Camera.
// Window callbacks feed key and cursor events in; Tick turns the accumulated state into
// orientation changes on the Camera and a new fly position.
type CameraController interface {
	// Camera returns the Camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Position returns the controller's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position
	Position() mgl64.Vec3

	// SetPosition sets the world-space position directly.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl64.Vec3)

	// KeyDown marks a key as held. Keys not present in the bindings are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (GLFW compatible)
	KeyDown(keyCode uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - keyCode: the virtual key code (GLFW compatible)
	KeyUp(keyCode uint32)

	// MouseMove records a cursor position. The delta from the previous position is accumulated
	// and applied on the next Tick. The first sample only primes the previous position.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates (y grows downward)
	MouseMove(x, y float64)

	// LookEnabled reports whether cursor movement rotates the camera.
	//
	// Returns:
	//   - bool: true if mouse look is active
	LookEnabled() bool

	// SetLookEnabled enables or disables mouse look. Disabling drops any pending delta.
	//
	// Parameters:
	//   - enabled: whether cursor movement rotates the camera
	SetLookEnabled(enabled bool)

	// Snapshot returns the directional key states derived from the currently held keys.
	//
	// Returns:
	//   - InputSnapshot: forward/backward/right/left states
	Snapshot() InputSnapshot

	// Tick applies pending mouse deltas to the camera and advances the position along the
	// current input direction. Should be called once per engine tick.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Tick(deltaTime float32)

	// MouseSensitivity returns the radians of rotation per pixel of cursor movement.
	//
	// Returns:
	//   - float64: sensitivity in radians per pixel
	MouseSensitivity() float64

	// MoveSpeed returns the horizontal movement speed.
	//
	// Returns:
	//   - float64: world units per second
	MoveSpeed() float64

	// VerticalSpeed returns the ascend/descend speed.
	//
	// Returns:
	//   - float64: world units per second
	VerticalSpeed() float64

	// KeyBindings returns the key codes mapped to each movement direction.
	//
	// Returns:
	//   - KeyBindings: the active bindings
	KeyBindings() KeyBindings
}

// KeyBindings maps movement directions to virtual key codes.
type KeyBindings struct {
	Forward  uint32
	Backward uint32
	Right    uint32
	Left     uint32
	Up       uint32
	Down     uint32
}

// DefaultKeyBindings returns WASD movement with Space/Left Shift for vertical flight.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:  common.KeyW,
		Backward: common.KeyS,
		Right:    common.KeyD,
		Left:     common.KeyA,
		Up:       common.KeySpace,
		Down:     common.KeyLeftShift,
	}
}
