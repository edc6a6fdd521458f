package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithCamera attaches an existing Camera instead of creating a default one.
//
// Parameters:
//   - c: the camera to drive
//
// Returns:
//   - CameraControllerOption: functional option to set the camera
func WithCamera(c Camera) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.camera = c
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl64.Vec3{x, y, z}
	}
}

// WithMouseSensitivity sets the mouse look sensitivity.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of cursor movement
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithMoveSpeed sets the horizontal movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: functional option to set move speed
func WithMoveSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithVerticalSpeed sets the ascend/descend speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: functional option to set vertical speed
func WithVerticalSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.verticalSpeed = speed
	}
}

// WithKeyBindings replaces the default WASD bindings.
//
// Parameters:
//   - bindings: key codes for each movement direction
//
// Returns:
//   - CameraControllerOption: functional option to set key bindings
func WithKeyBindings(bindings KeyBindings) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings = bindings
	}
}
