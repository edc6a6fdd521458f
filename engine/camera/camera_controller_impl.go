package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// cameraControllerImpl is the single implementation of CameraController.
// It tracks held keys and cursor movement between ticks and applies both to the
// attached Camera when Tick is called.
type cameraControllerImpl struct {
	mu *sync.Mutex

	camera   Camera
	position mgl64.Vec3

	bindings KeyBindings
	pressed  map[uint32]bool

	// Cursor tracking
	lookEnabled bool
	hasCursor   bool
	lastX       float64
	lastY       float64
	pendingX    float64
	pendingY    float64

	mouseSensitivity float64
	moveSpeed        float64
	verticalSpeed    float64
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new controller with sensible defaults.
// A fresh Camera is created unless one is supplied with WithCamera.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		bindings: DefaultKeyBindings(),
		pressed:  make(map[uint32]bool),

		lookEnabled: true,

		mouseSensitivity: 0.0025,
		moveSpeed:        5.0,
		verticalSpeed:    3.0,
	}

	for _, option := range options {
		option(cc)
	}

	if cc.camera == nil {
		cc.camera = NewCamera()
	}
	return cc
}

// --- internal helpers ---

// isBound reports whether keyCode is mapped to any movement direction.
func (cc *cameraControllerImpl) isBound(keyCode uint32) bool {
	b := cc.bindings
	switch keyCode {
	case b.Forward, b.Backward, b.Right, b.Left, b.Up, b.Down:
		return true
	}
	return false
}

// snapshot builds the directional key states. Caller must hold the mutex.
func (cc *cameraControllerImpl) snapshot() InputSnapshot {
	return InputSnapshot{
		Forward:  cc.pressed[cc.bindings.Forward],
		Backward: cc.pressed[cc.bindings.Backward],
		Right:    cc.pressed[cc.bindings.Right],
		Left:     cc.pressed[cc.bindings.Left],
	}
}

// --- CameraController methods ---

func (cc *cameraControllerImpl) Camera() Camera {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.camera
}

func (cc *cameraControllerImpl) Position() mgl64.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(position mgl64.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = position
}

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.isBound(keyCode) {
		return
	}
	cc.pressed[keyCode] = true
}

func (cc *cameraControllerImpl) KeyUp(keyCode uint32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	delete(cc.pressed, keyCode)
}

func (cc *cameraControllerImpl) MouseMove(x, y float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.hasCursor {
		cc.lastX, cc.lastY = x, y
		cc.hasCursor = true
		return
	}
	if cc.lookEnabled {
		cc.pendingX += x - cc.lastX
		cc.pendingY += y - cc.lastY
	}
	cc.lastX, cc.lastY = x, y
}

func (cc *cameraControllerImpl) LookEnabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lookEnabled
}

func (cc *cameraControllerImpl) SetLookEnabled(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.lookEnabled = enabled
	cc.pendingX, cc.pendingY = 0, 0
	// the cursor usually jumps when capture mode changes
	cc.hasCursor = false
}

func (cc *cameraControllerImpl) Snapshot() InputSnapshot {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.snapshot()
}

func (cc *cameraControllerImpl) Tick(deltaTime float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Screen y grows downward and yaw grows toward +X, which is to the left of a camera
	// facing +Z with up = +Y. Both axes are therefore inverted.
	if cc.pendingX != 0 || cc.pendingY != 0 {
		cc.camera.UpdateLookDirection(-cc.pendingX*cc.mouseSensitivity, -cc.pendingY*cc.mouseSensitivity)
		cc.pendingX, cc.pendingY = 0, 0
	}

	dt := float64(deltaTime)
	if dt <= 0 {
		return
	}

	dir := cc.camera.InputDirection(cc.snapshot())
	cc.position = cc.position.Add(dir.Mul(cc.moveSpeed * dt))

	var vertical float64
	if cc.pressed[cc.bindings.Up] {
		vertical++
	}
	if cc.pressed[cc.bindings.Down] {
		vertical--
	}
	cc.position = cc.position.Add(cc.camera.UpDirection().Mul(vertical * cc.verticalSpeed * dt))
}

func (cc *cameraControllerImpl) MouseSensitivity() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) MoveSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) VerticalSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.verticalSpeed
}

func (cc *cameraControllerImpl) KeyBindings() KeyBindings {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.bindings
}
