package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// PitchMargin is the minimum angular distance in radians kept between the pitch angle and either pole.
const PitchMargin = 0.001

// Pitch bounds enforced after every angle mutation.
const (
	MaxPitch = math.Pi/2 - PitchMargin
	MinPitch = -math.Pi/2 + PitchMargin
)

type cameraImpl struct {
	mu *sync.Mutex

	// measured in radians
	yaw   float64
	pitch float64

	look mgl64.Vec3
	up   mgl64.Vec3
}

// Camera defines the interface for a free-look camera orientation model.
// The camera owns a yaw and pitch angle and keeps a unit look direction derived from them.
// The up direction is the fixed world vertical (0, 1, 0).
//
// Angles and vectors are kept in double precision. Narrowing to float32 only happens at the
// rendering boundary (ViewMatrix, GPUUniform), so very large accumulated yaw values do not
// lose aiming precision.
type Camera interface {
	// YawAngle returns the accumulated rotation about the vertical axis.
	// The value is not wrapped.
	//
	// Returns:
	//   - float64: yaw in radians
	YawAngle() float64

	// PitchAngle returns the elevation above the horizontal plane.
	// Always within [MinPitch, MaxPitch].
	//
	// Returns:
	//   - float64: pitch in radians
	PitchAngle() float64

	// LookDirection returns the unit vector the camera is facing.
	//
	// Returns:
	//   - mgl64.Vec3: the normalized look direction
	LookDirection() mgl64.Vec3

	// UpDirection returns the fixed world up vector.
	//
	// Returns:
	//   - mgl64.Vec3: always (0, 1, 0)
	UpDirection() mgl64.Vec3

	// UpdateLookDirection adds the given deltas to yaw and pitch, clamps pitch away from the poles,
	// then recomputes the look direction.
	//
	// Parameters:
	//   - deltaYaw: change in yaw in radians
	//   - deltaPitch: change in pitch in radians
	UpdateLookDirection(deltaYaw, deltaPitch float64)

	// SetLookDirection replaces yaw and pitch with absolute angles, clamps pitch away from the poles,
	// then recomputes the look direction.
	//
	// Parameters:
	//   - yaw: new yaw in radians
	//   - pitch: new pitch in radians
	SetLookDirection(yaw, pitch float64)

	// InputSnapshotToInputDirection converts directional key states into a world-space movement
	// direction on the horizontal plane relative to the current facing.
	// Opposing keys cancel. The result is either the zero vector or a unit vector.
	//
	// Parameters:
	//   - forward, backward, right, left: key states
	//
	// Returns:
	//   - mgl64.Vec3: the movement direction
	InputSnapshotToInputDirection(forward, backward, right, left bool) mgl64.Vec3

	// InputDirection is InputSnapshotToInputDirection for a captured InputSnapshot.
	//
	// Parameters:
	//   - s: the key states
	//
	// Returns:
	//   - mgl64.Vec3: the movement direction
	InputDirection(s InputSnapshot) mgl64.Vec3

	// ViewMatrix builds a float32 view matrix looking along the current direction from eye.
	//
	// Parameters:
	//   - eye: world-space camera position
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix(eye mgl64.Vec3) mgl32.Mat4

	// GPUUniform packs the current orientation for upload to a uniform buffer.
	//
	// Returns:
	//   - GPULookUniform: the GPU-aligned orientation
	GPUUniform() GPULookUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera facing +Z with zero yaw and pitch.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:   &sync.Mutex{},
		look: mgl64.Vec3{0, 0, 1},
		up:   common.WorldUp,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) YawAngle() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) PitchAngle() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) LookDirection() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.look
}

func (c *cameraImpl) UpDirection() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) UpdateLookDirection(deltaYaw, deltaPitch float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += deltaYaw
	c.pitch += deltaPitch
	c.clampPitch()
	c.updateLook()
}

func (c *cameraImpl) SetLookDirection(yaw, pitch float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
	c.pitch = pitch
	c.clampPitch()
	c.updateLook()
}

func (c *cameraImpl) InputSnapshotToInputDirection(forward, backward, right, left bool) mgl64.Vec3 {
	return c.InputDirection(InputSnapshot{
		Forward:  forward,
		Backward: backward,
		Right:    right,
		Left:     left,
	})
}

func (c *cameraImpl) InputDirection(s InputSnapshot) mgl64.Vec3 {
	c.mu.Lock()
	look, up := c.look, c.up
	c.mu.Unlock()

	forwardAmount, strafeAmount := s.Axes()

	xzLook := common.SafeNormalize(common.Horizontal(look))
	strafeDirection := xzLook.Cross(up)

	input := xzLook.Mul(forwardAmount).Add(strafeDirection.Mul(strafeAmount))
	return common.SafeNormalize(input)
}

func (c *cameraImpl) ViewMatrix(eye mgl64.Vec3) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := mgl32.Vec3(common.Vec3To32(eye))
	return mgl32.LookAtV(e, e.Add(mgl32.Vec3(common.Vec3To32(c.look))), mgl32.Vec3(common.Vec3To32(c.up)))
}

func (c *cameraImpl) GPUUniform() GPULookUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPULookUniform{
		LookDirection: common.Vec3To32(c.look),
		UpDirection:   common.Vec3To32(c.up),
		Yaw:           float32(c.yaw),
		Pitch:         float32(c.pitch),
	}
}

// clampPitch hard-clamps the pitch angle to [MinPitch, MaxPitch].
// Caller must hold the mutex.
func (c *cameraImpl) clampPitch() {
	c.pitch = common.Clamp(c.pitch, MinPitch, MaxPitch)
}

// updateLook recomputes the normalized look direction from the current angles.
// Must be called after every angle mutation so the two representations never diverge.
// Caller must hold the mutex.
func (c *cameraImpl) updateLook() {
	c.look = common.SafeNormalize(common.YawPitchToVector(c.yaw, c.pitch))
}
