package camera

type CameraBuilderOption func(*cameraImpl)

// WithLookAngles sets the camera's initial yaw and pitch.
// The angles go through the same clamp-then-convert path as SetLookDirection.
//
// Parameters:
//   - yaw: initial yaw in radians
//   - pitch: initial pitch in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial orientation
func WithLookAngles(yaw, pitch float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
		c.pitch = pitch
		c.clampPitch()
		c.updateLook()
	}
}
