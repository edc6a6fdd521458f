package camera

// InputSnapshot captures the directional key states for a single tick.
// The four flags are independent; forward and backward (or right and left) may both be set,
// in which case they cancel.
type InputSnapshot struct {
	Forward  bool
	Backward bool
	Right    bool
	Left     bool
}

// Axes returns the forward and strafe amounts, each in {-1, 0, 1}.
//
// Returns:
//   - forward: +1 forward, -1 backward, 0 when neither or both are pressed
//   - strafe: +1 right, -1 left, 0 when neither or both are pressed
func (s InputSnapshot) Axes() (forward, strafe float64) {
	return boolAxis(s.Forward, s.Backward), boolAxis(s.Right, s.Left)
}

// IsZero reports whether no directional key is pressed.
func (s InputSnapshot) IsZero() bool {
	return s == InputSnapshot{}
}

func boolAxis(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
