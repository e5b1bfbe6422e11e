package camera

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
)

// cameraControllerImpl is the implementation of CameraController.
type cameraControllerImpl struct {
	// held records which bound keys are currently pressed
	held map[uint32]bool

	moveSpeed float32 // world units per second
	turnSpeed float32 // radians per second
}

// CameraController turns held keys into camera motion.
//
// Bindings: W/S move forward/back, A/D strafe, E/Q rise/sink, arrow keys turn.
// Key events arrive through KeyDown and KeyUp; Update applies whatever is held for dt seconds.
type CameraController interface {
	// KeyDown records a key press. Unbound keys are ignored.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	//
	// Returns:
	//   - bool: true if the key is bound to a camera action
	KeyDown(keyCode uint32) bool

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the GLFW key code
	KeyUp(keyCode uint32)

	// Update moves and turns cam according to the held keys.
	//
	// Parameters:
	//   - cam: the camera to drive
	//   - dt: elapsed seconds
	//
	// Returns:
	//   - bool: true if cam changed
	Update(cam Camera, dt float32) bool

	// Reset releases every held key.
	Reset()
}

var _ CameraController = &cameraControllerImpl{}

// boundKeys is the set of keys the controller reacts to.
var boundKeys = map[uint32]bool{
	common.KeyW: true, common.KeyS: true,
	common.KeyA: true, common.KeyD: true,
	common.KeyE: true, common.KeyQ: true,
	common.KeyLeft: true, common.KeyRight: true,
	common.KeyUp: true, common.KeyDown: true,
}

// NewCameraController creates a controller with a move speed of 4 units/s and a turn speed of 1.5 rad/s.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		held:      make(map[uint32]bool),
		moveSpeed: 4,
		turnSpeed: 1.5,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) bool {
	if !boundKeys[keyCode] {
		return false
	}
	cc.held[keyCode] = true
	return true
}

func (cc *cameraControllerImpl) KeyUp(keyCode uint32) {
	delete(cc.held, keyCode)
}

func (cc *cameraControllerImpl) Reset() {
	clear(cc.held)
}

func (cc *cameraControllerImpl) Update(cam Camera, dt float32) bool {
	if len(cc.held) == 0 || dt <= 0 {
		return false
	}

	forward := cc.axis(common.KeyW, common.KeyS)
	right := cc.axis(common.KeyD, common.KeyA)
	up := cc.axis(common.KeyE, common.KeyQ)
	// positive yaw turns left
	yaw := cc.axis(common.KeyLeft, common.KeyRight)
	pitch := cc.axis(common.KeyUp, common.KeyDown)

	if forward == 0 && right == 0 && up == 0 && yaw == 0 && pitch == 0 {
		return false
	}

	step := cc.moveSpeed * dt
	turn := cc.turnSpeed * dt
	cam.Rotate(yaw*turn, pitch*turn)
	cam.Move(forward*step, right*step, up*step)
	return true
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func (cc *cameraControllerImpl) axis(positive, negative uint32) float32 {
	var v float32
	if cc.held[positive] {
		v++
	}
	if cc.held[negative] {
		v--
	}
	return v
}
