package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend
	ActionScan
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Window is the part of *glfw.Window the input manager polls
type Window interface {
	GetKey(key glfw.Key) glfw.Action
	GetCursorPos() (x, y float64)
	SetCursorPos(x, y float64)
}

// Snapshot is the input state for a single frame
type Snapshot struct {
	Active [ActionCount]bool
	// Cursor offset from the window centre before re-centring
	CursorDX float64
	CursorDY float64
}

// IsActive reports whether the action was held when the snapshot was taken.
func (s Snapshot) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.Active[action]
}

// ScanActive reports whether the hazard overlay should be shown this frame.
// It is a pure function of the held keys; nothing latches between frames.
func (s Snapshot) ScanActive() bool {
	return s.IsActive(ActionScan)
}

// InputManager maps physical keys to logical actions and polls them once per frame.
// It keeps no per-frame state; each Snapshot reflects only what is held now.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	centerX float64
	centerY float64
}

// NewInputManager creates an InputManager with default key bindings for a
// window of the given size. The cursor is re-centred on that window each poll.
func NewInputManager(width, height int) *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
		centerX:      float64(width / 2),
		centerY:      float64(height / 2),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionStrafeLeft)
	im.BindKey(glfw.KeyD, ActionStrafeRight)
	im.BindKey(glfw.KeySpace, ActionAscend)
	im.BindKey(glfw.KeyLeftShift, ActionDescend)
	im.BindKey(glfw.KeyTab, ActionScan)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// Poll reads the held keys and cursor offset, then re-centres the cursor.
func (im *InputManager) Poll(w Window) Snapshot {
	var active [ActionCount]bool
	for key, actions := range im.keyToActions {
		if w.GetKey(key) != glfw.Press {
			continue
		}
		for _, act := range actions {
			active[act] = true
		}
	}

	x, y := w.GetCursorPos()
	w.SetCursorPos(im.centerX, im.centerY)

	return Snapshot{
		Active:   active,
		CursorDX: x - im.centerX,
		CursorDY: y - im.centerY,
	}
}
