package core

// Action is a player intent, independent of the key or button behind it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // flap or swim up
	ActionConfirm        // start from the title screen
	ActionBack           // leave for the menu
	ActionRestart        // new run after game over or from pause
	ActionQuit           // leave the program
	ActionPause          // toggle pause
	actionCount
)

var actionNames = [actionCount]string{"None", "Jump", "Confirm", "Back", "Restart", "Quit", "Pause"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions pressed during one frame. Presses are
// edge-triggered: a held key shows up once, on the frame it went down.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns a frame with nothing pressed.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame with the given actions pressed.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.set |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.set&(1<<a) != 0
}

func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear releases every action, ready for the next frame.
func (f *InputFrame) Clear() {
	f.set = 0
}

// Actions lists the pressed actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
