package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionInteract // talk / pick up
	ActionPushPull // hold to drag a pushable object
	ActionAttack
	ActionRoll
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionJump:        "jump",
	ActionInteract:    "interact",
	ActionPushPull:    "push-pull",
	ActionAttack:      "attack",
	ActionRoll:        "roll",
	ActionToggleDebug: "toggle-debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
