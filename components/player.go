package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MaxJumpBudget is the jump budget restored on landing. A jump needs more
// than one left, so a full budget allows exactly one jump.
const MaxJumpBudget = 2

type PlayerData struct {
	FacingRight      bool
	Grounded         bool
	WallJumpPossible bool
	JumpBudget       int

	// InteractingWithObject locks movement while an NPC is talking.
	InteractingWithObject bool
	// MovingObject is set while a pushable is jointed to the player.
	MovingObject bool

	Rolling            bool
	RollImpulseApplied bool
	RollTimerArmed     bool

	// RollStartTime is the frame clock reading when the running roll began.
	RollStartTime  time.Duration
	NextRollTime   time.Duration
	NextAttackTime time.Duration

	// Touching is the pushable the player is in contact with, if any.
	Touching *donburi.Entry
	// Attached is the pushable currently jointed to the player.
	Attached *donburi.Entry
	// TalkingTo is the NPC holding the player in conversation.
	TalkingTo *donburi.Entry

	Inventory *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
