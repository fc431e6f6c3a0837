package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Ground   = donburi.NewTag().SetName("Ground")
	Wall     = donburi.NewTag().SetName("Wall")
	NPC      = donburi.NewTag().SetName("NPC")
	Item     = donburi.NewTag().SetName("Item")
	Pushable = donburi.NewTag().SetName("Pushable")
)

// Resolv tags for physics collision and query masks
const (
	ResolvSolid    = "solid"
	ResolvGround   = "ground"
	ResolvWall     = "wall"
	ResolvPlayer   = "player"
	ResolvNPC      = "npc"
	ResolvItem     = "item"
	ResolvPushable = "pushable"
)
