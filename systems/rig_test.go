package systems

import (
	"testing"
	"time"

	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/level"
	"github.com/automoto/hollowvale/logger"
	"github.com/automoto/hollowvale/physics"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/automoto/hollowvale/systems/factory"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const floorY = 288

// rig is a small headless level: a floor, the player standing on it at
// x=100 and whatever else a test adds.
type rig struct {
	t      *testing.T
	w      donburi.World
	cfg    *config.Config
	reg    *world.Registry
	space  *resolv.Space
	player *donburi.Entry
	deps   Deps
	ctrl   *PlayerController
	timers *scheduler.TimerQueue
	now    time.Duration
}

func newRig(t *testing.T, mutate ...func(*config.Config)) *rig {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Validate())

	w := donburi.NewWorld()
	reg := world.NewRegistry()
	spaceEntry := factory.CreateSpace(w, 640, 320, cfg.Physics.CellSize)
	space := components.Space.Get(spaceEntry)

	factory.CreateGround(w, reg, level.Rect{X: 0, Y: floorY, W: 640, H: 32})
	player := factory.CreatePlayer(w, reg, cfg, 100, floorY-cfg.Player.CollisionHeight)
	factory.CreateInput(w)
	factory.CreateDebug(w, true)

	shared, err := world.NewShared(player, world.Masks{
		Ground: cfg.Masks.Ground,
		Wall:   cfg.Masks.Wall,
		Object: cfg.Masks.Object,
	})
	require.NoError(t, err)

	queries := physics.NewWorld(space)
	timers := scheduler.NewTimerQueue()
	deps := Deps{
		Shared:   shared,
		Registry: reg,
		Queries:  queries,
		Contacts: queries,
		Timers:   timers,
		Config:   cfg,
		Log:      logger.Discard(),
	}

	return &rig{
		t:      t,
		w:      w,
		cfg:    cfg,
		reg:    reg,
		space:  space,
		player: player,
		deps:   deps,
		ctrl:   NewPlayerController(w, deps),
		timers: timers,
	}
}

func (r *rig) p() *components.PlayerData             { return components.Player.Get(r.player) }
func (r *rig) body() *components.RigidBodyData       { return components.RigidBody.Get(r.player) }
func (r *rig) obj() *resolv.Object                   { return components.Object.Get(r.player).Object }
func (r *rig) anim() *animation.Animator             { return components.Animator.Get(r.player).Animator }
func (r *rig) tick() scheduler.Tick                  { return scheduler.Tick{Now: r.now} }
func (r *rig) objOf(e *donburi.Entry) *resolv.Object { return components.Object.Get(e).Object }

// place teleports the player's collider.
func (r *rig) place(x, y float64) {
	obj := r.obj()
	obj.X, obj.Y = x, y
	obj.Update()
}

// fixed runs n fixed steps the way the scene does.
func (r *rig) fixed(n int) {
	step := r.cfg.Scheduler.FixedStep
	for range n {
		r.now += step
		r.timers.RunDue(r.now)
		r.ctrl.FixedTick(r.tick())
		UpdatePhysics(r.w, r.cfg.Physics, step)
		UpdateContacts(r.w, r.deps)
		DispatchEvents(r.w)
	}
}

// frame pushes one input frame and runs the variable phase.
func (r *rig) frame(f input.Frame) {
	src := &input.Script{Frames: []input.Frame{f}}
	UpdateInput(r.w, src)
	r.ctrl.VariableTick(r.tick())
	DispatchEvents(r.w)
}

func (r *rig) addWall(x, y, w, h float64) *donburi.Entry {
	return factory.CreateWall(r.w, r.reg, level.Rect{X: x, Y: y, W: w, H: h})
}

func (r *rig) addNPC(x float64, lines []string, exhausted string) *donburi.Entry {
	return factory.CreateNPC(r.w, r.reg, level.NPCSpawn{
		Rect:      level.Rect{X: x, Y: floorY - 28, W: 16, H: 28},
		Name:      "Elder",
		Lines:     lines,
		Exhausted: exhausted,
	})
}

func (r *rig) addItem(x float64, name string) *donburi.Entry {
	return factory.CreateItem(r.w, r.reg, level.ItemSpawn{
		Rect: level.Rect{X: x, Y: floorY - 16, W: 12, H: 16},
		Name: name,
	})
}

func (r *rig) addCrate(x float64) *donburi.Entry {
	return factory.CreatePushable(r.w, r.reg, r.cfg.Physics, level.Rect{X: x, Y: floorY - 24, W: 24, H: 24})
}

var (
	pressed  = input.ActionState{Pressed: true, JustPressed: true}
	held     = input.ActionState{Pressed: true}
	released = input.ActionState{JustReleased: true}
	idle     = input.ActionState{}
)
