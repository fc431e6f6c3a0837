// Package game assembles a playable level: the ECS world, the scheduler and
// the player controller. It has no rendering and runs headless.
package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/hollowvale/assets"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/level"
	"github.com/automoto/hollowvale/physics"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/automoto/hollowvale/systems"
	"github.com/automoto/hollowvale/systems/factory"
	"github.com/automoto/hollowvale/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Session is one running level.
type Session struct {
	World      donburi.World
	Level      *level.Level
	Shared     *world.Shared
	Registry   *world.Registry
	Controller *systems.PlayerController
	Scheduler  *scheduler.Scheduler

	cfg    *config.Config
	deps   systems.Deps
	source input.Source
	log    logrus.FieldLogger
}

// LoadLevel reads the configured TMX file, or the embedded intro level when
// no path is set.
func LoadLevel(cfg config.LevelConfig) (*level.Level, error) {
	if cfg.Path == "" {
		return level.Load(assets.Levels(), assets.IntroLevel)
	}
	dir, file := filepath.Split(cfg.Path)
	if dir == "" {
		dir = "."
	}
	return level.Load(os.DirFS(dir), file)
}

// New populates a fresh world from lvl and wires every system onto the
// scheduler. src is polled once per Advance.
func New(cfg *config.Config, lvl *level.Level, src input.Source, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	reg := world.NewRegistry()
	player := factory.Populate(w, reg, cfg, lvl)

	shared, err := world.NewShared(player, world.Masks{
		Ground: cfg.Masks.Ground,
		Wall:   cfg.Masks.Wall,
		Object: cfg.Masks.Object,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil, fmt.Errorf("level %s: no collision space", lvl.Name)
	}
	queries := physics.NewWorld(components.Space.Get(spaceEntry))

	sched := scheduler.New(cfg.Scheduler.FixedStep, cfg.Scheduler.MaxFixedSteps)
	deps := systems.Deps{
		Shared:   shared,
		Registry: reg,
		Queries:  queries,
		Contacts: queries,
		Timers:   sched.Timers(),
		Config:   cfg,
		Log:      log,
	}

	s := &Session{
		World:      w,
		Level:      lvl,
		Shared:     shared,
		Registry:   reg,
		Controller: systems.NewPlayerController(w, deps),
		Scheduler:  sched,
		cfg:        cfg,
		deps:       deps,
		source:     src,
		log:        log.WithField("level", lvl.Name),
	}

	systems.SubscribeDialogBox(w, cfg.Dialog.FadeDuration)
	systems.ItemCollectedEvents.Subscribe(w, s.onItemCollected)

	sched.OnVariableTick(s.variableTick)
	sched.OnFixedTick(s.fixedTick)

	s.log.WithFields(logrus.Fields{
		"npcs":      len(lvl.NPCs),
		"items":     len(lvl.Items),
		"pushables": len(lvl.Pushables),
		"colliders": reg.Len(),
	}).Info("level ready")
	return s, nil
}

// Advance runs one rendered frame of length frame and returns how many
// fixed steps it took.
func (s *Session) Advance(frame time.Duration) int {
	steps := s.Scheduler.Advance(frame)
	systems.UpdateCamera(s.World, s.Shared, s.cfg.Window)
	return steps
}

func (s *Session) variableTick(t scheduler.Tick) {
	systems.UpdateInput(s.World, s.source)
	if in, ok := components.Input.First(s.World); ok {
		systems.UpdateDebug(s.World, &components.Input.Get(in).State)
	}
	s.Controller.VariableTick(t)
	systems.DispatchEvents(s.World)
}

func (s *Session) fixedTick(t scheduler.Tick) {
	s.Controller.FixedTick(t)
	systems.UpdatePhysics(s.World, s.cfg.Physics, t.Delta)
	systems.UpdateContacts(s.World, s.deps)
	systems.DispatchEvents(s.World)
	systems.UpdateAnimators(s.World)
	systems.UpdateDialogBox(s.World, t.Delta)
}

func (s *Session) onItemCollected(_ donburi.World, ev systems.ItemCollectedEvent) {
	count := 0
	if ev.Inventory.Valid() {
		count = len(components.Inventory.Get(ev.Inventory).Items)
	}
	s.log.WithFields(logrus.Fields{"item": ev.Name, "carried": count}).Debug("inventory updated")
}

// Player is the controlled entity.
func (s *Session) Player() *donburi.Entry { return s.Shared.Player() }

// Destroy removes an entity along with its timers and collider.
func (s *Session) Destroy(e *donburi.Entry) {
	systems.DestroyEntity(s.World, e, s.Scheduler.Timers(), s.Registry)
}

// DebugEnabled reports whether the probe overlay is on.
func (s *Session) DebugEnabled() bool {
	e, ok := components.Debug.First(s.World)
	if !ok {
		return false
	}
	return components.Debug.Get(e).Enabled
}

// SetDebug turns the probe overlay on or off.
func (s *Session) SetDebug(on bool) {
	if e, ok := components.Debug.First(s.World); ok {
		components.Debug.Get(e).Enabled = on
	}
}
