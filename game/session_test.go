package game

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/hollowvale/assets"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/logger"
	"github.com/automoto/hollowvale/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 20 * time.Millisecond

func repeat(f input.Frame, n int) []input.Frame {
	out := make([]input.Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

func newSession(t *testing.T, frames []input.Frame) *Session {
	t.Helper()
	cfg := config.Default()
	lvl, err := LoadLevel(cfg.Level)
	require.NoError(t, err)

	s, err := New(cfg, lvl, &input.Script{Frames: frames}, logger.Discard())
	require.NoError(t, err)
	return s
}

func TestLoadLevelFromDisk(t *testing.T) {
	data, err := fs.ReadFile(assets.Levels(), assets.IntroLevel)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "copy.tmx")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	lvl, err := LoadLevel(config.LevelConfig{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 960, lvl.Width)

	_, err = LoadLevel(config.LevelConfig{Path: filepath.Join(t.TempDir(), "missing.tmx")})
	assert.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scheduler.FixedStep = 0
	lvl, err := LoadLevel(cfg.Level)
	require.NoError(t, err)

	_, err = New(cfg, lvl, &input.Script{}, logger.Discard())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestPlayerLandsOnSpawnFloor(t *testing.T) {
	s := newSession(t, nil)
	for range 30 {
		assert.Equal(t, 1, s.Advance(frame))
	}

	p := components.Player.Get(s.Player())
	obj := components.Object.Get(s.Player())
	assert.True(t, p.Grounded)
	assert.InDelta(t, 288, obj.Y+obj.H, 1e-6)
	assert.Equal(t, components.MaxJumpBudget, p.JumpBudget)
}

func TestWalkUpAndTalkToElder(t *testing.T) {
	var frames []input.Frame
	frames = append(frames, repeat(input.Frame{}, 15)...)
	frames = append(frames, repeat(input.Frame{Axis: 1}, 32)...)
	frames = append(frames, input.Frame{}, input.Press(config.ActionInteract), input.Frame{})

	s := newSession(t, frames)
	for range len(frames) {
		s.Advance(frame)
	}

	p := components.Player.Get(s.Player())
	assert.True(t, p.InteractingWithObject)

	boxEntry, ok := components.DialogBox.First(s.World)
	require.True(t, ok)
	box := components.DialogBox.Get(boxEntry)
	assert.True(t, box.Visible)
	assert.Equal(t, "Elder", box.Speaker)
	assert.Equal(t, s.Level.NPCs[0].Lines[0], box.Text)

	camEntry, ok := components.Camera.First(s.World)
	require.True(t, ok)
	assert.Equal(t, 320.0, components.Camera.Get(camEntry).Position.X, "camera is held at the level edge")
}

func TestDebugToggle(t *testing.T) {
	s := newSession(t, []input.Frame{input.Press(config.ActionToggleDebug), {}})
	require.False(t, s.DebugEnabled())

	s.Advance(frame)
	assert.True(t, s.DebugEnabled())

	s.SetDebug(false)
	assert.False(t, s.DebugEnabled())
}

func TestDestroyRemovesCollider(t *testing.T) {
	s := newSession(t, nil)
	before := s.Registry.Len()

	var crates []*donburi.Entry
	tags.Pushable.Each(s.World, func(e *donburi.Entry) {
		crates = append(crates, e)
	})
	require.Len(t, crates, len(s.Level.Pushables))

	obj := components.Object.Get(crates[0]).Object
	s.Destroy(crates[0])
	assert.Equal(t, before-1, s.Registry.Len())
	assert.False(t, crates[0].Valid())
	_, ok := s.Registry.Lookup(obj)
	assert.False(t, ok)

	// the level keeps running without it
	assert.NotPanics(t, func() { s.Advance(frame) })
}
