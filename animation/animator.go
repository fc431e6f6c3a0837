// Package animation receives controller triggers and parameters and turns
// them into clip playback.
package animation

// Names the controllers send to the sink.
const (
	TriggerAttackSwing   = "attack-swing"
	ParamLocomotionSpeed = "locomotion-speed"
)

// Clip names.
const (
	ClipIdle   = "idle"
	ClipRun    = "run"
	ClipAttack = "attack"
)

// runThreshold is the locomotion speed above which the run clip plays.
const runThreshold = 0.1

// Sink is what gameplay code drives. It never reads back.
type Sink interface {
	SetTrigger(name string)
	SetFloat(name string, v float64)
}

// Animator picks a clip from its parameters. One-shot clips started by a
// trigger play to completion before locomotion takes over again.
type Animator struct {
	clips    map[string]*Clip
	triggers map[string]string // trigger name -> one-shot clip

	floats map[string]float64
	fired  map[string]int

	current string
	oneShot bool
}

func NewAnimator(clips map[string]*Clip) *Animator {
	a := &Animator{
		clips:    clips,
		triggers: map[string]string{TriggerAttackSwing: ClipAttack},
		floats:   make(map[string]float64),
		fired:    make(map[string]int),
	}
	a.play(ClipIdle)
	return a
}

// DefaultClips is the frame layout of the player sheet.
func DefaultClips() map[string]*Clip {
	attack := NewClip(0, 5, 1, 3)
	attack.FreezeOnComplete = true
	return map[string]*Clip{
		ClipIdle:   NewClip(0, 3, 1, 10),
		ClipRun:    NewClip(0, 7, 1, 5),
		ClipAttack: attack,
	}
}

func (a *Animator) SetTrigger(name string) {
	a.fired[name]++
	if clip, ok := a.triggers[name]; ok {
		a.play(clip)
		a.oneShot = true
	}
}

func (a *Animator) SetFloat(name string, v float64) {
	a.floats[name] = v
}

func (a *Animator) Float(name string) float64 {
	return a.floats[name]
}

// Fired returns how many times the trigger has been set.
func (a *Animator) Fired(name string) int {
	return a.fired[name]
}

// Current returns the playing clip name.
func (a *Animator) Current() string {
	return a.current
}

// Frame returns the frame index of the playing clip.
func (a *Animator) Frame() int {
	if c, ok := a.clips[a.current]; ok {
		return c.Frame()
	}
	return 0
}

// Update advances the playing clip by one tick.
func (a *Animator) Update() {
	if a.oneShot {
		c, ok := a.clips[a.current]
		if ok && !c.Looped {
			c.Update()
			return
		}
		a.oneShot = false
	}

	want := ClipIdle
	if a.floats[ParamLocomotionSpeed] > runThreshold {
		want = ClipRun
	}
	if want != a.current {
		a.play(want)
	}
	if c, ok := a.clips[a.current]; ok {
		c.Update()
	}
}

func (a *Animator) play(name string) {
	a.current = name
	if c, ok := a.clips[name]; ok {
		c.Restart()
	}
}
