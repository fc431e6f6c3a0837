package animation

// Clip steps through a range of frame indices at a fixed tick rate.
type Clip struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func NewClip(first, last, step int, speed float32) *Clip {
	return &Clip{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

func (c *Clip) Update() {
	c.frameCounter -= 1.0
	if c.frameCounter >= 0.0 {
		return
	}
	c.frameCounter = c.SpeedInTps
	c.frame += c.Step
	if c.frame > c.Last {
		c.Looped = true
		if c.FreezeOnComplete {
			c.frame = c.Last
		} else {
			c.frame = c.First
		}
	}
}

func (c *Clip) Frame() int {
	return c.frame
}

func (c *Clip) Restart() {
	c.frame = c.First
	c.frameCounter = c.SpeedInTps
	c.Looped = false
}
