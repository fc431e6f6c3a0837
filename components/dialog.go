package components

import "github.com/yohamta/donburi"

type DialogState int

const (
	DialogIdle DialogState = iota
	DialogDelivering
	DialogExhaustedIdle
	DialogExhaustedDelivering
)

func (s DialogState) String() string {
	switch s {
	case DialogIdle:
		return "idle"
	case DialogDelivering:
		return "delivering"
	case DialogExhaustedIdle:
		return "exhausted-idle"
	case DialogExhaustedDelivering:
		return "exhausted-delivering"
	}
	return "unknown"
}

type EmissionKind int

const (
	EmitNone EmissionKind = iota
	EmitLine
	EmitFinished
	EmitExhaustedLine
)

// DialogEmission is what one Talk call produced.
type DialogEmission struct {
	Kind EmissionKind
	Text string
}

// DialogData walks an NPC through its lines once, then answers every other
// Talk with the exhausted line.
type DialogData struct {
	Lines         []string
	ExhaustedLine string

	cursor    int
	talking   bool
	exhausted bool
	busy      bool
}

func NewDialog(lines []string, exhaustedLine string) DialogData {
	return DialogData{Lines: lines, ExhaustedLine: exhaustedLine}
}

// Talk advances the conversation by one step.
func (d *DialogData) Talk() DialogEmission {
	if d.busy {
		panic("components: DialogData.Talk called reentrantly")
	}
	d.busy = true
	defer func() { d.busy = false }()

	switch {
	case d.cursor < len(d.Lines):
		line := d.Lines[d.cursor]
		d.talking = true
		d.cursor++
		return DialogEmission{Kind: EmitLine, Text: line}
	case !d.exhausted:
		d.exhausted = true
		d.talking = false
		return DialogEmission{Kind: EmitFinished}
	case !d.talking:
		d.talking = true
		return DialogEmission{Kind: EmitExhaustedLine, Text: d.ExhaustedLine}
	default:
		d.talking = false
		return DialogEmission{Kind: EmitNone}
	}
}

func (d *DialogData) IsTalking() bool { return d.talking }
func (d *DialogData) Exhausted() bool { return d.exhausted }
func (d *DialogData) Cursor() int     { return d.cursor }

func (d *DialogData) State() DialogState {
	switch {
	case d.exhausted && d.talking:
		return DialogExhaustedDelivering
	case d.exhausted:
		return DialogExhaustedIdle
	case d.talking:
		return DialogDelivering
	}
	return DialogIdle
}

var Dialog = donburi.NewComponentType[DialogData]()
