// Package input models the pad: eight button lines set by backends,
// sampled once per frame and turned into edge events for the line editor.
package input

import "github.com/mopp/fami-moni/famimoni/bit"

// Button is a pad line, numbered in the order the hardware shifts them out.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	ButtonCount = 8
)

var buttonNames = [ButtonCount]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	if b < ButtonCount {
		return buttonNames[b]
	}
	return "Unknown"
}

// ParseButton maps a button name (case sensitive, as printed by String) to the button.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// State is one sample of all eight lines, bit n set while button n is held.
type State uint8

// Held reports whether b is down in this sample.
func (s State) Held(b Button) bool {
	return bit.IsSet(uint8(b), uint8(s))
}

// With returns s with b held.
func (s State) With(b Button) State {
	return State(bit.Set(uint8(b), uint8(s)))
}

// Without returns s with b released.
func (s State) Without(b Button) State {
	return State(bit.Clear(uint8(b), uint8(s)))
}

// Pad holds the live line levels. Backends press and release buttons at any
// time between frames; the frame loop reads one Snapshot per frame.
type Pad struct {
	lines State
}

func NewPad() *Pad {
	return &Pad{}
}

// Press holds b down.
func (p *Pad) Press(b Button) {
	p.lines = p.lines.With(b)
}

// Release lets b go.
func (p *Pad) Release(b Button) {
	p.lines = p.lines.Without(b)
}

// ReleaseAll lets every button go.
func (p *Pad) ReleaseAll() {
	p.lines = 0
}

// Snapshot returns the current line levels.
func (p *Pad) Snapshot() State {
	return p.lines
}
