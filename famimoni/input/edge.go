package input

// Edge is what happened to a button between the previous and current frame.
type Edge int

const (
	Pressed   Edge = iota // up last frame, down now
	Released              // down last frame, up now
	Pressing              // down in both frames
	Releasing             // up in both frames
)

func (e Edge) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Pressing:
		return "pressing"
	case Releasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// Edges is read by consumers of a latched frame.
type Edges interface {
	Event(b Button) Edge
}

// Detector keeps the last two samples of the pad. A button's previous sample
// only moves forward once the button has been looked up, so a press that no
// consumer asked about in its frame is still reported as Pressed later.
type Detector struct {
	current  State
	previous State
	seen     State
}

// Latch records a new frame sample. Call exactly once per frame, before any
// Event lookups for that frame.
func (d *Detector) Latch(s State) {
	d.previous = d.previous&^d.seen | d.current&d.seen
	d.current = s
	d.seen = 0
}

// Event returns the edge of b between its last looked-up sample and the
// current one. Looking a button up more than once in the same frame gives
// the same answer.
func (d *Detector) Event(b Button) Edge {
	d.seen = d.seen.With(b)

	now, before := d.current.Held(b), d.previous.Held(b)
	switch {
	case now && !before:
		return Pressed
	case now:
		return Pressing
	case before:
		return Released
	default:
		return Releasing
	}
}

// Current returns the latest sample.
func (d *Detector) Current() State {
	return d.current
}
