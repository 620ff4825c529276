package headless

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/input"
)

// Limits on schedule length. A pad sample is one byte, so the whole
// schedule stays small even at the cap.
const (
	// MaxStepFrames bounds a single Press or Wait: ten minutes of frames.
	MaxStepFrames = 10 * 60 * 60
	// MaxScheduleFrames bounds the whole schedule: one hour of frames.
	MaxScheduleFrames = 60 * 60 * 60
)

// ErrScheduleTooLong is returned when a step would exceed MaxStepFrames or
// MaxScheduleFrames. The schedule is left as it was before the step.
var ErrScheduleTooLong = errors.New("schedule too long")

// Schedule is a frame-indexed list of pad samples. Frame n of a headless run
// sees the lines At(n).
type Schedule struct {
	cfg    config.Config
	states []input.State
}

// NewSchedule returns an empty schedule for a monitor running cfg. Type and
// Submit use cfg to pick characters.
func NewSchedule(cfg config.Config) *Schedule {
	return &Schedule{cfg: cfg}
}

// Len returns the number of scheduled frames.
func (s *Schedule) Len() int {
	return len(s.states)
}

// At returns the pad lines for frame n. Frames past the end have nothing held.
func (s *Schedule) At(n int) input.State {
	if n < 0 || n >= len(s.states) {
		return 0
	}
	return s.states[n]
}

// Press holds b for frames frames, then releases it for one frame.
func (s *Schedule) Press(b input.Button, frames int) error {
	if frames < 1 {
		frames = 1
	}
	if err := s.check(frames, 1); err != nil {
		return fmt.Errorf("press %s: %w", b, err)
	}
	s.add(input.State(0).With(b), frames)
	s.add(0, 1)
	return nil
}

// Wait adds frames frames with nothing held.
func (s *Schedule) Wait(frames int) error {
	if frames < 1 {
		return nil
	}
	if err := s.check(frames, 0); err != nil {
		return fmt.Errorf("wait: %w", err)
	}
	s.add(0, frames)
	return nil
}

// check reports whether a step of frames frames plus extra trailing frames
// fits.
func (s *Schedule) check(frames, extra int) error {
	if frames > MaxStepFrames {
		return fmt.Errorf("%w: %d frames in one step, at most %d", ErrScheduleTooLong, frames, MaxStepFrames)
	}
	if len(s.states)+frames+extra > MaxScheduleFrames {
		return fmt.Errorf("%w: more than %d frames", ErrScheduleTooLong, MaxScheduleFrames)
	}
	return nil
}

func (s *Schedule) add(state input.State, frames int) {
	for i := 0; i < frames; i++ {
		s.states = append(s.states, state)
	}
}

// Type enters text with the picker, taking the shorter way round the
// alphabet for each character. The picker must be at its first character,
// which holds after every confirm, erase and submit.
func (s *Schedule) Type(text string) error {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' && s.cfg.SpaceButton {
			if err := s.Press(input.ButtonB, 1); err != nil {
				return err
			}
			continue
		}

		idx := strings.IndexByte(s.cfg.Alphabet, c)
		if idx < 0 {
			idx = strings.IndexByte(s.cfg.Alphabet, upper(c))
		}
		if idx < 0 {
			return fmt.Errorf("character %q is not in the alphabet %q", c, s.cfg.Alphabet)
		}

		n := len(s.cfg.Alphabet)
		var err error
		if idx <= n/2 {
			err = s.repeat(input.ButtonRight, idx)
		} else {
			err = s.repeat(input.ButtonLeft, n-idx)
		}
		if err != nil {
			return err
		}
		if err := s.Press(input.ButtonA, 1); err != nil {
			return err
		}
	}
	return nil
}

// Submit ends the line the way the configured submit mode expects.
func (s *Schedule) Submit() error {
	if s.cfg.Submit == config.SubmitSentinel {
		return s.Type(string(s.cfg.Sentinel))
	}
	return s.Press(input.ButtonStart, 1)
}

// Line types text and submits it.
func (s *Schedule) Line(text string) error {
	if err := s.Type(text); err != nil {
		return err
	}
	return s.Submit()
}

func (s *Schedule) repeat(b input.Button, times int) error {
	for i := 0; i < times; i++ {
		if err := s.Press(b, 1); err != nil {
			return err
		}
	}
	return nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
