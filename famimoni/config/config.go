// Package config holds the behavior settings of the monitor. The two presets
// correspond to the two ways a line can be submitted from the pad.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SubmitMode selects how a finished line is handed to the interpreter.
type SubmitMode int

const (
	// SubmitButton submits on the Start button.
	SubmitButton SubmitMode = iota
	// SubmitSentinel submits when the sentinel character is confirmed with A.
	SubmitSentinel
)

func (m SubmitMode) String() string {
	switch m {
	case SubmitButton:
		return "button"
	case SubmitSentinel:
		return "sentinel"
	default:
		return fmt.Sprintf("SubmitMode(%d)", int(m))
	}
}

// ParseSubmitMode parses the names returned by SubmitMode.String.
func ParseSubmitMode(name string) (SubmitMode, error) {
	switch strings.ToLower(name) {
	case "button":
		return SubmitButton, nil
	case "sentinel":
		return SubmitSentinel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSubmitMode, name)
	}
}

const (
	DefaultStartAddress = 0x0400
	DefaultPrompt       = '>'
	DefaultSentinel     = ';'
)

var (
	ErrUnknownSubmitMode = errors.New("unknown submit mode")
	ErrEmptyAlphabet     = errors.New("alphabet is empty")
	ErrAlphabetGlyph     = errors.New("alphabet has a non-printable glyph")
	ErrDuplicateGlyph    = errors.New("alphabet has a duplicate glyph")
	ErrMissingSentinel   = errors.New("sentinel is not in the alphabet")
	ErrBlinkFrames       = errors.New("blink period must be positive")
)

// Config describes the monitor behavior.
type Config struct {
	// Alphabet is the ordered set of characters the picker cycles through.
	Alphabet string
	Submit   SubmitMode
	// Sentinel submits the line in SubmitSentinel mode.
	Sentinel byte
	// SpaceButton lets B type a space without going through the picker.
	SpaceButton bool
	// BlinkFrames is the number of frames between caret palette toggles.
	BlinkFrames  int
	Prompt       byte
	StartAddress uint16
}

// ButtonPreset is the dedicated Start button layout.
func ButtonPreset() Config {
	return Config{
		Alphabet:     "0123456789ABCDEF?/.*",
		Submit:       SubmitButton,
		SpaceButton:  true,
		BlinkFrames:  20,
		Prompt:       DefaultPrompt,
		StartAddress: DefaultStartAddress,
	}
}

// SentinelPreset is the layout without Start and B: spaces and the submit
// sentinel are picked from the alphabet like any other character.
func SentinelPreset() Config {
	return Config{
		Alphabet:     "0123456789ABCDEF?/.* ;",
		Submit:       SubmitSentinel,
		Sentinel:     DefaultSentinel,
		BlinkFrames:  30,
		Prompt:       DefaultPrompt,
		StartAddress: DefaultStartAddress,
	}
}

// Preset returns the preset for the given submit mode.
func Preset(mode SubmitMode) Config {
	if mode == SubmitSentinel {
		return SentinelPreset()
	}
	return ButtonPreset()
}

// Validate checks that the settings are usable together.
func (c Config) Validate() error {
	if c.Alphabet == "" {
		return ErrEmptyAlphabet
	}
	seen := make(map[byte]bool, len(c.Alphabet))
	for i := 0; i < len(c.Alphabet); i++ {
		g := c.Alphabet[i]
		if !printable(g) {
			return fmt.Errorf("%w: 0x%02X", ErrAlphabetGlyph, g)
		}
		if seen[g] {
			return fmt.Errorf("%w: %q", ErrDuplicateGlyph, g)
		}
		seen[g] = true
	}
	if !printable(c.Prompt) {
		return fmt.Errorf("prompt: %w: 0x%02X", ErrAlphabetGlyph, c.Prompt)
	}
	switch c.Submit {
	case SubmitSentinel:
		if !seen[c.Sentinel] {
			return fmt.Errorf("%w: %q", ErrMissingSentinel, c.Sentinel)
		}
	case SubmitButton:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSubmitMode, int(c.Submit))
	}
	if c.BlinkFrames <= 0 {
		return fmt.Errorf("%w: %d", ErrBlinkFrames, c.BlinkFrames)
	}
	return nil
}

func printable(c byte) bool {
	return c >= 0x20 && c < 0x7F
}
