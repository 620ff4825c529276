package famimoni

import (
	"strings"
	"testing"

	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/editor"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonitor(t *testing.T, cfg config.Config) *Monitor {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	m.Init()
	return m
}

func row(m *Monitor, y int) string {
	return strings.TrimRight(m.GetCurrentFrame().Row(y), " ")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.ButtonPreset()
	cfg.Alphabet = ""

	_, err := New(cfg)

	assert.ErrorIs(t, err, config.ErrEmptyAlphabet)
}

func TestInitDrawsPrompt(t *testing.T) {
	m := newMonitor(t, config.ButtonPreset())

	f := m.GetCurrentFrame()
	assert.True(t, f.Rendering)
	assert.Equal(t, uint64(1), f.Number)
	assert.Equal(t, ">0", row(m, 1))
	assert.Equal(t, uint16(config.DefaultStartAddress), m.Cursor())
	assert.Equal(t, editor.Idle, m.Editor().State())
	assert.False(t, m.Halted())
}

func TestRunUntilFrameReadsPad(t *testing.T) {
	m := newMonitor(t, config.ButtonPreset())

	m.Pad().Press(input.ButtonRight)
	m.RunUntilFrame()
	m.RunUntilFrame()
	m.Pad().Release(input.ButtonRight)
	m.RunUntilFrame()
	m.Pad().Press(input.ButtonA)
	m.RunUntilFrame()

	assert.Equal(t, "1", m.Editor().Buffer())
	assert.Equal(t, ">10", row(m, 1))
	assert.Equal(t, uint64(5), m.GetCurrentFrame().Number)
}

func TestFrameIsImmutable(t *testing.T) {
	m := newMonitor(t, config.ButtonPreset())
	before := m.GetCurrentFrame()

	m.Pad().Press(input.ButtonLeft)
	m.RunUntilFrame()

	assert.Equal(t, ">0", strings.TrimRight(before.Row(1), " "))
	assert.Equal(t, ">*", row(m, 1))
}

func TestHaltTarget(t *testing.T) {
	var target HaltTarget

	_, jumped := target.Jump()
	assert.False(t, jumped)

	target.TransferControl(0xC000)
	addr, jumped := target.Jump()
	assert.True(t, jumped)
	assert.Equal(t, uint16(0xC000), addr)
}
