package headless

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	s, err := RunScript(`
		press("Right", 2)
		wait(3)
		local n = frame()
		assert(n == 6, "frame() = " .. n)
		type("1")
		submit()
	`, config.ButtonPreset())
	require.NoError(t, err)

	want := NewSchedule(config.ButtonPreset())
	require.NoError(t, want.Press(input.ButtonRight, 2))
	require.NoError(t, want.Wait(3))
	require.NoError(t, want.Type("1"))
	require.NoError(t, want.Submit())
	assert.Equal(t, want.states, s.states)
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		msg    string
	}{
		{"unknown button", `press("Turbo")`, "unknown button"},
		{"missing argument", `wait()`, "number expected"},
		{"unknown glyph", `type("XYZ")`, "not in the alphabet"},
		{"syntax", `press(`, "script"},
		{"huge wait", `wait(1e9)`, "out of range"},
		{"huge press", `press("A", 1e9)`, "out of range"},
		{"negative wait", `wait(-1)`, "out of range"},
		{"endless loop of waits", `while true do wait(36000) end`, "schedule too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunScript(tt.source, config.ButtonPreset())
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.lua")
	require.NoError(t, os.WriteFile(path, []byte("for i = 1, 3 do press(\"A\") end\n"), 0o644))

	s, err := LoadScript(path, config.ButtonPreset())
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.lua"), config.ButtonPreset())
	assert.Error(t, err)
}
