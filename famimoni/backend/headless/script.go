package headless

import (
	"fmt"
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/input"
	lua "github.com/yuin/gopher-lua"
)

// LoadScript runs the Lua file at path and returns the pad schedule it built.
//
// Scripts see these globals:
//
//	press(button [, frames])  hold a button ("A", "B", "Select", "Start",
//	                          "Up", "Down", "Left", "Right"), then release it
//	wait(frames)              hold nothing
//	type(text)                enter text with the picker
//	submit()                  end the line
//	frame()                   number of frames scheduled so far
func LoadScript(path string, cfg config.Config) (*Schedule, error) {
	s := NewSchedule(cfg)
	L := newScriptState(s)
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	slog.Info("Pad script loaded", "path", path, "frames", s.Len())
	return s, nil
}

// RunScript is LoadScript for a script held in memory.
func RunScript(source string, cfg config.Config) (*Schedule, error) {
	s := NewSchedule(cfg)
	L := newScriptState(s)
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

func newScriptState(s *Schedule) *lua.LState {
	L := lua.NewState()

	L.SetGlobal("press", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		b, ok := input.ParseButton(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown button %q", name))
			return 0
		}
		frames := 1
		if L.GetTop() >= 2 {
			frames = frameCount(L, 2)
		}
		if err := s.Press(b, frames); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("wait", L.NewFunction(func(L *lua.LState) int {
		if err := s.Wait(frameCount(L, 1)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("type", L.NewFunction(func(L *lua.LState) int {
		if err := s.Type(L.CheckString(1)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("submit", L.NewFunction(func(L *lua.LState) int {
		if err := s.Submit(); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("frame", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.Len()))
		return 1
	}))

	return L
}

// frameCount reads argument n as a frame count. Counts are range checked as
// numbers so a huge value is not wrapped into a small int.
func frameCount(L *lua.LState, n int) int {
	v := float64(L.CheckNumber(n))
	if v < 0 || v > MaxStepFrames {
		L.ArgError(n, fmt.Sprintf("frame count %v out of range 0..%d", v, MaxStepFrames))
	}
	return int(v)
}
