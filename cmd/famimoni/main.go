package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mopp/fami-moni/famimoni"
	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/backend/headless"
	"github.com/mopp/fami-moni/famimoni/backend/terminal"
	"github.com/mopp/fami-moni/famimoni/backend/window"
	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/hex"
	"github.com/mopp/fami-moni/famimoni/timing"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		slog.Error("Error running monitor", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "famimoni"
	app.Description = "A pad driven memory monitor for the 8-bit console"
	app.Usage = "famimoni [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend: terminal, window or headless (default: terminal on a tty, headless otherwise)",
		},
		cli.StringFlag{
			Name:  "submit",
			Usage: "How a line is submitted: button (Start) or sentinel (picking ';')",
			Value: config.SubmitButton.String(),
		},
		cli.StringFlag{
			Name:  "alphabet",
			Usage: "Characters the picker cycles through (default: preset of the submit mode)",
		},
		cli.IntFlag{
			Name:  "blink",
			Usage: "Frames between caret blinks (0 = preset)",
		},
		cli.StringFlag{
			Name:  "start",
			Usage: "Initial address cursor in hex",
			Value: "0400",
		},
		cli.StringFlag{
			Name:  "load",
			Usage: "Binary image to copy into target memory before start",
		},
		cli.StringFlag{
			Name:  "load-addr",
			Usage: "Target address of the --load image in hex",
			Value: "0000",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (default with --script: script length + 60)",
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "Lua pad script for headless mode",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor",
			Value: 2,
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Lowest log level shown: debug, info, warn or error",
			Value: "info",
		},
	}
	app.Action = runMonitor
	return app
}

func runMonitor(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	monitor, err := famimoni.New(cfg)
	if err != nil {
		return err
	}
	if path := c.String("load"); path != "" {
		origin, err := parseAddress(c.String("load-addr"))
		if err != nil {
			return fmt.Errorf("invalid --load-addr: %w", err)
		}
		if err := monitor.Memory().LoadFile(path, origin); err != nil {
			return err
		}
	}

	b, limiter, err := buildBackend(c, cfg)
	if err != nil {
		return err
	}
	defer limiter.Stop()
	if err := b.Init(backend.BackendConfig{Title: "famimoni", Scale: c.Int("scale"), LogLevel: level}); err != nil {
		return err
	}

	monitor.Init()
	runErr := famimoni.Run(monitor, b, limiter)
	if err := b.Cleanup(); err != nil {
		slog.Warn("Backend cleanup failed", "error", err)
	}
	if runErr != nil {
		return runErr
	}

	if addr, jumped := monitor.Target().Jump(); jumped {
		fmt.Printf("jumped to %04X\n", addr)
	}
	return nil
}

func buildConfig(c *cli.Context) (config.Config, error) {
	mode, err := config.ParseSubmitMode(c.String("submit"))
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Preset(mode)
	if a := c.String("alphabet"); a != "" {
		cfg.Alphabet = a
	}
	if n := c.Int("blink"); n > 0 {
		cfg.BlinkFrames = n
	}
	cfg.StartAddress, err = parseAddress(c.String("start"))
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid --start: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildBackend(c *cli.Context, cfg config.Config) (backend.Backend, timing.Limiter, error) {
	name := c.String("backend")
	if name == "" {
		name = "headless"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			name = "terminal"
		}
	}

	switch name {
	case "terminal":
		return terminal.New(), timing.NewTickerLimiter(), nil
	case "window":
		return window.New(), timing.NewTickerLimiter(), nil
	case "headless":
		var schedule *headless.Schedule
		if path := c.String("script"); path != "" {
			var err error
			schedule, err = headless.LoadScript(path, cfg)
			if err != nil {
				return nil, nil, err
			}
		}

		frames := c.Int("frames")
		if frames <= 0 && schedule != nil {
			frames = schedule.Len() + 60
		}
		if frames <= 0 {
			return nil, nil, errors.New("headless mode requires --frames option with a positive value or a --script")
		}

		snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), "famimoni")
		if err != nil {
			return nil, nil, err
		}
		return headless.New(frames, snapshots, schedule), timing.NewNoOpLimiter(), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
}

// parseAddress reads one to four hex digits.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "$")
	if s == "" || len(s) > hex.MaxWidth {
		return 0, fmt.Errorf("%q is not a 1-4 digit hex address", s)
	}
	return hex.Decode(s, len(s))
}
