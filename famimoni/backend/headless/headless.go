package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/debug"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/video"
)

// Backend implements the Backend interface for scripted runs and batch
// processing. Pad input comes from a Schedule.
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	schedule       *Schedule
	lines          input.State
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	Name      string // Prefix of snapshot filenames
}

// New returns a backend that runs maxFrames frames. A nil schedule presses
// nothing.
func New(maxFrames int, snapshotConfig SnapshotConfig, schedule *Schedule) *Backend {
	if schedule == nil {
		schedule = &Schedule{}
	}
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		schedule:       schedule,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	if h.maxFrames <= 0 {
		return fmt.Errorf("headless mode needs a positive frame count, got %d", h.maxFrames)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"scripted_frames", h.schedule.Len(),
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update reports the scheduled pad lines for the next frame and handles
// snapshots of frame.
func (h *Backend) Update(frame *video.Frame) ([]backend.InputEvent, error) {
	lines := h.schedule.At(h.frameCount)
	events := backend.PadEvents(h.lines, lines)
	h.lines = lines
	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(frame)
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.frameCount, "snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.frameCount)
		}

		events = append(events, backend.InputEvent{Action: action.MonitorQuit, Type: event.Press})
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Frames returns the number of Update calls so far.
func (h *Backend) Frames() int {
	return h.frameCount
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Name:     name,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "famimoni-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	if config.Name == "" {
		config.Name = "famimoni"
	}

	return config, nil
}

func (h *Backend) saveSnapshot(frame *video.Frame) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)

	if _, err := debug.SaveFramePNGToDir(frame, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
	}
	if _, err := debug.SaveFrameTextToDir(frame, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save text snapshot", "frame", h.frameCount, "error", err)
	}
}
