package debug

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mopp/fami-moni/famimoni/video"
)

// TakeSnapshot handles the snapshot key for interactive backends: the frame
// is saved as PNG and as text in the working directory.
func TakeSnapshot(frame *video.Frame) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "famimoni_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
	if _, err := SaveFrameTextToDir(frame, "famimoni_snapshot", ""); err != nil {
		slog.Error("Failed to save text snapshot", "error", err)
	}
}

// FrameText returns the screen text of frame with a short header.
func FrameText(frame *video.Frame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Frame: %d\n", frame.Number)
	fmt.Fprintf(&sb, "# Scroll: %d,%d\n", frame.ScrollX, frame.ScrollY)
	for _, s := range frame.Sprites {
		if s.Visible() {
			x, y := s.CellAt()
			fmt.Fprintf(&sb, "# Sprite %q at %d,%d palette %d\n", video.Glyph(s.Tile), x, y, s.Palette())
		}
	}
	sb.WriteString("#\n")
	sb.WriteString(frame.Text())
	sb.WriteString("\n")
	return sb.String()
}

// SaveFramePNGToDir saves frame as PNG with a timestamp in directory, or in
// the working directory when directory is empty. Returns the file path.
func SaveFramePNGToDir(frame *video.Frame, baseName, directory string) (string, error) {
	filePath, err := snapshotPath(baseName, directory, "png")
	if err != nil {
		return "", err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, RenderImage(frame)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", ImageWidth, ImageHeight), "format", "PNG")
	return filePath, nil
}

// SaveFrameTextToDir is SaveFramePNGToDir for the FrameText rendering.
func SaveFrameTextToDir(frame *video.Frame, baseName, directory string) (string, error) {
	filePath, err := snapshotPath(baseName, directory, "txt")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filePath, []byte(FrameText(frame)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	slog.Info("Snapshot saved", "path", filePath, "format", "text")
	return filePath, nil
}

func snapshotPath(baseName, directory, ext string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", baseName, timestamp, ext)

	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}
	return filepath.Join(outputDir, filename), nil
}
