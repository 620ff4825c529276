// Package memory provides the target address space the monitor inspects.
package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Size is the number of addressable bytes.
const Size = 0x10000

var ErrImageTooLarge = errors.New("image does not fit in the address space")

// Flat is a plain 64 KiB byte space with no mapped devices.
type Flat struct {
	data [Size]byte
}

func NewFlat() *Flat {
	return &Flat{}
}

func (m *Flat) Read(addr uint16) byte {
	return m.data[addr]
}

func (m *Flat) Write(addr uint16, value byte) {
	m.data[addr] = value
}

// Load copies image into memory starting at origin.
func (m *Flat) Load(origin uint16, image []byte) error {
	if int(origin)+len(image) > Size {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(image), origin)
	}
	copy(m.data[origin:], image)
	return nil
}

// LoadFile reads a raw binary image from path into memory at origin.
func (m *Flat) LoadFile(path string, origin uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read memory image: %w", err)
	}
	if err := m.Load(origin, data); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Info("Loaded memory image", "path", path, "bytes", len(data), "origin", fmt.Sprintf("0x%04X", origin))
	return nil
}
