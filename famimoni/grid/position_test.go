package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceFullRow(t *testing.T) {
	p := Position{X: 0, Y: 1}
	for i := 0; i < Width; i++ {
		assert.False(t, Advance(&p))
	}
	assert.Equal(t, Position{X: 0, Y: 2}, p)
}

func TestAdvanceWrapsToFirstRow(t *testing.T) {
	p := Position{X: 31, Y: 31}
	assert.True(t, Advance(&p))
	assert.Equal(t, Position{X: 0, Y: 1}, p)
}

func TestAdvanceNeverVisitsRowZero(t *testing.T) {
	p := Home
	wraps := 0
	cells := Width * (Height - FirstRow)
	for i := 0; i < cells*2; i++ {
		if Advance(&p) {
			wraps++
		}
		assert.NotZero(t, p.Y, "row 0 visited after %d steps", i+1)
		assert.Less(t, p.X, uint8(Width))
		assert.Less(t, p.Y, uint8(Height))
	}
	assert.Equal(t, 2, wraps)
	assert.Equal(t, Home, p)
}

func TestNewline(t *testing.T) {
	tests := []struct {
		name     string
		start    Position
		expected Position
		wrapped  bool
	}{
		{"mid line", Position{X: 12, Y: 3}, Position{X: 0, Y: 4}, false},
		{"line start", Position{X: 0, Y: 1}, Position{X: 0, Y: 2}, false},
		{"last row", Position{X: 5, Y: 31}, Position{X: 0, Y: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			assert.Equal(t, tt.wrapped, Newline(&p))
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRetreat(t *testing.T) {
	tests := []struct {
		name     string
		start    Position
		expected Position
		wrapped  bool
	}{
		{"mid line", Position{X: 5, Y: 2}, Position{X: 4, Y: 2}, false},
		{"line start", Position{X: 0, Y: 3}, Position{X: 31, Y: 2}, false},
		{"home", Position{X: 0, Y: 1}, Position{X: 31, Y: 31}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			assert.Equal(t, tt.wrapped, Retreat(&p))
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRetreatUndoesAdvance(t *testing.T) {
	for _, start := range []Position{{X: 31, Y: 7}, {X: 31, Y: 31}, {X: 4, Y: 1}} {
		p := start
		Advance(&p)
		Retreat(&p)
		assert.Equal(t, start, p)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, uint16(32), Position{X: 0, Y: 1}.Offset())
	assert.Equal(t, uint16(0x3FF), Position{X: 31, Y: 31}.Offset())
}
