package bit

import (
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		high, low uint8
		expected  uint16
	}{
		{0xAB, 0xCD, 0xABCD},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x12, 0x34, 0x1234},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		byte     uint8
		index    uint8
		expected bool
	}{
		{0b10101010, 0, false},
		{0b10101010, 1, true},
		{0b10101010, 2, false},
		{0b10101010, 7, true},
		{0b10101010, 8, false},
	}

	for _, tt := range tests {
		result := IsSet(tt.index, tt.byte)
		if result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.byte, result, tt.expected)
		}
	}
}

func TestSetClear(t *testing.T) {
	tests := []struct {
		byte  uint8
		index uint8
		set   uint8
		clear uint8
	}{
		{0b00000000, 0, 0b00000001, 0b00000000},
		{0b11111111, 7, 0b11111111, 0b01111111},
		{0b10101010, 2, 0b10101110, 0b10101010},
		{0b10101010, 3, 0b10101010, 0b10100010},
	}

	for _, tt := range tests {
		if got := Set(tt.index, tt.byte); got != tt.set {
			t.Errorf("Set(%d, %08b) = %08b; want %08b", tt.index, tt.byte, got, tt.set)
		}
		if got := Clear(tt.index, tt.byte); got != tt.clear {
			t.Errorf("Clear(%d, %08b) = %08b; want %08b", tt.index, tt.byte, got, tt.clear)
		}
	}
}

func TestLowHigh(t *testing.T) {
	tests := []struct {
		value     uint16
		high, low uint8
	}{
		{0x1234, 0x12, 0x34},
		{0xFF00, 0xFF, 0x00},
		{0x00FF, 0x00, 0xFF},
	}

	for _, tt := range tests {
		if got := High(tt.value); got != tt.high {
			t.Errorf("High(%04X) = %02X; want %02X", tt.value, got, tt.high)
		}
		if got := Low(tt.value); got != tt.low {
			t.Errorf("Low(%04X) = %02X; want %02X", tt.value, got, tt.low)
		}
	}
}

func TestWithLow(t *testing.T) {
	tests := []struct {
		value    uint16
		low      uint8
		expected uint16
	}{
		{0x12AB, 0xCD, 0x12CD},
		{0x0400, 0xFF, 0x04FF},
		{0xFFFF, 0x00, 0xFF00},
	}

	for _, tt := range tests {
		if got := WithLow(tt.value, tt.low); got != tt.expected {
			t.Errorf("WithLow(%04X, %02X) = %04X; want %04X", tt.value, tt.low, got, tt.expected)
		}
	}
}
