// Package command parses and runs monitor lines of the form [addr]cmd[args].
//
// An address prefix is either four hex digits (absolute) or two hex digits
// that replace only the low byte of the address cursor (relative). Without a
// prefix the command works on the address cursor as left by the previous
// command.
package command

import (
	"errors"
	"fmt"

	"github.com/mopp/fami-moni/famimoni/bit"
	"github.com/mopp/fami-moni/famimoni/hex"
)

// Addressing tells how the line chose its address.
type Addressing int

const (
	AddressNone Addressing = iota
	AddressAbsolute
	AddressRelative
)

func (a Addressing) String() string {
	switch a {
	case AddressAbsolute:
		return "absolute"
	case AddressRelative:
		return "relative"
	default:
		return "none"
	}
}

// Op is the operation selected by the command symbol.
type Op int

const (
	OpInvalid Op = iota
	OpRead
	OpWriteSequence
	OpWriteOnce
	OpExecute
)

// Command symbols.
const (
	SymbolRead          = '?'
	SymbolWriteSequence = '/'
	SymbolWriteOnce     = '.'
	SymbolExecute       = '*'
)

func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWriteSequence:
		return "write-sequence"
	case OpWriteOnce:
		return "write-once"
	case OpExecute:
		return "execute"
	default:
		return "invalid"
	}
}

// ErrMalformedNumber wraps hex decoding failures found while parsing a line.
var ErrMalformedNumber = errors.New("malformed number")

// Command is one parsed line.
type Command struct {
	Addressing Addressing
	// Address is where the command starts: the address cursor with the
	// prefix applied.
	Address uint16
	Op      Op
	// Symbol is the raw command character, 0 when the line ended after the
	// address prefix.
	Symbol   byte
	Operands string
}

// Parse splits line into address, command and operands. cursor is the
// address cursor left by the previous command. Parse does not look at the
// operands; that is up to the operation.
func Parse(line string, cursor uint16) (Command, error) {
	cmd := Command{Address: cursor}
	rest := line

	if len(line) > 0 && hex.IsDigit(line[0]) {
		if len(line) > 2 && hex.IsDigit(line[2]) {
			addr, err := hex.Decode(line, 4)
			if err != nil {
				return cmd, fmt.Errorf("%w: absolute address: %w", ErrMalformedNumber, err)
			}
			cmd.Addressing = AddressAbsolute
			cmd.Address = addr
			rest = line[4:]
		} else {
			low, err := hex.Decode(line, 2)
			if err != nil {
				return cmd, fmt.Errorf("%w: relative address: %w", ErrMalformedNumber, err)
			}
			cmd.Addressing = AddressRelative
			cmd.Address = bit.WithLow(cursor, uint8(low))
			rest = line[2:]
		}
	}

	if rest == "" {
		return cmd, nil
	}

	cmd.Symbol = rest[0]
	cmd.Op = opFor(rest[0])
	cmd.Operands = rest[1:]
	return cmd, nil
}

func opFor(symbol byte) Op {
	switch symbol {
	case SymbolRead:
		return OpRead
	case SymbolWriteSequence:
		return OpWriteSequence
	case SymbolWriteOnce:
		return OpWriteOnce
	case SymbolExecute:
		return OpExecute
	default:
		return OpInvalid
	}
}
