package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mopp/fami-moni/famimoni/hex"
)

const (
	InvalidCommandMessage = "INVALID COMMAND"
	InvalidNumberMessage  = "INVALID NUMBER"

	// bytesPerRow keeps a dump row inside the 32 column console.
	bytesPerRow = 8
	// operandStride is two digits plus one separator.
	operandStride = 3
)

// ErrControlTransferred is returned by Execute after control was handed to
// the target. The monitor must not resume.
var ErrControlTransferred = errors.New("control transferred to target")

// Memory is the target address space.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Target runs code in the target address space. TransferControl stands for
// a jump that never comes back to the monitor.
type Target interface {
	TransferControl(addr uint16)
}

// Output receives the report lines of a command.
type Output interface {
	PutLine(s string)
}

// Interpreter runs lines against target memory and keeps the address cursor
// between lines.
type Interpreter struct {
	mem    Memory
	target Target
	out    Output
	cursor uint16
}

func NewInterpreter(mem Memory, target Target, out Output, start uint16) *Interpreter {
	return &Interpreter{
		mem:    mem,
		target: target,
		out:    out,
		cursor: start,
	}
}

// Cursor returns the address cursor.
func (i *Interpreter) Cursor() uint16 {
	return i.cursor
}

// Execute parses line and runs it. Malformed lines are reported on the
// output and leave memory and the address cursor untouched; they are not
// errors. The only error is ErrControlTransferred.
func (i *Interpreter) Execute(line string) error {
	cmd, err := Parse(line, i.cursor)
	if err != nil {
		slog.Debug("Rejected line", "line", line, "error", err)
		i.out.PutLine(InvalidNumberMessage)
		return nil
	}

	slog.Debug("Command", "line", line, "op", cmd.Op, "addressing", cmd.Addressing, "addr", fmt.Sprintf("0x%04X", cmd.Address))

	switch cmd.Op {
	case OpRead:
		count, err := parseCount(cmd.Operands)
		if err != nil {
			i.reject(line, err)
			return nil
		}
		i.read(cmd.Address, count)
	case OpWriteSequence, OpWriteOnce:
		values, err := parseValues(cmd.Operands)
		if err != nil {
			i.reject(line, err)
			return nil
		}
		i.write(cmd.Address, values, cmd.Op == OpWriteSequence)
	case OpExecute:
		i.cursor = cmd.Address
		slog.Info("Transferring control", "addr", fmt.Sprintf("0x%04X", cmd.Address))
		i.target.TransferControl(cmd.Address)
		return fmt.Errorf("%w: 0x%04X", ErrControlTransferred, cmd.Address)
	default:
		slog.Debug("Invalid command", "line", line, "symbol", string(cmd.Symbol))
		i.out.PutLine(InvalidCommandMessage)
	}
	return nil
}

func (i *Interpreter) reject(line string, err error) {
	slog.Debug("Rejected operands", "line", line, "error", err)
	i.out.PutLine(InvalidNumberMessage)
}

// read prints count bytes from addr, a row per bytesPerRow bytes, and leaves
// the cursor after the last one.
func (i *Interpreter) read(addr uint16, count int) {
	row := make([]byte, 0, 4+2+bytesPerRow*3)
	for done := 0; done < count; done += bytesPerRow {
		row = hex.AppendEncode(row[:0], addr, 4)
		row = append(row, ':')
		for n := 0; n < bytesPerRow && done+n < count; n++ {
			row = append(row, ' ')
			row = hex.AppendEncode(row, uint16(i.mem.Read(addr)), 2)
			addr++
		}
		i.out.PutLine(string(row))
	}
	i.cursor = addr
}

// write stores values from addr on. With advance false every value lands on
// addr and the cursor stays there.
func (i *Interpreter) write(addr uint16, values []byte, advance bool) {
	for _, v := range values {
		i.mem.Write(addr, v)
		if advance {
			addr++
		}
	}
	i.cursor = addr
}

// parseCount reads the optional one or two digit count of a read. No digits
// means one byte.
func parseCount(operands string) (int, error) {
	var (
		count uint16
		err   error
	)
	switch len(operands) {
	case 0:
		return 1, nil
	case 1, 2:
		count, err = hex.Decode(operands, len(operands))
	default:
		return 0, fmt.Errorf("%w: count %q is longer than two digits", ErrMalformedNumber, operands)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: count: %w", ErrMalformedNumber, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: count is zero", ErrMalformedNumber)
	}
	return int(count), nil
}

// parseValues reads two digit values spaced operandStride apart. The cell
// between two values must not be a digit, so run-together digits are
// rejected instead of being split silently.
func parseValues(operands string) ([]byte, error) {
	values := make([]byte, 0, (len(operands)+1)/operandStride)
	for off := 0; off < len(operands); off += operandStride {
		v, err := hex.Decode(operands[off:], 2)
		if err != nil {
			return nil, fmt.Errorf("%w: value at offset %d: %w", ErrMalformedNumber, off, err)
		}
		if sep := off + 2; sep < len(operands) && hex.IsDigit(operands[sep]) {
			return nil, fmt.Errorf("%w: missing separator at offset %d in %q", ErrMalformedNumber, sep, strings.TrimSpace(operands))
		}
		values = append(values, byte(v))
	}
	return values, nil
}
