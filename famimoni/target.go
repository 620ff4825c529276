package famimoni

import (
	"fmt"
	"log/slog"
)

// HaltTarget stands in for a jump into target code. The monitor cannot run
// target code, so the jump is recorded and the monitor stops.
type HaltTarget struct {
	addr   uint16
	jumped bool
}

func (t *HaltTarget) TransferControl(addr uint16) {
	t.addr = addr
	t.jumped = true
	slog.Debug("Control transferred to target", "addr", fmt.Sprintf("0x%04X", addr))
}

// Jump returns the jump address and whether a jump happened.
func (t *HaltTarget) Jump() (uint16, bool) {
	return t.addr, t.jumped
}
