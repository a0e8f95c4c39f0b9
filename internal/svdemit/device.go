package svdemit

import (
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Device emits the whole output: the device identity constants, an
// optional cpu block, every peripheral in model order, and finally the
// interrupt table. This is the only entry point a driver needs — it
// composes every other Emit function in top-down order (Device -> Cpu ->
// Peripheral -> Register -> Field -> interrupt table).
func Device(w io.Writer, d *svd.Device) error {
	if err := writeLine(w, fmt.Sprintf("pub const device_name = %q;", orUnknown(d.Name))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const device_revision = %q;", orUnknown(d.Version))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const device_description = %q;", orUnknown(d.Description))); err != nil {
		return err
	}

	if d.Cpu != nil {
		if err := Cpu(w, d.Cpu); err != nil {
			return err
		}
	}

	for _, p := range d.Peripherals {
		if err := Peripheral(w, p); err != nil {
			return err
		}
	}

	return InterruptTable(w, d)
}
