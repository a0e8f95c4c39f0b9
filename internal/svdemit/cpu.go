package svdemit

import (
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Cpu emits the `cpu` namespace nested inside a Device's output. Absent
// booleans render as false; nvic_prio_bits is emitted only when present.
//
// Unlike the reference emitter this fixes the known fpu_present/
// mpu_present mixup some SVD tooling has: fpu_present is read from
// Cpu.FPUPresent, not from Cpu.MPUPresent.
func Cpu(w io.Writer, c *svd.Cpu) error {
	if err := writeLine(w, "pub const cpu = struct {"); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const name = %q;", c.Name)); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const revision = %q;", c.Revision)); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const endian = %q;", orUnknown(c.Endian))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const mpu_present = %t;", boolOr(c.MPUPresent, false))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const fpu_present = %t;", boolOr(c.FPUPresent, false))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const vendor_systick_config = %t;", boolOr(c.VendorSystickConfig, false))); err != nil {
		return err
	}
	if c.NVICPrioBits != nil {
		if err := writeLine(w, fmt.Sprintf("pub const nvic_prio_bits = %d;", *c.NVICPrioBits)); err != nil {
			return err
		}
	}
	return writeLine(w, "};")
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
