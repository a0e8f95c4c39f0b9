package svdemit

import (
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Peripheral emits a namespace wrapping every register at its resolved
// address: a `base_address` constant, then each register in model order.
// An invalid peripheral (empty name or absent base address) emits
// nothing, not even a diagnostic comment. The loader does not reject such
// a peripheral, so it is silently left out of the output.
func Peripheral(w io.Writer, p *svd.Peripheral) error {
	if !p.Valid() {
		return nil
	}

	if err := writeLine(w, fmt.Sprintf("/// %s", orNoDescription(p.Description))); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const %s = struct {", p.Name)); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("const base_address = 0x%x;", *p.BaseAddress)); err != nil {
		return err
	}
	for _, r := range p.Registers {
		if err := Register(w, r); err != nil {
			return err
		}
	}
	return writeLine(w, "};")
}
