package svdemit

import (
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Interrupt emits a single vector constant, e.g. `pub const USART1 = 42;`.
// An entry with no value is silently skipped — it has nothing to bind.
func Interrupt(w io.Writer, iv *svd.Interrupt) error {
	if iv.Value == nil {
		return nil
	}
	return writeLine(w, fmt.Sprintf("pub const %s = %d;", iv.Name, *iv.Value))
}

// InterruptTable emits the `interrupts` namespace wrapping every vectored
// interrupt, sorted by value via svd.SortedInterrupts for deterministic
// output regardless of map iteration order.
func InterruptTable(w io.Writer, d *svd.Device) error {
	if err := writeLine(w, "pub const interrupts = struct {"); err != nil {
		return err
	}
	for _, iv := range d.SortedInterrupts() {
		if err := Interrupt(w, iv); err != nil {
			return err
		}
	}
	return writeLine(w, "};")
}
