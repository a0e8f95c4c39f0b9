package svdemit

import (
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Field emits a single bitfield member in its three-line form, e.g.:
//
//	/// RNGEN [2:2]
//	/// RNGEN comment
//	RNGEN: u1 = 1,
//
// Preconditions (non-empty name, bit offset and width both present) are
// the caller's (Register's) responsibility — Register never hands Field
// an invalid field, it aborts the whole register first instead.
func Field(w io.Writer, f *svd.Field) error {
	start := *f.BitOffset
	width := *f.BitWidth
	end := start + width - 1

	if err := writeLine(w, fmt.Sprintf("/// %s [%d:%d]", f.Name, start, end)); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("/// %s", orNoDescription(f.Description))); err != nil {
		return err
	}
	value := resetSlice(start, width, f.RegisterResetValue)
	return writeLine(w, fmt.Sprintf("%s: u%d = %d,", f.Name, width, value))
}

// unusedFiller emits one synthesized `_unused<start>` member covering
// [start, end) of the register, with no leading comment — the comment
// documenting the whole gap is written once by the caller before the
// first chunk.
func unusedFiller(w io.Writer, start, end, regReset uint32) error {
	width := end - start
	value := resetSlice(start, width, regReset)
	return writeLine(w, fmt.Sprintf("_unused%d: u%d = %d,", start, width, value))
}

// unusedGap synthesizes one or more filler members covering [first, last)
// of a register, split so each chunk ends at or before the next 8-bit
// boundary (a workaround for packed-struct layouts
// that don't tolerate fields crossing byte boundaries).
func unusedGap(w io.Writer, first, last, regReset uint32) error {
	if err := writeLine(w, fmt.Sprintf("/// unused [%d:%d]", first, last-1)); err != nil {
		return err
	}
	start := first
	for start < last {
		end := last
		if next := nextMultipleOf8GreaterThan(start); next < end {
			end = next
		}
		if err := unusedFiller(w, start, end, regReset); err != nil {
			return err
		}
		start = end
	}
	return nil
}
