package svdemit

import (
	"fmt"
	"io"
	"sort"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Register is the core of the emitter: it renders a packed `<Name>_val`
// struct whose layout exactly covers the register's 32 bits — named
// fields plus synthesized `_unused*` fillers for every gap — followed by
// a binding of `<Name>` to the runtime Register helper at its absolute
// address.
//
// Fields are sorted ascending by bit offset immediately before
// rendering; this is the one place emission mutates the model (it
// reorders svd.Register.Fields in place), scoped to this one register.
func Register(w io.Writer, r *svd.Register) error {
	if !r.Valid() {
		return writeLine(w, "// Not enough info to print register value")
	}

	sortFields(r.Fields)

	for _, f := range r.Fields {
		if !f.Valid() {
			return writeLine(w, "// Not enough info to print register")
		}
	}

	if err := writeLine(w, fmt.Sprintf("/// %s", r.Name)); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("pub const %s_val = packed struct {", r.Name)); err != nil {
		return err
	}

	cursor := uint32(0)
	for _, f := range r.Fields {
		if *f.BitOffset > cursor {
			if err := unusedGap(w, cursor, *f.BitOffset, r.ResetValue); err != nil {
				return err
			}
		}
		if err := Field(w, f); err != nil {
			return err
		}
		cursor = *f.BitOffset + *f.BitWidth
	}
	if cursor < 32 {
		if err := unusedGap(w, cursor, 32, r.ResetValue); err != nil {
			return err
		}
	}

	if err := writeLine(w, "};"); err != nil {
		return err
	}
	if err := writeLine(w, fmt.Sprintf("/// %s", orNoDescription(r.Description))); err != nil {
		return err
	}
	return writeLine(w, fmt.Sprintf("pub const %s = Register(%s_val).init(base_address + 0x%x);", r.Name, r.Name, *r.AddressOffset))
}

// sortFields orders fields ascending by bit offset, stable with respect
// to input order among ties. Fields with an absent bit offset sort to
// the front — their presence is what triggers Register's invalid-field
// abort, so it must be detected before (or at) the first field walked.
func sortFields(fields []*svd.Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i].BitOffset, fields[j].BitOffset
		switch {
		case a == nil && b != nil:
			return true
		case a != nil && b == nil:
			return false
		case a == nil && b == nil:
			return false
		default:
			return *a < *b
		}
	})
}
