package svdxml

import (
	"strconv"
	"strings"

	"github.com/tinyrange/svdgen/internal/svd"
)

// parseUint parses an SVD numeric attribute: plain decimal or "0x..."
// hex, both of which appear throughout real vendor packs. An empty or
// unparseable string reports ok == false so callers can tell "absent"
// ("not specified") from "zero".
func parseUint(s string) (v uint32, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func parseBool(s string) (v bool, ok bool) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

func parseAccess(s string) svd.Access {
	switch strings.TrimSpace(s) {
	case "read-only":
		return svd.ReadOnly
	case "write-only":
		return svd.WriteOnly
	default:
		return svd.ReadWrite
	}
}

// fieldBitRange resolves a field's [offset, offset+width) span from
// whichever of the two SVD encodings is present: explicit bitOffset/
// bitWidth elements, or a combined bitRange "[msb:lsb]" string.
func fieldBitRange(rf xmlField) (offset, width uint32, ok bool) {
	if o, okO := parseUint(rf.BitOffset); okO {
		if w, okW := parseUint(rf.BitWidth); okW {
			return o, w, true
		}
	}

	s := strings.TrimSpace(rf.BitRange)
	if s == "" {
		return 0, 0, false
	}
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	msb, okMSB := parseUint(parts[0])
	lsb, okLSB := parseUint(parts[1])
	if !okMSB || !okLSB || msb < lsb {
		return 0, 0, false
	}
	return lsb, msb - lsb + 1, true
}
