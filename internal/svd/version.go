package svd

import "golang.org/x/mod/semver"

// NormalizedVersion returns d.Version in canonical semver form ("v1.2.3")
// when it parses as one, and d.Version unchanged otherwise. Vendor SVD
// packs are inconsistent about a leading "v" and zero-padding, so a
// batch run comparing or sorting devices by version needs this rather
// than relying on raw attribute text (which the emitter still does —
// the emitter still emits Version verbatim, falling back to "unknown").
func (d *Device) NormalizedVersion() string {
	v := d.Version
	if v == "" {
		return v
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return d.Version
	}
	return semver.Canonical(v)
}
