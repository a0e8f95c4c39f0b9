package svd

import "sort"

// SortedInterrupts returns the device's interrupts ordered by ascending
// vector number. Go map iteration order is randomized per-run, which
// would make the emitted interrupt table nondeterministic; sorting here
// gives callers a stable order without mutating Device.Interrupts itself.
func (d *Device) SortedInterrupts() []*Interrupt {
	values := make([]uint32, 0, len(d.Interrupts))
	for v := range d.Interrupts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	out := make([]*Interrupt, 0, len(values))
	for _, v := range values {
		out = append(out, d.Interrupts[v])
	}
	return out
}
