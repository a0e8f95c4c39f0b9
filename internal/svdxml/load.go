// Package svdxml loads a CMSIS-SVD document into the svd model. It is
// deliberately a thin loader, kept separate from svd and svdemit: it
// exists so this repository is a complete, runnable tool, but the
// device model and emitter never depend on it.
package svdxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tinyrange/svdgen/internal/svd"
)

// Load decodes r as a CMSIS-SVD document and builds an svd.Device from
// it, in document order, resolving derivedFrom peripherals via
// deep-clone-then-override. It rejects the
// invariant violations the loader is responsible for: a register size
// other than 32, a field bit-range outside [0,32), and overlapping
// field bit-ranges — violations the emitter assumes can't happen and is
// not obliged to detect.
func Load(r io.Reader) (*svd.Device, error) {
	var raw xmlDevice
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("svdxml: decode: %w", err)
	}

	d := svd.NewDevice()
	d.Name = raw.Name
	d.Version = raw.Version
	d.Description = raw.Description

	if v, ok := parseUint(raw.AddressUnitBits); ok {
		d.AddressUnitBits = &v
	}
	if v, ok := parseUint(raw.Width); ok {
		d.MaxBitWidth = &v
	}
	defaultSize := uint32(32)
	if v, ok := parseUint(raw.Size); ok {
		d.RegDefaultSize = &v
		defaultSize = v
	}
	var defaultReset uint32
	if v, ok := parseUint(raw.ResetValue); ok {
		d.RegDefaultResetVal = &v
		defaultReset = v
	}
	if v, ok := parseUint(raw.ResetMask); ok {
		d.RegDefaultResetMask = &v
	}

	if raw.Cpu != nil {
		d.Cpu = convertCpu(raw.Cpu)
	}

	byName := make(map[string]*svd.Peripheral, len(raw.Peripherals))
	for _, rp := range raw.Peripherals {
		p, err := convertPeripheral(rp, byName, defaultSize, defaultReset)
		if err != nil {
			return nil, err
		}
		byName[p.Name] = p
		d.Peripherals = append(d.Peripherals, p)

		for _, ri := range rp.Interrupts {
			iv := &svd.Interrupt{Name: ri.Name, Description: ri.Description}
			if v, ok := parseUint(ri.Value); ok {
				iv.Value = &v
			}
			if iv.Value == nil {
				continue
			}
			if _, exists := d.Interrupts[*iv.Value]; exists {
				return nil, fmt.Errorf("svdxml: duplicate interrupt value %d (%s)", *iv.Value, iv.Name)
			}
			d.Interrupts[*iv.Value] = iv
		}
	}

	return d, nil
}

func convertCpu(rc *xmlCpu) *svd.Cpu {
	c := &svd.Cpu{Name: rc.Name, Revision: rc.Revision, Endian: rc.Endian}
	if v, ok := parseBool(rc.MpuPresent); ok {
		c.MPUPresent = &v
	}
	if v, ok := parseBool(rc.FpuPresent); ok {
		c.FPUPresent = &v
	}
	if v, ok := parseUint(rc.NvicPrioBits); ok {
		c.NVICPrioBits = &v
	}
	if v, ok := parseBool(rc.VendorSystickConfig); ok {
		c.VendorSystickConfig = &v
	}
	return c
}

func convertPeripheral(rp xmlPeripheral, byName map[string]*svd.Peripheral, defaultSize, defaultReset uint32) (*svd.Peripheral, error) {
	var p *svd.Peripheral
	if rp.DerivedFrom != "" {
		proto, ok := byName[rp.DerivedFrom]
		if !ok {
			return nil, fmt.Errorf("svdxml: peripheral %q derivedFrom unknown peripheral %q", rp.Name, rp.DerivedFrom)
		}
		p = proto.Clone()
	} else {
		p = &svd.Peripheral{}
	}

	if rp.Name != "" {
		p.Name = rp.Name
	}
	if rp.GroupName != "" {
		p.GroupName = rp.GroupName
	}
	if rp.Description != "" {
		p.Description = rp.Description
	}
	if v, ok := parseUint(rp.BaseAddress); ok {
		p.BaseAddress = &v
	}
	if rp.AddressBlock != nil {
		ab := &svd.AddressBlock{Usage: rp.AddressBlock.Usage}
		if v, ok := parseUint(rp.AddressBlock.Offset); ok {
			ab.Offset = &v
		}
		if v, ok := parseUint(rp.AddressBlock.Size); ok {
			ab.Size = &v
		}
		p.AddressBlock = ab
	}

	if len(rp.Registers) > 0 {
		regs := make([]*svd.Register, 0, len(rp.Registers))
		for _, rr := range rp.Registers {
			reg, err := convertRegister(rr, p.Name, defaultSize, defaultReset)
			if err != nil {
				return nil, err
			}
			regs = append(regs, reg)
		}
		p.Registers = regs
	}

	return p, nil
}

func convertRegister(rr xmlRegister, periphName string, defaultSize, defaultReset uint32) (*svd.Register, error) {
	reg := svd.NewRegister()
	reg.PeriphContaining = periphName
	reg.Name = rr.Name
	reg.DisplayName = rr.DisplayName
	reg.Description = rr.Description
	reg.Access = parseAccess(rr.Access)
	if v, ok := parseUint(rr.AddressOffset); ok {
		reg.AddressOffset = &v
	}
	reg.Size = defaultSize
	if v, ok := parseUint(rr.Size); ok {
		reg.Size = v
	}
	reg.ResetValue = defaultReset
	if v, ok := parseUint(rr.ResetValue); ok {
		reg.ResetValue = v
	}
	if reg.Size != 32 {
		return nil, fmt.Errorf("svdxml: register %q: unsupported size %d bits (only 32-bit registers are supported)", rr.Name, reg.Size)
	}

	var covered [32]bool
	for _, rf := range rr.Fields {
		f := &svd.Field{
			Periph:              periphName,
			Register:            rr.Name,
			RegisterResetValue:  reg.ResetValue,
			Name:                rf.Name,
			Description:         rf.Description,
			Access:              parseAccess(rf.Access),
		}
		if offset, width, ok := fieldBitRange(rf); ok {
			if width == 0 || offset >= 32 || offset+width > 32 {
				return nil, fmt.Errorf("svdxml: register %q field %q: bit range [%d:%d) outside [0,32)", rr.Name, rf.Name, offset, offset+width)
			}
			for b := offset; b < offset+width; b++ {
				if covered[b] {
					return nil, fmt.Errorf("svdxml: register %q field %q: bit %d overlaps an earlier field", rr.Name, rf.Name, b)
				}
				covered[b] = true
			}
			f.BitOffset = &offset
			f.BitWidth = &width
		}
		reg.Fields = append(reg.Fields, f)
	}

	return reg, nil
}
