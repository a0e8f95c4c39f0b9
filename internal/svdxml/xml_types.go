package svdxml

import "encoding/xml"

// The xml* types mirror the subset of the CMSIS-SVD schema this package
// enumerates. Every numeric field is kept as a raw string: SVD writes
// numbers as either plain decimal or "0x..." hex, and parseUint handles
// both without needing a custom xml.Unmarshaler per field.

type xmlDevice struct {
	XMLName xml.Name `xml:"device"`

	Name        string `xml:"name"`
	Version     string `xml:"version"`
	Description string `xml:"description"`

	AddressUnitBits string `xml:"addressUnitBits"`
	Width           string `xml:"width"`
	Size            string `xml:"size"`
	ResetValue      string `xml:"resetValue"`
	ResetMask       string `xml:"resetMask"`

	Cpu *xmlCpu `xml:"cpu"`

	Peripherals []xmlPeripheral `xml:"peripherals>peripheral"`
}

type xmlCpu struct {
	Name                string `xml:"name"`
	Revision            string `xml:"revision"`
	Endian              string `xml:"endian"`
	MpuPresent          string `xml:"mpuPresent"`
	FpuPresent          string `xml:"fpuPresent"`
	NvicPrioBits        string `xml:"nvicPrioBits"`
	VendorSystickConfig string `xml:"vendorSystickConfig"`
}

type xmlAddressBlock struct {
	Offset string `xml:"offset"`
	Size   string `xml:"size"`
	Usage  string `xml:"usage"`
}

type xmlInterrupt struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Value       string `xml:"value"`
}

type xmlField struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`

	// A field's position is given either as bitOffset/bitWidth or as a
	// single bitRange "[msb:lsb]" form; both appear in the wild.
	BitOffset string `xml:"bitOffset"`
	BitWidth  string `xml:"bitWidth"`
	BitRange  string `xml:"bitRange"`

	Access string `xml:"access"`
}

type xmlRegister struct {
	Name          string `xml:"name"`
	DisplayName   string `xml:"displayName"`
	Description   string `xml:"description"`
	AddressOffset string `xml:"addressOffset"`
	Size          string `xml:"size"`
	ResetValue    string `xml:"resetValue"`
	Access        string `xml:"access"`

	Fields []xmlField `xml:"fields>field"`
}

type xmlPeripheral struct {
	DerivedFrom string `xml:"derivedFrom,attr"`

	Name        string `xml:"name"`
	GroupName   string `xml:"groupName"`
	Description string `xml:"description"`

	BaseAddress  string           `xml:"baseAddress"`
	AddressBlock *xmlAddressBlock `xml:"addressBlock"`

	Registers  []xmlRegister  `xml:"registers>register"`
	Interrupts []xmlInterrupt `xml:"interrupt"`
}
