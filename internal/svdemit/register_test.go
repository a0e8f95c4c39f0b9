package svdemit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tinyrange/svdgen/internal/svd"
)

func TestRegisterTwoFields(t *testing.T) {
	r := &svd.Register{
		PeriphContaining: "PERIPH",
		Name:             "RND",
		Description:      "RND comment",
		AddressOffset:    u32(0x100),
		Size:             32,
		ResetValue:       0b101,
		Fields: []*svd.Field{
			{Name: "SEED", Description: "SEED comment", BitOffset: u32(10), BitWidth: u32(3), RegisterResetValue: 0b101},
			{Name: "RNGEN", Description: "RNGEN comment", BitOffset: u32(2), BitWidth: u32(1), RegisterResetValue: 0b101},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	want := strings.Join([]string{
		"/// RND",
		"pub const RND_val = packed struct {",
		"/// unused [0:1]",
		"_unused0: u2 = 1,",
		"/// RNGEN [2:2]",
		"/// RNGEN comment",
		"RNGEN: u1 = 1,",
		"/// unused [3:9]",
		"_unused3: u5 = 0,",
		"_unused8: u2 = 0,",
		"/// SEED [10:12]",
		"/// SEED comment",
		"SEED: u3 = 0,",
		"/// unused [13:31]",
		"_unused13: u3 = 0,",
		"_unused16: u8 = 0,",
		"_unused24: u8 = 0,",
		"};",
		"/// RND comment",
		"pub const RND = Register(RND_val).init(base_address + 0x100);",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Fatalf("Register output mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRegisterMissingAddressOffset(t *testing.T) {
	r := &svd.Register{Name: "X", Size: 32}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	want := "// Not enough info to print register value\n"
	if got := buf.String(); got != want {
		t.Fatalf("Register output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRegisterFieldMissingWidth(t *testing.T) {
	r := &svd.Register{
		Name:          "Y",
		AddressOffset: u32(0),
		Fields: []*svd.Field{
			{Name: "BAD", BitOffset: u32(0)},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	want := "// Not enough info to print register\n"
	if got := buf.String(); got != want {
		t.Fatalf("Register output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRegisterNoFieldsChunksFullSpan(t *testing.T) {
	r := &svd.Register{
		Name:          "EMPTY",
		AddressOffset: u32(0),
		ResetValue:    0,
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"_unused0: u8 = 0,", "_unused8: u8 = 0,", "_unused16: u8 = 0,", "_unused24: u8 = 0,"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected chunk %q in output:\n%s", want, got)
		}
	}
}

func TestRegisterFieldSpanningWholeRegisterHasNoFiller(t *testing.T) {
	r := &svd.Register{
		Name:          "WHOLE",
		AddressOffset: u32(0),
		ResetValue:    0xDEADBEEF,
		Fields: []*svd.Field{
			{Name: "V", BitOffset: u32(0), BitWidth: u32(32), RegisterResetValue: 0xDEADBEEF},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if strings.Contains(buf.String(), "_unused") {
		t.Fatalf("expected no filler for a full-width field, got:\n%s", buf.String())
	}
}

func TestRegisterTrailingSingleBitFieldHasNoTrailingFiller(t *testing.T) {
	r := &svd.Register{
		Name:          "LAST",
		AddressOffset: u32(0),
		Fields: []*svd.Field{
			{Name: "TOP", BitOffset: u32(31), BitWidth: u32(1)},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "TOP: u1") {
		t.Fatalf("expected TOP field, got:\n%s", got)
	}
	if !strings.Contains(got, "_unused24: u7") {
		t.Fatalf("expected a 7-bit final chunk before the trailing field, got:\n%s", got)
	}
	if strings.Index(got, "TOP:") < strings.Index(got, "_unused24:") {
		t.Fatalf("expected the leading gap to be emitted before TOP, got:\n%s", got)
	}
	if strings.Contains(got[strings.Index(got, "TOP:"):], "_unused") {
		t.Fatalf("expected no trailing filler after a field ending at bit 31, got:\n%s", got)
	}
}

func TestRegisterGapAcrossMultipleByteBoundaries(t *testing.T) {
	r := &svd.Register{
		Name:          "GAP",
		AddressOffset: u32(0),
		Fields: []*svd.Field{
			{Name: "A", BitOffset: u32(0), BitWidth: u32(3)},
			{Name: "B", BitOffset: u32(26), BitWidth: u32(6)},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"/// unused [3:25]",
		"_unused3: u5",
		"_unused8: u8",
		"_unused16: u8",
		"_unused24: u2",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRegisterFieldsSortedEvenWhenInputOutOfOrder(t *testing.T) {
	r := &svd.Register{
		Name:          "SORT",
		AddressOffset: u32(0),
		Fields: []*svd.Field{
			{Name: "HIGH", BitOffset: u32(20), BitWidth: u32(4)},
			{Name: "LOW", BitOffset: u32(0), BitWidth: u32(4)},
		},
	}

	var buf bytes.Buffer
	if err := Register(&buf, r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got := buf.String()
	if strings.Index(got, "LOW:") > strings.Index(got, "HIGH:") {
		t.Fatalf("expected LOW before HIGH after sort, got:\n%s", got)
	}
}
