package input

import (
	"math"
	"testing"
)

func TestAxisToFloat(t *testing.T) {
	const (
		neg     = -32767.0
		deadNeg = -1024.0
		deadPos = 1024.0
		pos     = 32767.0
	)

	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{500, 0},        // inside deadzone
		{-500, 0},       // inside deadzone
		{32767, 1},      // full deflection
		{40000, 1},      // clamped
		{-32767, -1},    // full deflection
		{-40000, -1},    // clamped
		{deadPos, 0},    // deadzone edge
		{deadNeg, 0},    // deadzone edge
		{16895.5, 0.5},   // halfway between deadPos and pos
		{-16895.5, -0.5}, // halfway on the negative side
	}

	for _, c := range cases {
		got := AxisToFloat(c.raw, neg, deadNeg, deadPos, pos)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AxisToFloat(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestAxisToFloatInvertedRange(t *testing.T) {
	// An inverted range swaps both the range and deadzone bounds.
	got := AxisToFloat(32767, 32767, 1024, -1024, -32767)
	if got != 1 {
		t.Errorf("AxisToFloat with inverted range = %v, want 1", got)
	}
	got = AxisToFloat(0, 32767, 1024, -1024, -32767)
	if got != 0 {
		t.Errorf("AxisToFloat(0) with inverted range = %v, want 0", got)
	}
}

func TestAxisPressed(t *testing.T) {
	if AxisPressed(0) {
		t.Error("Centered axis should not read as pressed")
	}
	if AxisPressed(1023) {
		t.Error("Value inside deadzone should not read as pressed")
	}
	if !AxisPressed(1024) {
		t.Error("Value at deadzone edge should read as pressed")
	}
	if !AxisPressed(-20000) {
		t.Error("Large negative deflection should read as pressed")
	}
}

func TestAssignIDs(t *testing.T) {
	ids := AssignIDs([]string{"Pad", "Stick", "Pad", "Pad"})

	want := []string{"Pad", "Stick", "Pad 2", "Pad 3"}
	if len(ids) != len(want) {
		t.Fatalf("AssignIDs returned %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestAssignIDsEmpty(t *testing.T) {
	if ids := AssignIDs(nil); len(ids) != 0 {
		t.Errorf("AssignIDs(nil) = %v, want empty", ids)
	}
}
