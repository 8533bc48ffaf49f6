package data

import "testing"

func TestMillimeterToMicrometer(t *testing.T) {
	cases := []struct {
		mm   Millimeter
		want Micrometer
	}{
		{0.4, 400},
		{0.2, 200},
		{1.5, 1500},
		{0, 0},
	}
	for _, c := range cases {
		if got := c.mm.ToMicrometer(); got != c.want {
			t.Errorf("%v.ToMicrometer() = %d, want %d", c.mm, got, c.want)
		}
	}
}

func TestMicrometerToMillimeter(t *testing.T) {
	if got := Micrometer(1500).ToMillimeter(); got != 1.5 {
		t.Errorf("got %v, want 1.5", got)
	}
}

func TestToRadians(t *testing.T) {
	if got := ToRadians(180); got < 3.14159 || got > 3.14160 {
		t.Errorf("ToRadians(180) = %v, want pi", got)
	}
	if got := ToRadians(0); got != 0 {
		t.Errorf("ToRadians(0) = %v, want 0", got)
	}
}
