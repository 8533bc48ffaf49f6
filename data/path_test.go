package data

import "testing"

func TestPathIsAlmostFinished(t *testing.T) {
	p := Path{
		NewMicroPoint(0, 0),
		NewMicroPoint(1000, 0),
		NewMicroPoint(1000, 1000),
		NewMicroPoint(10, 10),
	}
	if !p.IsAlmostFinished(50) {
		t.Error("expected path ending within 50um of its start to be almost finished")
	}
	if p.IsAlmostFinished(5) {
		t.Error("expected path ending 14um from its start not to be almost finished at snap distance 5")
	}
}

func TestPathIsAlmostFinishedTooShort(t *testing.T) {
	p := Path{NewMicroPoint(0, 0)}
	if p.IsAlmostFinished(1000000) {
		t.Error("a single-point path can never be almost finished")
	}
}
