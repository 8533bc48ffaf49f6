package gcode

import (
	"strings"
	"testing"

	"github.com/galamdring/toolpath/data"
)

func TestPreLayerFirstLayerHomesAndResets(t *testing.T) {
	w := NewWriter(nil, 1)
	opts := data.NewOptions().WithDiscardLog()

	PreLayer(w, 0, &opts)

	text := w.String()
	if !strings.Contains(text, "G28") {
		t.Error("expected a homing command on layer 0")
	}
	if !strings.Contains(text, "LAYER:0") {
		t.Error("expected a LAYER comment")
	}
}

func TestPostLayerOnlyFiresOnLastLayer(t *testing.T) {
	w := NewWriter(nil, 1)
	PostLayer(w, 0, 5)
	if w.String() != "" {
		t.Error("PostLayer should emit nothing before the last layer")
	}

	PostLayer(w, 5, 5)
	if !strings.Contains(w.String(), "M84") {
		t.Error("expected the steppers-off command on the last layer")
	}
}
