package gcode

import "github.com/galamdring/toolpath/data"

// PreLayer emits the per-layer preamble: a layer comment, and on layer 0
// the machine-startup sequence (homing, extrusion reset, retraction and
// layer-thickness setup; no heating commands are emitted), then the normal
// fan speed when it is not negative. This is grounded on the teacher's
// gcode/renderer/layer.go
// PreLayer, adapted from its Builder/data.Options fields (Filament,
// InitialHotEndTemperature, ...) to the toolpath package's narrower
// data.Options, which carries only the settings the planner itself
// needs.
func PreLayer(w *Writer, layerNr int, opts *data.Options) {
	w.Comment("LAYER:%d", layerNr)

	if layerNr == 0 {
		w.Comment("generated by toolpath")
		w.addCommand("G28 ; home all axes")
		w.addCommand("G92 E0 ; reset extrusion distance")
		w.SetRetraction(opts.Planner.RetractionMinimumDistanceUm, 40)
		w.SetLayerThickness(opts.Print.InitialLayerThickness)
	} else if layerNr == 1 {
		w.SetLayerThickness(opts.Print.LayerThickness)
	}

	if opts.Planner.NormalFanSpeedPercent >= 0 {
		w.Fan(opts.Planner.NormalFanSpeedPercent)
	}
}

// PostLayer emits the end-of-print sequence once layerNr is the last
// layer, grounded on the teacher's PostLayer.
func PostLayer(w *Writer, layerNr, maxLayer int) {
	if layerNr != maxLayer {
		return
	}
	w.Comment("end of print")
	w.Fan(0)
	w.addCommand("M104 S0 ; hot end off")
	w.addCommand("M140 S0 ; bed off")
	w.addCommand("G28 X0 ; home X axis to get head out of the way")
	w.addCommand("M84 ; steppers off")
}
