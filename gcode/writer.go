// Package gcode provides the default handler.GCodeWriter implementation:
// a line-oriented G-code text builder that tracks printer position,
// extruder state, and cumulative print time, grounded on the teacher's
// writer/writer.go (the file sink) and the Builder usage visible in
// gcode/renderer/layer.go (AddComment/AddCommand/SetExtrusion-style
// accumulation of a move's worth of state before a line is emitted).
package gcode

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/galamdring/toolpath/data"
)

// Writer accumulates G-code text in memory and implements
// handler.GCodeWriter. Nothing is written to a file until Flush is
// called, mirroring the teacher's separation between gcode.Builder
// (accumulation) and writer.Writer (the file sink).
type Writer struct {
	logger *log.Logger
	sb     strings.Builder

	pos           data.MicroVec3
	extruderIndex int
	extruderCount int

	eValue             [8]Millimeter
	retractionAmountUm data.Micrometer
	retractionSpeedMMS int
	retracted          [8]bool

	totalPrintTimeS  float64
	lastMoveSpeed    int
	layerThicknessUm data.Micrometer
}

// Millimeter mirrors data.Millimeter for the extruder's cumulative E
// position, which is accumulated in filament millimeters rather than
// micrometers per the teacher's gcode.Builder.
type Millimeter = data.Millimeter

// NewWriter returns a Writer ready to accept moves, starting at the
// origin with extruder 0 selected.
func NewWriter(logger *log.Logger, extruderCount int) *Writer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if extruderCount < 1 {
		extruderCount = 1
	}
	return &Writer{logger: logger, extruderCount: extruderCount, layerThicknessUm: data.Millimeter(0.2).ToMicrometer()}
}

// CurrentZ returns the writer's current Z height.
func (w *Writer) CurrentZ() data.Micrometer { return w.pos.Z() }

// CurrentExtruder returns the currently selected extruder index.
func (w *Writer) CurrentExtruder() int { return w.extruderIndex }

// PositionXY returns the writer's current XY position.
func (w *Writer) PositionXY() data.MicroPoint { return w.pos.XY() }

// PositionXYZ returns the writer's current 3D position.
func (w *Writer) PositionXYZ() data.MicroVec3 { return w.pos }

// PositionZ returns the writer's current Z height.
func (w *Writer) PositionZ() data.Micrometer { return w.pos.Z() }

// SwitchExtruder emits a tool-change command and selects the retraction
// state for the new extruder.
func (w *Writer) SwitchExtruder(index int) {
	if index == w.extruderIndex {
		return
	}
	w.retract(w.extruderIndex)
	w.extruderIndex = index
	w.addCommand("T%d", index)
}

// Retract emits a retraction command for the current extruder, a no-op
// if already retracted.
func (w *Writer) Retract() {
	w.retract(w.extruderIndex)
}

func (w *Writer) retract(extruder int) {
	if w.retracted[extruder%len(w.retracted)] {
		return
	}
	w.eValue[extruder%len(w.eValue)] -= Millimeter(float64(w.retractionAmountUm) / 1000)
	w.addCommand("G1 F%d E%.5f ; retract", w.retractionSpeedMMS*60, w.eValue[extruder%len(w.eValue)])
	w.retracted[extruder%len(w.retracted)] = true
}

// Fan emits a fan speed change, 0-100%.
func (w *Writer) Fan(percent int) {
	if percent <= 0 {
		w.addCommand("M107 ; fan off")
		return
	}
	pwm := int(math.Round(float64(percent) * 255 / 100))
	w.addCommand("M106 S%d ; fan %d%%", pwm, percent)
}

// Comment writes a formatted comment line.
func (w *Writer) Comment(format string, args ...interface{}) {
	w.sb.WriteString(";")
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteString("\n")
}

func (w *Writer) addCommand(format string, args ...interface{}) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteString("\n")
}

// WriteMove emits one G0/G1 move to p at speedMMS, extruding
// proportionally to the (3D) distance travelled when lineWidthUm is
// nonzero (the travel/extrusion distinction the teacher's Builder makes
// via its own line-width parameter).
func (w *Writer) WriteMove(p data.MicroVec3, speedMMS int, lineWidthUm data.Micrometer) {
	distance := p.Sub(w.pos).SizeMM()
	command := "G0"

	if lineWidthUm > 0 {
		command = "G1"
		if w.retracted[w.extruderIndex%len(w.retracted)] {
			w.eValue[w.extruderIndex%len(w.eValue)] += Millimeter(float64(w.retractionAmountUm) / 1000)
			w.addCommand("G1 F%d E%.5f ; unretract", w.retractionSpeedMMS*60, w.eValue[w.extruderIndex%len(w.eValue)])
			w.retracted[w.extruderIndex%len(w.retracted)] = false
		}
		extrudeMM := filamentLength(distance, lineWidthUm, w.layerThicknessUm)
		w.eValue[w.extruderIndex%len(w.eValue)] += extrudeMM
	}

	if speedMMS != w.lastMoveSpeed {
		w.addCommand("%s F%d X%.3f Y%.3f Z%.3f E%.5f", command, speedMMS*60,
			float64(p.X())/1000, float64(p.Y())/1000, float64(p.Z())/1000, w.eValue[w.extruderIndex%len(w.eValue)])
		w.lastMoveSpeed = speedMMS
	} else {
		w.addCommand("%s X%.3f Y%.3f Z%.3f E%.5f", command,
			float64(p.X())/1000, float64(p.Y())/1000, float64(p.Z())/1000, w.eValue[w.extruderIndex%len(w.eValue)])
	}

	if speedMMS > 0 {
		w.totalPrintTimeS += float64(distance) / float64(speedMMS)
	}
	w.pos = p
}

// UpdateTotalPrintTime logs the writer's running total print time
// estimate, mirroring the teacher's per-layer progress log lines.
func (w *Writer) UpdateTotalPrintTime() {
	w.logger.Printf("total print time so far: %.1fs", w.totalPrintTimeS)
}

// SetRetraction configures the retraction distance and speed used by
// Retract/SwitchExtruder and the auto-unretract in WriteMove.
func (w *Writer) SetRetraction(amountUm data.Micrometer, speedMMS int) {
	w.retractionAmountUm = amountUm
	w.retractionSpeedMMS = speedMMS
}

// SetLayerThickness configures the layer height used to estimate filament
// consumption for subsequent moves.
func (w *Writer) SetLayerThickness(thicknessUm data.Micrometer) {
	w.layerThicknessUm = thicknessUm
}

// String returns the accumulated G-code text.
func (w *Writer) String() string {
	return w.sb.String()
}

// filamentLength estimates the filament length consumed extruding a move
// of the given distance with a bead of lineWidthUm width and
// layerThickness height, approximating the bead's cross-section as a
// rectangle (width*height) divided by the filament's circular
// cross-section, matching common FFF slicer flow math.
func filamentLength(distanceMM data.Millimeter, lineWidthUm, layerThicknessUm data.Micrometer) Millimeter {
	const filamentDiameterMM = 1.75
	beadAreaMM2 := float64(lineWidthUm) / 1000 * float64(layerThicknessUm) / 1000
	filamentAreaMM2 := math.Pi * (filamentDiameterMM / 2) * (filamentDiameterMM / 2)
	return Millimeter(float64(distanceMM) * beadAreaMM2 / filamentAreaMM2)
}
