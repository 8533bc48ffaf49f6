package planner

import "github.com/galamdring/toolpath/data"

// fakeWriter is a minimal handler.GCodeWriter recording every move,
// grounded on the teacher's writer.Writer pattern of a small struct
// implementing the writer seam with no external side effects, here
// extended to track position/extruder state the way gcode.Writer does so
// planner tests can assert on it without a real G-code sink.
type fakeWriter struct {
	pos       data.MicroVec3
	extruder  int
	retracted int
	switched  []int
	fanCalls  []int
	comments  []string
	moves     []fakeMove
}

type fakeMove struct {
	Point     data.MicroVec3
	SpeedMMS  int
	LineWidth data.Micrometer
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{}
}

func (w *fakeWriter) CurrentZ() data.Micrometer      { return w.pos.Z() }
func (w *fakeWriter) CurrentExtruder() int           { return w.extruder }
func (w *fakeWriter) PositionXY() data.MicroPoint    { return w.pos.XY() }
func (w *fakeWriter) PositionXYZ() data.MicroVec3    { return w.pos }
func (w *fakeWriter) PositionZ() data.Micrometer     { return w.pos.Z() }

func (w *fakeWriter) SwitchExtruder(index int) {
	w.extruder = index
	w.switched = append(w.switched, index)
}

func (w *fakeWriter) Retract() { w.retracted++ }

func (w *fakeWriter) Fan(percent int) { w.fanCalls = append(w.fanCalls, percent) }

func (w *fakeWriter) Comment(format string, args ...interface{}) {
	w.comments = append(w.comments, format)
}

func (w *fakeWriter) WriteMove(p data.MicroVec3, speedMMS int, lineWidthUm data.Micrometer) {
	w.moves = append(w.moves, fakeMove{Point: p, SpeedMMS: speedMMS, LineWidth: lineWidthUm})
	w.pos = p
}

func (w *fakeWriter) UpdateTotalPrintTime() {}
