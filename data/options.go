package data

import (
	"io"
	"log"
	"os"
)

// Options is the nested configuration bundle for the planner and its
// collaborators, grounded on the *data.Options parameter the teacher
// threads through its renderer and modifier constructors
// (gcode/renderer/layer.go, modifier/support.go). Here gcode.PreLayer takes
// it directly; NewPlanner and gcode.NewWriter take individual values that
// callers read out of it.
type Options struct {
	Logger  *log.Logger
	Print   PrintOptions
	Printer PrinterOptions
	Planner PlannerOptions
}

// NewOptions returns Options with sane defaults and a Logger writing to
// os.Stderr, matching the teacher's pattern of always having a non-nil
// Logger available to every component.
func NewOptions() Options {
	return Options{
		Logger:  log.New(os.Stderr, "", log.LstdFlags),
		Print:   PrintOptions{LayerThickness: Millimeter(0.2).ToMicrometer()},
		Printer: PrinterOptions{ExtrusionWidth: Millimeter(0.4).ToMicrometer()},
		Planner: DefaultPlannerOptions(),
	}
}

// WithDiscardLog silences Options.Logger, useful for tests.
func (o Options) WithDiscardLog() Options {
	o.Logger = log.New(io.Discard, "", 0)
	return o
}

// PrintOptions collects the print-wide geometry settings that affect the
// planner: layer thickness (for spiralize Z-lift) and move/layer speeds.
type PrintOptions struct {
	LayerThickness        Micrometer
	InitialLayerThickness Micrometer
	MoveSpeed             int
	LayerSpeed            int
}

// PrinterOptions collects printer-hardware constants.
type PrinterOptions struct {
	ExtrusionWidth Micrometer
	ExtruderCount  int
}

// PlannerOptions collects the planner's own tunables: construction-time
// retraction/travel-speed policy plus the parameters its
// ForceMinimumLayerTime and WriteQueued calls need.
type PlannerOptions struct {
	TravelSpeedMMS              int
	RetractionMinimumDistanceUm Micrometer
	AlwaysRetract               bool
	MinimumLayerTimeS           float64
	MinimumPrintingSpeedMMS     int
	BridgeFanSpeedPercent       int
	NormalFanSpeedPercent       int
	EnableOverlapRemoval        bool
}

// DefaultPlannerOptions returns conservative defaults matching common FFF
// slicer presets.
func DefaultPlannerOptions() PlannerOptions {
	return PlannerOptions{
		TravelSpeedMMS:              150,
		RetractionMinimumDistanceUm: Millimeter(1.5).ToMicrometer(),
		AlwaysRetract:               false,
		MinimumLayerTimeS:           5,
		MinimumPrintingSpeedMMS:     10,
		BridgeFanSpeedPercent:       100,
		NormalFanSpeedPercent:       -1,
		EnableOverlapRemoval:        false,
	}
}
