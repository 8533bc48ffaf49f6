package data

// Recognized PathConfig comment tags. The emission pass treats these three
// specially (bridge fan overrides, outer/inner wall trimming); all other
// comment strings are opaque labels copied verbatim into a "TYPE:" comment.
const (
	CommentWallOuter = "WALL-OUTER"
	CommentWallInner = "WALL-INNER"
	CommentBridge    = "BRIDGE"
)

// PathConfig is a value bundle naming one motion kind: its nominal speed,
// extrusion width, and how the emission pass should treat it. Two paths
// belong to the same logical group only if they share the same PathConfig
// *instance* — see GCodePath's doc comment.
type PathConfig struct {
	SpeedMMS    int
	LineWidthUm Micrometer
	Comment     string
	Spiralize   bool
	ClosedLoop  bool
}

// IsTravel reports whether this config represents a non-extruding move.
func (c *PathConfig) IsTravel() bool {
	return c.LineWidthUm == 0
}

// NewTravelConfig returns the fixed travel PathConfig: zero width, the
// given nominal speed, never a closed loop.
func NewTravelConfig(speedMMS int) *PathConfig {
	return &PathConfig{
		SpeedMMS:    speedMMS,
		LineWidthUm: 0,
		Comment:     "TRAVEL",
	}
}

// GCodePath is one sequential block of 3D points sharing a single
// PathConfig and extruder index.
//
// Config grouping is by reference identity, not structural equality:
// the planner's getLatestPathWithConfig only appends to the tail path when its Config
// pointer equals the requested config, matching the teacher's "same
// instance" pattern for unexported config singletons (data.PathConfig
// values are typically held once per motion kind and passed around by
// pointer, never copied by value across paths).
type GCodePath struct {
	Config        *PathConfig
	ExtruderIndex int
	RetractBefore bool
	Points        []MicroVec3
	Done          bool
}

// Appendable reports whether this path may still receive points for the
// given config: it must not be done and must share the same config
// instance.
func (g *GCodePath) Appendable(config *PathConfig) bool {
	return !g.Done && g.Config == config
}

// Segment is a directed edge between two 3D points, with an optional
// extrusion width (0 by default, meaning "use the owning path's config
// width"). Equality is structural on the endpoints only; Width is excluded
// so that two geometrically identical segments compare equal regardless of
// any width annotation applied by the overlap detector.
type Segment struct {
	Start MicroVec3
	End   MicroVec3
	Width Micrometer
}

// StartXY and EndXY are convenience accessors used heavily by the segment
// splitting and overlap-merge code, which operates purely in the XY plane.
func (s Segment) StartXY() MicroPoint { return s.Start.XY() }
func (s Segment) EndXY() MicroPoint   { return s.End.XY() }

// EqualEndpoints reports structural equality on Start/End only.
func (s Segment) EqualEndpoints(o Segment) bool {
	return s.Start == o.Start && s.End == o.End
}

// PathAndWidth is one contiguous fragment produced by the overlap
// detector: an ordered point sequence and the single extrusion width that
// applies to the whole fragment.
type PathAndWidth struct {
	Path             []MicroVec3
	ExtrusionWidthUm Micrometer
}
