package model

// PieGeometry is the logical canvas the pie layout is computed against.
type PieGeometry struct {
	CenterX, CenterY float64
	Radius           float64
	LabelRadius      float64 // distance of in-slice labels from the center
	MinLabelAngle    float64 // radians; narrower slices get no in-slice label

	LegendY             float64
	LegendRowHeight     float64
	SingleColumnAfter   int // more categories than this switches to one column
	SingleColumnX       float64
	TwoColumnX          [2]float64
	SingleColumnMaxChar int // labels longer than this are truncated in one-column mode
	TwoColumnMaxChar    int
}

// DefaultPieGeometry mirrors the 450x400 canvas the budget chart was designed for.
func DefaultPieGeometry() PieGeometry {
	return PieGeometry{
		CenterX:             150,
		CenterY:             150,
		Radius:              100,
		LabelRadius:         70,
		MinLabelAngle:       0.2,
		LegendY:             310,
		LegendRowHeight:     28,
		SingleColumnAfter:   6,
		SingleColumnX:       20,
		TwoColumnX:          [2]float64{10, 220},
		SingleColumnMaxChar: 18,
		TwoColumnMaxChar:    12,
	}
}

// Slice is one wedge of the pie.
type Slice struct {
	Index     int
	Label     string
	Percent   float64
	Start     float64 // radians
	Sweep     float64 // radians
	Hue       int
	Color     string // #rrggbb
	ShowLabel bool
	LabelX    float64
	LabelY    float64
}

// End returns the angle where the slice stops.
func (s Slice) End() float64 { return s.Start + s.Sweep }

// LegendEntry is one positioned legend row.
type LegendEntry struct {
	Index   int
	X, Y    float64
	Label   string // display label, possibly truncated
	Full    string
	Amount  float64
	Percent float64
	Color   string
}

// PieLayout is the complete geometry for one pie chart.
type PieLayout struct {
	Geometry PieGeometry
	Slices   []Slice
	Columns  int
	Legend   []LegendEntry
}
