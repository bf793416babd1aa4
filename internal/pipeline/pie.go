package pipeline

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/theirongolddev/paycheck/internal/model"
)

// Slice colors step the hue by 137 degrees at fixed saturation and lightness.
const (
	hueStep         = 137
	sliceSaturation = 0.70
	sliceLightness  = 0.60
)

// SliceHue returns the hue in degrees for the slice at index.
func SliceHue(index int) int {
	return (index * hueStep) % 360
}

// SliceColor returns the hex color for the slice at index.
func SliceColor(index int) string {
	return colorful.Hsl(float64(SliceHue(index)), sliceSaturation, sliceLightness).Hex()
}

// LayoutPie turns aggregated categories into consecutive slices starting at
// angle 0 and a legend that switches to a single column for long lists.
func LayoutPie(cats []model.CategoryStats, geom model.PieGeometry) model.PieLayout {
	layout := model.PieLayout{
		Geometry: geom,
		Slices:   make([]model.Slice, 0, len(cats)),
		Legend:   make([]model.LegendEntry, 0, len(cats)),
		Columns:  2,
	}
	if len(cats) > geom.SingleColumnAfter {
		layout.Columns = 1
	}

	start := 0.0
	for i, c := range cats {
		pct := c.TotalPercent.InexactFloat64()
		sweep := pct / 100 * 2 * math.Pi
		s := model.Slice{
			Index:   i,
			Label:   c.Label,
			Percent: pct,
			Start:   start,
			Sweep:   sweep,
			Hue:     SliceHue(i),
			Color:   SliceColor(i),
		}
		if sweep > geom.MinLabelAngle {
			mid := start + sweep/2
			s.ShowLabel = true
			s.LabelX = geom.CenterX + math.Cos(mid)*geom.LabelRadius
			s.LabelY = geom.CenterY + math.Sin(mid)*geom.LabelRadius
		}
		layout.Slices = append(layout.Slices, s)
		start += sweep

		entry := model.LegendEntry{
			Index:   i,
			Full:    c.Label,
			Amount:  c.TotalAmount.InexactFloat64(),
			Percent: pct,
			Color:   s.Color,
		}
		if layout.Columns == 1 {
			entry.X = geom.SingleColumnX
			entry.Y = geom.LegendY + float64(i)*geom.LegendRowHeight
			entry.Label = TruncateLabel(c.Label, geom.SingleColumnMaxChar)
		} else {
			entry.X = geom.TwoColumnX[i%2]
			entry.Y = geom.LegendY + float64(i/2)*geom.LegendRowHeight
			entry.Label = TruncateLabel(c.Label, geom.TwoColumnMaxChar)
		}
		layout.Legend = append(layout.Legend, entry)
	}

	return layout
}

// TruncateLabel shortens labels wider than limit to limit-2 columns plus "...".
func TruncateLabel(label string, limit int) string {
	if limit <= 2 || runewidth.StringWidth(label) <= limit {
		return label
	}
	return runewidth.Truncate(label, limit-2, "") + "..."
}

// SliceAt returns the index of the slice covering angle (radians, 0..2π),
// or -1 when the angle falls past the last slice.
func SliceAt(layout model.PieLayout, angle float64) int {
	for _, s := range layout.Slices {
		if angle >= s.Start && angle < s.End() {
			return s.Index
		}
	}
	return -1
}
