package engine

// palette holds the series colors in assignment order.
var palette = [...]string{
	"#9265b3", "#f15b88", "#fea241",
	"#8577b6", "#d072cc", "#e5ab83", "#fff2a5", "#856363",
	"#656abb", "#9b7cc3", "#d28eca", "#e3c2bd", "#f4f6af",
	"#ffb57c", "#fa6579", "#bb1f8c", "#6a1596", "#18299b",
	"#b1e2f0", "#f4f4b9", "#fdc268", "#fb9ed6", "#d282e1",
}

// OthersColor marks the synthetic Otros bar of a single-series chart.
const OthersColor = "#82ca9d"

// PaletteSize is the number of distinct series colors.
const PaletteSize = len(palette)

// Palette returns a copy of the series palette.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette[:])
	return out
}

// ColorFor returns the color of the series at index. Indices past the end
// of the palette all get the last color; they do not cycle.
func ColorFor(index int) string {
	if index < 0 {
		return palette[0]
	}
	if index >= len(palette) {
		return palette[len(palette)-1]
	}
	return palette[index]
}

// CellColor returns the fill of one bar: the Otros row of a single-series
// chart gets OthersColor, everything else its series color.
func CellColor(row Row, seriesIndex int, mode Mode) string {
	if mode == SingleSeries && row.Name == OthersLabel {
		return OthersColor
	}
	return ColorFor(seriesIndex)
}
