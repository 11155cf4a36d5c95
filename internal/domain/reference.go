package domain

// ChartData is the per-rank coverage of alive forms, ready for a bar chart.
// Labels, Counts, Colors and Borders are parallel slices.
type ChartData struct {
	Labels  []string
	Counts  []int
	Colors  []BarColor
	Borders []string
	Total   int
}

// BarColor is a solid fill, or a 50/50 vertical split when Bottom is set.
type BarColor struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom,omitempty"`
}

// IsSplit reports whether the bar is drawn as two halves.
func (c BarColor) IsSplit() bool {
	return c.Bottom != ""
}
