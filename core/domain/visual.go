// ABOUTME: Parsed visual specification model produced by the visual parser
// ABOUTME: Typed chart, table and diagram payloads extracted from freeform text

package domain

// DataPoint is one labeled value in a chart series.
type DataPoint struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

// DiagramNode is one node of a parsed diagram.
type DiagramNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DiagramEdge connects two diagram nodes by ID.
type DiagramEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ParsedVisualData is the best-effort structured interpretation of a freeform
// visual description. The parser is total: on failure it returns the minimal
// record with an empty DataPoints slice.
type ParsedVisualData struct {
	Type    VisualType `json:"type"`
	Title   string     `json:"title"`
	RawData string     `json:"rawData"`

	DataPoints []DataPoint `json:"dataPoints"`
	ChartType  string      `json:"chartType,omitempty"`
	XAxisLabel string      `json:"xAxisLabel,omitempty"`
	YAxisLabel string      `json:"yAxisLabel,omitempty"`

	TableHeaders []string   `json:"tableHeaders,omitempty"`
	TableRows    [][]string `json:"tableRows,omitempty"`

	DiagramNodes []DiagramNode `json:"diagramNodes,omitempty"`
	DiagramEdges []DiagramEdge `json:"diagramEdges,omitempty"`

	Elements   string `json:"elements,omitempty"`
	Layout     string `json:"layout,omitempty"`
	ColorUsage string `json:"colorUsage,omitempty"`
}

// RGBColor represents a color extracted from an image.
type RGBColor struct {
	R uint32 `json:"r"`
	G uint32 `json:"g"`
	B uint32 `json:"b"`
}

// Hex renders the color as a #rrggbb string.
func (c RGBColor) Hex() string {
	const hexdigits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{c.R, c.G, c.B} {
		b[1+i*2] = hexdigits[(v>>4)&0xf]
		b[2+i*2] = hexdigits[v&0xf]
	}
	return string(b)
}
