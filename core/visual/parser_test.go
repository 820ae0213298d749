// ABOUTME: Tests for the visual spec parser across its extraction strategies
// ABOUTME: The parser is total, so every input must yield a renderable result

package visual

import (
	"strings"
	"testing"

	"magicmuse-api/core/domain"
)

func TestParse_TotalOnGarbage(t *testing.T) {
	p := NewParser()
	inputs := []string{
		"",
		"   \n\t  ",
		"no structure here at all",
		"```visual-specification\n{broken json```",
		strings.Repeat("x", 10000),
	}
	for _, raw := range inputs {
		result := p.Parse(domain.VisualChart, raw)
		if result.Type != domain.VisualChart {
			t.Errorf("type = %s, want chart", result.Type)
		}
		if result.RawData != raw {
			t.Error("raw data must be preserved verbatim")
		}
		if result.DataPoints == nil {
			t.Error("data points must never be nil")
		}
	}
}

func TestParse_ChartPlaceholderFallback(t *testing.T) {
	p := NewParser()
	result := p.Parse(domain.VisualChart, "nothing numeric in here")
	want := []domain.DataPoint{
		{Label: "A", Value: 65},
		{Label: "B", Value: 35},
		{Label: "C", Value: 50},
		{Label: "D", Value: 25},
	}
	if len(result.DataPoints) != len(want) {
		t.Fatalf("placeholder series has %d points, want %d", len(result.DataPoints), len(want))
	}
	for i, dp := range result.DataPoints {
		if dp.Label != want[i].Label || dp.Value != want[i].Value {
			t.Errorf("placeholder[%d] = %+v, want %+v", i, dp, want[i])
		}
	}
}

func TestParse_NonChartNoPlaceholder(t *testing.T) {
	p := NewParser()
	result := p.Parse(domain.VisualTable, "unparseable table prose")
	if len(result.DataPoints) != 0 {
		t.Error("tables get no placeholder series")
	}
	if result.DataPoints == nil {
		t.Error("data points must be an empty slice, not nil")
	}
}

func TestParse_FencedJSONChart(t *testing.T) {
	raw := "Some slide text.\n```visual-specification\n" +
		`{"type":"chart","title":"Revenue","chartType":"bar","xAxisLabel":"Quarter","yAxisLabel":"Revenue ($M)",` +
		`"data":[{"label":"Q1","value":1.2},{"label":"Q2","value":"2.5","category":"actual"},{"label":"bad","value":"n/a"}]}` +
		"\n```\nMore text."
	result := NewParser().Parse(domain.VisualChart, raw)

	if result.Title != "Revenue" {
		t.Errorf("title = %q, want Revenue", result.Title)
	}
	if result.ChartType != "bar" {
		t.Errorf("chart type = %q, want bar", result.ChartType)
	}
	if result.XAxisLabel != "Quarter" || result.YAxisLabel != "Revenue ($M)" {
		t.Errorf("axis labels = %q / %q", result.XAxisLabel, result.YAxisLabel)
	}
	if len(result.DataPoints) != 2 {
		t.Fatalf("data points = %d, want 2 (non-numeric dropped)", len(result.DataPoints))
	}
	if result.DataPoints[1].Value != 2.5 || result.DataPoints[1].Category != "actual" {
		t.Errorf("string-valued point parsed wrong: %+v", result.DataPoints[1])
	}
	if result.RawData != raw {
		t.Error("raw data must be preserved verbatim")
	}
}

func TestParse_FencedJSONUnknownChartType(t *testing.T) {
	raw := "```visual-specification\n" +
		`{"type":"chart","title":"T","chartType":"sunburst","data":[{"label":"a","value":1}]}` +
		"\n```"
	result := NewParser().Parse(domain.VisualChart, raw)
	if result.ChartType != "line" {
		t.Errorf("unknown chart type should render as line, got %q", result.ChartType)
	}
}

func TestParse_FencedJSONTable(t *testing.T) {
	raw := "```visual-specification\n" +
		`{"type":"table","title":"Comparison","headers":["Feature","Us","Them"],"rows":[["Speed","Fast","Slow"]]}` +
		"\n```"
	result := NewParser().Parse(domain.VisualTable, raw)
	if len(result.TableHeaders) != 3 {
		t.Fatalf("headers = %v", result.TableHeaders)
	}
	if len(result.TableRows) != 1 || result.TableRows[0][2] != "Slow" {
		t.Fatalf("rows = %v", result.TableRows)
	}
}

func TestParse_FencedJSONDiagram(t *testing.T) {
	raw := "```visual-specification\n" +
		`{"type":"diagram","title":"Flow","nodes":[{"id":"a","label":"Input"},{"id":"b","label":"Output"}],` +
		`"edges":[{"from":"a","to":"b"}]}` +
		"\n```"
	result := NewParser().Parse(domain.VisualDiagram, raw)
	if len(result.DiagramNodes) != 2 || len(result.DiagramEdges) != 1 {
		t.Fatalf("nodes = %v, edges = %v", result.DiagramNodes, result.DiagramEdges)
	}
	if result.DiagramEdges[0].From != "a" || result.DiagramEdges[0].To != "b" {
		t.Errorf("edge = %+v", result.DiagramEdges[0])
	}
}

func TestParse_FencedJSONTypeOverridesRequested(t *testing.T) {
	raw := "```visual-specification\n" +
		`{"type":"table","title":"T","headers":["A"],"rows":[["1"]]}` +
		"\n```"
	result := NewParser().Parse(domain.VisualChart, raw)
	if result.Type != domain.VisualTable {
		t.Errorf("declared type should win, got %s", result.Type)
	}
}

func TestParse_BracketTag(t *testing.T) {
	result := NewParser().Parse(domain.VisualChart, "[VISUALIZATION: Growth over time]")
	if result.Title != "Growth over time" {
		t.Errorf("title = %q", result.Title)
	}
	if result.Type != domain.VisualChart {
		t.Errorf("type = %s, want chart", result.Type)
	}
	// No data in the tag, so the placeholder applies.
	if len(result.DataPoints) != 4 {
		t.Errorf("expected placeholder series, got %d points", len(result.DataPoints))
	}

	result = NewParser().Parse(domain.VisualChart, "[Table: Pricing tiers]")
	if result.Type != domain.VisualTable {
		t.Errorf("bracket tag kind should set the type, got %s", result.Type)
	}
}

func TestParse_LabeledChartCSV(t *testing.T) {
	raw := "Title: Quarterly Sales\nType: chart\nData:\nQ1, $1,200\nQ2, 1800\nQ3, 95%\nnot a data line"
	result := NewParser().Parse(domain.VisualChart, raw)

	if result.Title != "Quarterly Sales" {
		t.Errorf("title = %q", result.Title)
	}
	if len(result.DataPoints) != 3 {
		t.Fatalf("data points = %v", result.DataPoints)
	}
	if result.DataPoints[0].Value != 1200 {
		t.Errorf("currency with thousands separator parsed as %v", result.DataPoints[0].Value)
	}
	if result.DataPoints[2].Value != 95 {
		t.Errorf("percent value parsed as %v", result.DataPoints[2].Value)
	}
}

func TestParse_LabeledTable(t *testing.T) {
	raw := "Title: Plans\nType: table\nData:\n| Plan | Price |\n|------|-------|\n| Free | 0 |\n| Pro | 29 |"
	result := NewParser().Parse(domain.VisualTable, raw)

	if len(result.TableHeaders) != 2 || result.TableHeaders[0] != "Plan" {
		t.Fatalf("headers = %v", result.TableHeaders)
	}
	if len(result.TableRows) != 2 {
		t.Fatalf("rule row should be skipped, rows = %v", result.TableRows)
	}
	if result.TableRows[1][1] != "29" {
		t.Errorf("rows = %v", result.TableRows)
	}
}

func TestParse_LabeledDiagram(t *testing.T) {
	raw := "Title: Pipeline\nType: diagram\nData:\nLead -> Qualified\nQualified -> Closed\n"
	result := NewParser().Parse(domain.VisualDiagram, raw)

	if len(result.DiagramNodes) != 3 {
		t.Fatalf("nodes = %v", result.DiagramNodes)
	}
	if len(result.DiagramEdges) != 2 {
		t.Fatalf("edges = %v", result.DiagramEdges)
	}
	if result.DiagramEdges[0].From != "Lead" || result.DiagramEdges[0].To != "Qualified" {
		t.Errorf("first edge = %+v", result.DiagramEdges[0])
	}
}

func TestParse_SectionMetadata(t *testing.T) {
	raw := "Title: Overview\nType: infographic\nElements: three stat callouts\nLayout: horizontal\nColor Usage: brand primary"
	result := NewParser().Parse(domain.VisualInfographic, raw)
	if result.Elements != "three stat callouts" {
		t.Errorf("elements = %q", result.Elements)
	}
	if result.Layout != "horizontal" {
		t.Errorf("layout = %q", result.Layout)
	}
	if result.ColorUsage != "brand primary" {
		t.Errorf("color usage = %q", result.ColorUsage)
	}
}

func TestParse_MarketHeuristicOffByDefault(t *testing.T) {
	raw := "The market is worth $4.5 billion growing at a CAGR of 12%."
	result := NewParser().Parse(domain.VisualChart, raw)
	// Without the heuristic this falls through to the placeholder.
	if len(result.DataPoints) != 4 || result.DataPoints[0].Label != "A" {
		t.Errorf("heuristic must be opt-in, got %v", result.DataPoints)
	}
}
