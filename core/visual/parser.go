// ABOUTME: Best-effort parser turning freeform LLM text into structured visual data
// ABOUTME: Tries fenced JSON, bracket tags, the market heuristic, then labeled prose

package visual

import (
	"encoding/json"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"magicmuse-api/core/domain"
)

var (
	fencedSpecRe = regexp.MustCompile("(?s)```visual-specification\\s*\\n(.*?)```")
	bracketTagRe = regexp.MustCompile(`(?i)\[(VISUALIZATION|Chart|Table|Diagram|Infographic):\s*([^\]]+)\]`)
	sectionRe    = map[string]*regexp.Regexp{
		"title":      regexp.MustCompile(`(?im)^\s*Title:\s*(.+)$`),
		"type":       regexp.MustCompile(`(?im)^\s*Type:\s*(.+)$`),
		"elements":   regexp.MustCompile(`(?im)^\s*Elements:\s*(.+)$`),
		"layout":     regexp.MustCompile(`(?im)^\s*Layout:\s*(.+)$`),
		"colorUsage": regexp.MustCompile(`(?im)^\s*Color Usage:\s*(.+)$`),
	}
	csvLineRe  = regexp.MustCompile(`^\s*([^,|]+?)\s*[,|]\s*\$?([\d.,]+)%?\s*(?:[,|]\s*(.+?)\s*)?$`)
	edgeLineRe = regexp.MustCompile(`^\s*(.+?)\s*-+>\s*(.+?)\s*$`)
)

// placeholderSeries is returned for charts when no numeric data could be
// extracted, so the caller always has something renderable.
var placeholderSeries = []domain.DataPoint{
	{Label: "A", Value: 65},
	{Label: "B", Value: 35},
	{Label: "C", Value: 50},
	{Label: "D", Value: 25},
}

// Parser interprets freeform visual descriptions. Parsing is pure and
// stateless apart from the RNG used by the market-growth heuristic, which is
// seeded at construction so output can be made deterministic.
type Parser struct {
	rng             *rand.Rand
	marketHeuristic bool
	baseYear        int
}

// Option configures a Parser.
type Option func(*Parser)

// WithSeed fixes the RNG seed for the market-growth heuristic.
func WithSeed(seed int64) Option {
	return func(p *Parser) { p.rng = rand.New(rand.NewSource(seed)) }
}

// WithMarketHeuristic toggles the market-growth fabrication heuristic. It
// invents plausible-looking series from a single market-size figure, so it is
// off unless demo mode asks for it.
func WithMarketHeuristic(enabled bool) Option {
	return func(p *Parser) { p.marketHeuristic = enabled }
}

// WithBaseYear fixes the first year of fabricated series (defaults to the
// current year).
func WithBaseYear(year int) Option {
	return func(p *Parser) { p.baseYear = year }
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		baseYear: time.Now().Year(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts a raw visual description into structured data. It is total:
// any input, including garbage, yields a well-formed result, falling back to
// {type, title, rawData, empty dataPoints} when nothing can be extracted.
func (p *Parser) Parse(visualType domain.VisualType, raw string) (result domain.ParsedVisualData) {
	result = domain.ParsedVisualData{
		Type:       visualType,
		RawData:    raw,
		DataPoints: []domain.DataPoint{},
	}
	defer func() {
		if r := recover(); r != nil {
			result = domain.ParsedVisualData{
				Type:       visualType,
				RawData:    raw,
				DataPoints: []domain.DataPoint{},
			}
		}
	}()

	// Attempt 1: fenced JSON specification.
	if m := fencedSpecRe.FindStringSubmatch(raw); m != nil {
		if parsed, ok := p.parseJSONSpec(visualType, raw, m[1]); ok {
			return p.ensureRenderable(parsed)
		}
	}

	text := raw

	// Attempt 2: bracket-tagged description, rewritten as labeled sections.
	if m := bracketTagRe.FindStringSubmatch(text); m != nil {
		tag := strings.ToLower(m[1])
		if tag == "visualization" {
			tag = string(visualType)
		}
		text = "Type: " + tag + "\nTitle: " + strings.TrimSpace(m[2]) + "\nData:\n"
	}

	// Attempt 3: market-growth narrative.
	if p.marketHeuristic && visualType == domain.VisualChart {
		if series, title, ok := p.fabricateMarketSeries(raw); ok {
			result.Title = title
			result.ChartType = "line"
			result.XAxisLabel = "Year"
			result.YAxisLabel = "Market Size ($B)"
			result.DataPoints = series
			return result
		}
	}

	// Attempt 4: labeled-section prose.
	p.extractSections(&result, text)
	return p.ensureRenderable(result)
}

// jsonSpec mirrors the fenced JSON payload shape.
type jsonSpec struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	ChartType string `json:"chartType"`
	XAxis     string `json:"xAxisLabel"`
	YAxis     string `json:"yAxisLabel"`
	Data      []struct {
		Label    string      `json:"label"`
		Value    interface{} `json:"value"`
		Category string      `json:"category"`
		Color    string      `json:"color"`
	} `json:"data"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Nodes   []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	} `json:"nodes"`
	Edges []struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"edges"`
	Elements   string `json:"elements"`
	Layout     string `json:"layout"`
	ColorUsage string `json:"colorUsage"`
}

// parseJSONSpec maps a fenced JSON block onto the result. A JSON parse
// failure falls through to the later attempts.
func (p *Parser) parseJSONSpec(visualType domain.VisualType, raw, body string) (domain.ParsedVisualData, bool) {
	var spec jsonSpec
	if err := json.Unmarshal([]byte(body), &spec); err != nil {
		return domain.ParsedVisualData{}, false
	}

	result := domain.ParsedVisualData{
		Type:       visualType,
		Title:      spec.Title,
		RawData:    raw,
		DataPoints: []domain.DataPoint{},
		Elements:   spec.Elements,
		Layout:     spec.Layout,
		ColorUsage: spec.ColorUsage,
	}
	if t := domain.VisualType(spec.Type); t.Valid() {
		result.Type = t
	}

	switch result.Type {
	case domain.VisualTable:
		result.TableHeaders = spec.Headers
		result.TableRows = spec.Rows
	case domain.VisualDiagram:
		for _, n := range spec.Nodes {
			result.DiagramNodes = append(result.DiagramNodes, domain.DiagramNode{ID: n.ID, Label: n.Label})
		}
		for _, e := range spec.Edges {
			result.DiagramEdges = append(result.DiagramEdges, domain.DiagramEdge{From: e.From, To: e.To})
		}
	default:
		// Chart branch; unknown chart types render as line charts.
		result.ChartType = spec.ChartType
		if result.ChartType == "" || !knownChartType(result.ChartType) {
			result.ChartType = "line"
		}
		result.XAxisLabel = spec.XAxis
		result.YAxisLabel = spec.YAxis
		for _, d := range spec.Data {
			value, ok := parseNumber(d.Value)
			if !ok {
				continue
			}
			result.DataPoints = append(result.DataPoints, domain.DataPoint{
				Label:    d.Label,
				Value:    value,
				Category: d.Category,
				Color:    d.Color,
			})
		}
	}
	return result, true
}

// extractSections pulls Title:, Type:, Data:, Elements:, Layout: and
// Color Usage: out of labeled prose, then applies type-specific extraction to
// the Data section.
func (p *Parser) extractSections(result *domain.ParsedVisualData, text string) {
	if m := sectionRe["title"].FindStringSubmatch(text); m != nil {
		result.Title = strings.TrimSpace(m[1])
	}
	if m := sectionRe["type"].FindStringSubmatch(text); m != nil {
		if t := domain.VisualType(strings.ToLower(strings.TrimSpace(m[1]))); t.Valid() {
			result.Type = t
		}
	}
	if m := sectionRe["elements"].FindStringSubmatch(text); m != nil {
		result.Elements = strings.TrimSpace(m[1])
	}
	if m := sectionRe["layout"].FindStringSubmatch(text); m != nil {
		result.Layout = strings.TrimSpace(m[1])
	}
	if m := sectionRe["colorUsage"].FindStringSubmatch(text); m != nil {
		result.ColorUsage = strings.TrimSpace(m[1])
	}

	data := dataSection(text)
	switch result.Type {
	case domain.VisualTable:
		p.extractTable(result, data)
	case domain.VisualDiagram:
		p.extractDiagram(result, data)
	default:
		p.extractChart(result, data)
	}
}

// dataSection returns the lines following a Data: label, or the whole text
// when no label exists.
func dataSection(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(strings.ToLower(line)), "data:") {
			rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "Data:"))
			section := []string{}
			if rest != "" {
				section = append(section, rest)
			}
			for _, l := range lines[i+1:] {
				trimmed := strings.TrimSpace(l)
				lower := strings.ToLower(trimmed)
				if strings.HasPrefix(lower, "elements:") || strings.HasPrefix(lower, "layout:") || strings.HasPrefix(lower, "color usage:") {
					break
				}
				section = append(section, l)
			}
			return strings.Join(section, "\n")
		}
	}
	return text
}

// extractChart reads CSV-like "label, value[, category]" lines.
func (p *Parser) extractChart(result *domain.ParsedVisualData, data string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := csvLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, ok := parseNumber(m[2])
		if !ok {
			continue
		}
		point := domain.DataPoint{Label: strings.TrimSpace(m[1]), Value: value}
		if len(m) > 3 {
			point.Category = strings.TrimSpace(m[3])
		}
		result.DataPoints = append(result.DataPoints, point)
	}
}

// extractTable reads pipe- or comma-separated rows; the first row becomes the
// header when no explicit header was found.
func (p *Parser) extractTable(result *domain.ParsedVisualData, data string) {
	var rows [][]string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isTableRule(line) {
			continue
		}
		sep := ","
		if strings.Contains(line, "|") {
			sep = "|"
		}
		var cells []string
		for _, cell := range strings.Split(strings.Trim(line, "|"), sep) {
			cells = append(cells, strings.TrimSpace(cell))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return
	}
	if len(result.TableHeaders) == 0 {
		result.TableHeaders = rows[0]
		rows = rows[1:]
	}
	result.TableRows = rows
}

// isTableRule reports markdown separator rows like |---|---|.
func isTableRule(line string) bool {
	trimmed := strings.Trim(line, "| ")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != ':' && r != '|' && r != ' ' {
			return false
		}
	}
	return true
}

// extractDiagram reads "label -> label" connector lines into nodes and edges.
func (p *Parser) extractDiagram(result *domain.ParsedVisualData, data string) {
	seen := make(map[string]bool)
	addNode := func(label string) string {
		if !seen[label] {
			seen[label] = true
			result.DiagramNodes = append(result.DiagramNodes, domain.DiagramNode{ID: label, Label: label})
		}
		return label
	}
	for _, line := range strings.Split(data, "\n") {
		m := edgeLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		from := addNode(strings.TrimSpace(m[1]))
		to := addNode(strings.TrimSpace(m[2]))
		result.DiagramEdges = append(result.DiagramEdges, domain.DiagramEdge{From: from, To: to})
	}
}

// ensureRenderable applies the fixed placeholder series to charts that ended
// up with no data points.
func (p *Parser) ensureRenderable(result domain.ParsedVisualData) domain.ParsedVisualData {
	if result.Type == domain.VisualChart && len(result.DataPoints) == 0 {
		result.DataPoints = append([]domain.DataPoint(nil), placeholderSeries...)
	}
	if result.DataPoints == nil {
		result.DataPoints = []domain.DataPoint{}
	}
	return result
}

func knownChartType(t string) bool {
	switch strings.ToLower(t) {
	case "line", "bar", "pie", "area", "scatter":
		return true
	}
	return false
}

// parseNumber accepts float64, json.Number or numeric strings, tolerating
// currency symbols, thousands separators and trailing percent signs.
func parseNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
