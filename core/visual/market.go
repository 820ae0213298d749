// ABOUTME: Market-growth series fabrication from a market size and CAGR in prose
// ABOUTME: Demo-mode heuristic; output is plausible-looking, not real data

package visual

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"magicmuse-api/core/domain"
)

var (
	marketSizeRe = regexp.MustCompile(`(?i)\$\s*([\d.]+)\s*(billion|million|trillion|B|M|T)\b`)
	cagrRe       = regexp.MustCompile(`(?i)(?:CAGR\s*(?:of)?\s*([\d.]+)\s*%|([\d.]+)\s*%\s*CAGR)`)
)

const (
	marketHorizonYears = 6
	segmentShareStart  = 0.40
	segmentShareEnd    = 0.65
)

// fabricateMarketSeries recognizes a "market growth" narrative (a dollar
// figure plus a CAGR percentage) and synthesizes a multi-year time series.
// The quoted size is treated as the final-year value; the starting value is
// back-solved from the compound-growth formula and each year's growth rate is
// perturbed by the parser's RNG for visual plausibility. Two series come
// back: the total market and a segment whose share ramps linearly from 40%
// to 65% over the horizon.
func (p *Parser) fabricateMarketSeries(text string) ([]domain.DataPoint, string, bool) {
	sizeMatch := marketSizeRe.FindStringSubmatch(text)
	cagrMatch := cagrRe.FindStringSubmatch(text)
	if sizeMatch == nil || cagrMatch == nil {
		return nil, "", false
	}

	size, err := strconv.ParseFloat(sizeMatch[1], 64)
	if err != nil {
		return nil, "", false
	}
	size *= unitMultiplier(sizeMatch[2])

	cagrText := cagrMatch[1]
	if cagrText == "" {
		cagrText = cagrMatch[2]
	}
	cagr, err := strconv.ParseFloat(cagrText, 64)
	if err != nil || cagr <= 0 {
		return nil, "", false
	}
	cagr /= 100

	start := size / math.Pow(1+cagr, float64(marketHorizonYears-1))

	points := make([]domain.DataPoint, 0, marketHorizonYears*2)
	value := start
	for i := 0; i < marketHorizonYears; i++ {
		year := p.baseYear + i
		if i > 0 {
			// Perturb each year's growth between -5% and +15% of the CAGR.
			noise := -0.05 + p.rng.Float64()*0.20
			value *= 1 + cagr + cagr*noise
		}
		share := segmentShareStart + (segmentShareEnd-segmentShareStart)*float64(i)/float64(marketHorizonYears-1)
		points = append(points,
			domain.DataPoint{
				Label:    strconv.Itoa(year),
				Value:    round1(value),
				Category: "Total Market",
			},
			domain.DataPoint{
				Label:    strconv.Itoa(year),
				Value:    round1(value * share),
				Category: "Segment",
			},
		)
	}

	title := fmt.Sprintf("Market Growth (%.0f%% CAGR)", cagr*100)
	return points, title, true
}

// unitMultiplier normalizes quoted sizes to billions.
func unitMultiplier(unit string) float64 {
	switch strings.ToLower(unit) {
	case "trillion", "t":
		return 1000
	case "million", "m":
		return 0.001
	default:
		return 1
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
