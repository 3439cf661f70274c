// Package export renders recorded series into SVG chart files.
package export

import (
	"fmt"
	"os"
	"strings"
)

const (
	DefaultWidth  = 2048
	DefaultHeight = 768

	marginLeft   = 70.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 40.0
)

// Line is one plotted series, sampled once per tick.
type Line struct {
	Label  string
	Color  string
	Dashed bool
	Values []float64
}

// Chart is a fixed-range line chart over tick-indexed series. Values
// outside [YMin,YMax] are clipped to the plot area, not rescaled.
type Chart struct {
	Title  string
	Width  int
	Height int
	YMin   float64
	YMax   float64
	Lines  []Line
}

// Render emits the chart as a standalone SVG document.
func (c *Chart) Render() string {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	ymin, ymax := c.YMin, c.YMax
	if ymax <= ymin {
		ymax = ymin + 1
	}

	plotW := float64(w) - marginLeft - marginRight
	plotH := float64(h) - marginTop - marginBottom

	maxLen := 0
	for _, ln := range c.Lines {
		if len(ln.Values) > maxLen {
			maxLen = len(ln.Values)
		}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<clipPath id="plot"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/></clipPath>
`, w, h, w, h, marginLeft, marginTop, plotW, plotH))

	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="24" fill="#ffffff" font-family="monospace" font-size="16">%s</text>`+"\n",
		marginLeft, c.Title))

	// legend on the title row
	lx := marginLeft + 440
	for _, ln := range c.Lines {
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="24" fill="%s" font-family="monospace" font-size="14">%s</text>`+"\n",
			lx, ln.Color, ln.Label))
		lx += 180
	}

	// mesh, ten divisions each way
	for i := 0; i <= 10; i++ {
		gx := marginLeft + plotW*float64(i)/10
		gy := marginTop + plotH*float64(i)/10
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333" stroke-width="1"/>`+"\n",
			gx, marginTop, gx, marginTop+plotH))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333" stroke-width="1"/>`+"\n",
			marginLeft, gy, marginLeft+plotW, gy))

		yv := ymax - (ymax-ymin)*float64(i)/10
		sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.1f" fill="#888888" font-family="monospace" font-size="12" text-anchor="end">%.0f</text>`+"\n",
			marginLeft-8, gy+4, yv))

		if maxLen > 1 {
			xv := (maxLen - 1) * i / 10
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.0f" fill="#888888" font-family="monospace" font-size="12" text-anchor="middle">%d</text>`+"\n",
				gx, float64(h)-marginBottom+20, xv))
		}
	}

	sb.WriteString(`<g clip-path="url(#plot)">` + "\n")
	for _, ln := range c.Lines {
		if len(ln.Values) < 2 {
			continue
		}
		dash := ""
		if ln.Dashed {
			dash = ` stroke-dasharray="8,6"`
		}
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="2"%s points="`, ln.Color, dash))
		for i, v := range ln.Values {
			x := marginLeft + plotW*float64(i)/float64(len(ln.Values)-1)
			y := marginTop + plotH*(ymax-v)/(ymax-ymin)
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString(`"/>` + "\n")
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}

// WriteFile renders the chart and writes it to path.
func (c *Chart) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(c.Render()), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
