package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/ui/theme"
)

// RadarAxis is one spoke of a radar chart.
type RadarAxis struct {
	Label string
	Value float64
}

// Radar renders a spider chart on a character grid. Terminal cells are
// about twice as tall as wide, so x distances are doubled.
type Radar struct {
	Axes   []RadarAxis
	Max    float64
	Radius int // in rows
}

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellWeb
	cellData
	cellVertex
	cellMarker
)

type canvas struct {
	w, h  int
	runes []rune
	kinds []cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([]rune, w*h), kinds: make([]cellKind, w*h)}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// set draws ch at (x, y) unless a higher-priority kind is already there.
func (c *canvas) set(x, y int, ch rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	if c.kinds[i] > kind {
		return
	}
	c.runes[i] = ch
	c.kinds[i] = kind
}

func (c *canvas) at(x, y int) (rune, cellKind) {
	i := y*c.w + x
	return c.runes[i], c.kinds[i]
}

// line draws a Bresenham line between two points.
func (c *canvas) line(x0, y0, x1, y1 int, ch rune, kind cellKind) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, ch, kind)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type point struct{ x, y int }

func (r Radar) radius() int {
	if r.Radius < 2 {
		return 2
	}
	return r.Radius
}

func (r Radar) margins() (int, int) {
	rad := r.radius()
	return int(math.Ceil(0.4*float64(rad))) + 1, int(math.Ceil(0.2*float64(rad))) + 1
}

// size returns the canvas dimensions in cells.
func (r Radar) size() (int, int) {
	rad := r.radius()
	mx, my := r.margins()
	return 4*rad + 1 + 2*mx, 2*rad + 1 + 2*my
}

// project maps axis i at fraction f of full scale to a canvas cell.
func (r Radar) project(i int, f float64) point {
	rad := float64(r.radius())
	mx, my := r.margins()
	cx, cy := float64(mx)+2*rad, float64(my)+rad

	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(len(r.Axes))
	return point{
		x: int(math.Round(cx + 2*rad*f*math.Cos(angle))),
		y: int(math.Round(cy + rad*f*math.Sin(angle))),
	}
}

func (r Radar) fraction(v float64) float64 {
	if r.Max <= 0 {
		return 0
	}
	return min(max(v/r.Max, 0), 1)
}

func (r Radar) draw() *canvas {
	w, h := r.size()
	c := newCanvas(w, h)
	n := len(r.Axes)
	center := r.project(0, 0)

	outer := make([]point, n)
	data := make([]point, n)
	for i, a := range r.Axes {
		outer[i] = r.project(i, 1)
		data[i] = r.project(i, r.fraction(a.Value))
	}

	for i := range n {
		c.line(center.x, center.y, outer[i].x, outer[i].y, '·', cellWeb)
		next := outer[(i+1)%n]
		c.line(outer[i].x, outer[i].y, next.x, next.y, '·', cellWeb)
	}
	for i := range n {
		next := data[(i+1)%n]
		c.line(data[i].x, data[i].y, next.x, next.y, '•', cellData)
	}
	for i := range n {
		c.set(data[i].x, data[i].y, '●', cellVertex)
		m := r.project(i, 1.2)
		c.set(m.x, m.y, rune('1'+i%9), cellMarker)
	}
	return c
}

// View renders the chart followed by a numbered legend.
func (r Radar) View() string {
	if len(r.Axes) == 0 {
		return ""
	}
	c := r.draw()

	styles := map[cellKind]lipgloss.Style{
		cellEmpty:  lipgloss.NewStyle(),
		cellWeb:    lipgloss.NewStyle().Foreground(theme.Border),
		cellData:   lipgloss.NewStyle().Foreground(theme.Primary),
		cellVertex: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		cellMarker: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
	}

	var b strings.Builder
	for y := 0; y < c.h; y++ {
		// Group runs of the same kind so each run is styled once.
		var run []rune
		runKind := cellEmpty
		flush := func() {
			if len(run) > 0 {
				b.WriteString(styles[runKind].Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < c.w; x++ {
			ch, kind := c.at(x, y)
			if kind != runKind {
				flush()
				runKind = kind
			}
			run = append(run, ch)
		}
		flush()
		b.WriteString("\n")
	}

	for i, a := range r.Axes {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles[cellMarker].Render(fmt.Sprintf("%d", i%9+1)),
			theme.Body.Render(a.Label),
			lipgloss.NewStyle().Foreground(theme.LevelColor(a.Value)).Render(scoring.FormatAverage(a.Value)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
