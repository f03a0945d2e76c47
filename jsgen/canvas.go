package jsgen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/pagescript/script"
)

// Color is the color type used for canvas drawing. It is implemented by
// colors.RGBA.
type Color interface {
	RGB() (r, g, b uint8)
	HasAlpha() bool
	Opacity() float64 // alpha channel in [0…1]
	String() string   // CSS hex notation, "#rrggbb" or "#rrggbbaa"
}

// Canvas styles are formatted with these templates.
// Colors without alpha channel use an "rgba" prefix with three components,
// which browsers accept as a synonym for "rgb".
const (
	rgbaStyleFormat       = "rgba(%d,%d,%d,%s)"
	rgbNoAlphaStyleFormat = "rgba(%d,%d,%d)"
)

// Point is a canvas coordinate.
type Point struct {
	X, Y int
}

// CanvasContext returns an expression for the 2D drawing context of a canvas.
func CanvasContext(canvasID string) script.Snippet {
	return Element(canvasID) + ".getContext('2d')"
}

// CanvasFillRect fills a rectangular section. If color is non-nil, the fill
// style is set first.
func CanvasFillRect(canvasID string, x, y, w, h int, color Color) script.Snippet {
	fill := script.Snippet(fmt.Sprintf("%s.fillRect(%d,%d,%d,%d);", CanvasContext(canvasID), x, y, w, h))
	if color == nil {
		return fill
	}
	return script.Lines(CanvasFillStyle(canvasID, color), fill)
}

// CanvasClearRect erases a rectangular section.
func CanvasClearRect(canvasID string, x, y, w, h int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.clearRect(%d,%d,%d,%d);", CanvasContext(canvasID), x, y, w, h))
}

// CanvasStrokeRect draws the outline of a rectangle.
func CanvasStrokeRect(canvasID string, x, y, w, h int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.strokeRect(%d,%d,%d,%d);", CanvasContext(canvasID), x, y, w, h))
}

// CanvasShape draws a path through a list of points. If close is set, the
// path is closed; if fill is set, the path is closed and filled.
// An empty list of points yields an empty Snippet.
func CanvasShape(canvasID string, points []Point, close bool, fill bool) script.Snippet {
	if len(points) == 0 {
		tracer().Debugf("jsgen: canvas shape without points for %q", canvasID)
		return ""
	}
	js := []script.Snippet{
		"var ctx=" + CanvasContext(canvasID) + ";",
		"ctx.beginPath();",
		script.Snippet(fmt.Sprintf("ctx.moveTo(%d,%d);", points[0].X, points[0].Y)),
	}
	for _, p := range points[1:] {
		js = append(js, script.Snippet(fmt.Sprintf("ctx.lineTo(%d,%d);", p.X, p.Y)))
	}
	return script.Lines(append(js, endPath(close, fill)...)...)
}

// Arc holds the parameters of an arc. Angles are given in degrees,
// clockwise from the positive x-axis. If both angles are zero, a full
// circle is drawn.
type Arc struct {
	StartAngle, EndAngle float64
	CounterClockwise     bool
	Close, Fill          bool
}

// CanvasArc draws an arc, a circle or a pie slice around (x,y).
func CanvasArc(canvasID string, x, y int, radius float64, arc Arc) script.Snippet {
	if arc.StartAngle == 0 && arc.EndAngle == 0 {
		arc.EndAngle = 360
	}
	js := []script.Snippet{
		"var ctx=" + CanvasContext(canvasID) + ";",
		"ctx.beginPath();",
		script.Snippet(fmt.Sprintf("ctx.arc(%d,%d,%s,%s,%s,%t);", x, y, number(radius),
			number(radians(arc.StartAngle)), number(radians(arc.EndAngle)), arc.CounterClockwise)),
	}
	return script.Lines(append(js, endPath(arc.Close, arc.Fill)...)...)
}

func endPath(close bool, fill bool) []script.Snippet {
	var js []script.Snippet
	if fill || close {
		js = append(js, "ctx.closePath();")
	}
	if fill {
		js = append(js, "ctx.fill();")
	}
	return append(js, "ctx.stroke();")
}

// CanvasFillStyle sets the current fill style of a canvas.
func CanvasFillStyle(canvasID string, color Color) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.fillStyle=%s;", CanvasContext(canvasID),
		script.ToJsString(colorStyle(color))))
}

// CanvasStrokeStyle sets the current stroke style of a canvas.
func CanvasStrokeStyle(canvasID string, color Color) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.strokeStyle=%s;", CanvasContext(canvasID),
		script.ToJsString(colorStyle(color))))
}

func colorStyle(color Color) string {
	r, g, b := color.RGB()
	if color.HasAlpha() {
		return fmt.Sprintf(rgbaStyleFormat, r, g, b, number(math.Round(color.Opacity()*1000)/1000))
	}
	return fmt.Sprintf(rgbNoAlphaStyleFormat, r, g, b)
}

// ColorStop is an intermediate color of a gradient. Offset is in [0…1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient describes a linear gradient from (X,Y) to (X2,Y2), like
// drawing a gradient in a paint program.
type Gradient struct {
	X, Y, X2, Y2 int
	Stops        []ColorStop // more colors between start and end
}

// DefaultGradient runs diagonally from (0,0) to (100,100).
var DefaultGradient = Gradient{X2: 100, Y2: 100}

// CanvasFillStyleGradient sets a linear gradient as the fill style of a
// canvas. If g is nil, DefaultGradient is used.
func CanvasFillStyleGradient(canvasID string, start Color, end Color, g *Gradient) script.Snippet {
	if g == nil {
		g = &DefaultGradient
	}
	js := []script.Snippet{
		"var ctx=" + CanvasContext(canvasID) + ";",
		script.Snippet(fmt.Sprintf("var gradient=ctx.createLinearGradient(%d,%d,%d,%d);", g.X, g.Y, g.X2, g.Y2)),
		colorStop(0, start),
		colorStop(1, end),
	}
	for _, stop := range g.Stops {
		js = append(js, colorStop(stop.Offset, stop.Color))
	}
	js = append(js, "ctx.fillStyle=gradient;")
	return script.Lines(js...)
}

func colorStop(offset float64, color Color) script.Snippet {
	return script.Snippet(fmt.Sprintf("gradient.addColorStop(%s,%s);", number(offset),
		script.ToJsString(color.String())))
}

// CanvasBlitImage draws an image element onto a canvas at (x,y).
func CanvasBlitImage(canvasID string, imageID string, x, y int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.drawImage(%s,%d,%d);", CanvasContext(canvasID),
		Element(imageID), x, y))
}

// CanvasBlitImageScaled draws an image element onto a canvas at (x,y),
// scaled to w×h.
func CanvasBlitImageScaled(canvasID string, imageID string, x, y, w, h int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.drawImage(%s,%d,%d,%d,%d);", CanvasContext(canvasID),
		Element(imageID), x, y, w, h))
}

// CanvasBlitImageSlice draws the slice (x,y,w,h) of an image element onto
// the destination rectangle (dx,dy,dw,dh) of a canvas.
func CanvasBlitImageSlice(canvasID string, imageID string, x, y, w, h, dx, dy, dw, dh int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.drawImage(%s,%d,%d,%d,%d,%d,%d,%d,%d);", CanvasContext(canvasID),
		Element(imageID), x, y, w, h, dx, dy, dw, dh))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
