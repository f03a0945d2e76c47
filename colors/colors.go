/*
Package colors provides a simple RGB(A) color type for canvas drawing snippets.

Colors may be given as CSS hex notation ("#rgb", "#rrggbb", "#rrggbbaa") or
as one of a few CSS color keywords.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color specifications which cannot be parsed.
var ErrInvalidColor = errors.New("invalid color specification")

// RGBA is a color with 8 bit components. The alpha channel is optional:
// if Alpha is false, A is ignored and the color is fully opaque.
type RGBA struct {
	R, G, B, A uint8
	Alpha      bool
}

// RGB creates an opaque color without alpha channel.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBAlpha creates a color with an alpha channel.
func RGBAlpha(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a, Alpha: true}
}

// RGB returns the color components.
func (c RGBA) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// HasAlpha is a predicate: does the color carry an alpha channel?
func (c RGBA) HasAlpha() bool {
	return c.Alpha
}

// Opacity returns the alpha channel as a value in [0…1].
func (c RGBA) Opacity() float64 {
	if !c.Alpha {
		return 1.0
	}
	return float64(c.A) / 255.0
}

// String returns the color in CSS hex notation, i.e. "#rrggbb" or
// "#rrggbbaa" for colors with alpha channel.
func (c RGBA) String() string {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	if c.Alpha {
		return fmt.Sprintf("%s%02x", col.Hex(), c.A)
	}
	return col.Hex()
}

// keywords are the CSS color keywords we know of.
var keywords = map[string]RGBA{
	"black":       RGB(0, 0, 0),
	"white":       RGB(0xff, 0xff, 0xff),
	"red":         RGB(0xff, 0, 0),
	"green":       RGB(0, 0x80, 0),
	"lime":        RGB(0, 0xff, 0),
	"blue":        RGB(0, 0, 0xff),
	"gray":        RGB(0x80, 0x80, 0x80),
	"grey":        RGB(0x80, 0x80, 0x80),
	"yellow":      RGB(0xff, 0xff, 0),
	"powderblue":  RGB(0xb0, 0xe0, 0xe6),
	"transparent": RGBAlpha(0, 0, 0, 0),
}

// Parse reads a color from a CSS color keyword or from hex notation.
func Parse(spec string) (RGBA, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if c, ok := keywords[spec]; ok {
		return c, nil
	}
	return ParseHex(spec)
}

// ParseHex reads a color in CSS hex notation: "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(spec string) (RGBA, error) {
	if len(spec) == 9 && spec[0] == '#' {
		c, err := ParseHex(spec[:7])
		if err != nil {
			return RGBA{}, err
		}
		a, err := strconv.ParseUint(spec[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
		}
		c.A, c.Alpha = uint8(a), true
		return c, nil
	}
	col, err := colorful.Hex(spec)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}
	r, g, b := col.RGB255()
	return RGB(r, g, b), nil
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(spec string) RGBA {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}
