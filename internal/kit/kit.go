// Package kit describes team uniforms and checks that they are usable on
// the pitch.
package kit

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidColor    = errors.New("kit: invalid colour")
	ErrInvalidPattern  = errors.New("kit: invalid pattern")
	ErrInvalidFont     = errors.New("kit: invalid number font")
	ErrTooManySponsors = errors.New("kit: too many sponsors")
	ErrInvalidKitType  = errors.New("kit: invalid kit type")
)

const (
	// MaxSponsors is how many sponsor logos fit on a shirt.
	MaxSponsors = 3
	// MinContrast is the luminance ratio below which primary and secondary
	// colours are hard to tell apart.
	MinContrast = 1.5
)

// Type is the role of a kit in a club's set.
type Type string

const (
	Home       Type = "home"
	Away       Type = "away"
	Third      Type = "third"
	Goalkeeper Type = "goalkeeper"
)

// Types lists every kit type.
func Types() []Type { return []Type{Home, Away, Third, Goalkeeper} }

// Pattern is the body design of the shirt.
type Pattern string

const (
	Solid             Pattern = "solid"
	StripesVertical   Pattern = "stripes_vertical"
	StripesHorizontal Pattern = "stripes_horizontal"
	Diagonal          Pattern = "diagonal"
	Checkered         Pattern = "checkered"
	Gradient          Pattern = "gradient"
	Panels            Pattern = "panels"
	Diamond           Pattern = "diamond"
)

// Patterns lists every shirt pattern.
func Patterns() []Pattern {
	return []Pattern{Solid, StripesVertical, StripesHorizontal, Diagonal, Checkered, Gradient, Panels, Diamond}
}

// Font is the typeface of the shirt numbers.
type Font string

const (
	FontStandard Font = "standard"
	FontBold     Font = "bold"
	FontItalic   Font = "italic"
	FontModern   Font = "modern"
	FontClassic  Font = "classic"
)

// Fonts lists every number font.
func Fonts() []Font { return []Font{FontStandard, FontBold, FontItalic, FontModern, FontClassic} }

// KnownSponsors are the sponsors offered by the kit editor.
func KnownSponsors() []string {
	return []string{
		"Generic", "SportsTech", "PlayMax", "EliteGear", "ProSport",
		"Champion", "Victory", "Athletic", "PowerPlay", "GameTime",
	}
}

// Kit is one uniform. Colours are #RRGGBB strings.
type Kit struct {
	ID         uuid.UUID
	TeamID     int
	Type       Type
	Primary    string
	Secondary  string
	Accent     string
	Pattern    Pattern
	Sponsors   []string
	NumberFont Font
}

func oneOf[T comparable](v T, all []T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}

// Default returns the stock kit for t.
func Default(t Type) (Kit, error) {
	k := Kit{
		ID:         uuid.New(),
		Type:       t,
		Pattern:    Solid,
		Sponsors:   []string{"Generic"},
		NumberFont: FontStandard,
	}
	switch t {
	case Home:
		k.Primary, k.Secondary, k.Accent = "#FF0000", "#FFFFFF", "#000000"
	case Away:
		k.Primary, k.Secondary, k.Accent = "#FFFFFF", "#FF0000", "#000000"
	case Third:
		k.Primary, k.Secondary, k.Accent = "#1E3A8A", "#FACC15", "#FFFFFF"
		k.Pattern = StripesVertical
	case Goalkeeper:
		k.Primary, k.Secondary, k.Accent = "#22C55E", "#000000", "#FFFFFF"
	default:
		return Kit{}, fmt.Errorf("%w: %q", ErrInvalidKitType, t)
	}
	return k, nil
}

// Validate checks every field and returns the first problem found.
func (k Kit) Validate() error {
	if !oneOf(k.Type, Types()) {
		return fmt.Errorf("%w: %q", ErrInvalidKitType, k.Type)
	}
	for _, c := range []struct{ name, v string }{
		{"primary", k.Primary},
		{"secondary", k.Secondary},
		{"accent", k.Accent},
	} {
		if _, err := ParseColor(c.v); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	if !oneOf(k.Pattern, Patterns()) {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, k.Pattern)
	}
	if !oneOf(k.NumberFont, Fonts()) {
		return fmt.Errorf("%w: %q", ErrInvalidFont, k.NumberFont)
	}
	if len(k.Sponsors) > MaxSponsors {
		return fmt.Errorf("%w: %d > %d", ErrTooManySponsors, len(k.Sponsors), MaxSponsors)
	}
	return nil
}

// ParseColor decodes a #RRGGBB string into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.RGBA) string {
	return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RGBA returns the drawing colours of the kit. Unparseable colours fall back
// to mid grey so a bad kit still renders.
func (k Kit) RGBA() (primary, secondary, accent color.RGBA) {
	conv := func(s string) color.RGBA {
		c, err := ParseColor(s)
		if err != nil {
			return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		}
		return c
	}
	return conv(k.Primary), conv(k.Secondary), conv(k.Accent)
}

func channel(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance is the relative luminance of c in [0,1].
func Luminance(c color.RGBA) float64 {
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}

// ContrastRatio is the luminance ratio of two colours, from 1 (identical) to 21.
func ContrastRatio(a, b color.RGBA) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Contrast returns the primary/secondary contrast ratio and whether it is
// high enough to read numbers and stripes.
func (k Kit) Contrast() (ratio float64, ok bool) {
	p, s, _ := k.RGBA()
	ratio = ContrastRatio(p, s)
	return ratio, ratio >= MinContrast
}

// Clashes reports whether two kits would be hard to tell apart on the pitch.
func Clashes(a, b Kit) bool {
	pa, _, _ := a.RGBA()
	pb, _, _ := b.RGBA()
	return ContrastRatio(pa, pb) < MinContrast
}
