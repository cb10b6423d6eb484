package md2printer

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeA3     = "a3"
	PageSizeA4     = "a4"
	PageSizeA5     = "a5"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Default margins: 30mm top and bottom, 20mm left and right.
const (
	defaultMarginVertical   = 30 / mmPerInch
	defaultMarginHorizontal = 20 / mmPerInch
	mmPerInch               = 25.4
)

// paperSizes holds portrait width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeA3:     {11.69, 16.54},
	PageSizeA4:     {8.27, 11.69},
	PageSizeA5:     {5.83, 8.27},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page layout. Empty fields take defaults:
// A4, portrait, 30mm/20mm margins.
type PageSettings struct {
	Size        string  // "a3", "a4", "a5", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides; 0 = default margins
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if p.Size != "" {
		if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
		}
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// Merge returns p with empty fields filled from base.
func (p PageSettings) Merge(base PageSettings) PageSettings {
	if p.Size == "" {
		p.Size = base.Size
	}
	if p.Orientation == "" {
		p.Orientation = base.Orientation
	}
	if p.Margin == 0 {
		p.Margin = base.Margin
	}
	return p
}

// pageBox is the resolved geometry handed to the PDF renderer, in inches.
type pageBox struct {
	Width, Height            float64
	Top, Bottom, Left, Right float64
}

// box resolves defaults and orientation. Call Validate first; unknown sizes
// fall back to A4.
func (p PageSettings) box() pageBox {
	dims, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		dims = paperSizes[PageSizeA4]
	}
	b := pageBox{Width: dims[0], Height: dims[1]}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		b.Width, b.Height = b.Height, b.Width
	}

	if p.Margin > 0 {
		b.Top, b.Bottom, b.Left, b.Right = p.Margin, p.Margin, p.Margin, p.Margin
	} else {
		b.Top, b.Bottom = defaultMarginVertical, defaultMarginVertical
		b.Left, b.Right = defaultMarginHorizontal, defaultMarginHorizontal
	}
	return b
}
