package emailbuilder

import (
	"fmt"

	"github.com/asaskevich/govalidator"
)

// PaddingSize represents the closed set of padding presets a block can use.
type PaddingSize string

const (
	PaddingNone   PaddingSize = "none"
	PaddingSmall  PaddingSize = "small"
	PaddingMedium PaddingSize = "medium"
	PaddingLarge  PaddingSize = "large"
)

// Alignment represents horizontal alignment of block content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// BorderRadiusSize represents the closed set of corner radius presets.
type BorderRadiusSize string

const (
	RadiusNone   BorderRadiusSize = "none"
	RadiusSmall  BorderRadiusSize = "small"
	RadiusMedium BorderRadiusSize = "medium"
	RadiusFull   BorderRadiusSize = "full"
)

// FontSizeName represents the closed set of font size presets.
type FontSizeName string

const (
	FontSmall  FontSizeName = "small"
	FontMedium FontSizeName = "medium"
	FontLarge  FontSizeName = "large"
	FontXLarge FontSizeName = "xlarge"
)

// Pixel/keyword maps. Past the renderer boundary only these concrete values
// appear, never the symbolic names.
var paddingPixels = map[PaddingSize]string{
	PaddingNone:   "0px",
	PaddingSmall:  "12px",
	PaddingMedium: "24px",
	PaddingLarge:  "40px",
}

var radiusPixels = map[BorderRadiusSize]string{
	RadiusNone:   "0px",
	RadiusSmall:  "4px",
	RadiusMedium: "8px",
	RadiusFull:   "9999px",
}

var fontPixels = map[FontSizeName]string{
	FontSmall:  "14px",
	FontMedium: "16px",
	FontLarge:  "20px",
	FontXLarge: "28px",
}

func (p PaddingSize) Validate() error {
	if _, ok := paddingPixels[p]; !ok {
		return fmt.Errorf("invalid padding size: %s", p)
	}
	return nil
}

// Pixels resolves the preset to a concrete pixel value. Unknown presets
// resolve like medium so the renderer stays total.
func (p PaddingSize) Pixels() string {
	if px, ok := paddingPixels[p]; ok {
		return px
	}
	return paddingPixels[PaddingMedium]
}

func (a Alignment) Validate() error {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return nil
	}
	return fmt.Errorf("invalid alignment: %s", a)
}

// CSS returns the text-align keyword, defaulting to left.
func (a Alignment) CSS() string {
	if a.Validate() != nil {
		return string(AlignLeft)
	}
	return string(a)
}

func (r BorderRadiusSize) Validate() error {
	if _, ok := radiusPixels[r]; !ok {
		return fmt.Errorf("invalid border radius: %s", r)
	}
	return nil
}

func (r BorderRadiusSize) Pixels() string {
	if px, ok := radiusPixels[r]; ok {
		return px
	}
	return radiusPixels[RadiusNone]
}

func (f FontSizeName) Validate() error {
	if _, ok := fontPixels[f]; !ok {
		return fmt.Errorf("invalid font size: %s", f)
	}
	return nil
}

func (f FontSizeName) Pixels() string {
	if px, ok := fontPixels[f]; ok {
		return px
	}
	return fontPixels[FontMedium]
}

// BlockStyles is the shared style vocabulary. Any block type may set any
// subset of these fields; nil fields fall back to the type default and then
// to the document's GlobalStyles.
type BlockStyles struct {
	BackgroundColor *string           `json:"backgroundColor,omitempty"`
	TextColor       *string           `json:"textColor,omitempty"`
	ButtonColor     *string           `json:"buttonColor,omitempty"`
	ButtonTextColor *string           `json:"buttonTextColor,omitempty"`
	BorderColor     *string           `json:"borderColor,omitempty"`
	Padding         *PaddingSize      `json:"padding,omitempty"`
	Alignment       *Alignment        `json:"alignment,omitempty"`
	BorderRadius    *BorderRadiusSize `json:"borderRadius,omitempty"`
	FontSize        *FontSizeName     `json:"fontSize,omitempty"`
}

func (s *BlockStyles) Validate() error {
	if s == nil {
		return nil
	}
	for name, color := range map[string]*string{
		"backgroundColor": s.BackgroundColor,
		"textColor":       s.TextColor,
		"buttonColor":     s.ButtonColor,
		"buttonTextColor": s.ButtonTextColor,
		"borderColor":     s.BorderColor,
	} {
		if color != nil && *color != "" && !govalidator.IsHexcolor(*color) {
			return fmt.Errorf("invalid block styles: %s must be a hex color, got %q", name, *color)
		}
	}
	if s.Padding != nil {
		if err := s.Padding.Validate(); err != nil {
			return fmt.Errorf("invalid block styles: %w", err)
		}
	}
	if s.Alignment != nil {
		if err := s.Alignment.Validate(); err != nil {
			return fmt.Errorf("invalid block styles: %w", err)
		}
	}
	if s.BorderRadius != nil {
		if err := s.BorderRadius.Validate(); err != nil {
			return fmt.Errorf("invalid block styles: %w", err)
		}
	}
	if s.FontSize != nil {
		if err := s.FontSize.Validate(); err != nil {
			return fmt.Errorf("invalid block styles: %w", err)
		}
	}
	return nil
}

// Copy returns a deep copy so documents never share style pointers.
func (s BlockStyles) Copy() BlockStyles {
	out := BlockStyles{}
	if s.BackgroundColor != nil {
		out.BackgroundColor = stringPtr(*s.BackgroundColor)
	}
	if s.TextColor != nil {
		out.TextColor = stringPtr(*s.TextColor)
	}
	if s.ButtonColor != nil {
		out.ButtonColor = stringPtr(*s.ButtonColor)
	}
	if s.ButtonTextColor != nil {
		out.ButtonTextColor = stringPtr(*s.ButtonTextColor)
	}
	if s.BorderColor != nil {
		out.BorderColor = stringPtr(*s.BorderColor)
	}
	if s.Padding != nil {
		v := *s.Padding
		out.Padding = &v
	}
	if s.Alignment != nil {
		v := *s.Alignment
		out.Alignment = &v
	}
	if s.BorderRadius != nil {
		v := *s.BorderRadius
		out.BorderRadius = &v
	}
	if s.FontSize != nil {
		v := *s.FontSize
		out.FontSize = &v
	}
	return out
}

// GlobalStyles is the document-wide style fallback shared by all blocks.
type GlobalStyles struct {
	FontFamily          string           `json:"fontFamily"`
	PrimaryColor        string           `json:"primaryColor"`
	SecondaryColor      string           `json:"secondaryColor"`
	BackgroundColor     string           `json:"backgroundColor"`
	BodyBackgroundColor string           `json:"bodyBackgroundColor"`
	HeadingColor        string           `json:"headingColor"`
	TextColor           string           `json:"textColor"`
	LinkColor           string           `json:"linkColor"`
	BorderRadius        BorderRadiusSize `json:"borderRadius"`
}

// DefaultGlobalStyles returns the palette a fresh document starts from.
func DefaultGlobalStyles() GlobalStyles {
	return GlobalStyles{
		FontFamily:          "Arial, Helvetica, sans-serif",
		PrimaryColor:        "#2563eb",
		SecondaryColor:      "#7c3aed",
		BackgroundColor:     "#ffffff",
		BodyBackgroundColor: "#f4f4f5",
		HeadingColor:        "#18181b",
		TextColor:           "#3f3f46",
		LinkColor:           "#2563eb",
		BorderRadius:        RadiusSmall,
	}
}

func (g *GlobalStyles) Validate() error {
	for name, color := range map[string]string{
		"primaryColor":        g.PrimaryColor,
		"secondaryColor":      g.SecondaryColor,
		"backgroundColor":     g.BackgroundColor,
		"bodyBackgroundColor": g.BodyBackgroundColor,
		"headingColor":        g.HeadingColor,
		"textColor":           g.TextColor,
		"linkColor":           g.LinkColor,
	} {
		if color != "" && !govalidator.IsHexcolor(color) {
			return fmt.Errorf("invalid global styles: %s must be a hex color, got %q", name, color)
		}
	}
	if g.BorderRadius != "" {
		if err := g.BorderRadius.Validate(); err != nil {
			return fmt.Errorf("invalid global styles: %w", err)
		}
	}
	return nil
}

// GlobalStylesPatch carries optional overrides for UpdateGlobalStyles.
type GlobalStylesPatch struct {
	FontFamily          *string           `json:"fontFamily,omitempty"`
	PrimaryColor        *string           `json:"primaryColor,omitempty"`
	SecondaryColor      *string           `json:"secondaryColor,omitempty"`
	BackgroundColor     *string           `json:"backgroundColor,omitempty"`
	BodyBackgroundColor *string           `json:"bodyBackgroundColor,omitempty"`
	HeadingColor        *string           `json:"headingColor,omitempty"`
	TextColor           *string           `json:"textColor,omitempty"`
	LinkColor           *string           `json:"linkColor,omitempty"`
	BorderRadius        *BorderRadiusSize `json:"borderRadius,omitempty"`
}

// Apply merges the patch into a copy of g, leaving g untouched.
func (p GlobalStylesPatch) Apply(g GlobalStyles) GlobalStyles {
	out := g
	if p.FontFamily != nil {
		out.FontFamily = *p.FontFamily
	}
	if p.PrimaryColor != nil {
		out.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		out.SecondaryColor = *p.SecondaryColor
	}
	if p.BackgroundColor != nil {
		out.BackgroundColor = *p.BackgroundColor
	}
	if p.BodyBackgroundColor != nil {
		out.BodyBackgroundColor = *p.BodyBackgroundColor
	}
	if p.HeadingColor != nil {
		out.HeadingColor = *p.HeadingColor
	}
	if p.TextColor != nil {
		out.TextColor = *p.TextColor
	}
	if p.LinkColor != nil {
		out.LinkColor = *p.LinkColor
	}
	if p.BorderRadius != nil {
		out.BorderRadius = *p.BorderRadius
	}
	return out
}

func stringPtr(s string) *string {
	return &s
}
