package emailbuilder

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/tidwall/gjson"
)

// ProjectTheme is the host project's theme record, imported into an email
// document on explicit user action. It is a one-shot mapping, not a live
// binding: later theme edits in the host do not touch the document.
type ProjectTheme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

func (t *ProjectTheme) Validate() error {
	for name, color := range map[string]string{
		"primaryColor":    t.PrimaryColor,
		"secondaryColor":  t.SecondaryColor,
		"backgroundColor": t.BackgroundColor,
		"textColor":       t.TextColor,
	} {
		if color != "" && !govalidator.IsHexcolor(color) {
			return fmt.Errorf("invalid project theme: %s must be a hex color, got %q", name, color)
		}
	}
	return nil
}

// ParseProjectTheme extracts a theme from the host's project JSON payload.
// Both flat keys and a nested "theme" object are accepted.
func ParseProjectTheme(payload []byte) (*ProjectTheme, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("invalid project theme payload: not valid JSON")
	}
	root := gjson.ParseBytes(payload)
	if nested := root.Get("theme"); nested.Exists() {
		root = nested
	}
	theme := &ProjectTheme{
		PrimaryColor:    root.Get("primaryColor").String(),
		SecondaryColor:  root.Get("secondaryColor").String(),
		BackgroundColor: root.Get("backgroundColor").String(),
		TextColor:       root.Get("textColor").String(),
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// ParseProjectPalette extracts the ordered color list the host exposes for
// color pickers. Non-hex entries are skipped.
func ParseProjectPalette(payload []byte) ([]string, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("invalid project palette payload: not valid JSON")
	}
	root := gjson.ParseBytes(payload)
	colors := root.Get("colors")
	if !colors.Exists() {
		colors = root
	}
	var palette []string
	colors.ForEach(func(_, value gjson.Result) bool {
		if c := value.String(); govalidator.IsHexcolor(c) {
			palette = append(palette, c)
		}
		return true
	})
	return palette, nil
}

// ApplyProjectTheme maps a project theme into a copy of the document:
// global styles take the theme palette, and a targeted subset of per-block
// overrides is written so existing blocks pick the theme up even where they
// had explicit colors. Empty theme fields leave the corresponding values
// alone.
func ApplyProjectTheme(doc *Document, theme ProjectTheme) *Document {
	out := doc.Copy()

	if theme.PrimaryColor != "" {
		out.GlobalStyles.PrimaryColor = theme.PrimaryColor
		out.GlobalStyles.LinkColor = theme.PrimaryColor
	}
	if theme.SecondaryColor != "" {
		out.GlobalStyles.SecondaryColor = theme.SecondaryColor
	}
	if theme.BackgroundColor != "" {
		out.GlobalStyles.BackgroundColor = theme.BackgroundColor
	}
	if theme.TextColor != "" {
		out.GlobalStyles.TextColor = theme.TextColor
		out.GlobalStyles.HeadingColor = theme.TextColor
	}

	for i := range out.Blocks {
		styles := &out.Blocks[i].Styles
		switch out.Blocks[i].Type {
		case BlockTypeHero, BlockTypeButton, BlockTypeProducts:
			if theme.PrimaryColor != "" {
				styles.ButtonColor = stringPtr(theme.PrimaryColor)
			}
			if theme.BackgroundColor != "" {
				styles.ButtonTextColor = stringPtr(theme.BackgroundColor)
			}
		case BlockTypeDivider:
			if theme.SecondaryColor != "" {
				styles.BorderColor = stringPtr(theme.SecondaryColor)
			}
		case BlockTypeFooter, BlockTypeText:
			if theme.BackgroundColor != "" {
				styles.BackgroundColor = stringPtr(theme.BackgroundColor)
			}
			if theme.TextColor != "" {
				styles.TextColor = stringPtr(theme.TextColor)
			}
		}
	}
	return &out
}
