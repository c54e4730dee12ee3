package emailbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddingSizePixels(t *testing.T) {
	tests := []struct {
		size     PaddingSize
		expected string
	}{
		{PaddingNone, "0px"},
		{PaddingSmall, "12px"},
		{PaddingMedium, "24px"},
		{PaddingLarge, "40px"},
	}
	for _, test := range tests {
		assert.NoError(t, test.size.Validate())
		assert.Equal(t, test.expected, test.size.Pixels())
	}

	// Unknown presets stay renderable.
	assert.Error(t, PaddingSize("huge").Validate())
	assert.Equal(t, "24px", PaddingSize("huge").Pixels())
}

func TestAlignmentCSS(t *testing.T) {
	assert.Equal(t, "left", AlignLeft.CSS())
	assert.Equal(t, "center", AlignCenter.CSS())
	assert.Equal(t, "right", AlignRight.CSS())
	assert.Error(t, Alignment("justify").Validate())
	assert.Equal(t, "left", Alignment("justify").CSS())
}

func TestBorderRadiusPixels(t *testing.T) {
	tests := []struct {
		size     BorderRadiusSize
		expected string
	}{
		{RadiusNone, "0px"},
		{RadiusSmall, "4px"},
		{RadiusMedium, "8px"},
		{RadiusFull, "9999px"},
	}
	for _, test := range tests {
		assert.NoError(t, test.size.Validate())
		assert.Equal(t, test.expected, test.size.Pixels())
	}
	assert.Equal(t, "0px", BorderRadiusSize("round").Pixels())
}

func TestFontSizePixels(t *testing.T) {
	tests := []struct {
		size     FontSizeName
		expected string
	}{
		{FontSmall, "14px"},
		{FontMedium, "16px"},
		{FontLarge, "20px"},
		{FontXLarge, "28px"},
	}
	for _, test := range tests {
		assert.NoError(t, test.size.Validate())
		assert.Equal(t, test.expected, test.size.Pixels())
	}
	assert.Equal(t, "16px", FontSizeName("giant").Pixels())
}

func TestBlockStylesValidate(t *testing.T) {
	valid := BlockStyles{
		BackgroundColor: stringPtr("#ffffff"),
		TextColor:       stringPtr("#112233"),
		Padding:         paddingPtr(PaddingSmall),
		Alignment:       alignmentPtr(AlignCenter),
		BorderRadius:    radiusPtr(RadiusMedium),
		FontSize:        fontPtr(FontLarge),
	}
	require.NoError(t, valid.Validate())

	var nilStyles *BlockStyles
	assert.NoError(t, nilStyles.Validate())

	bad := BlockStyles{TextColor: stringPtr("not-a-color")}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hex color")

	badEnum := BlockStyles{Padding: paddingPtr(PaddingSize("huge"))}
	assert.Error(t, badEnum.Validate())
}

func TestGlobalStylesValidate(t *testing.T) {
	g := DefaultGlobalStyles()
	require.NoError(t, g.Validate())

	g.LinkColor = "blue"
	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linkColor")
}

func TestGlobalStylesPatchApply(t *testing.T) {
	g := DefaultGlobalStyles()
	patched := GlobalStylesPatch{
		PrimaryColor: stringPtr("#ff0000"),
		FontFamily:   stringPtr("Georgia, serif"),
		BorderRadius: radiusPtr(RadiusFull),
	}.Apply(g)

	assert.Equal(t, "#ff0000", patched.PrimaryColor)
	assert.Equal(t, "Georgia, serif", patched.FontFamily)
	assert.Equal(t, RadiusFull, patched.BorderRadius)
	// Untouched fields keep their values; the receiver is not mutated.
	assert.Equal(t, g.TextColor, patched.TextColor)
	assert.Equal(t, DefaultGlobalStyles().PrimaryColor, g.PrimaryColor)
}

func TestBlockStylesCopyIsDeep(t *testing.T) {
	styles := BlockStyles{
		TextColor: stringPtr("#111111"),
		Padding:   paddingPtr(PaddingLarge),
	}
	dup := styles.Copy()
	*dup.TextColor = "#222222"
	*dup.Padding = PaddingNone

	assert.Equal(t, "#111111", *styles.TextColor)
	assert.Equal(t, PaddingLarge, *styles.Padding)
}
