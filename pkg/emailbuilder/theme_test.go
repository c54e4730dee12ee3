package emailbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectTheme(t *testing.T) {
	t.Run("flat payload", func(t *testing.T) {
		theme, err := ParseProjectTheme([]byte(`{
			"primaryColor": "#ff5500",
			"secondaryColor": "#00ff55",
			"backgroundColor": "#ffffff",
			"textColor": "#111111"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "#ff5500", theme.PrimaryColor)
		assert.Equal(t, "#111111", theme.TextColor)
	})

	t.Run("nested theme object", func(t *testing.T) {
		theme, err := ParseProjectTheme([]byte(`{"name":"Acme","theme":{"primaryColor":"#123456"}}`))
		require.NoError(t, err)
		assert.Equal(t, "#123456", theme.PrimaryColor)
		assert.Empty(t, theme.TextColor)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseProjectTheme([]byte(`{not json`))
		assert.Error(t, err)
	})

	t.Run("non-hex color", func(t *testing.T) {
		_, err := ParseProjectTheme([]byte(`{"primaryColor":"tomato"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hex color")
	})
}

func TestParseProjectPalette(t *testing.T) {
	palette, err := ParseProjectPalette([]byte(`{"colors":["#111111","nope","#222222"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"#111111", "#222222"}, palette, "non-hex entries are skipped")

	palette, err = ParseProjectPalette([]byte(`["#aabbcc"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"#aabbcc"}, palette)

	_, err = ParseProjectPalette([]byte(`not json`))
	assert.Error(t, err)
}

func TestApplyProjectThemeUpdatesGlobals(t *testing.T) {
	doc := NewDocument("themed")
	original := doc.GlobalStyles

	themed := ApplyProjectTheme(doc, ProjectTheme{
		PrimaryColor: "#ff0000",
		TextColor:    "#101010",
	})

	assert.Equal(t, "#ff0000", themed.GlobalStyles.PrimaryColor)
	assert.Equal(t, "#ff0000", themed.GlobalStyles.LinkColor)
	assert.Equal(t, "#101010", themed.GlobalStyles.TextColor)
	assert.Equal(t, "#101010", themed.GlobalStyles.HeadingColor)
	// Unset theme fields leave the existing values alone.
	assert.Equal(t, original.BackgroundColor, themed.GlobalStyles.BackgroundColor)
	// The source document is untouched.
	assert.Equal(t, original, doc.GlobalStyles)
}

func TestApplyProjectThemeWritesBlockOverrides(t *testing.T) {
	doc := NewDocument("themed")
	doc.Blocks = []Block{
		NewBlock(BlockTypeButton),
		NewBlock(BlockTypeDivider),
		NewBlock(BlockTypeFooter),
		NewBlock(BlockTypeSpacer),
	}

	themed := ApplyProjectTheme(doc, ProjectTheme{
		PrimaryColor:    "#ff0000",
		SecondaryColor:  "#00ff00",
		BackgroundColor: "#fafafa",
		TextColor:       "#101010",
	})

	button := themed.Blocks[0].Styles
	require.NotNil(t, button.ButtonColor)
	assert.Equal(t, "#ff0000", *button.ButtonColor)
	require.NotNil(t, button.ButtonTextColor)
	assert.Equal(t, "#fafafa", *button.ButtonTextColor)

	divider := themed.Blocks[1].Styles
	require.NotNil(t, divider.BorderColor)
	assert.Equal(t, "#00ff00", *divider.BorderColor)

	footer := themed.Blocks[2].Styles
	require.NotNil(t, footer.BackgroundColor)
	assert.Equal(t, "#fafafa", *footer.BackgroundColor)
	require.NotNil(t, footer.TextColor)
	assert.Equal(t, "#101010", *footer.TextColor)

	// Spacers carry no themed colors.
	assert.Nil(t, themed.Blocks[3].Styles.ButtonColor)
	assert.Nil(t, themed.Blocks[3].Styles.BackgroundColor)
}
