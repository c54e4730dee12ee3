package emailbuilder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockTypeConstants(t *testing.T) {
	tests := []struct {
		constant BlockType
		expected string
	}{
		{BlockTypeHero, "hero"},
		{BlockTypeText, "text"},
		{BlockTypeImage, "image"},
		{BlockTypeButton, "button"},
		{BlockTypeDivider, "divider"},
		{BlockTypeSpacer, "spacer"},
		{BlockTypeColumns, "columns"},
		{BlockTypeProducts, "products"},
		{BlockTypeSocial, "social"},
		{BlockTypeFooter, "footer"},
	}

	require.Len(t, AllBlockTypes, len(tests))
	for _, test := range tests {
		assert.Equal(t, test.expected, string(test.constant))
		assert.NoError(t, test.constant.Validate())
		assert.Contains(t, AllBlockTypes, test.constant)
	}
}

func TestBlockTypeValidateRejectsUnknown(t *testing.T) {
	assert.Error(t, BlockType("video").Validate())
	assert.Error(t, BlockType("").Validate())
}

func TestBlockJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content BlockContent
	}{
		{"hero", HeroContent{Heading: "Hi", ButtonText: "Go", ButtonURL: "https://example.com"}},
		{"text", TextContent{Text: "<b>Hello</b>"}},
		{"image", ImageContent{Src: "https://example.com/a.png", Alt: "a"}},
		{"button", ButtonContent{Text: "Click", URL: "https://example.com"}},
		{"divider", DividerContent{Thickness: "2px"}},
		{"spacer", SpacerContent{Height: "40px"}},
		{"columns", ColumnsContent{ColumnCount: 3}},
		{"products", ProductsContent{ProductIDs: []string{"p1", "p2"}}},
		{"social", SocialContent{TwitterURL: "https://twitter.com/acme"}},
		{"footer", FooterContent{CompanyName: "Acme"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			original := Block{
				ID:      "block-1",
				Type:    test.content.ContentType(),
				Visible: true,
				Content: test.content,
				Styles:  DefaultStyles(test.content.ContentType()),
			}

			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded Block
			require.NoError(t, json.Unmarshal(data, &decoded))

			assert.Equal(t, original.ID, decoded.ID)
			assert.Equal(t, original.Type, decoded.Type)
			assert.True(t, decoded.Visible)
			assert.Equal(t, test.content, decoded.Content)
		})
	}
}

func TestBlockUnmarshalDefaultsVisible(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","type":"text","content":{"text":"hi"}}`), &block))
	assert.True(t, block.Visible, "visible should default to true when omitted")

	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","type":"text","visible":false,"content":{"text":"hi"}}`), &block))
	assert.False(t, block.Visible)
}

func TestBlockUnmarshalUnknownTypeKeepsDocumentViewable(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","type":"video","content":{"url":"x"}}`), &block))
	assert.Equal(t, BlockType("video"), block.Type)
	assert.Nil(t, block.Content)

	// A corrupted block still renders as a diagnostic placeholder.
	node := Render(block, DefaultGlobalStyles())
	require.NotNil(t, node)
	assert.Equal(t, NodePlaceholder, node.Kind)
}

func TestBlockCopyIsDeep(t *testing.T) {
	original := NewBlock(BlockTypeProducts)
	content := original.Content.(ProductsContent)
	content.ProductIDs = []string{"p1"}
	original.Content = content

	dup := original.Copy()
	dupContent := dup.Content.(ProductsContent)
	dupContent.ProductIDs[0] = "changed"

	assert.Equal(t, "p1", original.Content.(ProductsContent).ProductIDs[0],
		"mutating the copy must not affect the original")

	*dup.Styles.Padding = PaddingNone
	assert.Equal(t, PaddingMedium, *original.Styles.Padding)
}

func TestBlockValidateContentTypeAgreement(t *testing.T) {
	block := NewBlock(BlockTypeText)
	require.NoError(t, block.Validate())

	block.Content = HeroContent{Heading: "wrong shape"}
	err := block.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match type")
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewDocument("Launch email")
	doc.Subject = "We launched"
	doc.PreviewText = "Big news inside"
	doc.Blocks = []Block{
		NewBlock(BlockTypeHero),
		NewBlock(BlockTypeText),
		NewBlock(BlockTypeFooter),
	}

	data, err := MarshalDocument(doc)
	require.NoError(t, err)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, decoded.ID)
	assert.Equal(t, doc.Subject, decoded.Subject)
	assert.Equal(t, doc.PreviewText, decoded.PreviewText)
	assert.Equal(t, doc.GlobalStyles, decoded.GlobalStyles)
	require.Len(t, decoded.Blocks, 3)
	for i := range doc.Blocks {
		assert.Equal(t, doc.Blocks[i].ID, decoded.Blocks[i].ID)
		assert.Equal(t, doc.Blocks[i].Type, decoded.Blocks[i].Type)
		assert.Equal(t, doc.Blocks[i].Content, decoded.Blocks[i].Content)
	}
}

func TestDocumentValidateDuplicateIDs(t *testing.T) {
	doc := NewDocument("dup")
	block := NewBlock(BlockTypeText)
	doc.Blocks = []Block{block, block}

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate block id")
}

func TestDocumentBlockLookups(t *testing.T) {
	doc := NewDocument("lookup")
	a := NewBlock(BlockTypeText)
	b := NewBlock(BlockTypeButton)
	doc.Blocks = []Block{a, b}

	assert.Equal(t, 0, doc.BlockIndex(a.ID))
	assert.Equal(t, 1, doc.BlockIndex(b.ID))
	assert.Equal(t, -1, doc.BlockIndex("missing"))
	assert.Nil(t, doc.BlockByID("missing"))
	require.NotNil(t, doc.BlockByID(b.ID))
	assert.Equal(t, []string{a.ID, b.ID}, doc.BlockIDs())
}

func TestDocumentCopyIndependence(t *testing.T) {
	doc := NewDocument("orig")
	doc.Blocks = []Block{NewBlock(BlockTypeText)}

	dup := doc.Copy()
	dup.Blocks[0].Content = TextContent{Text: "changed"}
	dup.GlobalStyles.PrimaryColor = "#000000"

	assert.Equal(t, TextContent{Text: "Write something great here."}, doc.Blocks[0].Content)
	assert.NotEqual(t, "#000000", doc.GlobalStyles.PrimaryColor)
}
