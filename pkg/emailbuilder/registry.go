package emailbuilder

import (
	"github.com/google/uuid"
)

// DefaultContent returns the content payload a freshly added block of the
// given type starts with. There is exactly one entry per member of the
// closed type set; exhaustiveness is asserted in tests against
// AllBlockTypes. Unknown types return nil, which callers treat as a
// programming error.
func DefaultContent(t BlockType) BlockContent {
	switch t {
	case BlockTypeHero:
		return HeroContent{
			Heading:    "Welcome to our newsletter",
			Subheading: "Stay up to date with our latest news",
			ButtonText: "Learn more",
			ButtonURL:  "https://example.com",
		}
	case BlockTypeText:
		return TextContent{
			Text: "Write something great here.",
		}
	case BlockTypeImage:
		return ImageContent{
			Alt:   "Image",
			Width: "600px",
		}
	case BlockTypeButton:
		return ButtonContent{
			Text: "Click me",
			URL:  "https://example.com",
		}
	case BlockTypeDivider:
		return DividerContent{
			Thickness: "1px",
		}
	case BlockTypeSpacer:
		return SpacerContent{
			Height: "32px",
		}
	case BlockTypeColumns:
		return ColumnsContent{
			ColumnCount: 2,
		}
	case BlockTypeProducts:
		return ProductsContent{
			ProductIDs: []string{},
			Heading:    "Featured products",
		}
	case BlockTypeSocial:
		return SocialContent{}
	case BlockTypeFooter:
		return FooterContent{
			CompanyName:     "Your Company",
			UnsubscribeText: "Unsubscribe",
			UnsubscribeURL:  "{{ unsubscribe_url }}",
		}
	default:
		return nil
	}
}

// DefaultStyles returns the style payload a freshly added block of the given
// type starts with. Fields left nil cascade to the type default and then to
// GlobalStyles at render time.
func DefaultStyles(t BlockType) BlockStyles {
	switch t {
	case BlockTypeHero:
		return BlockStyles{
			Padding:   paddingPtr(PaddingLarge),
			Alignment: alignmentPtr(AlignCenter),
			FontSize:  fontPtr(FontXLarge),
		}
	case BlockTypeText:
		return BlockStyles{
			Padding:   paddingPtr(PaddingMedium),
			Alignment: alignmentPtr(AlignLeft),
			FontSize:  fontPtr(FontMedium),
		}
	case BlockTypeImage:
		return BlockStyles{
			Padding:   paddingPtr(PaddingMedium),
			Alignment: alignmentPtr(AlignCenter),
		}
	case BlockTypeButton:
		return BlockStyles{
			Padding:   paddingPtr(PaddingMedium),
			Alignment: alignmentPtr(AlignCenter),
			FontSize:  fontPtr(FontMedium),
		}
	case BlockTypeDivider:
		return BlockStyles{
			Padding: paddingPtr(PaddingSmall),
		}
	case BlockTypeSpacer:
		return BlockStyles{
			Padding: paddingPtr(PaddingNone),
		}
	case BlockTypeColumns:
		return BlockStyles{
			Padding: paddingPtr(PaddingMedium),
		}
	case BlockTypeProducts:
		return BlockStyles{
			Padding:   paddingPtr(PaddingMedium),
			Alignment: alignmentPtr(AlignCenter),
			FontSize:  fontPtr(FontMedium),
		}
	case BlockTypeSocial:
		return BlockStyles{
			Padding:   paddingPtr(PaddingMedium),
			Alignment: alignmentPtr(AlignCenter),
		}
	case BlockTypeFooter:
		return BlockStyles{
			Padding:   paddingPtr(PaddingLarge),
			Alignment: alignmentPtr(AlignCenter),
			FontSize:  fontPtr(FontSmall),
		}
	default:
		return BlockStyles{}
	}
}

// NewBlockID returns a fresh block id. Ids are never reused.
func NewBlockID() string {
	return uuid.New().String()
}

// NewBlock creates a block of the given type with a fresh id and the
// registry defaults. Blocks are only ever created here and by Copy-based
// duplication, never by direct construction.
func NewBlock(t BlockType) Block {
	return Block{
		ID:      uuid.New().String(),
		Type:    t,
		Visible: true,
		Content: DefaultContent(t),
		Styles:  DefaultStyles(t),
	}
}

// NewDocument creates a minimal empty document with a fresh id and default
// global styles.
func NewDocument(name string) *Document {
	return &Document{
		ID:           uuid.New().String(),
		Name:         name,
		Blocks:       []Block{},
		GlobalStyles: DefaultGlobalStyles(),
	}
}

func paddingPtr(p PaddingSize) *PaddingSize          { return &p }
func alignmentPtr(a Alignment) *Alignment            { return &a }
func radiusPtr(r BorderRadiusSize) *BorderRadiusSize { return &r }
func fontPtr(f FontSizeName) *FontSizeName           { return &f }
