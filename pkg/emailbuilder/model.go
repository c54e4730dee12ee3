package emailbuilder

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BlockType represents the available email block types.
type BlockType string

const (
	BlockTypeHero     BlockType = "hero"
	BlockTypeText     BlockType = "text"
	BlockTypeImage    BlockType = "image"
	BlockTypeButton   BlockType = "button"
	BlockTypeDivider  BlockType = "divider"
	BlockTypeSpacer   BlockType = "spacer"
	BlockTypeColumns  BlockType = "columns"
	BlockTypeProducts BlockType = "products"
	BlockTypeSocial   BlockType = "social"
	BlockTypeFooter   BlockType = "footer"
)

// AllBlockTypes lists every member of the closed type set, in gallery order.
var AllBlockTypes = []BlockType{
	BlockTypeHero,
	BlockTypeText,
	BlockTypeImage,
	BlockTypeButton,
	BlockTypeDivider,
	BlockTypeSpacer,
	BlockTypeColumns,
	BlockTypeProducts,
	BlockTypeSocial,
	BlockTypeFooter,
}

func (t BlockType) Validate() error {
	switch t {
	case BlockTypeHero, BlockTypeText, BlockTypeImage, BlockTypeButton, BlockTypeDivider,
		BlockTypeSpacer, BlockTypeColumns, BlockTypeProducts, BlockTypeSocial, BlockTypeFooter:
		return nil
	}
	return fmt.Errorf("invalid block type: %s", t)
}

// DisplayName returns a human-readable name for a block type.
func (t BlockType) DisplayName() string {
	switch t {
	case BlockTypeHero:
		return "Hero"
	case BlockTypeText:
		return "Text"
	case BlockTypeImage:
		return "Image"
	case BlockTypeButton:
		return "Button"
	case BlockTypeDivider:
		return "Divider"
	case BlockTypeSpacer:
		return "Spacer"
	case BlockTypeColumns:
		return "Columns"
	case BlockTypeProducts:
		return "Products"
	case BlockTypeSocial:
		return "Social Links"
	case BlockTypeFooter:
		return "Footer"
	default:
		if t == "" {
			return "Unknown"
		}
		return strings.ToUpper(string(t)[:1]) + string(t)[1:]
	}
}

// BlockContent is the tagged-union payload of a block. The concrete type of
// the payload always matches the owning block's Type.
type BlockContent interface {
	ContentType() BlockType
	copyContent() BlockContent
}

type HeroContent struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

type TextContent struct {
	// Text may contain inline HTML; it is emitted unescaped like mj-text.
	Text string `json:"text"`
}

type ImageContent struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	LinkURL string `json:"linkUrl,omitempty"`
	Width   string `json:"width,omitempty"`
}

type ButtonContent struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type DividerContent struct {
	Thickness string `json:"thickness,omitempty"`
}

type SpacerContent struct {
	Height string `json:"height"`
}

type ColumnsContent struct {
	// Columns carry no nested blocks in this version; the renderer shows
	// one empty slot per column.
	ColumnCount int `json:"columnCount"`
}

type ProductsContent struct {
	ProductIDs []string `json:"productIds"`
	Heading    string   `json:"heading,omitempty"`
}

type SocialContent struct {
	FacebookURL  string `json:"facebookUrl,omitempty"`
	TwitterURL   string `json:"twitterUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	YoutubeURL   string `json:"youtubeUrl,omitempty"`
}

type FooterContent struct {
	CompanyName     string `json:"companyName,omitempty"`
	Address         string `json:"address,omitempty"`
	UnsubscribeText string `json:"unsubscribeText,omitempty"`
	UnsubscribeURL  string `json:"unsubscribeUrl,omitempty"`
}

func (c HeroContent) ContentType() BlockType     { return BlockTypeHero }
func (c TextContent) ContentType() BlockType     { return BlockTypeText }
func (c ImageContent) ContentType() BlockType    { return BlockTypeImage }
func (c ButtonContent) ContentType() BlockType   { return BlockTypeButton }
func (c DividerContent) ContentType() BlockType  { return BlockTypeDivider }
func (c SpacerContent) ContentType() BlockType   { return BlockTypeSpacer }
func (c ColumnsContent) ContentType() BlockType  { return BlockTypeColumns }
func (c ProductsContent) ContentType() BlockType { return BlockTypeProducts }
func (c SocialContent) ContentType() BlockType   { return BlockTypeSocial }
func (c FooterContent) ContentType() BlockType   { return BlockTypeFooter }

func (c HeroContent) copyContent() BlockContent    { return c }
func (c TextContent) copyContent() BlockContent    { return c }
func (c ImageContent) copyContent() BlockContent   { return c }
func (c ButtonContent) copyContent() BlockContent  { return c }
func (c DividerContent) copyContent() BlockContent { return c }
func (c SpacerContent) copyContent() BlockContent  { return c }
func (c ColumnsContent) copyContent() BlockContent { return c }
func (c ProductsContent) copyContent() BlockContent {
	out := c
	out.ProductIDs = append([]string(nil), c.ProductIDs...)
	return out
}
func (c SocialContent) copyContent() BlockContent { return c }
func (c FooterContent) copyContent() BlockContent { return c }

// HasLinks reports whether any social platform URL is populated.
func (c SocialContent) HasLinks() bool {
	return c.FacebookURL != "" || c.TwitterURL != "" || c.InstagramURL != "" ||
		c.LinkedinURL != "" || c.YoutubeURL != ""
}

// newContentForType returns a pointer to a zero value of the content type
// matching t, for JSON decoding. Returns nil for types outside the closed set.
func newContentForType(t BlockType) BlockContent {
	switch t {
	case BlockTypeHero:
		return &HeroContent{}
	case BlockTypeText:
		return &TextContent{}
	case BlockTypeImage:
		return &ImageContent{}
	case BlockTypeButton:
		return &ButtonContent{}
	case BlockTypeDivider:
		return &DividerContent{}
	case BlockTypeSpacer:
		return &SpacerContent{}
	case BlockTypeColumns:
		return &ColumnsContent{}
	case BlockTypeProducts:
		return &ProductsContent{}
	case BlockTypeSocial:
		return &SocialContent{}
	case BlockTypeFooter:
		return &FooterContent{}
	default:
		return nil
	}
}

// deref converts the pointer used during decoding back to the value form the
// rest of the package works with.
func derefContent(c BlockContent) BlockContent {
	switch v := c.(type) {
	case *HeroContent:
		return *v
	case *TextContent:
		return *v
	case *ImageContent:
		return *v
	case *ButtonContent:
		return *v
	case *DividerContent:
		return *v
	case *SpacerContent:
		return *v
	case *ColumnsContent:
		return *v
	case *ProductsContent:
		return *v
	case *SocialContent:
		return *v
	case *FooterContent:
		return *v
	default:
		return c
	}
}

// Block is one addressable, independently stylable unit of email content.
type Block struct {
	ID      string       `json:"id"`
	Type    BlockType    `json:"type"`
	Visible bool         `json:"visible"`
	Content BlockContent `json:"content"`
	Styles  BlockStyles  `json:"styles"`
}

// blockJSON mirrors Block with raw content for two-phase decoding.
type blockJSON struct {
	ID      string          `json:"id"`
	Type    BlockType       `json:"type"`
	Visible *bool           `json:"visible"`
	Content json.RawMessage `json:"content"`
	Styles  BlockStyles     `json:"styles"`
}

// UnmarshalJSON decodes the content payload into the concrete type matching
// the block's type tag. Blocks with a type outside the closed set keep a nil
// content; the renderer shows them as a diagnostic placeholder so a corrupted
// document stays viewable.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal block: %w", err)
	}

	b.ID = raw.ID
	b.Type = raw.Type
	b.Styles = raw.Styles
	b.Visible = true
	if raw.Visible != nil {
		b.Visible = *raw.Visible
	}

	content := newContentForType(raw.Type)
	if content == nil {
		b.Content = nil
		return nil
	}
	if len(raw.Content) > 0 && string(raw.Content) != "null" {
		if err := json.Unmarshal(raw.Content, content); err != nil {
			return fmt.Errorf("failed to unmarshal %s content for block %s: %w", raw.Type, raw.ID, err)
		}
	}
	b.Content = derefContent(content)
	return nil
}

// Copy returns a deep value copy. Mutating the copy never affects the
// original block.
func (b Block) Copy() Block {
	out := b
	if b.Content != nil {
		out.Content = b.Content.copyContent()
	}
	out.Styles = b.Styles.Copy()
	return out
}

func (b *Block) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("invalid block: id is required")
	}
	if err := b.Type.Validate(); err != nil {
		return fmt.Errorf("invalid block %s: %w", b.ID, err)
	}
	if b.Content == nil {
		return fmt.Errorf("invalid block %s: content is required", b.ID)
	}
	if b.Content.ContentType() != b.Type {
		return fmt.Errorf("invalid block %s: content shape %s does not match type %s",
			b.ID, b.Content.ContentType(), b.Type)
	}
	if err := b.Styles.Validate(); err != nil {
		return fmt.Errorf("invalid block %s: %w", b.ID, err)
	}
	return nil
}

// Document is the aggregate root: the full ordered collection of blocks plus
// subject, preview text and global styles for one email. Order in Blocks is
// the sole ordering signal.
type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Subject      string       `json:"subject"`
	PreviewText  string       `json:"previewText"`
	Blocks       []Block      `json:"blocks"`
	GlobalStyles GlobalStyles `json:"globalStyles"`
}

// Copy returns a deep value copy of the document.
func (d Document) Copy() Document {
	out := d
	out.Blocks = make([]Block, len(d.Blocks))
	for i, b := range d.Blocks {
		out.Blocks[i] = b.Copy()
	}
	return out
}

// BlockIndex returns the position of the block with the given id, or -1.
func (d *Document) BlockIndex(id string) int {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return i
		}
	}
	return -1
}

// BlockByID returns the block with the given id, or nil.
func (d *Document) BlockByID(id string) *Block {
	if i := d.BlockIndex(id); i >= 0 {
		return &d.Blocks[i]
	}
	return nil
}

// BlockIDs returns the block ids in document order.
func (d *Document) BlockIDs() []string {
	ids := make([]string, len(d.Blocks))
	for i := range d.Blocks {
		ids[i] = d.Blocks[i].ID
	}
	return ids
}

func (d *Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("invalid document: id is required")
	}
	seen := make(map[string]bool, len(d.Blocks))
	for i := range d.Blocks {
		if err := d.Blocks[i].Validate(); err != nil {
			return fmt.Errorf("invalid document: %w", err)
		}
		if seen[d.Blocks[i].ID] {
			return fmt.Errorf("invalid document: duplicate block id %s", d.Blocks[i].ID)
		}
		seen[d.Blocks[i].ID] = true
	}
	if err := d.GlobalStyles.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}

// UnmarshalDocument decodes a document from its transport JSON shape.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// MarshalDocument encodes a document to its transport JSON shape.
func MarshalDocument(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	return json.Marshal(doc)
}
