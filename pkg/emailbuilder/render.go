package emailbuilder

import (
	"fmt"
)

// NodeKind represents the kind of a rendered visual node.
type NodeKind string

const (
	NodeBox         NodeKind = "box"
	NodeText        NodeKind = "text"
	NodeImage       NodeKind = "image"
	NodeLink        NodeKind = "link"
	NodeDivider     NodeKind = "divider"
	NodeSpacer      NodeKind = "spacer"
	NodePlaceholder NodeKind = "placeholder"
)

// Node is one element of the rendered visual tree. Styles hold concrete
// resolved values only (pixel strings, hex colors, CSS keywords) so the
// consumer never sees symbolic enum names.
type Node struct {
	Kind     NodeKind          `json:"kind"`
	BlockID  string            `json:"blockId,omitempty"`
	Text     string            `json:"text,omitempty"`
	Src      string            `json:"src,omitempty"`
	Alt      string            `json:"alt,omitempty"`
	Href     string            `json:"href,omitempty"`
	Styles   map[string]string `json:"styles,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Render projects a block into a visual node tree against the document's
// global styles. It is total: every block type, including content with all
// optional fields omitted and types outside the closed set, yields a
// non-nil tree. Malformed input degrades to a visible placeholder, never a
// panic.
func Render(block Block, global GlobalStyles) *Node {
	switch block.Type {
	case BlockTypeHero:
		return renderHero(block, global)
	case BlockTypeText:
		return renderText(block, global)
	case BlockTypeImage:
		return renderImage(block, global)
	case BlockTypeButton:
		return renderButton(block, global)
	case BlockTypeDivider:
		return renderDivider(block, global)
	case BlockTypeSpacer:
		return renderSpacer(block, global)
	case BlockTypeColumns:
		return renderColumns(block, global)
	case BlockTypeProducts:
		return renderProducts(block, global)
	case BlockTypeSocial:
		return renderSocial(block, global)
	case BlockTypeFooter:
		return renderFooter(block, global)
	default:
		// Only reachable through external data corruption. Keep the
		// document viewable so the block can still be selected and deleted.
		return &Node{
			Kind:    NodePlaceholder,
			BlockID: block.ID,
			Text:    fmt.Sprintf("Unknown block type %q - this block cannot be displayed", block.Type),
			Styles: map[string]string{
				"background-color": "#fef2f2",
				"color":            "#b91c1c",
				"padding":          paddingPixels[PaddingMedium],
				"text-align":       "center",
			},
		}
	}
}

// RenderDocument renders every visible block in document order. Hidden
// blocks are retained in the document but skipped here.
func RenderDocument(doc *Document) []*Node {
	if doc == nil {
		return nil
	}
	nodes := make([]*Node, 0, len(doc.Blocks))
	for i := range doc.Blocks {
		if !doc.Blocks[i].Visible {
			continue
		}
		nodes = append(nodes, Render(doc.Blocks[i], doc.GlobalStyles))
	}
	return nodes
}

// Style resolution. Each field has an explicit, ordered precedence:
// block override, then type default, then the global fallback where one
// exists. Keeping one function per concern makes the precedence testable.

// resolveColor returns the first non-empty candidate.
func resolveColor(override *string, fallbacks ...string) string {
	if override != nil && *override != "" {
		return *override
	}
	for _, f := range fallbacks {
		if f != "" {
			return f
		}
	}
	return ""
}

func resolvePadding(override *PaddingSize, typeDefault PaddingSize) string {
	if override != nil {
		return override.Pixels()
	}
	return typeDefault.Pixels()
}

func resolveAlignment(override *Alignment, typeDefault Alignment) string {
	if override != nil {
		return override.CSS()
	}
	return typeDefault.CSS()
}

func resolveFontSize(override *FontSizeName, typeDefault FontSizeName) string {
	if override != nil {
		return override.Pixels()
	}
	return typeDefault.Pixels()
}

func resolveRadius(override *BorderRadiusSize, global BorderRadiusSize) string {
	if override != nil {
		return override.Pixels()
	}
	return global.Pixels()
}

func heroContent(b Block) HeroContent {
	c, _ := b.Content.(HeroContent)
	return c
}

func renderHero(b Block, g GlobalStyles) *Node {
	c := heroContent(b)
	align := resolveAlignment(b.Styles.Alignment, AlignCenter)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.PrimaryColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingLarge),
			"text-align":       align,
			"font-family":      g.FontFamily,
		},
	}
	if c.ImageURL != "" {
		root.Children = append(root.Children, &Node{
			Kind:   NodeImage,
			Src:    c.ImageURL,
			Alt:    c.Heading,
			Styles: map[string]string{"width": "100%"},
		})
	}
	root.Children = append(root.Children, &Node{
		Kind: NodeText,
		Text: c.Heading,
		Styles: map[string]string{
			"color":       resolveColor(b.Styles.TextColor, "#ffffff"),
			"font-size":   resolveFontSize(b.Styles.FontSize, FontXLarge),
			"font-weight": "bold",
		},
	})
	if c.Subheading != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeText,
			Text: c.Subheading,
			Styles: map[string]string{
				"color":     resolveColor(b.Styles.TextColor, "#ffffff"),
				"font-size": fontPixels[FontMedium],
			},
		})
	}
	if c.ButtonText != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeLink,
			Text: c.ButtonText,
			Href: c.ButtonURL,
			Styles: map[string]string{
				"background-color": resolveColor(b.Styles.ButtonColor, "#ffffff"),
				"color":            resolveColor(b.Styles.ButtonTextColor, g.PrimaryColor),
				"border-radius":    resolveRadius(b.Styles.BorderRadius, g.BorderRadius),
				"padding":          "12px 24px",
			},
		})
	}
	return root
}

func renderText(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(TextContent)
	return &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignLeft),
		},
		Children: []*Node{{
			Kind: NodeText,
			Text: c.Text,
			Styles: map[string]string{
				"color":       resolveColor(b.Styles.TextColor, g.TextColor),
				"font-size":   resolveFontSize(b.Styles.FontSize, FontMedium),
				"font-family": g.FontFamily,
				"line-height": "1.6",
			},
		}},
	}
}

func renderImage(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(ImageContent)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignCenter),
		},
	}
	if c.Src == "" {
		root.Children = []*Node{{
			Kind: NodePlaceholder,
			Text: "Add an image URL to display an image",
			Styles: map[string]string{
				"background-color": "#f4f4f5",
				"color":            "#71717a",
				"padding":          paddingPixels[PaddingLarge],
			},
		}}
		return root
	}
	img := &Node{
		Kind: NodeImage,
		Src:  c.Src,
		Alt:  c.Alt,
		Styles: map[string]string{
			"width":         widthOr(c.Width, "100%"),
			"border-radius": resolveRadius(b.Styles.BorderRadius, g.BorderRadius),
		},
	}
	if c.LinkURL != "" {
		root.Children = []*Node{{
			Kind:     NodeLink,
			Href:     c.LinkURL,
			Children: []*Node{img},
		}}
		return root
	}
	root.Children = []*Node{img}
	return root
}

func renderButton(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(ButtonContent)
	return &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignCenter),
		},
		Children: []*Node{{
			Kind: NodeLink,
			Text: c.Text,
			Href: c.URL,
			Styles: map[string]string{
				"background-color": resolveColor(b.Styles.ButtonColor, g.PrimaryColor),
				"color":            resolveColor(b.Styles.ButtonTextColor, "#ffffff"),
				"border-radius":    resolveRadius(b.Styles.BorderRadius, g.BorderRadius),
				"font-size":        resolveFontSize(b.Styles.FontSize, FontMedium),
				"font-family":      g.FontFamily,
				"padding":          "12px 24px",
			},
		}},
	}
}

func renderDivider(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(DividerContent)
	styles := map[string]string{
		"padding": resolvePadding(b.Styles.Padding, PaddingSmall),
	}
	// Divider background deliberately has no global fallback: an unset
	// background stays transparent.
	if bg := resolveColor(b.Styles.BackgroundColor); bg != "" {
		styles["background-color"] = bg
	}
	return &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles:  styles,
		Children: []*Node{{
			Kind: NodeDivider,
			Styles: map[string]string{
				"border-top": fmt.Sprintf("%s solid %s",
					widthOr(c.Thickness, "1px"),
					resolveColor(b.Styles.BorderColor, "#e4e4e7")),
				"width": "100%",
			},
		}},
	}
}

func renderSpacer(b Block, _ GlobalStyles) *Node {
	c, _ := b.Content.(SpacerContent)
	return &Node{
		Kind:    NodeSpacer,
		BlockID: b.ID,
		Styles: map[string]string{
			"height": widthOr(c.Height, "32px"),
		},
	}
}

func renderColumns(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(ColumnsContent)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
		},
	}
	if c.ColumnCount <= 0 {
		root.Children = []*Node{{
			Kind: NodePlaceholder,
			Text: "Set a column count to lay out this section",
			Styles: map[string]string{
				"background-color": "#f4f4f5",
				"color":            "#71717a",
				"padding":          paddingPixels[PaddingMedium],
			},
		}}
		return root
	}
	// Columns hold no nested blocks in this version; each renders as an
	// empty slot.
	width := fmt.Sprintf("%.2f%%", 100.0/float64(c.ColumnCount))
	for i := 0; i < c.ColumnCount; i++ {
		root.Children = append(root.Children, &Node{
			Kind: NodePlaceholder,
			Text: fmt.Sprintf("Column %d", i+1),
			Styles: map[string]string{
				"width":            width,
				"background-color": "#fafafa",
				"color":            "#a1a1aa",
				"padding":          paddingPixels[PaddingMedium],
				"text-align":       "center",
			},
		})
	}
	return root
}

func renderProducts(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(ProductsContent)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignCenter),
		},
	}
	if c.Heading != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeText,
			Text: c.Heading,
			Styles: map[string]string{
				"color":       resolveColor(b.Styles.TextColor, g.HeadingColor),
				"font-size":   resolveFontSize(b.Styles.FontSize, FontLarge),
				"font-family": g.FontFamily,
				"font-weight": "bold",
			},
		})
	}
	if len(c.ProductIDs) == 0 {
		root.Children = append(root.Children, &Node{
			Kind: NodePlaceholder,
			Text: "Add product ids to showcase products here",
			Styles: map[string]string{
				"background-color": "#f4f4f5",
				"color":            "#71717a",
				"padding":          paddingPixels[PaddingLarge],
			},
		})
		return root
	}
	for _, id := range c.ProductIDs {
		root.Children = append(root.Children, &Node{
			Kind: NodeBox,
			Styles: map[string]string{
				"padding":       paddingPixels[PaddingSmall],
				"border-radius": resolveRadius(b.Styles.BorderRadius, g.BorderRadius),
			},
			Children: []*Node{
				{
					Kind: NodeText,
					Text: fmt.Sprintf("Product %s", id),
					Styles: map[string]string{
						"color":     resolveColor(b.Styles.TextColor, g.TextColor),
						"font-size": resolveFontSize(b.Styles.FontSize, FontMedium),
					},
				},
				{
					Kind: NodeLink,
					Text: "View product",
					Href: fmt.Sprintf("{{ product_url_%s }}", id),
					Styles: map[string]string{
						"background-color": resolveColor(b.Styles.ButtonColor, g.PrimaryColor),
						"color":            resolveColor(b.Styles.ButtonTextColor, "#ffffff"),
						"border-radius":    resolveRadius(b.Styles.BorderRadius, g.BorderRadius),
						"padding":          "8px 16px",
					},
				},
			},
		})
	}
	return root
}

func renderSocial(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(SocialContent)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingMedium),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignCenter),
		},
	}
	if !c.HasLinks() {
		root.Children = []*Node{{
			Kind: NodePlaceholder,
			Text: "Add social profile links to show icons here",
			Styles: map[string]string{
				"color":     "#71717a",
				"font-size": fontPixels[FontSmall],
			},
		}}
		return root
	}
	for _, link := range []struct {
		name string
		href string
	}{
		{"Facebook", c.FacebookURL},
		{"Twitter", c.TwitterURL},
		{"Instagram", c.InstagramURL},
		{"LinkedIn", c.LinkedinURL},
		{"YouTube", c.YoutubeURL},
	} {
		if link.href == "" {
			continue
		}
		root.Children = append(root.Children, &Node{
			Kind: NodeLink,
			Text: link.name,
			Href: link.href,
			Styles: map[string]string{
				"color":     resolveColor(b.Styles.TextColor, g.LinkColor),
				"font-size": fontPixels[FontSmall],
				"padding":   "0px 8px",
			},
		})
	}
	return root
}

func renderFooter(b Block, g GlobalStyles) *Node {
	c, _ := b.Content.(FooterContent)
	textColor := resolveColor(b.Styles.TextColor, g.TextColor)
	root := &Node{
		Kind:    NodeBox,
		BlockID: b.ID,
		Styles: map[string]string{
			"background-color": resolveColor(b.Styles.BackgroundColor, g.BodyBackgroundColor),
			"padding":          resolvePadding(b.Styles.Padding, PaddingLarge),
			"text-align":       resolveAlignment(b.Styles.Alignment, AlignCenter),
			"font-family":      g.FontFamily,
		},
	}
	if c.CompanyName != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeText,
			Text: c.CompanyName,
			Styles: map[string]string{
				"color":       textColor,
				"font-size":   resolveFontSize(b.Styles.FontSize, FontSmall),
				"font-weight": "bold",
			},
		})
	}
	if c.Address != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeText,
			Text: c.Address,
			Styles: map[string]string{
				"color":     textColor,
				"font-size": resolveFontSize(b.Styles.FontSize, FontSmall),
			},
		})
	}
	if c.UnsubscribeText != "" {
		root.Children = append(root.Children, &Node{
			Kind: NodeLink,
			Text: c.UnsubscribeText,
			Href: c.UnsubscribeURL,
			Styles: map[string]string{
				"color":     resolveColor(b.Styles.TextColor, g.LinkColor),
				"font-size": fontPixels[FontSmall],
			},
		})
	}
	return root
}

func widthOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
