package emailbuilder

import (
	"fmt"
	"sort"
	"strings"
)

// DocumentToMJML converts a document to MJML markup. Hidden blocks are
// skipped, matching the renderer. Content that may legitimately contain
// inline HTML (text bodies) is emitted raw like mj-text expects; everything
// else is escaped.
func DocumentToMJML(doc *Document) string {
	var b strings.Builder
	g := doc.GlobalStyles

	b.WriteString("<mjml>\n")
	b.WriteString("  <mj-head>\n")
	if doc.Subject != "" {
		fmt.Fprintf(&b, "    <mj-title>%s</mj-title>\n", escapeContent(doc.Subject))
	}
	if doc.PreviewText != "" {
		fmt.Fprintf(&b, "    <mj-preview>%s</mj-preview>\n", escapeContent(doc.PreviewText))
	}
	b.WriteString("    <mj-attributes>\n")
	fmt.Fprintf(&b, "      <mj-all %s />\n", mjAttrs(map[string]string{"font-family": g.FontFamily}))
	b.WriteString("    </mj-attributes>\n")
	b.WriteString("  </mj-head>\n")
	fmt.Fprintf(&b, "  <mj-body %s>\n", mjAttrs(map[string]string{"background-color": g.BodyBackgroundColor}))

	for i := range doc.Blocks {
		if !doc.Blocks[i].Visible {
			continue
		}
		writeBlockMJML(&b, doc.Blocks[i], g)
	}

	b.WriteString("  </mj-body>\n")
	b.WriteString("</mjml>")
	return b.String()
}

func writeBlockMJML(b *strings.Builder, block Block, g GlobalStyles) {
	switch block.Type {
	case BlockTypeHero:
		writeHeroMJML(b, block, g)
	case BlockTypeText:
		writeTextMJML(b, block, g)
	case BlockTypeImage:
		writeImageMJML(b, block, g)
	case BlockTypeButton:
		writeButtonMJML(b, block, g)
	case BlockTypeDivider:
		writeDividerMJML(b, block, g)
	case BlockTypeSpacer:
		writeSpacerMJML(b, block)
	case BlockTypeColumns:
		writeColumnsMJML(b, block, g)
	case BlockTypeProducts:
		writeProductsMJML(b, block, g)
	case BlockTypeSocial:
		writeSocialMJML(b, block, g)
	case BlockTypeFooter:
		writeFooterMJML(b, block, g)
	default:
		openSection(b, map[string]string{"background-color": "#fef2f2"})
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n",
			mjAttrs(map[string]string{"color": "#b91c1c", "align": "center"}),
			escapeContent(fmt.Sprintf("Unknown block type %q", block.Type)))
		closeSection(b)
	}
}

func openSection(b *strings.Builder, attrs map[string]string) {
	fmt.Fprintf(b, "    <mj-section %s>\n", mjAttrs(attrs))
	b.WriteString("      <mj-column>\n")
}

func closeSection(b *strings.Builder) {
	b.WriteString("      </mj-column>\n")
	b.WriteString("    </mj-section>\n")
}

func writeHeroMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c := heroContent(block)
	align := resolveAlignment(block.Styles.Alignment, AlignCenter)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.PrimaryColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingLarge),
	})
	if c.ImageURL != "" {
		fmt.Fprintf(b, "        <mj-image %s />\n", mjAttrs(map[string]string{
			"src": c.ImageURL,
			"alt": c.Heading,
		}))
	}
	fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
		"align":       align,
		"color":       resolveColor(block.Styles.TextColor, "#ffffff"),
		"font-size":   resolveFontSize(block.Styles.FontSize, FontXLarge),
		"font-weight": "bold",
	}), escapeContent(c.Heading))
	if c.Subheading != "" {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align":     align,
			"color":     resolveColor(block.Styles.TextColor, "#ffffff"),
			"font-size": fontPixels[FontMedium],
		}), escapeContent(c.Subheading))
	}
	if c.ButtonText != "" {
		fmt.Fprintf(b, "        <mj-button %s>%s</mj-button>\n", mjAttrs(map[string]string{
			"align":            align,
			"href":             c.ButtonURL,
			"background-color": resolveColor(block.Styles.ButtonColor, "#ffffff"),
			"color":            resolveColor(block.Styles.ButtonTextColor, g.PrimaryColor),
			"border-radius":    resolveRadius(block.Styles.BorderRadius, g.BorderRadius),
		}), escapeContent(c.ButtonText))
	}
	closeSection(b)
}

func writeTextMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(TextContent)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	})
	fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
		"align":       resolveAlignment(block.Styles.Alignment, AlignLeft),
		"color":       resolveColor(block.Styles.TextColor, g.TextColor),
		"font-size":   resolveFontSize(block.Styles.FontSize, FontMedium),
		"line-height": "1.6",
	}), c.Text)
	closeSection(b)
}

func writeImageMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(ImageContent)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	})
	if c.Src == "" {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align": "center",
			"color": "#71717a",
		}), "Add an image URL to display an image")
	} else {
		fmt.Fprintf(b, "        <mj-image %s />\n", mjAttrs(map[string]string{
			"src":           c.Src,
			"alt":           c.Alt,
			"href":          c.LinkURL,
			"width":         c.Width,
			"align":         resolveAlignment(block.Styles.Alignment, AlignCenter),
			"border-radius": resolveRadius(block.Styles.BorderRadius, g.BorderRadius),
		}))
	}
	closeSection(b)
}

func writeButtonMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(ButtonContent)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	})
	fmt.Fprintf(b, "        <mj-button %s>%s</mj-button>\n", mjAttrs(map[string]string{
		"align":            resolveAlignment(block.Styles.Alignment, AlignCenter),
		"href":             c.URL,
		"background-color": resolveColor(block.Styles.ButtonColor, g.PrimaryColor),
		"color":            resolveColor(block.Styles.ButtonTextColor, "#ffffff"),
		"border-radius":    resolveRadius(block.Styles.BorderRadius, g.BorderRadius),
		"font-size":        resolveFontSize(block.Styles.FontSize, FontMedium),
	}), escapeContent(c.Text))
	closeSection(b)
}

func writeDividerMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(DividerContent)
	attrs := map[string]string{
		"padding": resolvePadding(block.Styles.Padding, PaddingSmall),
	}
	// No global fallback for divider background.
	if bg := resolveColor(block.Styles.BackgroundColor); bg != "" {
		attrs["background-color"] = bg
	}
	openSection(b, attrs)
	fmt.Fprintf(b, "        <mj-divider %s />\n", mjAttrs(map[string]string{
		"border-color": resolveColor(block.Styles.BorderColor, "#e4e4e7"),
		"border-width": widthOr(c.Thickness, "1px"),
	}))
	closeSection(b)
}

func writeSpacerMJML(b *strings.Builder, block Block) {
	c, _ := block.Content.(SpacerContent)
	openSection(b, map[string]string{"padding": resolvePadding(block.Styles.Padding, PaddingNone)})
	fmt.Fprintf(b, "        <mj-spacer %s />\n", mjAttrs(map[string]string{
		"height": widthOr(c.Height, "32px"),
	}))
	closeSection(b)
}

func writeColumnsMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(ColumnsContent)
	fmt.Fprintf(b, "    <mj-section %s>\n", mjAttrs(map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	}))
	count := c.ColumnCount
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		b.WriteString("      <mj-column>\n")
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align": "center",
			"color": "#a1a1aa",
		}), escapeContent(fmt.Sprintf("Column %d", i+1)))
		b.WriteString("      </mj-column>\n")
	}
	b.WriteString("    </mj-section>\n")
}

func writeProductsMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(ProductsContent)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	})
	if c.Heading != "" {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align":       resolveAlignment(block.Styles.Alignment, AlignCenter),
			"color":       resolveColor(block.Styles.TextColor, g.HeadingColor),
			"font-size":   resolveFontSize(block.Styles.FontSize, FontLarge),
			"font-weight": "bold",
		}), escapeContent(c.Heading))
	}
	if len(c.ProductIDs) == 0 {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align": "center",
			"color": "#71717a",
		}), "Add product ids to showcase products here")
	}
	for _, id := range c.ProductIDs {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align": resolveAlignment(block.Styles.Alignment, AlignCenter),
			"color": resolveColor(block.Styles.TextColor, g.TextColor),
		}), escapeContent(fmt.Sprintf("Product %s", id)))
		fmt.Fprintf(b, "        <mj-button %s>%s</mj-button>\n", mjAttrs(map[string]string{
			"align":            resolveAlignment(block.Styles.Alignment, AlignCenter),
			"href":             fmt.Sprintf("{{ product_url_%s }}", id),
			"background-color": resolveColor(block.Styles.ButtonColor, g.PrimaryColor),
			"color":            resolveColor(block.Styles.ButtonTextColor, "#ffffff"),
			"border-radius":    resolveRadius(block.Styles.BorderRadius, g.BorderRadius),
		}), "View product")
	}
	closeSection(b)
}

func writeSocialMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(SocialContent)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingMedium),
	})
	if !c.HasLinks() {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align":     "center",
			"color":     "#71717a",
			"font-size": fontPixels[FontSmall],
		}), "Add social profile links to show icons here")
		closeSection(b)
		return
	}
	fmt.Fprintf(b, "        <mj-social %s>\n", mjAttrs(map[string]string{
		"align":     resolveAlignment(block.Styles.Alignment, AlignCenter),
		"mode":      "horizontal",
		"icon-size": "24px",
	}))
	for _, link := range []struct {
		name string
		href string
	}{
		{"facebook", c.FacebookURL},
		{"twitter", c.TwitterURL},
		{"instagram", c.InstagramURL},
		{"linkedin", c.LinkedinURL},
		{"youtube", c.YoutubeURL},
	} {
		if link.href == "" {
			continue
		}
		fmt.Fprintf(b, "          <mj-social-element %s />\n", mjAttrs(map[string]string{
			"name": link.name,
			"href": link.href,
		}))
	}
	b.WriteString("        </mj-social>\n")
	closeSection(b)
}

func writeFooterMJML(b *strings.Builder, block Block, g GlobalStyles) {
	c, _ := block.Content.(FooterContent)
	align := resolveAlignment(block.Styles.Alignment, AlignCenter)
	textColor := resolveColor(block.Styles.TextColor, g.TextColor)
	fontSize := resolveFontSize(block.Styles.FontSize, FontSmall)
	openSection(b, map[string]string{
		"background-color": resolveColor(block.Styles.BackgroundColor, g.BodyBackgroundColor),
		"padding":          resolvePadding(block.Styles.Padding, PaddingLarge),
	})
	if c.CompanyName != "" {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align":       align,
			"color":       textColor,
			"font-size":   fontSize,
			"font-weight": "bold",
		}), escapeContent(c.CompanyName))
	}
	if c.Address != "" {
		fmt.Fprintf(b, "        <mj-text %s>%s</mj-text>\n", mjAttrs(map[string]string{
			"align":     align,
			"color":     textColor,
			"font-size": fontSize,
		}), escapeContent(c.Address))
	}
	if c.UnsubscribeText != "" {
		fmt.Fprintf(b, "        <mj-text %s><a href=\"%s\" style=\"color: %s;\">%s</a></mj-text>\n",
			mjAttrs(map[string]string{
				"align":     align,
				"font-size": fontSize,
			}),
			escapeAttributeValue(c.UnsubscribeURL, "href"),
			resolveColor(block.Styles.TextColor, g.LinkColor),
			escapeContent(c.UnsubscribeText))
	}
	closeSection(b)
}

// mjAttrs formats an attribute map into a stable, sorted attribute string,
// dropping empty values.
func mjAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf(`%s="%s"`, k, escapeAttributeValue(attrs[k], k)))
	}
	return strings.Join(pairs, " ")
}

// escapeAttributeValue escapes attribute values for safe markup output. URL
// attributes keep bare ampersands and Liquid braces so query strings and
// placeholders survive compilation.
func escapeAttributeValue(value string, attributeName string) string {
	isURLAttribute := attributeName == "src" || attributeName == "href"
	looksLikeURL := strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "//")

	if !(isURLAttribute && looksLikeURL) {
		value = strings.ReplaceAll(value, "&", "&amp;")
	}
	value = strings.ReplaceAll(value, "\"", "&quot;")
	value = strings.ReplaceAll(value, "'", "&#39;")
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}

func escapeContent(content string) string {
	content = strings.ReplaceAll(content, "&", "&amp;")
	content = strings.ReplaceAll(content, "<", "&lt;")
	content = strings.ReplaceAll(content, ">", "&gt;")
	return content
}
