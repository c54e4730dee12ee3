package emailbuilder

import (
	"github.com/google/uuid"
)

// Preset is a canned starting document for the template gallery. Preset
// block ids only need to be unique within the preset; Instantiate re-ids
// everything.
type Preset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Document    Document `json:"document"`
}

// Instantiate clones a preset into a fresh, independently-identified
// document. The new document and every block get new ids while order, type,
// content and styles are preserved verbatim. Two instantiations of the same
// preset share no ids, so id-keyed commands on one document can never touch
// the other.
func Instantiate(preset Preset) *Document {
	doc := preset.Document.Copy()
	doc.ID = uuid.New().String()
	for i := range doc.Blocks {
		doc.Blocks[i].ID = uuid.New().String()
	}
	return &doc
}

// DefaultPresets returns the built-in gallery entries.
func DefaultPresets() []Preset {
	return []Preset{
		WelcomePreset(),
		NewsletterPreset(),
		PromotionPreset(),
	}
}

// WelcomePreset is a minimal hero + text + button welcome email.
func WelcomePreset() Preset {
	return Preset{
		ID:          "welcome",
		Name:        "Welcome",
		Description: "Greet new subscribers with a hero and a call to action",
		Document: Document{
			ID:      "preset-welcome",
			Name:    "Welcome email",
			Subject: "Welcome aboard!",
			Blocks: []Block{
				presetBlock("welcome-hero", BlockTypeHero, HeroContent{
					Heading:    "Welcome to the family",
					Subheading: "We are glad to have you here",
					ButtonText: "Explore",
					ButtonURL:  "https://example.com",
				}),
				presetBlock("welcome-text", BlockTypeText, TextContent{
					Text: "Hi {{ first_name }}, thanks for signing up. Here is what you can expect from us.",
				}),
				presetBlock("welcome-button", BlockTypeButton, ButtonContent{
					Text: "Get started",
					URL:  "https://example.com/start",
				}),
				presetBlock("welcome-footer", BlockTypeFooter, FooterContent{
					CompanyName:     "Your Company",
					UnsubscribeText: "Unsubscribe",
					UnsubscribeURL:  "{{ unsubscribe_url }}",
				}),
			},
			GlobalStyles: DefaultGlobalStyles(),
		},
	}
}

// NewsletterPreset is a text-heavy layout with a divider and social links.
func NewsletterPreset() Preset {
	return Preset{
		ID:          "newsletter",
		Name:        "Newsletter",
		Description: "A classic digest layout",
		Document: Document{
			ID:      "preset-newsletter",
			Name:    "Monthly newsletter",
			Subject: "Your monthly digest",
			Blocks: []Block{
				presetBlock("news-hero", BlockTypeHero, HeroContent{
					Heading: "This month in review",
				}),
				presetBlock("news-intro", BlockTypeText, TextContent{
					Text: "Here is everything that happened since our last issue.",
				}),
				presetBlock("news-divider", BlockTypeDivider, DividerContent{Thickness: "1px"}),
				presetBlock("news-body", BlockTypeText, TextContent{
					Text: "Write your stories here.",
				}),
				presetBlock("news-spacer", BlockTypeSpacer, SpacerContent{Height: "24px"}),
				presetBlock("news-social", BlockTypeSocial, SocialContent{}),
				presetBlock("news-footer", BlockTypeFooter, FooterContent{
					CompanyName:     "Your Company",
					UnsubscribeText: "Unsubscribe",
					UnsubscribeURL:  "{{ unsubscribe_url }}",
				}),
			},
			GlobalStyles: DefaultGlobalStyles(),
		},
	}
}

// PromotionPreset showcases products with a strong call to action.
func PromotionPreset() Preset {
	return Preset{
		ID:          "promotion",
		Name:        "Promotion",
		Description: "Product showcase with a discount pitch",
		Document: Document{
			ID:      "preset-promotion",
			Name:    "Promotion email",
			Subject: "A special offer for you",
			Blocks: []Block{
				presetBlock("promo-hero", BlockTypeHero, HeroContent{
					Heading:    "Limited time offer",
					Subheading: "Save 20% on everything",
					ButtonText: "Shop now",
					ButtonURL:  "https://example.com/shop",
				}),
				presetBlock("promo-products", BlockTypeProducts, ProductsContent{
					ProductIDs: []string{},
					Heading:    "Featured products",
				}),
				presetBlock("promo-image", BlockTypeImage, ImageContent{
					Alt:   "Promotion banner",
					Width: "600px",
				}),
				presetBlock("promo-footer", BlockTypeFooter, FooterContent{
					CompanyName:     "Your Company",
					UnsubscribeText: "Unsubscribe",
					UnsubscribeURL:  "{{ unsubscribe_url }}",
				}),
			},
			GlobalStyles: DefaultGlobalStyles(),
		},
	}
}

func presetBlock(id string, t BlockType, content BlockContent) Block {
	return Block{
		ID:      id,
		Type:    t,
		Visible: true,
		Content: content,
		Styles:  DefaultStyles(t),
	}
}
