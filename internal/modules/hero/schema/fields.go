package schema

import "regexp"

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldURL      FieldType = "url"
	FieldColor    FieldType = "color"
	FieldNumber   FieldType = "number"
	FieldImage    FieldType = "image"
	FieldVideo    FieldType = "video"
	FieldButton   FieldType = "button"
	FieldSelect   FieldType = "select"
	FieldBoolean  FieldType = "boolean"
	FieldArray    FieldType = "array"
)

type RuleType string

const (
	RuleRequired  RuleType = "required"
	RuleMinLength RuleType = "minLength"
	RuleMaxLength RuleType = "maxLength"
	RulePattern   RuleType = "pattern"
	RuleCustom    RuleType = "custom"
)

// Rule is one declared constraint on a field. Length applies to min/max
// length rules, Pattern to pattern rules and Check to custom rules.
type Rule struct {
	Type    RuleType
	Length  int
	Pattern *regexp.Regexp
	Message string
	Check   func(value any, all Props) bool
}

func Required(msg string) Rule { return Rule{Type: RuleRequired, Message: msg} }

func MinLength(n int, msg string) Rule { return Rule{Type: RuleMinLength, Length: n, Message: msg} }

func MaxLength(n int, msg string) Rule { return Rule{Type: RuleMaxLength, Length: n, Message: msg} }

func Pattern(expr, msg string) Rule {
	return Rule{Type: RulePattern, Pattern: regexp.MustCompile(expr), Message: msg}
}

func Custom(msg string, check func(value any, all Props) bool) Rule {
	return Rule{Type: RuleCustom, Message: msg, Check: check}
}

// FieldDefinition describes one editable field. Get is a typed lens that reads
// the field from a record of the owning variant; it returns nil when the field
// is absent (never a typed nil pointer).
type FieldDefinition struct {
	ID       string
	Label    string
	Type     FieldType
	Required bool
	Rules    []Rule
	Min      *float64
	Max      *float64
	Options  []string
	Get      func(Props) any
}

// Lens adapts a getter over one concrete props type to the generic form.
func Lens[P Props](get func(P) any) func(Props) any {
	return func(p Props) any {
		v, ok := p.(P)
		if !ok {
			return nil
		}
		return get(v)
	}
}

func optText(t *TextContent) any {
	if t == nil {
		return nil
	}
	return t.Text
}

func optButton(b *ButtonConfig) any {
	if b == nil {
		return nil
	}
	return *b
}

func optMedia(m *MediaConfig) any {
	if m == nil || m.URL == "" {
		return nil
	}
	return *m
}

func bounds(lo, hi float64) (*float64, *float64) { return &lo, &hi }

func nonZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func titleFields[P Props](title func(P) TextContent, subtitle, description func(P) *TextContent) []FieldDefinition {
	out := []FieldDefinition{{
		ID:       "title.text",
		Label:    "Title",
		Type:     FieldText,
		Required: true,
		Rules:    []Rule{Required("Title is required"), MaxLength(120, "Title must be at most 120 characters")},
		Get:      Lens(func(p P) any { return title(p).Text }),
	}}
	if subtitle != nil {
		out = append(out, FieldDefinition{
			ID:    "subtitle.text",
			Label: "Subtitle",
			Type:  FieldText,
			Rules: []Rule{MaxLength(200, "Subtitle must be at most 200 characters")},
			Get:   Lens(func(p P) any { return optText(subtitle(p)) }),
		})
	}
	if description != nil {
		out = append(out, FieldDefinition{
			ID:    "description.text",
			Label: "Description",
			Type:  FieldTextarea,
			Rules: []Rule{MaxLength(500, "Description must be at most 500 characters")},
			Get:   Lens(func(p P) any { return optText(description(p)) }),
		})
	}
	return out
}

func buttonField[P Props](id, label string, get func(P) *ButtonConfig) FieldDefinition {
	return FieldDefinition{ID: id, Label: label, Type: FieldButton, Get: Lens(func(p P) any { return optButton(get(p)) })}
}

func variantFields(v Variant) []FieldDefinition {
	switch v {
	case VariantCentered:
		return append(titleFields(
			func(p *CenteredProps) TextContent { return p.Title },
			func(p *CenteredProps) *TextContent { return p.Subtitle },
			func(p *CenteredProps) *TextContent { return p.Description },
		),
			buttonField("primaryButton", "Primary button", func(p *CenteredProps) *ButtonConfig { return p.PrimaryButton }),
			buttonField("secondaryButton", "Secondary button", func(p *CenteredProps) *ButtonConfig { return p.SecondaryButton }),
			FieldDefinition{ID: "textAlign", Label: "Text alignment", Type: FieldSelect, Options: []string{"left", "center", "right"},
				Rules: []Rule{Pattern(`^(left|center|right)?$`, "Text alignment must be left, center or right")},
				Get:   Lens(func(p *CenteredProps) any { return p.TextAlign })},
		)
	case VariantSplitScreen:
		return append(titleFields(
			func(p *SplitScreenProps) TextContent { return p.Content.Title },
			func(p *SplitScreenProps) *TextContent { return p.Content.Subtitle },
			func(p *SplitScreenProps) *TextContent { return p.Content.Description },
		),
			FieldDefinition{ID: "media", Label: "Media", Type: FieldImage, Required: true,
				Get: Lens(func(p *SplitScreenProps) any { return optMedia(&p.Media) })},
			FieldDefinition{ID: "mediaPosition", Label: "Media position", Type: FieldSelect, Required: true, Options: []string{"left", "right"},
				Rules: []Rule{Required("Media position is required"), Pattern(`^(left|right)$`, "Media position must be left or right")},
				Get:   Lens(func(p *SplitScreenProps) any { return p.MediaPosition })},
			FieldDefinition{ID: "content.buttons", Label: "Buttons", Type: FieldArray,
				Rules: []Rule{Custom("At most three buttons are supported", func(value any, _ Props) bool {
					b, _ := value.([]ButtonConfig)
					return len(b) <= 3
				})},
				Get: Lens(func(p *SplitScreenProps) any { return p.Content.Buttons })},
		)
	case VariantVideo:
		lo, hi := bounds(0, 1)
		return append(titleFields(
			func(p *VideoProps) TextContent { return p.Title },
			func(p *VideoProps) *TextContent { return p.Subtitle },
			func(p *VideoProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "video", Label: "Video", Type: FieldVideo, Required: true,
				Get: Lens(func(p *VideoProps) any { return optMedia(&p.Video) })},
			buttonField("primaryButton", "Primary button", func(p *VideoProps) *ButtonConfig { return p.PrimaryButton }),
			buttonField("secondaryButton", "Secondary button", func(p *VideoProps) *ButtonConfig { return p.SecondaryButton }),
			FieldDefinition{ID: "overlay.opacity", Label: "Overlay opacity", Type: FieldNumber, Min: lo, Max: hi,
				Get: Lens(func(p *VideoProps) any {
					if p.Overlay == nil {
						return nil
					}
					return p.Overlay.Opacity
				})},
		)
	case VariantMinimal:
		return append(titleFields(
			func(p *MinimalProps) TextContent { return p.Title },
			func(p *MinimalProps) *TextContent { return p.Subtitle },
			nil,
		),
			buttonField("button", "Button", func(p *MinimalProps) *ButtonConfig { return p.Button }),
			FieldDefinition{ID: "spacing", Label: "Spacing", Type: FieldSelect, Options: []string{"compact", "normal", "spacious"},
				Rules: []Rule{Pattern(`^(compact|normal|spacious)?$`, "Spacing must be compact, normal or spacious")},
				Get:   Lens(func(p *MinimalProps) any { return p.Spacing })},
		)
	case VariantFeature:
		lo, hi := bounds(1, 6)
		return append(titleFields(
			func(p *FeatureProps) TextContent { return p.Title },
			func(p *FeatureProps) *TextContent { return p.Subtitle },
			func(p *FeatureProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "features", Label: "Features", Type: FieldArray, Required: true,
				Rules: []Rule{Required("At least one feature is required")},
				Get:   Lens(func(p *FeatureProps) any { return p.Features })},
			FieldDefinition{ID: "columns", Label: "Columns", Type: FieldNumber, Min: lo, Max: hi,
				Get: Lens(func(p *FeatureProps) any { return nonZero(p.Columns) })},
			buttonField("primaryButton", "Primary button", func(p *FeatureProps) *ButtonConfig { return p.PrimaryButton }),
		)
	case VariantTestimonial:
		lo, hi := bounds(1000, 60000)
		return append(titleFields(
			func(p *TestimonialProps) TextContent { return p.Title },
			func(p *TestimonialProps) *TextContent { return p.Subtitle },
			nil,
		),
			FieldDefinition{ID: "testimonials", Label: "Testimonials", Type: FieldArray, Required: true,
				Rules: []Rule{Required("At least one testimonial is required")},
				Get:   Lens(func(p *TestimonialProps) any { return p.Testimonials })},
			FieldDefinition{ID: "rotationInterval", Label: "Rotation interval (ms)", Type: FieldNumber, Min: lo, Max: hi,
				Get: Lens(func(p *TestimonialProps) any {
					if !p.AutoRotate {
						return nil
					}
					return p.RotationInterval
				})},
			buttonField("primaryButton", "Primary button", func(p *TestimonialProps) *ButtonConfig { return p.PrimaryButton }),
		)
	case VariantProduct:
		zero, _ := bounds(0, 0)
		return append(titleFields(
			func(p *ProductProps) TextContent { return p.Title },
			func(p *ProductProps) *TextContent { return p.Subtitle },
			func(p *ProductProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "product.name", Label: "Product name", Type: FieldText, Required: true,
				Rules: []Rule{Required("Product name is required"), MaxLength(100, "Product name must be at most 100 characters")},
				Get:   Lens(func(p *ProductProps) any { return p.Product.Name })},
			FieldDefinition{ID: "product.price.amount", Label: "Price", Type: FieldNumber, Min: zero,
				Get: Lens(func(p *ProductProps) any {
					if p.Product.Price == nil {
						return nil
					}
					return p.Product.Price.Amount
				})},
			FieldDefinition{ID: "product.price.currency", Label: "Currency", Type: FieldText,
				Rules: []Rule{Pattern(`^([A-Z]{3})?$`, "Currency must be a three-letter ISO code")},
				Get: Lens(func(p *ProductProps) any {
					if p.Product.Price == nil {
						return nil
					}
					return p.Product.Price.Currency
				})},
			buttonField("primaryButton", "Primary button", func(p *ProductProps) *ButtonConfig { return p.PrimaryButton }),
			buttonField("secondaryButton", "Secondary button", func(p *ProductProps) *ButtonConfig { return p.SecondaryButton }),
		)
	case VariantService:
		return append(titleFields(
			func(p *ServiceProps) TextContent { return p.Title },
			func(p *ServiceProps) *TextContent { return p.Subtitle },
			func(p *ServiceProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "services", Label: "Services", Type: FieldArray, Required: true,
				Rules: []Rule{Required("At least one service is required")},
				Get:   Lens(func(p *ServiceProps) any { return p.Services })},
			buttonField("primaryButton", "Primary button", func(p *ServiceProps) *ButtonConfig { return p.PrimaryButton }),
			buttonField("contactButton", "Contact button", func(p *ServiceProps) *ButtonConfig { return p.ContactButton }),
		)
	case VariantCTA:
		return append(titleFields(
			func(p *CTAProps) TextContent { return p.Title },
			func(p *CTAProps) *TextContent { return p.Subtitle },
			func(p *CTAProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "primaryButton", Label: "Primary button", Type: FieldButton, Required: true,
				Rules: []Rule{Custom("Primary button text is required", func(value any, _ Props) bool {
					b, ok := value.(ButtonConfig)
					return ok && b.Text != ""
				})},
				Get: Lens(func(p *CTAProps) any { return p.PrimaryButton })},
			buttonField("secondaryButton", "Secondary button", func(p *CTAProps) *ButtonConfig { return p.SecondaryButton }),
		)
	case VariantGallery:
		lo, hi := bounds(1, 6)
		return append(titleFields(
			func(p *GalleryProps) TextContent { return p.Title },
			func(p *GalleryProps) *TextContent { return p.Subtitle },
			func(p *GalleryProps) *TextContent { return p.Description },
		),
			FieldDefinition{ID: "gallery", Label: "Gallery", Type: FieldArray, Required: true,
				Rules: []Rule{Required("At least one gallery item is required")},
				Get:   Lens(func(p *GalleryProps) any { return p.Gallery })},
			FieldDefinition{ID: "columns", Label: "Columns", Type: FieldNumber, Min: lo, Max: hi,
				Get: Lens(func(p *GalleryProps) any { return nonZero(p.Columns) })},
			buttonField("primaryButton", "Primary button", func(p *GalleryProps) *ButtonConfig { return p.PrimaryButton }),
		)
	}
	return nil
}
