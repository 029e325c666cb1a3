package schema

import "fmt"

// Headline is the title/subtitle/description triple most variants carry,
// either at the top level or nested (split-screen keeps it under content).
type Headline struct {
	Title       TextContent
	Subtitle    *TextContent
	Description *TextContent
}

func HeadlineOf(p Props) Headline {
	switch v := p.(type) {
	case *CenteredProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *SplitScreenProps:
		return Headline{v.Content.Title, v.Content.Subtitle, v.Content.Description}
	case *VideoProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *MinimalProps:
		return Headline{Title: v.Title, Subtitle: v.Subtitle}
	case *FeatureProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *TestimonialProps:
		return Headline{Title: v.Title, Subtitle: v.Subtitle}
	case *ProductProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *ServiceProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *CTAProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	case *GalleryProps:
		return Headline{v.Title, v.Subtitle, v.Description}
	}
	panic(fmt.Sprintf("schema: unhandled props type %T", p))
}

// SetHeadline copies h into p and returns the names of parts p has no slot for.
func SetHeadline(p Props, h Headline) (dropped []string) {
	sub, desc := h.Subtitle.Clone(), h.Description.Clone()
	switch v := p.(type) {
	case *CenteredProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *SplitScreenProps:
		v.Content.Title, v.Content.Subtitle, v.Content.Description = h.Title, sub, desc
	case *VideoProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *MinimalProps:
		v.Title, v.Subtitle = h.Title, sub
		if desc != nil {
			dropped = append(dropped, "description")
		}
	case *FeatureProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *TestimonialProps:
		v.Title, v.Subtitle = h.Title, sub
		if desc != nil {
			dropped = append(dropped, "description")
		}
	case *ProductProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *ServiceProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *CTAProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	case *GalleryProps:
		v.Title, v.Subtitle, v.Description = h.Title, sub, desc
	default:
		panic(fmt.Sprintf("schema: unhandled props type %T", p))
	}
	return dropped
}

// TitleOf returns a pointer to the record's title so callers can rewrite it in place.
func TitleOf(p Props) *TextContent {
	switch v := p.(type) {
	case *CenteredProps:
		return &v.Title
	case *SplitScreenProps:
		return &v.Content.Title
	case *VideoProps:
		return &v.Title
	case *MinimalProps:
		return &v.Title
	case *FeatureProps:
		return &v.Title
	case *TestimonialProps:
		return &v.Title
	case *ProductProps:
		return &v.Title
	case *ServiceProps:
		return &v.Title
	case *CTAProps:
		return &v.Title
	case *GalleryProps:
		return &v.Title
	}
	panic(fmt.Sprintf("schema: unhandled props type %T", p))
}

// ButtonsOf lists the record's buttons in positional order (primary first).
// Empty slots are skipped, so a lone secondary button is reported first and
// lands in the primary slot when the list is assigned with SetButtons. Split
// screen keeps a plain list and cannot hold a gap either way.
func ButtonsOf(p Props) []ButtonConfig {
	var out []ButtonConfig
	add := func(b *ButtonConfig) {
		if b != nil {
			out = append(out, *b)
		}
	}
	switch v := p.(type) {
	case *CenteredProps:
		add(v.PrimaryButton)
		add(v.SecondaryButton)
	case *SplitScreenProps:
		out = append(out, v.Content.Buttons...)
	case *VideoProps:
		add(v.PrimaryButton)
		add(v.SecondaryButton)
	case *MinimalProps:
		add(v.Button)
	case *FeatureProps:
		add(v.PrimaryButton)
	case *TestimonialProps:
		add(v.PrimaryButton)
	case *ProductProps:
		add(v.PrimaryButton)
		add(v.SecondaryButton)
	case *ServiceProps:
		add(v.PrimaryButton)
		add(v.ContactButton)
	case *CTAProps:
		add(&v.PrimaryButton)
		add(v.SecondaryButton)
	case *GalleryProps:
		add(v.PrimaryButton)
	default:
		panic(fmt.Sprintf("schema: unhandled props type %T", p))
	}
	return out
}

// ButtonSlots reports how many buttons the variant can hold (-1 for unbounded).
func ButtonSlots(v Variant) int {
	switch v {
	case VariantSplitScreen:
		return -1
	case VariantMinimal, VariantFeature, VariantTestimonial, VariantGallery:
		return 1
	default:
		return 2
	}
}

// SetButtons assigns buttons positionally and returns the ones that did not fit.
// An empty list clears optional slots; the CTA primary button is kept as is.
func SetButtons(p Props, buttons []ButtonConfig) (overflow []ButtonConfig) {
	at := func(i int) *ButtonConfig {
		if i < len(buttons) {
			b := buttons[i]
			return &b
		}
		return nil
	}
	slots := ButtonSlots(p.Kind())
	if slots >= 0 && len(buttons) > slots {
		overflow = append(overflow, buttons[slots:]...)
	}
	switch v := p.(type) {
	case *CenteredProps:
		v.PrimaryButton, v.SecondaryButton = at(0), at(1)
	case *SplitScreenProps:
		v.Content.Buttons = cloneSlice(buttons)
		if len(buttons) == 0 {
			v.Content.Buttons = nil
		}
	case *VideoProps:
		v.PrimaryButton, v.SecondaryButton = at(0), at(1)
	case *MinimalProps:
		v.Button = at(0)
	case *FeatureProps:
		v.PrimaryButton = at(0)
	case *TestimonialProps:
		v.PrimaryButton = at(0)
	case *ProductProps:
		v.PrimaryButton, v.SecondaryButton = at(0), at(1)
	case *ServiceProps:
		v.PrimaryButton, v.ContactButton = at(0), at(1)
	case *CTAProps:
		if b := at(0); b != nil {
			v.PrimaryButton = *b
		}
		v.SecondaryButton = at(1)
	case *GalleryProps:
		v.PrimaryButton = at(0)
	default:
		panic(fmt.Sprintf("schema: unhandled props type %T", p))
	}
	return overflow
}

// BackgroundOf returns a pointer to the record's background.
func BackgroundOf(p Props) *BackgroundConfig {
	switch v := p.(type) {
	case *CenteredProps:
		return &v.Background
	case *SplitScreenProps:
		return &v.Background
	case *VideoProps:
		return &v.Background
	case *MinimalProps:
		return &v.Background
	case *FeatureProps:
		return &v.Background
	case *TestimonialProps:
		return &v.Background
	case *ProductProps:
		return &v.Background
	case *ServiceProps:
		return &v.Background
	case *CTAProps:
		return &v.Background
	case *GalleryProps:
		return &v.Background
	}
	panic(fmt.Sprintf("schema: unhandled props type %T", p))
}

// CollectionField names the variant-specific collection a variant owns, if any.
func CollectionField(v Variant) string {
	switch v {
	case VariantFeature:
		return "features"
	case VariantTestimonial:
		return "testimonials"
	case VariantProduct:
		return "product"
	case VariantService:
		return "services"
	case VariantGallery:
		return "gallery"
	case VariantCTA:
		return "benefits"
	default:
		return ""
	}
}

// CollectionValue returns the variant-specific collection of p (nil if none).
func CollectionValue(p Props) any {
	switch v := p.(type) {
	case *FeatureProps:
		return cloneEach(v.Features, FeatureItem.Clone)
	case *TestimonialProps:
		return cloneEach(v.Testimonials, TestimonialItem.Clone)
	case *ProductProps:
		return v.Product.Clone()
	case *ServiceProps:
		return cloneSlice(v.Services)
	case *GalleryProps:
		return cloneSlice(v.Gallery)
	case *CTAProps:
		return cloneSlice(v.Benefits)
	}
	return nil
}
