package schema

// Clone returns a structural deep copy of p. Nil in, nil out.
func Clone(p Props) Props {
	if p == nil {
		return nil
	}
	return p.clone()
}

func (t *TextContent) Clone() *TextContent {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (b *ButtonConfig) Clone() *ButtonConfig {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

func (m *MediaConfig) Clone() *MediaConfig {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

func (g *GradientConfig) Clone() *GradientConfig {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Colors = cloneSlice(g.Colors)
	return &cp
}

func (o *OverlayConfig) Clone() *OverlayConfig {
	if o == nil {
		return nil
	}
	cp := *o
	return &cp
}

func (b BackgroundConfig) Clone() BackgroundConfig {
	b.Gradient = b.Gradient.Clone()
	b.Image = b.Image.Clone()
	b.Video = b.Video.Clone()
	b.Overlay = b.Overlay.Clone()
	return b
}

func (t *ThemeConfig) Clone() *ThemeConfig {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (b *BreakpointConfig) Clone() *BreakpointConfig {
	if b == nil {
		return nil
	}
	cp := *b
	if b.Typography != nil {
		ty := *b.Typography
		cp.Typography = &ty
	}
	if b.Spacing != nil {
		sp := *b.Spacing
		cp.Spacing = &sp
	}
	return &cp
}

func (r *ResponsiveConfig) Clone() *ResponsiveConfig {
	if r == nil {
		return nil
	}
	return &ResponsiveConfig{
		Mobile:  r.Mobile.Clone(),
		Tablet:  r.Tablet.Clone(),
		Desktop: r.Desktop.Clone(),
	}
}

func (a *AnimationConfig) Clone() *AnimationConfig {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

func (a *AccessibilityConfig) Clone() *AccessibilityConfig {
	if a == nil {
		return nil
	}
	cp := *a
	cp.AriaLabels = cloneMap(a.AriaLabels)
	cp.AltTexts = cloneMap(a.AltTexts)
	return &cp
}

func cloneBase(b Base) Base {
	b.Theme = b.Theme.Clone()
	b.Responsive = b.Responsive.Clone()
	b.Animation = b.Animation.Clone()
	b.Accessibility = b.Accessibility.Clone()
	b.Style = cloneMap(b.Style)
	return b
}

func (c SplitContent) Clone() SplitContent {
	c.Subtitle = c.Subtitle.Clone()
	c.Description = c.Description.Clone()
	c.Buttons = cloneSlice(c.Buttons)
	return c
}

func (f FeatureItem) Clone() FeatureItem {
	f.Image = f.Image.Clone()
	return f
}

func (t TestimonialItem) Clone() TestimonialItem {
	t.Avatar = t.Avatar.Clone()
	return t
}

func (p ProductInfo) Clone() ProductInfo {
	if p.Price != nil {
		price := *p.Price
		if p.Price.OriginalAmount != nil {
			orig := *p.Price.OriginalAmount
			price.OriginalAmount = &orig
		}
		p.Price = &price
	}
	p.Images = cloneSlice(p.Images)
	p.Features = cloneSlice(p.Features)
	return p
}

func (t TrustBadge) Clone() TrustBadge {
	t.Image = t.Image.Clone()
	return t
}

func (p *CenteredProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.SecondaryButton = p.SecondaryButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *SplitScreenProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Content = p.Content.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *VideoProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.SecondaryButton = p.SecondaryButton.Clone()
	cp.Overlay = p.Overlay.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *MinimalProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Button = p.Button.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *FeatureProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.Features = cloneEach(p.Features, FeatureItem.Clone)
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *TestimonialProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Testimonials = cloneEach(p.Testimonials, TestimonialItem.Clone)
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *ProductProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.Product = p.Product.Clone()
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.SecondaryButton = p.SecondaryButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *ServiceProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.Services = cloneSlice(p.Services)
	cp.TrustBadges = cloneEach(p.TrustBadges, TrustBadge.Clone)
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.ContactButton = p.ContactButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *CTAProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.SecondaryButton = p.SecondaryButton.Clone()
	cp.Benefits = cloneSlice(p.Benefits)
	if p.Urgency != nil {
		u := *p.Urgency
		cp.Urgency = &u
	}
	cp.Background = p.Background.Clone()
	return &cp
}

func (p *GalleryProps) clone() Props {
	cp := *p
	cp.Base = cloneBase(p.Base)
	cp.Subtitle = p.Subtitle.Clone()
	cp.Description = p.Description.Clone()
	cp.Gallery = cloneSlice(p.Gallery)
	cp.PrimaryButton = p.PrimaryButton.Clone()
	cp.Background = p.Background.Clone()
	return &cp
}

// cloneSlice copies a slice of flat values. nil stays nil.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneEach[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
