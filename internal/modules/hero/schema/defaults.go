package schema

func defaultTheme() *ThemeConfig {
	return &ThemeConfig{
		PrimaryColor:    "#3b82f6",
		SecondaryColor:  "#64748b",
		BackgroundColor: "#ffffff",
		TextColor:       "#111827",
		AccentColor:     "#f59e0b",
	}
}

func defaultResponsive() *ResponsiveConfig {
	bp := func(layout, title, padding string) *BreakpointConfig {
		return &BreakpointConfig{
			Layout:     layout,
			TextAlign:  "center",
			Typography: &TypographyConfig{TitleSize: title, SubtitleSize: "1.125rem", BodySize: "1rem"},
			Spacing:    &SpacingConfig{Padding: padding, Gap: "1rem"},
		}
	}
	return &ResponsiveConfig{
		Mobile:  bp("stack", "2rem", "2rem 1rem"),
		Tablet:  bp("stack", "2.5rem", "3rem 2rem"),
		Desktop: bp("row", "3.5rem", "5rem 2rem"),
	}
}

func defaultAccessibility() *AccessibilityConfig {
	return &AccessibilityConfig{
		AriaLabels:         map[string]string{"section": "Hero section"},
		AltTexts:           map[string]string{},
		KeyboardNavigation: true,
		ReducedMotion:      false,
	}
}

func defaultBase(v Variant) Base {
	return Base{
		ID:            "default-" + string(v),
		Variant:       v,
		Theme:         defaultTheme(),
		Responsive:    defaultResponsive(),
		Animation:     &AnimationConfig{Enabled: true, Type: "fade-in", Duration: 600, Easing: "ease-out"},
		Accessibility: defaultAccessibility(),
	}
}

func text(s string, tag HeadingTag) TextContent { return TextContent{Text: s, Tag: tag} }

func textPtr(s string, tag HeadingTag) *TextContent {
	t := text(s, tag)
	return &t
}

func primaryButton(label, url string) *ButtonConfig {
	return &ButtonConfig{Text: label, URL: url, Style: "primary", Size: "lg", IconPosition: "right", Target: "_self"}
}

func secondaryButton(label, url string) *ButtonConfig {
	return &ButtonConfig{Text: label, URL: url, Style: "outline", Size: "lg", IconPosition: "right", Target: "_self"}
}

func placeholderImage(id, alt string) MediaConfig {
	return MediaConfig{
		ID:        id,
		URL:       "/images/placeholders/" + id + ".jpg",
		Type:      MediaImage,
		Alt:       alt,
		ObjectFit: "cover",
		Loading:   "lazy",
	}
}

// PlaceholderMedia returns the template stand-in for a variant's required
// media slot. ok is false for variants without one.
func PlaceholderMedia(v Variant) (MediaConfig, bool) {
	switch v {
	case VariantSplitScreen:
		return defaultSplitScreen().(*SplitScreenProps).Media, true
	case VariantVideo:
		return defaultVideo().(*VideoProps).Video, true
	case VariantGallery:
		return defaultGallery().(*GalleryProps).Gallery[0], true
	default:
		return MediaConfig{}, false
	}
}

func colorBackground(c string) BackgroundConfig {
	return BackgroundConfig{Type: BackgroundColor, Color: c}
}

func defaultCentered() Props {
	return &CenteredProps{
		Base:            defaultBase(VariantCentered),
		Title:           text("Build something remarkable", TagH1),
		Subtitle:        textPtr("Everything you need to launch faster", TagP),
		Description:     textPtr("Start with a layout that puts your message front and center.", TagP),
		PrimaryButton:   primaryButton("Get started", "/signup"),
		SecondaryButton: secondaryButton("Learn more", "#features"),
		Background:      colorBackground("#ffffff"),
		TextAlign:       "center",
		MaxWidth:        "48rem",
	}
}

func defaultSplitScreen() Props {
	return &SplitScreenProps{
		Base: defaultBase(VariantSplitScreen),
		Content: SplitContent{
			Title:       text("Content meets imagery", TagH1),
			Subtitle:    textPtr("Tell your story side by side", TagP),
			Description: textPtr("Pair a focused message with a supporting visual.", TagP),
			Buttons:     []ButtonConfig{*primaryButton("Get started", "/signup")},
		},
		Media:            placeholderImage("split-screen-media", "Product screenshot"),
		MediaPosition:    "right",
		ContentAlignment: "center",
		ContentWidth:     "50%",
		Background:       colorBackground("#ffffff"),
	}
}

func defaultVideo() Props {
	return &VideoProps{
		Base:     defaultBase(VariantVideo),
		Title:    text("See it in action", TagH1),
		Subtitle: textPtr("A quick tour in under two minutes", TagP),
		Video: MediaConfig{
			ID:       "hero-video",
			URL:      "/videos/placeholders/hero.mp4",
			Type:     MediaVideo,
			Alt:      "Product walkthrough video",
			Autoplay: true,
			Muted:    true,
			Loop:     true,
		},
		PrimaryButton:   primaryButton("Watch the demo", "#demo"),
		Overlay:         &OverlayConfig{Enabled: true, Color: "#000000", Opacity: 0.4},
		ContentPosition: "center",
		Background:      BackgroundConfig{Type: BackgroundNone},
	}
}

func defaultMinimal() Props {
	return &MinimalProps{
		Base:       defaultBase(VariantMinimal),
		Title:      text("Less, but better", TagH1),
		Subtitle:   textPtr("A clean introduction", TagP),
		Button:     primaryButton("Continue", "/start"),
		Spacing:    "normal",
		TextAlign:  "center",
		Background: colorBackground("#ffffff"),
	}
}

func defaultFeature() Props {
	return &FeatureProps{
		Base:        defaultBase(VariantFeature),
		Title:       text("Why teams choose us", TagH1),
		Subtitle:    textPtr("Features that matter", TagP),
		Description: textPtr("Everything is built in from day one.", TagP),
		Features: []FeatureItem{
			{ID: "feature-1", Title: "Fast", Description: "Pages load in milliseconds.", Icon: "zap"},
			{ID: "feature-2", Title: "Secure", Description: "Security reviewed by default.", Icon: "shield"},
			{ID: "feature-3", Title: "Flexible", Description: "Adapts to any brand.", Icon: "layers"},
		},
		Layout:        "grid",
		Columns:       3,
		PrimaryButton: primaryButton("Explore features", "/features"),
		Background:    colorBackground("#f8fafc"),
	}
}

func defaultTestimonial() Props {
	return &TestimonialProps{
		Base:     defaultBase(VariantTestimonial),
		Title:    text("Loved by customers", TagH1),
		Subtitle: textPtr("Hear it from the people who use it", TagP),
		Testimonials: []TestimonialItem{
			{ID: "testimonial-1", Quote: "It changed how we work.", Author: "Alex Morgan", Role: "Head of Product", Company: "Acme", Rating: 5},
		},
		DisplayMode:      "single",
		RotationInterval: 5000,
		PrimaryButton:    primaryButton("Read stories", "/customers"),
		Background:       colorBackground("#ffffff"),
	}
}

func defaultProduct() Props {
	return &ProductProps{
		Base:        defaultBase(VariantProduct),
		Title:       text("Meet the new model", TagH1),
		Subtitle:    textPtr("Designed for everyday use", TagP),
		Description: textPtr("Crafted with care and built to last.", TagP),
		Product: ProductInfo{
			ID:          "product-1",
			Name:        "Product",
			Description: "A short product description.",
			Price:       &ProductPrice{Amount: 99, Currency: "USD"},
			Images:      []MediaConfig{placeholderImage("product-image", "Product photo")},
			Features:    []string{"Free shipping", "Two-year warranty"},
		},
		PrimaryButton:   primaryButton("Buy now", "/checkout"),
		SecondaryButton: secondaryButton("Details", "#details"),
		Layout:          "image-right",
		Background:      colorBackground("#ffffff"),
	}
}

func defaultService() Props {
	return &ServiceProps{
		Base:        defaultBase(VariantService),
		Title:       text("Services built around you", TagH1),
		Subtitle:    textPtr("Expert help when you need it", TagP),
		Description: textPtr("From strategy to delivery.", TagP),
		Services: []ServiceItem{
			{ID: "service-1", Title: "Consulting", Description: "Plan with confidence.", Icon: "compass"},
			{ID: "service-2", Title: "Delivery", Description: "Ship on schedule.", Icon: "truck"},
		},
		PrimaryButton: primaryButton("Our services", "/services"),
		ContactButton: secondaryButton("Contact us", "/contact"),
		Layout:        "grid",
		Background:    colorBackground("#ffffff"),
	}
}

func defaultCTA() Props {
	return &CTAProps{
		Base:          defaultBase(VariantCTA),
		Title:         text("Ready to get started?", TagH1),
		Subtitle:      textPtr("Join thousands of happy customers", TagP),
		PrimaryButton: *primaryButton("Start free trial", "/signup"),
		Benefits:      []string{"No credit card required", "Cancel anytime"},
		Background: BackgroundConfig{
			Type: BackgroundGradient,
			Gradient: &GradientConfig{
				Type:      "linear",
				Direction: "to right",
				Colors: []ColorStop{
					{Color: "#3b82f6", Position: 0},
					{Color: "#8b5cf6", Position: 100},
				},
			},
		},
	}
}

func defaultGallery() Props {
	return &GalleryProps{
		Base:     defaultBase(VariantGallery),
		Title:    text("Our work", TagH1),
		Subtitle: textPtr("A selection of recent projects", TagP),
		Gallery: []MediaConfig{
			placeholderImage("gallery-1", "Project one"),
			placeholderImage("gallery-2", "Project two"),
			placeholderImage("gallery-3", "Project three"),
		},
		Layout:       "grid",
		Columns:      3,
		ShowCaptions: true,
		Lightbox:     true,
		Background:   colorBackground("#ffffff"),
	}
}
