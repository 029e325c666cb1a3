package schema

// Base carries the fields every variant shares. Migration always copies these
// verbatim from source to target.
type Base struct {
	ID            string               `json:"id"`
	Variant       Variant              `json:"variant"`
	Theme         *ThemeConfig         `json:"theme,omitempty"`
	Responsive    *ResponsiveConfig    `json:"responsive,omitempty"`
	Animation     *AnimationConfig     `json:"animation,omitempty"`
	Accessibility *AccessibilityConfig `json:"accessibility,omitempty"`
	ClassName     string               `json:"className,omitempty"`
	Style         map[string]string    `json:"style,omitempty"`
}

func (b *Base) Common() *Base { return b }

// Props is the sealed sum type over the ten variant records. Only the
// *XxxProps types in this package implement it.
type Props interface {
	Kind() Variant
	Common() *Base
	clone() Props
}

type CenteredProps struct {
	Base
	Title           TextContent      `json:"title"`
	Subtitle        *TextContent     `json:"subtitle,omitempty"`
	Description     *TextContent     `json:"description,omitempty"`
	PrimaryButton   *ButtonConfig    `json:"primaryButton,omitempty"`
	SecondaryButton *ButtonConfig    `json:"secondaryButton,omitempty"`
	Background      BackgroundConfig `json:"background"`
	TextAlign       string           `json:"textAlign,omitempty"`
	MaxWidth        string           `json:"maxWidth,omitempty"`
}

type SplitContent struct {
	Title       TextContent    `json:"title"`
	Subtitle    *TextContent   `json:"subtitle,omitempty"`
	Description *TextContent   `json:"description,omitempty"`
	Buttons     []ButtonConfig `json:"buttons,omitempty"`
}

type SplitScreenProps struct {
	Base
	Content          SplitContent     `json:"content"`
	Media            MediaConfig      `json:"media"`
	MediaPosition    string           `json:"mediaPosition"`
	ContentAlignment string           `json:"contentAlignment,omitempty"`
	ContentWidth     string           `json:"contentWidth,omitempty"`
	Background       BackgroundConfig `json:"background"`
}

type VideoProps struct {
	Base
	Title           TextContent      `json:"title"`
	Subtitle        *TextContent     `json:"subtitle,omitempty"`
	Description     *TextContent     `json:"description,omitempty"`
	Video           MediaConfig      `json:"video"`
	PrimaryButton   *ButtonConfig    `json:"primaryButton,omitempty"`
	SecondaryButton *ButtonConfig    `json:"secondaryButton,omitempty"`
	Overlay         *OverlayConfig   `json:"overlay,omitempty"`
	ContentPosition string           `json:"contentPosition,omitempty"`
	Background      BackgroundConfig `json:"background"`
}

type MinimalProps struct {
	Base
	Title      TextContent      `json:"title"`
	Subtitle   *TextContent     `json:"subtitle,omitempty"`
	Button     *ButtonConfig    `json:"button,omitempty"`
	Spacing    string           `json:"spacing,omitempty"`
	TextAlign  string           `json:"textAlign,omitempty"`
	Background BackgroundConfig `json:"background"`
}

type FeatureItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Image       *MediaConfig `json:"image,omitempty"`
}

type FeatureProps struct {
	Base
	Title         TextContent      `json:"title"`
	Subtitle      *TextContent     `json:"subtitle,omitempty"`
	Description   *TextContent     `json:"description,omitempty"`
	Features      []FeatureItem    `json:"features"`
	Layout        string           `json:"layout,omitempty"`
	Columns       int              `json:"columns,omitempty"`
	PrimaryButton *ButtonConfig    `json:"primaryButton,omitempty"`
	Background    BackgroundConfig `json:"background"`
}

type TestimonialItem struct {
	ID      string       `json:"id"`
	Quote   string       `json:"quote"`
	Author  string       `json:"author"`
	Role    string       `json:"role,omitempty"`
	Company string       `json:"company,omitempty"`
	Avatar  *MediaConfig `json:"avatar,omitempty"`
	Rating  int          `json:"rating,omitempty"`
}

type TestimonialProps struct {
	Base
	Title            TextContent       `json:"title"`
	Subtitle         *TextContent      `json:"subtitle,omitempty"`
	Testimonials     []TestimonialItem `json:"testimonials"`
	DisplayMode      string            `json:"displayMode,omitempty"`
	AutoRotate       bool              `json:"autoRotate,omitempty"`
	RotationInterval int               `json:"rotationInterval,omitempty"`
	PrimaryButton    *ButtonConfig     `json:"primaryButton,omitempty"`
	Background       BackgroundConfig  `json:"background"`
}

type ProductPrice struct {
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	OriginalAmount *float64 `json:"originalAmount,omitempty"`
}

type ProductInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       *ProductPrice `json:"price,omitempty"`
	Images      []MediaConfig `json:"images,omitempty"`
	Features    []string      `json:"features,omitempty"`
	Rating      float64       `json:"rating,omitempty"`
	ReviewCount int           `json:"reviewCount,omitempty"`
}

type ProductProps struct {
	Base
	Title           TextContent      `json:"title"`
	Subtitle        *TextContent     `json:"subtitle,omitempty"`
	Description     *TextContent     `json:"description,omitempty"`
	Product         ProductInfo      `json:"product"`
	PrimaryButton   *ButtonConfig    `json:"primaryButton,omitempty"`
	SecondaryButton *ButtonConfig    `json:"secondaryButton,omitempty"`
	Layout          string           `json:"layout,omitempty"`
	Background      BackgroundConfig `json:"background"`
}

type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Link        string `json:"link,omitempty"`
}

type TrustBadge struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Image *MediaConfig `json:"image,omitempty"`
	URL   string       `json:"url,omitempty"`
}

type ServiceProps struct {
	Base
	Title         TextContent      `json:"title"`
	Subtitle      *TextContent     `json:"subtitle,omitempty"`
	Description   *TextContent     `json:"description,omitempty"`
	Services      []ServiceItem    `json:"services"`
	TrustBadges   []TrustBadge     `json:"trustBadges,omitempty"`
	PrimaryButton *ButtonConfig    `json:"primaryButton,omitempty"`
	ContactButton *ButtonConfig    `json:"contactButton,omitempty"`
	Layout        string           `json:"layout,omitempty"`
	Background    BackgroundConfig `json:"background"`
}

type UrgencyConfig struct {
	Enabled  bool   `json:"enabled"`
	Text     string `json:"text,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

type CTAProps struct {
	Base
	Title           TextContent      `json:"title"`
	Subtitle        *TextContent     `json:"subtitle,omitempty"`
	Description     *TextContent     `json:"description,omitempty"`
	PrimaryButton   ButtonConfig     `json:"primaryButton"`
	SecondaryButton *ButtonConfig    `json:"secondaryButton,omitempty"`
	Benefits        []string         `json:"benefits,omitempty"`
	Urgency         *UrgencyConfig   `json:"urgency,omitempty"`
	Background      BackgroundConfig `json:"background"`
}

type GalleryProps struct {
	Base
	Title         TextContent      `json:"title"`
	Subtitle      *TextContent     `json:"subtitle,omitempty"`
	Description   *TextContent     `json:"description,omitempty"`
	Gallery       []MediaConfig    `json:"gallery"`
	Layout        string           `json:"layout,omitempty"`
	Columns       int              `json:"columns,omitempty"`
	ShowCaptions  bool             `json:"showCaptions,omitempty"`
	Lightbox      bool             `json:"lightbox,omitempty"`
	PrimaryButton *ButtonConfig    `json:"primaryButton,omitempty"`
	Background    BackgroundConfig `json:"background"`
}

func (*CenteredProps) Kind() Variant    { return VariantCentered }
func (*SplitScreenProps) Kind() Variant { return VariantSplitScreen }
func (*VideoProps) Kind() Variant       { return VariantVideo }
func (*MinimalProps) Kind() Variant     { return VariantMinimal }
func (*FeatureProps) Kind() Variant     { return VariantFeature }
func (*TestimonialProps) Kind() Variant { return VariantTestimonial }
func (*ProductProps) Kind() Variant     { return VariantProduct }
func (*ServiceProps) Kind() Variant     { return VariantService }
func (*CTAProps) Kind() Variant         { return VariantCTA }
func (*GalleryProps) Kind() Variant     { return VariantGallery }

// New returns an empty record of variant v with its discriminator set.
func New(v Variant) (Props, error) {
	var p Props
	switch v {
	case VariantCentered:
		p = &CenteredProps{}
	case VariantSplitScreen:
		p = &SplitScreenProps{}
	case VariantVideo:
		p = &VideoProps{}
	case VariantMinimal:
		p = &MinimalProps{}
	case VariantFeature:
		p = &FeatureProps{}
	case VariantTestimonial:
		p = &TestimonialProps{}
	case VariantProduct:
		p = &ProductProps{}
	case VariantService:
		p = &ServiceProps{}
	case VariantCTA:
		p = &CTAProps{}
	case VariantGallery:
		p = &GalleryProps{}
	default:
		_, err := ParseVariant(string(v))
		return nil, err
	}
	p.Common().Variant = v
	return p, nil
}
