package schema

type HeadingTag string

const (
	TagH1   HeadingTag = "h1"
	TagH2   HeadingTag = "h2"
	TagH3   HeadingTag = "h3"
	TagH4   HeadingTag = "h4"
	TagH5   HeadingTag = "h5"
	TagH6   HeadingTag = "h6"
	TagP    HeadingTag = "p"
	TagSpan HeadingTag = "span"
	TagDiv  HeadingTag = "div"
)

// TextContent is a piece of copy and the semantic element it renders as.
type TextContent struct {
	Text string     `json:"text"`
	Tag  HeadingTag `json:"tag,omitempty"`
}

// ButtonConfig is a call-to-action link. A button with text must have a URL.
type ButtonConfig struct {
	Text         string `json:"text"`
	URL          string `json:"url"`
	Style        string `json:"style,omitempty"`
	Size         string `json:"size,omitempty"`
	Icon         string `json:"icon,omitempty"`
	IconPosition string `json:"iconPosition,omitempty"`
	Target       string `json:"target,omitempty"`
	Rel          string `json:"rel,omitempty"`
	AriaLabel    string `json:"ariaLabel,omitempty"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaConfig references an image or video asset. Images need alt text;
// videos need a URL with a supported container extension.
type MediaConfig struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Type      MediaType `json:"type"`
	Alt       string    `json:"alt,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	ObjectFit string    `json:"objectFit,omitempty"`
	Loading   string    `json:"loading,omitempty"`
	Width     int       `json:"width,omitempty"`
	Height    int       `json:"height,omitempty"`
	Poster    string    `json:"poster,omitempty"`
	Autoplay  bool      `json:"autoplay,omitempty"`
	Muted     bool      `json:"muted,omitempty"`
	Loop      bool      `json:"loop,omitempty"`
	Controls  bool      `json:"controls,omitempty"`
}

type BackgroundType string

const (
	BackgroundNone     BackgroundType = "none"
	BackgroundColor    BackgroundType = "color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
	BackgroundVideo    BackgroundType = "video"
)

type ColorStop struct {
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

type GradientConfig struct {
	Type      string      `json:"type"`
	Direction string      `json:"direction,omitempty"`
	Colors    []ColorStop `json:"colors"`
}

type OverlayConfig struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// BackgroundConfig: the member matching Type must be populated.
type BackgroundConfig struct {
	Type     BackgroundType  `json:"type"`
	Color    string          `json:"color,omitempty"`
	Gradient *GradientConfig `json:"gradient,omitempty"`
	Image    *MediaConfig    `json:"image,omitempty"`
	Video    *MediaConfig    `json:"video,omitempty"`
	Overlay  *OverlayConfig  `json:"overlay,omitempty"`
}

type ThemeConfig struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	AccentColor     string `json:"accentColor,omitempty"`
}

type TypographyConfig struct {
	TitleSize    string `json:"titleSize,omitempty"`
	SubtitleSize string `json:"subtitleSize,omitempty"`
	BodySize     string `json:"bodySize,omitempty"`
	FontWeight   string `json:"fontWeight,omitempty"`
}

type SpacingConfig struct {
	Padding string `json:"padding,omitempty"`
	Margin  string `json:"margin,omitempty"`
	Gap     string `json:"gap,omitempty"`
}

type BreakpointConfig struct {
	Layout     string            `json:"layout,omitempty"`
	TextAlign  string            `json:"textAlign,omitempty"`
	Typography *TypographyConfig `json:"typography,omitempty"`
	Spacing    *SpacingConfig    `json:"spacing,omitempty"`
}

type ResponsiveConfig struct {
	Mobile  *BreakpointConfig `json:"mobile,omitempty"`
	Tablet  *BreakpointConfig `json:"tablet,omitempty"`
	Desktop *BreakpointConfig `json:"desktop,omitempty"`
}

type AnimationConfig struct {
	Enabled  bool   `json:"enabled"`
	Type     string `json:"type,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Delay    int    `json:"delay,omitempty"`
	Easing   string `json:"easing,omitempty"`
}

type AccessibilityConfig struct {
	AriaLabels            map[string]string `json:"ariaLabels,omitempty"`
	AltTexts              map[string]string `json:"altTexts,omitempty"`
	KeyboardNavigation    bool              `json:"keyboardNavigation"`
	ScreenReaderOptimized bool              `json:"screenReaderOptimized"`
	ReducedMotion         bool              `json:"reducedMotion"`
	HighContrast          bool              `json:"highContrast"`
}
