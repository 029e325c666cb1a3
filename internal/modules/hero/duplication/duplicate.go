// Package duplication copies hero records under a new identity.
package duplication

import (
	"fmt"
	"strings"
	"time"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

const DefaultTitlePrefix = "Copy of "

type options struct {
	id              string
	titlePrefix     string
	preserveMedia   bool
	preserveButtons bool
}

type Option func(*options)

// WithID sets the copy's id instead of deriving one.
func WithID(id string) Option { return func(o *options) { o.id = strings.TrimSpace(id) } }

func WithTitlePrefix(prefix string) Option { return func(o *options) { o.titlePrefix = prefix } }

// WithoutMedia clears every media reference in the copy.
func WithoutMedia() Option { return func(o *options) { o.preserveMedia = false } }

// WithoutButtonURLs resets every button URL to "#", keeping the labels.
func WithoutButtonURLs() Option { return func(o *options) { o.preserveButtons = false } }

// Duplicate returns a deep copy of p with a new id and a prefixed title. The
// default id is "{id}-copy-{unix millis}".
func Duplicate(p schema.Props, now time.Time, opts ...Option) schema.Props {
	o := options{titlePrefix: DefaultTitlePrefix, preserveMedia: true, preserveButtons: true}
	for _, opt := range opts {
		opt(&o)
	}
	cp := schema.Clone(p)
	base := cp.Common()
	if o.id != "" {
		base.ID = o.id
	} else {
		base.ID = fmt.Sprintf("%s-copy-%d", base.ID, now.UnixMilli())
	}

	if title := schema.TitleOf(cp); o.titlePrefix != "" && !strings.HasPrefix(title.Text, o.titlePrefix) {
		title.Text = o.titlePrefix + title.Text
	}
	if !o.preserveMedia {
		clearMedia(cp)
	}
	if !o.preserveButtons {
		resetButtonURLs(cp)
	}
	return cp
}

func clearMedia(p schema.Props) {
	bg := schema.BackgroundOf(p)
	if bg.Type == schema.BackgroundImage || bg.Type == schema.BackgroundVideo {
		bg.Type = schema.BackgroundNone
	}
	bg.Image, bg.Video = nil, nil

	// Required slots get the template placeholder so the copy stays valid.
	placeholder, _ := schema.PlaceholderMedia(p.Common().Variant)
	switch v := p.(type) {
	case *schema.SplitScreenProps:
		v.Media = placeholder
	case *schema.VideoProps:
		v.Video = placeholder
	case *schema.GalleryProps:
		v.Gallery = []schema.MediaConfig{placeholder}
	case *schema.ProductProps:
		v.Product.Images = nil
	case *schema.TestimonialProps:
		for i := range v.Testimonials {
			v.Testimonials[i].Avatar = nil
		}
	case *schema.FeatureProps:
		for i := range v.Features {
			v.Features[i].Image = nil
		}
	case *schema.ServiceProps:
		for i := range v.TrustBadges {
			v.TrustBadges[i].Image = nil
		}
	case *schema.CenteredProps, *schema.MinimalProps, *schema.CTAProps:
	default:
		panic(fmt.Sprintf("duplication: unhandled props type %T", p))
	}
}

func resetButtonURLs(p schema.Props) {
	reset := func(b *schema.ButtonConfig) {
		if b != nil {
			b.URL = "#"
		}
	}
	switch v := p.(type) {
	case *schema.CenteredProps:
		reset(v.PrimaryButton)
		reset(v.SecondaryButton)
	case *schema.SplitScreenProps:
		for i := range v.Content.Buttons {
			reset(&v.Content.Buttons[i])
		}
	case *schema.VideoProps:
		reset(v.PrimaryButton)
		reset(v.SecondaryButton)
	case *schema.MinimalProps:
		reset(v.Button)
	case *schema.FeatureProps:
		reset(v.PrimaryButton)
	case *schema.TestimonialProps:
		reset(v.PrimaryButton)
	case *schema.ProductProps:
		reset(v.PrimaryButton)
		reset(v.SecondaryButton)
	case *schema.ServiceProps:
		reset(v.PrimaryButton)
		reset(v.ContactButton)
	case *schema.CTAProps:
		reset(&v.PrimaryButton)
		reset(v.SecondaryButton)
	case *schema.GalleryProps:
		reset(v.PrimaryButton)
	default:
		panic(fmt.Sprintf("duplication: unhandled props type %T", p))
	}
}
