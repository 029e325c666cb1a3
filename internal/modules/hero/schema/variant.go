// Package schema defines the hero-section record: a closed set of ten layout
// variants sharing a common base, plus the value types they are composed of.
package schema

import "fmt"

type Variant string

const (
	VariantCentered    Variant = "centered"
	VariantSplitScreen Variant = "split-screen"
	VariantVideo       Variant = "video"
	VariantMinimal     Variant = "minimal"
	VariantFeature     Variant = "feature"
	VariantTestimonial Variant = "testimonial"
	VariantProduct     Variant = "product"
	VariantService     Variant = "service"
	VariantCTA         Variant = "cta"
	VariantGallery     Variant = "gallery"
)

// AllVariants lists every variant in registry order.
var AllVariants = []Variant{
	VariantCentered,
	VariantSplitScreen,
	VariantVideo,
	VariantMinimal,
	VariantFeature,
	VariantTestimonial,
	VariantProduct,
	VariantService,
	VariantCTA,
	VariantGallery,
}

func (v Variant) Valid() bool {
	switch v {
	case VariantCentered, VariantSplitScreen, VariantVideo, VariantMinimal, VariantFeature,
		VariantTestimonial, VariantProduct, VariantService, VariantCTA, VariantGallery:
		return true
	}
	return false
}

func (v Variant) String() string { return string(v) }

func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown hero variant %q", s)
	}
	return v, nil
}
