package schema

import (
	"fmt"
	"sort"
)

// VariantDefinition is the catalogue entry for one variant.
type VariantDefinition struct {
	Variant     Variant
	Name        string
	Description string
	Category    string
	// Complex variants own a collection (features, gallery, ...) that generic
	// migration cannot carry over.
	Complex  bool
	Defaults func() Props
	Fields   []FieldDefinition
}

// DefaultProps returns a fresh copy of the variant's default template.
func (d VariantDefinition) DefaultProps() Props { return d.Defaults() }

// Field looks up a field definition by id.
func (d VariantDefinition) Field(id string) (FieldDefinition, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// Registry is an immutable lookup table of variant definitions. Build one with
// NewRegistry or DefaultRegistry and pass it to the components that need it.
type Registry struct {
	defs map[Variant]VariantDefinition
}

func NewRegistry(defs ...VariantDefinition) (*Registry, error) {
	r := &Registry{defs: make(map[Variant]VariantDefinition, len(defs))}
	for _, d := range defs {
		if !d.Variant.Valid() {
			return nil, fmt.Errorf("registry: unknown variant %q", d.Variant)
		}
		if d.Defaults == nil {
			return nil, fmt.Errorf("registry: variant %q has no defaults", d.Variant)
		}
		if _, dup := r.defs[d.Variant]; dup {
			return nil, fmt.Errorf("registry: variant %q registered twice", d.Variant)
		}
		r.defs[d.Variant] = d
	}
	return r, nil
}

func (r *Registry) Lookup(v Variant) (VariantDefinition, bool) {
	if r == nil {
		return VariantDefinition{}, false
	}
	d, ok := r.defs[v]
	return d, ok
}

// Defaults returns a fresh default record for v.
func (r *Registry) Defaults(v Variant) (Props, error) {
	d, ok := r.Lookup(v)
	if !ok {
		return nil, fmt.Errorf("registry: variant %q not registered", v)
	}
	return d.Defaults(), nil
}

// Definitions returns all entries in catalogue order.
func (r *Registry) Definitions() []VariantDefinition {
	out := make([]VariantDefinition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	order := make(map[Variant]int, len(AllVariants))
	for i, v := range AllVariants {
		order[v] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i].Variant] < order[out[j].Variant] })
	return out
}

func definition(v Variant, name, category, desc string, defaults func() Props) VariantDefinition {
	return VariantDefinition{
		Variant:     v,
		Name:        name,
		Description: desc,
		Category:    category,
		Complex:     CollectionField(v) != "",
		Defaults:    defaults,
		Fields:      variantFields(v),
	}
}

// DefaultRegistry returns the built-in catalogue of all ten variants.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		definition(VariantCentered, "Centered Hero", "basic", "Centered headline with optional buttons", defaultCentered),
		definition(VariantSplitScreen, "Split Screen Hero", "media", "Content beside an image or video", defaultSplitScreen),
		definition(VariantVideo, "Video Hero", "media", "Full-bleed background video", defaultVideo),
		definition(VariantMinimal, "Minimal Hero", "basic", "Short headline with a single action", defaultMinimal),
		definition(VariantFeature, "Feature Hero", "content", "Headline with a feature grid", defaultFeature),
		definition(VariantTestimonial, "Testimonial Hero", "social-proof", "Customer quotes", defaultTestimonial),
		definition(VariantProduct, "Product Hero", "commerce", "Single product showcase", defaultProduct),
		definition(VariantService, "Service Hero", "business", "Service list with trust badges", defaultService),
		definition(VariantCTA, "Call to Action Hero", "conversion", "Conversion-focused call to action", defaultCTA),
		definition(VariantGallery, "Gallery Hero", "media", "Image gallery", defaultGallery),
	)
	if err != nil {
		panic(err)
	}
	return r
}
