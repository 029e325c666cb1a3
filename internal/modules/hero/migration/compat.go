package migration

import (
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

type Compatibility string

const (
	CompatibilityHigh   Compatibility = "high"
	CompatibilityMedium Compatibility = "medium"
	CompatibilityLow    Compatibility = "low"
)

type DataLossRisk string

const (
	RiskNone   DataLossRisk = "none"
	RiskLow    DataLossRisk = "low"
	RiskMedium DataLossRisk = "medium"
	RiskHigh   DataLossRisk = "high"
)

type Requirement struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Transformer string `json:"transformer"`
}

type CompatibilityMap struct {
	Compatible             []string      `json:"compatible"`
	Incompatible           []string      `json:"incompatible"`
	RequiresTransformation []Requirement `json:"requiresTransformation"`
}

type Report struct {
	IsSupported     bool          `json:"isSupported"`
	Compatibility   Compatibility `json:"compatibility"`
	Warnings        []string      `json:"warnings"`
	DataLossRisk    DataLossRisk  `json:"dataLossRisk"`
	Recommendations []string      `json:"recommendations"`
}

type pairEntry struct {
	props           CompatibilityMap
	level           Compatibility
	risk            DataLossRisk
	warnings        []string
	recommendations []string
}

// commonCompatible is merged into every pair.
var commonCompatible = []string{"theme", "responsive", "animation", "accessibility", "className", "style", "background"}

var headline = []string{"title", "subtitle", "description"}

func req(source, target, transformer string) Requirement {
	return Requirement{Source: source, Target: target, Transformer: transformer}
}

var matrix = map[schema.Variant]map[schema.Variant]pairEntry{
	schema.VariantCentered: {
		schema.VariantSplitScreen: {
			props: CompatibilityMap{
				Incompatible: []string{"maxWidth"},
				RequiresTransformation: []Requirement{
					req("title", "content.title", "nest into content"),
					req("subtitle", "content.subtitle", "nest into content"),
					req("description", "content.description", "nest into content"),
					req("primaryButton", "content.buttons[0]", "append to button list"),
					req("secondaryButton", "content.buttons[1]", "append to button list"),
					req("textAlign", "contentAlignment", "rename"),
				},
			},
			level:           CompatibilityHigh,
			risk:            RiskLow,
			warnings:        []string{"A placeholder image will be added for the media column"},
			recommendations: []string{"Upload an image or video for the media column"},
		},
		schema.VariantMinimal: {
			props: CompatibilityMap{
				Compatible:   []string{"title", "subtitle", "textAlign"},
				Incompatible: []string{"description", "secondaryButton", "maxWidth"},
				RequiresTransformation: []Requirement{
					req("primaryButton", "button", "rename"),
				},
			},
			level:           CompatibilityMedium,
			risk:            RiskMedium,
			warnings:        []string{"The description and secondary button will be removed"},
			recommendations: []string{"Move essential description text into the subtitle first"},
		},
		schema.VariantVideo: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton", "secondaryButton"),
				Incompatible: []string{"textAlign", "maxWidth"},
			},
			level:           CompatibilityHigh,
			risk:            RiskLow,
			warnings:        []string{"A placeholder video will be added"},
			recommendations: []string{"Upload a background video after migrating"},
		},
		schema.VariantCTA: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton", "secondaryButton"),
				Incompatible: []string{"textAlign", "maxWidth"},
			},
			level:           CompatibilityHigh,
			risk:            RiskLow,
			recommendations: []string{"Add benefits that support the call to action"},
		},
		schema.VariantFeature: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton"),
				Incompatible: []string{"secondaryButton", "textAlign", "maxWidth"},
			},
			level:           CompatibilityMedium,
			risk:            RiskLow,
			warnings:        []string{"Default features will be added"},
			recommendations: []string{"Replace the default features with your own"},
		},
	},
	schema.VariantSplitScreen: {
		schema.VariantCentered: {
			props: CompatibilityMap{
				Incompatible: []string{"media", "mediaPosition", "contentWidth"},
				RequiresTransformation: []Requirement{
					req("content.title", "title", "unnest from content"),
					req("content.subtitle", "subtitle", "unnest from content"),
					req("content.description", "description", "unnest from content"),
					req("content.buttons[0]", "primaryButton", "take first button"),
					req("content.buttons[1]", "secondaryButton", "take second button"),
					req("contentAlignment", "textAlign", "rename"),
				},
			},
			level:           CompatibilityHigh,
			risk:            RiskMedium,
			warnings:        []string{"The media column and any buttons beyond the second will be removed"},
			recommendations: []string{"Consider using the media as a background image"},
		},
		schema.VariantVideo: {
			props: CompatibilityMap{
				Incompatible: []string{"mediaPosition", "contentAlignment", "contentWidth"},
				RequiresTransformation: []Requirement{
					req("content.title", "title", "unnest from content"),
					req("content.buttons[0]", "primaryButton", "take first button"),
					req("content.buttons[1]", "secondaryButton", "take second button"),
					req("media", "video", "keep when the media is a video"),
				},
			},
			level:    CompatibilityMedium,
			risk:     RiskMedium,
			warnings: []string{"Image media cannot be used as a video and will be replaced"},
		},
	},
	schema.VariantMinimal: {
		schema.VariantCentered: {
			props: CompatibilityMap{
				Compatible:   []string{"title", "subtitle", "textAlign"},
				Incompatible: []string{"spacing"},
				RequiresTransformation: []Requirement{
					req("button", "primaryButton", "rename"),
				},
			},
			level:    CompatibilityHigh,
			risk:     RiskLow,
			warnings: []string{"Spacing presets are not available in the centered layout"},
		},
	},
	schema.VariantVideo: {
		schema.VariantCentered: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton", "secondaryButton"),
				Incompatible: []string{"contentPosition"},
				RequiresTransformation: []Requirement{
					req("video", "background.video", "use as background"),
					req("overlay", "background.overlay", "use as background overlay"),
				},
			},
			level: CompatibilityHigh,
			risk:  RiskLow,
		},
	},
	schema.VariantCTA: {
		schema.VariantCentered: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton", "secondaryButton"),
				Incompatible: []string{"benefits", "urgency"},
			},
			level:           CompatibilityMedium,
			risk:            RiskMedium,
			warnings:        []string{"Benefits and urgency messaging will be removed"},
			recommendations: []string{"Fold the key benefit into the subtitle"},
		},
	},
	schema.VariantFeature: {
		schema.VariantCentered: {
			props: CompatibilityMap{
				Compatible:   append(append([]string{}, headline...), "primaryButton"),
				Incompatible: []string{"features", "layout", "columns"},
			},
			level:           CompatibilityMedium,
			risk:            RiskHigh,
			warnings:        []string{"All features will be removed"},
			recommendations: []string{"Summarise the features in the description before migrating"},
		},
	},
	schema.VariantGallery: {
		schema.VariantSplitScreen: {
			props: CompatibilityMap{
				Incompatible: []string{"layout", "columns", "showCaptions", "lightbox"},
				RequiresTransformation: []Requirement{
					req("title", "content.title", "nest into content"),
					req("primaryButton", "content.buttons[0]", "append to button list"),
					req("gallery[0]", "media", "keep the first image"),
				},
			},
			level:    CompatibilityMedium,
			risk:     RiskHigh,
			warnings: []string{"Only the first gallery image is kept"},
		},
	},
}

func mergeUnique(lists ...[]string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, l := range lists {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// GetPropertyCompatibilityMap returns the pair entry merged with the common
// entry. Unknown pairs yield only the common fields.
func GetPropertyCompatibilityMap(from, to schema.Variant) CompatibilityMap {
	entry := matrix[from][to]
	out := CompatibilityMap{
		Compatible:             mergeUnique(commonCompatible, entry.props.Compatible),
		Incompatible:           mergeUnique(entry.props.Incompatible),
		RequiresTransformation: append([]Requirement{}, entry.props.RequiresTransformation...),
	}
	if from == to && from.Valid() {
		out.Compatible = mergeUnique(out.Compatible, headline)
	}
	return out
}

// ValidateMigrationCompatibility rates a pair. Pairs without a matrix entry
// are rated low with a high data-loss risk.
func (e *Engine) ValidateMigrationCompatibility(from, to schema.Variant) Report {
	r := Report{Warnings: []string{}, Recommendations: []string{}}
	if !from.Valid() || !to.Valid() {
		r.Compatibility, r.DataLossRisk = CompatibilityLow, RiskHigh
		r.Warnings = append(r.Warnings, fmt.Sprintf("unknown variant pair %s -> %s", from, to))
		return r
	}
	if from == to {
		return Report{IsSupported: true, Compatibility: CompatibilityHigh, DataLossRisk: RiskNone, Warnings: []string{}, Recommendations: []string{}}
	}
	r.IsSupported = e.HasTransform(from, to)
	entry, ok := matrix[from][to]
	if !ok {
		r.Compatibility, r.DataLossRisk = CompatibilityLow, RiskHigh
		r.Warnings = append(r.Warnings, fmt.Sprintf("No dedicated migration from %s to %s; only shared fields are carried over", label(from), label(to)))
		if c := schema.CollectionField(from); c != "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s will be lost", c))
		}
		r.Recommendations = append(r.Recommendations, "Preview the migration before applying it")
		return r
	}
	r.Compatibility, r.DataLossRisk = entry.level, entry.risk
	r.Warnings = append(r.Warnings, entry.warnings...)
	r.Recommendations = append(r.Recommendations, entry.recommendations...)
	return r
}

// ValidateMigrationCompatibility rates a pair using the default engine.
func ValidateMigrationCompatibility(from, to schema.Variant) Report {
	return defaultEngine.ValidateMigrationCompatibility(from, to)
}
