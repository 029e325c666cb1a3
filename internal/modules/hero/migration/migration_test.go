package migration

import (
	"strings"
	"testing"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
)

func defaults(t *testing.T, v schema.Variant) schema.Props {
	t.Helper()
	p, err := schema.DefaultRegistry().Defaults(v)
	if err != nil {
		t.Fatalf("defaults %s: %v", v, err)
	}
	p.Common().ID = "hero-1"
	return p
}

func lost(res Result, property string) (PropertyChange, bool) {
	for _, c := range res.LostData {
		if c.Property == property {
			return c, true
		}
	}
	return PropertyChange{}, false
}

func added(res Result, property string) bool {
	for _, c := range res.AddedDefaults {
		if c.Property == property {
			return true
		}
	}
	return false
}

func TestMinimalToCentered(t *testing.T) {
	src, err := schema.Decode([]byte(`{"variant":"minimal","title":{"text":"T"},"button":{"text":"Go","url":"/go"},"background":{"type":"color","color":"#fff"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := Migrate(src, schema.VariantCentered, Balanced)
	if !res.Success {
		t.Fatalf("migration failed: %v", res.Errors)
	}
	out := res.MigratedProps.(*schema.CenteredProps)
	if out.Title.Text != "T" {
		t.Fatalf("expected title T, got %q", out.Title.Text)
	}
	if out.PrimaryButton == nil || out.PrimaryButton.Text != "Go" || out.PrimaryButton.URL != "/go" {
		t.Fatalf("unexpected primary button %+v", out.PrimaryButton)
	}
	if out.SecondaryButton != nil {
		t.Fatalf("secondary button should not come from defaults: %+v", out.SecondaryButton)
	}
	if out.Background.Type != schema.BackgroundColor || out.Background.Color != "#fff" {
		t.Fatalf("background not carried: %+v", out.Background)
	}
	c, ok := lost(res, "spacing")
	if !ok || !strings.Contains(c.Reason, "does not have spacing options") {
		t.Fatalf("expected spacing to be reported lost, got %+v", res.LostData)
	}
	if out.Variant != schema.VariantCentered {
		t.Fatalf("variant tag not updated: %s", out.Variant)
	}
}

func TestCenteredSplitScreenRoundTrip(t *testing.T) {
	src := defaults(t, schema.VariantCentered).(*schema.CenteredProps)
	src.Title.Text = "Hello"
	src.Subtitle.Text = "Sub"
	src.Description.Text = "Desc"
	src.PrimaryButton = &schema.ButtonConfig{Text: "One", URL: "/one"}
	src.SecondaryButton = &schema.ButtonConfig{Text: "Two", URL: "#two"}

	for _, strategy := range []Strategy{Conservative, Balanced, Optimized} {
		there := Migrate(src, schema.VariantSplitScreen, strategy)
		if !there.Success {
			t.Fatalf("%s: to split-screen failed: %v", strategy.Name, there.Errors)
		}
		split := there.MigratedProps.(*schema.SplitScreenProps)
		if len(split.Content.Buttons) != 2 || split.Content.Title.Text != "Hello" {
			t.Fatalf("%s: unexpected split content %+v", strategy.Name, split.Content)
		}

		back := Migrate(split, schema.VariantCentered, strategy)
		if !back.Success {
			t.Fatalf("%s: back to centered failed: %v", strategy.Name, back.Errors)
		}
		out := back.MigratedProps.(*schema.CenteredProps)
		if out.Title.Text != "Hello" || out.Subtitle.Text != "Sub" || out.Description.Text != "Desc" {
			t.Fatalf("%s: headline changed: %+v %+v %+v", strategy.Name, out.Title, out.Subtitle, out.Description)
		}
		if *out.PrimaryButton != *src.PrimaryButton || *out.SecondaryButton != *src.SecondaryButton {
			t.Fatalf("%s: buttons changed: %+v %+v", strategy.Name, out.PrimaryButton, out.SecondaryButton)
		}
	}
}

func TestMigrationCarriesBaseAndDoesNotMutateSource(t *testing.T) {
	src := defaults(t, schema.VariantCentered)
	src.Common().Theme.PrimaryColor = "#ff0000"
	src.Common().ClassName = "hero--custom"

	res := Migrate(src, schema.VariantVideo, Balanced)
	out := res.MigratedProps
	if out.Common().ID != "hero-1" || out.Common().Theme.PrimaryColor != "#ff0000" || out.Common().ClassName != "hero--custom" {
		t.Fatalf("base fields not carried: %+v", out.Common())
	}
	out.Common().Theme.PrimaryColor = "#00ff00"
	if src.Common().Theme.PrimaryColor != "#ff0000" {
		t.Fatalf("migrated record shares theme with source")
	}
	if !added(res, "video") {
		t.Fatalf("expected video placeholder to be reported, got %+v", res.AddedDefaults)
	}
}

func TestGenericFallbackDropsCollection(t *testing.T) {
	src := defaults(t, schema.VariantTestimonial)
	res := Migrate(src, schema.VariantCentered, Balanced)
	if !res.Success {
		t.Fatalf("migration failed: %v", res.Errors)
	}
	c, ok := lost(res, "testimonials")
	if !ok {
		t.Fatalf("expected testimonials to be lost, got %+v", res.LostData)
	}
	if items, _ := c.Value.([]schema.TestimonialItem); len(items) != 1 {
		t.Fatalf("lost value should carry the testimonials, got %#v", c.Value)
	}

	res = Migrate(defaults(t, schema.VariantMinimal), schema.VariantGallery, Balanced)
	if !added(res, "gallery") {
		t.Fatalf("expected gallery defaults, got %+v", res.AddedDefaults)
	}
	if _, ok := lost(res, "spacing"); !ok {
		t.Fatalf("expected spacing to be lost, got %+v", res.LostData)
	}
}

func TestMigratedRecordsValidate(t *testing.T) {
	for _, from := range schema.AllVariants {
		for _, to := range schema.AllVariants {
			res := Migrate(defaults(t, from), to, Balanced)
			if !res.Success {
				t.Fatalf("%s -> %s failed: %v", from, to, res.Errors)
			}
			if v := validation.ValidateHeroSection(res.MigratedProps); !v.IsValid {
				t.Fatalf("%s -> %s produced invalid record: %+v", from, to, v.Errors)
			}
		}
	}
}

func TestGallerySalvagesFirstImage(t *testing.T) {
	src := defaults(t, schema.VariantGallery).(*schema.GalleryProps)

	res := Migrate(src, schema.VariantSplitScreen, Balanced)
	out := res.MigratedProps.(*schema.SplitScreenProps)
	if out.Media.URL != src.Gallery[0].URL {
		t.Fatalf("expected first gallery image as media, got %+v", out.Media)
	}
	if c, ok := lost(res, "gallery"); !ok || len(c.Value.([]schema.MediaConfig)) != 2 {
		t.Fatalf("expected remaining images to be lost, got %+v", res.LostData)
	}

	res = Migrate(src, schema.VariantSplitScreen, Optimized)
	out = res.MigratedProps.(*schema.SplitScreenProps)
	if out.Media.URL == src.Gallery[0].URL {
		t.Fatalf("optimized strategy should not keep gallery media")
	}
	if !added(res, "media") {
		t.Fatalf("expected placeholder media to be reported")
	}
}

func TestVideoToCenteredStrategies(t *testing.T) {
	src := defaults(t, schema.VariantVideo)

	res := Migrate(src, schema.VariantCentered, Balanced)
	out := res.MigratedProps.(*schema.CenteredProps)
	if out.Background.Type != schema.BackgroundVideo || out.Background.Video == nil {
		t.Fatalf("expected video background, got %+v", out.Background)
	}

	res = Migrate(src, schema.VariantCentered, Optimized)
	if _, ok := lost(res, "video"); !ok {
		t.Fatalf("expected video to be lost, got %+v", res.LostData)
	}
}

func TestConservativeWarnsOnLoss(t *testing.T) {
	res := Migrate(defaults(t, schema.VariantFeature), schema.VariantCentered, Conservative)
	if !res.Success {
		t.Fatalf("data loss must not fail a migration")
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "features will be lost") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected data-loss warning, got %v", res.Warnings)
	}
}

func TestSameVariantReturnsCopy(t *testing.T) {
	src := defaults(t, schema.VariantCTA)
	res := Migrate(src, schema.VariantCTA, Balanced)
	if !res.Success || len(res.Warnings) != 1 || len(res.LostData) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	res.MigratedProps.(*schema.CTAProps).Benefits[0] = "changed"
	if src.(*schema.CTAProps).Benefits[0] == "changed" {
		t.Fatalf("same-variant migration must return a copy")
	}
}

func TestTransformPanicIsReported(t *testing.T) {
	e := NewEngine(nil, WithTransform(schema.VariantCentered, schema.VariantMinimal, func(m *Migration) {
		panic("boom")
	}))
	res := e.Migrate(defaults(t, schema.VariantCentered), schema.VariantMinimal, Balanced)
	if res.Success || res.MigratedProps != nil {
		t.Fatalf("expected failure, got %+v", res)
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "boom") {
		t.Fatalf("expected panic message in errors, got %v", res.Errors)
	}
}

func TestUnknownTarget(t *testing.T) {
	res := Migrate(defaults(t, schema.VariantCentered), "carousel", Balanced)
	if res.Success || len(res.Errors) == 0 {
		t.Fatalf("expected failure for unknown target")
	}
}

func TestPreview(t *testing.T) {
	p := DefaultEngine().Preview(defaults(t, schema.VariantFeature), schema.VariantCentered, Balanced)
	if len(p.WillLose) == 0 || len(p.WillMigrate) == 0 {
		t.Fatalf("unexpected preview %+v", p)
	}
	if p.Compatibility.DataLossRisk != RiskHigh {
		t.Fatalf("expected high risk, got %s", p.Compatibility.DataLossRisk)
	}
}

func TestCompatibility(t *testing.T) {
	m := GetPropertyCompatibilityMap(schema.VariantCentered, schema.VariantSplitScreen)
	for _, want := range commonCompatible {
		found := false
		for _, c := range m.Compatible {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("common field %s missing from %v", want, m.Compatible)
		}
	}
	if len(m.RequiresTransformation) == 0 {
		t.Fatalf("expected transformation requirements")
	}

	r := ValidateMigrationCompatibility(schema.VariantProduct, schema.VariantTestimonial)
	if r.Compatibility != CompatibilityLow || r.DataLossRisk != RiskHigh || r.IsSupported {
		t.Fatalf("unknown pair should be low/high/unsupported, got %+v", r)
	}

	r = ValidateMigrationCompatibility(schema.VariantMinimal, schema.VariantCentered)
	if !r.IsSupported || r.Compatibility != CompatibilityHigh {
		t.Fatalf("unexpected report %+v", r)
	}

	if unknown := GetPropertyCompatibilityMap(schema.VariantProduct, schema.VariantTestimonial); len(unknown.Compatible) != len(commonCompatible) {
		t.Fatalf("unknown pair should only list common fields, got %v", unknown.Compatible)
	}
}
