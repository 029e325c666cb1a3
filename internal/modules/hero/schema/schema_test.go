package schema

import (
	"errors"
	"testing"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/fieldpath"
)

func TestDefaultRegistryCoversAllVariants(t *testing.T) {
	reg := DefaultRegistry()
	defs := reg.Definitions()
	if len(defs) != len(AllVariants) {
		t.Fatalf("expected %d definitions, got %d", len(AllVariants), len(defs))
	}
	for i, v := range AllVariants {
		if defs[i].Variant != v {
			t.Fatalf("definition %d: expected %s, got %s", i, v, defs[i].Variant)
		}
		p := defs[i].DefaultProps()
		if p.Kind() != v || p.Common().Variant != v {
			t.Fatalf("%s defaults report kind %s/%s", v, p.Kind(), p.Common().Variant)
		}
		if len(defs[i].Fields) == 0 {
			t.Fatalf("%s has no field definitions", v)
		}
		if _, ok := defs[i].Field("title.text"); !ok {
			t.Fatalf("%s is missing the title field", v)
		}
	}
	if !defs[4].Complex || defs[0].Complex {
		t.Fatalf("unexpected complexity flags: feature=%v centered=%v", defs[4].Complex, defs[0].Complex)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	d := definition(VariantCentered, "A", "basic", "", defaultCentered)
	if _, err := NewRegistry(d, d); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if _, err := NewRegistry(VariantDefinition{Variant: "nope", Defaults: defaultCentered}); err == nil {
		t.Fatalf("expected unknown variant to fail")
	}
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	if _, err := New("carousel"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestEncodeDecodePreservesVariant(t *testing.T) {
	for _, v := range AllVariants {
		p, err := DefaultRegistry().Defaults(v)
		if err != nil {
			t.Fatalf("defaults %s: %v", v, err)
		}
		raw, err := Encode(p)
		if err != nil {
			t.Fatalf("encode %s: %v", v, err)
		}
		back, err := Decode(raw)
		if err != nil {
			t.Fatalf("decode %s: %v", v, err)
		}
		if back.Kind() != v {
			t.Fatalf("expected %s after decode, got %s", v, back.Kind())
		}
		if HeadlineOf(back).Title.Text != HeadlineOf(p).Title.Text {
			t.Fatalf("%s title changed across encode/decode", v)
		}
	}
}

func TestDecodeRequiresVariant(t *testing.T) {
	if _, err := Decode([]byte(`{"id":"x"}`)); !errors.Is(err, ErrMissingVariant) {
		t.Fatalf("expected ErrMissingVariant, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := defaultService().(*ServiceProps)
	orig.TrustBadges = []TrustBadge{{ID: "b1", Name: "ISO", Image: &MediaConfig{URL: "/b.png"}}}

	cp := Clone(orig).(*ServiceProps)
	cp.Title.Text = "changed"
	cp.Subtitle.Text = "changed"
	cp.Services[0].Title = "changed"
	cp.TrustBadges[0].Image.URL = "/other.png"
	cp.Theme.PrimaryColor = "#000000"
	cp.Accessibility.AriaLabels["section"] = "changed"
	cp.PrimaryButton.URL = "/changed"

	if orig.Title.Text == "changed" || orig.Subtitle.Text == "changed" {
		t.Fatalf("headline shared between clone and original")
	}
	if orig.Services[0].Title == "changed" {
		t.Fatalf("services slice shared")
	}
	if orig.TrustBadges[0].Image.URL != "/b.png" {
		t.Fatalf("trust badge image shared")
	}
	if orig.Theme.PrimaryColor != "#3b82f6" {
		t.Fatalf("theme shared")
	}
	if orig.Accessibility.AriaLabels["section"] != "Hero section" {
		t.Fatalf("aria labels map shared")
	}
	if orig.PrimaryButton.URL != "/services" {
		t.Fatalf("button shared")
	}
}

func TestSetButtonsOverflow(t *testing.T) {
	p := defaultMinimal()
	overflow := SetButtons(p, []ButtonConfig{{Text: "a", URL: "/a"}, {Text: "b", URL: "/b"}})
	if len(overflow) != 1 || overflow[0].Text != "b" {
		t.Fatalf("expected one overflow button, got %+v", overflow)
	}
	if got := ButtonsOf(p); len(got) != 1 || got[0].Text != "a" {
		t.Fatalf("unexpected buttons %+v", got)
	}

	split := defaultSplitScreen()
	if overflow := SetButtons(split, []ButtonConfig{{Text: "1"}, {Text: "2"}, {Text: "3"}}); len(overflow) != 0 {
		t.Fatalf("split-screen should accept any number of buttons")
	}
}

func TestButtonsOfSkipsEmptySlots(t *testing.T) {
	c := defaultCentered().(*CenteredProps)
	c.PrimaryButton = nil
	c.SecondaryButton = secondaryButton("Docs", "/docs")

	got := ButtonsOf(c)
	if len(got) != 1 || got[0].Text != "Docs" {
		t.Fatalf("ButtonsOf = %+v, want the secondary button alone", got)
	}

	v := defaultVideo().(*VideoProps)
	if overflow := SetButtons(v, got); len(overflow) != 0 {
		t.Fatalf("unexpected overflow %+v", overflow)
	}
	if v.PrimaryButton == nil || v.PrimaryButton.Text != "Docs" || v.SecondaryButton != nil {
		t.Fatalf("expected the lone button in the primary slot, got %+v / %+v", v.PrimaryButton, v.SecondaryButton)
	}
}

func TestSetHeadlineReportsDropped(t *testing.T) {
	h := HeadlineOf(defaultCentered())
	dropped := SetHeadline(defaultTestimonial(), h)
	if len(dropped) != 1 || dropped[0] != "description" {
		t.Fatalf("expected description to be dropped, got %v", dropped)
	}
}

func TestUpdateField(t *testing.T) {
	p := defaultSplitScreen()
	out, err := UpdateField(p, "content.buttons[0].url", "/new")
	if err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if got := out.(*SplitScreenProps).Content.Buttons[0].URL; got != "/new" {
		t.Fatalf("expected /new, got %q", got)
	}
	if p.(*SplitScreenProps).Content.Buttons[0].URL != "/signup" {
		t.Fatalf("original record was modified")
	}

	if _, err := UpdateField(p, "variant", "centered"); !errors.Is(err, ErrReadOnlyField) {
		t.Fatalf("expected ErrReadOnlyField, got %v", err)
	}
	if _, err := UpdateField(p, "content.buttons[4].url", "/x"); !errors.Is(err, fieldpath.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := UpdateField(p, "content..title", "x"); !errors.Is(err, fieldpath.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestFieldValue(t *testing.T) {
	v, err := FieldValue(defaultGallery(), "gallery[1].alt")
	if err != nil {
		t.Fatalf("FieldValue: %v", err)
	}
	if v != "Project two" {
		t.Fatalf("unexpected value %v", v)
	}
}

func TestLensReturnsUntypedNil(t *testing.T) {
	p := defaultMinimal().(*MinimalProps)
	p.Button = nil
	def, _ := DefaultRegistry().Lookup(VariantMinimal)
	f, ok := def.Field("button")
	if !ok {
		t.Fatalf("button field missing")
	}
	if got := f.Get(p); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
	if got := f.Get(defaultCentered()); got != nil {
		t.Fatalf("lens on wrong variant should yield nil, got %#v", got)
	}
}
