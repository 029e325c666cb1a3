package migration

import (
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

var variantLabels = map[schema.Variant]string{
	schema.VariantCentered:    "Centered",
	schema.VariantSplitScreen: "Split-screen",
	schema.VariantVideo:       "Video",
	schema.VariantMinimal:     "Minimal",
	schema.VariantFeature:     "Feature",
	schema.VariantTestimonial: "Testimonial",
	schema.VariantProduct:     "Product",
	schema.VariantService:     "Service",
	schema.VariantCTA:         "Call-to-action",
	schema.VariantGallery:     "Gallery",
}

func label(v schema.Variant) string {
	if l, ok := variantLabels[v]; ok {
		return l
	}
	return string(v)
}

// carryBase copies the shared base fields verbatim; only the tag changes.
func (m *Migration) carryBase() {
	base := *schema.Clone(m.Source).Common()
	base.Variant = m.To()
	*m.Target.Common() = base
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"id", base.ID != ""},
		{"theme", base.Theme != nil},
		{"responsive", base.Responsive != nil},
		{"animation", base.Animation != nil},
		{"accessibility", base.Accessibility != nil},
		{"className", base.ClassName != ""},
		{"style", len(base.Style) > 0},
	} {
		if f.present {
			m.Keep(f.name)
		}
	}
}

func headlinePrefix(v schema.Variant) string {
	if v == schema.VariantSplitScreen {
		return "content."
	}
	return ""
}

func (m *Migration) carryHeadline() {
	h := schema.HeadlineOf(m.Source)
	from, to := headlinePrefix(m.From()), headlinePrefix(m.To())
	if !m.Strategy.PreserveContent {
		m.Lose(from+"title", h.Title.Text, fmt.Sprintf("%s strategy does not preserve content", m.Strategy.Name))
		m.AddDefault(to+"title", schema.HeadlineOf(m.Target).Title.Text, "Default title kept")
		return
	}
	dropped := schema.SetHeadline(m.Target, h)
	m.Move(from+"title", to+"title")
	if h.Subtitle != nil {
		m.Move(from+"subtitle", to+"subtitle")
	}
	for _, d := range dropped {
		var value any
		if d == "description" && h.Description != nil {
			value = h.Description.Text
		}
		m.Lose(from+d, value, fmt.Sprintf("%s variant does not have a %s", label(m.To()), d))
	}
	if h.Description != nil && len(dropped) == 0 {
		m.Move(from+"description", to+"description")
	}
}

func buttonPath(v schema.Variant, i int) string {
	switch v {
	case schema.VariantSplitScreen:
		return fmt.Sprintf("content.buttons[%d]", i)
	case schema.VariantMinimal:
		return "button"
	case schema.VariantService:
		if i == 0 {
			return "primaryButton"
		}
		return "contactButton"
	default:
		if i == 0 {
			return "primaryButton"
		}
		return "secondaryButton"
	}
}

func (m *Migration) carryButtons() {
	src := schema.ButtonsOf(m.Source)
	overflow := schema.SetButtons(m.Target, src)
	kept := len(src) - len(overflow)
	for i := 0; i < kept; i++ {
		m.Move(buttonPath(m.From(), i), buttonPath(m.To(), i))
	}
	for i, b := range overflow {
		idx := kept + i
		m.Lose(buttonPath(m.From(), idx), b, fmt.Sprintf("%s variant supports at most %d button(s)", label(m.To()), schema.ButtonSlots(m.To())))
	}
	if len(src) == 0 && m.To() == schema.VariantCTA {
		m.AddDefault("primaryButton", m.Target.(*schema.CTAProps).PrimaryButton, "Call-to-action variant requires a primary button")
	}
}

func (m *Migration) carryBackground() {
	bg := *schema.BackgroundOf(m.Source)
	isMedia := bg.Type == schema.BackgroundImage || bg.Type == schema.BackgroundVideo
	if isMedia && !m.Strategy.PreserveMedia {
		var media any
		if bg.Type == schema.BackgroundImage && bg.Image != nil {
			media = *bg.Image
		} else if bg.Video != nil {
			media = *bg.Video
		}
		m.Lose("background."+string(bg.Type), media, fmt.Sprintf("%s strategy does not preserve media", m.Strategy.Name))
		m.AddDefault("background", *schema.BackgroundOf(m.Target), "Default background used instead of the media background")
		return
	}
	*schema.BackgroundOf(m.Target) = bg.Clone()
	m.Keep("background")
}

// primaryMedia returns the variant's own media slot (split-screen media or
// the video variant's video), if it has one.
func primaryMedia(p schema.Props) (string, *schema.MediaConfig) {
	switch v := p.(type) {
	case *schema.SplitScreenProps:
		return "media", &v.Media
	case *schema.VideoProps:
		return "video", &v.Video
	}
	return "", nil
}

func (m *Migration) carryPrimaryMedia() {
	fromKey, src := primaryMedia(m.Source)
	toKey, dst := primaryMedia(m.Target)
	switch {
	case src == nil && dst == nil:
	case src != nil && dst != nil:
		fits := toKey != "video" || src.Type == schema.MediaVideo
		if m.Strategy.PreserveMedia && fits && src.URL != "" {
			*dst = *src.Clone()
			m.Move(fromKey, toKey)
			return
		}
		reason := fmt.Sprintf("%s strategy does not preserve media", m.Strategy.Name)
		if !fits {
			reason = fmt.Sprintf("%s variant requires a video", label(m.To()))
		}
		m.Lose(fromKey, *src, reason)
		m.AddDefault(toKey, *dst, "Placeholder media added")
	case src != nil:
		m.Lose(fromKey, *src, fmt.Sprintf("%s variant does not display %s", label(m.To()), fromKey))
	default:
		m.AddDefault(toKey, *dst, fmt.Sprintf("%s variant requires %s; placeholder added", label(m.To()), toKey))
	}
}

func (m *Migration) carryCollection() {
	from, to := schema.CollectionField(m.From()), schema.CollectionField(m.To())
	if from != "" && from != to {
		m.Lose(from, schema.CollectionValue(m.Source), fmt.Sprintf("%s variant does not support %s", label(m.To()), from))
	}
	if to != "" && to != from {
		m.AddDefault(to, schema.CollectionValue(m.Target), fmt.Sprintf("%s variant requires %s; defaults added", label(m.To()), to))
	}
}

var layoutKeys = map[schema.Variant][]string{
	schema.VariantCentered:    {"textAlign", "maxWidth"},
	schema.VariantSplitScreen: {"mediaPosition", "contentAlignment", "contentWidth"},
	schema.VariantVideo:       {"contentPosition", "overlay"},
	schema.VariantMinimal:     {"spacing", "textAlign"},
	schema.VariantFeature:     {"layout", "columns"},
	schema.VariantTestimonial: {"displayMode", "autoRotate", "rotationInterval"},
	schema.VariantProduct:     {"layout"},
	schema.VariantService:     {"layout", "trustBadges"},
	schema.VariantCTA:         {"urgency"},
	schema.VariantGallery:     {"layout", "columns", "showCaptions", "lightbox"},
}

// carryLayout handles the presentation settings: shared keys are copied when
// the strategy preserves layout, keys the target lacks are reported lost.
// skip lists keys a transform has already dealt with.
func (m *Migration) carryLayout(skip ...string) {
	srcMap, err := schema.ToMap(m.Source)
	if err != nil {
		panic(err)
	}
	handled := map[string]bool{}
	for _, k := range skip {
		handled[k] = true
	}
	targetKeys := map[string]bool{}
	for _, k := range layoutKeys[m.To()] {
		targetKeys[k] = true
	}
	for _, k := range layoutKeys[m.From()] {
		v, ok := srcMap[k]
		if handled[k] || !ok || v == nil {
			continue
		}
		if !targetKeys[k] {
			m.Lose(k, v, fmt.Sprintf("%s variant does not have %s options", label(m.To()), k))
			continue
		}
		if m.Strategy.PreserveLayout {
			m.setField(k, v)
			m.Keep(k)
		}
	}
}

func (m *Migration) setField(path string, value any) {
	out, err := schema.UpdateField(m.Target, path, value)
	if err != nil {
		panic(fmt.Errorf("set %s: %w", path, err))
	}
	m.Target = out
}

func genericTransform(m *Migration) {
	m.carryPrimaryMedia()
	m.carryCollection()
	m.carryLayout()
}
