package migration

import (
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

func builtinTransforms() map[schema.Variant]map[schema.Variant]TransformFunc {
	return map[schema.Variant]map[schema.Variant]TransformFunc{
		schema.VariantCentered: {
			schema.VariantSplitScreen: centeredToSplitScreen,
			schema.VariantMinimal:     centeredToMinimal,
			schema.VariantVideo:       centeredToVideo,
			schema.VariantCTA:         centeredToCTA,
			schema.VariantFeature:     centeredToFeature,
		},
		schema.VariantSplitScreen: {
			schema.VariantCentered: splitScreenToCentered,
			schema.VariantVideo:    splitScreenToVideo,
		},
		schema.VariantMinimal: {
			schema.VariantCentered: minimalToCentered,
		},
		schema.VariantVideo: {
			schema.VariantCentered: videoToCentered,
		},
		schema.VariantCTA: {
			schema.VariantCentered: ctaToCentered,
		},
		schema.VariantFeature: {
			schema.VariantCentered: featureToCentered,
		},
		schema.VariantGallery: {
			schema.VariantSplitScreen: galleryToSplitScreen,
		},
	}
}

// renameLayout maps one layout key onto another when the strategy preserves
// layout, otherwise reports it lost.
func (m *Migration) renameLayout(from string, value string, to string) {
	if value == "" {
		return
	}
	if m.Strategy.PreserveLayout {
		m.setField(to, value)
		m.Move(from, to)
		return
	}
	m.Lose(from, value, fmt.Sprintf("%s strategy does not preserve layout", m.Strategy.Name))
}

func centeredToSplitScreen(m *Migration) {
	src := m.Source.(*schema.CenteredProps)
	m.carryPrimaryMedia()
	m.renameLayout("textAlign", src.TextAlign, "contentAlignment")
	m.carryLayout("textAlign")
}

func splitScreenToCentered(m *Migration) {
	src := m.Source.(*schema.SplitScreenProps)
	m.carryPrimaryMedia()
	m.renameLayout("contentAlignment", src.ContentAlignment, "textAlign")
	m.carryLayout("contentAlignment")
}

func minimalToCentered(m *Migration) {
	src := m.Source.(*schema.MinimalProps)
	var spacing any
	if src.Spacing != "" {
		spacing = src.Spacing
	}
	m.Lose("spacing", spacing, "Centered variant does not have spacing options")
	m.carryLayout("spacing")
}

func centeredToMinimal(m *Migration) {
	m.AddDefault("spacing", m.Target.(*schema.MinimalProps).Spacing, "Minimal variant uses a spacing preset; default applied")
	m.carryLayout()
}

func centeredToVideo(m *Migration) {
	m.carryPrimaryMedia()
	if o := m.Target.(*schema.VideoProps).Overlay; o != nil {
		m.AddDefault("overlay", *o, "Video variant darkens the video with an overlay for legibility")
	}
	m.carryLayout()
}

// videoToCentered moves the video into a video background when media is
// preserved.
func videoToCentered(m *Migration) {
	src := m.Source.(*schema.VideoProps)
	dst := m.Target.(*schema.CenteredProps)
	if m.Strategy.PreserveMedia && src.Video.URL != "" {
		dst.Background = schema.BackgroundConfig{
			Type:    schema.BackgroundVideo,
			Video:   src.Video.Clone(),
			Overlay: src.Overlay.Clone(),
		}
		m.Move("video", "background.video")
		if src.Overlay != nil {
			m.Move("overlay", "background.overlay")
		}
		if bg := src.Background; bg.Type != schema.BackgroundNone && bg.Type != "" {
			m.Lose("background", bg, "Centered variant uses the video as its background")
		}
	} else {
		m.Lose("video", src.Video, fmt.Sprintf("%s strategy does not preserve media", m.Strategy.Name))
		if src.Overlay != nil {
			m.Lose("overlay", *src.Overlay, "Centered variant has no video to overlay")
		}
	}
	m.carryLayout("overlay")
}

func centeredToCTA(m *Migration) {
	m.carryCollection()
	m.carryLayout()
	m.Warn("Review the call-to-action benefits; defaults were added")
}

func ctaToCentered(m *Migration) {
	m.carryCollection()
	m.carryLayout()
}

func featureToCentered(m *Migration) {
	src := m.Source.(*schema.FeatureProps)
	m.carryCollection()
	m.carryLayout()
	if len(src.Features) > 0 {
		m.Warn("%d feature(s) will not be shown by the centered layout", len(src.Features))
	}
}

func centeredToFeature(m *Migration) {
	m.carryCollection()
	m.carryLayout()
}

// galleryToSplitScreen keeps the first gallery image as the split-screen media.
func galleryToSplitScreen(m *Migration) {
	src := m.Source.(*schema.GalleryProps)
	dst := m.Target.(*schema.SplitScreenProps)
	if m.Strategy.PreserveMedia && len(src.Gallery) > 0 && src.Gallery[0].URL != "" {
		dst.Media = *src.Gallery[0].Clone()
		m.Move("gallery[0]", "media")
		if rest := src.Gallery[1:]; len(rest) > 0 {
			m.Lose("gallery", append([]schema.MediaConfig(nil), rest...), "Split-screen variant displays a single media item")
		}
	} else {
		m.carryCollection()
		m.AddDefault("media", dst.Media, "Split-screen variant requires media; placeholder added")
	}
	m.carryLayout()
}

func splitScreenToVideo(m *Migration) {
	m.carryPrimaryMedia()
	m.carryLayout()
}
