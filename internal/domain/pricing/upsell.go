package pricing

import "content_factory/internal/domain/entities"

// Upsell ids referenced by the intake's additional-services list.
const (
	UpsellMGScript        = "mg-script"
	UpsellMGVoiceover     = "mg-voiceover"
	UpsellSyncVOAnimation = "sync-vo-animation"
	UpsellUGCOverlay      = "ugc-overlay"
	UpsellExtendUGC       = "extend-ugc"
	UpsellAnimateStatic   = "animate-static"
	UpsellMoreVariations  = "more-variations"
	UpsellVOScript        = "vo-script"
	UpsellRushDelivery    = "rush-delivery"
	UpsellSocialMediaPack = "social-media-pack"
	UpsellBrandGuidelines = "brand-guidelines"
)

// generalUpsells are appended to every recommendation list regardless of the
// selection, in this order.
var generalUpsells = []entities.UpsellOption{
	{
		ID:          UpsellRushDelivery,
		Name:        "24-Hour Rush Delivery",
		Description: "Get your content delivered in 24 hours",
		Price:       15000,
		Icon:        "⚡",
	},
	{
		ID:          UpsellSocialMediaPack,
		Name:        "Social Media Optimization Pack",
		Description: "Versions optimized for all major platforms",
		Price:       8000,
		Icon:        "📱",
	},
	{
		ID:          UpsellBrandGuidelines,
		Name:        "Brand Guidelines Consultation",
		Description: "Expert advice on brand consistency",
		Price:       12000,
		Icon:        "🎯",
	},
}

// RecommendUpsells builds the list of suggested paid additions for the given
// selection. All applicable rules are included (no first-match-wins);
// evaluation order determines display order only. The result is purely
// advisory: accepting an upsell never changes the price breakdown.
func RecommendUpsells(selected []entities.ServiceID, configs map[entities.ServiceID]entities.ServiceConfig) []entities.UpsellOption {
	isSelected := func(id entities.ServiceID) bool {
		for _, s := range selected {
			if s == id {
				return true
			}
		}
		return false
	}

	var upsells []entities.UpsellOption

	if isSelected(entities.ServiceMotionGraphics) {
		mgCfg := configs[entities.ServiceMotionGraphics]

		if !mgCfg.Bool(entities.ConfigNeedsScript) {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellMGScript,
				Name:        "Add Script Writing",
				Description: "Professional copywriting for your motion graphics",
				Price:       2000,
				Icon:        "✍️",
				Popular:     true,
			})
		}
		if !mgCfg.Bool(entities.ConfigNeedsVoiceover) {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellMGVoiceover,
				Name:        "Add Professional Voiceover",
				Description: "Bring your animation to life with voice",
				Price:       4000,
				Icon:        "🎤",
			})
		}
		if mgCfg.Bool(entities.ConfigNeedsVoiceover) && !mgCfg.Bool(entities.ConfigSyncVoiceoverAnimation) {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellSyncVOAnimation,
				Name:        "Sync Voiceover with Animation",
				Description: "Perfect timing between voice and visuals",
				Price:       2000,
				Icon:        "🎵",
			})
		}
	}

	if isSelected(entities.ServiceUGCVideo) {
		ugcCfg := configs[entities.ServiceUGCVideo]

		if isSelected(entities.ServiceMotionGraphics) && !ugcCfg.Bool(entities.ConfigOverlayAnimation) {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellUGCOverlay,
				Name:        "Branded Animation Overlay",
				Description: "Combine UGC with branded animations",
				Price:       5000,
				Icon:        "🎬",
				Popular:     true,
			})
		}
		if ugcCfg.String(entities.ConfigDuration, "") == defaultUGCDuration {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellExtendUGC,
				Name:        "Extend to 40 seconds",
				Description: "More time to tell your story",
				Price:       10000,
				Icon:        "⏱️",
			})
		}
	}

	if isSelected(entities.ServiceStaticGraphic) {
		sgCfg := configs[entities.ServiceStaticGraphic]

		if !sgCfg.Bool(entities.ConfigAnimateGraphic) {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellAnimateStatic,
				Name:        "Turn Static into Animation",
				Description: "Simple animation for your static design",
				Price:       5000,
				Icon:        "🎭",
			})
		}
		if sgCfg.Int(entities.ConfigExtraVariations) < 3 {
			upsells = append(upsells, entities.UpsellOption{
				ID:          UpsellMoreVariations,
				Name:        "Add 3 More Variations",
				Description: "More options for different platforms",
				Price:       6000,
				Icon:        "🎨",
			})
		}
	}

	if isSelected(entities.ServiceVoiceover) && !isSelected(entities.ServiceScriptWriting) {
		upsells = append(upsells, entities.UpsellOption{
			ID:          UpsellVOScript,
			Name:        "Professional Script for Voiceover",
			Description: "Expert copywriting optimized for voice delivery",
			Price:       2000,
			Icon:        "📝",
			Popular:     true,
		})
	}

	return append(upsells, generalUpsells...)
}
