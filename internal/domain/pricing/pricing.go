// Package pricing implements the quote calculation rules for the client
// intake form: base prices per selected service plus conditional add-on
// charges derived from each service's configuration.
//
// ComputeBreakdown and RecommendUpsells are pure functions of their input.
// They are recomputed on demand after every state mutation and never cached;
// toggling an option off removes its line item on the next computation.
package pricing

import (
	"log"
	"strconv"

	"content_factory/internal/domain/entities"
)

// Add-on prices, whole Naira.
const (
	priceScriptWriting   = 2000
	priceVoiceover       = 4000
	priceThumbnails      = 3000
	priceVOSync          = 2000
	priceOverlay         = 5000
	pricePerVariation    = 2000
	priceSimpleAnimation = 5000
	priceSubtitles       = 3000

	scriptBlockSeconds    = 15
	voiceoverBlockSeconds = 30

	defaultUGCDuration = "20s"
)

// ugcDurationTiers maps UGC video duration strings to their extended-duration
// surcharge. The 20s base duration is already priced into the base price and
// adds nothing. Tiers are mutually exclusive, matched by exact string.
var ugcDurationTiers = map[string]int{
	"40s":  10000,
	"60s":  20000,
	"1:20": 30000,
}

// voiceoverDurationTiers maps voiceover duration strings to their surcharge.
// The 30s baseline is included in the base price.
var voiceoverDurationTiers = map[string]int{
	"60s": 4000,
	"90s": 8000,
}

// ComputeBreakdown prices the given selection.
//
// Services are iterated in selection order; within a service, rules are
// evaluated in a fixed order, each independently. Unknown service ids
// contribute nothing and are logged as an anomaly. Malformed config values
// are treated as non-matching, never as an error. The function is total over
// its input domain.
func ComputeBreakdown(selected []entities.ServiceID, configs map[entities.ServiceID]entities.ServiceConfig) entities.PriceBreakdown {
	breakdown := entities.PriceBreakdown{AddOns: []entities.AddOnLineItem{}}

	for _, id := range selected {
		svc, ok := entities.LookupService(id)
		if !ok {
			log.Printf("[pricing] unknown service id %q in selection; skipped", id)
			continue
		}
		breakdown.BasePrice += svc.BasePrice

		cfg := configs[id]
		if cfg == nil {
			continue
		}

		switch id {
		case entities.ServiceMotionGraphics:
			breakdown.AddOns = append(breakdown.AddOns, motionGraphicsAddOns(cfg)...)
		case entities.ServiceUGCVideo:
			breakdown.AddOns = append(breakdown.AddOns, ugcVideoAddOns(cfg)...)
		case entities.ServiceStaticGraphic:
			breakdown.AddOns = append(breakdown.AddOns, staticGraphicAddOns(cfg)...)
		case entities.ServiceVoiceover:
			breakdown.AddOns = append(breakdown.AddOns, voiceoverAddOns(cfg)...)
		case entities.ServiceScriptWriting:
			// Base price only. Script-writing config (purpose, target length)
			// is informational and does not affect price.
		}
	}

	breakdown.Total = breakdown.BasePrice
	for _, a := range breakdown.AddOns {
		breakdown.Total += a.Price
	}
	return breakdown
}

// motionGraphicsAddOns: four independent boolean gates.
func motionGraphicsAddOns(cfg entities.ServiceConfig) []entities.AddOnLineItem {
	var addOns []entities.AddOnLineItem
	if cfg.Bool(entities.ConfigNeedsScript) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Script Writing", Price: priceScriptWriting})
	}
	if cfg.Bool(entities.ConfigNeedsVoiceover) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Voiceover", Price: priceVoiceover})
	}
	if cfg.Bool(entities.ConfigAddThumbnails) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Static Thumbnails", Price: priceThumbnails})
	}
	if cfg.Bool(entities.ConfigSyncVoiceoverAnimation) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "VO Sync with Animation", Price: priceVOSync})
	}
	return addOns
}

func ugcVideoAddOns(cfg entities.ServiceConfig) []entities.AddOnLineItem {
	var addOns []entities.AddOnLineItem

	if d := cfg.String(entities.ConfigDuration, ""); d != "" {
		if surcharge, ok := ugcDurationTiers[d]; ok {
			addOns = append(addOns, entities.AddOnLineItem{Name: "Extended Duration (" + d + ")", Price: surcharge})
		}
	}

	if cfg.Bool(entities.ConfigNeedsScript) {
		d := cfg.String(entities.ConfigDuration, defaultUGCDuration)
		blocks := ceilDiv(leadingInt(d), scriptBlockSeconds)
		addOns = append(addOns, entities.AddOnLineItem{Name: "Script Writing (" + d + ")", Price: priceScriptWriting * blocks})
	}

	if cfg.Bool(entities.ConfigNeedsVoiceover) {
		d := cfg.String(entities.ConfigDuration, defaultUGCDuration)
		blocks := ceilDiv(leadingInt(d), voiceoverBlockSeconds)
		addOns = append(addOns, entities.AddOnLineItem{Name: "Voiceover (" + d + ")", Price: priceVoiceover * blocks})
	}

	if cfg.Bool(entities.ConfigOverlayAnimation) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Branded Animation Overlay", Price: priceOverlay})
	}
	return addOns
}

func staticGraphicAddOns(cfg entities.ServiceConfig) []entities.AddOnLineItem {
	var addOns []entities.AddOnLineItem
	if n := cfg.Int(entities.ConfigExtraVariations); n > 0 {
		addOns = append(addOns, entities.AddOnLineItem{
			Name:  "Extra Variations (" + strconv.Itoa(n) + ")",
			Price: pricePerVariation * n,
		})
	}
	if cfg.Bool(entities.ConfigAnimateGraphic) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Simple Animation", Price: priceSimpleAnimation})
	}
	return addOns
}

func voiceoverAddOns(cfg entities.ServiceConfig) []entities.AddOnLineItem {
	var addOns []entities.AddOnLineItem
	if d := cfg.String(entities.ConfigDuration, ""); d != "" {
		if surcharge, ok := voiceoverDurationTiers[d]; ok {
			addOns = append(addOns, entities.AddOnLineItem{Name: "Extended Duration (" + d + ")", Price: surcharge})
		}
	}
	if cfg.Bool(entities.ConfigAddSubtitles) {
		addOns = append(addOns, entities.AddOnLineItem{Name: "Burned-in Subtitles", Price: priceSubtitles})
	}
	return addOns
}
