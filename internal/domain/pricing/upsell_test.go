package pricing

import (
	"testing"

	"content_factory/internal/domain/entities"
)

func upsellIDs(options []entities.UpsellOption) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	return ids
}

func containsID(options []entities.UpsellOption, id string) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func TestRecommendUpsells_GeneralUpsellsAlwaysLast(t *testing.T) {
	cases := []struct {
		name     string
		selected []entities.ServiceID
	}{
		{name: "empty selection"},
		{name: "motion graphics", selected: []entities.ServiceID{entities.ServiceMotionGraphics}},
		{name: "everything", selected: []entities.ServiceID{
			entities.ServiceMotionGraphics, entities.ServiceUGCVideo, entities.ServiceStaticGraphic,
			entities.ServiceVoiceover, entities.ServiceScriptWriting,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := RecommendUpsells(tc.selected, nil)
			if len(options) < 3 {
				t.Fatalf("expected at least the 3 general upsells, got %v", upsellIDs(options))
			}
			tail := options[len(options)-3:]
			if tail[0].ID != UpsellRushDelivery || tail[1].ID != UpsellSocialMediaPack || tail[2].ID != UpsellBrandGuidelines {
				t.Fatalf("expected general upsells in fixed tail position, got %v", upsellIDs(options))
			}
			if tail[0].Price != 15000 || tail[1].Price != 8000 || tail[2].Price != 12000 {
				t.Fatalf("unexpected general upsell prices: %+v", tail)
			}
		})
	}
}

func TestRecommendUpsells_MotionGraphics(t *testing.T) {
	t.Run("no config suggests script and voiceover", func(t *testing.T) {
		options := RecommendUpsells([]entities.ServiceID{entities.ServiceMotionGraphics}, nil)
		ids := upsellIDs(options)
		want := []string{UpsellMGScript, UpsellMGVoiceover, UpsellRushDelivery, UpsellSocialMediaPack, UpsellBrandGuidelines}
		if len(ids) != len(want) {
			t.Fatalf("expected %v, got %v", want, ids)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, ids)
			}
		}
	})

	t.Run("voiceover chosen suggests sync instead", func(t *testing.T) {
		configs := map[entities.ServiceID]entities.ServiceConfig{
			entities.ServiceMotionGraphics: {"needsVoiceover": true},
		}
		options := RecommendUpsells([]entities.ServiceID{entities.ServiceMotionGraphics}, configs)
		if containsID(options, UpsellMGVoiceover) {
			t.Fatalf("voiceover already chosen, should not be suggested: %v", upsellIDs(options))
		}
		if !containsID(options, UpsellSyncVOAnimation) {
			t.Fatalf("expected sync suggestion: %v", upsellIDs(options))
		}
	})

	t.Run("sync already chosen", func(t *testing.T) {
		configs := map[entities.ServiceID]entities.ServiceConfig{
			entities.ServiceMotionGraphics: {"needsVoiceover": true, "syncVoiceoverAnimation": true},
		}
		options := RecommendUpsells([]entities.ServiceID{entities.ServiceMotionGraphics}, configs)
		if containsID(options, UpsellSyncVOAnimation) {
			t.Fatalf("sync already chosen, should not be suggested: %v", upsellIDs(options))
		}
	})
}

func TestRecommendUpsells_UGCOverlayNeedsMotionGraphics(t *testing.T) {
	options := RecommendUpsells([]entities.ServiceID{entities.ServiceUGCVideo}, nil)
	if containsID(options, UpsellUGCOverlay) {
		t.Fatalf("overlay requires motion-graphics too: %v", upsellIDs(options))
	}

	options = RecommendUpsells([]entities.ServiceID{entities.ServiceMotionGraphics, entities.ServiceUGCVideo}, nil)
	if !containsID(options, UpsellUGCOverlay) {
		t.Fatalf("expected overlay suggestion: %v", upsellIDs(options))
	}

	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo: {"overlayAnimation": true},
	}
	options = RecommendUpsells([]entities.ServiceID{entities.ServiceMotionGraphics, entities.ServiceUGCVideo}, configs)
	if containsID(options, UpsellUGCOverlay) {
		t.Fatalf("overlay already chosen, should not be suggested: %v", upsellIDs(options))
	}
}

func TestRecommendUpsells_ExtendUGCOnlyAtExplicitBaseDuration(t *testing.T) {
	// The extend suggestion fires on an explicit 20s choice, not on an
	// absent duration.
	options := RecommendUpsells([]entities.ServiceID{entities.ServiceUGCVideo}, nil)
	if containsID(options, UpsellExtendUGC) {
		t.Fatalf("absent duration should not trigger extend: %v", upsellIDs(options))
	}

	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo: {"duration": "20s"},
	}
	options = RecommendUpsells([]entities.ServiceID{entities.ServiceUGCVideo}, configs)
	if !containsID(options, UpsellExtendUGC) {
		t.Fatalf("expected extend suggestion: %v", upsellIDs(options))
	}

	configs[entities.ServiceUGCVideo] = entities.ServiceConfig{"duration": "40s"}
	options = RecommendUpsells([]entities.ServiceID{entities.ServiceUGCVideo}, configs)
	if containsID(options, UpsellExtendUGC) {
		t.Fatalf("extended duration should not trigger extend: %v", upsellIDs(options))
	}
}

func TestRecommendUpsells_StaticGraphic(t *testing.T) {
	options := RecommendUpsells([]entities.ServiceID{entities.ServiceStaticGraphic}, nil)
	if !containsID(options, UpsellAnimateStatic) || !containsID(options, UpsellMoreVariations) {
		t.Fatalf("expected animate + variations suggestions: %v", upsellIDs(options))
	}

	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceStaticGraphic: {"animateGraphic": true, "extraVariations": 3},
	}
	options = RecommendUpsells([]entities.ServiceID{entities.ServiceStaticGraphic}, configs)
	if containsID(options, UpsellAnimateStatic) || containsID(options, UpsellMoreVariations) {
		t.Fatalf("both options covered, nothing to suggest: %v", upsellIDs(options))
	}

	configs[entities.ServiceStaticGraphic] = entities.ServiceConfig{"extraVariations": 2}
	options = RecommendUpsells([]entities.ServiceID{entities.ServiceStaticGraphic}, configs)
	if !containsID(options, UpsellMoreVariations) {
		t.Fatalf("fewer than 3 variations should still suggest more: %v", upsellIDs(options))
	}
}

func TestRecommendUpsells_VoiceoverScriptCrossSell(t *testing.T) {
	options := RecommendUpsells([]entities.ServiceID{entities.ServiceVoiceover}, nil)
	if !containsID(options, UpsellVOScript) {
		t.Fatalf("expected script cross-sell: %v", upsellIDs(options))
	}

	options = RecommendUpsells([]entities.ServiceID{entities.ServiceVoiceover, entities.ServiceScriptWriting}, nil)
	if containsID(options, UpsellVOScript) {
		t.Fatalf("script-writing already selected, no cross-sell: %v", upsellIDs(options))
	}
}

func TestRecommendUpsells_DoesNotMutateInput(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceMotionGraphics}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceMotionGraphics: {"needsScript": true},
	}

	RecommendUpsells(selected, configs)
	if len(configs) != 1 || len(configs[entities.ServiceMotionGraphics]) != 1 {
		t.Fatalf("input mutated: %+v", configs)
	}
}
