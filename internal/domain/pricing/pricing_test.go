package pricing

import (
	"reflect"
	"testing"

	"content_factory/internal/domain/entities"
)

func TestComputeBreakdown_EmptySelection(t *testing.T) {
	b := ComputeBreakdown(nil, nil)
	if b.BasePrice != 0 || b.Total != 0 || len(b.AddOns) != 0 {
		t.Fatalf("expected zero breakdown, got %+v", b)
	}
}

func TestComputeBreakdown_MotionGraphicsScriptAndVoiceover(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceMotionGraphics}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceMotionGraphics: {"needsScript": true, "needsVoiceover": true},
	}

	b := ComputeBreakdown(selected, configs)
	if b.BasePrice != 10000 {
		t.Fatalf("expected base 10000, got %d", b.BasePrice)
	}
	want := []entities.AddOnLineItem{
		{Name: "Script Writing", Price: 2000},
		{Name: "Voiceover", Price: 4000},
	}
	if !reflect.DeepEqual(b.AddOns, want) {
		t.Fatalf("unexpected add-ons: %+v", b.AddOns)
	}
	if b.Total != 16000 {
		t.Fatalf("expected total 16000, got %d", b.Total)
	}
}

func TestComputeBreakdown_UGCExtendedDurationWithScript(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceUGCVideo}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo: {"duration": "40s", "needsScript": true},
	}

	b := ComputeBreakdown(selected, configs)
	if b.BasePrice != 10000 {
		t.Fatalf("expected base 10000, got %d", b.BasePrice)
	}
	want := []entities.AddOnLineItem{
		{Name: "Extended Duration (40s)", Price: 10000},
		{Name: "Script Writing (40s)", Price: 6000}, // 2000 per started 15s block
	}
	if !reflect.DeepEqual(b.AddOns, want) {
		t.Fatalf("unexpected add-ons: %+v", b.AddOns)
	}
	if b.Total != 26000 {
		t.Fatalf("expected total 26000, got %d", b.Total)
	}
}

func TestComputeBreakdown_StaticGraphicVariationsAndAnimation(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceStaticGraphic}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceStaticGraphic: {"extraVariations": 3, "animateGraphic": true},
	}

	b := ComputeBreakdown(selected, configs)
	want := []entities.AddOnLineItem{
		{Name: "Extra Variations (3)", Price: 6000},
		{Name: "Simple Animation", Price: 5000},
	}
	if b.BasePrice != 5000 || !reflect.DeepEqual(b.AddOns, want) || b.Total != 16000 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestComputeBreakdown_VoiceoverTierAndSubtitles(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceVoiceover}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceVoiceover: {"duration": "90s", "addSubtitles": true},
	}

	b := ComputeBreakdown(selected, configs)
	want := []entities.AddOnLineItem{
		{Name: "Extended Duration (90s)", Price: 8000},
		{Name: "Burned-in Subtitles", Price: 3000},
	}
	if b.BasePrice != 4000 || !reflect.DeepEqual(b.AddOns, want) || b.Total != 15000 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestComputeBreakdown_NoConfigsBasePricesOnly(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceMotionGraphics, entities.ServiceVoiceover}

	b := ComputeBreakdown(selected, nil)
	if b.BasePrice != 14000 || len(b.AddOns) != 0 || b.Total != 14000 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestComputeBreakdown_UGCDefaultDurationBlocks(t *testing.T) {
	// With no duration set, script blocks come from the 20s default:
	// ceil(20/15)=2 blocks, ceil(20/30)=1 block.
	selected := []entities.ServiceID{entities.ServiceUGCVideo}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo: {"needsScript": true, "needsVoiceover": true},
	}

	b := ComputeBreakdown(selected, configs)
	want := []entities.AddOnLineItem{
		{Name: "Script Writing (20s)", Price: 4000},
		{Name: "Voiceover (20s)", Price: 4000},
	}
	if !reflect.DeepEqual(b.AddOns, want) {
		t.Fatalf("unexpected add-ons: %+v", b.AddOns)
	}
	if b.Total != 18000 {
		t.Fatalf("expected total 18000, got %d", b.Total)
	}
}

func TestComputeBreakdown_UGCColonDurationParsesLeadingInteger(t *testing.T) {
	// "1:20" is tiered at +30000 but its block math reads the leading "1":
	// one script block and one voiceover block.
	selected := []entities.ServiceID{entities.ServiceUGCVideo}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo: {"duration": "1:20", "needsScript": true, "needsVoiceover": true},
	}

	b := ComputeBreakdown(selected, configs)
	want := []entities.AddOnLineItem{
		{Name: "Extended Duration (1:20)", Price: 30000},
		{Name: "Script Writing (1:20)", Price: 2000},
		{Name: "Voiceover (1:20)", Price: 4000},
	}
	if !reflect.DeepEqual(b.AddOns, want) {
		t.Fatalf("unexpected add-ons: %+v", b.AddOns)
	}
}

func TestComputeBreakdown_UnknownServiceSkipped(t *testing.T) {
	selected := []entities.ServiceID{"3d-render", entities.ServiceScriptWriting}

	b := ComputeBreakdown(selected, nil)
	if b.BasePrice != 2000 || b.Total != 2000 || len(b.AddOns) != 0 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestComputeBreakdown_MalformedConfigValuesDoNotCharge(t *testing.T) {
	selected := []entities.ServiceID{
		entities.ServiceMotionGraphics,
		entities.ServiceUGCVideo,
		entities.ServiceStaticGraphic,
	}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceMotionGraphics: {"needsScript": "yes", "needsVoiceover": 1},
		entities.ServiceUGCVideo:       {"duration": 40, "overlayAnimation": "true"},
		entities.ServiceStaticGraphic:  {"extraVariations": "3", "animateGraphic": nil},
	}

	b := ComputeBreakdown(selected, configs)
	if len(b.AddOns) != 0 {
		t.Fatalf("expected no add-ons for malformed configs, got %+v", b.AddOns)
	}
	if b.Total != 25000 {
		t.Fatalf("expected total 25000, got %d", b.Total)
	}
}

func TestComputeBreakdown_NegativeVariationsDoNotCharge(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceStaticGraphic}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceStaticGraphic: {"extraVariations": -2},
	}

	b := ComputeBreakdown(selected, configs)
	if len(b.AddOns) != 0 || b.Total != 5000 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestComputeBreakdown_AddOnsFollowSelectionOrder(t *testing.T) {
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceVoiceover:      {"addSubtitles": true},
		entities.ServiceMotionGraphics: {"needsScript": true},
	}

	first := ComputeBreakdown([]entities.ServiceID{entities.ServiceVoiceover, entities.ServiceMotionGraphics}, configs)
	if first.AddOns[0].Name != "Burned-in Subtitles" || first.AddOns[1].Name != "Script Writing" {
		t.Fatalf("expected selection order, got %+v", first.AddOns)
	}

	second := ComputeBreakdown([]entities.ServiceID{entities.ServiceMotionGraphics, entities.ServiceVoiceover}, configs)
	if second.AddOns[0].Name != "Script Writing" || second.AddOns[1].Name != "Burned-in Subtitles" {
		t.Fatalf("expected selection order, got %+v", second.AddOns)
	}
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	selected := []entities.ServiceID{entities.ServiceUGCVideo, entities.ServiceVoiceover}
	configs := map[entities.ServiceID]entities.ServiceConfig{
		entities.ServiceUGCVideo:  {"duration": "60s", "needsVoiceover": true},
		entities.ServiceVoiceover: {"duration": "60s"},
	}

	first := ComputeBreakdown(selected, configs)
	second := ComputeBreakdown(selected, configs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestComputeBreakdown_TotalIsBasePlusAddOns(t *testing.T) {
	cases := []struct {
		name     string
		selected []entities.ServiceID
		configs  map[entities.ServiceID]entities.ServiceConfig
	}{
		{name: "empty"},
		{
			name:     "all services all options",
			selected: []entities.ServiceID{entities.ServiceMotionGraphics, entities.ServiceUGCVideo, entities.ServiceStaticGraphic, entities.ServiceVoiceover, entities.ServiceScriptWriting},
			configs: map[entities.ServiceID]entities.ServiceConfig{
				entities.ServiceMotionGraphics: {"needsScript": true, "needsVoiceover": true, "addThumbnails": true, "syncVoiceoverAnimation": true},
				entities.ServiceUGCVideo:       {"duration": "1:20", "needsScript": true, "needsVoiceover": true, "overlayAnimation": true},
				entities.ServiceStaticGraphic:  {"extraVariations": 5, "animateGraphic": true},
				entities.ServiceVoiceover:      {"duration": "60s", "addSubtitles": true},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ComputeBreakdown(tc.selected, tc.configs)
			sum := b.BasePrice
			for _, a := range b.AddOns {
				if a.Price < 0 {
					t.Fatalf("negative add-on price: %+v", a)
				}
				sum += a.Price
			}
			if b.Total != sum {
				t.Fatalf("total %d != base+addons %d", b.Total, sum)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"40s", 40},
		{"20s", 20},
		{"1:20", 1},
		{"90s", 90},
		{"", 0},
		{"s40", 0},
	}
	for _, tc := range cases {
		if got := leadingInt(tc.in); got != tc.want {
			t.Fatalf("leadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		n, d, want int
	}{
		{40, 15, 3},
		{20, 15, 2},
		{20, 30, 1},
		{30, 30, 1},
		{0, 15, 0},
		{-5, 15, 0},
	}
	for _, tc := range cases {
		if got := ceilDiv(tc.n, tc.d); got != tc.want {
			t.Fatalf("ceilDiv(%d, %d) = %d, want %d", tc.n, tc.d, got, tc.want)
		}
	}
}
