package entities

import "testing"

func TestIntake_ToggleService(t *testing.T) {
	i := Intake{ServiceConfigs: map[ServiceID]ServiceConfig{}}

	if !i.ToggleService(ServiceMotionGraphics) {
		t.Fatalf("expected service selected after first toggle")
	}
	if !i.ToggleService(ServiceVoiceover) {
		t.Fatalf("expected service selected after first toggle")
	}
	if len(i.SelectedServices) != 2 || i.SelectedServices[0] != ServiceMotionGraphics || i.SelectedServices[1] != ServiceVoiceover {
		t.Fatalf("expected insertion order preserved, got %v", i.SelectedServices)
	}

	i.MergeServiceConfig(ServiceMotionGraphics, ServiceConfig{"needsScript": true})

	if i.ToggleService(ServiceMotionGraphics) {
		t.Fatalf("expected service deselected after second toggle")
	}
	if len(i.SelectedServices) != 1 || i.SelectedServices[0] != ServiceVoiceover {
		t.Fatalf("unexpected selection after deselect: %v", i.SelectedServices)
	}
	if _, ok := i.ServiceConfigs[ServiceMotionGraphics]; ok {
		t.Fatalf("expected config dropped with the service")
	}
}

func TestIntake_ConfigKeysSubsetOfSelection(t *testing.T) {
	i := Intake{ServiceConfigs: map[ServiceID]ServiceConfig{}}
	i.ToggleService(ServiceUGCVideo)
	i.ToggleService(ServiceStaticGraphic)
	i.MergeServiceConfig(ServiceUGCVideo, ServiceConfig{"duration": "40s"})
	i.MergeServiceConfig(ServiceStaticGraphic, ServiceConfig{"extraVariations": 2})

	i.ToggleService(ServiceUGCVideo)

	for id := range i.ServiceConfigs {
		if !i.IsSelected(id) {
			t.Fatalf("config for deselected service %q survived", id)
		}
	}
}

func TestIntake_MergeServiceConfigShallowMerge(t *testing.T) {
	i := Intake{}
	i.ToggleService(ServiceUGCVideo)
	i.MergeServiceConfig(ServiceUGCVideo, ServiceConfig{"duration": "40s", "needsScript": true})
	i.MergeServiceConfig(ServiceUGCVideo, ServiceConfig{"duration": "60s"})

	cfg := i.ServiceConfigs[ServiceUGCVideo]
	if cfg.String("duration", "") != "60s" {
		t.Fatalf("expected overwritten duration, got %v", cfg["duration"])
	}
	if !cfg.Bool("needsScript") {
		t.Fatalf("expected untouched keys preserved, got %+v", cfg)
	}
}

func TestIntake_ToggleAdditionalService(t *testing.T) {
	i := Intake{}
	if !i.ToggleAdditionalService("rush-delivery") {
		t.Fatalf("expected upsell accepted")
	}
	if !i.ToggleAdditionalService("brand-guidelines") {
		t.Fatalf("expected upsell accepted")
	}
	if i.ToggleAdditionalService("rush-delivery") {
		t.Fatalf("expected upsell withdrawn")
	}
	if len(i.AdditionalServices) != 1 || i.AdditionalServices[0] != "brand-guidelines" {
		t.Fatalf("unexpected upsell list: %v", i.AdditionalServices)
	}
}

func TestServiceConfig_FailOpenAccessors(t *testing.T) {
	cfg := ServiceConfig{
		"boolKey":   true,
		"stringKey": "40s",
		"intKey":    3,
		"floatKey":  float64(2),
		"fracKey":   2.5,
		"wrongBool": "true",
		"wrongInt":  "3",
		"wrongStr":  7,
	}

	if !cfg.Bool("boolKey") || cfg.Bool("wrongBool") || cfg.Bool("missing") {
		t.Fatalf("unexpected bool reads")
	}
	if cfg.String("stringKey", "x") != "40s" || cfg.String("wrongStr", "x") != "x" || cfg.String("missing", "x") != "x" {
		t.Fatalf("unexpected string reads")
	}
	if cfg.Int("intKey") != 3 || cfg.Int("floatKey") != 2 || cfg.Int("fracKey") != 0 || cfg.Int("wrongInt") != 0 {
		t.Fatalf("unexpected int reads")
	}

	var nilCfg ServiceConfig
	if nilCfg.Bool("k") || nilCfg.Int("k") != 0 || nilCfg.String("k", "d") != "d" {
		t.Fatalf("nil config must read as zero values")
	}
}

func TestLookupService(t *testing.T) {
	entry, ok := LookupService(ServiceStaticGraphic)
	if !ok || entry.BasePrice != 5000 || entry.Name != "Static Graphic" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if _, ok := LookupService("3d-render"); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestServices_FixedTable(t *testing.T) {
	services := Services()
	if len(services) != 5 {
		t.Fatalf("expected 5 services, got %d", len(services))
	}

	prices := map[ServiceID]int{
		ServiceMotionGraphics: 10000,
		ServiceUGCVideo:       10000,
		ServiceStaticGraphic:  5000,
		ServiceVoiceover:      4000,
		ServiceScriptWriting:  2000,
	}
	for _, s := range services {
		if prices[s.ID] != s.BasePrice {
			t.Fatalf("unexpected base price for %s: %d", s.ID, s.BasePrice)
		}
	}

	// Callers get a copy, not the catalog itself.
	services[0].BasePrice = 1
	if fresh, _ := LookupService(services[0].ID); fresh.BasePrice == 1 {
		t.Fatalf("catalog mutated through Services() result")
	}
}
