package entities

// ServiceConfig holds the user-chosen options for one selected service.
//
// Values are booleans, enumerated strings or small non-negative integers
// depending on the option. The accessors below are fail-open: a missing key
// or a wrong-typed value reads as the zero value, so a malformed config can
// never trigger a charge and never panics (pricing rules simply don't match).

type ServiceConfig map[string]any

// Bool reports whether key holds the boolean true. Anything else, including
// truthy strings or numbers, reads as false.
func (c ServiceConfig) Bool(key string) bool {
	if c == nil {
		return false
	}
	v, ok := c[key].(bool)
	return ok && v
}

// String returns the string held at key, or def when the key is absent or
// holds a non-string.
func (c ServiceConfig) String(key, def string) string {
	if c == nil {
		return def
	}
	if v, ok := c[key].(string); ok {
		return v
	}
	return def
}

// Int returns the integer held at key, or 0 when absent or non-numeric.
// JSON numbers decode as float64; only whole values are accepted.
func (c ServiceConfig) Int(key string) int {
	if c == nil {
		return 0
	}
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return 0
}

// Clone returns a shallow copy. Nil stays nil.
func (c ServiceConfig) Clone() ServiceConfig {
	if c == nil {
		return nil
	}
	out := make(ServiceConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Config option keys recognized by the pricing rule tables.
const (
	ConfigNeedsScript            = "needsScript"
	ConfigNeedsVoiceover         = "needsVoiceover"
	ConfigAddThumbnails          = "addThumbnails"
	ConfigSyncVoiceoverAnimation = "syncVoiceoverAnimation"
	ConfigDuration               = "duration"
	ConfigOverlayAnimation       = "overlayAnimation"
	ConfigExtraVariations        = "extraVariations"
	ConfigAnimateGraphic         = "animateGraphic"
	ConfigAddSubtitles           = "addSubtitles"
)
