package entities

// ServiceID identifies one purchasable content-production offering.
//
// The set is closed: any service id appearing in a selection or a config
// mapping must be one of the five constants below. Unknown ids are tolerated
// at the boundary (logged + skipped for pricing) but never priced.

type ServiceID string

const (
	ServiceMotionGraphics ServiceID = "motion-graphics"
	ServiceUGCVideo       ServiceID = "ugc-video"
	ServiceStaticGraphic  ServiceID = "static-graphic"
	ServiceVoiceover      ServiceID = "voiceover"
	ServiceScriptWriting  ServiceID = "script-writing"
)

// ServiceCatalogEntry is one row of the static service catalog.
//
// Monetary representation:
//   - BasePrice is a whole Naira amount. All pricing is integer arithmetic;
//     there are no fractional charges anywhere in the rule set.

type ServiceCatalogEntry struct {
	ID          ServiceID `json:"id"`
	Name        string    `json:"name"`
	BasePrice   int       `json:"base_price"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// serviceCatalog is loaded once and never mutated. Order is display order.
var serviceCatalog = []ServiceCatalogEntry{
	{
		ID:          ServiceMotionGraphics,
		Name:        "Motion Graphics",
		BasePrice:   10000,
		Description: "Animated graphics and visual effects (≤15s)",
		Icon:        "🎬",
	},
	{
		ID:          ServiceUGCVideo,
		Name:        "UGC Video",
		BasePrice:   10000,
		Description: "User-generated content style videos (20s standard)",
		Icon:        "📱",
	},
	{
		ID:          ServiceStaticGraphic,
		Name:        "Static Graphic",
		BasePrice:   5000,
		Description: "Static designs for social media and web",
		Icon:        "🎨",
	},
	{
		ID:          ServiceVoiceover,
		Name:        "Voiceover",
		BasePrice:   4000,
		Description: "Professional voice recordings (≤30s)",
		Icon:        "🎤",
	},
	{
		ID:          ServiceScriptWriting,
		Name:        "Script Writing",
		BasePrice:   2000,
		Description: "Professional copywriting (per 15s block)",
		Icon:        "✍️",
	},
}

// LookupService resolves a catalog entry by id.
//
// Unknown ids return ok=false; the lookup path never panics. Callers decide
// whether absence is an error.
func LookupService(id ServiceID) (ServiceCatalogEntry, bool) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceCatalogEntry{}, false
}

// Services returns the full catalog in display order. The returned slice is a
// copy; callers may not mutate the catalog.
func Services() []ServiceCatalogEntry {
	out := make([]ServiceCatalogEntry, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}
