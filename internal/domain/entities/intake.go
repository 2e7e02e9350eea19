package entities

import "time"

// IntakeStatus represents the lifecycle of a client intake form.

type IntakeStatus string

const (
	IntakeStatusDraft     IntakeStatus = "draft"
	IntakeStatusSubmitted IntakeStatus = "submitted"
)

// ProjectDetails are the free-form fields collected on the final step.

type ProjectDetails struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// Intake is the persisted state of one in-progress client intake form.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants maintained by the mutation methods:
//   - SelectedServices holds unique ids in insertion order (insertion order
//     is display and pricing-iteration order).
//   - ServiceConfigs keys are always a subset of SelectedServices; deselecting
//     a service drops its config in the same mutation.
//
// AdditionalServices records accepted upsell ids. It is informational for the
// review step and is not folded into the price breakdown.

type Intake struct {
	ID                 string                      `json:"id"`
	SelectedServices   []ServiceID                 `json:"selected_services"`
	ServiceConfigs     map[ServiceID]ServiceConfig `json:"service_configs"`
	AdditionalServices []string                    `json:"additional_services"`
	Details            ProjectDetails              `json:"details"`
	Status             IntakeStatus                `json:"status"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// IsSelected reports whether id is currently in the selection.
func (i *Intake) IsSelected(id ServiceID) bool {
	for _, s := range i.SelectedServices {
		if s == id {
			return true
		}
	}
	return false
}

// ToggleService adds id to the selection, or removes it when already present.
// Removal drops the service's config atomically so the config mapping never
// references a deselected service. Returns true when the service is selected
// after the toggle.
func (i *Intake) ToggleService(id ServiceID) bool {
	for idx, s := range i.SelectedServices {
		if s == id {
			i.SelectedServices = append(i.SelectedServices[:idx], i.SelectedServices[idx+1:]...)
			delete(i.ServiceConfigs, id)
			return false
		}
	}
	i.SelectedServices = append(i.SelectedServices, id)
	return true
}

// MergeServiceConfig shallow-merges patch into the config for id. Keys present
// in patch overwrite existing keys; other keys are kept.
func (i *Intake) MergeServiceConfig(id ServiceID, patch ServiceConfig) {
	if i.ServiceConfigs == nil {
		i.ServiceConfigs = make(map[ServiceID]ServiceConfig)
	}
	cfg := i.ServiceConfigs[id].Clone()
	if cfg == nil {
		cfg = make(ServiceConfig, len(patch))
	}
	for k, v := range patch {
		cfg[k] = v
	}
	i.ServiceConfigs[id] = cfg
}

// ToggleAdditionalService adds upsellID to the accepted upsell list, or
// removes it when already present. Returns true when accepted after the
// toggle.
func (i *Intake) ToggleAdditionalService(upsellID string) bool {
	for idx, s := range i.AdditionalServices {
		if s == upsellID {
			i.AdditionalServices = append(i.AdditionalServices[:idx], i.AdditionalServices[idx+1:]...)
			return false
		}
	}
	i.AdditionalServices = append(i.AdditionalServices, upsellID)
	return true
}
