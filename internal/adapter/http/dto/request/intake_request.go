package request

import (
	"strings"

	"content_factory/internal/domain/entities"
)

// ToggleServiceRequest toggles one catalog service in the selection.
type ToggleServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

func (r ToggleServiceRequest) ResolveServiceID() entities.ServiceID {
	return entities.ServiceID(strings.TrimSpace(r.ServiceID))
}

// ToggleUpsellRequest toggles one accepted upsell on the intake.
type ToggleUpsellRequest struct {
	UpsellID string `json:"upsell_id" binding:"required"`
}

func (r ToggleUpsellRequest) ResolveUpsellID() string {
	return strings.TrimSpace(r.UpsellID)
}

// ServiceConfigPatch is a shallow config merge payload. Values keep their
// JSON types; the domain accessors are fail-open so no validation happens
// here beyond it being a JSON object.
type ServiceConfigPatch map[string]any

func (p ServiceConfigPatch) ToServiceConfig() entities.ServiceConfig {
	return entities.ServiceConfig(p)
}

// ProjectDetailsRequest carries the final-step form fields.
type ProjectDetailsRequest struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

func (r ProjectDetailsRequest) ToProjectDetails() entities.ProjectDetails {
	return entities.ProjectDetails{
		ProjectName: strings.TrimSpace(r.ProjectName),
		Description: strings.TrimSpace(r.Description),
		Deadline:    strings.TrimSpace(r.Deadline),
	}
}
