package response

import (
	"time"

	"content_factory/internal/domain/entities"
)

type IntakeResponse struct {
	ID                 string                                          `json:"id"`
	SelectedServices   []entities.ServiceID                            `json:"selected_services"`
	ServiceConfigs     map[entities.ServiceID]entities.ServiceConfig   `json:"service_configs"`
	AdditionalServices []string                                        `json:"additional_services"`
	ProjectName        string                                          `json:"project_name"`
	Description        string                                          `json:"description"`
	Deadline           string                                          `json:"deadline"`
	Status             string                                          `json:"status"`
	CreatedAt          time.Time                                       `json:"created_at"`
	UpdatedAt          time.Time                                       `json:"updated_at"`
}

func FromIntake(i entities.Intake) IntakeResponse {
	selected := i.SelectedServices
	if selected == nil {
		selected = []entities.ServiceID{}
	}
	configs := i.ServiceConfigs
	if configs == nil {
		configs = map[entities.ServiceID]entities.ServiceConfig{}
	}
	additional := i.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	return IntakeResponse{
		ID:                 i.ID,
		SelectedServices:   selected,
		ServiceConfigs:     configs,
		AdditionalServices: additional,
		ProjectName:        i.Details.ProjectName,
		Description:        i.Details.Description,
		Deadline:           i.Details.Deadline,
		Status:             string(i.Status),
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}
