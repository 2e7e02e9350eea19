package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"content_factory/internal/domain/entities"
	"content_factory/internal/domain/pricing"
	"content_factory/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrIntakeNotFound         = errors.New("intake not found")
	ErrInvalidIntakeID        = errors.New("invalid intake id")
	ErrUnknownService         = errors.New("unknown service id")
	ErrServiceNotSelected     = errors.New("service not selected")
	ErrInvalidUpsellID        = errors.New("invalid upsell id")
	ErrIntakeAlreadySubmitted = errors.New("intake already submitted")
)

// IIntakeUseCase exposes the client intake form operations.
//
// Pricing is a derived view: Quote and Upsells recompute from the stored
// state on every call and nothing is cached across mutations.

type IIntakeUseCase interface {
	CreateIntake(ctx context.Context) (entities.Intake, error)
	GetByID(ctx context.Context, id string) (entities.Intake, error)
	ToggleService(ctx context.Context, id string, serviceID entities.ServiceID) (entities.Intake, error)
	UpdateServiceConfig(ctx context.Context, id string, serviceID entities.ServiceID, patch entities.ServiceConfig) (entities.Intake, error)
	ToggleAdditionalService(ctx context.Context, id, upsellID string) (entities.Intake, error)
	UpdateDetails(ctx context.Context, id string, details entities.ProjectDetails) (entities.Intake, error)
	Quote(ctx context.Context, id string) (entities.PriceBreakdown, error)
	Upsells(ctx context.Context, id string) ([]entities.UpsellOption, error)
	Submit(ctx context.Context, id string) (entities.Intake, error)
}

type IntakeUseCase struct {
	repo interfaces.IIntakeRepository
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(repo interfaces.IIntakeRepository) *IntakeUseCase {
	return &IntakeUseCase{repo: repo}
}

func (u *IntakeUseCase) CreateIntake(ctx context.Context) (entities.Intake, error) {
	now := time.Now().UTC()
	i := entities.Intake{
		ID:                 uuid.NewString(),
		SelectedServices:   []entities.ServiceID{},
		ServiceConfigs:     map[entities.ServiceID]entities.ServiceConfig{},
		AdditionalServices: []string{},
		Status:             entities.IntakeStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.repo.Create(ctx, i)
}

func (u *IntakeUseCase) GetByID(ctx context.Context, id string) (entities.Intake, error) {
	return u.load(ctx, id)
}

// ToggleService adds or removes a service from the selection. Unknown ids are
// rejected here at the boundary; the pricing engine additionally tolerates
// them (skip + log) should a stale selection ever be priced.
func (u *IntakeUseCase) ToggleService(ctx context.Context, id string, serviceID entities.ServiceID) (entities.Intake, error) {
	if _, ok := entities.LookupService(serviceID); !ok {
		return entities.Intake{}, ErrUnknownService
	}
	return u.mutate(ctx, id, func(i *entities.Intake) error {
		i.ToggleService(serviceID)
		return nil
	})
}

// UpdateServiceConfig shallow-merges patch into the config for serviceID. The
// service must currently be selected, keeping the config-keys ⊆ selection
// invariant intact.
func (u *IntakeUseCase) UpdateServiceConfig(ctx context.Context, id string, serviceID entities.ServiceID, patch entities.ServiceConfig) (entities.Intake, error) {
	if _, ok := entities.LookupService(serviceID); !ok {
		return entities.Intake{}, ErrUnknownService
	}
	return u.mutate(ctx, id, func(i *entities.Intake) error {
		if !i.IsSelected(serviceID) {
			return ErrServiceNotSelected
		}
		i.MergeServiceConfig(serviceID, patch)
		return nil
	})
}

func (u *IntakeUseCase) ToggleAdditionalService(ctx context.Context, id, upsellID string) (entities.Intake, error) {
	upsellID = strings.TrimSpace(upsellID)
	if upsellID == "" {
		return entities.Intake{}, ErrInvalidUpsellID
	}
	return u.mutate(ctx, id, func(i *entities.Intake) error {
		i.ToggleAdditionalService(upsellID)
		return nil
	})
}

func (u *IntakeUseCase) UpdateDetails(ctx context.Context, id string, details entities.ProjectDetails) (entities.Intake, error) {
	return u.mutate(ctx, id, func(i *entities.Intake) error {
		i.Details = details
		return nil
	})
}

// Quote recomputes the price breakdown from the current intake state.
func (u *IntakeUseCase) Quote(ctx context.Context, id string) (entities.PriceBreakdown, error) {
	i, err := u.load(ctx, id)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	return pricing.ComputeBreakdown(i.SelectedServices, i.ServiceConfigs), nil
}

// Upsells returns the recommended additions for the current intake state.
func (u *IntakeUseCase) Upsells(ctx context.Context, id string) ([]entities.UpsellOption, error) {
	i, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return pricing.RecommendUpsells(i.SelectedServices, i.ServiceConfigs), nil
}

// Submit moves a draft intake to submitted and logs an order summary. There
// is no downstream submission pipeline yet; the status transition is the
// durable record.
func (u *IntakeUseCase) Submit(ctx context.Context, id string) (entities.Intake, error) {
	updated, err := u.mutate(ctx, id, func(i *entities.Intake) error {
		if i.Status != entities.IntakeStatusDraft {
			return ErrIntakeAlreadySubmitted
		}
		i.Status = entities.IntakeStatusSubmitted
		return nil
	})
	if err != nil {
		return entities.Intake{}, err
	}

	breakdown := pricing.ComputeBreakdown(updated.SelectedServices, updated.ServiceConfigs)
	log.Printf("[intake][usecase] submitted intake_id=%s project=%q services=%d upsells=%d total=%d",
		updated.ID, updated.Details.ProjectName, len(updated.SelectedServices), len(updated.AdditionalServices), breakdown.Total)
	return updated, nil
}

func (u *IntakeUseCase) load(ctx context.Context, id string) (entities.Intake, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Intake{}, ErrInvalidIntakeID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Intake{}, err
	}
	if i.ID == "" {
		return entities.Intake{}, ErrIntakeNotFound
	}
	return i, nil
}

func (u *IntakeUseCase) mutate(ctx context.Context, id string, fn func(*entities.Intake) error) (entities.Intake, error) {
	i, err := u.load(ctx, id)
	if err != nil {
		return entities.Intake{}, err
	}
	if err := fn(&i); err != nil {
		return entities.Intake{}, err
	}
	i.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, i)
	if err != nil {
		return entities.Intake{}, err
	}
	if saved.ID == "" {
		// The intake vanished between load and save (concurrent delete).
		return entities.Intake{}, ErrIntakeNotFound
	}
	return saved, nil
}
