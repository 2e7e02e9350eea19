package interfaces

import (
	"context"

	"content_factory/internal/domain/entities"
)

// IIntakeRepository abstracts DynamoDB persistence for Intake.
//
// Not-found is signaled by a zero-value Intake with a nil error; use cases
// translate that into their own sentinel errors.

type IIntakeRepository interface {
	Create(ctx context.Context, i entities.Intake) (entities.Intake, error)
	GetByID(ctx context.Context, id string) (entities.Intake, error)
	Save(ctx context.Context, i entities.Intake) (entities.Intake, error)
}
