package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"content_factory/internal/domain/entities"
	"content_factory/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIntakesTableName = "intakes"

// intakeItem is the DynamoDB shape of an Intake.
//
// ServiceConfigs is stored as a JSON string: config values are free-typed
// (bool/string/number per option) and round-tripping them through a single
// JSON attribute keeps the fail-open typing of ServiceConfig intact.
type intakeItem struct {
	ID                 string   `dynamodbav:"id"`
	SelectedServices   []string `dynamodbav:"selected_services"`
	ServiceConfigs     string   `dynamodbav:"service_configs"`
	AdditionalServices []string `dynamodbav:"additional_services"`
	ProjectName        string   `dynamodbav:"project_name"`
	Description        string   `dynamodbav:"description"`
	Deadline           string   `dynamodbav:"deadline"`
	Status             string   `dynamodbav:"status"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// IntakeDynamoRepository persists Intake entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type IntakeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntakeRepository = (*IntakeDynamoRepository)(nil)

func NewIntakeDynamoRepository(ddb *dynamodb.Client) *IntakeDynamoRepository {
	tableName := os.Getenv("INTAKES_TABLE")
	if tableName == "" {
		tableName = defaultIntakesTableName
	}
	return &IntakeDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *IntakeDynamoRepository) Create(ctx context.Context, i entities.Intake) (entities.Intake, error) {
	it, err := toIntakeItem(i)
	if err != nil {
		return entities.Intake{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Intake{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Intake{}, err
	}
	return i, nil
}

func (r *IntakeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Intake, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Intake{}, err
	}
	if len(out.Item) == 0 {
		return entities.Intake{}, nil
	}

	var it intakeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Intake{}, err
	}
	return fromIntakeItem(it)
}

// Save writes the full intake back. The form mutates several fields per step
// (selection + configs must change atomically on deselect), so a whole-item
// put is simpler and safer than per-attribute update expressions.
func (r *IntakeDynamoRepository) Save(ctx context.Context, i entities.Intake) (entities.Intake, error) {
	it, err := toIntakeItem(i)
	if err != nil {
		return entities.Intake{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Intake{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Intake{}, nil
		}
		return entities.Intake{}, err
	}
	return i, nil
}

func toIntakeItem(i entities.Intake) (intakeItem, error) {
	configs, err := json.Marshal(i.ServiceConfigs)
	if err != nil {
		return intakeItem{}, err
	}

	selected := make([]string, 0, len(i.SelectedServices))
	for _, s := range i.SelectedServices {
		selected = append(selected, string(s))
	}
	additional := i.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	return intakeItem{
		ID:                 i.ID,
		SelectedServices:   selected,
		ServiceConfigs:     string(configs),
		AdditionalServices: additional,
		ProjectName:        i.Details.ProjectName,
		Description:        i.Details.Description,
		Deadline:           i.Details.Deadline,
		Status:             string(i.Status),
		CreatedAt:          i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromIntakeItem(it intakeItem) (entities.Intake, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	configs := map[entities.ServiceID]entities.ServiceConfig{}
	if it.ServiceConfigs != "" {
		if err := json.Unmarshal([]byte(it.ServiceConfigs), &configs); err != nil {
			return entities.Intake{}, err
		}
	}

	selected := make([]entities.ServiceID, 0, len(it.SelectedServices))
	for _, s := range it.SelectedServices {
		selected = append(selected, entities.ServiceID(s))
	}
	additional := it.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	return entities.Intake{
		ID:                 it.ID,
		SelectedServices:   selected,
		ServiceConfigs:     configs,
		AdditionalServices: additional,
		Details: entities.ProjectDetails{
			ProjectName: it.ProjectName,
			Description: it.Description,
			Deadline:    it.Deadline,
		},
		Status:    entities.IntakeStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
