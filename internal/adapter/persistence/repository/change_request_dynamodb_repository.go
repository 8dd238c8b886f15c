package repository

import (
	"context"
	"sort"
	"time"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChangeRequestsTableName = "estimate_change_requests"

type changeRequestItem struct {
	ID               string `dynamodbav:"id"`
	JobID            string `dynamodbav:"job_id"`
	ProposedByUserID string `dynamodbav:"proposed_by_user_id"`
	OldAmountCents   int64  `dynamodbav:"old_amount_cents"`
	NewAmountCents   int64  `dynamodbav:"new_amount_cents"`
	Reason           string `dynamodbav:"reason"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	DecidedAt        string `dynamodbav:"decided_at,omitempty"`
}

// ChangeRequestDynamoRepository persists EstimateChangeRequest entities.
//
// Table requirements:
//   - PK: id (string)
//
// Decide conditions on the row still being Pending, making a double decision
// impossible even under concurrent responses.

type ChangeRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeRequestRepository = (*ChangeRequestDynamoRepository)(nil)

func NewChangeRequestDynamoRepository(ddb *dynamodb.Client) *ChangeRequestDynamoRepository {
	return &ChangeRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_REQUESTS_TABLE", defaultChangeRequestsTableName),
	}
}

func (r *ChangeRequestDynamoRepository) Create(ctx context.Context, req entities.EstimateChangeRequest) (entities.EstimateChangeRequest, error) {
	it := toChangeRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimateChangeRequest{}, err
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
		return entities.EstimateChangeRequest{}, err
	}
	return req, nil
}

func (r *ChangeRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateChangeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateChangeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateChangeRequest{}, nil
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func (r *ChangeRequestDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.EstimateChangeRequest, error) {
	var requests []entities.EstimateChangeRequest

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []changeRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			requests = append(requests, fromChangeRequestItem(it))
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *ChangeRequestDynamoRepository) Decide(ctx context.Context, id string, status entities.ChangeRequestStatus, decidedAt time.Time) (entities.EstimateChangeRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #decided_at = :decided_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#decided_at": "decided_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ChangeRequestPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":decided_at": &types.AttributeValueMemberS{Value: formatTime(decidedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.EstimateChangeRequest{}, mapConditionalError(err)
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func toChangeRequestItem(r entities.EstimateChangeRequest) changeRequestItem {
	it := changeRequestItem{
		ID:               r.ID,
		JobID:            r.JobID,
		ProposedByUserID: r.ProposedByUserID,
		OldAmountCents:   r.OldAmountCents,
		NewAmountCents:   r.NewAmountCents,
		Reason:           r.Reason,
		Status:           string(r.Status),
		CreatedAt:        formatTime(r.CreatedAt),
	}
	if r.DecidedAt != nil {
		it.DecidedAt = formatTime(*r.DecidedAt)
	}
	return it
}

func fromChangeRequestItem(it changeRequestItem) entities.EstimateChangeRequest {
	r := entities.EstimateChangeRequest{
		ID:               it.ID,
		JobID:            it.JobID,
		ProposedByUserID: it.ProposedByUserID,
		OldAmountCents:   it.OldAmountCents,
		NewAmountCents:   it.NewAmountCents,
		Reason:           it.Reason,
		Status:           entities.ChangeRequestStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
	}
	if it.DecidedAt != "" {
		t := parseTime(it.DecidedAt)
		r.DecidedAt = &t
	}
	return r
}
