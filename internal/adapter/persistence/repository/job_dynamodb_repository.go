package repository

import (
	"context"
	"time"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID           string   `dynamodbav:"id"`
	CustomerID   string   `dynamodbav:"customer_id"`
	TechnicianID string   `dynamodbav:"technician_id,omitempty"`
	Trade        string   `dynamodbav:"trade"`
	Description  string   `dynamodbav:"description"`
	Photos       []string `dynamodbav:"photos,omitempty"`
	Address      string   `dynamodbav:"address"`
	Lat          float64  `dynamodbav:"lat"`
	Lng          float64  `dynamodbav:"lng"`
	Status       string   `dynamodbav:"status"`
	IsASAP       bool     `dynamodbav:"is_asap"`
	ScheduledAt  string   `dynamodbav:"scheduled_at,omitempty"`

	OriginalAmountCents int64  `dynamodbav:"original_amount_cents"`
	CurrentAmountCents  int64  `dynamodbav:"current_amount_cents"`
	Currency            string `dynamodbav:"currency"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The estimate is embedded in the job item so the job+estimate consistency
// unit is a single row, and every mutation is a conditional write on it:
//   - technician_id is omitted while unbound, so accept can condition on
//     attribute_not_exists(technician_id)
//   - status transitions condition on the expected from-status, which is
//     what serializes concurrent technician actions per job.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Accept(ctx context.Context, jobID, technicianID string) (entities.Job, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		// Exactly one concurrent accept can satisfy this condition.
		ConditionExpression: aws.String("#status = :requested AND attribute_not_exists(#technician_id)"),
		UpdateExpression:    aws.String("SET #status = :matched, #technician_id = :technician_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":        "status",
			"#technician_id": "technician_id",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":requested":     &types.AttributeValueMemberS{Value: string(entities.JobStatusRequested)},
			":matched":       &types.AttributeValueMemberS{Value: string(entities.JobStatusMatched)},
			":technician_id": &types.AttributeValueMemberS{Value: technicianID},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Job{}, mapConditionalError(err)
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateStatusIf(ctx context.Context, jobID string, from, to entities.JobStatus) (entities.Job, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Job{}, mapConditionalError(err)
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) SetCurrentAmount(ctx context.Context, jobID string, amountCents int64) (entities.Job, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #current_amount_cents = :amount, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#current_amount_cents": "current_amount_cents",
			"#updated_at":           "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: formatInt(amountCents)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Job{}, mapConditionalError(err)
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListActiveByUser(ctx context.Context, userID string) ([]entities.Job, error) {
	// Scan with a filter keeps the table schema minimal; participant GSIs
	// are the upgrade path if active-job fan-in grows.
	var jobs []entities.Job

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("(#customer_id = :uid OR #technician_id = :uid) AND NOT (#status IN (:completed, :cancelled))"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id":   "customer_id",
			"#technician_id": "technician_id",
			"#status":        "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":       &types.AttributeValueMemberS{Value: userID},
			":completed": &types.AttributeValueMemberS{Value: string(entities.JobStatusCompleted)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []jobItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			jobs = append(jobs, fromJobItem(it))
		}
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                  j.ID,
		CustomerID:          j.CustomerID,
		TechnicianID:        j.TechnicianID,
		Trade:               string(j.Trade),
		Description:         j.Description,
		Photos:              j.Photos,
		Address:             j.Address,
		Lat:                 j.Lat,
		Lng:                 j.Lng,
		Status:              string(j.Status),
		IsASAP:              j.IsASAP,
		OriginalAmountCents: j.Estimate.OriginalAmountCents,
		CurrentAmountCents:  j.Estimate.CurrentAmountCents,
		Currency:            j.Estimate.Currency,
		CreatedAt:           formatTime(j.CreatedAt),
		UpdatedAt:           formatTime(j.UpdatedAt),
	}
	if j.ScheduledAt != nil {
		it.ScheduledAt = formatTime(*j.ScheduledAt)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		TechnicianID: it.TechnicianID,
		Trade:        entities.Trade(it.Trade),
		Description:  it.Description,
		Photos:       it.Photos,
		Address:      it.Address,
		Lat:          it.Lat,
		Lng:          it.Lng,
		Status:       entities.JobStatus(it.Status),
		IsASAP:       it.IsASAP,
		Estimate: entities.Estimate{
			OriginalAmountCents: it.OriginalAmountCents,
			CurrentAmountCents:  it.CurrentAmountCents,
			Currency:            it.Currency,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.ScheduledAt != "" {
		t := parseTime(it.ScheduledAt)
		j.ScheduledAt = &t
	}
	return j
}
