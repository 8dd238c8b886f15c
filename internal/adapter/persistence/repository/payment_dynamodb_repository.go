package repository

import (
	"context"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	JobID             string `dynamodbav:"job_id"`
	AmountCents       int64  `dynamodbav:"amount_cents"`
	Currency          string `dynamodbav:"currency"`
	Status            string `dynamodbav:"status"`
	Method            string `dynamodbav:"method"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string `dynamodbav:"provider_status,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists payment-intent rows.
//
// Table requirements:
//   - PK: job_id (string)
//
// Using the job id as PK guarantees one payment per job; repeated intents
// replace the provider reference.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := paymentItem{
		JobID:             p.JobID,
		AmountCents:       p.AmountCents,
		Currency:          p.Currency,
		Status:            string(p.Status),
		Method:            string(p.Method),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return entities.Payment{
		JobID:             it.JobID,
		AmountCents:       it.AmountCents,
		Currency:          it.Currency,
		Status:            entities.PaymentStatus(it.Status),
		Method:            entities.PaymentMethod(it.Method),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}, nil
}
