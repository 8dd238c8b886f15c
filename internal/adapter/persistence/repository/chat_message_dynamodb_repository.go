package repository

import (
	"context"
	"sort"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChatMessagesTableName = "chat_messages"

type chatMessageItem struct {
	ID        string `dynamodbav:"id"`
	JobID     string `dynamodbav:"job_id"`
	SenderID  string `dynamodbav:"sender_id"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ChatMessageDynamoRepository persists in-job chat messages.
//
// Table requirements:
//   - PK: id (string)

type ChatMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChatMessageRepository = (*ChatMessageDynamoRepository)(nil)

func NewChatMessageDynamoRepository(ddb *dynamodb.Client) *ChatMessageDynamoRepository {
	return &ChatMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHAT_MESSAGES_TABLE", defaultChatMessagesTableName),
	}
}

func (r *ChatMessageDynamoRepository) Create(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
	it := chatMessageItem{
		ID:        m.ID,
		JobID:     m.JobID,
		SenderID:  m.SenderID,
		Message:   m.Message,
		CreatedAt: formatTime(m.CreatedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChatMessage{}, err
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
		return entities.ChatMessage{}, err
	}
	return m, nil
}

func (r *ChatMessageDynamoRepository) ListByJobID(ctx context.Context, jobID string, limit int) ([]entities.ChatMessage, error) {
	var messages []entities.ChatMessage

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
		var items []chatMessageItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			messages = append(messages, entities.ChatMessage{
				ID:        it.ID,
				JobID:     it.JobID,
				SenderID:  it.SenderID,
				Message:   it.Message,
				CreatedAt: parseTime(it.CreatedAt),
			})
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
