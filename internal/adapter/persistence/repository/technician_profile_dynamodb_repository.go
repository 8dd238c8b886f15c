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

const defaultTechnicianProfilesTableName = "technician_profiles"

type technicianProfileItem struct {
	UserID             string   `dynamodbav:"user_id"`
	Trades             []string `dynamodbav:"trades,omitempty"`
	OnlineStatus       bool     `dynamodbav:"online_status"`
	CurrentLat         *float64 `dynamodbav:"current_lat,omitempty"`
	CurrentLng         *float64 `dynamodbav:"current_lng,omitempty"`
	ServiceRadiusKm    float64  `dynamodbav:"service_radius_km"`
	VerificationStatus string   `dynamodbav:"verification_status"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// TechnicianProfileDynamoRepository persists the availability projection.
//
// Table requirements:
//   - PK: user_id (string)
//
// SetOnline/SetLocation upsert so a technician's very first status report
// creates the row; trades, radius and verification get safe defaults and are
// otherwise owned by the external back-office flow.

type TechnicianProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianProfileRepository = (*TechnicianProfileDynamoRepository)(nil)

const defaultServiceRadiusKm = 20.0

func NewTechnicianProfileDynamoRepository(ddb *dynamodb.Client) *TechnicianProfileDynamoRepository {
	return &TechnicianProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECHNICIAN_PROFILES_TABLE", defaultTechnicianProfilesTableName),
	}
}

func (r *TechnicianProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.TechnicianProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.TechnicianProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.TechnicianProfile{}, nil
	}

	var it technicianProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TechnicianProfile{}, err
	}
	return fromTechnicianProfileItem(it), nil
}

func (r *TechnicianProfileDynamoRepository) SetOnline(ctx context.Context, userID string, online bool) (entities.TechnicianProfile, error) {
	return r.upsert(ctx, userID, "SET #online_status = :v, #updated_at = :updated_at", map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberBOOL{Value: online},
	}, map[string]string{
		"#online_status": "online_status",
	})
}

func (r *TechnicianProfileDynamoRepository) SetLocation(ctx context.Context, userID string, lat, lng float64) (entities.TechnicianProfile, error) {
	return r.upsert(ctx, userID, "SET #current_lat = :lat, #current_lng = :lng, #updated_at = :updated_at", map[string]types.AttributeValue{
		":lat": &types.AttributeValueMemberN{Value: formatFloat(lat)},
		":lng": &types.AttributeValueMemberN{Value: formatFloat(lng)},
	}, map[string]string{
		"#current_lat": "current_lat",
		"#current_lng": "current_lng",
	})
}

func (r *TechnicianProfileDynamoRepository) upsert(
	ctx context.Context,
	userID string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.TechnicianProfile, error) {
	// Defaults applied on first write only.
	updateExpr += ", #verification_status = if_not_exists(#verification_status, :pending)" +
		", #service_radius_km = if_not_exists(#service_radius_km, :default_radius)"

	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.VerificationPending)}
	values[":default_radius"] = &types.AttributeValueMemberN{Value: formatFloat(defaultServiceRadiusKm)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#updated_at":          "updated_at",
			"#verification_status": "verification_status",
			"#service_radius_km":   "service_radius_km",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.TechnicianProfile{}, err
	}

	var it technicianProfileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TechnicianProfile{}, err
	}
	return fromTechnicianProfileItem(it), nil
}

func (r *TechnicianProfileDynamoRepository) ListOnlineByTrade(ctx context.Context, trade entities.Trade) ([]entities.TechnicianProfile, error) {
	return r.scanOnline(ctx,
		"#online_status = :true AND #verification_status <> :rejected AND attribute_exists(#current_lat) AND contains(#trades, :trade)",
		map[string]types.AttributeValue{
			":trade": &types.AttributeValueMemberS{Value: string(trade)},
		},
		map[string]string{
			"#trades": "trades",
		},
	)
}

func (r *TechnicianProfileDynamoRepository) ListOnline(ctx context.Context) ([]entities.TechnicianProfile, error) {
	return r.scanOnline(ctx,
		"#online_status = :true AND #verification_status <> :rejected AND attribute_exists(#current_lat)",
		nil, nil,
	)
}

func (r *TechnicianProfileDynamoRepository) scanOnline(
	ctx context.Context,
	filterExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) ([]entities.TechnicianProfile, error) {
	if values == nil {
		values = map[string]types.AttributeValue{}
	}
	values[":true"] = &types.AttributeValueMemberBOOL{Value: true}
	values[":rejected"] = &types.AttributeValueMemberS{Value: string(entities.VerificationRejected)}

	var profiles []entities.TechnicianProfile

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#online_status":       "online_status",
			"#verification_status": "verification_status",
			"#current_lat":         "current_lat",
		}),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []technicianProfileItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			profiles = append(profiles, fromTechnicianProfileItem(it))
		}
	}
	return profiles, nil
}

func fromTechnicianProfileItem(it technicianProfileItem) entities.TechnicianProfile {
	trades := make([]entities.Trade, 0, len(it.Trades))
	for _, t := range it.Trades {
		trades = append(trades, entities.Trade(t))
	}
	return entities.TechnicianProfile{
		UserID:             it.UserID,
		Trades:             trades,
		OnlineStatus:       it.OnlineStatus,
		CurrentLat:         it.CurrentLat,
		CurrentLng:         it.CurrentLng,
		ServiceRadiusKm:    it.ServiceRadiusKm,
		VerificationStatus: entities.VerificationStatus(it.VerificationStatus),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
