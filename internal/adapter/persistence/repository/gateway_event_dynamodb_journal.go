package repository

import (
	"context"
	"errors"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultGatewayEventsTable = "gateway_events"
	gatewayEventsPaymentIndex = "payment_id-index"
	tableReadyTimeout         = 2 * time.Minute
)

type gatewayEventItem struct {
	ID         string `dynamodbav:"id"`
	Provider   string `dynamodbav:"provider"`
	EventID    string `dynamodbav:"event_id"`
	EventType  string `dynamodbav:"event_type"`
	PaymentID  string `dynamodbav:"payment_id,omitempty"`
	Outcome    string `dynamodbav:"outcome"`
	Payload    string `dynamodbav:"payload,omitempty"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// GatewayEventDynamoJournal journals processor callbacks in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "<provider>#<event_id>")
//   - GSI: payment_id-index (PK: payment_id, SK: received_at)
//
// Events without a payment id are stored without the payment_id attribute
// and therefore stay out of the index.

type GatewayEventDynamoJournal struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayEventJournal = (*GatewayEventDynamoJournal)(nil)

func NewGatewayEventDynamoJournal(ddb *dynamodb.Client, tableName string) *GatewayEventDynamoJournal {
	if tableName == "" {
		tableName = DefaultGatewayEventsTable
	}
	return &GatewayEventDynamoJournal{ddb: ddb, tableName: tableName}
}

func (j *GatewayEventDynamoJournal) Record(ctx context.Context, rec entities.GatewayEventRecord) (bool, error) {
	av, err := attributevalue.MarshalMap(toGatewayEventItem(rec))
	if err != nil {
		return false, err
	}

	_, err = j.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(j.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (j *GatewayEventDynamoJournal) ListByPayment(ctx context.Context, paymentID string) ([]entities.GatewayEventRecord, error) {
	out := make([]entities.GatewayEventRecord, 0)
	var startKey map[string]types.AttributeValue
	for {
		page, err := j.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(j.tableName),
			IndexName:              aws.String(gatewayEventsPaymentIndex),
			KeyConditionExpression: aws.String("payment_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: paymentID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Items {
			var it gatewayEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromGatewayEventItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

// EnsureTable creates the journal table and its index when missing and waits
// until it is active. Used against DynamoDB Local and fresh environments.
func (j *GatewayEventDynamoJournal) EnsureTable(ctx context.Context) error {
	_, err := j.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(j.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	_, err = j.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(j.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("payment_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("received_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(gatewayEventsPaymentIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("payment_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("received_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return err
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(j.ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(j.tableName)}, tableReadyTimeout)
}

func gatewayEventKey(provider, eventID string) string {
	return provider + "#" + eventID
}

func toGatewayEventItem(rec entities.GatewayEventRecord) gatewayEventItem {
	return gatewayEventItem{
		ID:         gatewayEventKey(rec.Provider, rec.EventID),
		Provider:   rec.Provider,
		EventID:    rec.EventID,
		EventType:  rec.EventType,
		PaymentID:  rec.PaymentID,
		Outcome:    string(rec.Outcome),
		Payload:    string(rec.Payload),
		ReceivedAt: formatTime(rec.ReceivedAt),
	}
}

func fromGatewayEventItem(it gatewayEventItem) entities.GatewayEventRecord {
	return entities.GatewayEventRecord{
		Provider:   it.Provider,
		EventID:    it.EventID,
		EventType:  it.EventType,
		PaymentID:  it.PaymentID,
		Outcome:    entities.GatewayOutcome(it.Outcome),
		Payload:    []byte(it.Payload),
		ReceivedAt: parseTime(it.ReceivedAt),
	}
}
