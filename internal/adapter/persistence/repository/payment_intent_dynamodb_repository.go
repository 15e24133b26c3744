package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentIntentsTableName = "payment_intents"
	processorPaymentIDIndex        = "processor_payment_id-index"
)

type paymentIntentItem struct {
	ExternalReference  string `dynamodbav:"external_reference"`
	ProcessorPaymentID string `dynamodbav:"processor_payment_id,omitempty"`
	Method             string `dynamodbav:"method"`
	Amount             string `dynamodbav:"amount"`
	Description        string `dynamodbav:"description"`
	Status             string `dynamodbav:"status"`
	StatusDetail       string `dynamodbav:"status_detail,omitempty"`
	NotifiedApproved   bool   `dynamodbav:"notified_approved"`
	CreatedAt          string `dynamodbav:"created_at"`
	ExpiresAt          string `dynamodbav:"expires_at,omitempty"`

	PayerEmail            string `dynamodbav:"payer_email"`
	PayerFirstName        string `dynamodbav:"payer_first_name,omitempty"`
	PayerLastName         string `dynamodbav:"payer_last_name,omitempty"`
	PayerIdentType        string `dynamodbav:"payer_identification_type,omitempty"`
	PayerIdentNumber      string `dynamodbav:"payer_identification_number,omitempty"`
	PayerPhoneAreaCode    string `dynamodbav:"payer_phone_area_code,omitempty"`
	PayerPhoneNumber      string `dynamodbav:"payer_phone_number,omitempty"`
	PayerRegistrationDate string `dynamodbav:"payer_registration_date,omitempty"`
	PayerFirstPurchase    bool   `dynamodbav:"payer_first_purchase"`

	// Card token is deliberately never persisted.
	CardInstallments int    `dynamodbav:"card_installments,omitempty"`
	CardIssuerID     string `dynamodbav:"card_issuer_id,omitempty"`

	MPPayloadRaw string `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: external_reference (string)
//   - GSI: processor_payment_id-index (PK: processor_payment_id)
//
// TransitionStatus and MarkNotifiedApproved are conditional updates; the
// condition expression is what serializes concurrent observations of the
// same intent (late webhook vs poll) without any in-process locking.

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error) {
	it := toPaymentIntentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "external_reference",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return p, nil
}

func (r *PaymentIntentDynamoRepository) GetByExternalReference(ctx context.Context, externalReference string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"external_reference": &types.AttributeValueMemberS{Value: externalReference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) GetByProcessorPaymentID(ctx context.Context, processorPaymentID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(processorPaymentIDIndex),
		KeyConditionExpression: aws.String("processor_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: processorPaymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) TransitionStatus(ctx context.Context, externalReference string, from, to entities.IntentStatus, statusDetail string, rawPayload json.RawMessage) (entities.PaymentIntent, bool, error) {
	values := map[string]types.AttributeValue{
		":from":   &types.AttributeValueMemberS{Value: string(from)},
		":to":     &types.AttributeValueMemberS{Value: string(to)},
		":detail": &types.AttributeValueMemberS{Value: statusDetail},
	}
	names := map[string]string{
		"#status":        "status",
		"#status_detail": "status_detail",
	}
	update := "SET #status = :to, #status_detail = :detail"
	if len(rawPayload) > 0 {
		names["#mp_payload_raw"] = "mp_payload_raw"
		values[":raw"] = &types.AttributeValueMemberS{Value: string(rawPayload)}
		update += ", #mp_payload_raw = :raw"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"external_reference": &types.AttributeValueMemberS{Value: externalReference},
		},
		ConditionExpression:       aws.String("attribute_exists(external_reference) AND #status = :from"),
		UpdateExpression:          aws.String(update),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, getErr := r.GetByExternalReference(ctx, externalReference)
			if getErr != nil {
				return entities.PaymentIntent{}, false, getErr
			}
			return current, false, nil
		}
		return entities.PaymentIntent{}, false, err
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntent{}, false, err
	}
	return fromPaymentIntentItem(it), true, nil
}

func (r *PaymentIntentDynamoRepository) MarkNotifiedApproved(ctx context.Context, externalReference string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"external_reference": &types.AttributeValueMemberS{Value: externalReference},
		},
		ConditionExpression: aws.String("attribute_exists(external_reference) AND #notified = :false"),
		UpdateExpression:    aws.String("SET #notified = :true"),
		ExpressionAttributeNames: map[string]string{
			"#notified": "notified_approved",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
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

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	it := paymentIntentItem{
		ExternalReference:     p.ExternalReference,
		ProcessorPaymentID:    p.ProcessorPaymentID,
		Method:                string(p.Method),
		Amount:                p.Amount.StringFixed(2),
		Description:           p.Description,
		Status:                string(p.Status),
		StatusDetail:          p.StatusDetail,
		NotifiedApproved:      p.NotifiedApproved,
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339Nano),
		PayerEmail:            p.Payer.Email,
		PayerFirstName:        p.Payer.FirstName,
		PayerLastName:         p.Payer.LastName,
		PayerIdentType:        p.Payer.Identification.Type,
		PayerIdentNumber:      p.Payer.Identification.Number,
		PayerPhoneAreaCode:    p.Payer.Phone.AreaCode,
		PayerPhoneNumber:      p.Payer.Phone.Number,
		PayerRegistrationDate: p.Payer.RegistrationDate.UTC().Format(time.RFC3339Nano),
		PayerFirstPurchase:    p.Payer.FirstPurchase,
		MPPayloadRaw:          string(p.MPPayloadRaw),
	}
	if p.ExpiresAt != nil {
		it.ExpiresAt = p.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	if p.Card != nil {
		it.CardInstallments = p.Card.Installments
		it.CardIssuerID = p.Card.IssuerID
	}
	return it
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	registrationDate, _ := time.Parse(time.RFC3339Nano, it.PayerRegistrationDate)
	amount, _ := decimal.NewFromString(it.Amount)

	p := entities.PaymentIntent{
		ExternalReference:  it.ExternalReference,
		ProcessorPaymentID: it.ProcessorPaymentID,
		Method:             entities.PaymentMethod(it.Method),
		Amount:             amount,
		Description:        it.Description,
		Status:             entities.IntentStatus(it.Status),
		StatusDetail:       it.StatusDetail,
		NotifiedApproved:   it.NotifiedApproved,
		CreatedAt:          createdAt,
		Payer: entities.Payer{
			Email:     it.PayerEmail,
			FirstName: it.PayerFirstName,
			LastName:  it.PayerLastName,
			Identification: entities.Identification{
				Type:   it.PayerIdentType,
				Number: it.PayerIdentNumber,
			},
			Phone: entities.Phone{
				AreaCode: it.PayerPhoneAreaCode,
				Number:   it.PayerPhoneNumber,
			},
			RegistrationDate: registrationDate,
			FirstPurchase:    it.PayerFirstPurchase,
		},
		MPPayloadRaw: json.RawMessage(it.MPPayloadRaw),
	}
	if it.ExpiresAt != "" {
		if expiresAt, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			p.ExpiresAt = &expiresAt
		}
	}
	if it.CardInstallments > 0 || it.CardIssuerID != "" {
		p.Card = &entities.CardDetails{
			Installments: it.CardInstallments,
			IssuerID:     it.CardIssuerID,
		}
	}
	if it.MPPayloadRaw == "" {
		p.MPPayloadRaw = nil
	}
	return p
}
