package coordination

import (
	"context"
	"encoding/json"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const DefaultSettlementChannel = "payments.settled"

// SettlementMessage is published once per payment that leaves PENDING.
type SettlementMessage struct {
	PaymentID  string     `json:"payment_id"`
	LeaseID    string     `json:"lease_id"`
	Status     string     `json:"status"`
	Amount     string     `json:"amount"`
	DueDate    string     `json:"due_date"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	GatewayRef string     `json:"gateway_ref,omitempty"`
}

func NewSettlementMessage(p entities.Payment) SettlementMessage {
	return SettlementMessage{
		PaymentID:  p.ID,
		LeaseID:    p.LeaseID,
		Status:     string(p.Status),
		Amount:     p.Amount.StringFixed(2),
		DueDate:    p.DueDate.UTC().Format("2006-01-02"),
		PaidAt:     p.PaidAt,
		GatewayRef: p.GatewayRef,
	}
}

type RedisSettlementNotifier struct {
	client  *redis.Client
	channel string
}

var _ interfaces.ISettlementNotifier = (*RedisSettlementNotifier)(nil)

func NewRedisSettlementNotifier(client *redis.Client, channel string) *RedisSettlementNotifier {
	if channel == "" {
		channel = DefaultSettlementChannel
	}
	return &RedisSettlementNotifier{client: client, channel: channel}
}

func (n *RedisSettlementNotifier) PaymentSettled(ctx context.Context, p entities.Payment) error {
	body, err := json.Marshal(NewSettlementMessage(p))
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, n.channel, body).Err()
}

// LogSettlementNotifier only records settlements in the log.
type LogSettlementNotifier struct{}

var _ interfaces.ISettlementNotifier = LogSettlementNotifier{}

func (LogSettlementNotifier) PaymentSettled(ctx context.Context, p entities.Payment) error {
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"payment_id": p.ID,
		"lease_id":   p.LeaseID,
		"status":     p.Status,
	}).Info("[payment][notify] payment settled")
	return nil
}
