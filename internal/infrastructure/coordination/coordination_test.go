package coordination

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"property_manager/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisSweepLock(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	lock := NewRedisSweepLock(client, "")
	other := NewRedisSweepLock(client, DefaultSweepLockKey)

	release, ok, err := lock.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, mr.Exists(DefaultSweepLockKey))

	_, ok, err = other.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	release()
	release()
	require.False(t, mr.Exists(DefaultSweepLockKey))

	releaseOther, ok, err := other.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	releaseOther()
}

func TestRedisSweepLock_ExpiredHolderCannotReleaseSuccessor(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	lock := NewRedisSweepLock(client, "locks:test")

	stale, ok, err := lock.TryLock(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = lock.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	successor, err := mr.Get("locks:test")
	require.NoError(t, err)

	stale()
	got, err := mr.Get("locks:test")
	require.NoError(t, err)
	require.Equal(t, successor, got)
}

func TestRedisSweepLock_Unavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	_, ok, err := NewRedisSweepLock(client, "").TryLock(context.Background(), time.Minute)
	require.Error(t, err)
	require.False(t, ok)
}

func TestLocalSweepLock(t *testing.T) {
	lock := NewLocalSweepLock()

	release, ok, err := lock.TryLock(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = lock.TryLock(context.Background(), 0)
	require.NoError(t, err)
	require.False(t, ok)

	release()
	release()

	again, ok, err := lock.TryLock(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)
	again()
}

func TestRedisSettlementNotifier(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)

	sub := client.Subscribe(ctx, DefaultSettlementChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)
	messages := sub.Channel()

	paidAt := time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC)
	n := NewRedisSettlementNotifier(client, "")
	require.NoError(t, n.PaymentSettled(ctx, entities.Payment{
		ID:         "pay-1",
		LeaseID:    "lease-1",
		Amount:     decimal.RequireFromString("1500.5"),
		DueDate:    time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		PaidAt:     &paidAt,
		Status:     entities.PaymentStatusPaid,
		GatewayRef: "cs_test_1",
	}))

	select {
	case msg := <-messages:
		var got SettlementMessage
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		require.Equal(t, "pay-1", got.PaymentID)
		require.Equal(t, "PAID", got.Status)
		require.Equal(t, "1500.50", got.Amount)
		require.Equal(t, "2024-04-01", got.DueDate)
		require.NotNil(t, got.PaidAt)
		require.True(t, got.PaidAt.Equal(paidAt))
	case <-time.After(2 * time.Second):
		t.Fatal("settlement message not received")
	}
}

func TestLogSettlementNotifier(t *testing.T) {
	require.NoError(t, LogSettlementNotifier{}.PaymentSettled(context.Background(), entities.Payment{ID: "pay-1"}))
}
