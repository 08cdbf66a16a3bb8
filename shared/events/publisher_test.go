package events

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	b, err := encodeEvent(AccountCreated, ts, AccountCreatedEvent{AccountID: 7, Name: "Alice"})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"account.created","timestamp":"2024-03-01T12:00:00Z","data":{"accountId":7,"name":"Alice"}}`,
		string(b))
}

func TestEncodeEventRejectsUnmarshalable(t *testing.T) {
	_, err := encodeEvent(AccountDeleted, time.Now(), make(chan int))
	assert.Error(t, err)
}

func TestPublishUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	err := NewPublisher(client).Publish(context.Background(), AccountEventsStream, AccountDeleted, AccountDeletedEvent{AccountID: 1})
	assert.ErrorContains(t, err, "failed to publish event")
}
