package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	msg, err := Encode(Event{Type: ContactCreated, Username: "test", ResourceID: "c1", OccurredAt: at})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, ContactCreated, msg.Type)
	assert.Equal(t, at, msg.Timestamp)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, "contact.created", got["type"])
	assert.Equal(t, "c1", got["resourceId"])
	assert.NotContains(t, got, "contactId")
}

func TestEncode_StampsTime(t *testing.T) {
	msg, err := Encode(Event{Type: UserRegistered, Username: "test"})
	require.NoError(t, err)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: ContactDeleted}))
}
