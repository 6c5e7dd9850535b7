//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/infrastructure/kafka"
	"github.com/bibbank/eligibility-service/pkg/events"
	pkgkafka "github.com/bibbank/eligibility-service/pkg/kafka"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

func TestEventPublisher_Broker(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	kc := testutil.NewKafkaContainer(ctx, t)
	const topic = "eligibility.events"
	kc.CreateTopic(ctx, t, topic)

	producer, err := pkgkafka.NewProducer(pkgkafka.Config{Brokers: kc.Brokers, ClientID: "eligibility-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = producer.Close() })

	pub := kafka.NewEventPublisher(producer, topic, slog.New(slog.NewTextHandler(io.Discard, nil)))
	evt := evaluatedEvent(t)
	require.NoError(t, pub.Publish(ctx, evt))

	msgs := kc.ReadMessages(ctx, t, topic, 1)
	assert.Equal(t, evt.AggregateID().String(), string(msgs[0].Key))

	var env events.Envelope
	require.NoError(t, json.Unmarshal(msgs[0].Value, &env))
	assert.Equal(t, evt.EventID(), env.EventID)
	assert.Equal(t, evt.EventType(), env.EventType)
}
