package testutil

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

// KafkaContainer wraps a testcontainers Kafka instance.
type KafkaContainer struct {
	Container *kafka.KafkaContainer
	Brokers   []string
}

// NewKafkaContainer starts a single-node Kafka broker that is terminated when
// the test finishes.
func NewKafkaContainer(ctx context.Context, t *testing.T) *KafkaContainer {
	t.Helper()

	kafkaContainer, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.6.1",
		kafka.WithClusterID("eligibility-test"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("warning: failed to terminate kafka container: %v", err)
		}
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "kafka brokers")

	return &KafkaContainer{
		Container: kafkaContainer,
		Brokers:   brokers,
	}
}

// CreateTopic creates a single-partition topic.
func (kc *KafkaContainer) CreateTopic(ctx context.Context, t *testing.T, topic string) {
	t.Helper()

	conn, err := kafkago.DialContext(ctx, "tcp", kc.Brokers[0])
	require.NoError(t, err, "dial kafka")
	defer conn.Close()

	require.NoError(t, conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}), "create topic %s", topic)
}

// ReadMessages consumes n messages from the start of topic, failing the test
// if they do not arrive before the context deadline.
func (kc *KafkaContainer) ReadMessages(ctx context.Context, t *testing.T, topic string, n int) []kafkago.Message {
	t.Helper()

	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   kc.Brokers,
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer r.Close()

	out := make([]kafkago.Message, 0, n)
	for len(out) < n {
		msg, err := r.ReadMessage(ctx)
		require.NoError(t, err, "read message %d from %s", len(out), topic)
		out = append(out, msg)
	}
	return out
}
