package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const defaultBatchTimeout = 10 * time.Millisecond

// Message represents a Kafka message.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Producer wraps kafka-go writers, one per topic, sharing a transport.
type Producer struct {
	transport    *kafkago.Transport
	writers      map[string]*kafkago.Writer
	brokers      []string
	batchTimeout time.Duration
	mu           sync.Mutex
}

// NewProducer creates a Producer. It fails only when the SASL settings are
// unusable; brokers are not contacted until the first publish.
func NewProducer(cfg Config) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}

	transport := &kafkago.Transport{ClientID: cfg.ClientID}
	if cfg.TLS {
		transport.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.SASLEnabled {
		mechanism, err := resolveSASL(cfg)
		if err != nil {
			return nil, err
		}
		transport.SASL = mechanism
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}

	return &Producer{
		transport:    transport,
		writers:      make(map[string]*kafkago.Writer),
		brokers:      cfg.Brokers,
		batchTimeout: batchTimeout,
	}, nil
}

// Publish sends messages to the specified topic.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}
	w := p.getOrCreateWriter(topic)

	if err := w.WriteMessages(ctx, toKafkaMessages(messages)...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close closes all writers.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for topic %s: %w", topic, err))
		}
	}
	p.writers = make(map[string]*kafkago.Writer)
	p.transport.CloseIdleConnections()
	return errors.Join(errs...)
}

// getOrCreateWriter lazily creates a writer for a topic.
func (p *Producer) getOrCreateWriter(topic string) *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(p.brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           p.batchTimeout,
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		Transport:              p.transport,
	}
	p.writers[topic] = w
	return w
}

func toKafkaMessages(messages []Message) []kafkago.Message {
	out := make([]kafkago.Message, 0, len(messages))
	for _, msg := range messages {
		km := kafkago.Message{
			Key:   msg.Key,
			Value: msg.Value,
		}
		for k, v := range msg.Headers {
			km.Headers = append(km.Headers, kafkago.Header{
				Key:   k,
				Value: []byte(v),
			})
		}
		out = append(out, km)
	}
	return out
}
