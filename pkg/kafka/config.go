package kafka

import "time"

// Config holds Kafka connection parameters.
type Config struct {
	ClientID string

	// SASLMechanism is "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512".
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// BatchTimeout bounds how long a partial batch waits before it is sent.
	// Zero selects 10ms.
	BatchTimeout time.Duration

	// TLS enables TLS for broker connections.
	TLS         bool
	SASLEnabled bool
}
