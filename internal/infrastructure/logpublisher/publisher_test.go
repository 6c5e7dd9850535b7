package logpublisher_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/internal/domain/service"
	"github.com/bibbank/eligibility-service/internal/infrastructure/logpublisher"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	pub := logpublisher.New(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := testutil.ValidRequest()
	resp, err := service.NewEligibilityEngine().Evaluate(req, testutil.Catalog())
	require.NoError(t, err)
	evt := event.NewEligibilityEvaluated(uuid.New(), req, resp)

	require.NoError(t, pub.Publish(context.Background(), evt))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "domain event", line["msg"])
	assert.Equal(t, event.EligibilityEvaluatedType, line["event_type"])
	assert.Equal(t, evt.EventID().String(), line["event_id"])

	data, ok := line["data"].(map[string]any)
	require.True(t, ok, "event body is logged as JSON")
	assert.Equal(t, "personal_loan", data["product_id"])
}
