package usecase

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/bibbank/eligibility-service/internal/application/usecase")
