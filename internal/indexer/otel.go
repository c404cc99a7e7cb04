package indexer

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/genie-archive/scn/internal/indexer"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
