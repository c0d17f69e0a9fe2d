package tracing

import "go.opentelemetry.io/otel"

// GlobalTracer is the tracer all SYSTM API spans are started from.
var GlobalTracer = otel.Tracer("systm-mcp")
