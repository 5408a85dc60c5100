package tracer

// DefaultEndpoint is the local OTLP/HTTP collector (Jaeger accepts OTLP on 4318)
const DefaultEndpoint = "localhost:4318"
