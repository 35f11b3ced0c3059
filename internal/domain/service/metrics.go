package service

// MetricsRecorder records domain counters.
type MetricsRecorder interface {
	RecordIdentityEvent(eventType, outcome string)
	RecordAuthorizationDenial(reason string)
}

// NoopMetrics discards all observations.
type NoopMetrics struct{}

func (NoopMetrics) RecordIdentityEvent(string, string) {}

func (NoopMetrics) RecordAuthorizationDenial(string) {}
