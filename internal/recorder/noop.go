package recorder

import "context"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPriceTick(_ *PriceTick) error { return nil }
func (n *NoopRecorder) RecordExchangeRate(_ *RateEvent) error { return nil }
func (n *NoopRecorder) RecordPrediction(_ *PredictionEvent) error { return nil }
func (n *NoopRecorder) Close() error { return nil }

func (n *NoopRecorder) RecentPredictions(context.Context, int) ([]PredictionEvent, error) {
	return nil, nil
}
