package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	Steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Steps: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.Steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps
}

var _ Measure = (*DefaultMeasure)(nil)
