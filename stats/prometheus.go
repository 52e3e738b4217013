package stats

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Quantiles reported by summaries created by the Prometheus factory.
var DefaultObjectives = map[float64]float64{
	0.5:  0.05,
	0.9:  0.01,
	0.99: 0.001,
}

type prometheusFactory struct {
	reg       prometheus.Registerer
	namespace string
}

// NewPrometheusFactory returns a factory registering its metrics with reg.
// Tags become constant labels.  Asking twice for the same metric and tags
// returns the collector registered first.
func NewPrometheusFactory(
	reg prometheus.Registerer,
	namespace string) Factory {

	return &prometheusFactory{reg: reg, namespace: namespace}
}

func (f *prometheusFactory) register(c prometheus.Collector) prometheus.Collector {
	if err := f.reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

func (f *prometheusFactory) NewCounter(
	metric string,
	tags map[string]string) CounterStat {

	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   f.namespace,
		Name:        metric,
		Help:        metric,
		ConstLabels: tags,
	})
	return f.register(c).(prometheus.Counter)
}

func (f *prometheusFactory) NewGauge(
	metric string,
	tags map[string]string) GaugeStat {

	g := &promGauge{
		Gauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   f.namespace,
			Name:        metric,
			Help:        metric,
			ConstLabels: tags,
		}),
	}
	return f.register(g).(*promGauge)
}

func (f *prometheusFactory) NewSummary(
	metric string,
	tags map[string]string) SummaryStat {

	s := prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace:   f.namespace,
		Name:        metric,
		Help:        metric,
		ConstLabels: tags,
		Objectives:  DefaultObjectives,
	})
	return f.register(s).(prometheus.Summary)
}

// promGauge mirrors the gauge value since prometheus gauges cannot be
// read back.
type promGauge struct {
	prometheus.Gauge

	mu    sync.Mutex
	value float64
}

func (g *promGauge) Set(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
	g.Gauge.Set(v)
}

func (g *promGauge) Get() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

func (g *promGauge) Inc() {
	g.Add(1)
}

func (g *promGauge) Dec() {
	g.Add(-1)
}

func (g *promGauge) Add(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value += v
	g.Gauge.Set(g.value)
}

func (g *promGauge) Sub(v float64) {
	g.Add(-v)
}
