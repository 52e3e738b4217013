package stats

// NoOp discards everything.
var NoOp Factory = noopFactory{}

type noopCounter struct{}

func (noopCounter) Inc()        {}
func (noopCounter) Add(float64) {}

type noopGauge struct{}

func (noopGauge) Inc()         {}
func (noopGauge) Add(float64)  {}
func (noopGauge) Dec()         {}
func (noopGauge) Sub(float64)  {}
func (noopGauge) Set(float64)  {}
func (noopGauge) Get() float64 { return 0 }

type noopSummary struct{}

func (noopSummary) Observe(float64) {}

type noopFactory struct{}

func (noopFactory) NewCounter(string, map[string]string) CounterStat {
	return noopCounter{}
}

func (noopFactory) NewGauge(string, map[string]string) GaugeStat {
	return noopGauge{}
}

func (noopFactory) NewSummary(string, map[string]string) SummaryStat {
	return noopSummary{}
}
