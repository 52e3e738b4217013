// Package stats defines the metric types timing code reports into, with
// noop, composite and Prometheus backed factories.
package stats

import (
	"github.com/cyberdelia/astrolabe/instant"
)

type CounterStat interface {
	Inc()
	Add(float64)
}

type GaugeStat interface {
	Set(float64)
	Get() float64

	Inc()
	Add(float64)

	Dec()
	Sub(float64)
}

// SummaryStat receives observations, typically durations in seconds.
type SummaryStat interface {
	Observe(float64)
}

type Factory interface {
	NewCounter(
		metric string,
		tags map[string]string) CounterStat

	NewGauge(
		metric string,
		tags map[string]string) GaugeStat

	NewSummary(
		metric string,
		tags map[string]string) SummaryStat
}

// ObserveSince records the seconds elapsed since start, read from the
// system clock, into summary.
func ObserveSince(summary SummaryStat, start instant.Instant) error {
	end, err := instant.Now()
	if err != nil {
		return err
	}
	summary.Observe(instant.Seconds(start, end))
	return nil
}
