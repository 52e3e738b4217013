// Package pstats summarizes duration samples into min, max, mean and
// percentiles.
package pstats

import (
	"math"
	"sort"
	"time"

	"github.com/cyberdelia/astrolabe/errors"
	"github.com/cyberdelia/astrolabe/instant"
)

type PStats struct {
	Count int
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	// percentile levels desired as integers: 75 = P75, 99 = P99, 999 = P99.9, etc.
	Pctls []int
	// percentiles values (reads nicely, eg, P[99] etc).
	P map[int]time.Duration
}

type DurationSlice []time.Duration

func (ds DurationSlice) Len() int           { return len(ds) }
func (ds DurationSlice) Less(i, j int) bool { return ds[i] < ds[j] }
func (ds DurationSlice) Swap(i, j int)      { ds[i], ds[j] = ds[j], ds[i] }

// Note provided samples are sorted in place.
func NewPStats(samples []time.Duration, pctls []int) (*PStats, error) {
	if len(samples) < 1 {
		return nil, errors.New("NewPStats: no samples provided.")
	}
	if len(pctls) < 1 {
		return nil, errors.New("NewPStats: empty pctls provided.")
	}
	prevPctl := 0
	for _, pctl := range pctls {
		if pctl <= prevPctl {
			return nil, errors.Newf("NewPStats: invalid pctls provided: %v", pctls)
		}
		prevPctl = pctl
	}

	pstats := &PStats{
		Count: len(samples),
		Pctls: make([]int, len(pctls)),
		P:     make(map[int]time.Duration),
	}
	copy(pstats.Pctls, pctls)

	sort.Sort(DurationSlice(samples))
	pstats.Min = samples[0]
	pstats.Max = samples[len(samples)-1]

	var total float64
	for _, s := range samples {
		total += float64(s)
	}
	pstats.Mean = time.Duration(total / float64(len(samples)))

	n := len(samples)
	for _, pctl := range pctls {
		var den float64
		if pctl < 100 {
			den = 100.0
		} else {
			den = math.Pow(10, math.Ceil(math.Log10(float64(pctl))))
		}
		si := int(math.Floor(float64(n-1) * float64(pctl) / den))
		pstats.P[pctl] = samples[si]
	}
	return pstats, nil
}

// Deltas returns the durations between consecutive readings, which must
// come from a source whose conversion factor is factor.  Returns an error
// naming the first reading which went backwards.
func Deltas(readings []instant.Instant, factor float64) ([]time.Duration, error) {
	if len(readings) < 2 {
		return nil, nil
	}
	deltas := make([]time.Duration, 0, len(readings)-1)
	for i := 1; i < len(readings); i++ {
		if readings[i] < readings[i-1] {
			return nil, errors.Newf(
				"reading %d (%d) precedes reading %d (%d)",
				i, readings[i], i-1, readings[i-1])
		}
		deltas = append(
			deltas,
			instant.ElapsedWithFactor(readings[i-1], readings[i], factor))
	}
	return deltas, nil
}
