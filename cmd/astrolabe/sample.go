package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cyberdelia/astrolabe/errors"
	"github.com/cyberdelia/astrolabe/instant"
	"github.com/cyberdelia/astrolabe/interval"
	"github.com/cyberdelia/astrolabe/stats"
	"github.com/cyberdelia/astrolabe/stats/pstats"
)

type sampleConfig struct {
	Count   int
	Workers int
	Pctls   []int
	Metrics bool
}

func (c sampleConfig) Validate() error {
	if c.Count < 2 {
		return errors.Newf("--count must be at least 2, got %d", c.Count)
	}
	if c.Workers < 1 {
		return errors.Newf("--workers must be at least 1, got %d", c.Workers)
	}
	if len(c.Pctls) == 0 {
		return errors.New("--pctls must not be empty")
	}
	return nil
}

type sampleResult struct {
	Deltas  *pstats.PStats
	Elapsed *interval.Interval
}

var sampleCfg = &sampleConfig{}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Read the clock repeatedly and summarize the gaps between readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sampleCfg.Validate(); err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		factory := stats.NewPrometheusFactory(reg, "astrolabe")

		result, err := runSample(cmd.Context(), instant.System, *sampleCfg, factory)
		if err != nil {
			return err
		}
		if err := printSample(cmd.OutOrStdout(), *sampleCfg, result); err != nil {
			return err
		}
		if sampleCfg.Metrics {
			return printMetrics(cmd.OutOrStdout(), reg)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntVarP(&sampleCfg.Count, "count", "n", 10000, "readings per worker")
	sampleCmd.Flags().IntVarP(&sampleCfg.Workers, "workers", "w", 1, "number of concurrent readers")
	sampleCmd.Flags().IntSliceVar(&sampleCfg.Pctls, "pctls", []int{50, 90, 99, 999}, "percentiles to report, 999 is P99.9")
	sampleCmd.Flags().BoolVar(&sampleCfg.Metrics, "metrics", false, "print the collected prometheus metrics")
}

// runSample has every worker read src cfg.Count times.  Each worker's
// readings must be non-decreasing; the gaps between consecutive readings of
// all workers are summarized together.
func runSample(
	ctx context.Context,
	src instant.ClockSource,
	cfg sampleConfig,
	factory stats.Factory) (*sampleResult, error) {

	elapsed, err := interval.StartNew(src)
	if err != nil {
		return nil, err
	}

	workers := factory.NewGauge("sample_workers", nil)
	deltaSummary := factory.NewSummary("sample_delta_seconds", nil)
	factor := src.ConversionFactor()

	perWorker := make([][]time.Duration, cfg.Workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		reads := factory.NewCounter(
			"sample_reads_total",
			map[string]string{"worker": strconv.Itoa(w)})

		eg.Go(func() error {
			workers.Inc()
			defer workers.Dec()

			readings := make([]instant.Instant, cfg.Count)
			for i := range readings {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				now, err := src.Now()
				if err != nil {
					return err
				}
				readings[i] = now
				reads.Inc()
			}

			d, err := pstats.Deltas(readings, factor)
			if err != nil {
				return errors.Wrapf(err, "worker %d saw the clock go backwards", w)
			}
			for _, delta := range d {
				deltaSummary.Observe(delta.Seconds())
			}
			perWorker[w] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if _, _, err := elapsed.Stop(); err != nil {
		return nil, err
	}

	var all []time.Duration
	for _, d := range perWorker {
		all = append(all, d...)
	}
	p, err := pstats.NewPStats(all, cfg.Pctls)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"workers": cfg.Workers,
		"count":   cfg.Count,
		"factor":  factor,
	}).Debug("sampled clock")

	return &sampleResult{Deltas: p, Elapsed: elapsed}, nil
}

// pctlLabel renders a pstats percentile level: 99 is p99, 999 is p99.9.
func pctlLabel(pctl int) string {
	if pctl < 100 {
		return "p" + strconv.Itoa(pctl)
	}
	den := math.Pow(10, math.Ceil(math.Log10(float64(pctl))))
	return "p" + strconv.FormatFloat(float64(pctl)*100/den, 'f', -1, 64)
}

func printSample(w io.Writer, cfg sampleConfig, result *sampleResult) error {
	total, err := result.Elapsed.Duration()
	if err != nil {
		return err
	}
	p := result.Deltas
	if _, err := fmt.Fprintf(
		w,
		"readings=%d workers=%d elapsed=%v\nmin=%v max=%v mean=%v\n",
		cfg.Count*cfg.Workers, cfg.Workers, total, p.Min, p.Max, p.Mean); err != nil {
		return err
	}
	pctls := append([]int(nil), p.Pctls...)
	sort.Ints(pctls)
	for _, pctl := range pctls {
		if _, err := fmt.Fprintf(w, "%s=%v\n", pctlLabel(pctl), p.P[pctl]); err != nil {
			return err
		}
	}
	return nil
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			var labels string
			for _, pair := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", pair.GetName(), pair.GetValue())
			}
			var value string
			switch {
			case m.GetCounter() != nil:
				value = fmt.Sprintf("%g", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				value = fmt.Sprintf("%g", m.GetGauge().GetValue())
			case m.GetSummary() != nil:
				value = fmt.Sprintf(
					"count=%d sum=%g",
					m.GetSummary().GetSampleCount(),
					m.GetSummary().GetSampleSum())
			}
			if _, err := fmt.Fprintf(w, "%s%s %s\n", family.GetName(), labels, value); err != nil {
				return err
			}
		}
	}
	return nil
}
