package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/reusee/dscope"
	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/census"
)

const namespace = "soup"

type Metrics struct {
	Registry       *prometheus.Registry
	Epoch          prometheus.Gauge
	Unique         prometheus.Gauge
	MaxCount       prometheus.Gauge
	Novel          prometheus.Gauge
	Seen           prometheus.Gauge
	Replicators    prometheus.Counter
	TemplateFirst  prometheus.Gauge
	TemplateSecond prometheus.Gauge
}

func New() *Metrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Epoch:    gauge("epoch", "Last reported epoch."),
		Unique:   gauge("unique_genomes", "Distinct genomes at the last report."),
		MaxCount: gauge("dominant_count", "Occurrences of the dominant genome at the last report."),
		Novel:    gauge("novel_genomes", "Genomes not seen at any earlier report."),
		Seen:     gauge("seen_genomes", "Distinct genomes seen across all reports."),
		TemplateFirst: gauge("assay_template_first_rate",
			"Copy success rate of the last assayed replicator as first operand."),
		TemplateSecond: gauge("assay_template_second_rate",
			"Copy success rate of the last assayed replicator as second operand."),
		Replicators: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replicators_total",
			Help:      "Reports whose dominant genome crossed the replicator threshold.",
		}),
	}
	m.Registry.MustRegister(
		m.Epoch,
		m.Unique,
		m.MaxCount,
		m.Novel,
		m.Seen,
		m.Replicators,
		m.TemplateFirst,
		m.TemplateSecond,
	)
	return m
}

func (m *Metrics) ObserveCensus(epoch int, stats census.Stats, novel int, seen int) {
	m.Epoch.Set(float64(epoch))
	m.Unique.Set(float64(stats.Unique))
	m.MaxCount.Set(float64(stats.MaxCount))
	m.Novel.Set(float64(novel))
	m.Seen.Set(float64(seen))
}

func (m *Metrics) ObserveAssay(rates assay.Rates) {
	m.Replicators.Inc()
	m.TemplateFirst.Set(rates.TemplateFirst)
	m.TemplateSecond.Set(rates.TemplateSecond)
}

// WriteFile writes all metrics in the text exposition format, for the node
// exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

type Module struct {
	dscope.Module
}

func (Module) Metrics() *Metrics {
	return New()
}
