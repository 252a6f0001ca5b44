package server

import (
	"bytes"
	"net/http"
	"strconv"

	prom "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

const (
	metricPrefix     = "procdash_"
	textContentType  = "text/plain; version=0.0.4; charset=utf-8"
	labelProcessName = "name"
	labelProcessPID  = "pid"
)

var metricNames = map[monitor.MetricKind]struct{ name, help string }{
	monitor.KindCPU:     {"cpu_percent", "Latest CPU utilization in percent."},
	monitor.KindMemory:  {"memory_percent", "Latest memory utilization in percent."},
	monitor.KindDisk:    {"disk_percent", "Latest disk utilization in percent."},
	monitor.KindNetwork: {"network_megabytes", "Cumulative network traffic in MB since boot."},
}

func gauge(name, help string, metrics ...*prom.Metric) *prom.MetricFamily {
	return &prom.MetricFamily{
		Name:   proto.String(metricPrefix + name),
		Help:   proto.String(help),
		Type:   prom.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}

func gaugeValue(v float64, labels ...*prom.LabelPair) *prom.Metric {
	return &prom.Metric{
		Label: labels,
		Gauge: &prom.Gauge{Value: proto.Float64(v)},
	}
}

func label(name, value string) *prom.LabelPair {
	return &prom.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}

// metricFamilies converts the engine's current state into exposition families.
// Metrics without a sample yet are omitted.
func (s *Server) metricFamilies() []*prom.MetricFamily {
	var families []*prom.MetricFamily

	for _, kind := range monitor.MetricKinds {
		latest, ok := s.engine.Latest(kind)
		if !ok {
			continue
		}
		m := metricNames[kind]
		families = append(families, gauge(m.name, m.help, gaugeValue(latest.Value)))
	}

	families = append(families,
		gauge("network_rate_megabytes_per_second", "Network throughput between the last two samples.",
			gaugeValue(s.engine.NetworkRate())),
		gauge("processes", "Processes seen in the last snapshot.",
			gaugeValue(float64(s.engine.ProcessCount()))),
		&prom.MetricFamily{
			Name: proto.String(metricPrefix + "ticks_total"),
			Help: proto.String("Sampling cycles completed."),
			Type: prom.MetricType_COUNTER.Enum(),
			Metric: []*prom.Metric{{
				Counter: &prom.Counter{Value: proto.Float64(float64(s.engine.TickCount()))},
			}},
		},
	)

	procs := s.engine.Processes()
	if len(procs) > 0 {
		cpu := make([]*prom.Metric, 0, len(procs))
		mem := make([]*prom.Metric, 0, len(procs))
		for _, p := range procs {
			pid := strconv.FormatUint(uint64(p.PID), 10)
			cpu = append(cpu, gaugeValue(p.CPUPercent, label(labelProcessName, p.Name), label(labelProcessPID, pid)))
			mem = append(mem, gaugeValue(p.MemoryMB, label(labelProcessName, p.Name), label(labelProcessPID, pid)))
		}
		families = append(families,
			gauge("process_cpu_percent", "CPU usage of the displayed processes.", cpu...),
			gauge("process_memory_megabytes", "Resident memory of the displayed processes.", mem...),
		)
	}
	return families
}

func (s *Server) metrics(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	for _, family := range s.metricFamilies() {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			s.log.Error("encoding metric %s: %v", family.GetName(), err)
			s.writeError(w, http.StatusInternalServerError, "encoding metrics failed")
			return
		}
	}
	w.Header().Set("Content-Type", textContentType)
	_, _ = w.Write(buf.Bytes())
}
