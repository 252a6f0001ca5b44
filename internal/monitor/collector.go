package monitor

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/c2h5oh/datasize"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// DefaultHistorySize is the default number of samples retained per metric.
const DefaultHistorySize = 20

// DefaultSourceTimeout bounds a single MetricsSource or ProcessSource call.
const DefaultSourceTimeout = 1500 * time.Millisecond

// Collector samples a MetricsSource once per tick and owns one ring buffer per
// metric kind. Nothing outside the collector writes to its buffers.
type Collector struct {
	source  MetricsSource
	timeout time.Duration
	log     logger.Logger
	now     func() time.Time

	// Built once in NewCollector and never reassigned; each buffer guards itself.
	buffers map[MetricKind]*RingBuffer[Sample]
}

// NewCollector creates a collector with history capacity size per metric.
func NewCollector(source MetricsSource, size int) *Collector {
	if size <= 0 {
		size = DefaultHistorySize
	}
	buffers := make(map[MetricKind]*RingBuffer[Sample], len(MetricKinds))
	for _, kind := range MetricKinds {
		buffers[kind] = NewRingBuffer[Sample](size)
	}
	return &Collector{
		source:  source,
		timeout: DefaultSourceTimeout,
		log:     logger.Noop(),
		now:     time.Now,
		buffers: buffers,
	}
}

// SetTimeout sets the per-call bound on the metrics source.
func (c *Collector) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.timeout = timeout
	}
}

// SetLogger sets the logger for non-fatal sampling events.
func (c *Collector) SetLogger(l logger.Logger) {
	if l != nil {
		c.log = l
	}
}

// Tick samples the source once and pushes one sample per metric kind.
// On failure nothing is pushed and an ErrSource error is returned; history
// simply does not grow this tick.
func (c *Collector) Tick(ctx context.Context) error {
	reading, err := callWithTimeout(ctx, c.timeout, c.source.Sample)
	if err != nil {
		c.log.Warn("metrics source unavailable, skipping sample: %v", err)
		return errors.Wrap(err, "Metrics source unavailable")
	}

	values, err := convertReading(reading)
	if err != nil {
		c.log.Warn("discarding metrics reading: %s", errors.Summary(err))
		return err
	}

	ts := c.now()
	for _, kind := range MetricKinds {
		c.buffers[kind].Push(Sample{Timestamp: ts, Value: values[kind]})
	}
	return nil
}

// History returns the stored values for kind, oldest first.
func (c *Collector) History(kind MetricKind) []float64 {
	samples := c.Samples(kind)
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}

// Samples returns the stored samples for kind, oldest first.
func (c *Collector) Samples(kind MetricKind) []Sample {
	buf, ok := c.buffers[kind]
	if !ok {
		return []Sample{}
	}
	return buf.Snapshot()
}

// Latest returns the newest sample for kind.
func (c *Collector) Latest(kind MetricKind) (Sample, bool) {
	buf, ok := c.buffers[kind]
	if !ok {
		return Sample{}, false
	}
	last := buf.Last(1)
	if len(last) == 0 {
		return Sample{}, false
	}
	return last[0], true
}

// Len returns the number of stored samples for kind.
func (c *Collector) Len(kind MetricKind) int {
	buf, ok := c.buffers[kind]
	if !ok {
		return 0
	}
	return buf.Len()
}

// Capacity returns the history capacity shared by all metrics.
func (c *Collector) Capacity() int {
	return c.buffers[KindCPU].Cap()
}

// NetworkRate returns network throughput in MB/s from the two newest network
// samples. Returns 0 with fewer than two samples or when the counter went
// backwards (interface reset).
func (c *Collector) NetworkRate() float64 {
	last := c.buffers[KindNetwork].Last(2)
	if len(last) < 2 {
		return 0
	}
	elapsed := last[1].Timestamp.Sub(last[0].Timestamp).Seconds()
	delta := last[1].Value - last[0].Value
	if elapsed <= 0 || delta < 0 {
		return 0
	}
	return delta / elapsed
}

// convertReading validates a reading and converts it to stored values:
// percentages clamped to [0,100] and the network counter in MB.
func convertReading(r MetricsReading) (map[MetricKind]float64, error) {
	percents := map[MetricKind]float64{
		KindCPU:    r.CPUPercent,
		KindMemory: r.MemoryPercent,
		KindDisk:   r.DiskPercent,
	}
	values := make(map[MetricKind]float64, len(MetricKinds))
	for kind, v := range percents {
		if math.IsNaN(v) {
			return nil, errors.New(errors.ErrSource, fmt.Sprintf("Metrics source unavailable: %s reading is NaN", kind), "")
		}
		values[kind] = clampPercent(v)
	}
	values[KindNetwork] = bytesToMB(r.NetworkBytes)
	return values, nil
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// bytesToMB converts a byte count to mebibytes.
func bytesToMB(b uint64) float64 {
	return datasize.ByteSize(b).MBytes()
}
