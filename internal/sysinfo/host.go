package sysinfo

import (
	"context"

	"emperror.dev/errors"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// DefaultDiskPath is the mount point whose usage is reported by default.
const DefaultDiskPath = "/"

// HostSource reads host-wide utilization counters.
type HostSource struct {
	diskPath string
	log      logger.Logger
}

// NewHostSource creates a source reporting disk usage for diskPath.
func NewHostSource(diskPath string) *HostSource {
	if diskPath == "" {
		diskPath = DefaultDiskPath
	}
	return &HostSource{diskPath: diskPath, log: logger.Noop()}
}

// SetLogger sets the logger.
func (h *HostSource) SetLogger(l logger.Logger) {
	if l != nil {
		h.log = l
	}
}

// Sample implements monitor.MetricsSource. CPU usage is measured since the
// previous call. Any counter failing fails the whole reading.
func (h *HostSource) Sample(ctx context.Context) (monitor.MetricsReading, error) {
	var reading monitor.MetricsReading
	var errs []error

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, errors.WrapIf(err, "cpu"))
	} else if len(pct) == 0 {
		errs = append(errs, errors.New("cpu: no counters reported"))
	} else {
		reading.CPUPercent = pct[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, errors.WrapIf(err, "memory"))
	} else {
		reading.MemoryPercent = vm.UsedPercent
	}

	if usage, err := disk.UsageWithContext(ctx, h.diskPath); err != nil {
		errs = append(errs, errors.WithDetails(errors.WrapIf(err, "disk"), "path", h.diskPath))
	} else {
		reading.DiskPercent = usage.UsedPercent
	}

	if counters, err := net.IOCountersWithContext(ctx, false); err != nil {
		errs = append(errs, errors.WrapIf(err, "network"))
	} else {
		for _, c := range counters {
			reading.NetworkBytes += c.BytesSent + c.BytesRecv
		}
	}

	if err := errors.Combine(errs...); err != nil {
		h.log.Debug("host sample failed: %v", err)
		return monitor.MetricsReading{}, err
	}
	return reading, nil
}
