package sysinfo

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// Signaller implements monitor.ProcessControl. By default it sends SIGTERM;
// with force it sends SIGKILL.
type Signaller struct {
	force bool
	log   logger.Logger
}

// NewSignaller creates a signaller.
func NewSignaller(force bool) *Signaller {
	return &Signaller{force: force, log: logger.Noop()}
}

// SetLogger sets the logger.
func (s *Signaller) SetLogger(l logger.Logger) {
	if l != nil {
		s.log = l
	}
}

// Terminate signals pid. The detail describes the result either way.
func (s *Signaller) Terminate(ctx context.Context, pid uint32) (bool, string) {
	if err := s.signal(ctx, pid); err != nil {
		s.log.Debug("terminate %d: %+v", pid, err)
		return false, err.Error()
	}
	return true, fmt.Sprintf("sent %s to process %d", s.signalName(), pid)
}

func (s *Signaller) signal(ctx context.Context, pid uint32) error {
	pid32, err := toPID32(pid)
	if err != nil {
		return err
	}

	proc, err := process.NewProcessWithContext(ctx, pid32)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return errors.Errorf("process %d: no such process", pid)
		}
		return errors.WrapIff(err, "process %d", pid)
	}

	if s.force {
		err = proc.KillWithContext(ctx)
	} else {
		err = proc.TerminateWithContext(ctx)
	}
	if err != nil {
		return errors.WithDetails(
			errors.WrapIff(err, "failed to send %s to process %d", s.signalName(), pid),
			"pid", pid,
		)
	}
	return nil
}

func (s *Signaller) signalName() string {
	if s.force {
		return "SIGKILL"
	}
	return "SIGTERM"
}
