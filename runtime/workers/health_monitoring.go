package workers

import (
	"autochannel/domain/event"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Gauges exposes the sizes the health worker samples.
type Gauges interface {
	Templates() int
	TempChannels() int
}

// HealthMonitoringWorker periodically logs the process footprint, the number of
// templates and temp channels, and the backlog of the gateway event channel.
// Reading len and cap of a channel is non-blocking.
type HealthMonitoringWorker struct {
	log                *slog.Logger
	gauges             Gauges
	events             chan event.Event
	metricInterval     time.Duration
	backlogWarnPercent int
}

func NewHealthMonitoringWorker(log *slog.Logger, gauges Gauges, events chan event.Event,
	metricInterval time.Duration, backlogWarnPercent int) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:                log,
		gauges:             gauges,
		events:             events,
		metricInterval:     metricInterval,
		backlogWarnPercent: backlogWarnPercent,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) {
	backlog, capacity := len(w.events), cap(w.events)
	if capacity > 0 && backlog*100 >= capacity*w.backlogWarnPercent {
		w.log.Warn("Gateway event backlog is high", "length", backlog, "capacity", capacity)
	}

	attrs := []any{
		"templates", w.gauges.Templates(),
		"temp_channels", w.gauges.TempChannels(),
		"backlog", backlog,
	}
	if memInfo, err := p.MemoryInfo(); err == nil {
		attrs = append(attrs, "rss_bytes", memInfo.RSS)
	} else {
		w.log.Debug("Error while finding process ram usage", "err", err)
	}
	if cpu, err := p.CPUPercent(); err == nil {
		attrs = append(attrs, "cpu_percent", cpu)
	} else {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	}
	w.log.Debug("Health", attrs...)
}
