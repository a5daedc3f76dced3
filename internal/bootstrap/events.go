package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MyFarm_Go/internal/event"
	"github.com/osse101/MyFarm_Go/internal/logger"
	"github.com/osse101/MyFarm_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector and the debug event logger to every game event.
func InitializeEventSystem() (*event.MemoryBus, error) {
	bus := event.NewMemoryBus()
	if err := RegisterEventHandlers(bus); err != nil {
		return nil, err
	}
	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return bus, nil
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (counters and gauges per event)
// - Event logger (one debug record per event)
func RegisterEventHandlers(bus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, logEvent)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventReceived,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
