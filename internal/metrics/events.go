package metrics

import (
	"context"

	"github.com/osse101/MyFarm_Go/internal/event"
	"github.com/osse101/MyFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ActionPerformed:
		p, err := event.DecodePayload[event.ActionPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		ActionsPerformed.WithLabelValues(p.Verb).Inc()
		if p.CoinsDelta < 0 {
			CoinsSpent.Add(float64(-p.CoinsDelta))
		}

	case event.ActionRejected:
		p, err := event.DecodePayload[event.ActionRejectedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		ActionsRejected.WithLabelValues(p.Verb, p.ErrorKind).Inc()

	case event.CropHarvested:
		p, err := event.DecodePayload[event.CropHarvestedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		CropsHarvested.WithLabelValues(p.Crop).Inc()
		if p.Total > 0 {
			CoinsEarned.Add(float64(p.Total))
		}

	case event.FarmerLeveledUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))

	case event.FarmerRegistered:
		p, err := event.DecodePayload[event.RegisteredPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		Registrations.WithLabelValues(p.Title).Inc()

	case event.DayAdvanced:
		p, err := event.DecodePayload[event.DayAdvancedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		CurrentDay.Set(float64(p.Day))
		CropsWithered.Add(float64(p.NewWithered))

	case event.GameOver:
		p, err := event.DecodePayload[event.GameOverPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		GamesOver.WithLabelValues(p.Reason).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) unexpected(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
	return nil
}
