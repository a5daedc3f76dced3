package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	ActionPerformed  Type = domain.EventTypeActionPerformed
	ActionRejected   Type = domain.EventTypeActionRejected
	CropHarvested    Type = domain.EventTypeCropHarvested
	FarmerLeveledUp  Type = domain.EventTypeFarmerLeveledUp
	FarmerRegistered Type = domain.EventTypeFarmerRegistered
	DayAdvanced      Type = domain.EventTypeDayAdvanced
	GameOver         Type = domain.EventTypeGameOver
)

// AllTypes lists every game event type
var AllTypes = []Type{
	ActionPerformed,
	ActionRejected,
	CropHarvested,
	FarmerLeveledUp,
	FarmerRegistered,
	DayAdvanced,
	GameOver,
}

// DecodePayload returns an event's payload as one of the *PayloadV1 types.
// Events from the in-process bus already carry the struct. A payload that went
// through JSON (a map) is re-encoded into T, so subscribers accept both.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	if v, ok := payload.(T); ok {
		return v, nil
	}
	if payload == nil {
		return out, fmt.Errorf(ErrMsgEmptyPayloadFmt, out)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

// Typed event payloads for type safety

// ActionPayloadV1 is the payload for performed actions
type ActionPayloadV1 struct {
	Verb       string `json:"verb"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Crop       string `json:"crop,omitempty"`
	CoinsDelta int    `json:"coins_delta"`
	Day        int    `json:"day"`
}

// ActionRejectedPayloadV1 is the payload for commands refused by a game rule
type ActionRejectedPayloadV1 struct {
	Verb      string `json:"verb"`
	ErrorKind string `json:"error_kind"`
	ErrorCode string `json:"error_code"`
	Day       int    `json:"day"`
}

// CropHarvestedPayloadV1 is the payload for harvest events
type CropHarvestedPayloadV1 struct {
	Crop          string  `json:"crop"`
	ProducedUnits int     `json:"produced_units"`
	Total         int     `json:"total"`
	Experience    float64 `json:"experience"`
	Day           int     `json:"day"`
}

// LevelUpPayloadV1 is the payload for level-up events
type LevelUpPayloadV1 struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}

// RegisteredPayloadV1 is the payload for title changes
type RegisteredPayloadV1 struct {
	Title string `json:"title"`
	Fee   int    `json:"fee"`
}

// DayAdvancedPayloadV1 is the payload for day ticks
type DayAdvancedPayloadV1 struct {
	Day         int `json:"day"`
	NewWithered int `json:"new_withered"`
}

// GameOverPayloadV1 is the payload for the end of a game
type GameOverPayloadV1 struct {
	Reason string `json:"reason"`
	Day    int    `json:"day"`
	Coins  int    `json:"coins"`
	Level  int    `json:"level"`
}

func sessionMetadata(sessionID string) Metadata {
	if sessionID == "" {
		return nil
	}
	return map[string]interface{}{
		MetadataKeySessionID: sessionID,
	}
}

// Type-safe event constructors

// NewActionPerformedEvent creates an event for a successful action
func NewActionPerformedEvent(sessionID string, res domain.ActionResult) Event {
	payload := ActionPayloadV1{
		Verb:       string(res.Verb),
		Row:        -1,
		Col:        -1,
		Crop:       res.Crop,
		CoinsDelta: res.CoinsDelta,
		Day:        res.Day,
	}
	if res.Coord != nil {
		payload.Row, payload.Col = res.Coord.Row, res.Coord.Col
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     ActionPerformed,
		Payload:  payload,
		Metadata: sessionMetadata(sessionID),
	}
}

// NewActionRejectedEvent creates an event for a refused command
func NewActionRejectedEvent(sessionID string, verb domain.Verb, err error, day int) Event {
	kind, _ := domain.KindOf(err)
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionRejected,
		Payload: ActionRejectedPayloadV1{
			Verb:      string(verb),
			ErrorKind: string(kind),
			ErrorCode: domain.CodeOf(err),
			Day:       day,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewCropHarvestedEvent creates a harvest event
func NewCropHarvestedEvent(sessionID string, h domain.HarvestResult, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: CropHarvestedPayloadV1{
			Crop:          h.Crop,
			ProducedUnits: h.ProducedUnits,
			Total:         h.Total,
			Experience:    h.Experience,
			Day:           day,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewLevelUpEvent creates a level-up event
func NewLevelUpEvent(sessionID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmerLeveledUp,
		Payload: LevelUpPayloadV1{
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewRegisteredEvent creates a title change event
func NewRegisteredEvent(sessionID string, title domain.Title, fee int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmerRegistered,
		Payload: RegisteredPayloadV1{
			Title: title.String(),
			Fee:   fee,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewDayAdvancedEvent creates a day tick event
func NewDayAdvancedEvent(sessionID string, day, newWithered int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayAdvanced,
		Payload: DayAdvancedPayloadV1{
			Day:         day,
			NewWithered: newWithered,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewGameOverEvent creates the end-of-game event
func NewGameOverEvent(sessionID string, reason domain.GameOverReason, day, coins, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameOver,
		Payload: GameOverPayloadV1{
			Reason: string(reason),
			Day:    day,
			Coins:  coins,
			Level:  level,
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously, in subscription
// order. Handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
