package events

import "time"

// Event defines the contract for all analytics events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "HOVER_STARTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeHoverStarted     = "HOVER_STARTED"
	TypeInsightGenerated = "INSIGHT_GENERATED"
	TypeCategoryAdded    = "CATEGORY_ADDED"
	TypeBoardChanged     = "BOARD_CHANGED"
	TypeQuestionnaireEnd = "QUESTIONNAIRE_COMPLETED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func HoverStarted(sessionID, category string, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       TypeHoverStarted,
		Data:       map[string]interface{}{"session_id": sessionID, "category": category},
		OccurredAt: at,
	}
}

func InsightGenerated(sessionID, id, prefix, text string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeInsightGenerated,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"insight_id": id,
			"prefix":     prefix,
			"text":       text,
		},
		OccurredAt: at,
	}
}

func CategoryAdded(sessionID, name string, points int, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       TypeCategoryAdded,
		Data:       map[string]interface{}{"session_id": sessionID, "name": name, "points": points},
		OccurredAt: at,
	}
}

func BoardChanged(sessionID, operation string, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       TypeBoardChanged,
		Data:       map[string]interface{}{"session_id": sessionID, "operation": operation},
		OccurredAt: at,
	}
}

func QuestionnaireCompleted(sessionID string, responses map[string]string, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       TypeQuestionnaireEnd,
		Data:       map[string]interface{}{"session_id": sessionID, "responses": responses},
		OccurredAt: at,
	}
}
