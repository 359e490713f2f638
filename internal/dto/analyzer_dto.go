package dto

import "imagine-algorithm/pkg/analyzer"

type HoverStartRequest struct {
	Category string `json:"category" validate:"required,max=120"`
}

// HoverEndRequest names the category being left. An empty category ends
// whatever hover is active.
type HoverEndRequest struct {
	Category string `json:"category" validate:"max=120"`
}

type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type AnalyzerSnapshotResponse struct {
	SessionId string `json:"session_id"`
	analyzer.Snapshot
}

// HoverResponse carries the batch produced by the interaction, if any,
// alongside the refreshed state.
type HoverResponse struct {
	Insights []analyzer.Insight       `json:"insights"`
	State    AnalyzerSnapshotResponse `json:"state"`
}

type AddCategoryResponse struct {
	Added bool                     `json:"added"`
	State AnalyzerSnapshotResponse `json:"state"`
}

// FeedUpdateMessage travels on the in-process bus from a session's
// analyzer to the feed consumer.
type FeedUpdateMessage struct {
	SessionId string             `json:"session_id"`
	Active    string             `json:"active"`
	Batch     []analyzer.Insight `json:"batch"`
	Fresh     []analyzer.Insight `json:"fresh"`
	Feed      []analyzer.Insight `json:"feed"`
}

// FeedPush is what websocket clients receive.
type FeedPush struct {
	Type string            `json:"type"`
	Data FeedUpdateMessage `json:"data"`
}
