package ws

import (
	"encoding/json"
	"time"
)

const EventMatchCompleted = "match_completed"

type MatchCompletedEvent struct {
	Type            string     `json:"type"`
	ProjectID       string     `json:"project_id,omitempty"`
	ProjectName     string     `json:"project_name,omitempty"`
	TotalCandidates int        `json:"total_candidates"`
	PerfectMatches  int        `json:"perfect_matches"`
	SortedBy        string     `json:"sorted_by"`
	TopCandidate    *TopResult `json:"top_candidate"`
	Timestamp       string     `json:"timestamp"`
}

type TopResult struct {
	Name            string `json:"name"`
	Score           int    `json:"score"`
	MatchPercentage int    `json:"match_percentage"`
}

// NotifyMatchCompleted stamps and broadcasts evt to every listener.
func (h *Hub) NotifyMatchCompleted(evt MatchCompletedEvent) {
	if h == nil {
		return
	}
	evt.Type = EventMatchCompleted
	if evt.Timestamp == "" {
		evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
