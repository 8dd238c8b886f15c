// Package realtime fans typed events out to connected sessions grouped into
// rooms. Delivery is best-effort: no acknowledgment, no persistence, no
// replay. A session that disconnects receives nothing until it reconnects
// and re-derives its room set from current job state.
package realtime

// EventType identifies the kind of realtime event.
type EventType string

const (
	EventJobRequest              EventType = "job:request"
	EventJobStatus               EventType = "job:status"
	EventJobMatched              EventType = "job:matched"
	EventEstimateChangeRequested EventType = "job:estimate_change_requested"
	EventChatNew                 EventType = "chat:new"
	EventTechLocation            EventType = "tech:location"
)

// Event is the envelope delivered to room members. Fields beyond Type are
// populated per kind; payloads stay minimal so clients refetch detail over
// HTTP.
type Event struct {
	Type         EventType `json:"type"`
	JobID        string    `json:"jobId,omitempty"`
	CustomerID   string    `json:"customerId,omitempty"`
	TechnicianID string    `json:"technicianId,omitempty"`
	Trade        string    `json:"trade,omitempty"`
	Status       string    `json:"status,omitempty"`
	RequestID    string    `json:"requestId,omitempty"`
	MessageID    string    `json:"messageId,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
}

func NewJobRequestEvent(jobID, customerID, trade string, lat, lng float64) Event {
	return Event{Type: EventJobRequest, JobID: jobID, CustomerID: customerID, Trade: trade, Lat: &lat, Lng: &lng}
}

func NewJobStatusEvent(jobID, status string) Event {
	return Event{Type: EventJobStatus, JobID: jobID, Status: status}
}

func NewJobMatchedEvent(jobID, technicianID string) Event {
	return Event{Type: EventJobMatched, JobID: jobID, TechnicianID: technicianID}
}

func NewEstimateChangeRequestedEvent(jobID, requestID string) Event {
	return Event{Type: EventEstimateChangeRequested, JobID: jobID, RequestID: requestID}
}

func NewChatEvent(jobID, messageID string) Event {
	return Event{Type: EventChatNew, JobID: jobID, MessageID: messageID}
}

func NewTechLocationEvent(technicianID string, lat, lng float64) Event {
	return Event{Type: EventTechLocation, TechnicianID: technicianID, Lat: &lat, Lng: &lng}
}
