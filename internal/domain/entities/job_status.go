package entities

// JobStatus is the lifecycle state of a Job. The state graph is fixed:
// transitions outside the nextStatuses table are rejected by the usecases.
type JobStatus string

const (
	JobStatusDraft                    JobStatus = "Draft"
	JobStatusRequested                JobStatus = "Requested"
	JobStatusMatched                  JobStatus = "Matched"
	JobStatusEnRoute                  JobStatus = "EnRoute"
	JobStatusArrived                  JobStatus = "Arrived"
	JobStatusDiagnosing               JobStatus = "Diagnosing"
	JobStatusWorking                  JobStatus = "Working"
	JobStatusAwaitingEstimateApproval JobStatus = "AwaitingEstimateApproval"
	JobStatusCompleted                JobStatus = "Completed"
	JobStatusCancelled                JobStatus = "Cancelled"
)

var statusOrder = []JobStatus{
	JobStatusDraft,
	JobStatusRequested,
	JobStatusMatched,
	JobStatusEnRoute,
	JobStatusArrived,
	JobStatusDiagnosing,
	JobStatusWorking,
	JobStatusAwaitingEstimateApproval,
	JobStatusCompleted,
	JobStatusCancelled,
}

var nextStatuses = map[JobStatus][]JobStatus{
	JobStatusDraft:                    {JobStatusRequested, JobStatusCancelled},
	JobStatusRequested:                {JobStatusMatched, JobStatusCancelled},
	JobStatusMatched:                  {JobStatusEnRoute, JobStatusCancelled},
	JobStatusEnRoute:                  {JobStatusArrived, JobStatusCancelled},
	JobStatusArrived:                  {JobStatusDiagnosing, JobStatusWorking, JobStatusAwaitingEstimateApproval, JobStatusCancelled},
	JobStatusDiagnosing:               {JobStatusWorking, JobStatusAwaitingEstimateApproval, JobStatusCancelled},
	JobStatusWorking:                  {JobStatusAwaitingEstimateApproval, JobStatusCompleted, JobStatusCancelled},
	JobStatusAwaitingEstimateApproval: {JobStatusDiagnosing, JobStatusWorking, JobStatusCancelled},
	JobStatusCompleted:                {},
	JobStatusCancelled:                {},
}

func (s JobStatus) Valid() bool {
	_, ok := nextStatuses[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> to exists in the state graph.
func (s JobStatus) CanTransitionTo(to JobStatus) bool {
	for _, next := range nextStatuses[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing edges.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// SortKey returns the position of s in the canonical lifecycle order,
// or -1 for an unknown status.
func (s JobStatus) SortKey() int {
	for i, v := range statusOrder {
		if v == s {
			return i
		}
	}
	return -1
}
