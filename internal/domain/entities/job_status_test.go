package entities

import "testing"

func TestJobStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to JobStatus
	}{
		{JobStatusDraft, JobStatusRequested},
		{JobStatusRequested, JobStatusMatched},
		{JobStatusMatched, JobStatusEnRoute},
		{JobStatusEnRoute, JobStatusArrived},
		{JobStatusArrived, JobStatusDiagnosing},
		{JobStatusArrived, JobStatusWorking},
		{JobStatusArrived, JobStatusAwaitingEstimateApproval},
		{JobStatusDiagnosing, JobStatusWorking},
		{JobStatusDiagnosing, JobStatusAwaitingEstimateApproval},
		{JobStatusWorking, JobStatusAwaitingEstimateApproval},
		{JobStatusWorking, JobStatusCompleted},
		{JobStatusAwaitingEstimateApproval, JobStatusDiagnosing},
		{JobStatusAwaitingEstimateApproval, JobStatusWorking},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to JobStatus
	}{
		{JobStatusRequested, JobStatusEnRoute},
		{JobStatusMatched, JobStatusArrived},
		{JobStatusEnRoute, JobStatusWorking},
		{JobStatusDiagnosing, JobStatusCompleted},
		{JobStatusArrived, JobStatusCompleted},
		{JobStatusAwaitingEstimateApproval, JobStatusCompleted},
		{JobStatusCompleted, JobStatusWorking},
		{JobStatusCancelled, JobStatusRequested},
		{JobStatusWorking, JobStatusDiagnosing},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestJobStatus_CancellableFromEveryNonTerminalState(t *testing.T) {
	for _, s := range statusOrder {
		if s.IsTerminal() {
			if s.CanTransitionTo(JobStatusCancelled) {
				t.Fatalf("terminal status %s must not transition to Cancelled", s)
			}
			continue
		}
		if !s.CanTransitionTo(JobStatusCancelled) {
			t.Fatalf("non-terminal status %s must allow cancellation", s)
		}
	}
}

func TestJobStatus_TerminalStatesHaveNoEdges(t *testing.T) {
	for _, s := range []JobStatus{JobStatusCompleted, JobStatusCancelled} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
		if len(nextStatuses[s]) != 0 {
			t.Fatalf("%s should have no outgoing edges, got %v", s, nextStatuses[s])
		}
	}
}

func TestJobStatus_Valid(t *testing.T) {
	for _, s := range statusOrder {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if JobStatus("Paused").Valid() {
		t.Fatalf("unknown status should not be valid")
	}
}

func TestJobStatus_SortKey(t *testing.T) {
	if JobStatusDraft.SortKey() != 0 {
		t.Fatalf("expected Draft first, got %d", JobStatusDraft.SortKey())
	}
	if JobStatusCancelled.SortKey() != len(statusOrder)-1 {
		t.Fatalf("expected Cancelled last, got %d", JobStatusCancelled.SortKey())
	}
	if JobStatus("nope").SortKey() != -1 {
		t.Fatalf("expected -1 for unknown status")
	}
	for i := 1; i < len(statusOrder); i++ {
		if statusOrder[i-1].SortKey() >= statusOrder[i].SortKey() {
			t.Fatalf("sort keys must be strictly increasing")
		}
	}
}
