package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/realtime"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound    = errors.New("estimate change request not found")
	ErrAlreadyDecided     = errors.New("estimate change request already decided")
	ErrEstimateMissing    = errors.New("job has no estimate")
	ErrChangeNotAllowed   = errors.New("estimate change not allowed in current status")
	ErrInvalidChangeInput = errors.New("invalid estimate change input")
)

const (
	minChangeAmountCents = 1000
	maxChangeAmountCents = 500000
)

// proposableStatuses are the on-site states from which a technician may open
// a price renegotiation.
var proposableStatuses = map[entities.JobStatus]struct{}{
	entities.JobStatusArrived:    {},
	entities.JobStatusDiagnosing: {},
	entities.JobStatusWorking:    {},
}

// ProposeChangeInput is the technician's mid-job price proposal.
type ProposeChangeInput struct {
	NewAmountCents int64
	Reason         string
}

// IEstimateChangeUseCase runs the estimate renegotiation sub-protocol: the
// bound technician proposes, the customer decides, and the job is parked in
// AwaitingEstimateApproval in between.

type IEstimateChangeUseCase interface {
	Propose(ctx context.Context, caller auth.Identity, jobID string, input ProposeChangeInput) (entities.EstimateChangeRequest, entities.Job, error)
	Respond(ctx context.Context, caller auth.Identity, jobID, requestID string, decision entities.ChangeRequestStatus) (entities.EstimateChangeRequest, entities.Job, error)
}

type EstimateChangeUseCase struct {
	jobs      interfaces.IJobRepository
	requests  interfaces.IChangeRequestRepository
	publisher interfaces.IEventPublisher
	notifier  interfaces.INotifier
}

var _ IEstimateChangeUseCase = (*EstimateChangeUseCase)(nil)

func NewEstimateChangeUseCase(
	jobs interfaces.IJobRepository,
	requests interfaces.IChangeRequestRepository,
	publisher interfaces.IEventPublisher,
	notifier interfaces.INotifier,
) *EstimateChangeUseCase {
	return &EstimateChangeUseCase{jobs: jobs, requests: requests, publisher: publisher, notifier: notifier}
}

func (u *EstimateChangeUseCase) Propose(ctx context.Context, caller auth.Identity, jobID string, input ProposeChangeInput) (entities.EstimateChangeRequest, entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrInvalidJobID
	}
	input.Reason = strings.TrimSpace(input.Reason)
	if input.NewAmountCents < minChangeAmountCents || input.NewAmountCents > maxChangeAmountCents || len(input.Reason) < 3 {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrInvalidChangeInput
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}
	if job.ID == "" {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrJobNotFound
	}
	if err := requireRelationship(job, caller.ID, relationshipTechnician); err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}
	if !job.Estimate.Exists() {
		// Unreachable for jobs created through dispatch; defensive.
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrEstimateMissing
	}
	if job.Status == entities.JobStatusAwaitingEstimateApproval {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrAwaitingApproval
	}
	if _, ok := proposableStatuses[job.Status]; !ok {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrChangeNotAllowed
	}

	// Park the job first. The conditional write is what makes "at most one
	// pending request" hold under concurrent proposals: the loser's CAS
	// fails because the winner already moved the status.
	updated, err := u.jobs.UpdateStatusIf(ctx, jobID, job.Status, entities.JobStatusAwaitingEstimateApproval)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.EstimateChangeRequest{}, entities.Job{}, ErrNotAvailable
		}
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}

	request := entities.EstimateChangeRequest{
		ID:               uuid.NewString(),
		JobID:            jobID,
		ProposedByUserID: caller.ID,
		OldAmountCents:   job.Estimate.CurrentAmountCents,
		NewAmountCents:   input.NewAmountCents,
		Reason:           input.Reason,
		Status:           entities.ChangeRequestPending,
		CreatedAt:        time.Now().UTC(),
	}
	created, err := u.requests.Create(ctx, request)
	if err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}

	u.publisher.PublishToJob(jobID, realtime.NewEstimateChangeRequestedEvent(jobID, created.ID))
	u.publisher.PublishToJob(jobID, realtime.NewJobStatusEvent(jobID, string(updated.Status)))
	u.notifier.Notify(updated.CustomerID,
		"Estimate change requested",
		"Approve or decline the new estimate to continue.",
		map[string]string{"jobId": jobID, "requestId": created.ID, "type": "estimate_change"},
	)

	return created, updated, nil
}

func (u *EstimateChangeUseCase) Respond(ctx context.Context, caller auth.Identity, jobID, requestID string, decision entities.ChangeRequestStatus) (entities.EstimateChangeRequest, entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	requestID = strings.TrimSpace(requestID)
	if jobID == "" || requestID == "" {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrInvalidChangeInput
	}
	if decision != entities.ChangeRequestApproved && decision != entities.ChangeRequestDeclined {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrInvalidChangeInput
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}
	if job.ID == "" {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrJobNotFound
	}
	if err := requireRelationship(job, caller.ID, relationshipCustomer); err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}
	if !job.Estimate.Exists() {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrEstimateMissing
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}
	if request.ID == "" || request.JobID != jobID {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrRequestNotFound
	}
	if request.Status != entities.ChangeRequestPending {
		return entities.EstimateChangeRequest{}, entities.Job{}, ErrAlreadyDecided
	}

	decided, err := u.requests.Decide(ctx, requestID, decision, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.EstimateChangeRequest{}, entities.Job{}, ErrAlreadyDecided
		}
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}

	if decision == entities.ChangeRequestApproved {
		if _, err := u.jobs.SetCurrentAmount(ctx, jobID, decided.NewAmountCents); err != nil {
			return entities.EstimateChangeRequest{}, entities.Job{}, err
		}
	}

	// Either decision resumes to Diagnosing, even when the proposal was
	// made from Working. Deterministic resume state; a richer design would
	// restore the pre-proposal status.
	updated, err := u.jobs.UpdateStatusIf(ctx, jobID, entities.JobStatusAwaitingEstimateApproval, entities.JobStatusDiagnosing)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// The job left AwaitingEstimateApproval underneath us (e.g. a
			// concurrent cancel). The decision itself stands.
			log.Printf("[estimate][respond] resume skipped job_id=%s request_id=%s", jobID, requestID)
			refreshed, getErr := u.jobs.GetByID(ctx, jobID)
			if getErr != nil {
				return entities.EstimateChangeRequest{}, entities.Job{}, getErr
			}
			return decided, refreshed, nil
		}
		return entities.EstimateChangeRequest{}, entities.Job{}, err
	}

	u.publisher.PublishToJob(jobID, realtime.NewJobStatusEvent(jobID, string(updated.Status)))

	if job.TechnicianID != "" {
		body := "Customer declined the estimate change."
		if decision == entities.ChangeRequestApproved {
			body = "Customer approved the new estimate."
		}
		u.notifier.Notify(job.TechnicianID,
			"Estimate "+strings.ToLower(string(decision)),
			body,
			map[string]string{"jobId": jobID, "requestId": requestID, "type": "estimate_change_decision"},
		)
	}

	return decided, updated, nil
}
