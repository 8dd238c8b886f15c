package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/domain/matching"
	"fieldjobs/internal/realtime"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyMatched    = errors.New("job already matched")
	ErrNotAvailable      = errors.New("job not available")
	ErrAwaitingApproval  = errors.New("awaiting estimate approval")
	ErrInvalidJobInput   = errors.New("invalid job input")
	ErrInvalidJobID      = errors.New("invalid job id")
)

// CreateJobInput is the validated command to open a new service request.
type CreateJobInput struct {
	Trade       entities.Trade
	Description string
	Photos      []string
	Address     string
	Lat         float64
	Lng         float64
	IsASAP      bool
	ScheduledAt *time.Time
}

// JobDetail is a job with its owned history, shaped for the detail view.
type JobDetail struct {
	Job            entities.Job
	ChangeRequests []entities.EstimateChangeRequest
	ChatMessages   []entities.ChatMessage
}

// IJobUseCase exposes the dispatch and lifecycle operations:
//   - Quote/Create     — flat-rate estimate, persist Requested job, broadcast offers
//   - Accept           — race-free single assignment, first acceptance wins
//   - SetStatus        — validated lifecycle transitions and cancellation
//   - GetForUser       — participant-only detail fetch

type IJobUseCase interface {
	Quote(ctx context.Context, trade entities.Trade) (int64, string, error)
	Create(ctx context.Context, caller auth.Identity, input CreateJobInput) (entities.Job, error)
	GetForUser(ctx context.Context, caller auth.Identity, jobID string) (JobDetail, error)
	Accept(ctx context.Context, caller auth.Identity, jobID string) (entities.Job, error)
	SetStatus(ctx context.Context, caller auth.Identity, jobID string, to entities.JobStatus) (entities.Job, error)
}

type JobUseCase struct {
	jobs      interfaces.IJobRepository
	techs     interfaces.ITechnicianProfileRepository
	requests  interfaces.IChangeRequestRepository
	chat      interfaces.IChatMessageRepository
	pricing   interfaces.IPricingService
	publisher interfaces.IEventPublisher
	notifier  interfaces.INotifier
	currency  string
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	techs interfaces.ITechnicianProfileRepository,
	requests interfaces.IChangeRequestRepository,
	chat interfaces.IChatMessageRepository,
	pricing interfaces.IPricingService,
	publisher interfaces.IEventPublisher,
	notifier interfaces.INotifier,
	currency string,
) *JobUseCase {
	return &JobUseCase{
		jobs:      jobs,
		techs:     techs,
		requests:  requests,
		chat:      chat,
		pricing:   pricing,
		publisher: publisher,
		notifier:  notifier,
		currency:  currency,
	}
}

func (u *JobUseCase) Quote(ctx context.Context, trade entities.Trade) (int64, string, error) {
	if !trade.Valid() {
		return 0, "", ErrInvalidJobInput
	}
	cents, err := u.pricing.FlatRateCents(trade)
	if err != nil {
		return 0, "", ErrInvalidJobInput
	}
	return cents, u.currency, nil
}

func (u *JobUseCase) Create(ctx context.Context, caller auth.Identity, input CreateJobInput) (entities.Job, error) {
	if !entities.HasCustomerAccess(caller.Role) {
		return entities.Job{}, ErrForbidden
	}
	if !input.Trade.Valid() {
		return entities.Job{}, ErrInvalidJobInput
	}
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	if len(input.Description) < 5 || len(input.Address) < 3 {
		return entities.Job{}, ErrInvalidJobInput
	}

	amountCents, err := u.pricing.FlatRateCents(input.Trade)
	if err != nil {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:          uuid.NewString(),
		CustomerID:  caller.ID,
		Trade:       input.Trade,
		Description: input.Description,
		Photos:      input.Photos,
		Address:     input.Address,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Status:      entities.JobStatusRequested,
		IsASAP:      input.IsASAP,
		ScheduledAt: input.ScheduledAt,
		Estimate:    entities.NewEstimate(amountCents, u.currency),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}

	u.broadcastOffers(ctx, created)

	return created, nil
}

// broadcastOffers computes the shortlist from a fresh availability snapshot
// and emits one offer event plus one push per candidate. Errors here are
// logged and discarded: the job is already persisted and offer delivery is
// best-effort.
func (u *JobUseCase) broadcastOffers(ctx context.Context, job entities.Job) {
	profiles, err := u.techs.ListOnlineByTrade(ctx, job.Trade)
	if err != nil {
		log.Printf("[dispatch][broadcast] candidate query failed job_id=%s err=%v", job.ID, err)
		return
	}

	candidates := make([]matching.Candidate, 0, len(profiles))
	for _, p := range profiles {
		if !p.HasLocation() {
			continue
		}
		candidates = append(candidates, matching.Candidate{
			UserID:   p.UserID,
			Lat:      *p.CurrentLat,
			Lng:      *p.CurrentLng,
			RadiusKm: p.ServiceRadiusKm,
		})
	}

	shortlist := matching.Shortlist(job.Lat, job.Lng, candidates, matching.DefaultShortlistSize)
	log.Printf("[dispatch][broadcast] job_id=%s trade=%s candidates=%d shortlisted=%d",
		job.ID, job.Trade, len(candidates), len(shortlist))

	for _, m := range shortlist {
		u.publisher.PublishToUser(m.UserID, realtime.NewJobRequestEvent(job.ID, job.CustomerID, string(job.Trade), job.Lat, job.Lng))
		u.notifier.Notify(m.UserID,
			"New job request",
			strings.ToUpper(string(job.Trade))+" • "+truncate(job.Description, 60),
			map[string]string{"jobId": job.ID, "type": "job_request"},
		)
	}
}

func (u *JobUseCase) GetForUser(ctx context.Context, caller auth.Identity, jobID string) (JobDetail, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return JobDetail{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return JobDetail{}, err
	}
	if job.ID == "" {
		return JobDetail{}, ErrJobNotFound
	}
	if err := requireRelationship(job, caller.ID, relationshipParticipant); err != nil {
		return JobDetail{}, err
	}

	requests, err := u.requests.ListByJobID(ctx, jobID)
	if err != nil {
		return JobDetail{}, err
	}
	messages, err := u.chat.ListByJobID(ctx, jobID, 200)
	if err != nil {
		return JobDetail{}, err
	}

	return JobDetail{Job: job, ChangeRequests: requests, ChatMessages: messages}, nil
}

func (u *JobUseCase) Accept(ctx context.Context, caller auth.Identity, jobID string) (entities.Job, error) {
	if !entities.HasTechnicianAccess(caller.Role) {
		return entities.Job{}, ErrForbidden
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.TechnicianID != "" {
		return entities.Job{}, ErrAlreadyMatched
	}
	if job.Status != entities.JobStatusRequested {
		return entities.Job{}, ErrNotAvailable
	}

	updated, err := u.jobs.Accept(ctx, jobID, caller.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Job{}, u.classifyLostAccept(ctx, jobID)
		}
		return entities.Job{}, err
	}

	u.publisher.PublishToJob(jobID, realtime.NewJobMatchedEvent(jobID, caller.ID))
	u.publisher.PublishToJob(jobID, realtime.NewJobStatusEvent(jobID, string(updated.Status)))
	u.notifier.Notify(updated.CustomerID,
		"Technician matched",
		"A technician accepted your request.",
		map[string]string{"jobId": jobID, "type": "job_matched"},
	)

	return updated, nil
}

// classifyLostAccept distinguishes why a conditional accept failed: another
// technician won the race, or the job moved on entirely.
func (u *JobUseCase) classifyLostAccept(ctx context.Context, jobID string) error {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if job.TechnicianID != "" {
		return ErrAlreadyMatched
	}
	return ErrNotAvailable
}

// settableStatuses are the transitions callers may request directly.
// Requested/Matched are owned by creation and acceptance, and
// AwaitingEstimateApproval is only reachable through the estimate-change
// protocol.
var settableStatuses = map[entities.JobStatus]struct{}{
	entities.JobStatusEnRoute:    {},
	entities.JobStatusArrived:    {},
	entities.JobStatusDiagnosing: {},
	entities.JobStatusWorking:    {},
	entities.JobStatusCompleted:  {},
	entities.JobStatusCancelled:  {},
}

func (u *JobUseCase) SetStatus(ctx context.Context, caller auth.Identity, jobID string, to entities.JobStatus) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if _, ok := settableStatuses[to]; !ok {
		return entities.Job{}, ErrInvalidTransition
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	if to == entities.JobStatusCancelled {
		return u.cancel(ctx, caller, job)
	}

	// Non-cancel transitions are technician-driven.
	if err := requireRelationship(job, caller.ID, relationshipTechnician); err != nil {
		return entities.Job{}, err
	}
	if !job.Status.CanTransitionTo(to) {
		return entities.Job{}, ErrInvalidTransition
	}
	if job.Status == entities.JobStatusAwaitingEstimateApproval {
		// Only the negotiation's own resolution moves the job out of this
		// state.
		return entities.Job{}, ErrAwaitingApproval
	}

	updated, err := u.jobs.UpdateStatusIf(ctx, jobID, job.Status, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Job{}, ErrNotAvailable
		}
		return entities.Job{}, err
	}

	u.publisher.PublishToJob(jobID, realtime.NewJobStatusEvent(jobID, string(updated.Status)))
	u.notifier.Notify(updated.CustomerID,
		statusLabel(updated.Status),
		"Status: "+string(updated.Status),
		map[string]string{"jobId": jobID, "type": "job_status"},
	)

	return updated, nil
}

// cancel is unconditional for either bound party from any non-terminal
// state.
func (u *JobUseCase) cancel(ctx context.Context, caller auth.Identity, job entities.Job) (entities.Job, error) {
	if err := requireRelationship(job, caller.ID, relationshipParticipant); err != nil {
		return entities.Job{}, err
	}
	if !job.Status.CanTransitionTo(entities.JobStatusCancelled) {
		return entities.Job{}, ErrInvalidTransition
	}

	updated, err := u.jobs.UpdateStatusIf(ctx, job.ID, job.Status, entities.JobStatusCancelled)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Job{}, ErrNotAvailable
		}
		return entities.Job{}, err
	}

	u.publisher.PublishToJob(job.ID, realtime.NewJobStatusEvent(job.ID, string(updated.Status)))

	if other := otherParty(updated, caller.ID); other != "" {
		u.notifier.Notify(other,
			"Job cancelled",
			"The job was cancelled.",
			map[string]string{"jobId": job.ID, "type": "job_cancelled"},
		)
	}

	return updated, nil
}

func statusLabel(s entities.JobStatus) string {
	switch s {
	case entities.JobStatusEnRoute:
		return "Technician is on the way"
	case entities.JobStatusArrived:
		return "Technician arrived"
	case entities.JobStatusCompleted:
		return "Job completed"
	default:
		return "Job update"
	}
}

func otherParty(job entities.Job, callerID string) string {
	if job.CustomerID == callerID {
		return job.TechnicianID
	}
	return job.CustomerID
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// relationship is the required relation a caller must hold to a job, applied
// uniformly before any mutation.
type relationship int

const (
	relationshipCustomer relationship = iota
	relationshipTechnician
	relationshipParticipant
)

func requireRelationship(job entities.Job, callerID string, rel relationship) error {
	switch rel {
	case relationshipCustomer:
		if job.CustomerID != callerID {
			return ErrForbidden
		}
	case relationshipTechnician:
		if job.TechnicianID == "" || job.TechnicianID != callerID {
			return ErrForbidden
		}
	case relationshipParticipant:
		if !job.IsParticipant(callerID) {
			return ErrForbidden
		}
	}
	return nil
}
