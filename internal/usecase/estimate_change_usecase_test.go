package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"
	mock_interfaces "fieldjobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func boundJob(status entities.JobStatus) entities.Job {
	return entities.Job{
		ID:           "job-1",
		CustomerID:   customer.ID,
		TechnicianID: technician.ID,
		Status:       status,
		Estimate:     entities.NewEstimate(16900, "USD"),
	}
}

func TestEstimateChangeUseCase_Propose(t *testing.T) {
	t.Run("amount below minimum", func(t *testing.T) {
		uc := NewEstimateChangeUseCase(nil, nil, nil, nil)
		_, _, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 500, Reason: "found corroded pipes"})
		if !errors.Is(err, ErrInvalidChangeInput) {
			t.Fatalf("expected ErrInvalidChangeInput, got %v", err)
		}
	})

	t.Run("only the bound technician may propose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusDiagnosing), nil)

		other := technician
		other.ID = "tech-other"
		_, _, err := uc.Propose(context.Background(), other, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "more parts needed"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("rejected before arrival", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusEnRoute), nil)

		_, _, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "more parts needed"})
		if !errors.Is(err, ErrChangeNotAllowed) {
			t.Fatalf("expected ErrChangeNotAllowed, got %v", err)
		}
	})

	t.Run("rejected while a request is already pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusAwaitingEstimateApproval), nil)

		_, _, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "more parts needed"})
		if !errors.Is(err, ErrAwaitingApproval) {
			t.Fatalf("expected ErrAwaitingApproval, got %v", err)
		}
	})

	t.Run("parks the job and records the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		requests := mock_interfaces.NewMockIChangeRequestRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateChangeUseCase(jobs, requests, publisher, notifier)

		working := boundJob(entities.JobStatusWorking)
		parked := working
		parked.Status = entities.JobStatusAwaitingEstimateApproval

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(working, nil)
		jobs.EXPECT().UpdateStatusIf(gomock.Any(), "job-1", entities.JobStatusWorking, entities.JobStatusAwaitingEstimateApproval).Return(parked, nil)
		requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateChangeRequest{})).DoAndReturn(
			func(_ context.Context, r entities.EstimateChangeRequest) (entities.EstimateChangeRequest, error) {
				if r.ID == "" || r.JobID != "job-1" || r.ProposedByUserID != technician.ID {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.OldAmountCents != 16900 || r.NewAmountCents != 22000 {
					t.Fatalf("unexpected amounts: %+v", r)
				}
				if r.Status != entities.ChangeRequestPending {
					t.Fatalf("expected Pending, got %s", r.Status)
				}
				return r, nil
			},
		)
		publisher.EXPECT().PublishToJob("job-1", gomock.Any()).Times(2)
		notifier.EXPECT().Notify(customer.ID, "Estimate change requested", gomock.Any(), gomock.Any())

		req, job, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "compressor must be replaced"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusAwaitingEstimateApproval {
			t.Fatalf("expected parked job, got %s", job.Status)
		}
		if req.Status != entities.ChangeRequestPending {
			t.Fatalf("expected pending request, got %s", req.Status)
		}
	})

	t.Run("lost park race surfaces as not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusDiagnosing), nil)
		jobs.EXPECT().UpdateStatusIf(gomock.Any(), "job-1", entities.JobStatusDiagnosing, entities.JobStatusAwaitingEstimateApproval).
			Return(entities.Job{}, interfaces.ErrConditionalCheckFailed)

		_, _, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "more parts needed"})
		if !errors.Is(err, ErrNotAvailable) {
			t.Fatalf("expected ErrNotAvailable, got %v", err)
		}
	})
}

func TestEstimateChangeUseCase_Respond(t *testing.T) {
	pending := entities.EstimateChangeRequest{
		ID:               "cr-1",
		JobID:            "job-1",
		ProposedByUserID: technician.ID,
		OldAmountCents:   16900,
		NewAmountCents:   22000,
		Reason:           "compressor must be replaced",
		Status:           entities.ChangeRequestPending,
	}

	t.Run("only the customer decides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusAwaitingEstimateApproval), nil)

		_, _, err := uc.Respond(context.Background(), technician, "job-1", "cr-1", entities.ChangeRequestApproved)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("request must belong to the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		requests := mock_interfaces.NewMockIChangeRequestRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, requests, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusAwaitingEstimateApproval), nil)
		foreign := pending
		foreign.JobID = "job-other"
		requests.EXPECT().GetByID(gomock.Any(), "cr-1").Return(foreign, nil)

		_, _, err := uc.Respond(context.Background(), customer, "job-1", "cr-1", entities.ChangeRequestApproved)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("decided request cannot be decided again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		requests := mock_interfaces.NewMockIChangeRequestRepository(ctrl)
		uc := NewEstimateChangeUseCase(jobs, requests, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(boundJob(entities.JobStatusDiagnosing), nil)
		done := pending
		done.Status = entities.ChangeRequestApproved
		requests.EXPECT().GetByID(gomock.Any(), "cr-1").Return(done, nil)

		_, _, err := uc.Respond(context.Background(), customer, "job-1", "cr-1", entities.ChangeRequestDeclined)
		if !errors.Is(err, ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided, got %v", err)
		}
	})

	t.Run("approval updates the current amount and resumes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		requests := mock_interfaces.NewMockIChangeRequestRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateChangeUseCase(jobs, requests, publisher, notifier)

		parked := boundJob(entities.JobStatusAwaitingEstimateApproval)
		resumed := parked
		resumed.Status = entities.JobStatusDiagnosing
		resumed.Estimate.CurrentAmountCents = 22000

		approved := pending
		approved.Status = entities.ChangeRequestApproved
		now := time.Now().UTC()
		approved.DecidedAt = &now

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(parked, nil)
		requests.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		requests.EXPECT().Decide(gomock.Any(), "cr-1", entities.ChangeRequestApproved, gomock.Any()).Return(approved, nil)
		jobs.EXPECT().SetCurrentAmount(gomock.Any(), "job-1", int64(22000)).Return(resumed, nil)
		jobs.EXPECT().UpdateStatusIf(gomock.Any(), "job-1", entities.JobStatusAwaitingEstimateApproval, entities.JobStatusDiagnosing).Return(resumed, nil)
		publisher.EXPECT().PublishToJob("job-1", gomock.Any())
		notifier.EXPECT().Notify(technician.ID, "Estimate approved", gomock.Any(), gomock.Any())

		req, job, err := uc.Respond(context.Background(), customer, "job-1", "cr-1", entities.ChangeRequestApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != entities.ChangeRequestApproved || req.DecidedAt == nil {
			t.Fatalf("unexpected request: %+v", req)
		}
		if job.Status != entities.JobStatusDiagnosing || job.Estimate.CurrentAmountCents != 22000 {
			t.Fatalf("unexpected job: %+v", job)
		}
	})

	t.Run("decline keeps the original amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		requests := mock_interfaces.NewMockIChangeRequestRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewEstimateChangeUseCase(jobs, requests, publisher, notifier)

		parked := boundJob(entities.JobStatusAwaitingEstimateApproval)
		resumed := parked
		resumed.Status = entities.JobStatusDiagnosing

		declined := pending
		declined.Status = entities.ChangeRequestDeclined

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(parked, nil)
		requests.EXPECT().GetByID(gomock.Any(), "cr-1").Return(pending, nil)
		requests.EXPECT().Decide(gomock.Any(), "cr-1", entities.ChangeRequestDeclined, gomock.Any()).Return(declined, nil)
		jobs.EXPECT().UpdateStatusIf(gomock.Any(), "job-1", entities.JobStatusAwaitingEstimateApproval, entities.JobStatusDiagnosing).Return(resumed, nil)
		publisher.EXPECT().PublishToJob("job-1", gomock.Any())
		notifier.EXPECT().Notify(technician.ID, "Estimate declined", gomock.Any(), gomock.Any())

		_, job, err := uc.Respond(context.Background(), customer, "job-1", "cr-1", entities.ChangeRequestDeclined)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Estimate.CurrentAmountCents != 16900 {
			t.Fatalf("expected original amount preserved, got %d", job.Estimate.CurrentAmountCents)
		}
	})
}

// fakeChangeStore mirrors the conditional Decide semantics of the DynamoDB
// implementation for the end-to-end and concurrency tests.
type fakeChangeStore struct {
	mu       sync.Mutex
	requests map[string]entities.EstimateChangeRequest
}

func newFakeChangeStore() *fakeChangeStore {
	return &fakeChangeStore{requests: make(map[string]entities.EstimateChangeRequest)}
}

func (s *fakeChangeStore) Create(_ context.Context, r entities.EstimateChangeRequest) (entities.EstimateChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = r
	return r, nil
}

func (s *fakeChangeStore) GetByID(_ context.Context, id string) (entities.EstimateChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[id], nil
}

func (s *fakeChangeStore) ListByJobID(_ context.Context, jobID string) ([]entities.EstimateChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.EstimateChangeRequest
	for _, r := range s.requests {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeChangeStore) Decide(_ context.Context, id string, status entities.ChangeRequestStatus, decidedAt time.Time) (entities.EstimateChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.requests[id]
	if r.Status != entities.ChangeRequestPending {
		return entities.EstimateChangeRequest{}, interfaces.ErrConditionalCheckFailed
	}
	r.Status = status
	r.DecidedAt = &decidedAt
	s.requests[id] = r
	return r, nil
}

func TestEstimateChangeUseCase_Respond_ResumesToDiagnosingEvenFromWorking(t *testing.T) {
	t.Run("resumes to diagnosing even from working", func(t *testing.T) {
		jobs := newFakeJobStore(boundJob(entities.JobStatusWorking))
		requests := newFakeChangeStore()
		uc := NewEstimateChangeUseCase(jobs, requests, noopPublisher{}, noopNotifier{})

		req, parked, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "compressor must be replaced"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parked.Status != entities.JobStatusAwaitingEstimateApproval {
			t.Fatalf("expected parked job, got %s", parked.Status)
		}

		_, resumed, err := uc.Respond(context.Background(), customer, "job-1", req.ID, entities.ChangeRequestApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resumed.Status != entities.JobStatusDiagnosing {
			t.Fatalf("expected Diagnosing after approval, got %s", resumed.Status)
		}
		if resumed.Estimate.CurrentAmountCents != 22000 {
			t.Fatalf("expected current amount 22000, got %d", resumed.Estimate.CurrentAmountCents)
		}
		if resumed.Estimate.OriginalAmountCents != 16900 {
			t.Fatalf("original amount must never change, got %d", resumed.Estimate.OriginalAmountCents)
		}
	})
}

func TestEstimateChangeUseCase_SinglePendingUnderConcurrentProposals(t *testing.T) {
	jobs := newFakeJobStore(boundJob(entities.JobStatusDiagnosing))
	requests := newFakeChangeStore()
	uc := NewEstimateChangeUseCase(jobs, requests, noopPublisher{}, noopNotifier{})

	const proposals = 16
	var wg sync.WaitGroup
	results := make(chan error, proposals)
	for i := 0; i < proposals; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := uc.Propose(context.Background(), technician, "job-1", ProposeChangeInput{NewAmountCents: 22000, Reason: "more parts needed"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var created int
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrAwaitingApproval):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one created request, got %d", created)
	}

	all, _ := requests.ListByJobID(context.Background(), "job-1")
	var pendingCount int
	for _, r := range all {
		if r.Status == entities.ChangeRequestPending {
			pendingCount++
		}
	}
	if pendingCount != 1 {
		t.Fatalf("expected exactly one pending request, got %d", pendingCount)
	}
}

// Full lifecycle: flat-rate electrician job, acceptance, on-site progress, a
// mid-job renegotiation to $220, approval and completion.
func TestJobLifecycle_EndToEnd(t *testing.T) {
	store := newFakeJobStore()
	requests := newFakeChangeStore()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	techs := mock_interfaces.NewMockITechnicianProfileRepository(ctrl)
	pricing := mock_interfaces.NewMockIPricingService(ctrl)

	jobUC := NewJobUseCase(store, techs, requests, nil, pricing, noopPublisher{}, noopNotifier{}, "USD")
	changeUC := NewEstimateChangeUseCase(store, requests, noopPublisher{}, noopNotifier{})

	pricing.EXPECT().FlatRateCents(entities.TradeElectrician).Return(int64(16900), nil)
	techs.EXPECT().ListOnlineByTrade(gomock.Any(), entities.TradeElectrician).Return(nil, nil)

	job, err := jobUC.Create(context.Background(), customer, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Estimate.CurrentAmountCents != 16900 {
		t.Fatalf("expected $169 flat rate, got %d", job.Estimate.CurrentAmountCents)
	}

	if _, err := jobUC.Accept(context.Background(), technician, job.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	for _, status := range []entities.JobStatus{
		entities.JobStatusEnRoute,
		entities.JobStatusArrived,
		entities.JobStatusDiagnosing,
	} {
		if _, err := jobUC.SetStatus(context.Background(), technician, job.ID, status); err != nil {
			t.Fatalf("set %s: %v", status, err)
		}
	}

	req, _, err := changeUC.Propose(context.Background(), technician, job.ID, ProposeChangeInput{
		NewAmountCents: 22000,
		Reason:         "panel wiring needs replacement",
	})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	_, resumed, err := changeUC.Respond(context.Background(), customer, job.ID, req.ID, entities.ChangeRequestApproved)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if resumed.Status != entities.JobStatusDiagnosing || resumed.Estimate.CurrentAmountCents != 22000 {
		t.Fatalf("unexpected resumed job: %+v", resumed)
	}

	if _, err := jobUC.SetStatus(context.Background(), technician, job.ID, entities.JobStatusWorking); err != nil {
		t.Fatalf("set Working: %v", err)
	}
	final, err := jobUC.SetStatus(context.Background(), technician, job.ID, entities.JobStatusCompleted)
	if err != nil {
		t.Fatalf("set Completed: %v", err)
	}
	if final.Status != entities.JobStatusCompleted {
		t.Fatalf("expected Completed, got %s", final.Status)
	}
	if final.Estimate.OriginalAmountCents != 16900 || final.Estimate.CurrentAmountCents != 22000 {
		t.Fatalf("estimate history lost: %+v", final.Estimate)
	}
}
