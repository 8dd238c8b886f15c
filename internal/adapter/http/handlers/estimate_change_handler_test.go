package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fieldjobs/internal/adapter/http/handlers/mocks"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateChangeHandler_Propose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateChangeHandler(mocks.NewMockIEstimateChangeUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes", h.Propose) })

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes", "tok-tech", `{"new_amount_cents":22000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pending request already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes", h.Propose) })

		uc.EXPECT().
			Propose(gomock.Any(), testTechnician, "job-1", gomock.Any()).
			Return(entities.EstimateChangeRequest{}, entities.Job{}, usecase.ErrAwaitingApproval)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes", "tok-tech", `{"new_amount_cents":22000,"reason":"found corroded pipes"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("wrong lifecycle phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes", h.Propose) })

		uc.EXPECT().
			Propose(gomock.Any(), testTechnician, "job-1", gomock.Any()).
			Return(entities.EstimateChangeRequest{}, entities.Job{}, usecase.ErrChangeNotAllowed)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes", "tok-tech", `{"new_amount_cents":22000,"reason":"found corroded pipes"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success parks the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes", h.Propose) })

		uc.EXPECT().
			Propose(gomock.Any(), testTechnician, "job-1", usecase.ProposeChangeInput{NewAmountCents: 22000, Reason: "found corroded pipes"}).
			Return(
				entities.EstimateChangeRequest{ID: "req-1", JobID: "job-1", NewAmountCents: 22000, Status: entities.ChangeRequestPending},
				entities.Job{ID: "job-1", Status: entities.JobStatusAwaitingEstimateApproval},
				nil,
			)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes", "tok-tech", `{"new_amount_cents":22000,"reason":"found corroded pipes"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Request map[string]any `json:"request"`
			Job     map[string]any `json:"job"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Request["id"] != "req-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body.Job["status"] != string(entities.JobStatusAwaitingEstimateApproval) {
			t.Fatalf("expected parked job in response, got %s", w.Body.String())
		}
	})
}

func TestEstimateChangeHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateChangeHandler(mocks.NewMockIEstimateChangeUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes/respond", h.Respond) })

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes/respond", "tok-cust", `{"request_id":"req-1","decision":"maybe"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes/respond", h.Respond) })

		uc.EXPECT().
			Respond(gomock.Any(), testCustomer, "job-1", "req-1", entities.ChangeRequestApproved).
			Return(entities.EstimateChangeRequest{}, entities.Job{}, usecase.ErrAlreadyDecided)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes/respond", "tok-cust", `{"request_id":"req-1","decision":"approved"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approval resumes the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes/respond", h.Respond) })

		job := entities.Job{ID: "job-1", Status: entities.JobStatusDiagnosing, Estimate: entities.NewEstimate(16900, "USD")}
		job.Estimate.CurrentAmountCents = 22000
		uc.EXPECT().
			Respond(gomock.Any(), testCustomer, "job-1", "req-1", entities.ChangeRequestApproved).
			Return(entities.EstimateChangeRequest{ID: "req-1", JobID: "job-1", Status: entities.ChangeRequestApproved}, job, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes/respond", "tok-cust", `{"request_id":"req-1","decision":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Request map[string]any `json:"request"`
			Job     map[string]any `json:"job"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Request["status"] != string(entities.ChangeRequestApproved) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		estimate, _ := body.Job["estimate"].(map[string]any)
		if estimate["current_amount_cents"] != float64(22000) || estimate["original_amount_cents"] != float64(16900) {
			t.Fatalf("unexpected estimate in response: %s", w.Body.String())
		}
	})

	t.Run("decline keeps the original amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateChangeUseCase(ctrl)
		h := NewEstimateChangeHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/estimate-changes/respond", h.Respond) })

		job := entities.Job{ID: "job-1", Status: entities.JobStatusDiagnosing, Estimate: entities.NewEstimate(16900, "USD")}
		uc.EXPECT().
			Respond(gomock.Any(), testCustomer, "job-1", "req-1", entities.ChangeRequestDeclined).
			Return(entities.EstimateChangeRequest{ID: "req-1", JobID: "job-1", Status: entities.ChangeRequestDeclined}, job, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/estimate-changes/respond", "tok-cust", `{"request_id":"req-1","decision":"declined"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Job map[string]any `json:"job"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		estimate, _ := body.Job["estimate"].(map[string]any)
		if estimate["current_amount_cents"] != float64(16900) {
			t.Fatalf("unexpected estimate in response: %s", w.Body.String())
		}
	})
}
