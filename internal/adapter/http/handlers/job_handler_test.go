package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldjobs/internal/adapter/http/handlers/mocks"
	"fieldjobs/internal/adapter/http/middleware"
	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/domain/pricing"
	"fieldjobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	testCustomer   = auth.Identity{ID: "cust-1", Role: entities.RoleCustomer, Active: true}
	testTechnician = auth.Identity{ID: "tech-1", Role: entities.RoleTechnician, Active: true}
)

// authedRouter builds a router with the bearer-token middleware wired the way
// the real route table wires it.
func authedRouter(register func(g *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	authn := auth.NewStaticTokenAuthenticator(map[string]auth.Identity{
		"tok-cust": testCustomer,
		"tok-tech": testTechnician,
		"tok-off":  {ID: "cust-2", Role: entities.RoleCustomer, Active: false},
	})
	g := r.Group("/v1", middleware.RequireAuth(authn))
	register(g)
	return r
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJobHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/estimate", h.Quote) })

		w := doJSON(r, http.MethodPost, "/v1/jobs/estimate", "tok-cust", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/estimate", h.Quote) })

		uc.EXPECT().Quote(gomock.Any(), entities.Trade("welding")).Return(int64(0), "", pricing.ErrUnknownTrade)

		w := doJSON(r, http.MethodPost, "/v1/jobs/estimate", "tok-cust", `{"trade":"welding"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/estimate", h.Quote) })

		uc.EXPECT().Quote(gomock.Any(), entities.Trade("electrician")).Return(int64(16900), "USD", nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/estimate", "tok-cust", `{"trade":"electrician"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["amount_cents"] != float64(16900) || body["currency"] != "USD" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const payload = `{"trade":"electrician","description":"Outlet sparks when the microwave runs","address":"123 Main St","lat":40.7128,"lng":-74.006,"is_asap":true}`

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs", h.CreateJob) })

		w := doJSON(r, http.MethodPost, "/v1/jobs", "", payload)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs", h.CreateJob) })

		w := doJSON(r, http.MethodPost, "/v1/jobs", "tok-off", payload)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs", h.CreateJob) })

		w := doJSON(r, http.MethodPost, "/v1/jobs", "tok-cust", `{"trade":"electrician","description":"short circuit somewhere","address":"123 Main St"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("technician role is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs", h.CreateJob) })

		uc.EXPECT().Create(gomock.Any(), testTechnician, gomock.Any()).Return(entities.Job{}, usecase.ErrForbidden)

		w := doJSON(r, http.MethodPost, "/v1/jobs", "tok-tech", payload)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs", h.CreateJob) })

		uc.EXPECT().
			Create(gomock.Any(), testCustomer, gomock.Any()).
			DoAndReturn(func(_ any, _ auth.Identity, input usecase.CreateJobInput) (entities.Job, error) {
				if input.Trade != entities.Trade("electrician") || !input.IsASAP {
					t.Fatalf("unexpected input %+v", input)
				}
				return entities.Job{
					ID:         "job-1",
					CustomerID: testCustomer.ID,
					Trade:      input.Trade,
					Status:     entities.JobStatusRequested,
					Estimate:   entities.NewEstimate(16900, "USD"),
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/jobs", "tok-cust", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "job-1" || body["status"] != string(entities.JobStatusRequested) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.GET("/jobs/:job_id", h.GetJob) })

		uc.EXPECT().GetForUser(gomock.Any(), testCustomer, "job-404").Return(usecase.JobDetail{}, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodGet, "/v1/jobs/job-404", "tok-cust", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.GET("/jobs/:job_id", h.GetJob) })

		uc.EXPECT().GetForUser(gomock.Any(), testCustomer, "job-1").Return(usecase.JobDetail{
			Job: entities.Job{ID: "job-1", CustomerID: testCustomer.ID, Status: entities.JobStatusWorking},
			ChangeRequests: []entities.EstimateChangeRequest{
				{ID: "req-1", JobID: "job-1", Status: entities.ChangeRequestApproved},
			},
			ChatMessages: []entities.ChatMessage{
				{ID: "msg-1", JobID: "job-1", SenderID: testCustomer.ID, Message: "hello"},
			},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs/job-1", "tok-cust", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID             string           `json:"id"`
			ChangeRequests []map[string]any `json:"change_requests"`
			ChatMessages   []map[string]any `json:"chat_messages"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != "job-1" || len(body.ChangeRequests) != 1 || len(body.ChatMessages) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_AcceptJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/accept", h.AcceptJob) })

		uc.EXPECT().Accept(gomock.Any(), testTechnician, "job-1").Return(entities.Job{}, usecase.ErrAlreadyMatched)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/accept", "tok-tech", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/accept", h.AcceptJob) })

		uc.EXPECT().Accept(gomock.Any(), testTechnician, "job-1").Return(entities.Job{
			ID:           "job-1",
			TechnicianID: testTechnician.ID,
			Status:       entities.JobStatusMatched,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/accept", "tok-tech", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["technician_id"] != testTechnician.ID || body["status"] != string(entities.JobStatusMatched) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.PATCH("/jobs/:job_id/status", h.SetStatus) })

		uc.EXPECT().SetStatus(gomock.Any(), testTechnician, "job-1", entities.JobStatusArrived).Return(entities.Job{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/job-1/status", "tok-tech", `{"status":"Arrived"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("parked job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.PATCH("/jobs/:job_id/status", h.SetStatus) })

		uc.EXPECT().SetStatus(gomock.Any(), testTechnician, "job-1", entities.JobStatusWorking).Return(entities.Job{}, usecase.ErrAwaitingApproval)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/job-1/status", "tok-tech", `{"status":"Working"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.PATCH("/jobs/:job_id/status", h.SetStatus) })

		uc.EXPECT().SetStatus(gomock.Any(), testTechnician, "job-1", entities.JobStatusEnRoute).Return(entities.Job{
			ID:     "job-1",
			Status: entities.JobStatusEnRoute,
		}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/job-1/status", "tok-tech", `{"status":"EnRoute"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.JobStatusEnRoute) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
