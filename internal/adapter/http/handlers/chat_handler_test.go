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

func TestChatHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewChatHandler(mocks.NewMockIChatUseCase(ctrl))

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/chat", h.Send) })

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/chat", "tok-cust", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/chat", h.Send) })

		uc.EXPECT().Send(gomock.Any(), testCustomer, "job-1", "hello").Return(entities.ChatMessage{}, usecase.ErrForbidden)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/chat", "tok-cust", `{"message":"hello"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := authedRouter(func(g *gin.RouterGroup) { g.POST("/jobs/:job_id/chat", h.Send) })

		uc.EXPECT().Send(gomock.Any(), testCustomer, "job-1", "on my way out, door code is 4412").Return(entities.ChatMessage{
			ID:       "msg-1",
			JobID:    "job-1",
			SenderID: testCustomer.ID,
			Message:  "on my way out, door code is 4412",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/chat", "tok-cust", `{"message":"on my way out, door code is 4412"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "msg-1" || body["sender_id"] != testCustomer.ID {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
