package routes

import (
	"fieldjobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	changeHandler *handlers.EstimateChangeHandler,
	chatHandler *handlers.ChatHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("/estimate", jobHandler.Quote)
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/accept", jobHandler.AcceptJob)
		jobs.PATCH("/:job_id/status", jobHandler.SetStatus)

		jobs.POST("/:job_id/estimate-changes", changeHandler.Propose)
		jobs.POST("/:job_id/estimate-changes/respond", changeHandler.Respond)

		jobs.POST("/:job_id/chat", chatHandler.Send)
		jobs.POST("/:job_id/payments", paymentHandler.CreateIntent)
	}
}
