package routes

import (
	"fieldjobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTechnicians = "/technicians"
)

func addTechnicianRoutes(rg *gin.RouterGroup, techHandler *handlers.TechnicianHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.PATCH("/me/online", techHandler.SetOnline)
		technicians.PATCH("/me/location", techHandler.SetLocation)
		technicians.GET("/nearby", techHandler.Nearby)
	}
}
