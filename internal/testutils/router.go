package testutils

import (
	"github.com/femfund/femfund/internal/api/routes"
	"github.com/femfund/femfund/internal/application"
	"github.com/gin-gonic/gin"
)

func SetupRouter(svc *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, svc)
	return r
}
