package routes

import (
	"github.com/femfund/femfund/internal/api/handlers"
	"github.com/femfund/femfund/internal/api/middleware"
	"github.com/femfund/femfund/internal/application"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/femfund/femfund/docs"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services) {
	h := handlers.New(svc, r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/register", h.User.Register)
	r.POST("/auth/login", h.User.Login)
	r.POST("/auth/logout", h.User.Logout)

	// Catalog browsing is public; everything else needs a token.
	r.GET("/funding/options", h.Funding.ListOptions)
	r.GET("/funding/options/:id", h.Funding.GetOption)
	r.GET("/learning/resources", h.Learning.ListResources)
	r.GET("/learning/resources/:id", h.Learning.GetResource)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/me", h.User.Profile)

		users := auth.Group("/users")
		{
			users.GET("/profile", h.User.Profile)
			users.PUT("/profile", h.User.UpdateProfile)
			users.PUT("/change-password", h.User.ChangePassword)
		}

		funding := auth.Group("/funding")
		{
			funding.GET("/prequalify", h.Funding.PreQualify)
			funding.GET("/recommendations", h.Funding.Recommendations)
			funding.POST("/apply/:id", middleware.Verified(), h.Application.Apply)
			funding.POST("/drafts/:id", middleware.Verified(), h.Application.SaveDraft)

			funding.POST("/options", middleware.Admin(), h.Funding.CreateOption)
			funding.PUT("/options/:id", middleware.Admin(), h.Funding.UpdateOption)
			funding.DELETE("/options/:id", middleware.Admin(), h.Funding.DeactivateOption)
		}

		apps := auth.Group("/applications")
		{
			apps.GET("", h.Application.List)
			apps.GET("/all", middleware.Admin(), h.Application.ListAll)
			apps.GET("/:id", h.Application.Get)
			apps.GET("/:id/timeline", h.Application.Timeline)
			apps.POST("/:id/submit", middleware.Verified(), h.Application.Submit)
			apps.PUT("/:id", h.Application.UpdateDraft)
			apps.DELETE("/:id", h.Application.DeleteDraft)
			apps.PUT("/:id/status", middleware.Admin(), h.Application.Transition)
			apps.POST("/:id/documents", h.Application.UploadDocument)
		}

		learning := auth.Group("/learning")
		{
			learning.POST("/resources", middleware.Admin(), h.Learning.CreateResource)
			learning.POST("/resources/:id/complete", h.Learning.Complete)
			learning.GET("/progress", h.Learning.Progress)
		}
	}
}
