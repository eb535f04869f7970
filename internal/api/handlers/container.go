package handlers

import (
	"github.com/femfund/femfund/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User        *UserHandler
	Funding     *FundingHandler
	Application *ApplicationHandler
	Learning    *LearningHandler
	Router      *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:        NewUserHandler(svc.User),
		Funding:     NewFundingHandler(svc.Funding),
		Application: NewApplicationHandler(svc.Application),
		Learning:    NewLearningHandler(svc.Learning),
		Router:      router,
	}
}
