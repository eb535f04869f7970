package application

import (
	"github.com/femfund/femfund/internal/ai"
	"github.com/femfund/femfund/internal/mailer"
	"github.com/femfund/femfund/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	User        *UserService
	Funding     *FundingService
	Application *ApplicationService
	Evaluation  *CreditEvaluationService
	Learning    *LearningService
}

func New(repos *repository.Repos, aiClient *ai.Client, store DocumentStore, mail mailer.Mailer, log *zap.Logger) *Services {
	evaluation := NewCreditEvaluationService(repos, aiClient, log)
	return &Services{
		User:        NewUserService(repos),
		Funding:     NewFundingService(repos),
		Application: NewApplicationService(repos, evaluation, store, mail, log),
		Evaluation:  evaluation,
		Learning:    NewLearningService(repos),
	}
}
