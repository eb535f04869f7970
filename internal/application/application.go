package application

import (
	"context"
	"io"
	"time"

	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/mailer"
	"github.com/femfund/femfund/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentStore is the object-storage surface the workflow needs.
type DocumentStore interface {
	Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error)
	Remove(ctx context.Context, objectKey string) error
}

// ApplicationService drives the application lifecycle: drafting,
// submission with credit evaluation, review transitions, documents.
type ApplicationService struct {
	Repos     *repository.Repos
	Evaluator *CreditEvaluationService
	Store     DocumentStore
	Mail      mailer.Mailer
	Log       *zap.Logger
}

func NewApplicationService(repos *repository.Repos, evaluator *CreditEvaluationService, store DocumentStore, mail mailer.Mailer, log *zap.Logger) *ApplicationService {
	return &ApplicationService{
		Repos:     repos,
		Evaluator: evaluator,
		Store:     store,
		Mail:      mail,
		Log:       log,
	}
}

func (s *ApplicationService) activeOption(optionID uint) (funding.Option, error) {
	option, err := s.Repos.Funding.GetOptionByID(optionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return funding.Option{}, ErrOptionNotFound
		}
		return funding.Option{}, err
	}
	if !option.IsActive {
		return funding.Option{}, ErrOptionInactive
	}
	return option, nil
}

func validateSubmission(input application.SubmitInput, option *funding.Option) *ValidationError {
	verr := &ValidationError{}

	if input.Amount == nil {
		verr.Add("amount", "amount is required")
	} else if !option.InRange(*input.Amount) {
		verr.Add("amount", "amount is outside the range for this funding option")
	}

	if input.Purpose == "" {
		verr.Add("purpose", "purpose is required")
	}

	if input.FinancialInfo == nil {
		verr.Add("financial_info", "financial information is required")
	} else {
		fi := input.FinancialInfo
		if fi.Income == nil {
			verr.Add("financial_info.income", "monthly income is required")
		}
		if fi.Expenses == nil {
			verr.Add("financial_info.expenses", "monthly expenses are required")
		}
		if fi.Assets == nil {
			verr.Add("financial_info.assets", "total assets are required")
		}
		if fi.Liabilities == nil {
			verr.Add("financial_info.liabilities", "total liabilities are required")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func financialInfoFromInput(input *application.FinancialInfoInput) application.FinancialInfo {
	fi := application.FinancialInfo{}
	if input == nil {
		return fi
	}
	if input.Income != nil {
		fi.Income = *input.Income
	}
	if input.Expenses != nil {
		fi.Expenses = *input.Expenses
	}
	if input.Assets != nil {
		fi.Assets = *input.Assets
	}
	if input.Liabilities != nil {
		fi.Liabilities = *input.Liabilities
	}
	return fi
}

// Apply validates and submits a new application against an active
// funding option, running credit evaluation inline. A degraded
// evaluation never blocks the submission.
func (s *ApplicationService) Apply(ctx context.Context, userID, optionID uint, input application.SubmitInput) (application.Application, error) {
	option, err := s.activeOption(optionID)
	if err != nil {
		return application.Application{}, err
	}
	if verr := validateSubmission(input, &option); verr != nil {
		return application.Application{}, verr
	}

	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return application.Application{}, ErrUserNotFound
	}

	now := time.Now()
	app := application.Application{
		UserID:          userID,
		FundingOptionID: optionID,
		Amount:          *input.Amount,
		Purpose:         input.Purpose,
		BusinessPlan:    input.BusinessPlan,
		FinancialInfo:   financialInfoFromInput(input.FinancialInfo),
		Status:          application.StatusSubmitted,
		SubmittedAt:     &now,
		FundingOption:   &option,
	}

	s.evaluate(ctx, &app, &usr)

	if err := s.Repos.Application.CreateApplication(&app); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

// SaveDraft stores a partial application without validation beyond the
// option existing and being active.
func (s *ApplicationService) SaveDraft(userID, optionID uint, input application.SubmitInput) (application.Application, error) {
	option, err := s.activeOption(optionID)
	if err != nil {
		return application.Application{}, err
	}

	app := application.Application{
		UserID:          userID,
		FundingOptionID: optionID,
		Purpose:         input.Purpose,
		BusinessPlan:    input.BusinessPlan,
		FinancialInfo:   financialInfoFromInput(input.FinancialInfo),
		Status:          application.StatusDraft,
		FundingOption:   &option,
	}
	if input.Amount != nil {
		app.Amount = *input.Amount
	}

	if err := s.Repos.Application.CreateApplication(&app); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

// SubmitDraft promotes an owned draft to submitted, validating it the
// same way a direct submission is validated.
func (s *ApplicationService) SubmitDraft(ctx context.Context, userID, appID uint) (application.Application, error) {
	app, err := s.ownedApplication(userID, appID)
	if err != nil {
		return application.Application{}, err
	}
	if app.Status != application.StatusDraft {
		return application.Application{}, ErrNotDraft
	}

	option, err := s.activeOption(app.FundingOptionID)
	if err != nil {
		return application.Application{}, err
	}

	input := application.SubmitInput{
		Amount:  &app.Amount,
		Purpose: app.Purpose,
		FinancialInfo: &application.FinancialInfoInput{
			Income:      &app.FinancialInfo.Income,
			Expenses:    &app.FinancialInfo.Expenses,
			Assets:      &app.FinancialInfo.Assets,
			Liabilities: &app.FinancialInfo.Liabilities,
		},
	}
	if verr := validateSubmission(input, &option); verr != nil {
		return application.Application{}, verr
	}

	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return application.Application{}, ErrUserNotFound
	}

	now := time.Now()
	app.Status = application.StatusSubmitted
	app.SubmittedAt = &now

	s.evaluate(ctx, &app, &usr)

	if err := s.Repos.Application.UpdateApplication(&app); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

func (s *ApplicationService) evaluate(ctx context.Context, app *application.Application, usr *user.User) {
	result := s.Evaluator.Evaluate(ctx, app, usr)
	now := time.Now()
	app.AIEvaluation = &application.Evaluation{
		Score:       result.Score,
		Feedback:    result.Feedback,
		EvaluatedAt: &now,
	}
	if result.Outcome != OutcomeEvaluated {
		s.Log.Info("submission proceeding with degraded evaluation",
			zap.Uint("user_id", app.UserID),
			zap.String("outcome", string(result.Outcome)))
	}
}

func (s *ApplicationService) ownedApplication(userID, appID uint) (application.Application, error) {
	app, err := s.Repos.Application.GetApplicationByID(appID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	if app.UserID != userID {
		return application.Application{}, ErrNotOwner
	}
	return app, nil
}

// FindApplication returns the application when the caller owns it or is
// an admin.
func (s *ApplicationService) FindApplication(callerID uint, isAdmin bool, appID uint) (application.Application, error) {
	app, err := s.Repos.Application.GetApplicationByID(appID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	if app.UserID != callerID && !isAdmin {
		return application.Application{}, ErrNotOwner
	}
	return app, nil
}

func (s *ApplicationService) ListByUser(userID uint) ([]application.Application, error) {
	return s.Repos.Application.ListApplicationsByUser(userID)
}

func (s *ApplicationService) ListAll(page, limit int) ([]application.Application, error) {
	return s.Repos.Application.ListAllApplications(page, limit)
}

// UpdateDraft applies partial edits to an owned draft.
func (s *ApplicationService) UpdateDraft(userID, appID uint, input application.UpdateDraftInput) (application.Application, error) {
	app, err := s.ownedApplication(userID, appID)
	if err != nil {
		return application.Application{}, err
	}
	if app.Status != application.StatusDraft {
		return application.Application{}, ErrNotDraft
	}

	if input.Amount != nil {
		app.Amount = *input.Amount
	}
	if input.Purpose != nil {
		app.Purpose = *input.Purpose
	}
	if input.BusinessPlan != nil {
		app.BusinessPlan = *input.BusinessPlan
	}
	if input.FinancialInfo != nil {
		fi := input.FinancialInfo
		if fi.Income != nil {
			app.FinancialInfo.Income = *fi.Income
		}
		if fi.Expenses != nil {
			app.FinancialInfo.Expenses = *fi.Expenses
		}
		if fi.Assets != nil {
			app.FinancialInfo.Assets = *fi.Assets
		}
		if fi.Liabilities != nil {
			app.FinancialInfo.Liabilities = *fi.Liabilities
		}
	}

	if err := s.Repos.Application.UpdateApplication(&app); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

// DeleteDraft removes an owned draft and its uploaded documents.
// Submitted applications are part of the audit trail and stay.
func (s *ApplicationService) DeleteDraft(ctx context.Context, userID, appID uint) error {
	app, err := s.ownedApplication(userID, appID)
	if err != nil {
		return err
	}
	if app.Status != application.StatusDraft {
		return ErrNotDraft
	}

	for _, doc := range app.Documents {
		if err := s.Store.Remove(ctx, doc.Path); err != nil {
			s.Log.Warn("failed to remove draft document from storage",
				zap.Uint("application_id", appID),
				zap.String("object_key", doc.Path),
				zap.Error(err))
		}
	}

	return s.Repos.Application.DeleteApplication(appID)
}

// Transition moves an application to the requested status. Illegal moves
// return ErrInvalidTransition; the state machine only goes forward.
func (s *ApplicationService) Transition(ctx context.Context, appID uint, input application.TransitionInput) (application.Application, error) {
	if !application.ValidStatus(input.Status) {
		verr := &ValidationError{}
		verr.Add("status", "unknown status")
		return application.Application{}, verr
	}
	next := application.Status(input.Status)

	app, err := s.Repos.Application.GetApplicationByID(appID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	if !app.Status.CanTransitionTo(next) {
		return application.Application{}, ErrInvalidTransition
	}

	app.Status = next
	if input.ReviewerNotes != "" {
		app.ReviewerNotes = input.ReviewerNotes
	}
	if next.Decided() && app.DecidedAt == nil {
		now := time.Now()
		app.DecidedAt = &now
	}

	if err := s.Repos.Application.UpdateApplication(&app); err != nil {
		return application.Application{}, err
	}

	s.notifyStatusChange(&app)

	return app, nil
}

// notifyStatusChange emails the applicant in the background. Delivery
// failures are logged, never surfaced to the reviewer's request.
func (s *ApplicationService) notifyStatusChange(app *application.Application) {
	usr, err := s.Repos.User.GetUserByID(app.UserID)
	if err != nil {
		s.Log.Warn("cannot notify applicant, user lookup failed",
			zap.Uint("application_id", app.AID), zap.Error(err))
		return
	}

	label := application.PresentStatus(app.Status).Label
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Mail.SendStatusUpdate(ctx, usr.Email, usr.Name, app.AID, label); err != nil {
			s.Log.Warn("status notification failed",
				zap.Uint("application_id", app.AID),
				zap.String("status", string(app.Status)),
				zap.Error(err))
		}
	}()
}

// Timeline renders the status path for an application the caller may see.
func (s *ApplicationService) Timeline(callerID uint, isAdmin bool, appID uint) ([]application.TimelineStep, error) {
	app, err := s.FindApplication(callerID, isAdmin, appID)
	if err != nil {
		return nil, err
	}
	return buildTimeline(&app), nil
}

func buildTimeline(app *application.Application) []application.TimelineStep {
	path := []application.Status{
		application.StatusDraft,
		application.StatusSubmitted,
		application.StatusUnderReview,
	}
	if app.Status == application.StatusRejected {
		path = append(path, application.StatusRejected)
	} else {
		path = append(path, application.StatusApproved, application.StatusFunded)
	}

	currentIdx := 0
	for i, st := range path {
		if st == app.Status {
			currentIdx = i
		}
	}

	steps := make([]application.TimelineStep, 0, len(path))
	for i, st := range path {
		step := application.TimelineStep{
			Status:  application.PresentStatus(st),
			Reached: i <= currentIdx,
			Current: i == currentIdx,
		}
		if ts := stepTimestamp(app, st); ts != nil {
			formatted := ts.Format(time.RFC3339)
			step.Timestamp = &formatted
		}
		steps = append(steps, step)
	}
	return steps
}

func stepTimestamp(app *application.Application, st application.Status) *time.Time {
	switch st {
	case application.StatusDraft:
		return &app.CreatedAt
	case application.StatusSubmitted:
		return app.SubmittedAt
	case application.StatusApproved, application.StatusRejected:
		if st == app.Status || (st == application.StatusApproved && app.Status == application.StatusFunded) {
			return app.DecidedAt
		}
	case application.StatusFunded:
		if app.Status == application.StatusFunded {
			return &app.UpdatedAt
		}
	}
	return nil
}

// AttachDocument uploads a file for an owned application and records it.
func (s *ApplicationService) AttachDocument(ctx context.Context, userID, appID uint, filename, contentType string, reader io.Reader, size int64) (application.Document, error) {
	app, err := s.ownedApplication(userID, appID)
	if err != nil {
		return application.Document{}, err
	}

	objectKey, err := s.Store.Upload(ctx, filename, contentType, reader, size)
	if err != nil {
		return application.Document{}, err
	}

	doc := application.Document{
		ApplicationID: app.AID,
		Name:          filename,
		Path:          objectKey,
		ContentType:   contentType,
	}
	if err := s.Repos.Application.AddDocument(&doc); err != nil {
		return application.Document{}, err
	}
	return doc, nil
}
