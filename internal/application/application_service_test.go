package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/femfund/femfund/internal/ai"
	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/mailer"
	"github.com/femfund/femfund/internal/repository"
	"github.com/femfund/femfund/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeStore struct {
	uploaded []string
	removed  []string
}

func (f *fakeStore) Upload(_ context.Context, filename, _ string, _ io.Reader, _ int64) (string, error) {
	f.uploaded = append(f.uploaded, filename)
	return "documents/" + filename, nil
}

func (f *fakeStore) Remove(_ context.Context, objectKey string) error {
	f.removed = append(f.removed, objectKey)
	return nil
}

func setupApplicationService(t *testing.T) (*ApplicationService, *mock.MockApplicationRepo, *mock.MockFundingRepo, *mock.MockUserRepo, *fakeStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockFunding := mock.NewMockFundingRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{Application: mockApp, Funding: mockFunding, User: mockUser}

	// unconfigured client: every evaluation takes the default path
	client := ai.NewClient(ai.Config{})
	evaluator := NewCreditEvaluationService(repos, client, zap.NewNop())

	store := &fakeStore{}
	svc := NewApplicationService(repos, evaluator, store, mailer.Noop{}, zap.NewNop())
	return svc, mockApp, mockFunding, mockUser, store
}

func microloanOption() funding.Option {
	return funding.Option{
		FID:       3,
		Name:      "Starter Microloan",
		Type:      string(funding.TypeMicroloan),
		MinAmount: 500,
		MaxAmount: 10000,
		IsActive:  true,
	}
}

func validSubmitInput(amount float64) application.SubmitInput {
	income, expenses, assets, liabilities := 4000.0, 2500.0, 20000.0, 8000.0
	return application.SubmitInput{
		Amount:  &amount,
		Purpose: "Inventory purchase",
		FinancialInfo: &application.FinancialInfoInput{
			Income:      &income,
			Expenses:    &expenses,
			Assets:      &assets,
			Liabilities: &liabilities,
		},
	}
}

func TestApply_Success(t *testing.T) {
	svc, mockApp, mockFunding, mockUser, _ := setupApplicationService(t)

	mockFunding.EXPECT().GetOptionByID(uint(3)).Return(microloanOption(), nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{UID: 7, IsVerified: true}, nil)
	mockApp.EXPECT().CreateApplication(gomock.Any()).DoAndReturn(func(a *application.Application) error {
		a.AID = 1
		return nil
	})

	app, err := svc.Apply(context.Background(), 7, 3, validSubmitInput(5000))
	assert.NoError(t, err)
	assert.Equal(t, application.StatusSubmitted, app.Status)
	assert.NotNil(t, app.SubmittedAt)
	// unconfigured analyst still yields a stored evaluation
	assert.NotNil(t, app.AIEvaluation)
	assert.Equal(t, 75, app.AIEvaluation.Score)
}

func TestApply_AmountOutOfRange(t *testing.T) {
	svc, _, mockFunding, _, _ := setupApplicationService(t)

	option := microloanOption()
	mockFunding.EXPECT().GetOptionByID(uint(3)).Return(option, nil).Times(2)

	_, err := svc.Apply(context.Background(), 7, 3, validSubmitInput(option.MinAmount-1))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Fields[0].Field)

	_, err = svc.Apply(context.Background(), 7, 3, validSubmitInput(option.MaxAmount+1))
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Fields[0].Field)
}

func TestApply_MissingFields(t *testing.T) {
	svc, _, mockFunding, _, _ := setupApplicationService(t)

	mockFunding.EXPECT().GetOptionByID(uint(3)).Return(microloanOption(), nil)

	amount := 5000.0
	input := application.SubmitInput{Amount: &amount}
	_, err := svc.Apply(context.Background(), 7, 3, input)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "purpose")
	assert.Contains(t, fields, "financial_info")
}

func TestApply_InactiveOption(t *testing.T) {
	svc, _, mockFunding, _, _ := setupApplicationService(t)

	option := microloanOption()
	option.IsActive = false
	mockFunding.EXPECT().GetOptionByID(uint(3)).Return(option, nil)

	_, err := svc.Apply(context.Background(), 7, 3, validSubmitInput(5000))
	assert.Equal(t, ErrOptionInactive, err)
}

func TestApply_OptionNotFound(t *testing.T) {
	svc, _, mockFunding, _, _ := setupApplicationService(t)

	mockFunding.EXPECT().GetOptionByID(uint(99)).Return(funding.Option{}, gorm.ErrRecordNotFound)

	_, err := svc.Apply(context.Background(), 7, 99, validSubmitInput(5000))
	assert.Equal(t, ErrOptionNotFound, err)
}

func TestSubmitDraft_PromotesAndEvaluates(t *testing.T) {
	svc, mockApp, mockFunding, mockUser, _ := setupApplicationService(t)

	draft := application.Application{
		AID:             4,
		UserID:          7,
		FundingOptionID: 3,
		Amount:          5000,
		Purpose:         "Inventory purchase",
		Status:          application.StatusDraft,
		FinancialInfo: application.FinancialInfo{
			Income: 4000, Expenses: 2500, Assets: 20000, Liabilities: 8000,
		},
	}

	mockApp.EXPECT().GetApplicationByID(uint(4)).Return(draft, nil)
	mockFunding.EXPECT().GetOptionByID(uint(3)).Return(microloanOption(), nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{UID: 7}, nil)
	mockApp.EXPECT().UpdateApplication(gomock.Any()).Return(nil)

	app, err := svc.SubmitDraft(context.Background(), 7, 4)
	assert.NoError(t, err)
	assert.Equal(t, application.StatusSubmitted, app.Status)
	assert.NotNil(t, app.SubmittedAt)
	assert.NotNil(t, app.AIEvaluation)
}

func TestSubmitDraft_NotADraft(t *testing.T) {
	svc, mockApp, _, _, _ := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(4)).Return(
		application.Application{AID: 4, UserID: 7, Status: application.StatusSubmitted}, nil)

	_, err := svc.SubmitDraft(context.Background(), 7, 4)
	assert.Equal(t, ErrNotDraft, err)
}

func TestTransition_LegalMoveSetsDecidedAt(t *testing.T) {
	svc, mockApp, _, mockUser, _ := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(1)).Return(
		application.Application{AID: 1, UserID: 7, Status: application.StatusUnderReview}, nil)
	mockApp.EXPECT().UpdateApplication(gomock.Any()).Return(nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{UID: 7, Email: "ada@test.com"}, nil)

	app, err := svc.Transition(context.Background(), 1, application.TransitionInput{
		Status:        "approved",
		ReviewerNotes: "Solid plan",
	})
	assert.NoError(t, err)
	assert.Equal(t, application.StatusApproved, app.Status)
	assert.Equal(t, "Solid plan", app.ReviewerNotes)
	assert.NotNil(t, app.DecidedAt)
	assert.WithinDuration(t, time.Now(), *app.DecidedAt, time.Minute)
}

func TestTransition_IllegalMoves(t *testing.T) {
	svc, mockApp, _, _, _ := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(1)).Return(
		application.Application{AID: 1, Status: application.StatusRejected}, nil)
	_, err := svc.Transition(context.Background(), 1, application.TransitionInput{Status: "approved"})
	assert.Equal(t, ErrInvalidTransition, err)

	mockApp.EXPECT().GetApplicationByID(uint(2)).Return(
		application.Application{AID: 2, Status: application.StatusFunded}, nil)
	_, err = svc.Transition(context.Background(), 2, application.TransitionInput{Status: "submitted"})
	assert.Equal(t, ErrInvalidTransition, err)

	mockApp.EXPECT().GetApplicationByID(uint(3)).Return(
		application.Application{AID: 3, Status: application.StatusSubmitted}, nil)
	_, err = svc.Transition(context.Background(), 3, application.TransitionInput{Status: "funded"})
	assert.Equal(t, ErrInvalidTransition, err)
}

func TestTransition_UnknownStatus(t *testing.T) {
	svc, _, _, _, _ := setupApplicationService(t)

	_, err := svc.Transition(context.Background(), 1, application.TransitionInput{Status: "archived"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteDraft_RemovesDocuments(t *testing.T) {
	svc, mockApp, _, _, store := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(4)).Return(application.Application{
		AID: 4, UserID: 7, Status: application.StatusDraft,
		Documents: []application.Document{{DID: 1, Path: "documents/plan.pdf"}},
	}, nil)
	mockApp.EXPECT().DeleteApplication(uint(4)).Return(nil)

	err := svc.DeleteDraft(context.Background(), 7, 4)
	assert.NoError(t, err)
	assert.Equal(t, []string{"documents/plan.pdf"}, store.removed)
}

func TestDeleteDraft_SubmittedIsProtected(t *testing.T) {
	svc, mockApp, _, _, _ := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(4)).Return(
		application.Application{AID: 4, UserID: 7, Status: application.StatusUnderReview}, nil)

	err := svc.DeleteDraft(context.Background(), 7, 4)
	assert.Equal(t, ErrNotDraft, err)
}

func TestFindApplication_Ownership(t *testing.T) {
	svc, mockApp, _, _, _ := setupApplicationService(t)

	stored := application.Application{AID: 1, UserID: 7}
	mockApp.EXPECT().GetApplicationByID(uint(1)).Return(stored, nil).Times(3)

	_, err := svc.FindApplication(7, false, 1)
	assert.NoError(t, err)

	_, err = svc.FindApplication(8, false, 1)
	assert.Equal(t, ErrNotOwner, err)

	_, err = svc.FindApplication(8, true, 1)
	assert.NoError(t, err)
}

func TestUpdateDraft_PartialEdit(t *testing.T) {
	svc, mockApp, _, _, _ := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(4)).Return(application.Application{
		AID: 4, UserID: 7, Status: application.StatusDraft,
		Amount: 1000, Purpose: "Old purpose",
	}, nil)
	mockApp.EXPECT().UpdateApplication(gomock.Any()).Return(nil)

	newAmount := 2000.0
	app, err := svc.UpdateDraft(7, 4, application.UpdateDraftInput{Amount: &newAmount})
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, app.Amount)
	assert.Equal(t, "Old purpose", app.Purpose)
}

func TestAttachDocument(t *testing.T) {
	svc, mockApp, _, _, store := setupApplicationService(t)

	mockApp.EXPECT().GetApplicationByID(uint(1)).Return(
		application.Application{AID: 1, UserID: 7, Status: application.StatusSubmitted}, nil)
	mockApp.EXPECT().AddDocument(gomock.Any()).Return(nil)

	doc, err := svc.AttachDocument(context.Background(), 7, 1,
		"plan.pdf", "application/pdf", nil, 1024)
	assert.NoError(t, err)
	assert.Equal(t, "plan.pdf", doc.Name)
	assert.Equal(t, "documents/plan.pdf", doc.Path)
	assert.Equal(t, []string{"plan.pdf"}, store.uploaded)
}

func TestBuildTimeline(t *testing.T) {
	now := time.Now()
	app := &application.Application{
		Status:      application.StatusUnderReview,
		CreatedAt:   now.Add(-48 * time.Hour),
		SubmittedAt: &now,
	}

	steps := buildTimeline(app)
	assert.Len(t, steps, 5)
	assert.Equal(t, "draft", steps[0].Status.ID)
	assert.True(t, steps[0].Reached)
	assert.True(t, steps[2].Current)
	assert.False(t, steps[3].Reached)
	assert.NotNil(t, steps[1].Timestamp)
	assert.Nil(t, steps[3].Timestamp)

	rejected := &application.Application{Status: application.StatusRejected, DecidedAt: &now}
	steps = buildTimeline(rejected)
	assert.Len(t, steps, 4)
	assert.Equal(t, "rejected", steps[3].Status.ID)
	assert.True(t, steps[3].Current)
	assert.NotNil(t, steps[3].Timestamp)
}
