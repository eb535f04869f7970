package application

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/femfund/femfund/internal/ai"
	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/repository"
	"github.com/femfund/femfund/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func evaluationFixtures() (application.Application, user.User) {
	app := application.Application{
		AID:             1,
		UserID:          7,
		FundingOptionID: 3,
		Amount:          5000,
		Purpose:         "Inventory for boutique",
		FinancialInfo: application.FinancialInfo{
			Income:      4000,
			Expenses:    2500,
			Assets:      20000,
			Liabilities: 8000,
		},
		FundingOption: &funding.Option{FID: 3, Type: string(funding.TypeMicroloan)},
	}
	usr := user.User{
		UID:        7,
		Name:       "Ada",
		Email:      "ada@test.com",
		IsVerified: true,
		CreatedAt:  time.Now().AddDate(0, -6, 0),
	}
	return app, usr
}

// analystServer fakes the chat-completions endpoint, replying with the
// given message content.
func analystServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, content)
	}))
}

func setupEvaluation(t *testing.T, baseURL, apiKey string) (*CreditEvaluationService, *mock.MockApplicationRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{Application: mockApp, User: mockUser}

	client := ai.NewClient(ai.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   "gpt-4",
		Timeout: 5 * time.Second,
	})

	return NewCreditEvaluationService(repos, client, zap.NewNop()), mockApp, mockUser
}

func TestEvaluate_NoCredentialUsesDefault(t *testing.T) {
	svc, _, _ := setupEvaluation(t, "http://unused.invalid", "")
	app, usr := evaluationFixtures()

	result := svc.Evaluate(context.Background(), &app, &usr)

	assert.Equal(t, OutcomeDegradedDefault, result.Outcome)
	assert.Equal(t, 75, result.Score)
	assert.Contains(t, result.Feedback, "pre-approved")
}

func TestEvaluate_Success(t *testing.T) {
	srv := analystServer(t, `Here is my assessment: {"score": 82, "feedback": "Strong income and low debt."}`, http.StatusOK)
	defer srv.Close()

	svc, mockApp, mockUser := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)
	mockUser.EXPECT().UpdateFinancialScore(usr.UID, 82).Return(nil)

	result := svc.Evaluate(context.Background(), &app, &usr)

	assert.Equal(t, OutcomeEvaluated, result.Outcome)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Strong income and low debt.", result.Feedback)
}

func TestEvaluate_FinancialScoreWeightedAverage(t *testing.T) {
	srv := analystServer(t, `{"score": 60, "feedback": "Moderate."}`, http.StatusOK)
	defer srv.Close()

	svc, mockApp, mockUser := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()
	existing := 80
	usr.FinancialScore = &existing

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)
	// round(80*0.7 + 60*0.3) = 74
	mockUser.EXPECT().UpdateFinancialScore(usr.UID, 74).Return(nil)

	result := svc.Evaluate(context.Background(), &app, &usr)
	assert.Equal(t, 60, result.Score)
}

func TestEvaluate_ScoreClampedHigh(t *testing.T) {
	srv := analystServer(t, `{"score": 150, "feedback": "Exceptional."}`, http.StatusOK)
	defer srv.Close()

	svc, mockApp, mockUser := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)
	mockUser.EXPECT().UpdateFinancialScore(usr.UID, 100).Return(nil)

	result := svc.Evaluate(context.Background(), &app, &usr)
	assert.Equal(t, 100, result.Score)
}

func TestEvaluate_ScoreClampedLow(t *testing.T) {
	srv := analystServer(t, `{"score": -5, "feedback": "Very weak."}`, http.StatusOK)
	defer srv.Close()

	svc, mockApp, mockUser := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)
	mockUser.EXPECT().UpdateFinancialScore(usr.UID, 0).Return(nil)

	result := svc.Evaluate(context.Background(), &app, &usr)
	assert.Equal(t, 0, result.Score)
}

func TestEvaluate_MalformedReplyFallsBack(t *testing.T) {
	srv := analystServer(t, "I cannot provide a numeric judgement here.", http.StatusOK)
	defer srv.Close()

	svc, mockApp, _ := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)

	result := svc.Evaluate(context.Background(), &app, &usr)

	assert.Equal(t, OutcomeDegradedParseFailure, result.Outcome)
	assert.Equal(t, 70, result.Score)
	assert.Contains(t, result.Feedback, "moderate risk")
}

func TestEvaluate_MissingScoreFieldFallsBack(t *testing.T) {
	srv := analystServer(t, `{"feedback": "No score given."}`, http.StatusOK)
	defer srv.Close()

	svc, mockApp, _ := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)

	result := svc.Evaluate(context.Background(), &app, &usr)
	assert.Equal(t, OutcomeDegradedParseFailure, result.Outcome)
	assert.Equal(t, 70, result.Score)
}

func TestEvaluate_ServiceFailureFallsBack(t *testing.T) {
	srv := analystServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc, mockApp, _ := setupEvaluation(t, srv.URL, "test-key")
	app, usr := evaluationFixtures()

	mockApp.EXPECT().ListDecidedByUser(usr.UID, 5).Return(nil, nil)

	result := svc.Evaluate(context.Background(), &app, &usr)

	assert.Equal(t, OutcomeDegradedServiceFailure, result.Outcome)
	assert.Equal(t, 65, result.Score)
	assert.Contains(t, result.Feedback, "technical issue")
}

func TestParseEvaluationReply(t *testing.T) {
	score, feedback, ok := parseEvaluationReply("```json\n{\"score\": 88, \"feedback\": \"Good.\"}\n```")
	assert.True(t, ok)
	assert.Equal(t, 88, score)
	assert.Equal(t, "Good.", feedback)

	_, _, ok = parseEvaluationReply(`{"score": "high", "feedback": "Good."}`)
	assert.False(t, ok)

	_, _, ok = parseEvaluationReply(`{"score": 88, "feedback": ""}`)
	assert.False(t, ok)

	_, _, ok = parseEvaluationReply("no json at all")
	assert.False(t, ok)
}

func TestBuildEvaluationPrompt(t *testing.T) {
	app, usr := evaluationFixtures()
	history := []application.Application{
		{Status: application.StatusFunded, Amount: 2000,
			FundingOption: &funding.Option{Type: string(funding.TypeMicroloan)},
			CreatedAt:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	prompt := buildEvaluationPrompt(&app, &usr, history)

	assert.Contains(t, prompt, "Funding Type: microloan")
	assert.Contains(t, prompt, "Amount Requested: $5000.00")
	assert.Contains(t, prompt, "Monthly Net Income: $1500.00")
	// 8000 / (4000*12) = 16.67%
	assert.Contains(t, prompt, "Debt-to-Income Ratio: 16.67%")
	// 8000 / 20000 = 40%
	assert.Contains(t, prompt, "Debt-to-Asset Ratio: 40.00%")
	assert.Contains(t, prompt, "funded microloan for $2000.00 on 2025-03-01")
}

func TestBuildEvaluationPrompt_ZeroDenominators(t *testing.T) {
	app, usr := evaluationFixtures()
	app.FinancialInfo = application.FinancialInfo{Liabilities: 500}

	prompt := buildEvaluationPrompt(&app, &usr, nil)

	// income*12 and assets fall back to 1 instead of dividing by zero
	assert.Contains(t, prompt, "Debt-to-Income Ratio: 50000.00%")
	assert.Contains(t, prompt, "Debt-to-Asset Ratio: 50000.00%")
	assert.Contains(t, prompt, "No previous applications")
}
