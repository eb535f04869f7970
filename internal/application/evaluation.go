package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/femfund/femfund/internal/ai"
	"github.com/femfund/femfund/internal/domain/application"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/internal/repository"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Outcome tells callers how an evaluation result was produced. Degraded
// outcomes still carry a usable score; they are surfaced so operators can
// see how often the analyst model was actually consulted.
type Outcome string

const (
	OutcomeEvaluated              Outcome = "evaluated"
	OutcomeDegradedDefault        Outcome = "degraded_default"
	OutcomeDegradedParseFailure   Outcome = "degraded_parse_failure"
	OutcomeDegradedServiceFailure Outcome = "degraded_service_failure"
)

// EvaluationResult is what credit evaluation hands back to the submission
// flow. Score is always within [0, 100].
type EvaluationResult struct {
	Score    int
	Feedback string
	Outcome  Outcome
}

const (
	defaultScore        = 75
	parseFailureScore   = 70
	serviceFailureScore = 65

	defaultFeedback = "This application has been pre-approved based on basic criteria. Manual review recommended."

	parseFailureFeedback = "This application has been evaluated based on the provided financial information. " +
		"The debt-to-income ratio and business purpose suggest a moderate risk profile. Further manual review recommended."

	serviceFailureFeedback = "Automated evaluation encountered a technical issue. Based on basic criteria, " +
		"this application shows potential but requires manual review by our funding team."

	historyLimit = 5

	analystSystemPrompt = "You are a financial analyst specialized in evaluating funding applications."
)

// CreditEvaluationService scores submitted applications. It consults an
// external analyst model when one is configured and falls back to fixed
// conservative scores otherwise, so submission never fails because of it.
type CreditEvaluationService struct {
	Repos *repository.Repos
	AI    *ai.Client
	Log   *zap.Logger
}

func NewCreditEvaluationService(repos *repository.Repos, client *ai.Client, log *zap.Logger) *CreditEvaluationService {
	return &CreditEvaluationService{
		Repos: repos,
		AI:    client,
		Log:   log,
	}
}

// Evaluate scores app for usr. It never returns an error: every failure
// mode maps to a degraded result with a fixed score.
func (s *CreditEvaluationService) Evaluate(ctx context.Context, app *application.Application, usr *user.User) EvaluationResult {
	if !s.AI.Configured() {
		s.Log.Warn("analyst credential not configured, using default evaluation",
			zap.Uint("application_id", app.AID))
		return EvaluationResult{Score: defaultScore, Feedback: defaultFeedback, Outcome: OutcomeDegradedDefault}
	}

	history, err := s.Repos.Application.ListDecidedByUser(usr.UID, historyLimit)
	if err != nil {
		s.Log.Warn("failed to load application history",
			zap.Uint("user_id", usr.UID), zap.Error(err))
		history = nil
	}

	prompt := buildEvaluationPrompt(app, usr, history)

	reply, err := s.AI.Complete(ctx, analystSystemPrompt, prompt)
	if err != nil {
		s.Log.Warn("analyst call failed, using service-failure evaluation",
			zap.Uint("application_id", app.AID), zap.Error(err))
		return EvaluationResult{Score: serviceFailureScore, Feedback: serviceFailureFeedback, Outcome: OutcomeDegradedServiceFailure}
	}

	score, feedback, ok := parseEvaluationReply(reply)
	if !ok {
		s.Log.Warn("analyst reply unparseable, using parse-failure evaluation",
			zap.Uint("application_id", app.AID))
		return EvaluationResult{Score: parseFailureScore, Feedback: parseFailureFeedback, Outcome: OutcomeDegradedParseFailure}
	}

	score = clampScore(score)

	newFinancialScore := score
	if usr.FinancialScore != nil {
		newFinancialScore = int(math.Round(float64(*usr.FinancialScore)*0.7 + float64(score)*0.3))
	}
	if err := s.Repos.User.UpdateFinancialScore(usr.UID, newFinancialScore); err != nil {
		s.Log.Warn("failed to persist financial score",
			zap.Uint("user_id", usr.UID), zap.Error(err))
	}

	return EvaluationResult{Score: score, Feedback: feedback, Outcome: OutcomeEvaluated}
}

// parseEvaluationReply pulls the JSON object out of the model's reply.
// The model is asked for bare JSON but often wraps it in prose or code
// fences, so everything between the first '{' and the last '}' is taken.
func parseEvaluationReply(reply string) (int, string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return 0, "", false
	}
	doc := reply[start : end+1]

	if !gjson.Valid(doc) {
		return 0, "", false
	}
	score := gjson.Get(doc, "score")
	feedback := gjson.Get(doc, "feedback")
	if score.Type != gjson.Number || feedback.Type != gjson.String || feedback.Str == "" {
		return 0, "", false
	}
	return int(math.Round(score.Num)), feedback.Str, true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func buildEvaluationPrompt(app *application.Application, usr *user.User, history []application.Application) string {
	fi := app.FinancialInfo
	netIncome := fi.Income - fi.Expenses

	annualIncome := fi.Income * 12
	if annualIncome == 0 {
		annualIncome = 1
	}
	debtToIncome := fi.Liabilities / annualIncome

	assets := fi.Assets
	if assets == 0 {
		assets = 1
	}
	debtToAsset := fi.Liabilities / assets

	fundingType := "unknown"
	if app.FundingOption != nil {
		fundingType = app.FundingOption.Type
	}

	businessPlan := app.BusinessPlan
	if businessPlan == "" {
		businessPlan = "Not provided"
	}

	verified := "No"
	if usr.IsVerified {
		verified = "Yes"
	}

	existingScore := 0
	if usr.FinancialScore != nil {
		existingScore = *usr.FinancialScore
	}
	accountAgeDays := int(time.Since(usr.CreatedAt).Hours() / 24)

	var historyLines []string
	for _, past := range history {
		pastType := "unknown"
		if past.FundingOption != nil {
			pastType = past.FundingOption.Type
		}
		historyLines = append(historyLines, fmt.Sprintf("- %s %s for $%.2f on %s",
			past.Status, pastType, past.Amount, past.CreatedAt.Format("2006-01-02")))
	}
	if len(historyLines) == 0 {
		historyLines = []string{"- No previous applications"}
	}

	var b strings.Builder
	b.WriteString("You are an experienced financial analyst specializing in evaluating funding applications for women entrepreneurs.\n")
	b.WriteString("Please evaluate the following funding application and provide:\n")
	b.WriteString("1. A credit score from 0-100 (where 100 is excellent)\n")
	b.WriteString("2. Detailed feedback explaining the evaluation\n\n")

	fmt.Fprintf(&b, "Application Details:\n")
	fmt.Fprintf(&b, "- Funding Type: %s\n", fundingType)
	fmt.Fprintf(&b, "- Amount Requested: $%.2f\n", app.Amount)
	fmt.Fprintf(&b, "- Purpose: %s\n", app.Purpose)
	fmt.Fprintf(&b, "- Business Plan Summary: %s\n\n", businessPlan)

	fmt.Fprintf(&b, "Financial Information:\n")
	fmt.Fprintf(&b, "- Monthly Income: $%.2f\n", fi.Income)
	fmt.Fprintf(&b, "- Monthly Expenses: $%.2f\n", fi.Expenses)
	fmt.Fprintf(&b, "- Monthly Net Income: $%.2f\n", netIncome)
	fmt.Fprintf(&b, "- Total Assets: $%.2f\n", fi.Assets)
	fmt.Fprintf(&b, "- Total Liabilities: $%.2f\n", fi.Liabilities)
	fmt.Fprintf(&b, "- Debt-to-Income Ratio: %.2f%%\n", debtToIncome*100)
	fmt.Fprintf(&b, "- Debt-to-Asset Ratio: %.2f%%\n\n", debtToAsset*100)

	fmt.Fprintf(&b, "Applicant Profile:\n")
	fmt.Fprintf(&b, "- Account Verified: %s\n", verified)
	fmt.Fprintf(&b, "- Existing Financial Score: %d\n", existingScore)
	fmt.Fprintf(&b, "- Account Age: %d days\n\n", accountAgeDays)

	b.WriteString("Application History:\n")
	b.WriteString(strings.Join(historyLines, "\n"))
	b.WriteString("\n\n")

	b.WriteString("Evaluate the application based on:\n")
	b.WriteString("1. Financial health (income vs. expenses, debt ratios)\n")
	b.WriteString("2. Business plan viability\n")
	b.WriteString("3. Purpose alignment with funding type\n")
	b.WriteString("4. Applicant history and profile\n")
	b.WriteString("5. Risk assessment\n\n")

	b.WriteString("Provide your evaluation in JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("  \"score\": [number between 0-100],\n")
	b.WriteString("  \"feedback\": [detailed explanation with strengths and weaknesses]\n")
	b.WriteString("}\n")

	return b.String()
}
