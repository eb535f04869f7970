package application

import (
	"math"

	"github.com/femfund/femfund/internal/domain/funding"
)

const (
	prequalBaseAmount = 5000

	microloanThreshold = 60
	grantThreshold     = 75
	ventureThreshold   = 85
)

// PreQualify estimates which funding types a user with the given
// financial score and number of successful past applications would
// likely qualify for. Pure so it can be exercised directly in tests.
func PreQualify(financialScore int, successfulApps int64) funding.PreQualification {
	result := funding.PreQualification{}

	if financialScore >= microloanThreshold {
		result.Microloan = true
		result.PeerToPeer = true
	}
	if financialScore >= grantThreshold {
		result.Grant = true
	}
	if financialScore >= ventureThreshold {
		result.VentureCapital = true
	}

	// 1.0x at score 50, 2.0x at score 100, plus 20% per past success.
	scoreMultiplier := float64(financialScore) / 50
	historyMultiplier := 1 + float64(successfulApps)*0.2
	result.RecommendedAmount = int(math.Round(prequalBaseAmount * scoreMultiplier * historyMultiplier))

	return result
}

// conservativePreQualification is returned when history cannot be read;
// the estimate is non-binding so failing the request would be worse than
// a cautious answer.
func conservativePreQualification() funding.PreQualification {
	return funding.PreQualification{
		Microloan:         true,
		PeerToPeer:        true,
		RecommendedAmount: prequalBaseAmount,
	}
}

// PreQualifyUser runs pre-qualification against the user's stored score
// and application history. Users without a score are treated as 50.
func (s *FundingService) PreQualifyUser(userID uint) (funding.PreQualification, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return funding.PreQualification{}, ErrUserNotFound
	}

	financialScore := 50
	if usr.FinancialScore != nil {
		financialScore = *usr.FinancialScore
	}

	successes, err := s.Repos.Application.CountSuccessfulByUser(userID)
	if err != nil {
		return conservativePreQualification(), nil
	}

	return PreQualify(financialScore, successes), nil
}

// ScoreRecommendations returns improvement advice for the user's current
// score bracket.
func (s *FundingService) ScoreRecommendations(userID uint) ([]string, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	score := 50
	if usr.FinancialScore != nil {
		score = *usr.FinancialScore
	}

	switch {
	case score < 50:
		return []string{
			"Consider reducing monthly expenses to improve your debt-to-income ratio",
			"Focus on building business revenue before seeking larger funding amounts",
			"Start with smaller funding options to build a positive funding history",
			"Complete your profile with all required documentation",
		}, nil
	case score < 70:
		return []string{
			"Develop a more detailed business plan with clear revenue projections",
			"Consider reducing the requested funding amount to improve approval odds",
			"Demonstrate how the funding will directly increase business revenue",
			"Build assets to improve your overall financial standing",
		}, nil
	default:
		return []string{
			"Continue maintaining a strong financial position",
			"Consider exploring larger funding options as your business grows",
			"Highlight your successful funding history in future applications",
			"Regularly update your financial information to maintain an accurate credit score",
		}, nil
	}
}
